package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
)

// HTTPInventoryService talks to a real inventory system over HTTP.
// Expected endpoints:
//
//	GET {base}/items/{id}            -> 200 item JSON | 404
//	GET {base}/items/{id}/stock?quantity=n -> 200 {"available": bool} | 404
//
// Transport failures and non-2xx/404 statuses are returned as errors;
// the caller decides how to surface the outage.
type HTTPInventoryService struct {
	baseURL string
	client  *http.Client
}

// NewHTTPInventoryService creates an HTTPInventoryService for the given
// base URL. A zero timeout falls back to 10 seconds.
func NewHTTPInventoryService(baseURL string, timeout time.Duration) *HTTPInventoryService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPInventoryService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetItem looks up an item in the remote inventory system
func (s *HTTPInventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*cart.ItemDetails, bool, error) {
	endpoint := fmt.Sprintf("%s/items/%s", s.baseURL, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("inventory request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var details cart.ItemDetails
		if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
			return nil, false, fmt.Errorf("decoding inventory response: %w", err)
		}
		return &details, true, nil
	case http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}
}

// CheckStock asks the remote inventory system whether the requested
// quantity is available
func (s *HTTPInventoryService) CheckStock(ctx context.Context, itemID uuid.UUID, quantity int64) (bool, error) {
	endpoint := fmt.Sprintf("%s/items/%s/stock?%s", s.baseURL, itemID,
		url.Values{"quantity": []string{strconv.FormatInt(quantity, 10)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("inventory request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var body struct {
			Available bool `json:"available"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("decoding stock response: %w", err)
		}
		return body.Available, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}
}
