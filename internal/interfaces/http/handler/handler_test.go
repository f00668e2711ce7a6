package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/inventory"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires handlers onto memory repositories and the mock
// inventory service, mirroring the production composition
func newTestServer() *gin.Engine {
	itemService := catalogapp.NewItemService(memory.NewItemRepository())
	userRepo := memory.NewUserRepository()
	userService := cartapp.NewUserService(userRepo, auth.NewSHA512Hasher())
	cartService := cartapp.NewCartService(userRepo, inventory.NewMockInventoryService())

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(NewItemHandler(itemService))
	r.Register(NewUserHandler(userService, cartService))
	r.Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func createUser(t *testing.T, engine *gin.Engine, email string) uuid.UUID {
	t.Helper()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
		"email":      email,
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"password":   "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	id, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)
	return id
}

func TestItemHandler_Create(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{
		"name":        "Hammer",
		"description": "claw hammer",
		"price":       "12.50",
		"quantity":    5,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Hammer", data["name"])
	assert.NotEmpty(t, data["id"])
}

func TestItemHandler_Create_DuplicateName(t *testing.T) {
	engine := newTestServer()

	body := gin.H{"name": "Hammer", "price": "12.50", "quantity": 5}
	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/items", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/items", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	assert.Equal(t, "An item with this name already exists", resp.Error.Message)
}

func TestItemHandler_Create_NegativePrice(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{
		"name":     "Broken",
		"price":    "-1.00",
		"quantity": 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "Price cannot be negative", resp.Error.Message)
}

func TestItemHandler_Create_MalformedBody(t *testing.T) {
	engine := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemHandler_List(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Empty(t, data["items"])

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{"name": "A", "price": "1.00", "quantity": 1})
	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{"name": "B", "price": "2.00", "quantity": 2})

	w, resp = doJSON(t, engine, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp.Data.(map[string]any)
	assert.Len(t, data["items"], 2)
}

func TestUserHandler_Create(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
		"email":            "ada@example.com",
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"password":         "secret",
		"shipping_address": "1 Analytical Way",
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "ada@example.com", data["email"])

	// Neither the password nor its hash leaks into the response
	_, hasPassword := data["password"]
	_, hasHash := data["hashed_password"]
	assert.False(t, hasPassword)
	assert.False(t, hasHash)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	engine := newTestServer()
	createUser(t, engine, "ada@example.com")

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
		"email":      "ada@example.com",
		"first_name": "Other",
		"last_name":  "Person",
		"password":   "hunter2",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	assert.Equal(t, "A user with this email already exists", resp.Error.Message)
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
		"email":      "not-an-email",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"password":   "secret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
}

func TestUserHandler_AddToCart(t *testing.T) {
	engine := newTestServer()
	userID := createUser(t, engine, "ada@example.com")
	itemID := uuid.New()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", gin.H{
		"item_id":  itemID,
		"quantity": 2,
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, itemID.String(), line["item_id"])
	assert.Equal(t, float64(2), line["quantity"])
}

func TestUserHandler_AddToCart_UnknownUser(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+uuid.NewString()+"/cart", gin.H{
		"item_id":  uuid.New(),
		"quantity": 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeUserNotFound, resp.Error.Code)
	assert.Equal(t, "User does not exist", resp.Error.Message)
}

func TestUserHandler_AddToCart_DuplicateItem(t *testing.T) {
	engine := newTestServer()
	userID := createUser(t, engine, "ada@example.com")
	itemID := uuid.New()

	body := gin.H{"item_id": itemID, "quantity": 1}
	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeItemAlreadyInCart, resp.Error.Code)
	assert.Equal(t, "Item already in cart", resp.Error.Message)
}

func TestUserHandler_AddToCart_InsufficientStock(t *testing.T) {
	engine := newTestServer()
	userID := createUser(t, engine, "ada@example.com")

	// The mock inventory carries a stock level of 12
	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", gin.H{
		"item_id":  uuid.New(),
		"quantity": 13,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInsufficientStock, resp.Error.Code)
	assert.Equal(t, "Not enough items in stock", resp.Error.Message)
}

func TestUserHandler_AddToCart_InvalidUserID(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/users/not-a-uuid/cart", gin.H{
		"item_id":  uuid.New(),
		"quantity": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestUserHandler_AddToCart_ZeroQuantity(t *testing.T) {
	engine := newTestServer()
	userID := createUser(t, engine, "ada@example.com")

	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", gin.H{
		"item_id":  uuid.New(),
		"quantity": 0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_ListCart(t *testing.T) {
	engine := newTestServer()
	userID := createUser(t, engine, "ada@example.com")
	itemID := uuid.New()

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart", gin.H{
		"item_id":  itemID,
		"quantity": 3,
	})

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users/"+userID.String()+"/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
}

func TestUserHandler_ListCart_UnknownUser(t *testing.T) {
	engine := newTestServer()

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/users/"+uuid.NewString()+"/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Empty(t, data["items"])
}
