package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/storefront/backend/internal/application/cart"
)

// UserHandler handles user and cart API endpoints
type UserHandler struct {
	BaseHandler
	userService *cartapp.UserService
	cartService *cartapp.CartService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *cartapp.UserService, cartService *cartapp.CartService) *UserHandler {
	return &UserHandler{
		userService: userService,
		cartService: cartService,
	}
}

// RegisterRoutes registers user and cart routes on the given group
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.POST("/:id/cart", h.AddToCart)
		users.GET("/:id/cart", h.ListCart)
	}
}

// CreateUserRequest represents a request to register a new user
type CreateUserRequest struct {
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"first_name" binding:"required,min=1,max=100"`
	LastName        string `json:"last_name" binding:"required,min=1,max=100"`
	Password        string `json:"password" binding:"required,min=1"`
	ShippingAddress string `json:"shipping_address" binding:"max=2000"`
}

// AddToCartRequest represents a request to add an item to the cart
type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int64     `json:"quantity" binding:"required,gt=0"`
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), cartapp.CreateUserRequest{
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AddToCart handles POST /users/:id/cart
func (h *UserHandler) AddToCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), userID, cartapp.AddToCartRequest{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListCart handles GET /users/:id/cart
func (h *UserHandler) ListCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.cartService.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
