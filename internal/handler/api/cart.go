package api

import (
	"errors"
	"net/http"

	reqdto "royalbike/internal/handler/dto/request"
	resdto "royalbike/internal/handler/dto/response"
	"royalbike/internal/handler/middleware"
	"royalbike/internal/usecase/commands"
	"royalbike/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Add cart item
// @Description Put a product into the user's cart, replacing any existing entry
// @Tags cart
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	if err := h.cartCommands.AddItem(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update cart item quantity
// @Description Set a new quantity for a product already chosen by the client
// @Tags cart
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cartCommands.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get raw cart
// @Description Return the cart exactly as cached, category snapshots included
// @Tags cart
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 200 {object} map[string]resdto.CartEntryResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entries, err := h.cartQueries.Raw(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartEntries(entries))
}

// @Summary Get detailed cart
// @Description Return cart items joined with current catalog data and totals
// @Tags cart
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 200 {object} resdto.CartDetailResponse
// @Failure 401 {object} map[string]string
// @Router /cart/detail [get]
func (h *CartHandler) GetCartDetail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	detail, err := h.cartQueries.Detailed(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartDetail(detail))
}

// @Summary Remove cart item
// @Description Remove one product from the user's cart
// @Tags cart
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param productId path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	if err := h.cartCommands.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Description Drop the user's entire cart; succeeds even when no cart exists
// @Tags cart
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be a positive integer",
		})
	case errors.Is(err, commands.ErrCartEmpty):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, commands.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
