package api

import (
	"errors"
	"net/http"

	reqdto "royalbike/internal/handler/dto/request"
	resdto "royalbike/internal/handler/dto/response"
	"royalbike/internal/handler/httperr"
	"royalbike/internal/handler/middleware"
	"royalbike/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Checkout
// @Description Atomically record sales, decrement stock and debit the user's credit
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Checkout requires at least one item",
			})
		case errors.Is(err, commands.ErrInvalidTotal):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Total must be a positive amount",
			})
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be a positive integer",
			})
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrInsufficientStock),
			errors.Is(err, commands.ErrInsufficientCredit):
			// Surface the detail (item, available, requested / balance, total)
			// carried by the command error.
			httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
		case errors.Is(err, commands.ErrBicycleSpecMissing),
			errors.Is(err, commands.ErrUnsupportedProductType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Product cannot be sold",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
