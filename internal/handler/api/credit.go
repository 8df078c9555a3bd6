package api

import (
	"net/http"

	resdto "royalbike/internal/handler/dto/response"
	"royalbike/internal/handler/middleware"
	"royalbike/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditCommands commands.CreditCommands
}

func NewCreditHandler(creditCommands commands.CreditCommands) *CreditHandler {
	return &CreditHandler{
		creditCommands: creditCommands,
	}
}

// @Summary Get credit balance
// @Description Return the user's credit balance, provisioning the default on first access
// @Tags credit
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 200 {object} resdto.CreditResponse
// @Failure 401 {object} map[string]string
// @Router /credit [get]
func (h *CreditHandler) GetCredit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.creditCommands.GetOrInit(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreditResult(result))
}
