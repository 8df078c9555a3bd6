package api

import (
	"net/http"

	resdto "royalbike/internal/handler/dto/response"
	"royalbike/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Top selling bicycles
// @Description Rank bicycles by total quantity sold and return the leaders
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products/top-selling [get]
func (h *CatalogHandler) TopSellingBicycles(c *gin.Context) {
	views, err := h.catalogQueries.TopSellingBicycles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}
