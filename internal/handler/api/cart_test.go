//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"royalbike/internal/handler/api"
	resdto "royalbike/internal/handler/dto/response"
	"royalbike/internal/handler/middleware"
	"royalbike/internal/usecase/commands"
	"royalbike/internal/usecase/queries"
	"royalbike/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fakeCartCommands struct {
	addErr    error
	updateErr error
	removeErr error
	clearErr  error
	lastUser  uuid.UUID
	lastQty   int32
}

func (f *fakeCartCommands) AddItem(_ context.Context, userID, _ uuid.UUID, quantity int32) error {
	f.lastUser, f.lastQty = userID, quantity
	return f.addErr
}

func (f *fakeCartCommands) UpdateQuantity(_ context.Context, userID, _ uuid.UUID, quantity int32) error {
	f.lastUser, f.lastQty = userID, quantity
	return f.updateErr
}

func (f *fakeCartCommands) RemoveItem(_ context.Context, userID, _ uuid.UUID) error {
	f.lastUser = userID
	return f.removeErr
}

func (f *fakeCartCommands) Clear(_ context.Context, userID uuid.UUID) error {
	f.lastUser = userID
	return f.clearErr
}

type fakeCartQueries struct {
	raw    map[string]queries.CartEntryView
	detail *queries.CartDetailView
	err    error
}

func (f *fakeCartQueries) Raw(_ context.Context, _ uuid.UUID) (map[string]queries.CartEntryView, error) {
	return f.raw, f.err
}

func (f *fakeCartQueries) Detailed(_ context.Context, _ uuid.UUID) (*queries.CartDetailView, error) {
	return f.detail, f.err
}

type CartHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeCartCommands
	queries  *fakeCartQueries
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &fakeCartCommands{}
	s.queries = &fakeCartQueries{}
	handler := api.NewCartHandler(s.commands, s.queries)

	group := s.router.Group("/api/cart")
	group.Use(middleware.RequireUser())
	group.GET("", handler.GetCart)
	group.DELETE("", handler.ClearCart)
	group.GET("/detail", handler.GetCartDetail)
	group.POST("/items", handler.AddItem)
	group.PATCH("/items/:productId", handler.UpdateQuantity)
	group.DELETE("/items/:productId", handler.RemoveItem)
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestIdentity() {
	s.Run("error: 401 without X-User-ID header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "X-User-ID")
	})

	s.Run("error: 401 for malformed X-User-ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "valid UUID")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	userID := uuid.New()
	body := map[string]any{"product_id": uuid.New().String(), "quantity": 2}

	s.Run("success: 204 and command receives the identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID.String())

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(userID, s.commands.lastUser)
		s.Equal(int32(2), s.commands.lastQty)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": "nope", "quantity": 1}, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on zero quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": uuid.New().String(), "quantity": 0}, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when product is unknown", func() {
		s.commands.addErr = commands.ErrProductNotFound
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
		s.commands.addErr = nil
	})
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	userID := uuid.New()
	url := "/api/cart/items/" + uuid.New().String()

	s.Run("success: 204", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"quantity": 5}, userID.String())
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(int32(5), s.commands.lastQty)
	})

	s.Run("error: 400 on malformed product id in path", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/cart/items/nope",
			map[string]any{"quantity": 5}, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "product ID")
	})
}

func (s *CartHandlerTestSuite) TestGetCart() {
	userID := uuid.New()
	productID := uuid.New()

	s.Run("success: returns cached entries", func() {
		s.queries.raw = map[string]queries.CartEntryView{
			productID.String(): {Quantity: 2, Category: "road"},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, userID.String())

		var response map[string]resdto.CartEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int32(2), response[productID.String()].Quantity)
		s.Equal("road", response[productID.String()].Category)
	})
}

func (s *CartHandlerTestSuite) TestGetCartDetail() {
	userID := uuid.New()

	s.Run("success: renders totals as fixed-point strings", func() {
		s.queries.detail = &queries.CartDetailView{
			Items: []queries.CartItemView{
				{
					Product: queries.ProductView{
						ID:    uuid.New(),
						Name:  "Roadster 500",
						Price: decimal.RequireFromString("250.00"),
						Kind:  "bicycle",
					},
					Quantity: 2,
					Subtotal: decimal.RequireFromString("500.00"),
				},
			},
			TotalItems:  2,
			TotalAmount: decimal.RequireFromString("500.00"),
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/detail", nil, userID.String())

		var response resdto.CartDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("500.00", response.TotalAmount)
		s.Require().Len(response.Items, 1)
		s.Equal("250.00", response.Items[0].Product.Price)
		s.Equal("500.00", response.Items[0].Subtotal)
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	userID := uuid.New()
	url := "/api/cart/items/" + uuid.New().String()

	s.Run("success: 204", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, userID.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when cart is empty", func() {
		s.commands.removeErr = commands.ErrCartEmpty
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "empty")
		s.commands.removeErr = nil
	})

	s.Run("error: 404 when item is not in the cart", func() {
		s.commands.removeErr = commands.ErrCartItemNotFound
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found in cart")
		s.commands.removeErr = nil
	})
}

func (s *CartHandlerTestSuite) TestClearCart() {
	userID := uuid.New()

	s.Run("success: 204 even for an absent cart", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, userID.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
