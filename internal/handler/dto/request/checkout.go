package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"royalbike/internal/usecase/commands"
)

type CheckoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int32  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	// No required tag on Items: an empty list must reach the command layer,
	// which rejects it with a dedicated message instead of a generic bind error.
	Items []CheckoutItemRequest `json:"items" binding:"dive"`
	Total string                `json:"total" binding:"required"`
}

func (r CheckoutRequest) ToParams() (commands.CheckoutParams, error) {
	if _, err := decimal.NewFromString(r.Total); err != nil {
		return commands.CheckoutParams{}, err
	}

	items := make([]commands.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		id, err := uuid.Parse(it.ProductID)
		if err != nil {
			return commands.CheckoutParams{}, err
		}
		items = append(items, commands.CheckoutItem{
			ProductID: id,
			Quantity:  it.Quantity,
		})
	}

	return commands.CheckoutParams{
		Items:        items,
		ClaimedTotal: r.Total,
	}, nil
}
