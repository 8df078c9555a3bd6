package response

import (
	"royalbike/internal/usecase/queries"
)

type CartEntryResponse struct {
	Quantity int32  `json:"quantity"`
	Category string `json:"category"`
}

type CartItemResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int32            `json:"quantity"`
	Subtotal string           `json:"subtotal"`
}

type CartDetailResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalItems  int32              `json:"totalItems"`
	TotalAmount string             `json:"totalAmount"`
}

func FromCartEntries(entries map[string]queries.CartEntryView) map[string]CartEntryResponse {
	out := make(map[string]CartEntryResponse, len(entries))
	for id, e := range entries {
		out[id] = CartEntryResponse{Quantity: e.Quantity, Category: e.Category}
	}
	return out
}

func FromCartDetail(d *queries.CartDetailView) *CartDetailResponse {
	items := make([]CartItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, CartItemResponse{
			Product:  FromProductView(&it.Product),
			Quantity: it.Quantity,
			Subtotal: it.Subtotal.StringFixed(2),
		})
	}
	return &CartDetailResponse{
		Items:       items,
		TotalItems:  d.TotalItems,
		TotalAmount: d.TotalAmount.StringFixed(2),
	}
}
