package response

import (
	"github.com/google/uuid"

	"royalbike/internal/usecase/queries"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BicycleSpecResponse struct {
	BikeType  string `json:"bikeType"`
	WheelSize int32  `json:"wheelSize"`
	Color     string `json:"color"`
	Material  string `json:"material"`
	Weight    string `json:"weight"`
}

type ProductResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Price       string               `json:"price"`
	Description string               `json:"description"`
	ImageURL    string               `json:"imageUrl"`
	Stock       int32                `json:"stock"`
	Kind        string               `json:"kind"`
	Category    CategoryResponse     `json:"category"`
	Bicycle     *BicycleSpecResponse `json:"bicycle,omitempty"`
}

func FromProductView(pv *queries.ProductView) *ProductResponse {
	resp := &ProductResponse{
		ID:          pv.ID,
		Name:        pv.Name,
		Price:       pv.Price.StringFixed(2),
		Description: pv.Description,
		ImageURL:    pv.ImageURL,
		Stock:       pv.Stock,
		Kind:        pv.Kind,
		Category: CategoryResponse{
			ID:   pv.Category.ID,
			Name: pv.Category.Name,
		},
	}
	if pv.Bicycle != nil {
		resp.Bicycle = &BicycleSpecResponse{
			BikeType:  pv.Bicycle.BikeType,
			WheelSize: pv.Bicycle.WheelSize,
			Color:     pv.Bicycle.Color,
			Material:  pv.Bicycle.Material,
			Weight:    pv.Bicycle.Weight.StringFixed(2),
		}
	}
	return resp
}

func FromProductViews(pvs []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(pvs))
	for _, pv := range pvs {
		out = append(out, FromProductView(pv))
	}
	return out
}
