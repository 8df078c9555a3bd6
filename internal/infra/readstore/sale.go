package readstore

import (
	"context"

	"royalbike/internal/infra"
	"royalbike/internal/infra/db"
	"royalbike/internal/usecase/queries"
)

type SaleReadStore struct {
	db db.DBTX
}

func NewSaleReadStore(db db.DBTX) *SaleReadStore {
	return &SaleReadStore{db: db}
}

func (r *SaleReadStore) TopSellingBicycles(ctx context.Context, limit int) ([]*queries.ProductView, error) {
	query := productViewQuery + `
	JOIN (
		SELECT bicycle_id, SUM(quantity) AS total_sold
		FROM bicycle_sales
		GROUP BY bicycle_id
		ORDER BY total_sold DESC
		LIMIT $1
	) top ON top.bicycle_id = p.id
	ORDER BY top.total_sold DESC`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query top selling bicycles", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		var pv productViewRow
		err := rows.Scan(
			&pv.id, &pv.name, &pv.price, &pv.description, &pv.imageURL, &pv.stock, &pv.kind,
			&pv.categoryID, &pv.category,
			&pv.bikeType, &pv.wheelSize, &pv.color, &pv.material, &pv.weight,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan top selling bicycle", err)
		}
		view, err := toProductView(pv)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read top selling bicycles", err)
	}

	return result, nil
}
