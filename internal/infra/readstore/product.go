package readstore

import (
	"context"

	"royalbike/internal/infra"
	"royalbike/internal/infra/db"
	"royalbike/internal/pkg/pgconv"
	"royalbike/internal/usecase/commands"
	"royalbike/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productViewQuery = `
	SELECT p.id, p.name, p.price, p.description, p.image_url, p.stock, p.kind,
	       c.id, c.name,
	       b.bike_type, b.wheel_size, b.color, b.material, b.weight
	FROM products p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN bicycles b ON b.product_id = p.id`

type productViewRow struct {
	id          uuid.UUID
	name        string
	price       pgtype.Numeric
	description string
	imageURL    string
	stock       int32
	kind        string
	categoryID  uuid.UUID
	category    string
	bikeType    pgtype.Text
	wheelSize   pgtype.Int4
	color       pgtype.Text
	material    pgtype.Text
	weight      pgtype.Numeric
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx, productViewQuery+` WHERE p.id = $1`, id)

	var pv productViewRow
	err := row.Scan(
		&pv.id, &pv.name, &pv.price, &pv.description, &pv.imageURL, &pv.stock, &pv.kind,
		&pv.categoryID, &pv.category,
		&pv.bikeType, &pv.wheelSize, &pv.color, &pv.material, &pv.weight,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return toProductView(pv)
}

func (r *ProductReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	const query = `
		SELECT p.id, p.name, p.price, p.stock, p.kind, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var (
		snap  commands.ProductSnapshot
		price pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &price, &snap.Stock, &snap.Kind, &snap.CategoryName,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	snap.Price, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product price", err)
	}

	return &snap, nil
}

func toProductView(pv productViewRow) (*queries.ProductView, error) {
	price, err := pgconv.DecimalFromNumeric(pv.price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product price", err)
	}

	view := &queries.ProductView{
		ID:          pv.id,
		Name:        pv.name,
		Price:       price,
		Description: pv.description,
		ImageURL:    pv.imageURL,
		Stock:       pv.stock,
		Kind:        pv.kind,
		Category: queries.CategoryView{
			ID:   pv.categoryID,
			Name: pv.category,
		},
	}

	// A bicycle-kind product can miss its spec row; the view degrades to an
	// absent sub-record rather than failing the whole response.
	if pv.bikeType.Valid {
		weight, err := pgconv.DecimalPtrFromNumeric(pv.weight)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert bicycle weight", err)
		}
		spec := &queries.BicycleSpecView{
			BikeType:  pv.bikeType.String,
			WheelSize: pv.wheelSize.Int32,
			Color:     pv.color.String,
			Material:  pv.material.String,
		}
		if weight != nil {
			spec.Weight = *weight
		}
		view.Bicycle = spec
	}

	return view, nil
}
