package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/henriqueacribeiro/invenhelper/models"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByBusinessID(ctx context.Context, businessID string) (*models.Product, error)
	ListIdentifiers(ctx context.Context) ([]string, error)
}

const (
	insertProductQuery = `INSERT INTO product (id, business_id, name, description, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	saveProductQuery = `UPDATE product SET business_id = $2, name = $3, description = $4, quantity = $5
		WHERE id = $1`
	getProductByIDQuery = `SELECT id, business_id, name, description, quantity
		FROM product WHERE id = $1`
	getProductByBusinessIDQuery = `SELECT id, business_id, name, description, quantity
		FROM product WHERE business_id = $1`
	listProductIdentifiersQuery = `SELECT business_id FROM product ORDER BY business_id`
)

type productRepository struct {
	conn DBTX
}

func NewProductRepository(conn DBTX) ProductRepository {
	return &productRepository{conn: conn}
}

func (r *productRepository) Insert(ctx context.Context, product *models.Product) error {
	_, err := r.conn.Exec(ctx, insertProductQuery,
		uuidParam(product.ID()), product.BusinessKey(),
		product.Name(), product.Description(), int32(product.Quantity()))
	return err
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	tag, err := r.conn.Exec(ctx, saveProductQuery,
		uuidParam(product.ID()), product.BusinessKey(),
		product.Name(), product.Description(), int32(product.Quantity()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return r.findOne(ctx, getProductByIDQuery, uuidParam(id))
}

func (r *productRepository) FindByBusinessID(ctx context.Context, businessID string) (*models.Product, error) {
	return r.findOne(ctx, getProductByBusinessIDQuery, businessID)
}

func (r *productRepository) findOne(ctx context.Context, query string, arg any) (*models.Product, error) {
	var (
		id          pgtype.UUID
		businessID  string
		name        string
		description string
		quantity    int32
	)
	err := r.conn.QueryRow(ctx, query, arg).Scan(&id, &businessID, &name, &description, &quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productFromRow(id, businessID, name, description, quantity)
}

func (r *productRepository) ListIdentifiers(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(ctx, listProductIdentifiersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	identifiers := make([]string, 0)
	for rows.Next() {
		var identifier string
		if err := rows.Scan(&identifier); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, identifier)
	}
	return identifiers, rows.Err()
}

// productFromRow rebuilds the entity from raw column values. A row that fails
// domain construction yields no entity.
func productFromRow(id pgtype.UUID, businessID, name, description string, quantity int32) (*models.Product, error) {
	key, err := models.ProductKeyOf(uuid.UUID(id.Bytes), businessID)
	if err != nil {
		return nil, fmt.Errorf("mapping product row: %w", err)
	}

	information, err := models.NewProductInformation(name, description)
	if err != nil {
		return nil, fmt.Errorf("mapping product row: %w", err)
	}

	stock, err := models.NewQuantity(int(quantity))
	if err != nil {
		return nil, fmt.Errorf("mapping product row: %w", err)
	}

	return models.NewProduct(key, information, stock), nil
}
