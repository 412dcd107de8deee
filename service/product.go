package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/henriqueacribeiro/invenhelper/models"
	"github.com/henriqueacribeiro/invenhelper/repository"
)

type ProductService interface {
	// FindByBusinessKey resolves a product by its business identifier. It
	// never fails: an invalid or unknown identifier reads as absence.
	FindByBusinessKey(ctx context.Context, businessKey string) (*models.Product, bool)
	// ListIdentifiers returns every registered business identifier; on a
	// persistence failure the list is empty.
	ListIdentifiers(ctx context.Context) []string
	CreateNewProduct(ctx context.Context, doc models.CreateProductDocument) models.Response
	IncreaseQuantity(ctx context.Context, businessKey string, quantity int, requiringUser string) models.Response
	DecreaseQuantity(ctx context.Context, businessKey string, quantity int, requiringUser string) models.Response
	UpdateProductInformation(ctx context.Context, doc models.UpdateProductDocument) models.Response
}

type productService struct {
	repo   repository.ProductRepository
	users  UserService
	logger zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, users UserService, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		users:  users,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

func (s *productService) FindByBusinessKey(ctx context.Context, businessKey string) (*models.Product, bool) {
	if _, err := models.NewProductKey(businessKey); err != nil {
		return nil, false
	}

	product, err := s.repo.FindByBusinessID(ctx, businessKey)
	if err != nil {
		if !repository.IsNotFound(err) {
			s.logger.Error().Err(err).Str("identifier", businessKey).Msg("error fetching product")
		}
		return nil, false
	}
	return product, true
}

func (s *productService) ListIdentifiers(ctx context.Context) []string {
	identifiers, err := s.repo.ListIdentifiers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("error listing product identifiers")
		return []string{}
	}
	return identifiers
}

func (s *productService) CreateNewProduct(ctx context.Context, doc models.CreateProductDocument) models.Response {
	if err := s.users.CheckUserCanPerformAction(ctx, models.PermissionModifyProducts, "add product", doc.RequiringUser); err != nil {
		s.logger.Error().Err(err).Msg("product creation rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	product, err := models.NewProductFromDocument(doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("invalid JSON object to be converted to Product")
		return models.NewResponseWithInformation(false, "Error converting the JSON into a Product. Check the request")
	}

	if _, exists := s.FindByBusinessKey(ctx, product.BusinessKey()); exists {
		return models.NewResponseWithInformation(false, "A product with the same business identifier is already registered")
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("identifier", product.BusinessKey()).Msg("error saving product")
		return models.NewResponseWithInformation(false, "Error saving on the database")
	}
	return models.NewResponseWithObject(true, "Success creating the product", product)
}

func (s *productService) IncreaseQuantity(ctx context.Context, businessKey string, quantity int, requiringUser string) models.Response {
	return s.changeQuantity(ctx, businessKey, quantity, requiringUser, "increase inventory", (*models.Product).IncreaseQuantity,
		"Invalid quantity obtained while trying to increase")
}

func (s *productService) DecreaseQuantity(ctx context.Context, businessKey string, quantity int, requiringUser string) models.Response {
	return s.changeQuantity(ctx, businessKey, quantity, requiringUser, "decrease inventory", (*models.Product).DecreaseQuantity,
		"Invalid quantity obtained while trying to decrease")
}

func (s *productService) changeQuantity(ctx context.Context, businessKey string, quantity int, requiringUser, action string,
	mutate func(*models.Product, int) error, rejectionMessage string) models.Response {

	if err := s.users.CheckUserCanPerformAction(ctx, models.PermissionModifyInventory, action, requiringUser); err != nil {
		s.logger.Error().Err(err).Msg("quantity change rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	product, ok := s.FindByBusinessKey(ctx, businessKey)
	if !ok {
		return models.NewResponseWithInformation(false, "Product not found")
	}

	if quantity < 0 {
		return models.NewResponseWithInformation(false, "The number must be positive")
	}

	if err := mutate(product, quantity); err != nil {
		var invalid models.InvalidQuantityError
		if errors.As(err, &invalid) {
			return models.NewResponseWithInformation(false, rejectionMessage)
		}
		return models.NewResponseWithInformation(false, err.Error())
	}

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("identifier", businessKey).Msg("error updating product")
		return models.NewResponseWithObject(false, "Error updating database", product)
	}
	return models.NewResponseWithObject(true, "Quantity updated", product)
}

func (s *productService) UpdateProductInformation(ctx context.Context, doc models.UpdateProductDocument) models.Response {
	product, ok := s.FindByBusinessKey(ctx, doc.Identifier)
	if !ok {
		return models.NewResponseWithInformation(false, "Product not found")
	}

	if err := s.users.CheckUserCanPerformAction(ctx, models.PermissionModifyProducts, "update product", doc.RequiringUser); err != nil {
		s.logger.Error().Err(err).Msg("product update rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	hasChanges := false
	if doc.Name != nil {
		if err := product.ChangeName(*doc.Name); err != nil {
			return models.NewResponseWithInformation(false, err.Error())
		}
		hasChanges = true
	}
	if doc.Description != nil {
		if err := product.ChangeDescription(*doc.Description); err != nil {
			return models.NewResponseWithInformation(false, err.Error())
		}
		hasChanges = true
	}

	if !hasChanges {
		return models.NewResponseWithInformation(true, "No information to update product")
	}

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("identifier", doc.Identifier).Msg("error updating product")
		return models.NewResponseWithObject(false, "Error updating database", product)
	}
	return models.NewResponseWithObject(true, "Product updated", product)
}
