package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/henriqueacribeiro/invenhelper/models"
	"github.com/henriqueacribeiro/invenhelper/repository"
)

type fakeProductRepository struct {
	products  map[string]*models.Product
	insertErr error
	saveErr   error
	listErr   error
	saved     int
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[string]*models.Product)}
}

func (f *fakeProductRepository) Insert(_ context.Context, product *models.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.products[product.BusinessKey()] = product
	return nil
}

func (f *fakeProductRepository) Save(_ context.Context, product *models.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.products[product.BusinessKey()] = product
	f.saved++
	return nil
}

func (f *fakeProductRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	for _, product := range f.products {
		if product.ID() == id {
			return product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepository) FindByBusinessID(_ context.Context, businessID string) (*models.Product, error) {
	product, ok := f.products[businessID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepository) ListIdentifiers(_ context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	identifiers := make([]string, 0, len(f.products))
	for identifier := range f.products {
		identifiers = append(identifiers, identifier)
	}
	return identifiers, nil
}

type fakeUserRepository struct {
	users     map[string]*models.User
	insertErr error
	saveErr   error
	deleteErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) Insert(_ context.Context, user *models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users[user.Username()] = user
	return nil
}

func (f *fakeUserRepository) Save(_ context.Context, user *models.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.users[user.Username()] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID() == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) Delete(_ context.Context, user *models.User) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[user.Username()]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, user.Username())
	return nil
}

func testUser(t *testing.T, username string, grants ...models.Permission) *models.User {
	t.Helper()
	user, err := models.NewUserFromDocument(models.CreateUserDocument{
		Username: username,
		Name:     "Test User",
	})
	require.NoError(t, err)
	for _, grant := range grants {
		user.SetPermission(grant, true)
	}
	return user
}

func testProduct(t *testing.T, identifier string, quantity int) *models.Product {
	t.Helper()
	product, err := models.NewProductFromDocument(models.CreateProductDocument{
		Identifier:  identifier,
		Name:        "Widget",
		Description: "A widget",
		Quantity:    &quantity,
	})
	require.NoError(t, err)
	return product
}
