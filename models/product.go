package models

import "github.com/google/uuid"

// Product is an item on the inventory: a key pair, descriptive information
// and a non-negative stock quantity.
type Product struct {
	key         ProductKey
	information ProductInformation
	quantity    Quantity
}

func NewProduct(key ProductKey, information ProductInformation, quantity Quantity) *Product {
	return &Product{key: key, information: information, quantity: quantity}
}

// ProductDocument is the public JSON projection of a product. The database
// key is never exposed.
type ProductDocument struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// CreateProductDocument is the request body for product creation. Quantity is
// optional and defaults to zero.
type CreateProductDocument struct {
	RequiringUser string `json:"requiring_user"`
	Identifier    string `json:"identifier"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Quantity      *int   `json:"quantity,omitempty"`
}

// UpdateProductDocument is the request body for partial product updates.
// Absent fields are left untouched.
type UpdateProductDocument struct {
	RequiringUser string  `json:"requiring_user"`
	Identifier    string  `json:"identifier"`
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// NewProductFromDocument converts a creation document into a Product with a
// freshly generated database key. Any invalid field fails the whole
// conversion with InvalidDocumentError.
func NewProductFromDocument(doc CreateProductDocument) (*Product, error) {
	key, err := NewProductKey(doc.Identifier)
	if err != nil {
		return nil, InvalidDocumentError{Concept: "Product", Err: err}
	}

	information, err := NewProductInformation(doc.Name, doc.Description)
	if err != nil {
		return nil, InvalidDocumentError{Concept: "Product", Err: err}
	}

	value := 0
	if doc.Quantity != nil {
		value = *doc.Quantity
	}
	quantity, err := NewQuantity(value)
	if err != nil {
		return nil, InvalidDocumentError{Concept: "Product", Err: err}
	}

	return NewProduct(key, information, quantity), nil
}

func (p *Product) ID() uuid.UUID {
	return p.key.DatabaseKey()
}

func (p *Product) BusinessKey() string {
	return p.key.BusinessKey()
}

func (p *Product) Name() string {
	return p.information.Name()
}

func (p *Product) Description() string {
	return p.information.Description()
}

func (p *Product) Quantity() int {
	return p.quantity.Value()
}

// IncreaseQuantity raises the stock counter, rejecting results below zero.
func (p *Product) IncreaseQuantity(by int) error {
	return p.quantity.Increase(by)
}

// DecreaseQuantity lowers the stock counter, rejecting results below zero.
func (p *Product) DecreaseQuantity(by int) error {
	return p.quantity.Decrease(by)
}

func (p *Product) ChangeName(name string) error {
	return p.information.SetName(name)
}

func (p *Product) ChangeDescription(description string) error {
	return p.information.SetDescription(description)
}

// ConvertToJSON returns the public projection of the product.
func (p *Product) ConvertToJSON() any {
	return ProductDocument{
		Identifier:  p.key.BusinessKey(),
		Name:        p.information.Name(),
		Description: p.information.Description(),
		Quantity:    p.quantity.Value(),
	}
}

// SameAs compares business identity only, by the key pair.
func (p *Product) SameAs(other *Product) bool {
	return p.key.Equal(other.key)
}

// Equal compares the full state of both products.
func (p *Product) Equal(other *Product) bool {
	return p.key.Equal(other.key) &&
		p.information == other.information &&
		p.quantity.Value() == other.quantity.Value()
}
