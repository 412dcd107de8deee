package models

import "strings"

// ProductInformation holds the descriptive fields of a product. Both fields
// are kept non-blank; setters reject blank values and keep the prior one.
type ProductInformation struct {
	name        string
	description string
}

func NewProductInformation(name, description string) (ProductInformation, error) {
	info := ProductInformation{}
	if err := info.SetName(name); err != nil {
		return ProductInformation{}, err
	}
	if err := info.SetDescription(description); err != nil {
		return ProductInformation{}, err
	}
	return info, nil
}

func (i ProductInformation) Name() string {
	return i.name
}

func (i ProductInformation) Description() string {
	return i.description
}

func (i *ProductInformation) SetName(name string) error {
	if !validText(name) {
		return InvalidTextError{Field: "product name", Value: name}
	}
	i.name = name
	return nil
}

func (i *ProductInformation) SetDescription(description string) error {
	if !validText(description) {
		return InvalidTextError{Field: "product description", Value: description}
	}
	i.description = description
	return nil
}

// UserInformation holds the descriptive fields of a user.
type UserInformation struct {
	name string
}

func NewUserInformation(name string) (UserInformation, error) {
	info := UserInformation{}
	if err := info.SetName(name); err != nil {
		return UserInformation{}, err
	}
	return info, nil
}

func (i UserInformation) Name() string {
	return i.name
}

func (i *UserInformation) SetName(name string) error {
	if !validText(name) {
		return InvalidTextError{Field: "user name", Value: name}
	}
	i.name = name
	return nil
}

func validText(text string) bool {
	return strings.TrimSpace(text) != ""
}
