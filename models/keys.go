package models

import "github.com/google/uuid"

// ProductKey pairs the generated database identifier of a product with the
// human-chosen business identifier. The database key is immutable once set;
// the business key may change but must stay non-blank.
type ProductKey struct {
	databaseKey uuid.UUID
	businessKey string
}

// NewProductKey builds a key with a freshly generated database identifier.
func NewProductKey(businessKey string) (ProductKey, error) {
	return ProductKeyOf(uuid.New(), businessKey)
}

// ProductKeyOf builds a key from both identifiers, e.g. when mapping a
// database row back into the entity.
func ProductKeyOf(databaseKey uuid.UUID, businessKey string) (ProductKey, error) {
	key := ProductKey{databaseKey: databaseKey}
	if err := key.SetBusinessKey(businessKey); err != nil {
		return ProductKey{}, err
	}
	return key, nil
}

func (k ProductKey) DatabaseKey() uuid.UUID {
	return k.databaseKey
}

func (k ProductKey) BusinessKey() string {
	return k.businessKey
}

func (k *ProductKey) SetBusinessKey(businessKey string) error {
	if !validText(businessKey) {
		return InvalidBusinessIdentifierError{Value: businessKey}
	}
	k.businessKey = businessKey
	return nil
}

func (k ProductKey) Equal(other ProductKey) bool {
	return k.databaseKey == other.databaseKey && k.businessKey == other.businessKey
}

// UserKey pairs the generated database identifier of a user with the
// username, which acts as the business identifier.
type UserKey struct {
	databaseKey uuid.UUID
	username    string
}

func NewUserKey(username string) (UserKey, error) {
	return UserKeyOf(uuid.New(), username)
}

func UserKeyOf(databaseKey uuid.UUID, username string) (UserKey, error) {
	key := UserKey{databaseKey: databaseKey}
	if err := key.SetUsername(username); err != nil {
		return UserKey{}, err
	}
	return key, nil
}

func (k UserKey) DatabaseKey() uuid.UUID {
	return k.databaseKey
}

func (k UserKey) Username() string {
	return k.username
}

func (k *UserKey) SetUsername(username string) error {
	if !validText(username) {
		return InvalidBusinessIdentifierError{Value: username}
	}
	k.username = username
	return nil
}

func (k UserKey) Equal(other UserKey) bool {
	return k.databaseKey == other.databaseKey && k.username == other.username
}
