package models

import "github.com/google/uuid"

// Permission is one of the closed set of capabilities a user may hold.
type Permission int

const (
	PermissionModifyInventory Permission = iota
	PermissionModifyProducts
	PermissionModifyUsers
)

// Name returns the public name of the permission, as used on JSON documents.
func (p Permission) Name() string {
	switch p {
	case PermissionModifyInventory:
		return "CAN_MODIFY_INVENTORY"
	case PermissionModifyProducts:
		return "CAN_MODIFY_PRODUCTS"
	case PermissionModifyUsers:
		return "CAN_MODIFY_USERS"
	}
	return "NO_PERMISSION"
}

// DatabaseName returns the column that stores the permission grant.
func (p Permission) DatabaseName() string {
	switch p {
	case PermissionModifyInventory:
		return "can_modify_inventory"
	case PermissionModifyProducts:
		return "can_modify_products"
	case PermissionModifyUsers:
		return "can_modify_users"
	}
	return "no_permission"
}

// Permissions lists every existing permission.
func Permissions() []Permission {
	return []Permission{PermissionModifyInventory, PermissionModifyProducts, PermissionModifyUsers}
}

// PermissionFromName resolves a public permission name into its tag.
func PermissionFromName(name string) (Permission, bool) {
	for _, p := range Permissions() {
		if p.Name() == name {
			return p, true
		}
	}
	return 0, false
}

// PermissionFromDatabaseName resolves a column name into its tag.
func PermissionFromDatabaseName(name string) (Permission, bool) {
	for _, p := range Permissions() {
		if p.DatabaseName() == name {
			return p, true
		}
	}
	return 0, false
}

// User is an account that may act on the inventory, gated by its permission
// map. Every permission starts denied.
type User struct {
	key         UserKey
	information UserInformation
	permissions map[Permission]bool
}

func NewUser(key UserKey, information UserInformation) *User {
	permissions := make(map[Permission]bool, len(Permissions()))
	for _, p := range Permissions() {
		permissions[p] = false
	}
	return &User{key: key, information: information, permissions: permissions}
}

// UserDocument is the public JSON projection of a user. Permissions are
// intentionally excluded.
type UserDocument struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// PermissionEntry is one permission assignment on a user document.
type PermissionEntry struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// CreateUserDocument is the request body for user creation.
type CreateUserDocument struct {
	RequiringUser string            `json:"requiring_user"`
	Username      string            `json:"username"`
	Name          string            `json:"name"`
	Permissions   []PermissionEntry `json:"permissions,omitempty"`
}

// UpdateUserDocument is the request body for partial user updates. Absent
// fields are left untouched.
type UpdateUserDocument struct {
	RequiringUser string             `json:"requiring_user"`
	Username      string             `json:"username"`
	Name          *string            `json:"name,omitempty"`
	Permissions   *[]PermissionEntry `json:"permissions,omitempty"`
}

// DeleteUserDocument is the request body for user deletion.
type DeleteUserDocument struct {
	RequiringUser string `json:"requiring_user"`
	UserToDelete  string `json:"user_to_delete"`
}

// NewUserFromDocument converts a creation document into a User with a freshly
// generated database key. An unrecognized permission name fails the whole
// conversion with InvalidDocumentError.
func NewUserFromDocument(doc CreateUserDocument) (*User, error) {
	key, err := NewUserKey(doc.Username)
	if err != nil {
		return nil, InvalidDocumentError{Concept: "User", Err: err}
	}

	information, err := NewUserInformation(doc.Name)
	if err != nil {
		return nil, InvalidDocumentError{Concept: "User", Err: err}
	}

	user := NewUser(key, information)
	for _, entry := range doc.Permissions {
		if err := user.AddPermission(entry.Name, entry.Value); err != nil {
			return nil, InvalidDocumentError{Concept: "User", Err: err}
		}
	}
	return user, nil
}

func (u *User) ID() uuid.UUID {
	return u.key.DatabaseKey()
}

func (u *User) Username() string {
	return u.key.Username()
}

func (u *User) Name() string {
	return u.information.Name()
}

func (u *User) UpdateUsername(username string) error {
	return u.key.SetUsername(username)
}

func (u *User) UpdateName(name string) error {
	return u.information.SetName(name)
}

// AddPermission stores a grant by its public name. Names outside the closed
// set are rejected.
func (u *User) AddPermission(name string, value bool) error {
	permission, ok := PermissionFromName(name)
	if !ok {
		return InvalidPermissionError{Name: name}
	}
	u.permissions[permission] = value
	return nil
}

// SetPermission stores a grant by its tag.
func (u *User) SetPermission(permission Permission, value bool) {
	u.permissions[permission] = value
}

// HasPermission reports whether the permission is granted.
func (u *User) HasPermission(permission Permission) bool {
	return u.permissions[permission]
}

// CheckPermission reports whether the named permission is granted. Unknown or
// unset names read as denied; the check never fails.
func (u *User) CheckPermission(name string) bool {
	permission, ok := PermissionFromName(name)
	if !ok {
		return false
	}
	return u.permissions[permission]
}

// ConvertToJSON returns the public projection of the user.
func (u *User) ConvertToJSON() any {
	return UserDocument{
		Username: u.key.Username(),
		Name:     u.information.Name(),
	}
}

// SameAs compares business identity only, by username.
func (u *User) SameAs(other *User) bool {
	return u.key.Username() == other.key.Username()
}

// Equal compares the full state of both users.
func (u *User) Equal(other *User) bool {
	if !u.SameAs(other) || u.information != other.information {
		return false
	}
	for _, p := range Permissions() {
		if u.permissions[p] != other.permissions[p] {
			return false
		}
	}
	return true
}
