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

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, user *models.User) error
}

const (
	insertUserQuery = `INSERT INTO app_user (id, username, name, can_modify_inventory, can_modify_products, can_modify_users)
		VALUES ($1, $2, $3, $4, $5, $6)`
	saveUserQuery = `UPDATE app_user SET username = $2, name = $3, can_modify_inventory = $4, can_modify_products = $5, can_modify_users = $6
		WHERE id = $1`
	getUserByIDQuery = `SELECT id, username, name, can_modify_inventory, can_modify_products, can_modify_users
		FROM app_user WHERE id = $1`
	getUserByUsernameQuery = `SELECT id, username, name, can_modify_inventory, can_modify_products, can_modify_users
		FROM app_user WHERE username = $1`
	deleteUserQuery = `DELETE FROM app_user WHERE id = $1`
)

type userRepository struct {
	conn DBTX
}

func NewUserRepository(conn DBTX) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := r.conn.Exec(ctx, insertUserQuery,
		uuidParam(user.ID()), user.Username(), user.Name(),
		user.HasPermission(models.PermissionModifyInventory),
		user.HasPermission(models.PermissionModifyProducts),
		user.HasPermission(models.PermissionModifyUsers))
	return err
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	tag, err := r.conn.Exec(ctx, saveUserQuery,
		uuidParam(user.ID()), user.Username(), user.Name(),
		user.HasPermission(models.PermissionModifyInventory),
		user.HasPermission(models.PermissionModifyProducts),
		user.HasPermission(models.PermissionModifyUsers))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.findOne(ctx, getUserByIDQuery, uuidParam(id))
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, getUserByUsernameQuery, username)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		id              pgtype.UUID
		username        string
		name            string
		modifyInventory bool
		modifyProducts  bool
		modifyUsers     bool
	)
	err := r.conn.QueryRow(ctx, query, arg).Scan(&id, &username, &name, &modifyInventory, &modifyProducts, &modifyUsers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return userFromRow(id, username, name, modifyInventory, modifyProducts, modifyUsers)
}

func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	tag, err := r.conn.Exec(ctx, deleteUserQuery, uuidParam(user.ID()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// userFromRow rebuilds the entity from raw column values. A row that fails
// domain construction yields no entity.
func userFromRow(id pgtype.UUID, username, name string, modifyInventory, modifyProducts, modifyUsers bool) (*models.User, error) {
	key, err := models.UserKeyOf(uuid.UUID(id.Bytes), username)
	if err != nil {
		return nil, fmt.Errorf("mapping user row: %w", err)
	}

	information, err := models.NewUserInformation(name)
	if err != nil {
		return nil, fmt.Errorf("mapping user row: %w", err)
	}

	user := models.NewUser(key, information)
	user.SetPermission(models.PermissionModifyInventory, modifyInventory)
	user.SetPermission(models.PermissionModifyProducts, modifyProducts)
	user.SetPermission(models.PermissionModifyUsers, modifyUsers)
	return user, nil
}
