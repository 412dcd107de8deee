package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henriqueacribeiro/invenhelper/models"
)

func rowID(t *testing.T) (uuid.UUID, pgtype.UUID) {
	t.Helper()
	id := uuid.New()
	return id, pgtype.UUID{Bytes: id, Valid: true}
}

func TestProductFromRow(t *testing.T) {
	id, raw := rowID(t)

	product, err := productFromRow(raw, "SKU1", "Widget", "A widget", 10)
	require.NoError(t, err)
	assert.Equal(t, id, product.ID())
	assert.Equal(t, "SKU1", product.BusinessKey())
	assert.Equal(t, "Widget", product.Name())
	assert.Equal(t, "A widget", product.Description())
	assert.Equal(t, 10, product.Quantity())
}

func TestProductFromRowInvalidColumns(t *testing.T) {
	_, raw := rowID(t)

	_, err := productFromRow(raw, "", "Widget", "A widget", 10)
	assert.Error(t, err, "a blank business identifier yields no entity")

	_, err = productFromRow(raw, "SKU1", " ", "A widget", 10)
	assert.Error(t, err, "a blank name yields no entity")

	_, err = productFromRow(raw, "SKU1", "Widget", "A widget", -1)
	assert.Error(t, err, "a negative quantity yields no entity")
}

func TestUserFromRow(t *testing.T) {
	id, raw := rowID(t)

	user, err := userFromRow(raw, "jdoe", "John Doe", true, false, true)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID())
	assert.Equal(t, "jdoe", user.Username())
	assert.Equal(t, "John Doe", user.Name())
	assert.True(t, user.HasPermission(models.PermissionModifyInventory))
	assert.False(t, user.HasPermission(models.PermissionModifyProducts))
	assert.True(t, user.HasPermission(models.PermissionModifyUsers))
}

func TestUserFromRowInvalidColumns(t *testing.T) {
	_, raw := rowID(t)

	_, err := userFromRow(raw, "", "John Doe", false, false, false)
	assert.Error(t, err, "a blank username yields no entity")

	_, err = userFromRow(raw, "jdoe", " ", false, false, false)
	assert.Error(t, err, "a blank name yields no entity")
}
