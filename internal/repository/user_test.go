package repository

import (
	"context"
	"testing"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/model"
	"ecommerce-platform/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDB(t))

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)
	assert.Equal(t, "hash", byEmail.Password)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_FindByEmailIsExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Bob", Email: "bob@x.com", Password: "h"}))

	_, err := repo.FindByEmail(ctx, "BOB@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Bob", Email: "bob@x.com", Password: "h1"}))
	err := repo.Create(ctx, &model.User{Name: "Bob again", Email: "bob@x.com", Password: "h2"})
	assert.ErrorIs(t, err, common.ErrorDuplicateUser)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "bob@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
