package repository

import (
	"context"
	"testing"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/model"
	"ecommerce-platform/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(userID string, total int64) *model.Order {
	return &model.Order{
		UserID: userID,
		Items: []model.LineItem{
			{ProductID: "p1", Name: "Mug", Price: decimal.NewFromInt(15), Quantity: 2},
			{ProductID: "p2", Name: "Lamp", Price: decimal.RequireFromString("45.50"), Quantity: 1},
		},
		Total:           decimal.NewFromInt(total),
		ShippingAddress: model.ShippingAddress{FullName: "Alice", Address: "1 Main St", City: "Springfield", ZipCode: "12345"},
	}
}

func TestOrderRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testutil.NewDB(t))

	order := newOrder("u1", 100)
	require.NoError(t, repo.Create(ctx, order))
	require.NotEmpty(t, order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Total))
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assert.Equal(t, "Springfield", got.ShippingAddress.City)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "p1", got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("45.5").Equal(got.Items[1].Price))
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestOrderRepository_FindByUserIDIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testutil.NewDB(t))

	first := newOrder("alice", 10)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, newOrder("bob", 20)))
	second := newOrder("alice", 30)
	require.NoError(t, repo.Create(ctx, second))

	orders, err := repo.FindByUserID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "alice", o.UserID)
	}
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	none, err := repo.FindByUserID(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderRepository_KeepsTotalAsSent(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testutil.NewDB(t))

	for _, total := range []string{"19.999", "0.12345678", "1234567.5"} {
		order := newOrder("u1", 0)
		order.Total = decimal.RequireFromString(total)
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, total, got.Total.String())
	}
}
