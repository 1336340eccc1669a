package service

import (
	"context"
	"errors"
	"testing"

	"userpay-app/database"
	"userpay-app/internal/domain/billing"
	"userpay-app/internal/domain/users"
	"userpay-app/internal/store"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return store.New(db)
}

var errStoreDown = errors.New("pq: connection refused to 10.0.0.5:5432 as admin")

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) UserByID(context.Context, uint) (users.User, error) {
	return users.User{}, errStoreDown
}
func (brokenStore) CreateUser(context.Context, *users.User) error { return errStoreDown }
func (brokenStore) DeleteUser(context.Context, uint) error        { return errStoreDown }
func (brokenStore) PaymentsByUser(context.Context, uint) ([]billing.PaymentRecord, error) {
	return nil, errStoreDown
}
