// Package store is the only place that reads or writes user and payment rows.
// Every filter goes through gorm placeholders.
package store

import (
	"context"
	"errors"

	"userpay-app/internal/domain/billing"
	"userpay-app/internal/domain/users"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("store: record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UserByID(ctx context.Context, id uint) (users.User, error) {
	var user users.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return users.User{}, ErrNotFound
	}
	return user, err
}

func (s *Store) CreateUser(ctx context.Context, user *users.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// DeleteUser removes the row if present. Deleting a missing row is not an error.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&users.User{}).Error
}

func (s *Store) PaymentsByUser(ctx context.Context, userID uint) ([]billing.PaymentRecord, error) {
	var records []billing.PaymentRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
