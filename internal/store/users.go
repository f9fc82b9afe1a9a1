package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/scriba-dev/scriba/internal/models"
)

// UserStore is the persistence gateway for users. Implementations own
// the transaction scope of every operation; callers never see the
// underlying connection.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type GormUserStore struct {
	conn *gorm.DB
}

func NewUserStore(conn *gorm.DB) *GormUserStore {
	return &GormUserStore{conn: conn}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})

	return translate(err)
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&user, id).Error
	})

	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// translate maps gorm failures onto the store's error taxonomy. Anything
// it does not recognize passes through untouched and is treated as an
// internal failure by callers.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
