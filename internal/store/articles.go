package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/scriba-dev/scriba/internal/models"
)

// ArticleStore is the persistence gateway for articles.
type ArticleStore interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	Update(ctx context.Context, id uint, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
}

type GormArticleStore struct {
	conn *gorm.DB
}

func NewArticleStore(conn *gorm.DB) *GormArticleStore {
	return &GormArticleStore{conn: conn}
}

func (s *GormArticleStore) Create(ctx context.Context, article *models.Article) error {
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(article).Error
	})

	return translate(err)
}

func (s *GormArticleStore) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article

	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&article, id).Error
	})

	if err != nil {
		return nil, translate(err)
	}

	return &article, nil
}

// Update replaces header, description and author of the stored row. The
// lookup and the write share one transaction, so a row deleted between
// them cannot be half-updated.
func (s *GormArticleStore) Update(ctx context.Context, id uint, article *models.Article) (*models.Article, error) {
	var existing models.Article

	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		existing.Header = article.Header
		existing.Description = article.Description
		existing.AuthorID = article.AuthorID

		return tx.Save(&existing).Error
	})

	if err != nil {
		return nil, translate(err)
	}

	return &existing, nil
}

func (s *GormArticleStore) Delete(ctx context.Context, id uint) error {
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article

		if err := tx.First(&article, id).Error; err != nil {
			return err
		}

		return tx.Delete(&article).Error
	})

	return translate(err)
}
