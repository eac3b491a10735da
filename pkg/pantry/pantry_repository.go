package pantry

import (
	"context"
	"errors"

	"smart-pantry-backend/entities"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		GetItemsByUser(ctx context.Context, username string) ([]*entities.PantryItem, error)
		DeleteItem(ctx context.Context, id string) error
		UpdateItemImage(ctx context.Context, id string, imageURL string) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetItemsByUser(ctx context.Context, username string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("expiry asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem is a no-op when the row is already gone; concurrent sweeps may
// race on the same expired item.
func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *pantryRepository) UpdateItemImage(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"image_url": imageURL}).Error
}
