package suggestion

import (
	"context"
	"errors"

	"smart-pantry-backend/entities"

	"gorm.io/gorm"
)

type (
	SuggestionRepository interface {
		FindHidden(ctx context.Context, username string) ([]*entities.HiddenSuggestion, error)
		FindHiddenByIngredient(ctx context.Context, username string, ingredient string) ([]*entities.HiddenSuggestion, error)
		InsertHidden(ctx context.Context, hidden *entities.HiddenSuggestion) error
		HiddenExists(ctx context.Context, username string, name string, ingredient string) (bool, error)

		FindSaved(ctx context.Context, username string) ([]*entities.SavedSuggestion, error)
		SavedExists(ctx context.Context, username string, name string) (bool, error)
		InsertSaved(ctx context.Context, saved *entities.SavedSuggestion) error
		DeleteSaved(ctx context.Context, id string, username string) error
	}

	suggestionRepository struct {
		db *gorm.DB
	}
)

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) FindHidden(ctx context.Context, username string) ([]*entities.HiddenSuggestion, error) {
	var hidden []*entities.HiddenSuggestion
	if err := r.db.WithContext(ctx).Where("username = ?", username).Find(&hidden).Error; err != nil {
		return nil, err
	}
	return hidden, nil
}

func (r *suggestionRepository) FindHiddenByIngredient(ctx context.Context, username string, ingredient string) ([]*entities.HiddenSuggestion, error) {
	var hidden []*entities.HiddenSuggestion
	if err := r.db.WithContext(ctx).
		Where("username = ? AND ingredient = ?", username, ingredient).
		Find(&hidden).Error; err != nil {
		return nil, err
	}
	return hidden, nil
}

func (r *suggestionRepository) InsertHidden(ctx context.Context, hidden *entities.HiddenSuggestion) error {
	return r.db.WithContext(ctx).Create(hidden).Error
}

func (r *suggestionRepository) HiddenExists(ctx context.Context, username string, name string, ingredient string) (bool, error) {
	var hidden entities.HiddenSuggestion
	err := r.db.WithContext(ctx).
		Where("username = ? AND name = ? AND ingredient = ?", username, name, ingredient).
		First(&hidden).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *suggestionRepository) FindSaved(ctx context.Context, username string) ([]*entities.SavedSuggestion, error) {
	var saved []*entities.SavedSuggestion
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("saved_at desc").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *suggestionRepository) SavedExists(ctx context.Context, username string, name string) (bool, error) {
	var saved entities.SavedSuggestion
	err := r.db.WithContext(ctx).
		Where("username = ? AND name = ?", username, name).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *suggestionRepository) InsertSaved(ctx context.Context, saved *entities.SavedSuggestion) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *suggestionRepository) DeleteSaved(ctx context.Context, id string, username string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&entities.SavedSuggestion{}).Error
}
