package suggestion

import (
	"context"
	"sync"

	"smart-pantry-backend/entities"

	"github.com/google/uuid"
)

// memorySuggestionRepository backs demo mode; saved and hidden suggestions
// live only for the process lifetime.
type memorySuggestionRepository struct {
	mu     sync.RWMutex
	hidden []*entities.HiddenSuggestion
	saved  []*entities.SavedSuggestion
}

func NewMemorySuggestionRepository() SuggestionRepository {
	return &memorySuggestionRepository{}
}

func (r *memorySuggestionRepository) FindHidden(_ context.Context, username string) ([]*entities.HiddenSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.HiddenSuggestion
	for _, h := range r.hidden {
		if h.Username == username {
			cpy := *h
			out = append(out, &cpy)
		}
	}
	return out, nil
}

func (r *memorySuggestionRepository) FindHiddenByIngredient(_ context.Context, username string, ingredient string) ([]*entities.HiddenSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.HiddenSuggestion
	for _, h := range r.hidden {
		if h.Username == username && h.Ingredient == ingredient {
			cpy := *h
			out = append(out, &cpy)
		}
	}
	return out, nil
}

func (r *memorySuggestionRepository) InsertHidden(_ context.Context, hidden *entities.HiddenSuggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hidden.ID == uuid.Nil {
		hidden.ID = uuid.New()
	}
	cpy := *hidden
	r.hidden = append(r.hidden, &cpy)
	return nil
}

func (r *memorySuggestionRepository) HiddenExists(_ context.Context, username string, name string, ingredient string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.hidden {
		if h.Username == username && h.Name == name && h.Ingredient == ingredient {
			return true, nil
		}
	}
	return false, nil
}

func (r *memorySuggestionRepository) FindSaved(_ context.Context, username string) ([]*entities.SavedSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.SavedSuggestion
	for _, s := range r.saved {
		if s.Username == username {
			cpy := *s
			out = append(out, &cpy)
		}
	}
	return out, nil
}

func (r *memorySuggestionRepository) SavedExists(_ context.Context, username string, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.saved {
		if s.Username == username && s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memorySuggestionRepository) InsertSaved(_ context.Context, saved *entities.SavedSuggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	cpy := *saved
	r.saved = append(r.saved, &cpy)
	return nil
}

func (r *memorySuggestionRepository) DeleteSaved(_ context.Context, id string, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.saved {
		if s.ID.String() == id && s.Username == username {
			r.saved = append(r.saved[:i], r.saved[i+1:]...)
			return nil
		}
	}
	return nil
}
