package suggestion

import (
	"context"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/pkg/pantry"

	"github.com/google/uuid"
)

const (
	// Pantry-wide listings cap how many items and suggestions-per-item are
	// expanded so a large pantry does not produce an unbounded page.
	maxPantryItemsForSuggestions = 6
	maxSuggestionsPerItem        = 2
)

type (
	SuggestionService interface {
		GetSuggestionsForItem(ctx context.Context, itemName string, username string) ([]domain.Suggestion, error)
		GetPantrySuggestions(ctx context.Context, username string) ([]domain.Suggestion, error)
		SaveSuggestion(ctx context.Context, req domain.SaveSuggestionRequest, username string) error
		RemoveSavedSuggestion(ctx context.Context, id string, username string) error
		GetSavedSuggestions(ctx context.Context, username string) ([]domain.SavedSuggestionResponse, error)
		HideSuggestion(ctx context.Context, req domain.HideSuggestionRequest, username string) error
	}

	suggestionService struct {
		suggestionRepository SuggestionRepository
		pantryRepository     pantry.PantryRepository
		matcher              *Matcher
	}
)

func NewSuggestionService(suggestionRepository SuggestionRepository, pantryRepository pantry.PantryRepository, matcher *Matcher) SuggestionService {
	return &suggestionService{
		suggestionRepository: suggestionRepository,
		pantryRepository:     pantryRepository,
		matcher:              matcher,
	}
}

func (s *suggestionService) GetSuggestionsForItem(ctx context.Context, itemName string, username string) ([]domain.Suggestion, error) {
	hidden, err := s.suggestionRepository.FindHiddenByIngredient(ctx, username, itemName)
	if err != nil {
		return nil, err
	}

	return s.matcher.Suggest(itemName, suppressionSet(hidden)), nil
}

func (s *suggestionService) GetPantrySuggestions(ctx context.Context, username string) ([]domain.Suggestion, error) {
	items, err := s.pantryRepository.GetItemsByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	hidden, err := s.suggestionRepository.FindHidden(ctx, username)
	if err != nil {
		return nil, err
	}
	hiddenSet := suppressionSet(hidden)

	if len(items) > maxPantryItemsForSuggestions {
		items = items[:maxPantryItemsForSuggestions]
	}

	suggestions := []domain.Suggestion{}
	for _, item := range items {
		itemSuggestions := s.matcher.Suggest(item.Name, hiddenSet)
		if len(itemSuggestions) > maxSuggestionsPerItem {
			itemSuggestions = itemSuggestions[:maxSuggestionsPerItem]
		}
		suggestions = append(suggestions, itemSuggestions...)
	}

	return suggestions, nil
}

// SaveSuggestion is a no-op when the user already saved a suggestion with the
// same name.
func (s *suggestionService) SaveSuggestion(ctx context.Context, req domain.SaveSuggestionRequest, username string) error {
	exists, err := s.suggestionRepository.SavedExists(ctx, username, req.Name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.suggestionRepository.InsertSaved(ctx, &entities.SavedSuggestion{
		ID:          uuid.New(),
		Username:    username,
		Name:        req.Name,
		Style:       req.Style,
		Time:        req.Time,
		Difficulty:  req.Difficulty,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Ingredient:  req.Ingredient,
		SavedAt:     time.Now(),
	})
}

func (s *suggestionService) RemoveSavedSuggestion(ctx context.Context, id string, username string) error {
	return s.suggestionRepository.DeleteSaved(ctx, id, username)
}

func (s *suggestionService) GetSavedSuggestions(ctx context.Context, username string) ([]domain.SavedSuggestionResponse, error) {
	saved, err := s.suggestionRepository.FindSaved(ctx, username)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SavedSuggestionResponse, 0, len(saved))
	for _, item := range saved {
		response = append(response, domain.SavedSuggestionResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Style:       item.Style,
			Time:        item.Time,
			Difficulty:  item.Difficulty,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Ingredient:  item.Ingredient,
		})
	}

	return response, nil
}

// HideSuggestion marks a (name, ingredient) pair as suppressed for the user;
// hiding the same pair twice is a no-op. There is no unhide path.
func (s *suggestionService) HideSuggestion(ctx context.Context, req domain.HideSuggestionRequest, username string) error {
	exists, err := s.suggestionRepository.HiddenExists(ctx, username, req.Name, req.Ingredient)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.suggestionRepository.InsertHidden(ctx, &entities.HiddenSuggestion{
		ID:         uuid.New(),
		Username:   username,
		Name:       req.Name,
		Ingredient: req.Ingredient,
		HiddenAt:   time.Now(),
	})
}

func suppressionSet(hidden []*entities.HiddenSuggestion) SuppressionSet {
	set := make(SuppressionSet, len(hidden))
	for _, h := range hidden {
		set.Add(h.Name, h.Ingredient)
	}
	return set
}
