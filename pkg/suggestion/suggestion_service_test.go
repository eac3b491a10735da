package suggestion

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/pkg/pantry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceWithPantry(t *testing.T, itemNames ...string) SuggestionService {
	t.Helper()
	pantryRepo := pantry.NewMemoryPantryRepository()
	for _, name := range itemNames {
		err := pantryRepo.AddItem(context.Background(), &entities.PantryItem{
			ID:       uuid.New(),
			Username: "alice",
			Name:     name,
			Expiry:   time.Now().AddDate(0, 0, 7).Format(pantry.ExpiryDateLayout),
		})
		require.NoError(t, err)
	}
	return NewSuggestionService(NewMemorySuggestionRepository(), pantryRepo, DefaultMatcher())
}

func TestGetSuggestionsForItemFiltersHidden(t *testing.T) {
	service := newServiceWithPantry(t)

	before, err := service.GetSuggestionsForItem(context.Background(), "tomato", "alice")
	require.NoError(t, err)
	require.Len(t, before, 5)

	err = service.HideSuggestion(context.Background(), domain.HideSuggestionRequest{
		Name: before[0].Name, Ingredient: "tomato",
	}, "alice")
	require.NoError(t, err)

	after, err := service.GetSuggestionsForItem(context.Background(), "tomato", "alice")
	require.NoError(t, err)
	require.Len(t, after, 4)
	assert.NotEqual(t, before[0].Name, after[0].Name)

	// Another user's view is unaffected.
	other, err := service.GetSuggestionsForItem(context.Background(), "tomato", "bob")
	require.NoError(t, err)
	assert.Len(t, other, 5)
}

func TestHideSuggestionTwiceIsNoop(t *testing.T) {
	service := newServiceWithPantry(t)

	req := domain.HideSuggestionRequest{Name: "Tomato Rasam", Ingredient: "tomato"}
	require.NoError(t, service.HideSuggestion(context.Background(), req, "alice"))
	require.NoError(t, service.HideSuggestion(context.Background(), req, "alice"))

	got, err := service.GetSuggestionsForItem(context.Background(), "tomato", "alice")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestGetPantrySuggestionsCaps(t *testing.T) {
	// Eight pantry items, but only the first six contribute, two suggestions
	// each.
	var names []string
	for i := 0; i < 8; i++ {
		names = append(names, fmt.Sprintf("mystery-ingredient-%d", i))
	}
	service := newServiceWithPantry(t, names...)

	got, err := service.GetPantrySuggestions(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, got, 12)
}

func TestGetPantrySuggestionsEmptyPantry(t *testing.T) {
	service := newServiceWithPantry(t)

	got, err := service.GetPantrySuggestions(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSaveSuggestionDedupesByName(t *testing.T) {
	service := newServiceWithPantry(t)

	req := domain.SaveSuggestionRequest{Name: "Tomato Rasam", Ingredient: "tomato", Style: "South Indian"}
	require.NoError(t, service.SaveSuggestion(context.Background(), req, "alice"))
	require.NoError(t, service.SaveSuggestion(context.Background(), req, "alice"))

	saved, err := service.GetSavedSuggestions(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Tomato Rasam", saved[0].Name)
	assert.Equal(t, "tomato", saved[0].Ingredient)
}

func TestRemoveSavedSuggestion(t *testing.T) {
	service := newServiceWithPantry(t)

	req := domain.SaveSuggestionRequest{Name: "Tomato Rasam", Ingredient: "tomato"}
	require.NoError(t, service.SaveSuggestion(context.Background(), req, "alice"))

	saved, err := service.GetSavedSuggestions(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, saved, 1)

	require.NoError(t, service.RemoveSavedSuggestion(context.Background(), saved[0].ID, "alice"))

	saved, err = service.GetSavedSuggestions(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSavedSuggestionsArePerUser(t *testing.T) {
	service := newServiceWithPantry(t)

	req := domain.SaveSuggestionRequest{Name: "Tomato Rasam", Ingredient: "tomato"}
	require.NoError(t, service.SaveSuggestion(context.Background(), req, "alice"))

	saved, err := service.GetSavedSuggestions(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, saved)
}
