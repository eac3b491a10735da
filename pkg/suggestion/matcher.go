package suggestion

import (
	"fmt"
	"strings"

	"smart-pantry-backend/domain"
)

// SuppressionKey identifies one hidden suggestion: the same dish name may be
// hidden for one ingredient and still listed for another.
type SuppressionKey struct {
	Name       string
	Ingredient string
}

type SuppressionSet map[SuppressionKey]struct{}

func (s SuppressionSet) Add(name string, ingredient string) {
	s[SuppressionKey{Name: name, Ingredient: ingredient}] = struct{}{}
}

func (s SuppressionSet) Contains(name string, ingredient string) bool {
	_, ok := s[SuppressionKey{Name: name, Ingredient: ingredient}]
	return ok
}

// Matcher resolves an item name to an ordered suggestion list. It is a lookup
// table with two fallback tiers, not a search engine; there is no ranking.
type Matcher struct {
	entries []CatalogEntry
}

func NewMatcher(entries []CatalogEntry) *Matcher {
	return &Matcher{entries: entries}
}

func DefaultMatcher() *Matcher {
	return NewMatcher(defaultCatalog)
}

// Suggest resolves suggestions for itemName and filters out suppressed
// entries. Resolution order: exact key match, then the first key (in table
// order) that is a substring of the name or vice versa, then generated
// fallback entries. Filtering preserves the resolved order.
func (m *Matcher) Suggest(itemName string, hidden SuppressionSet) []domain.Suggestion {
	resolved := m.lookup(itemName)
	if resolved == nil {
		resolved = fallbackSuggestions(itemName)
	}

	result := make([]domain.Suggestion, 0, len(resolved))
	for _, s := range resolved {
		s.Ingredient = itemName
		if hidden.Contains(s.Name, s.Ingredient) {
			continue
		}
		result = append(result, s)
	}
	return result
}

func (m *Matcher) lookup(itemName string) []domain.Suggestion {
	nameLower := strings.ToLower(itemName)

	for _, entry := range m.entries {
		if entry.Key == nameLower {
			return entry.Suggestions
		}
	}
	for _, entry := range m.entries {
		if strings.Contains(nameLower, entry.Key) || strings.Contains(entry.Key, nameLower) {
			return entry.Suggestions
		}
	}
	return nil
}

// fallbackSuggestions templates the item name into a fixed set of generic
// preparations so the matcher never comes back empty-handed.
func fallbackSuggestions(itemName string) []domain.Suggestion {
	return []domain.Suggestion{
		{
			Name:        fmt.Sprintf("%s Curry", itemName),
			Style:       "Indian",
			Time:        "30 mins",
			Difficulty:  "Medium",
			Description: fmt.Sprintf("Traditional Indian curry with %s and aromatic spices", itemName),
			ImageURL:    "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop",
		},
		{
			Name:        fmt.Sprintf("%s Sabzi", itemName),
			Style:       "North Indian",
			Time:        "25 mins",
			Difficulty:  "Easy",
			Description: fmt.Sprintf("Simple dry curry with %s and basic spices", itemName),
			ImageURL:    "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop",
		},
		{
			Name:        fmt.Sprintf("%s Paratha", itemName),
			Style:       "Punjabi",
			Time:        "40 mins",
			Difficulty:  "Medium",
			Description: fmt.Sprintf("Stuffed flatbread with spiced %s filling", itemName),
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
		},
		{
			Name:        fmt.Sprintf("%s Pickle", itemName),
			Style:       "Indian",
			Time:        "20 mins",
			Difficulty:  "Easy",
			Description: fmt.Sprintf("Tangy %s pickle with mustard oil and spices", itemName),
			ImageURL:    "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop",
		},
		{
			Name:        fmt.Sprintf("%s Raita", itemName),
			Style:       "North Indian",
			Time:        "10 mins",
			Difficulty:  "Easy",
			Description: fmt.Sprintf("Cooling yogurt-based side dish with %s", itemName),
			ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop",
		},
	}
}
