package pantry

import (
	"context"
	"sort"
	"sync"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"

	"github.com/google/uuid"
)

// memoryPantryRepository backs demo mode when the database is unreachable at
// startup. Data does not persist across restarts.
type memoryPantryRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.PantryItem
}

func NewMemoryPantryRepository() PantryRepository {
	return &memoryPantryRepository{items: make(map[string]*entities.PantryItem)}
}

// NewDemoPantryRepository seeds the in-memory store with the demo user's
// pantry: one item expiring soon, two safe.
func NewDemoPantryRepository(demoUser string) PantryRepository {
	repo := &memoryPantryRepository{items: make(map[string]*entities.PantryItem)}
	today := time.Now()

	seed := []struct {
		name, category, unit string
		quantity, daysLeft   int
		imageURL             string
	}{
		{"Tomatoes", "vegetables", "pieces", 5, 2, "https://images.unsplash.com/photo-1546470427-e5ac89c8ba3a?w=400&h=300&fit=crop"},
		{"Milk", "dairy", "liters", 1, 5, "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=300&fit=crop"},
		{"Bread", "grains", "packets", 1, 10, "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop"},
	}
	for _, s := range seed {
		item := &entities.PantryItem{
			ID:       uuid.New(),
			Username: demoUser,
			Name:     s.name,
			Category: s.category,
			Quantity: s.quantity,
			Unit:     s.unit,
			Expiry:   today.AddDate(0, 0, s.daysLeft).Format(ExpiryDateLayout),
			ImageURL: s.imageURL,
		}
		item.CreatedAt = today
		repo.items[item.ID.String()] = item
	}
	return repo
}

func (r *memoryPantryRepository) AddItem(_ context.Context, item *entities.PantryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cpy := *item
	r.items[item.ID.String()] = &cpy
	return nil
}

func (r *memoryPantryRepository) GetItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cpy := *item
	return &cpy, nil
}

func (r *memoryPantryRepository) GetItemsByUser(_ context.Context, username string) ([]*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.Username == username {
			cpy := *item
			items = append(items, &cpy)
		}
	}
	// Same ordering as the postgres repository, so demo mode pages the same.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Expiry != items[j].Expiry {
			return items[i].Expiry < items[j].Expiry
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *memoryPantryRepository) DeleteItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memoryPantryRepository) UpdateItemImage(_ context.Context, id string, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		item.ImageURL = imageURL
	}
	return nil
}
