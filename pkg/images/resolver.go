package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart-pantry-backend/internal/utils"
)

// GenericFoodImageURL is the last-resort image used when neither the curated
// table nor Pixabay produces a match. Resolution never fails harder than this.
const GenericFoodImageURL = "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop&crop=center"

const pixabayEndpoint = "https://pixabay.com/api/"

type Resolver interface {
	Resolve(ctx context.Context, name string) string
}

type pixabayResolver struct {
	client   *http.Client
	endpoint string
}

func NewResolver() Resolver {
	return &pixabayResolver{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: pixabayEndpoint,
	}
}

// Resolve maps an item name to an image URL: curated table first (exact, then
// substring in insertion order), Pixabay search next, generic fallback last.
func (r *pixabayResolver) Resolve(ctx context.Context, name string) string {
	if imageURL, ok := lookupCurated(name); ok {
		return imageURL
	}

	if imageURL, err := r.searchPixabay(ctx, name); err == nil && imageURL != "" {
		return imageURL
	} else if err != nil {
		slog.Warn("pixabay lookup failed", "item", name, "error", err)
	}

	return GenericFoodImageURL
}

func lookupCurated(name string) (string, bool) {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return "", false
	}

	for _, entry := range curatedImages {
		if entry.key == nameLower {
			return entry.url, true
		}
	}
	for _, entry := range curatedImages {
		if strings.Contains(nameLower, entry.key) || strings.Contains(entry.key, nameLower) {
			return entry.url, true
		}
	}
	return "", false
}

func (r *pixabayResolver) searchPixabay(ctx context.Context, name string) (string, error) {
	apiKey := utils.GetConfig("PIXABAY_API_KEY")
	if apiKey == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("key", apiKey)
	params.Set("q", fmt.Sprintf("%s food fresh", name))
	params.Set("image_type", "photo")
	params.Set("category", "food")
	params.Set("min_width", "400")
	params.Set("min_height", "300")
	params.Set("per_page", "3")

	req, err := http.NewRequestWithContext(ctx, "GET", r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pixabay API error: %s", resp.Status)
	}

	var result struct {
		Hits []struct {
			WebformatURL string `json:"webformatURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Hits) == 0 {
		return "", nil
	}
	return result.Hits[0].WebformatURL, nil
}
