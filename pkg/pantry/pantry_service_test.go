package pantry

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	url string
}

func (r staticResolver) Resolve(_ context.Context, _ string) string { return r.url }

const fakeS3Prefix = "https://test-bucket.s3.test-region.amazonaws.com/"

type fakeS3 struct {
	uploadedKey string
	deleted     []string
}

func (s *fakeS3) UploadFile(_ context.Context, objectKey string, _ multipart.File, _ string) (string, error) {
	s.uploadedKey = objectKey
	return fakeS3Prefix + objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeS3Prefix) {
		return ""
	}
	return strings.TrimPrefix(link, fakeS3Prefix)
}

func newTestService(repo PantryRepository) PantryService {
	return NewPantryService(repo, staticResolver{url: "https://cdn.example.com/food.jpg"}, &fakeS3{})
}

func seedItem(t *testing.T, repo PantryRepository, username, name, expiry, imageURL string) *entities.PantryItem {
	t.Helper()
	item := &entities.PantryItem{
		ID:       uuid.New(),
		Username: username,
		Name:     name,
		Category: "vegetables",
		Quantity: 2,
		Unit:     "pieces",
		Expiry:   expiry,
		ImageURL: imageURL,
	}
	require.NoError(t, repo.AddItem(context.Background(), item))
	return item
}

func TestAddItemValidation(t *testing.T) {
	service := newTestService(NewMemoryPantryRepository())

	_, err := service.AddItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Expiry: "next tuesday", Quantity: 1,
	}, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Expiry: "2026-03-12", Quantity: 0,
	}, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddItemResolvesImage(t *testing.T) {
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	res, err := service.AddItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Category: "dairy", Quantity: 1, Unit: "liters", Expiry: "2026-03-12",
	}, "alice")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/food.jpg", res.ImageURL)

	stored, err := repo.GetItemByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestSweepAndPurge(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	seedItem(t, repo, "alice", "Milk", "2026-03-12", "https://img/milk.jpg")
	bread := seedItem(t, repo, "alice", "Bread", "2026-03-09", "https://img/bread.jpg")
	seedItem(t, repo, "alice", "Rice", "2026-04-20", "https://img/rice.jpg")

	result, err := service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)

	assert.Len(t, result.Active, 2)
	require.Len(t, result.Expired, 1)
	assert.Equal(t, "Bread", result.Expired[0].Name)
	assert.Equal(t, -1, result.Expired[0].DaysLeft)

	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 1, result.Stats.Soon)
	assert.Equal(t, 1, result.Stats.Safe)
	assert.Equal(t, 1, result.Stats.Expired)

	// The expired item is gone from the store, not just filtered from the
	// response.
	_, err = repo.GetItemByID(context.Background(), bread.ID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	// A second sweep on the same day finds nothing left to purge.
	result, err = service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)
	assert.Empty(t, result.Expired)
	assert.Equal(t, 2, result.Stats.Total)
}

func TestSweepAndPurgeSkipsUnparseableExpiry(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	broken := seedItem(t, repo, "alice", "Mystery", "soonish", "https://img/x.jpg")
	seedItem(t, repo, "alice", "Milk", "2026-03-11", "https://img/milk.jpg")

	result, err := service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)

	assert.Len(t, result.Active, 1)
	assert.Empty(t, result.Expired)
	assert.Equal(t, 1, result.Stats.Total)

	// Skipped, not purged.
	_, err = repo.GetItemByID(context.Background(), broken.ID.String())
	assert.NoError(t, err)
}

func TestSweepAndPurgeBackfillsImages(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	item := seedItem(t, repo, "alice", "Paneer", "2026-03-20", "")

	result, err := service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)
	require.Len(t, result.Active, 1)
	assert.Equal(t, "https://cdn.example.com/food.jpg", result.Active[0].ImageURL)

	stored, err := repo.GetItemByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/food.jpg", stored.ImageURL)
}

type countingResolver struct {
	url   string
	calls int
}

func (r *countingResolver) Resolve(_ context.Context, _ string) string {
	r.calls++
	return r.url
}

func TestSweepAndPurgeNeverBackfillsExpiredItems(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	resolver := &countingResolver{url: "https://cdn.example.com/food.jpg"}
	service := NewPantryService(repo, resolver, &fakeS3{})

	seedItem(t, repo, "alice", "Bread", "2026-03-08", "")
	seedItem(t, repo, "alice", "Milk", "2026-03-12", "")

	result, err := service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)

	// Only the surviving item triggers an image lookup; the purged one is
	// deleted as-is.
	assert.Equal(t, 1, resolver.calls)
	require.Len(t, result.Expired, 1)
	assert.Empty(t, result.Expired[0].ImageURL)
	require.Len(t, result.Active, 1)
	assert.Equal(t, "https://cdn.example.com/food.jpg", result.Active[0].ImageURL)
}

func TestMemoryRepositoryOrdersByExpiry(t *testing.T) {
	repo := NewMemoryPantryRepository()

	seedItem(t, repo, "alice", "Rice", "2026-04-20", "")
	seedItem(t, repo, "alice", "Milk", "2026-03-12", "")
	seedItem(t, repo, "alice", "Bread", "2026-03-12", "")
	seedItem(t, repo, "alice", "Tomatoes", "2026-03-09", "")

	for i := 0; i < 10; i++ {
		items, err := repo.GetItemsByUser(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Tomatoes", items[0].Name)
		assert.Equal(t, "Bread", items[1].Name)
		assert.Equal(t, "Milk", items[2].Name)
		assert.Equal(t, "Rice", items[3].Name)
	}
}

func TestSweepAndPurgeOnlySeesOwnItems(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	seedItem(t, repo, "alice", "Milk", "2026-03-12", "https://img/milk.jpg")
	bobsExpired := seedItem(t, repo, "bob", "Yogurt", "2026-03-01", "https://img/yogurt.jpg")

	result, err := service.SweepAndPurge(context.Background(), "alice", today)
	require.NoError(t, err)
	assert.Len(t, result.Active, 1)
	assert.Empty(t, result.Expired)

	// Sweeping alice's pantry must not touch bob's expired item.
	_, err = repo.GetItemByID(context.Background(), bobsExpired.ID.String())
	assert.NoError(t, err)
}

func TestClearExpired(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	seedItem(t, repo, "alice", "Bread", "2026-03-08", "https://img/bread.jpg")
	seedItem(t, repo, "alice", "Cheese", "2026-03-09", "https://img/cheese.jpg")
	seedItem(t, repo, "alice", "Milk", "2026-03-12", "https://img/milk.jpg")

	removed, err := service.ClearExpired(context.Background(), "alice", today)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = service.ClearExpired(context.Background(), "alice", today)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func photoHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func TestUploadItemPhoto(t *testing.T) {
	repo := NewMemoryPantryRepository()
	s3 := &fakeS3{}
	service := NewPantryService(repo, staticResolver{url: "https://cdn.example.com/food.jpg"}, s3)

	item := seedItem(t, repo, "alice", "Milk", "2026-03-12", "https://img/milk.jpg")

	err := service.UploadItemPhoto(context.Background(), domain.UploadItemPhotoRequest{
		ItemID: item.ID.String(),
		Photo:  photoHeader(t),
	}, "alice")
	require.NoError(t, err)

	stored, err := repo.GetItemByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.ImageURL, fakeS3Prefix))
	assert.NotEmpty(t, s3.uploadedKey)

	// The previous image was a stock URL, not one of ours; nothing to clean.
	assert.Empty(t, s3.deleted)

	err = service.UploadItemPhoto(context.Background(), domain.UploadItemPhotoRequest{
		ItemID: item.ID.String(),
		Photo:  photoHeader(t),
	}, "bob")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestUploadItemPhotoDeletesPreviousUpload(t *testing.T) {
	repo := NewMemoryPantryRepository()
	s3 := &fakeS3{}
	service := NewPantryService(repo, staticResolver{url: "https://cdn.example.com/food.jpg"}, s3)

	item := seedItem(t, repo, "alice", "Milk", "2026-03-12", fakeS3Prefix+"pantry/old-photo.jpg")

	err := service.UploadItemPhoto(context.Background(), domain.UploadItemPhotoRequest{
		ItemID: item.ID.String(),
		Photo:  photoHeader(t),
	}, "alice")
	require.NoError(t, err)

	// Replacing a user upload removes the stale object from storage.
	assert.Equal(t, []string{"pantry/old-photo.jpg"}, s3.deleted)
}

func TestDeleteItemRemovesUploadedPhoto(t *testing.T) {
	repo := NewMemoryPantryRepository()
	s3 := &fakeS3{}
	service := NewPantryService(repo, staticResolver{url: "https://cdn.example.com/food.jpg"}, s3)

	uploaded := seedItem(t, repo, "alice", "Milk", "2026-03-12", fakeS3Prefix+"pantry/photo.jpg")
	stock := seedItem(t, repo, "alice", "Bread", "2026-03-12", "https://img/bread.jpg")

	require.NoError(t, service.DeleteItem(context.Background(), uploaded.ID.String(), "alice"))
	assert.Equal(t, []string{"pantry/photo.jpg"}, s3.deleted)

	require.NoError(t, service.DeleteItem(context.Background(), stock.ID.String(), "alice"))
	assert.Equal(t, []string{"pantry/photo.jpg"}, s3.deleted)
}

func TestDeleteItemOwnership(t *testing.T) {
	repo := NewMemoryPantryRepository()
	service := newTestService(repo)

	item := seedItem(t, repo, "alice", "Milk", "2026-03-12", "")

	err := service.DeleteItem(context.Background(), item.ID.String(), "bob")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = service.DeleteItem(context.Background(), item.ID.String(), "alice")
	require.NoError(t, err)

	err = service.DeleteItem(context.Background(), item.ID.String(), "alice")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
