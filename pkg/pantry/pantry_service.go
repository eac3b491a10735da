package pantry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"
	"smart-pantry-backend/internal/utils/storage"
	"smart-pantry-backend/pkg/images"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddItem(ctx context.Context, req domain.AddPantryItemRequest, username string) (domain.AddPantryItemResponse, error)
		DeleteItem(ctx context.Context, id string, username string) error
		// SweepAndPurge classifies every item the user owns and deletes the
		// expired ones from the store before returning. Any caller, including
		// a plain pantry view, mutates state.
		SweepAndPurge(ctx context.Context, username string, today time.Time) (domain.SweepResult, error)
		ClearExpired(ctx context.Context, username string, today time.Time) (int, error)
		UploadItemPhoto(ctx context.Context, req domain.UploadItemPhotoRequest, username string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		imageResolver    images.Resolver
		s3               storage.AwsS3
	}
)

func NewPantryService(pantryRepository PantryRepository, imageResolver images.Resolver, s3 storage.AwsS3) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		imageResolver:    imageResolver,
		s3:               s3,
	}
}

func (s *pantryService) AddItem(ctx context.Context, req domain.AddPantryItemRequest, username string) (domain.AddPantryItemResponse, error) {
	if _, err := time.Parse(ExpiryDateLayout, req.Expiry); err != nil {
		return domain.AddPantryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.AddPantryItemResponse{}, domain.ErrInvalidQuantity
	}

	item := &entities.PantryItem{
		ID:       uuid.New(),
		Username: username,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Expiry:   req.Expiry,
		ImageURL: s.imageResolver.Resolve(ctx, req.Name),
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.AddPantryItemResponse{}, err
	}

	return domain.AddPantryItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Category: item.Category,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Expiry:   item.Expiry,
		ImageURL: item.ImageURL,
	}, nil
}

func (s *pantryService) DeleteItem(ctx context.Context, id string, username string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrItemNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.Username != username {
		return domain.ErrUserNotAllowed
	}

	s.deleteUploadedPhoto(item.ImageURL)

	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) SweepAndPurge(ctx context.Context, username string, today time.Time) (domain.SweepResult, error) {
	items, err := s.pantryRepository.GetItemsByUser(ctx, username)
	if err != nil {
		return domain.SweepResult{}, err
	}

	result := domain.SweepResult{
		Active:  []domain.PantryItemView{},
		Expired: []domain.PantryItemView{},
	}

	for _, item := range items {
		cls, err := ClassifyDate(item.Expiry, today)
		if err != nil {
			// Unclassifiable items are skipped for this pass: not deleted,
			// not counted, not notified.
			slog.Warn("skipping item with unparseable expiry",
				"item", item.Name, "expiry", item.Expiry, "user", username)
			continue
		}

		if cls.Bucket == BucketExpired {
			if err := s.pantryRepository.DeleteItem(ctx, item.ID.String()); err != nil {
				slog.Warn("failed to purge expired item", "item", item.Name, "error", err)
			}
			result.Stats.Expired++
			result.Expired = append(result.Expired, itemView(item, cls))
			continue
		}

		// Backfill only items that survive the purge; an expired item is
		// deleted above without ever hitting the image resolver.
		if item.ImageURL == "" {
			item.ImageURL = s.imageResolver.Resolve(ctx, item.Name)
			if err := s.pantryRepository.UpdateItemImage(ctx, item.ID.String(), item.ImageURL); err != nil {
				slog.Warn("failed to cache item image", "item", item.Name, "error", err)
			}
		}

		result.Stats.Total++
		if cls.Bucket == BucketSoon {
			result.Stats.Soon++
		} else {
			result.Stats.Safe++
		}
		result.Active = append(result.Active, itemView(item, cls))
	}

	return result, nil
}

func (s *pantryService) ClearExpired(ctx context.Context, username string, today time.Time) (int, error) {
	result, err := s.SweepAndPurge(ctx, username, today)
	if err != nil {
		return 0, err
	}
	return len(result.Expired), nil
}

func (s *pantryService) UploadItemPhoto(ctx context.Context, req domain.UploadItemPhotoRequest, username string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrItemNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.Username != username {
		return domain.ErrUserNotAllowed
	}

	file, err := req.Photo.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	objectKey := fmt.Sprintf("pantry/%s%s", uuid.New().String(), filepath.Ext(req.Photo.Filename))
	contentType := req.Photo.Header.Get("Content-Type")

	imageURL, err := s.s3.UploadFile(ctx, objectKey, file, contentType)
	if err != nil {
		return err
	}

	// A previous user upload is now stale; stock images resolve to an empty
	// object key and are left alone.
	s.deleteUploadedPhoto(item.ImageURL)

	return s.pantryRepository.UpdateItemImage(ctx, item.ID.String(), imageURL)
}

func (s *pantryService) deleteUploadedPhoto(imageURL string) {
	if imageURL == "" {
		return
	}
	objectKey := s.s3.GetObjectKeyFromLink(imageURL)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(objectKey); err != nil {
		slog.Warn("failed to delete stale item photo", "object_key", objectKey, "error", err)
	}
}

func itemView(item *entities.PantryItem, cls Classification) domain.PantryItemView {
	view := domain.PantryItemView{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Expiry:    item.Expiry,
		ImageURL:  item.ImageURL,
		DaysLeft:  cls.DaysLeft,
		Bucket:    cls.Bucket,
		CreatedAt: item.CreatedAt,
	}

	// Items created before quantity tracking existed default to one piece.
	if view.Quantity == 0 {
		view.Quantity = 1
	}
	if view.Unit == "" {
		view.Unit = "pieces"
	}

	return view
}
