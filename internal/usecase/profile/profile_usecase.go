package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/topfive-backend/internal/repository"
	"github.com/gdugdh24/topfive-backend/pkg/log"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	promptRepo  repository.PromptRepository
	photos      storage.ObjectStorage
	uploadTTL   time.Duration
	now         func() time.Time
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	promptRepo repository.PromptRepository,
	photos storage.ObjectStorage,
	uploadTTL time.Duration,
) *ProfileUseCase {
	if uploadTTL <= 0 {
		uploadTTL = domain.UploadURLTTL
	}
	return &ProfileUseCase{
		profileRepo: profileRepo,
		promptRepo:  promptRepo,
		photos:      photos,
		uploadTTL:   uploadTTL,
		now:         time.Now,
	}
}

// GetProfile returns the profile of accountID together with its prompt responses.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, accountID int) (*domain.Profile, error) {
	const op = "usecase/profile/GetProfile"

	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			log.From(ctx).With("op", op, "account_id", accountID).Error("load profile failed", "err", err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := uc.attachResponses(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) attachResponses(ctx context.Context, profile *domain.Profile) error {
	responses, err := uc.promptRepo.ListResponses(ctx, profile.ID)
	if err != nil {
		return err
	}
	profile.PromptResponses = responses
	return nil
}

// UpdateProfile applies req to the profile of accountID under the row lock and runs the
// full validation before saving. Photos that are no longer referenced are removed from
// storage after the commit.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, actor *domain.Account, accountID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	const op = "usecase/profile/UpdateProfile"
	lg := log.From(ctx).With("op", op, "account_id", accountID)

	if !actor.CanManage(accountID) {
		lg.Warn("update refused", "actor_id", actor.ID)
		return nil, domain.ErrForbidden
	}

	var before domain.PhotoSlots
	updated, err := uc.profileRepo.Update(ctx, accountID, func(p *domain.Profile) error {
		before = append(domain.PhotoSlots(nil), p.PictureURLs...)
		req.apply(p)
		if len(req.PictureURLs) > 0 {
			merged, err := domain.MergePhotoSlots(p.PictureURLs, req.PictureURLs, uc.now())
			if err != nil {
				return err
			}
			p.PictureURLs = merged
		}
		return p.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.PictureURLs) > 0 {
		uc.removeStalePhotos(ctx, accountID, before, updated.PictureURLs)
	}

	if err := uc.attachResponses(ctx, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// removeStalePhotos deletes objects of accountID the profile stopped referencing.
// Failures are only logged: the profile is already saved.
func (uc *ProfileUseCase) removeStalePhotos(ctx context.Context, accountID int, before, after domain.PhotoSlots) {
	const op = "usecase/profile/removeStalePhotos"
	lg := log.From(ctx).With("op", op, "account_id", accountID)

	prefix := strconv.Itoa(accountID) + "/"
	for _, key := range domain.StalePhotoKeys(before, after) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := uc.photos.Delete(ctx, key); err != nil {
			lg.Error("delete old photo failed", "key", key, "err", err)
			continue
		}
		lg.Info("deleted old photo", "key", key)
	}
}

// PresignedURL is an upload authorisation for one slot.
type PresignedURL struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// ReservePhotoSlots issues upload URLs for the requested slots while holding the
// profile row lock. Capacity is checked before storage is contacted.
func (uc *ProfileUseCase) ReservePhotoSlots(ctx context.Context, actor *domain.Account, accountID int, req *ReservePhotosRequest) ([]PresignedURL, error) {
	const op = "usecase/profile/ReservePhotoSlots"
	lg := log.From(ctx).With("op", op, "account_id", accountID)

	if !actor.CanManage(accountID) {
		lg.Warn("reservation refused", "actor_id", actor.ID)
		return nil, domain.ErrForbidden
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	var urls []PresignedURL
	err := uc.profileRepo.Lock(ctx, accountID, func(p *domain.Profile) error {
		indexes := req.PhotoIndexes
		if len(indexes) > 0 {
			if err := domain.CheckReservation(p.PictureURLs, indexes); err != nil {
				return err
			}
		} else {
			var err error
			if indexes, err = domain.AllocateSlots(p.PictureURLs, req.PhotoCount); err != nil {
				return err
			}
		}

		urls = make([]PresignedURL, 0, len(indexes))
		for _, index := range indexes {
			key := domain.PhotoObjectKey(accountID, index)
			u, err := uc.photos.PresignPut(ctx, key, uc.uploadTTL)
			if err != nil {
				lg.Error("presign failed", "key", key, "err", err)
				return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
			}
			urls = append(urls, PresignedURL{Index: index, URL: u})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return urls, nil
}
