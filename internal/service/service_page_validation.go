package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/validators"
	"github.com/MKhiriev/go-landing-builder/models"
)

// PageValidationService rejects malformed pages before they reach the
// wrapped PageService. Validation failures wrap ErrInvalidDataProvided.
type PageValidationService struct {
	inner     PageService
	validator validators.Validator
}

func NewPageValidationService() PageServiceWrapper {
	return &PageValidationService{
		validator: validators.NewPageValidator(),
	}
}

func (v *PageValidationService) CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.LandingPage{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, page, validators.FieldOwnerID); err != nil {
		return models.LandingPage{}, invalid(err)
	}

	return v.inner.CreatePage(ctx, page)
}

func (v *PageValidationService) GetPage(ctx context.Context, id string, ownerID int64) (models.LandingPage, error) {
	if id == "" {
		return models.LandingPage{}, invalid(validators.ErrEmptyPageID)
	}
	return v.inner.GetPage(ctx, id, ownerID)
}

func (v *PageValidationService) ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	if ownerID <= 0 {
		return nil, invalid(validators.ErrInvalidOwnerID)
	}
	return v.inner.ListPages(ctx, ownerID)
}

func (v *PageValidationService) UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.LandingPage{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, page, validators.FieldID, validators.FieldOwnerID); err != nil {
		return models.LandingPage{}, invalid(err)
	}

	return v.inner.UpdatePage(ctx, page)
}

func (v *PageValidationService) DeletePage(ctx context.Context, id string, ownerID int64) error {
	if id == "" {
		return invalid(validators.ErrEmptyPageID)
	}
	return v.inner.DeletePage(ctx, id, ownerID)
}

func (v *PageValidationService) Wrap(inner PageService) PageService {
	v.inner = inner
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
