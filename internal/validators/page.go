// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-landing-builder/models"
)

// Field name constants accepted by [PageValidator.Validate] to restrict
// validation to a subset of fields.
const (
	// FieldID targets the page id; required for updates.
	FieldID = "id"
	// FieldOwnerID targets the owning user id.
	FieldOwnerID = "owner_id"
	// FieldTitle targets the page title.
	FieldTitle = "title"
	// FieldStatus targets the publication status.
	FieldStatus = "status"
	// FieldSections targets every section: id, type and style colors.
	FieldSections = "sections"
	// FieldColorOverrides targets the per-index color overrides in settings.
	FieldColorOverrides = "color_overrides"

	// FieldFileName targets the upload file name of a presign request.
	FieldFileName = "file_name"
	// FieldContentType targets the MIME type of a presign request.
	FieldContentType = "content_type"
)

var colorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// PageValidator implements [Validator] for landing pages, sections and
// asset presign requests.
type PageValidator struct{}

func NewPageValidator() Validator {
	return &PageValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. It returns the first rule violated.
func (v *PageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LandingPage:
		return v.validatePage(value, fields...)
	case *models.LandingPage:
		return v.validatePage(*value, fields...)
	case models.Section:
		return v.validateSection(value)
	case *models.Section:
		return v.validateSection(*value)
	case models.PresignRequest:
		return v.validatePresignRequest(value, fields...)
	case *models.PresignRequest:
		return v.validatePresignRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validatePage checks title, status, sections and color overrides when no
// fields are given.
func (v *PageValidator) validatePage(page models.LandingPage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldSections, FieldColorOverrides}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(page.ID) == "" {
				return ErrEmptyPageID
			}
		case FieldOwnerID:
			if page.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if strings.TrimSpace(page.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			if !page.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, page.Status)
			}
		case FieldSections:
			seen := make(map[string]struct{}, len(page.Sections))
			for i, s := range page.Sections {
				if err := v.validateSection(s); err != nil {
					return fmt.Errorf("validation error at section %d: %w", i, err)
				}
				if _, dup := seen[s.ID]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateSectionID, s.ID)
				}
				seen[s.ID] = struct{}{}
			}
		case FieldColorOverrides:
			for i, c := range page.Settings.ColorOverrides {
				if err := validateColors(c.Background, c.Text, c.Accent); err != nil {
					return fmt.Errorf("color override %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PageValidator) validateSection(s models.Section) error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrEmptySectionID
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSectionType, s.Type)
	}
	if s.Content != nil && s.Content.SectionType() != s.Type {
		return fmt.Errorf("%w: %s holds %s content", ErrContentTypeMismatch, s.Type, s.Content.SectionType())
	}
	return validateColors(s.Styles.BackgroundColor, s.Styles.TextColor, s.Styles.AccentColor)
}

func (v *PageValidator) validatePresignRequest(req models.PresignRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(req.FileName) == "" {
				return ErrEmptyFileName
			}
		case FieldContentType:
			if !strings.HasPrefix(req.ContentType, "image/") {
				return fmt.Errorf("%w: %q", ErrUnsupportedMIMEType, req.ContentType)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// ValidColor reports whether c is a #rgb or #rrggbb hex color.
func ValidColor(c string) bool {
	return colorRe.MatchString(c)
}

// validateColors accepts empty values as "not set".
func validateColors(colors ...string) error {
	for _, c := range colors {
		if c != "" && !ValidColor(c) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}
	return nil
}
