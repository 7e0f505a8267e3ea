package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrInvalidStatus       = errors.New("invalid page status")
	ErrInvalidOwnerID      = errors.New("invalid owner ID")
	ErrEmptyPageID         = errors.New("page ID is required")
	ErrEmptySectionID      = errors.New("section ID is required")
	ErrDuplicateSectionID  = errors.New("duplicate section ID")
	ErrUnknownSectionType  = errors.New("unknown section type")
	ErrContentTypeMismatch = errors.New("section content does not match its type")
	ErrInvalidColor        = errors.New("color must be #rgb or #rrggbb")

	ErrEmptyFileName       = errors.New("file name is required")
	ErrUnsupportedMIMEType = errors.New("only image uploads are supported")
)
