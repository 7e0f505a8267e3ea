// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"maps"
	"time"
)

// PageStatus is the publication state of a landing page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// ErrUnknownPageStatus is returned for statuses outside the closed set.
var ErrUnknownPageStatus = errors.New("unknown page status")

// Valid reports whether s is one of draft, published or archived.
func (s PageStatus) Valid() bool {
	switch s {
	case PageStatusDraft, PageStatusPublished, PageStatusArchived:
		return true
	}
	return false
}

// Colors is a per-section color override set by the editor's color picker.
type Colors struct {
	Background string `json:"background,omitempty" bson:"background,omitempty"`
	Text       string `json:"text,omitempty" bson:"text,omitempty"`
	Accent     string `json:"accent,omitempty" bson:"accent,omitempty"`
}

// IsZero reports whether no color is overridden.
func (c Colors) IsZero() bool {
	return c == Colors{}
}

// PageSettings holds page-level metadata.
type PageSettings struct {
	SEOTitle       string `json:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`

	// ColorOverrides is keyed by section index in [LandingPage.Sections].
	ColorOverrides map[int]Colors `json:"colorOverrides,omitempty"`
}

// LandingPage is one authored page: an ordered list of sections plus
// metadata. The array order of Sections is the only render order.
type LandingPage struct {
	// ID is empty for a draft that was never saved and is assigned by the
	// persistence layer on the first create.
	ID      string `json:"id,omitempty"`
	OwnerID int64  `json:"ownerId,omitempty"`

	Title    string       `json:"title"`
	Sections []Section    `json:"sections"`
	Settings PageSettings `json:"settings"`
	Status   PageStatus   `json:"status"`

	// CreatedAt and UpdatedAt are set by the server only.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewLandingPage returns an unsaved draft with the given title.
func NewLandingPage(title string) LandingPage {
	return LandingPage{
		Title:    title,
		Sections: []Section{},
		Status:   PageStatusDraft,
	}
}

// IsPublished reports whether the page is reachable by public viewers.
func (p LandingPage) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// IsNew reports whether the page has never been persisted.
func (p LandingPage) IsNew() bool {
	return p.ID == ""
}

// Clone returns a deep copy of the page.
func (p LandingPage) Clone() LandingPage {
	clone := p
	clone.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		clone.Sections[i] = s.Clone()
	}
	if p.Settings.ColorOverrides != nil {
		clone.Settings.ColorOverrides = maps.Clone(p.Settings.ColorOverrides)
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		clone.CreatedAt = &t
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		clone.UpdatedAt = &t
	}
	return clone
}

// Normalize rewrites every section's Order to its array index.
func (p *LandingPage) Normalize() {
	for i := range p.Sections {
		p.Sections[i].Order = i
	}
}

// SectionIndex returns the array index of the section with id, or -1.
func (p LandingPage) SectionIndex(id string) int {
	for i, s := range p.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
