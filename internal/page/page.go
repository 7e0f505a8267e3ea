// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page implements the structural operations on a landing page.
//
// Every operation is pure: it returns a new document and never mutates its
// input. The array order of Sections is the only ordering authority; each
// operation that changes it rewrites Section.Order and moves the
// index-keyed color overrides along with their sections.
package page

import (
	"fmt"

	"github.com/MKhiriev/go-landing-builder/models"
)

// SectionSource instantiates sections from templates.
type SectionSource interface {
	CreateSectionFromTemplate(templateID string, order int) (models.Section, bool)
}

// AddSection appends a section built from templateID. An unknown template
// leaves the document unchanged.
func AddSection(doc models.LandingPage, src SectionSource, templateID string) models.LandingPage {
	section, ok := src.CreateSectionFromTemplate(templateID, len(doc.Sections))
	if !ok {
		return doc
	}

	next := doc.Clone()
	next.Sections = append(next.Sections, section)
	next.Normalize()
	return next
}

// RemoveSection drops the section with sectionID. Removing an absent id is a
// no-op.
func RemoveSection(doc models.LandingPage, sectionID string) models.LandingPage {
	idx := doc.SectionIndex(sectionID)
	if idx < 0 {
		return doc
	}

	next := doc.Clone()
	next.Sections = append(next.Sections[:idx], next.Sections[idx+1:]...)
	next.Normalize()

	if len(next.Settings.ColorOverrides) > 0 {
		overrides := make(map[int]models.Colors, len(next.Settings.ColorOverrides))
		for i, c := range next.Settings.ColorOverrides {
			switch {
			case i < idx:
				overrides[i] = c
			case i > idx:
				overrides[i-1] = c
			}
		}
		next.Settings.ColorOverrides = overrides
	}
	return next
}

// ReorderSection moves the section with sectionID to newIndex, clamped to
// the valid range. Moving a section to its current index returns a document
// equal to the input.
func ReorderSection(doc models.LandingPage, sectionID string, newIndex int) models.LandingPage {
	from := doc.SectionIndex(sectionID)
	if from < 0 {
		return doc
	}
	to := clamp(newIndex, 0, len(doc.Sections)-1)

	next := doc.Clone()
	moved := next.Sections[from]
	rest := append(next.Sections[:from:from], next.Sections[from+1:]...)
	next.Sections = make([]models.Section, 0, len(doc.Sections))
	next.Sections = append(next.Sections, rest[:to]...)
	next.Sections = append(next.Sections, moved)
	next.Sections = append(next.Sections, rest[to:]...)
	next.Normalize()

	if len(next.Settings.ColorOverrides) > 0 {
		overrides := make(map[int]models.Colors, len(next.Settings.ColorOverrides))
		for i, c := range next.Settings.ColorOverrides {
			overrides[movedIndex(i, from, to)] = c
		}
		next.Settings.ColorOverrides = overrides
	}
	return next
}

// ToggleVisibility flips Visible on the section with sectionID. Content and
// position are untouched.
func ToggleVisibility(doc models.LandingPage, sectionID string) models.LandingPage {
	idx := doc.SectionIndex(sectionID)
	if idx < 0 {
		return doc
	}

	next := doc.Clone()
	next.Sections[idx].Visible = !next.Sections[idx].Visible
	return next
}

// UpdateSectionField writes value at path inside the content of the section
// with sectionID. An absent section leaves the document unchanged.
func UpdateSectionField(doc models.LandingPage, sectionID string, path models.FieldPath, value string) (models.LandingPage, error) {
	idx := doc.SectionIndex(sectionID)
	if idx < 0 {
		return doc, nil
	}

	next := doc.Clone()
	section := &next.Sections[idx]
	if section.Content == nil {
		content, err := models.NewContent(section.Type)
		if err != nil {
			return doc, err
		}
		section.Content = content
	}
	if err := section.Content.SetField(path, value); err != nil {
		return doc, fmt.Errorf("section %q: %w", sectionID, err)
	}
	return next, nil
}

// SetSectionColors sets the color override of the section at index. Zero
// colors clear the override.
func SetSectionColors(doc models.LandingPage, index int, colors models.Colors) models.LandingPage {
	if index < 0 || index >= len(doc.Sections) {
		return doc
	}

	next := doc.Clone()
	if colors.IsZero() {
		delete(next.Settings.ColorOverrides, index)
		return next
	}
	if next.Settings.ColorOverrides == nil {
		next.Settings.ColorOverrides = make(map[int]models.Colors)
	}
	next.Settings.ColorOverrides[index] = colors
	return next
}

// SetTitle renames the page.
func SetTitle(doc models.LandingPage, title string) models.LandingPage {
	next := doc.Clone()
	next.Title = title
	return next
}

// SetSEO sets the search-engine title and description.
func SetSEO(doc models.LandingPage, title, description string) models.LandingPage {
	next := doc.Clone()
	next.Settings.SEOTitle = title
	next.Settings.SEODescription = description
	return next
}

// SetStatus moves the page to status.
func SetStatus(doc models.LandingPage, status models.PageStatus) (models.LandingPage, error) {
	if !status.Valid() {
		return doc, fmt.Errorf("%w: %q", models.ErrUnknownPageStatus, status)
	}
	next := doc.Clone()
	next.Status = status
	return next, nil
}

// movedIndex maps an index before moving from->to to its index afterwards.
func movedIndex(i, from, to int) int {
	switch {
	case i == from:
		return to
	case from < to && i > from && i <= to:
		return i - 1
	case to < from && i >= to && i < from:
		return i + 1
	}
	return i
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
