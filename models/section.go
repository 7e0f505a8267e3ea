// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SectionType is the tag that selects a section's content variant, layout
// and default template. The set is closed.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionTestimonials SectionType = "testimonials"
	SectionPricing      SectionType = "pricing"
	SectionCTA          SectionType = "cta"
	SectionFAQ          SectionType = "faq"
	SectionContact      SectionType = "contact"
)

// SectionTypes lists every known section type in a stable order.
var SectionTypes = []SectionType{
	SectionHero,
	SectionFeatures,
	SectionTestimonials,
	SectionPricing,
	SectionCTA,
	SectionFAQ,
	SectionContact,
}

var (
	// ErrUnknownSectionType is returned when a section carries a type tag
	// outside of [SectionTypes].
	ErrUnknownSectionType = errors.New("unknown section type")
)

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Styles holds presentation overrides for one section. Empty values mean
// "use the registry default".
type Styles struct {
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor"`
	AccentColor     string `json:"accentColor,omitempty" yaml:"accentColor"`
	Padding         string `json:"padding,omitempty" yaml:"padding"`
	Alignment       string `json:"alignment,omitempty" yaml:"alignment"`
}

// Section is one visual block of a landing page.
//
// Type is immutable after creation: changing the purpose of a section means
// removing it and adding a new one. Order mirrors the section's position in
// [LandingPage.Sections] and is rewritten on every structural mutation.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Content Content     `json:"content"`
	Styles  Styles      `json:"styles"`
	Order   int         `json:"order"`
	Visible bool        `json:"visible"`
}

// sectionWire is the JSON shape of a section with its content still undecoded.
type sectionWire struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Content json.RawMessage `json:"content"`
	Styles  Styles          `json:"styles"`
	Order   int             `json:"order"`
	Visible bool            `json:"visible"`
}

// UnmarshalJSON decodes the section and its content into the variant selected
// by the "type" field. A missing or null content yields the empty variant.
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	content, err := NewContent(wire.Type)
	if err != nil {
		return fmt.Errorf("section %q: %w", wire.ID, err)
	}

	if len(wire.Content) > 0 && string(wire.Content) != "null" {
		if err = json.Unmarshal(wire.Content, content); err != nil {
			return fmt.Errorf("section %q: decode %s content: %w", wire.ID, wire.Type, err)
		}
	}

	*s = Section{
		ID:      wire.ID,
		Type:    wire.Type,
		Content: content,
		Styles:  wire.Styles,
		Order:   wire.Order,
		Visible: wire.Visible,
	}
	return nil
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	clone := s
	if s.Content != nil {
		clone.Content = s.Content.Clone()
	}
	return clone
}
