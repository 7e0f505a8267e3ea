// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDocument_KeepsContentVariants(t *testing.T) {
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	page := testPage()
	page.Sections = append(page.Sections, models.Section{
		ID:      "s2",
		Type:    models.SectionPricing,
		Content: &models.PricingContent{Plans: []models.Plan{{Name: "Pro", Features: []string{"a", "b"}}}},
		Order:   1,
	})
	page.Settings.ColorOverrides = map[int]models.Colors{1: {Accent: "#f00"}}
	page.CreatedAt = &at
	page.UpdatedAt = &at

	doc, err := toPageDocument(page)
	require.NoError(t, err)
	assert.Equal(t, "page-1", doc.ID)
	assert.Equal(t, int64(42), doc.OwnerID)
	assert.Equal(t, "draft", doc.Status)
	require.NotEmpty(t, doc.Body)
	assert.Equal(t, "sections", doc.Body[0].Key)

	back, err := fromPageDocument(doc)
	require.NoError(t, err)

	require.Len(t, back.Sections, 2)
	assert.Equal(t, "Hello", back.Sections[0].Content.(*models.HeroContent).Title)
	pricing, ok := back.Sections[1].Content.(*models.PricingContent)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, pricing.Plans[0].Features)
	assert.Equal(t, 1, back.Sections[1].Order)
	assert.Equal(t, "#f00", back.Settings.ColorOverrides[1].Accent)
	assert.True(t, at.Equal(*back.UpdatedAt))
}

func TestPageDocument_NilSections(t *testing.T) {
	page := testPage()
	page.Sections = nil

	doc, err := toPageDocument(page)
	require.NoError(t, err)

	back, err := fromPageDocument(doc)
	require.NoError(t, err)
	assert.NotNil(t, back.Sections)
	assert.Empty(t, back.Sections)
}
