// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns sections with predictable ids.
type fakeSource struct {
	next int
}

func (f *fakeSource) CreateSectionFromTemplate(templateID string, order int) (models.Section, bool) {
	if templateID != "hero" && templateID != "faq" {
		return models.Section{}, false
	}
	f.next++
	st := models.SectionType(templateID)
	content, _ := models.NewContent(st)
	return models.Section{
		ID:      templateID + "-" + string(rune('0'+f.next)),
		Type:    st,
		Content: content,
		Order:   order,
		Visible: true,
	}, true
}

func threeSections() models.LandingPage {
	doc := models.NewLandingPage("Promo")
	doc.Sections = []models.Section{
		{ID: "a", Type: models.SectionHero, Content: &models.HeroContent{Title: "A"}, Visible: true},
		{ID: "b", Type: models.SectionCTA, Content: &models.CTAContent{Title: "B"}, Visible: true},
		{ID: "c", Type: models.SectionFAQ, Content: &models.FAQContent{Title: "C"}, Visible: true},
	}
	doc.Normalize()
	return doc
}

func ids(doc models.LandingPage) []string {
	out := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		out[i] = s.ID
	}
	return out
}

func assertOrderMatchesIndex(t *testing.T, doc models.LandingPage) {
	t.Helper()
	for i, s := range doc.Sections {
		assert.Equal(t, i, s.Order, "section %s", s.ID)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// ── AddSection ───────────────────────────────────────────────────────────────

func TestAddSection_AppendsAtEnd(t *testing.T) {
	doc := threeSections()
	src := &fakeSource{}

	next := AddSection(doc, src, "hero")

	require.Len(t, next.Sections, 4)
	assert.Equal(t, models.SectionHero, next.Sections[3].Type)
	assert.True(t, next.Sections[3].Visible)
	assertOrderMatchesIndex(t, next)
	assert.Len(t, doc.Sections, 3, "input must not be mutated")
}

func TestAddSection_UnknownTemplateIsNoop(t *testing.T) {
	doc := threeSections()
	next := AddSection(doc, &fakeSource{}, "carousel")
	assert.Equal(t, mustJSON(t, doc), mustJSON(t, next))
}

func TestAddSection_WithRegistry(t *testing.T) {
	doc := models.NewLandingPage("Empty")
	next := AddSection(doc, sections.Default(), "pricing-tiers")

	require.Len(t, next.Sections, 1)
	assert.Equal(t, models.SectionPricing, next.Sections[0].Type)
	assert.NotEmpty(t, next.Sections[0].ID)
}

// ── RemoveSection ────────────────────────────────────────────────────────────

func TestRemoveSection(t *testing.T) {
	doc := threeSections()
	next := RemoveSection(doc, "b")

	assert.Equal(t, []string{"a", "c"}, ids(next))
	assertOrderMatchesIndex(t, next)
	assert.Equal(t, []string{"a", "b", "c"}, ids(doc))
}

func TestRemoveSection_Idempotent(t *testing.T) {
	doc := threeSections()
	once := RemoveSection(doc, "b")
	twice := RemoveSection(once, "b")

	assert.Equal(t, mustJSON(t, once), mustJSON(t, twice))
}

func TestRemoveSection_RekeysColorOverrides(t *testing.T) {
	doc := threeSections()
	doc.Settings.ColorOverrides = map[int]models.Colors{
		0: {Background: "#000"},
		1: {Background: "#111"},
		2: {Background: "#222"},
	}

	next := RemoveSection(doc, "b")

	assert.Equal(t, map[int]models.Colors{
		0: {Background: "#000"},
		1: {Background: "#222"},
	}, next.Settings.ColorOverrides)
}

// ── ReorderSection ───────────────────────────────────────────────────────────

func TestReorderSection_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		newIndex int
		want     []string
	}{
		{"first to last", "a", 2, []string{"b", "c", "a"}},
		{"last to first", "c", 0, []string{"c", "a", "b"}},
		{"middle down", "b", 2, []string{"a", "c", "b"}},
		{"clamped high", "a", 99, []string{"b", "c", "a"}},
		{"clamped low", "c", -5, []string{"c", "a", "b"}},
		{"absent id", "zzz", 0, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := ReorderSection(threeSections(), tt.id, tt.newIndex)
			assert.Equal(t, tt.want, ids(next))
			assertOrderMatchesIndex(t, next)
		})
	}
}

func TestReorderSection_SameIndexIsNoop(t *testing.T) {
	doc := threeSections()
	doc.Settings.ColorOverrides = map[int]models.Colors{1: {Accent: "#f00"}}

	for i, s := range doc.Sections {
		next := ReorderSection(doc, s.ID, i)
		assert.Equal(t, mustJSON(t, doc), mustJSON(t, next), s.ID)
	}
}

func TestReorderSection_ColorOverridesFollowSections(t *testing.T) {
	doc := threeSections()
	doc.Settings.ColorOverrides = map[int]models.Colors{
		0: {Background: "#aaa"},
		2: {Background: "#ccc"},
	}

	next := ReorderSection(doc, "a", 2)

	require.Equal(t, []string{"b", "c", "a"}, ids(next))
	assert.Equal(t, map[int]models.Colors{
		1: {Background: "#ccc"},
		2: {Background: "#aaa"},
	}, next.Settings.ColorOverrides)
}

func TestReorderSection_DoesNotMutateInput(t *testing.T) {
	doc := threeSections()
	before := mustJSON(t, doc)

	_ = ReorderSection(doc, "a", 2)
	assert.Equal(t, before, mustJSON(t, doc))
}

// ── ToggleVisibility ─────────────────────────────────────────────────────────

func TestToggleVisibility_PreservesContent(t *testing.T) {
	doc := threeSections()

	hidden := ToggleVisibility(doc, "b")
	assert.False(t, hidden.Sections[1].Visible)
	assert.Equal(t, "B", hidden.Sections[1].Content.(*models.CTAContent).Title)
	assert.Equal(t, ids(doc), ids(hidden))

	shown := ToggleVisibility(hidden, "b")
	assert.Equal(t, mustJSON(t, doc), mustJSON(t, shown))
}

// ── UpdateSectionField ───────────────────────────────────────────────────────

func TestUpdateSectionField(t *testing.T) {
	doc := threeSections()

	next, err := UpdateSectionField(doc, "c", models.MustParseFieldPath("items[1].answer"), "Yes")
	require.NoError(t, err)

	faq := next.Sections[2].Content.(*models.FAQContent)
	require.Len(t, faq.Items, 2)
	assert.Equal(t, "Yes", faq.Items[1].Answer)
	assert.Empty(t, doc.Sections[2].Content.(*models.FAQContent).Items)
}

func TestUpdateSectionField_Errors(t *testing.T) {
	doc := threeSections()

	same, err := UpdateSectionField(doc, "a", models.MustParseFieldPath("items[0].title"), "x")
	assert.ErrorIs(t, err, models.ErrUnknownField)
	assert.Equal(t, mustJSON(t, doc), mustJSON(t, same))

	same, err = UpdateSectionField(doc, "zzz", models.MustParseFieldPath("title"), "x")
	assert.NoError(t, err)
	assert.Equal(t, mustJSON(t, doc), mustJSON(t, same))
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestSetSectionColors(t *testing.T) {
	doc := threeSections()

	next := SetSectionColors(doc, 1, models.Colors{Background: "#123456"})
	assert.Equal(t, "#123456", next.Settings.ColorOverrides[1].Background)
	assert.Nil(t, doc.Settings.ColorOverrides)

	cleared := SetSectionColors(next, 1, models.Colors{})
	assert.NotContains(t, cleared.Settings.ColorOverrides, 1)

	outOfRange := SetSectionColors(doc, 7, models.Colors{Text: "#fff"})
	assert.Nil(t, outOfRange.Settings.ColorOverrides)
}

func TestSetTitleAndSEO(t *testing.T) {
	doc := threeSections()

	next := SetSEO(SetTitle(doc, "Launch"), "Launch | Acme", "Our launch page")
	assert.Equal(t, "Launch", next.Title)
	assert.Equal(t, "Launch | Acme", next.Settings.SEOTitle)
	assert.Equal(t, "Our launch page", next.Settings.SEODescription)
	assert.Equal(t, "Promo", doc.Title)
}

func TestSetStatus(t *testing.T) {
	doc := threeSections()

	next, err := SetStatus(doc, models.PageStatusPublished)
	require.NoError(t, err)
	assert.True(t, next.IsPublished())

	_, err = SetStatus(doc, "deleted")
	assert.ErrorIs(t, err, models.ErrUnknownPageStatus)
}
