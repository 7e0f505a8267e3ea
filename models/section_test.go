package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_UnmarshalJSON_DispatchesOnType(t *testing.T) {
	raw := `{
		"id": "s1",
		"type": "pricing",
		"content": {"title": "Plans", "plans": [{"name": "Pro", "price": "$9", "features": ["a", "b"], "highlighted": true}]},
		"styles": {"backgroundColor": "#fff"},
		"order": 3,
		"visible": true
	}`

	var s Section
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, SectionPricing, s.Type)
	assert.Equal(t, 3, s.Order)
	assert.True(t, s.Visible)
	assert.Equal(t, "#fff", s.Styles.BackgroundColor)

	pricing, ok := s.Content.(*PricingContent)
	require.True(t, ok, "expected *PricingContent, got %T", s.Content)
	require.Len(t, pricing.Plans, 1)
	assert.Equal(t, []string{"a", "b"}, pricing.Plans[0].Features)
	assert.True(t, pricing.Plans[0].Highlighted)
}

func TestSection_UnmarshalJSON_MissingContentYieldsEmptyVariant(t *testing.T) {
	var s Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"faq","content":null}`), &s))

	faq, ok := s.Content.(*FAQContent)
	require.True(t, ok)
	assert.Empty(t, faq.Items)
}

func TestSection_UnmarshalJSON_UnknownType(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"id":"x","type":"marquee","content":{}}`), &s)
	assert.ErrorIs(t, err, ErrUnknownSectionType)
}

func TestSection_UnmarshalJSON_WrongContentShape(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"id":"x","type":"features","content":{"items":"nope"}}`), &s)
	assert.Error(t, err)
}

func TestSection_RoundTrip(t *testing.T) {
	orig := Section{
		ID:      "abc",
		Type:    SectionHero,
		Content: &HeroContent{Title: "Welcome"},
		Order:   0,
		Visible: true,
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Section
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, orig, decoded)
}

func TestSectionType_Valid(t *testing.T) {
	assert.True(t, SectionHero.Valid())
	assert.True(t, SectionContact.Valid())
	assert.False(t, SectionType("blog").Valid())
	assert.False(t, SectionType("").Valid())
}
