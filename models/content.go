// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidFieldValue is returned when a value cannot be converted to the
// type of the addressed field (e.g. a non-boolean for "highlighted").
var ErrInvalidFieldValue = errors.New("invalid field value")

// Content is the typed payload of a section. There is exactly one
// implementation per [SectionType]; renderers and editors switch on the
// concrete type.
type Content interface {
	// SectionType returns the tag this content belongs to.
	SectionType() SectionType
	// Clone returns a deep copy that shares no slices with the receiver.
	Clone() Content
	// Field returns the value stored at p.
	Field(p FieldPath) (string, bool)
	// SetField writes v at p, creating missing list elements with seed data.
	SetField(p FieldPath, v string) error
	// Paths enumerates every editable path currently present, in display order.
	Paths() []FieldPath
}

// NewContent returns the empty content variant for t.
func NewContent(t SectionType) (Content, error) {
	switch t {
	case SectionHero:
		return &HeroContent{}, nil
	case SectionFeatures:
		return &FeaturesContent{}, nil
	case SectionTestimonials:
		return &TestimonialsContent{}, nil
	case SectionPricing:
		return &PricingContent{}, nil
	case SectionCTA:
		return &CTAContent{}, nil
	case SectionFAQ:
		return &FAQContent{}, nil
	case SectionContact:
		return &ContactContent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
	}
}

// IsMultiline reports whether the field addressed by p holds free-form
// paragraph text. Enter inserts a newline there instead of ending the edit.
func IsMultiline(p FieldPath) bool {
	name := p.Field
	if p.HasIndex {
		name = p.SubField
	}
	switch name {
	case "subtitle", "description", "quote", "answer", "address":
		return true
	}
	return false
}

// ── field tables ─────────────────────────────────────────────────────────────

type fieldRef struct {
	name string
	ptr  *string
}

type fieldSet []fieldRef

func (fs fieldSet) get(name string) (string, bool) {
	for _, f := range fs {
		if f.name == name {
			return *f.ptr, true
		}
	}
	return "", false
}

func (fs fieldSet) set(name, v string) bool {
	for _, f := range fs {
		if f.name == name {
			*f.ptr = v
			return true
		}
	}
	return false
}

func (fs fieldSet) paths() []FieldPath {
	out := make([]FieldPath, 0, len(fs))
	for _, f := range fs {
		out = append(out, FieldPath{Field: f.name})
	}
	return out
}

func (fs fieldSet) itemPaths(list string, index int) []FieldPath {
	out := make([]FieldPath, 0, len(fs))
	for _, f := range fs {
		out = append(out, FieldPath{Field: list, Index: index, HasIndex: true, SubField: f.name})
	}
	return out
}

func unknownField(t SectionType, p FieldPath) error {
	return fmt.Errorf("%w: %s has no %q", ErrUnknownField, t, p.String())
}

// setTopLevel handles paths that address scalar fields of the content itself.
func setTopLevel(t SectionType, fs fieldSet, p FieldPath, v string) error {
	if !p.IsTopLevel() || !fs.set(p.Field, v) {
		return unknownField(t, p)
	}
	return nil
}

// setItem handles list[i].field paths for lists of flat items.
func setItem(t SectionType, item fieldSet, p FieldPath, v string) error {
	if p.SubField == "" || p.HasSubIndex || !item.set(p.SubField, v) {
		return unknownField(t, p)
	}
	return nil
}

func getTopLevel(fs fieldSet, p FieldPath) (string, bool) {
	if !p.IsTopLevel() {
		return "", false
	}
	return fs.get(p.Field)
}

// ── hero ─────────────────────────────────────────────────────────────────────

// HeroContent is the leading banner of a page.
type HeroContent struct {
	Title      string `json:"title,omitempty" yaml:"title"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText"`
	ButtonLink string `json:"buttonLink,omitempty" yaml:"buttonLink"`
	ImageURL   string `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

func (c *HeroContent) fields() fieldSet {
	return fieldSet{
		{"title", &c.Title},
		{"subtitle", &c.Subtitle},
		{"buttonText", &c.ButtonText},
		{"buttonLink", &c.ButtonLink},
		{"imageUrl", &c.ImageURL},
	}
}

func (c *HeroContent) SectionType() SectionType { return SectionHero }

func (c *HeroContent) Clone() Content {
	clone := *c
	return &clone
}

func (c *HeroContent) Field(p FieldPath) (string, bool) { return getTopLevel(c.fields(), p) }

func (c *HeroContent) SetField(p FieldPath, v string) error {
	return setTopLevel(SectionHero, c.fields(), p, v)
}

func (c *HeroContent) Paths() []FieldPath { return c.fields().paths() }

// ── features ─────────────────────────────────────────────────────────────────

// FeatureItem is one tile of a features grid.
type FeatureItem struct {
	Icon        string `json:"icon,omitempty" yaml:"icon"`
	Title       string `json:"title,omitempty" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
}

func (i *FeatureItem) fields() fieldSet {
	return fieldSet{{"icon", &i.Icon}, {"title", &i.Title}, {"description", &i.Description}}
}

func seedFeature(int) FeatureItem {
	return FeatureItem{Icon: "⭐", Title: "New feature", Description: "Describe what makes this feature great."}
}

// FeaturesContent is a titled grid of feature tiles.
type FeaturesContent struct {
	Title    string        `json:"title,omitempty" yaml:"title"`
	Subtitle string        `json:"subtitle,omitempty" yaml:"subtitle"`
	Items    []FeatureItem `json:"items,omitempty" yaml:"items"`
}

func (c *FeaturesContent) fields() fieldSet {
	return fieldSet{{"title", &c.Title}, {"subtitle", &c.Subtitle}}
}

func (c *FeaturesContent) SectionType() SectionType { return SectionFeatures }

func (c *FeaturesContent) Clone() Content {
	clone := *c
	clone.Items = append([]FeatureItem(nil), c.Items...)
	return &clone
}

func (c *FeaturesContent) Field(p FieldPath) (string, bool) {
	if p.IsTopLevel() {
		return c.fields().get(p.Field)
	}
	if p.Field != "items" || p.Index >= len(c.Items) || p.HasSubIndex {
		return "", false
	}
	return c.Items[p.Index].fields().get(p.SubField)
}

func (c *FeaturesContent) SetField(p FieldPath, v string) error {
	if p.IsTopLevel() {
		return setTopLevel(SectionFeatures, c.fields(), p, v)
	}
	if p.Field != "items" {
		return unknownField(SectionFeatures, p)
	}
	if _, ok := (&FeatureItem{}).fields().get(p.SubField); !ok || p.HasSubIndex {
		return unknownField(SectionFeatures, p)
	}
	c.Items = growTo(c.Items, p.Index, seedFeature)
	return setItem(SectionFeatures, c.Items[p.Index].fields(), p, v)
}

func (c *FeaturesContent) Paths() []FieldPath {
	out := c.fields().paths()
	for i := range c.Items {
		out = append(out, c.Items[i].fields().itemPaths("items", i)...)
	}
	return out
}

// ── testimonials ─────────────────────────────────────────────────────────────

// Testimonial is one customer quote.
type Testimonial struct {
	Quote     string `json:"quote,omitempty" yaml:"quote"`
	Author    string `json:"author,omitempty" yaml:"author"`
	Role      string `json:"role,omitempty" yaml:"role"`
	AvatarURL string `json:"avatarUrl,omitempty" yaml:"avatarUrl"`
}

func (i *Testimonial) fields() fieldSet {
	return fieldSet{{"quote", &i.Quote}, {"author", &i.Author}, {"role", &i.Role}, {"avatarUrl", &i.AvatarURL}}
}

func seedTestimonial(int) Testimonial {
	return Testimonial{Quote: "Great product!", Author: "Happy customer", Role: "Customer"}
}

// TestimonialsContent is a titled list of customer quotes.
type TestimonialsContent struct {
	Title string        `json:"title,omitempty" yaml:"title"`
	Items []Testimonial `json:"items,omitempty" yaml:"items"`
}

func (c *TestimonialsContent) fields() fieldSet {
	return fieldSet{{"title", &c.Title}}
}

func (c *TestimonialsContent) SectionType() SectionType { return SectionTestimonials }

func (c *TestimonialsContent) Clone() Content {
	clone := *c
	clone.Items = append([]Testimonial(nil), c.Items...)
	return &clone
}

func (c *TestimonialsContent) Field(p FieldPath) (string, bool) {
	if p.IsTopLevel() {
		return c.fields().get(p.Field)
	}
	if p.Field != "items" || p.Index >= len(c.Items) || p.HasSubIndex {
		return "", false
	}
	return c.Items[p.Index].fields().get(p.SubField)
}

func (c *TestimonialsContent) SetField(p FieldPath, v string) error {
	if p.IsTopLevel() {
		return setTopLevel(SectionTestimonials, c.fields(), p, v)
	}
	if p.Field != "items" {
		return unknownField(SectionTestimonials, p)
	}
	if _, ok := (&Testimonial{}).fields().get(p.SubField); !ok || p.HasSubIndex {
		return unknownField(SectionTestimonials, p)
	}
	c.Items = growTo(c.Items, p.Index, seedTestimonial)
	return setItem(SectionTestimonials, c.Items[p.Index].fields(), p, v)
}

func (c *TestimonialsContent) Paths() []FieldPath {
	out := c.fields().paths()
	for i := range c.Items {
		out = append(out, c.Items[i].fields().itemPaths("items", i)...)
	}
	return out
}

// ── pricing ──────────────────────────────────────────────────────────────────

// Plan is one pricing tier.
type Plan struct {
	Name        string   `json:"name,omitempty" yaml:"name"`
	Price       string   `json:"price,omitempty" yaml:"price"`
	Period      string   `json:"period,omitempty" yaml:"period"`
	Features    []string `json:"features,omitempty" yaml:"features"`
	ButtonText  string   `json:"buttonText,omitempty" yaml:"buttonText"`
	Highlighted bool     `json:"highlighted,omitempty" yaml:"highlighted"`
}

func (p *Plan) fields() fieldSet {
	return fieldSet{{"name", &p.Name}, {"price", &p.Price}, {"period", &p.Period}, {"buttonText", &p.ButtonText}}
}

func seedPlan(int) Plan {
	return Plan{Name: "New plan", Price: "$0", Period: "/month", Features: []string{"Everything in Free"}, ButtonText: "Choose plan"}
}

func seedPlanFeature(int) string { return "New feature" }

// PricingContent is a row of pricing plans.
type PricingContent struct {
	Title    string `json:"title,omitempty" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle"`
	Plans    []Plan `json:"plans,omitempty" yaml:"plans"`
}

func (c *PricingContent) fields() fieldSet {
	return fieldSet{{"title", &c.Title}, {"subtitle", &c.Subtitle}}
}

func (c *PricingContent) SectionType() SectionType { return SectionPricing }

func (c *PricingContent) Clone() Content {
	clone := *c
	clone.Plans = make([]Plan, len(c.Plans))
	for i, plan := range c.Plans {
		plan.Features = append([]string(nil), plan.Features...)
		clone.Plans[i] = plan
	}
	if c.Plans == nil {
		clone.Plans = nil
	}
	return &clone
}

func (c *PricingContent) Field(p FieldPath) (string, bool) {
	if p.IsTopLevel() {
		return c.fields().get(p.Field)
	}
	if p.Field != "plans" || p.Index >= len(c.Plans) {
		return "", false
	}
	plan := &c.Plans[p.Index]
	switch {
	case p.SubField == "features" && p.HasSubIndex:
		if p.SubIndex >= len(plan.Features) {
			return "", false
		}
		return plan.Features[p.SubIndex], true
	case p.SubField == "highlighted" && !p.HasSubIndex:
		return strconv.FormatBool(plan.Highlighted), true
	case p.HasSubIndex:
		return "", false
	}
	return plan.fields().get(p.SubField)
}

func (c *PricingContent) SetField(p FieldPath, v string) error {
	if p.IsTopLevel() {
		return setTopLevel(SectionPricing, c.fields(), p, v)
	}
	if p.Field != "plans" || p.SubField == "" {
		return unknownField(SectionPricing, p)
	}

	switch {
	case p.SubField == "features" && p.HasSubIndex:
		c.Plans = growTo(c.Plans, p.Index, seedPlan)
		plan := &c.Plans[p.Index]
		plan.Features = growTo(plan.Features, p.SubIndex, seedPlanFeature)
		plan.Features[p.SubIndex] = v
		return nil
	case p.SubField == "highlighted" && !p.HasSubIndex:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidFieldValue, p.String(), v)
		}
		c.Plans = growTo(c.Plans, p.Index, seedPlan)
		c.Plans[p.Index].Highlighted = b
		return nil
	}

	if _, ok := (&Plan{}).fields().get(p.SubField); !ok || p.HasSubIndex {
		return unknownField(SectionPricing, p)
	}
	c.Plans = growTo(c.Plans, p.Index, seedPlan)
	return setItem(SectionPricing, c.Plans[p.Index].fields(), p, v)
}

func (c *PricingContent) Paths() []FieldPath {
	out := c.fields().paths()
	for i := range c.Plans {
		plan := &c.Plans[i]
		out = append(out, plan.fields().itemPaths("plans", i)...)
		for j := range plan.Features {
			out = append(out, FieldPath{Field: "plans", Index: i, HasIndex: true, SubField: "features", SubIndex: j, HasSubIndex: true})
		}
		out = append(out, FieldPath{Field: "plans", Index: i, HasIndex: true, SubField: "highlighted"})
	}
	return out
}

// ── cta ──────────────────────────────────────────────────────────────────────

// CTAContent is a call-to-action banner.
type CTAContent struct {
	Title      string `json:"title,omitempty" yaml:"title"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText"`
	ButtonLink string `json:"buttonLink,omitempty" yaml:"buttonLink"`
}

func (c *CTAContent) fields() fieldSet {
	return fieldSet{{"title", &c.Title}, {"subtitle", &c.Subtitle}, {"buttonText", &c.ButtonText}, {"buttonLink", &c.ButtonLink}}
}

func (c *CTAContent) SectionType() SectionType { return SectionCTA }

func (c *CTAContent) Clone() Content {
	clone := *c
	return &clone
}

func (c *CTAContent) Field(p FieldPath) (string, bool) { return getTopLevel(c.fields(), p) }

func (c *CTAContent) SetField(p FieldPath, v string) error {
	return setTopLevel(SectionCTA, c.fields(), p, v)
}

func (c *CTAContent) Paths() []FieldPath { return c.fields().paths() }

// ── faq ──────────────────────────────────────────────────────────────────────

// FAQItem is one question with its markdown answer.
type FAQItem struct {
	Question string `json:"question,omitempty" yaml:"question"`
	Answer   string `json:"answer,omitempty" yaml:"answer"`
}

func (i *FAQItem) fields() fieldSet {
	return fieldSet{{"question", &i.Question}, {"answer", &i.Answer}}
}

func seedFAQ(int) FAQItem {
	return FAQItem{Question: "New question?", Answer: "Answer goes here."}
}

// FAQContent is a titled list of questions and answers.
type FAQContent struct {
	Title string    `json:"title,omitempty" yaml:"title"`
	Items []FAQItem `json:"items,omitempty" yaml:"items"`
}

func (c *FAQContent) fields() fieldSet {
	return fieldSet{{"title", &c.Title}}
}

func (c *FAQContent) SectionType() SectionType { return SectionFAQ }

func (c *FAQContent) Clone() Content {
	clone := *c
	clone.Items = append([]FAQItem(nil), c.Items...)
	return &clone
}

func (c *FAQContent) Field(p FieldPath) (string, bool) {
	if p.IsTopLevel() {
		return c.fields().get(p.Field)
	}
	if p.Field != "items" || p.Index >= len(c.Items) || p.HasSubIndex {
		return "", false
	}
	return c.Items[p.Index].fields().get(p.SubField)
}

func (c *FAQContent) SetField(p FieldPath, v string) error {
	if p.IsTopLevel() {
		return setTopLevel(SectionFAQ, c.fields(), p, v)
	}
	if p.Field != "items" {
		return unknownField(SectionFAQ, p)
	}
	if _, ok := (&FAQItem{}).fields().get(p.SubField); !ok || p.HasSubIndex {
		return unknownField(SectionFAQ, p)
	}
	c.Items = growTo(c.Items, p.Index, seedFAQ)
	return setItem(SectionFAQ, c.Items[p.Index].fields(), p, v)
}

func (c *FAQContent) Paths() []FieldPath {
	out := c.fields().paths()
	for i := range c.Items {
		out = append(out, c.Items[i].fields().itemPaths("items", i)...)
	}
	return out
}

// ── contact ──────────────────────────────────────────────────────────────────

// ContactContent is a contact block with reachability details.
type ContactContent struct {
	Title      string `json:"title,omitempty" yaml:"title"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle"`
	Email      string `json:"email,omitempty" yaml:"email"`
	Phone      string `json:"phone,omitempty" yaml:"phone"`
	Address    string `json:"address,omitempty" yaml:"address"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText"`
}

func (c *ContactContent) fields() fieldSet {
	return fieldSet{
		{"title", &c.Title},
		{"subtitle", &c.Subtitle},
		{"email", &c.Email},
		{"phone", &c.Phone},
		{"address", &c.Address},
		{"buttonText", &c.ButtonText},
	}
}

func (c *ContactContent) SectionType() SectionType { return SectionContact }

func (c *ContactContent) Clone() Content {
	clone := *c
	return &clone
}

func (c *ContactContent) Field(p FieldPath) (string, bool) { return getTopLevel(c.fields(), p) }

func (c *ContactContent) SetField(p FieldPath, v string) error {
	return setTopLevel(SectionContact, c.fields(), p, v)
}

func (c *ContactContent) Paths() []FieldPath { return c.fields().paths() }
