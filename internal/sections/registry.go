// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sections

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

var (
	ErrDuplicateTemplate = errors.New("duplicate section template id")
	ErrMissingTemplate   = errors.New("section type has no template")
)

// Template is a named starting point for a new section.
type Template struct {
	ID      string
	Type    models.SectionType
	Name    string
	Content models.Content
	Styles  models.Styles
}

type templateYAML struct {
	ID      string             `yaml:"id"`
	Type    models.SectionType `yaml:"type"`
	Name    string             `yaml:"name"`
	Content yaml.Node          `yaml:"content"`
	Styles  models.Styles      `yaml:"styles"`
}

type registryYAML struct {
	Templates    []templateYAML                           `yaml:"templates"`
	Placeholders map[models.SectionType]map[string]string `yaml:"placeholders"`
}

// Registry is the read-only catalog of section templates and the placeholder
// text layouts fall back to. It is safe for concurrent use.
type Registry struct {
	templates    []Template
	byID         map[string]int
	byType       map[models.SectionType]int
	placeholders map[models.SectionType]map[string]string

	newID func() string
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded template table.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(defaultTemplates)
		if err != nil {
			panic(fmt.Sprintf("sections: embedded templates: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load parses a template table. Every section type must have at least one
// template; the first template of a type is its default.
func Load(data []byte) (*Registry, error) {
	var raw registryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding section templates: %w", err)
	}

	r := &Registry{
		byID:         make(map[string]int, len(raw.Templates)),
		byType:       make(map[models.SectionType]int, len(models.SectionTypes)),
		placeholders: raw.Placeholders,
		newID:        uuid.NewString,
	}
	if r.placeholders == nil {
		r.placeholders = map[models.SectionType]map[string]string{}
	}

	for _, t := range raw.Templates {
		content, err := models.NewContent(t.Type)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		if !t.Content.IsZero() {
			if err = t.Content.Decode(content); err != nil {
				return nil, fmt.Errorf("template %q: decode content: %w", t.ID, err)
			}
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, t.ID)
		}

		r.byID[t.ID] = len(r.templates)
		if _, ok := r.byType[t.Type]; !ok {
			r.byType[t.Type] = len(r.templates)
		}
		r.templates = append(r.templates, Template{
			ID:      t.ID,
			Type:    t.Type,
			Name:    t.Name,
			Content: content,
			Styles:  t.Styles,
		})
	}

	for _, st := range models.SectionTypes {
		if _, ok := r.byType[st]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, st)
		}
	}

	return r, nil
}

// Templates returns every template in table order. The returned templates
// carry their own copies of the content.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.templates))
	for i, t := range r.templates {
		out[i] = t.clone()
	}
	return out
}

// Lookup returns the template with the given id.
func (r *Registry) Lookup(id string) (Template, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Template{}, false
	}
	return r.templates[i].clone(), true
}

// Default returns the default template for a section type.
func (r *Registry) Default(t models.SectionType) (Template, error) {
	i, ok := r.byType[t]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", models.ErrUnknownSectionType, t)
	}
	return r.templates[i].clone(), nil
}

// CreateSectionFromTemplate instantiates a new visible section at order with
// a fresh id and a deep copy of the template's content and styles. It
// reports false for an unknown template id.
func (r *Registry) CreateSectionFromTemplate(id string, order int) (models.Section, bool) {
	t, ok := r.Lookup(id)
	if !ok {
		return models.Section{}, false
	}
	return t.newSection(r.newID(), order), true
}

// CreateSection instantiates a new section from the default template of t.
func (r *Registry) CreateSection(t models.SectionType, order int) (models.Section, error) {
	tmpl, err := r.Default(t)
	if err != nil {
		return models.Section{}, err
	}
	return tmpl.newSection(r.newID(), order), nil
}

// Placeholders returns a copy of the fallback text table for t.
func (r *Registry) Placeholders(t models.SectionType) map[string]string {
	return maps.Clone(r.placeholders[t])
}

// Placeholder returns the fallback text for a field of a section type.
// List item fields are keyed as "items.title" or "plans.features".
func (r *Registry) Placeholder(t models.SectionType, key string) string {
	if v, ok := r.placeholders[t][key]; ok {
		return v
	}
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	return "Add " + key
}

// DefaultStyles returns the styles of the default template for t, used to
// fill styles a section leaves empty.
func (r *Registry) DefaultStyles(t models.SectionType) models.Styles {
	i, ok := r.byType[t]
	if !ok {
		return models.Styles{}
	}
	return r.templates[i].Styles
}

func (t Template) clone() Template {
	t.Content = t.Content.Clone()
	return t
}

func (t Template) newSection(id string, order int) models.Section {
	return models.Section{
		ID:      id,
		Type:    t.Type,
		Content: t.Content.Clone(),
		Styles:  t.Styles,
		Order:   order,
		Visible: true,
	}
}
