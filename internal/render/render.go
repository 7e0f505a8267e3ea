// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns landing pages into HTML.
//
// Static mode produces the public page. Canvas mode produces the same
// section markup with editing affordances: every editable element carries a
// data-edit-field attribute and each section is wrapped in chrome with
// move, color, visibility and delete controls.
package render

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
)

// Mode selects public or editing output.
type Mode int

const (
	Static Mode = iota
	Canvas
)

func (m Mode) String() string {
	if m == Canvas {
		return "canvas"
	}
	return "static"
}

// Defaults supplies the fallback text and styles shared by both modes.
type Defaults interface {
	Placeholder(t models.SectionType, key string) string
	DefaultStyles(t models.SectionType) models.Styles
}

// Renderer renders sections and pages. It is safe for concurrent use.
type Renderer struct {
	defaults Defaults
	md       goldmark.Markdown
}

// NewRenderer returns a Renderer that falls back to defaults for empty
// fields and unset styles.
func NewRenderer(defaults Defaults) *Renderer {
	return &Renderer{
		defaults: defaults,
		md:       newMarkdown(),
	}
}

// Section renders one section at index. Rendering never fails on empty
// content: every field falls back to its placeholder.
func (r *Renderer) Section(s models.Section, index int, mode Mode) templ.Component {
	return r.section(s, index, models.Colors{}, mode)
}

func (r *Renderer) section(s models.Section, index int, override models.Colors, mode Mode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.writeSection(&buf, s, index, override, mode)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Page renders a complete HTML document. Static mode includes visible
// sections only; Canvas includes every section and marks hidden ones. Both
// follow the array order of doc.Sections.
func (r *Renderer) Page(doc models.LandingPage, mode Mode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.writePage(&buf, doc, mode)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func (r *Renderer) writePage(buf *bytes.Buffer, doc models.LandingPage, mode Mode) {
	title := doc.Settings.SEOTitle
	if title == "" {
		title = doc.Title
	}

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head>")
	buf.WriteString(`<meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString("<title>" + templ.EscapeString(title) + "</title>")
	if doc.Settings.SEODescription != "" {
		buf.WriteString(`<meta name="description" content="` + templ.EscapeString(doc.Settings.SEODescription) + `">`)
	}
	buf.WriteString("<style>" + baseCSS + "</style>")
	buf.WriteString("</head>")

	bodyClass := "lp-page"
	if mode == Canvas {
		bodyClass += " lp-canvas"
	}
	buf.WriteString(`<body class="` + bodyClass + `"><main>`)
	for i, s := range doc.Sections {
		if mode == Static && !s.Visible {
			continue
		}
		r.writeSection(buf, s, i, doc.Settings.ColorOverrides[i], mode)
	}
	buf.WriteString("</main></body></html>")
}

func (r *Renderer) writeSection(buf *bytes.Buffer, s models.Section, index int, override models.Colors, mode Mode) {
	if s.Content == nil {
		if c, err := models.NewContent(s.Type); err == nil {
			s.Content = c
		}
	}

	b := &builder{buf: buf, r: r, mode: mode, section: s, typeName: s.Type}

	if mode == Canvas {
		class := "lp-canvas-item"
		if !s.Visible {
			class += " lp-hidden"
		}
		b.raw("<div")
		b.attr("class", class)
		b.attr("data-section-id", s.ID)
		b.attr("data-index", strconv.Itoa(index))
		b.attr("data-visible", strconv.FormatBool(s.Visible))
		b.raw(` draggable="true">`)
		b.chrome(index)
	}

	b.raw("<section")
	b.attr("id", "section-"+s.ID)
	b.attr("class", "lp-section lp-"+string(s.Type))
	if style := r.style(s, override); style != "" {
		b.attr("style", style)
	}
	b.raw(">")
	b.body()
	b.raw("</section>")

	if mode == Canvas {
		b.raw("</div>")
	}
}

// chrome writes the canvas-only section controls.
func (b *builder) chrome(index int) {
	visibility := "Hide"
	if !b.section.Visible {
		visibility = "Show"
	}

	b.raw(`<div class="lp-controls">`)
	for _, c := range []struct{ action, label string }{
		{"drag", "⠿"},
		{"move-up", "↑"},
		{"move-down", "↓"},
		{"colors", "Colors"},
		{"toggle-visibility", visibility},
		{"delete", "Delete"},
	} {
		b.raw(`<button type="button"`)
		b.attr("data-action", c.action)
		b.attr("data-index", strconv.Itoa(index))
		b.raw(">" + templ.EscapeString(c.label) + "</button>")
	}
	b.raw("</div>")
}

const baseCSS = `*{box-sizing:border-box}body{margin:0;font-family:system-ui,sans-serif;line-height:1.5}` +
	`.lp-container{max-width:1080px;margin:0 auto}` +
	`.lp-grid{display:grid;gap:24px;grid-template-columns:repeat(auto-fit,minmax(240px,1fr))}` +
	`.lp-card{padding:24px;border-radius:12px;background:rgba(127,127,127,.08)}` +
	`.lp-button{display:inline-block;padding:12px 24px;border-radius:8px;background:var(--lp-accent);color:#fff;text-decoration:none}` +
	`.lp-plan-highlighted{outline:2px solid var(--lp-accent)}` +
	`.lp-hero-image{max-width:100%;margin-top:32px;border-radius:12px}` +
	`.lp-avatar{width:40px;height:40px;border-radius:50%}` +
	`.lp-faq-item{padding:12px 0;border-bottom:1px solid rgba(127,127,127,.2)}` +
	`.lp-contact{list-style:none;padding:0}` +
	`.lp-canvas-item{position:relative;outline:1px dashed transparent}` +
	`.lp-canvas-item:hover{outline-color:#6366f1}` +
	`.lp-hidden{opacity:.4}` +
	`.lp-controls{position:absolute;top:8px;right:8px;display:flex;gap:4px;z-index:1}` +
	`[data-edit-field]{cursor:text}[data-placeholder]{opacity:.6}`
