// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/a-h/templ"
)

// cssValueRe accepts the style values authors can set: colors, lengths and
// keywords. Anything else is dropped instead of being written into a style
// attribute.
var cssValueRe = regexp.MustCompile(`^[#a-zA-Z0-9 .,%()-]{1,64}$`)

// builder writes the markup of one section.
type builder struct {
	buf      *bytes.Buffer
	r        *Renderer
	mode     Mode
	section  models.Section
	typeName models.SectionType
}

func (b *builder) raw(s string) {
	b.buf.WriteString(s)
}

func (b *builder) attr(name, value string) {
	b.buf.WriteString(" ")
	b.buf.WriteString(name)
	b.buf.WriteString(`="`)
	b.buf.WriteString(templ.EscapeString(value))
	b.buf.WriteString(`"`)
}

// canvasAttrs marks an element as editable in canvas mode.
func (b *builder) canvasAttrs(path string, empty bool) {
	if b.mode != Canvas {
		return
	}
	b.attr("data-edit-field", path)
	if empty {
		b.attr("data-placeholder", "true")
	}
}

func (b *builder) placeholder(key string) string {
	return b.r.defaults.Placeholder(b.typeName, key)
}

// text writes <tag class=...>value</tag>, falling back to the placeholder
// for key. Multiline values keep their line breaks.
func (b *builder) text(tag, class, path, value, key string) {
	empty := value == ""
	if empty {
		value = b.placeholder(key)
	}

	b.raw("<" + tag)
	b.attr("class", class)
	b.canvasAttrs(path, empty)
	b.raw(">")
	escaped := templ.EscapeString(value)
	if models.IsMultiline(models.FieldPath{Field: lastSegment(path)}) {
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	}
	b.raw(escaped)
	b.raw("</" + tag + ">")
}

// markdown writes value converted from markdown inside a div.
func (b *builder) markdown(class, path, value, key string) {
	empty := value == ""
	if empty {
		value = b.placeholder(key)
	}

	b.raw("<div")
	b.attr("class", class)
	b.canvasAttrs(path, empty)
	b.raw(">")
	b.raw(markdownHTML(b.r.md, value))
	b.raw("</div>")
}

// link writes an anchor whose label falls back to a placeholder. Unsafe
// hrefs are replaced by templ's sanitized marker.
func (b *builder) link(class, path, label, labelKey, href string) {
	empty := label == ""
	if empty {
		label = b.placeholder(labelKey)
	}
	if href == "" {
		href = "#"
	}

	b.raw("<a")
	b.attr("class", class)
	b.attr("href", string(templ.URL(href)))
	b.canvasAttrs(path, empty)
	b.raw(">")
	b.raw(templ.EscapeString(label))
	b.raw("</a>")
}

// image writes an <img> only when src is set.
func (b *builder) image(class, path, src, alt string) {
	if src == "" {
		return
	}
	b.raw("<img")
	b.attr("class", class)
	b.attr("src", string(templ.URL(src)))
	b.attr("alt", alt)
	b.canvasAttrs(path, false)
	b.raw(">")
}

func (b *builder) open(tag, class string) {
	b.raw("<" + tag)
	b.attr("class", class)
	b.raw(">")
}

func (b *builder) close(tag string) {
	b.raw("</" + tag + ">")
}

// style resolves the inline style of a section: registry defaults, then the
// section's own styles, then the page-level color override.
func (r *Renderer) style(s models.Section, override models.Colors) string {
	st := r.defaults.DefaultStyles(s.Type)
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&st.BackgroundColor, s.Styles.BackgroundColor)
	merge(&st.TextColor, s.Styles.TextColor)
	merge(&st.AccentColor, s.Styles.AccentColor)
	merge(&st.Padding, s.Styles.Padding)
	merge(&st.Alignment, s.Styles.Alignment)
	merge(&st.BackgroundColor, override.Background)
	merge(&st.TextColor, override.Text)
	merge(&st.AccentColor, override.Accent)

	var parts []string
	add := func(prop, v string) {
		if v != "" && cssValueRe.MatchString(v) {
			parts = append(parts, fmt.Sprintf("%s: %s", prop, v))
		}
	}
	add("background-color", st.BackgroundColor)
	add("color", st.TextColor)
	add("--lp-accent", st.AccentColor)
	add("padding", st.Padding)
	add("text-align", st.Alignment)
	return strings.Join(parts, "; ")
}

func itemPath(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}
