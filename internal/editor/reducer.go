// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/page"
	"github.com/MKhiriev/go-landing-builder/models"
)

// Reducer applies actions to editor state.
type Reducer struct {
	sections page.SectionSource
}

// NewReducer returns a Reducer that instantiates new sections from src.
func NewReducer(src page.SectionSource) Reducer {
	return Reducer{sections: src}
}

// Reduce returns the state that results from applying a to s. It never
// mutates s. Actions that address absent sections or indexes leave the state
// unchanged.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Load:
		next := NewState(a.Doc)
		if !next.Doc.IsNew() {
			next.Save.Status = SaveSaved
		}
		return next

	// ── focus ────────────────────────────────────────────────────────────
	case StartEdit:
		if s.Doc.SectionIndex(a.SectionID) < 0 {
			return s
		}
		s.Editing = &FieldPointer{SectionID: a.SectionID, Path: a.Path}
		return s

	case EndEdit:
		if s.Editing == nil {
			return s
		}
		if a.Reason == EndEnter && models.IsMultiline(s.Editing.Path) {
			return s
		}
		s.Editing = nil
		return s

	// ── document ─────────────────────────────────────────────────────────
	case ChangeField:
		if s.Doc.SectionIndex(a.SectionID) < 0 {
			return s
		}
		doc, err := page.UpdateSectionField(s.Doc, a.SectionID, a.Path, a.Value)
		if err != nil {
			s.Notice = err.Error()
			return s
		}
		return s.mutated(doc)

	case AddSection:
		doc := page.AddSection(s.Doc, r.sections, a.TemplateID)
		if len(doc.Sections) == len(s.Doc.Sections) {
			s.Notice = fmt.Sprintf("unknown section template %q", a.TemplateID)
			return s
		}
		return s.mutated(doc)

	case RemoveSection:
		if s.Doc.SectionIndex(a.SectionID) < 0 {
			return s
		}
		if s.Editing != nil && s.Editing.SectionID == a.SectionID {
			s.Editing = nil
		}
		s.Drag = DragState{}
		return s.mutated(page.RemoveSection(s.Doc, a.SectionID))

	case MoveSection:
		from := s.Doc.SectionIndex(a.SectionID)
		if from < 0 || clampIndex(a.NewIndex, len(s.Doc.Sections)) == from {
			return s
		}
		return s.mutated(page.ReorderSection(s.Doc, a.SectionID, a.NewIndex))

	case ToggleVisibility:
		if s.Doc.SectionIndex(a.SectionID) < 0 {
			return s
		}
		return s.mutated(page.ToggleVisibility(s.Doc, a.SectionID))

	case SetColors:
		if a.Index < 0 || a.Index >= len(s.Doc.Sections) {
			return s
		}
		return s.mutated(page.SetSectionColors(s.Doc, a.Index, a.Colors))

	case SetTitle:
		if a.Title == s.Doc.Title {
			return s
		}
		return s.mutated(page.SetTitle(s.Doc, a.Title))

	case SetSEO:
		return s.mutated(page.SetSEO(s.Doc, a.Title, a.Description))

	// ── drag ─────────────────────────────────────────────────────────────
	case DragStart:
		if a.Index < 0 || a.Index >= len(s.Doc.Sections) {
			return s
		}
		s.Drag = DragState{Active: true, From: a.Index, OverIndex: a.Index}
		return s

	case DragOver:
		if !s.Drag.Active {
			return s
		}
		s.Drag.OverIndex = clampIndex(a.Index, len(s.Doc.Sections))
		return s

	case Drop:
		drag := s.Drag
		s.Drag = DragState{}
		if !drag.Active || drag.From == drag.OverIndex || drag.From >= len(s.Doc.Sections) {
			return s
		}
		return s.mutated(page.ReorderSection(s.Doc, s.Doc.Sections[drag.From].ID, drag.OverIndex))

	case DragEnd:
		s.Drag = DragState{}
		return s

	// ── save lifecycle ───────────────────────────────────────────────────
	case SaveStarted:
		s.Save.Status = SaveSaving
		s.Save.Err = ""
		return s

	case SaveSucceeded:
		s.Doc.ID = a.Page.ID
		s.Doc.OwnerID = a.Page.OwnerID
		s.Doc.Status = a.Page.Status
		s.Doc.CreatedAt = a.Page.CreatedAt
		s.Doc.UpdatedAt = a.Page.UpdatedAt
		if a.Revision > s.Save.SavedRevision {
			s.Save.SavedRevision = a.Revision
		}
		if a.Page.UpdatedAt != nil {
			s.Save.SavedAt = *a.Page.UpdatedAt
		}
		s.Save.Err = ""
		s.Save.Status = SaveSaved
		if s.Dirty() {
			s.Save.Status = SavePending
		}
		return s

	case SaveFailed:
		s.Save.Status = SaveError
		s.Save.Err = "save failed"
		if a.Err != nil {
			s.Save.Err = a.Err.Error()
		}
		return s
	}

	return s
}

// mutated installs doc as the new document revision.
func (s State) mutated(doc models.LandingPage) State {
	s.Doc = doc
	s.Revision++
	s.Notice = ""
	s.Save.Status = SavePending
	return s
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
