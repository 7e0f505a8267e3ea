// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import "github.com/MKhiriev/go-landing-builder/models"

// Action is a user intent or a save lifecycle event.
type Action interface {
	action()
}

// EndReason says why inline editing stopped.
type EndReason int

const (
	EndBlur EndReason = iota
	EndEscape
	EndEnter
)

type (
	// Load replaces the document and resets the editor.
	Load struct{ Doc models.LandingPage }

	// StartEdit focuses a field. Any previously focused field loses focus.
	StartEdit struct {
		SectionID string
		Path      models.FieldPath
	}
	// ChangeField writes a new value into a section's content.
	ChangeField struct {
		SectionID string
		Path      models.FieldPath
		Value     string
	}
	// EndEdit releases focus.
	EndEdit struct{ Reason EndReason }

	AddSection    struct{ TemplateID string }
	RemoveSection struct{ SectionID string }

	// MoveSection puts a section at NewIndex, clamped to the valid range.
	MoveSection struct {
		SectionID string
		NewIndex  int
	}

	ToggleVisibility struct{ SectionID string }

	DragStart struct{ Index int }
	DragOver  struct{ Index int }
	Drop      struct{}
	DragEnd   struct{}

	SetColors struct {
		Index  int
		Colors models.Colors
	}
	SetTitle struct{ Title string }
	SetSEO   struct{ Title, Description string }

	// SaveStarted marks a save of Revision as in flight.
	SaveStarted struct{ Revision int64 }
	// SaveSucceeded carries the page as stored by the server.
	SaveSucceeded struct {
		Revision int64
		Page     models.LandingPage
	}
	SaveFailed struct{ Err error }
)

func (Load) action()             {}
func (StartEdit) action()        {}
func (ChangeField) action()      {}
func (EndEdit) action()          {}
func (AddSection) action()       {}
func (RemoveSection) action()    {}
func (MoveSection) action()      {}
func (ToggleVisibility) action() {}
func (DragStart) action()        {}
func (DragOver) action()         {}
func (Drop) action()             {}
func (DragEnd) action()          {}
func (SetColors) action()        {}
func (SetTitle) action()         {}
func (SetSEO) action()           {}
func (SaveStarted) action()      {}
func (SaveSucceeded) action()    {}
func (SaveFailed) action()       {}
