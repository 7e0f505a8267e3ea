// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor holds the editing session of one landing page.
//
// All editor state lives in a single [State] value. User intent is expressed
// as [Action] values and applied by [Reducer.Reduce], which never mutates its
// input. [Session] owns the current state, serializes dispatches and drives
// the debounced autosave against a [Gateway].
package editor

import (
	"time"

	"github.com/MKhiriev/go-landing-builder/models"
)

// FieldPointer addresses the one field that is currently being edited inline.
type FieldPointer struct {
	SectionID string
	Path      models.FieldPath
}

// DragState is the transient state of a drag-reorder gesture. It is
// independent of the editing pointer.
type DragState struct {
	Active    bool
	From      int
	OverIndex int
}

// SaveStatus is the indicator shown next to the document title.
type SaveStatus string

const (
	SaveIdle    SaveStatus = "idle"
	SavePending SaveStatus = "pending"
	SaveSaving  SaveStatus = "saving"
	SaveSaved   SaveStatus = "saved"
	SaveError   SaveStatus = "error"
)

// SaveState tracks the save lifecycle of the document.
type SaveState struct {
	Status SaveStatus
	// Err is the message of the last failed save.
	Err string
	// SavedRevision is the document revision the server last acknowledged.
	SavedRevision int64
	SavedAt       time.Time
}

// State is the complete editor state.
type State struct {
	Doc     models.LandingPage
	Editing *FieldPointer
	Drag    DragState
	Save    SaveState

	// Revision increases by one on every document mutation.
	Revision int64

	// Notice is the last non-fatal problem with an action, such as an
	// unknown field path. It is cleared by the next successful mutation.
	Notice string
}

// NewState returns the initial state for doc.
func NewState(doc models.LandingPage) State {
	doc = doc.Clone()
	doc.Normalize()
	return State{
		Doc:  doc,
		Save: SaveState{Status: SaveIdle},
	}
}

// Dirty reports whether the document has changes the server has not seen.
func (s State) Dirty() bool {
	return s.Revision != s.Save.SavedRevision
}

// IsEditing reports whether path of sectionID has focus.
func (s State) IsEditing(sectionID string, path models.FieldPath) bool {
	return s.Editing != nil && s.Editing.SectionID == sectionID && s.Editing.Path == path
}
