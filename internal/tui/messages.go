package tui

import (
	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/models"
)

type authDoneMsg struct {
	userID int64
	err    error
}

type dashboardLoadedMsg struct {
	pages  []models.LandingPage
	drafts []models.Draft
	err    error
}

type sessionOpenedMsg struct {
	session  *editor.Session
	feed     *stateFeed
	restored bool
	err      error
}

// stateMsg carries an editor snapshot published by the session.
type stateMsg struct {
	state editor.State
}

type savedMsg struct {
	err error
}

type publishedMsg struct {
	err error
}

// uploadedMsg reports an image upload for the field at path.
type uploadedMsg struct {
	sectionID string
	path      models.FieldPath
	asset     models.PresignResponse
	err       error
}

// canvasMsg reports where the editing-mode HTML was written.
type canvasMsg struct {
	file string
	err  error
}

type editorClosedMsg struct {
	err  error
	quit bool
}

type pageDeletedMsg struct {
	err error
}

type draftDiscardedMsg struct {
	err error
}

type versionMsg struct {
	version string
	err     error
}

// editor screen intents handled by the root model
type (
	openTemplatesMsg struct{}
	addSectionMsg    struct{ templateID string }
	closeTemplates   struct{}
	leaveEditorMsg   struct{ quit bool }
)

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
