package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// heroPage returns a stored page with one hero section built from the
// hero-centered template.
func heroPage(t *testing.T) models.LandingPage {
	t.Helper()
	s, ok := sections.Default().CreateSectionFromTemplate("hero-centered", 0)
	require.True(t, ok)

	doc := models.NewLandingPage("Promo")
	doc.ID = "page-1"
	doc.OwnerID = 7
	doc.Sections = []models.Section{s}
	return doc
}

// newTestEditor opens a session on doc with autosave effectively off.
func newTestEditor(t *testing.T, doc models.LandingPage) (editorModel, *mock.MockClientPageService) {
	t.Helper()
	pages := mock.NewMockClientPageService(gomock.NewController(t))

	session := editor.NewSession(context.Background(), doc, pages, sections.Default(), editor.WithAutosaveDelay(time.Hour))
	feed := newStateFeed()
	t.Cleanup(func() {
		session.Close()
		feed.close()
	})

	return newEditorModel(context.Background(), session, feed, pages, sections.Default()), pages
}

func execCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
