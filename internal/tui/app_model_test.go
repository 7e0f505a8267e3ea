package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	auth   *mock.MockClientAuthService
	pages  *mock.MockClientPageService
	drafts *mock.MockClientDraftService
}

func newTestApp(t *testing.T) (appModel, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := appMocks{
		auth:   mock.NewMockClientAuthService(ctrl),
		pages:  mock.NewMockClientPageService(ctrl),
		drafts: mock.NewMockClientDraftService(ctrl),
	}
	services := &service.ClientServices{
		AuthService:  mocks.auth,
		PageService:  mocks.pages,
		DraftService: mocks.drafts,
	}

	m := newAppModel(context.Background(), services, sections.Default(), time.Hour,
		models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())
	return m, mocks
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func onDashboard(m appModel, pages []models.LandingPage, drafts []models.Draft) appModel {
	m.screen = screenDashboard
	m.userID = 7
	m.dashboard = m.dashboard.load(pages, drafts, nil)
	return m
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAppModel_LoginFlow(t *testing.T) {
	m, mocks := newTestApp(t)

	m, _ = update(t, m, specialKey(tea.KeyEnter))
	require.Equal(t, screenLogin, m.screen)

	m, _ = update(t, m, runeKey("bob"))
	m, _ = update(t, m, specialKey(tea.KeyTab))
	m, _ = update(t, m, runeKey("secret"))

	mocks.auth.EXPECT().Login(gomock.Any(), models.User{Login: "bob", Password: "secret"}).Return(int64(7), nil)

	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	msg := execCmd(t, cmd)
	assert.Equal(t, authDoneMsg{userID: 7}, msg)

	m, cmd = update(t, m, msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, screenDashboard, m.screen)
	assert.Equal(t, int64(7), m.userID)
	assert.True(t, m.dashboard.loading)
}

func TestAppModel_LoginFailureStaysOnForm(t *testing.T) {
	m, _ := newTestApp(t)
	m.screen = screenLogin

	m, _ = update(t, m, authDoneMsg{err: service.ErrWrongPassword})
	assert.Equal(t, screenLogin, m.screen)
	assert.NotEmpty(t, m.login.errMsg)
	assert.False(t, m.login.submitting)
}

func TestAppModel_RegisterFlow(t *testing.T) {
	m, mocks := newTestApp(t)

	m, _ = update(t, m, specialKey(tea.KeyDown))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	require.Equal(t, screenRegister, m.screen)

	for _, in := range []string{"bob", "pw", "pw"} {
		m, _ = update(t, m, runeKey(in))
		m, _ = update(t, m, specialKey(tea.KeyTab))
	}

	mocks.auth.EXPECT().Register(gomock.Any(), models.User{Login: "bob", Password: "pw"}).Return(int64(3), nil)

	_, cmd := update(t, m, specialKey(tea.KeyEnter))
	assert.Equal(t, authDoneMsg{userID: 3}, execCmd(t, cmd))
}

func TestAppModel_Logout(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, nil, nil)

	mocks.auth.EXPECT().Logout()

	m, _ = update(t, m, runeKey("l"))
	assert.Equal(t, screenWelcome, m.screen)
	assert.Zero(t, m.userID)
}

// ── dashboard ────────────────────────────────────────────────────────────────

func TestAppModel_LoadDashboard(t *testing.T) {
	m, mocks := newTestApp(t)
	m.userID = 7

	page := heroPage(t)
	draft := models.Draft{Key: "new-1", OwnerID: 7, Page: models.NewLandingPage("Local")}
	mocks.pages.EXPECT().List(gomock.Any(), int64(7)).Return([]models.LandingPage{page}, nil)
	mocks.drafts.EXPECT().List(gomock.Any(), int64(7)).Return([]models.Draft{draft}, nil)

	m, _ = update(t, m, execCmd(t, m.cmdLoadDashboard()))
	require.Len(t, m.dashboard.items, 2)
	assert.NotNil(t, m.dashboard.items[0].draft, "drafts come first")
	assert.Equal(t, "Promo", m.dashboard.items[1].title())
}

func TestAppModel_LoadDashboardPartialFailure(t *testing.T) {
	m, mocks := newTestApp(t)

	mocks.pages.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, service.ErrServerUnavailable)
	mocks.drafts.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Draft{{Key: "k"}}, nil)

	m, _ = update(t, m, execCmd(t, m.cmdLoadDashboard()))
	assert.Len(t, m.dashboard.items, 1, "local drafts stay reachable offline")
	assert.ErrorIs(t, m.dashboard.lastErr, service.ErrServerUnavailable)
}

func TestAppModel_DeletePage(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, []models.LandingPage{heroPage(t)}, nil)

	m, _ = update(t, m, runeKey("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Удалить \"Promo\"?")

	mocks.pages.EXPECT().Delete(gomock.Any(), "page-1").Return(nil)

	m, cmd := update(t, m, runeKey("y"))
	assert.False(t, m.showConfirm)
	assert.Equal(t, pageDeletedMsg{}, execCmd(t, cmd))
}

func TestAppModel_DeleteDraftAndCancel(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, nil, []models.Draft{{Key: "new-1", Page: models.NewLandingPage("Local")}})

	m, _ = update(t, m, runeKey("d"))
	m, cmd := update(t, m, runeKey("n"))
	assert.False(t, m.showConfirm)
	assert.Nil(t, cmd)

	mocks.drafts.EXPECT().Discard(gomock.Any(), "new-1").Return(nil)

	m, _ = update(t, m, runeKey("d"))
	_, cmd = update(t, m, runeKey("y"))
	assert.Equal(t, draftDiscardedMsg{}, execCmd(t, cmd))
}

func TestAppModel_DeleteFailureShowsError(t *testing.T) {
	m, _ := newTestApp(t)
	m = onDashboard(m, nil, nil)

	m, cmd := update(t, m, pageDeletedMsg{err: errors.New("boom")})
	assert.True(t, m.showError)
	assert.NotNil(t, cmd, "dashboard reloads anyway")

	m, _ = update(t, m, specialKey(tea.KeyEsc))
	assert.False(t, m.showError)
}

func TestAppModel_VersionScreen(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, nil, nil)

	mocks.pages.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

	m, cmd := update(t, m, runeKey("v"))
	require.Equal(t, screenInfo, m.screen)

	m, _ = update(t, m, execCmd(t, cmd))
	assert.Contains(t, m.View(), "2.0.0")
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = update(t, m, specialKey(tea.KeyEsc))
	assert.Equal(t, screenDashboard, m.screen)
}

func TestAppModel_CopyUnpublishedPage(t *testing.T) {
	m, _ := newTestApp(t)
	m = onDashboard(m, []models.LandingPage{heroPage(t)}, nil)

	m, _ = update(t, m, runeKey("c"))
	assert.Equal(t, "Страница ещё не опубликована", m.dashboard.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.dashboard.status)
}

// ── editor lifecycle ─────────────────────────────────────────────────────────

func TestAppModel_NewPageSavedOnLeave(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, nil, nil)

	var recordedKey string
	mocks.drafts.EXPECT().Record(gomock.Any(), int64(7), gomock.Any()).
		Do(func(key string, _ int64, _ models.LandingPage) { recordedKey = key }).
		AnyTimes()

	_, cmd := update(t, m, runeKey("n"))
	opened, ok := execCmd(t, cmd).(sessionOpenedMsg)
	require.True(t, ok)
	require.NoError(t, opened.err)
	assert.False(t, opened.restored)

	m, _ = update(t, m, opened)
	require.Equal(t, screenEditor, m.screen)
	assert.Equal(t, newPageTitle, m.editor.state.Doc.Title)

	m, _ = update(t, m, runeKey("t"))
	m, _ = update(t, m, runeKey("!"))
	require.True(t, strings.HasPrefix(recordedKey, "new-"))

	gomock.InOrder(
		mocks.pages.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc models.LandingPage) (models.LandingPage, error) {
				assert.Equal(t, newPageTitle+"!", doc.Title)
				doc.ID = "p-9"
				return doc, nil
			}),
		mocks.drafts.EXPECT().Discard(gomock.Any(), recordedKey).Return(nil),
		mocks.drafts.EXPECT().Flush(gomock.Any()).Return(nil),
	)

	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, cmd = update(t, m, specialKey(tea.KeyEsc))
	leave := execCmd(t, cmd)
	require.Equal(t, leaveEditorMsg{}, leave)

	m, cmd = update(t, m, leave)
	closed := execCmd(t, cmd)
	require.Equal(t, editorClosedMsg{}, closed)

	m, _ = update(t, m, closed)
	assert.Equal(t, screenDashboard, m.screen)
	assert.Nil(t, m.editor.session)
	assert.Empty(t, m.dashboard.status)
}

func TestAppModel_RestoreDraftSavesImmediately(t *testing.T) {
	m, mocks := newTestApp(t)
	doc := heroPage(t)
	doc.Title = "Offline edit"
	m = onDashboard(m, nil, []models.Draft{{Key: "page-1", OwnerID: 7, Page: doc}})

	_, cmd := update(t, m, specialKey(tea.KeyEnter))
	opened, ok := execCmd(t, cmd).(sessionOpenedMsg)
	require.True(t, ok)
	assert.True(t, opened.restored)

	m, cmd = update(t, m, opened)
	require.NotNil(t, cmd)
	assert.Equal(t, "Offline edit", m.editor.state.Doc.Title)
	assert.Contains(t, m.editor.status, "Черновик восстановлен")

	mocks.pages.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.LandingPage) (models.LandingPage, error) {
			return doc, nil
		})
	mocks.drafts.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mocks.drafts.EXPECT().Discard(gomock.Any(), "page-1").Return(nil)
	mocks.drafts.EXPECT().Flush(gomock.Any()).Return(nil)

	m, _ = update(t, m, execCmd(t, m.editor.cmdSave()))
	assert.Equal(t, "Сохранено", m.editor.status)

	require.NoError(t, closeSession(context.Background(), m.editor.session, m.editor.feed, mocks.drafts))
}

func TestAppModel_OpenPageFailure(t *testing.T) {
	m, mocks := newTestApp(t)
	m = onDashboard(m, []models.LandingPage{heroPage(t)}, nil)

	mocks.pages.EXPECT().Get(gomock.Any(), "page-1").Return(models.LandingPage{}, store.ErrPageNotFound)

	_, cmd := update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, execCmd(t, cmd))
	assert.True(t, m.showError)
	assert.Equal(t, screenDashboard, m.screen)
}

func TestAppModel_EditorClosedWithError(t *testing.T) {
	m, _ := newTestApp(t)
	m.screen = screenEditor

	m, _ = update(t, m, editorClosedMsg{err: errors.New("offline")})
	assert.Equal(t, screenDashboard, m.screen)
	assert.Contains(t, m.dashboard.status, "сохранены локально")

	_, cmd := update(t, m, editorClosedMsg{quit: true})
	assert.Equal(t, tea.QuitMsg{}, execCmd(t, cmd))
}

func TestAppModel_ForceQuit(t *testing.T) {
	m, _ := newTestApp(t)

	_, cmd := update(t, m, specialKey(tea.KeyCtrlC))
	assert.Equal(t, tea.QuitMsg{}, execCmd(t, cmd))
}

func TestAppModel_TemplatePicker(t *testing.T) {
	m, _ := newTestApp(t)
	m.screen = screenEditor

	m, _ = update(t, m, openTemplatesMsg{})
	require.Equal(t, screenTemplates, m.screen)
	require.NotEmpty(t, m.templates.templates)

	_, cmd := update(t, m, specialKey(tea.KeyEnter))
	assert.Equal(t, addSectionMsg{templateID: m.templates.templates[0].ID}, execCmd(t, cmd))

	m, _ = update(t, m, closeTemplates{})
	assert.Equal(t, screenEditor, m.screen)
}

func TestCloseSession_NilSession(t *testing.T) {
	assert.NoError(t, closeSession(context.Background(), nil, nil, nil))
}
