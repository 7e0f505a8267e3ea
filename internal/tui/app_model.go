package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenDashboard
	screenEditor
	screenTemplates
	screenInfo
)

// closeTimeout bounds the final save when the program exits.
const closeTimeout = 10 * time.Second

const newPageTitle = "Новая страница"

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	registry      *sections.Registry
	autosaveDelay time.Duration
	build         models.AppBuildInfo
	logger        *logger.Logger

	screen screen
	userID int64

	welcome   welcomeModel
	login     authFormModel
	register  authFormModel
	dashboard dashboardModel
	editor    editorModel
	templates templatePickerModel
	info      buildInfoModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete *dashboardItem
}

func newAppModel(ctx context.Context, services *service.ClientServices, registry *sections.Registry, autosaveDelay time.Duration, build models.AppBuildInfo, logger *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		registry:      registry,
		autosaveDelay: autosaveDelay,
		build:         build,
		logger:        logger,
		screen:        screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newAuthFormModel(false),
		register:      newAuthFormModel(true),
		dashboard:     newDashboardModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			if m.editor.session != nil {
				return m, m.cmdCloseEditor(true)
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateScreen(msg)

	case authDoneMsg:
		if msg.err != nil {
			if m.screen == screenRegister {
				m.register = m.register.failed(msg.err)
			} else {
				m.login = m.login.failed(msg.err)
			}
			return m, nil
		}
		m.userID = msg.userID
		m.login = m.login.reset()
		m.register = m.register.reset()
		m.screen = screenDashboard
		m.dashboard = newDashboardModel()
		return m, tea.Batch(m.cmdLoadDashboard(), m.dashboard.spinner.Tick)

	case dashboardLoadedMsg:
		m.dashboard = m.dashboard.load(msg.pages, msg.drafts, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.dashboard.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
		return m, cmd

	case sessionOpenedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.editor = newEditorModel(m.ctx, msg.session, msg.feed, m.services.PageService, m.registry)
		m.screen = screenEditor
		cmds := []tea.Cmd{msg.feed.wait()}
		if msg.restored {
			m.editor.status = "Черновик восстановлен, сохранение..."
			cmds = append(cmds, m.editor.cmdSave())
		}
		return m, tea.Batch(cmds...)

	case stateMsg, savedMsg, publishedMsg, uploadedMsg, canvasMsg:
		if m.editor.session == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case openTemplatesMsg:
		m.templates = newTemplatePickerModel(m.registry)
		m.screen = screenTemplates
		return m, nil

	case addSectionMsg:
		m.editor = m.editor.addSection(msg.templateID)
		m.screen = screenEditor
		return m, nil

	case closeTemplates:
		m.screen = screenEditor
		return m, nil

	case leaveEditorMsg:
		m.editor.status = "Закрытие..."
		return m, m.cmdCloseEditor(msg.quit)

	case editorClosedMsg:
		m.editor = editorModel{}
		if msg.quit {
			return m, tea.Quit
		}
		m.screen = screenDashboard
		m.dashboard.loading = true
		m.dashboard.status = ""
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("page was not saved on close")
			m.dashboard.status = "Не удалось сохранить на сервере, изменения сохранены локально"
		}
		return m, tea.Batch(m.cmdLoadDashboard(), m.dashboard.spinner.Tick)

	case pageDeletedMsg:
		return m.afterDelete(msg.err)

	case draftDiscardedMsg:
		return m.afterDelete(msg.err)

	case versionMsg:
		m.info.loading = false
		m.info.serverVersion = msg.version
		m.info.err = msg.err
		return m, nil

	case copiedMsg:
		status := "Ссылка скопирована"
		if msg.err != nil {
			status = "Не удалось скопировать: " + msg.err.Error()
		}
		if m.screen == screenEditor {
			m.editor.status = status
		} else {
			m.dashboard.status = status
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.editor.status = ""
		m.dashboard.status = ""
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused input.
func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd, _, _ = m.login.Update(msg)
	case screenRegister:
		m.register, cmd, _, _ = m.register.Update(msg)
	}
	return m, cmd
}

func (m appModel) withError(err error) appModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m appModel) afterDelete(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m = m.withError(err)
	}
	m.dashboard.loading = true
	return m, tea.Batch(m.cmdLoadDashboard(), m.dashboard.spinner.Tick)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		item := m.pendingDelete
		m.showConfirm = false
		m.pendingDelete = nil
		if item == nil {
			return m, nil
		}
		if item.draft != nil {
			return m, m.cmdDiscardDraft(item.draft.Key)
		}
		return m, m.cmdDeletePage(item.page.ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = nil
	}
	return m, nil
}

func (m appModel) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenWelcome:
		var choice int
		m.welcome, choice = m.welcome.Update(msg)
		switch choice {
		case 0:
			m.screen = screenLogin
			return m, textinput.Blink
		case 1:
			m.screen = screenRegister
			return m, textinput.Blink
		case 2:
			return m, tea.Quit
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil

	case screenLogin, screenRegister:
		return m.updateAuthForm(msg)

	case screenDashboard:
		return m.updateDashboard(msg)

	case screenEditor:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case screenTemplates:
		var cmd tea.Cmd
		m.templates, cmd = m.templates.Update(msg)
		return m, cmd

	case screenInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.quit) || key.Matches(msg, keys.enter) {
			m.screen = screenDashboard
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateAuthForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	register := m.screen == screenRegister

	form := m.login
	if register {
		form = m.register
	}

	form, cmd, submit, back := form.Update(msg)
	if register {
		m.register = form
	} else {
		m.login = form
	}

	switch {
	case back:
		m.screen = screenWelcome
		return m, nil
	case submit != nil:
		return m, m.cmdAuth(register, *submit)
	}
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.dashboard.move(-1)
	case key.Matches(msg, keys.down):
		m.dashboard.move(1)
	case key.Matches(msg, keys.enter):
		item, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.dashboard.status = "Открытие..."
		if item.draft != nil {
			return m, m.cmdRestoreDraft(*item.draft)
		}
		return m, m.cmdOpenPage(item.page.ID)
	case key.Matches(msg, keys.newItem):
		return m, m.cmdNewPage()
	case key.Matches(msg, keys.delete):
		item, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.pendingDelete = &item
		m.confirm = confirmModel{message: item.title()}
		m.showConfirm = true
	case key.Matches(msg, keys.copy):
		item, ok := m.dashboard.current()
		if !ok || item.draft != nil || !item.page.IsPublished() {
			m.dashboard.status = "Страница ещё не опубликована"
			return m, cmdClearStatus()
		}
		return m, cmdCopy(m.services.PageService.PreviewURL(item.page.ID))
	case key.Matches(msg, keys.refresh):
		m.dashboard.loading = true
		return m, tea.Batch(m.cmdLoadDashboard(), m.dashboard.spinner.Tick)
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
		m.info = buildInfoModel{build: m.build, loading: true}
		return m, m.cmdVersion()
	case key.Matches(msg, keys.logout):
		m.services.AuthService.Logout()
		m.userID = 0
		m.dashboard = newDashboardModel()
		m.welcome = newWelcomeModel()
		m.screen = screenWelcome
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdAuth(register bool, s authSubmit) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	user := models.User{Login: s.login, Password: s.password}
	return func() tea.Msg {
		var (
			userID int64
			err    error
		)
		if register {
			userID, err = auth.Register(ctx, user)
		} else {
			userID, err = auth.Login(ctx, user)
		}
		return authDoneMsg{userID: userID, err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx, pages, drafts, ownerID := m.ctx, m.services.PageService, m.services.DraftService, m.userID
	return func() tea.Msg {
		list, pagesErr := pages.List(ctx, ownerID)
		local, draftsErr := drafts.List(ctx, ownerID)
		return dashboardLoadedMsg{pages: list, drafts: local, err: errors.Join(pagesErr, draftsErr)}
	}
}

func (m appModel) cmdOpenPage(id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.services.PageService.Get(m.ctx, id)
		if err != nil {
			return sessionOpenedMsg{err: err}
		}
		session, feed := m.startSession(doc, "")
		return sessionOpenedMsg{session: session, feed: feed}
	}
}

func (m appModel) cmdNewPage() tea.Cmd {
	return func() tea.Msg {
		session, feed := m.startSession(models.NewLandingPage(newPageTitle), "")
		return sessionOpenedMsg{session: session, feed: feed}
	}
}

// cmdRestoreDraft reopens a locally stored copy. The caller saves it right
// away so the server catches up with the local changes.
func (m appModel) cmdRestoreDraft(d models.Draft) tea.Cmd {
	return func() tea.Msg {
		session, feed := m.startSession(d.Page, d.Key)
		return sessionOpenedMsg{session: session, feed: feed, restored: true}
	}
}

func (m appModel) startSession(doc models.LandingPage, restoredKey string) (*editor.Session, *stateFeed) {
	newKey := restoredKey
	if newKey == "" {
		newKey = "new-" + uuid.NewString()
	}
	recorder := newDraftRecorder(m.ctx, m.services.DraftService, m.userID, newKey, restoredKey, m.logger)
	feed := newStateFeed()

	opts := []editor.Option{
		editor.WithLogger(m.logger),
		editor.WithOnChange(func(st editor.State) {
			recorder.observe(st)
			feed.push(st)
		}),
	}
	if m.autosaveDelay > 0 {
		opts = append(opts, editor.WithAutosaveDelay(m.autosaveDelay))
	}

	return editor.NewSession(m.ctx, doc, m.services.PageService, m.registry, opts...), feed
}

func (m appModel) cmdCloseEditor(quit bool) tea.Cmd {
	ctx, session, feed, drafts := m.ctx, m.editor.session, m.editor.feed, m.services.DraftService
	return func() tea.Msg {
		return editorClosedMsg{err: closeSession(ctx, session, feed, drafts), quit: quit}
	}
}

// closeEditor is used once the program has exited with an editor still open.
func (m appModel) closeEditor() {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(m.ctx), closeTimeout)
	defer cancel()

	if err := closeSession(ctx, m.editor.session, m.editor.feed, m.services.DraftService); err != nil {
		m.logger.Err(err).Str("func", "appModel.closeEditor").Msg("page was not saved on exit")
	}
}

// closeSession saves unsaved changes and stops the session. Queued drafts
// are flushed last so a failed save still leaves a local copy.
func closeSession(ctx context.Context, session *editor.Session, feed *stateFeed, drafts service.ClientDraftService) error {
	if session == nil {
		return nil
	}

	var saveErr error
	if session.State().Dirty() {
		saveErr = session.SaveNow(ctx)
	}
	session.Close()
	if feed != nil {
		feed.close()
	}
	return errors.Join(saveErr, drafts.Flush(ctx))
}

func (m appModel) cmdDeletePage(id string) tea.Cmd {
	ctx, pages := m.ctx, m.services.PageService
	return func() tea.Msg {
		return pageDeletedMsg{err: pages.Delete(ctx, id)}
	}
}

func (m appModel) cmdDiscardDraft(key string) tea.Cmd {
	ctx, drafts := m.ctx, m.services.DraftService
	return func() tea.Msg {
		return draftDiscardedMsg{err: drafts.Discard(ctx, key)}
	}
}

func (m appModel) cmdVersion() tea.Cmd {
	ctx, pages := m.ctx, m.services.PageService
	return func() tea.Msg {
		v, err := pages.ServerVersion(ctx)
		return versionMsg{version: v, err: err}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	var view string
	switch m.screen {
	case screenWelcome:
		view = m.welcome.View()
	case screenLogin:
		view = m.login.View()
	case screenRegister:
		view = m.register.View()
	case screenDashboard:
		view = m.dashboard.View()
	case screenEditor:
		view = m.editor.View()
	case screenTemplates:
		view = m.templates.View()
	case screenInfo:
		view = m.info.View()
	}

	switch {
	case m.showError:
		view += "\n\n" + m.errorOverlay.View()
	case m.showConfirm:
		view += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(view)
}
