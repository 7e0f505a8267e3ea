// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/validators"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type editorFocus int

const (
	focusSections editorFocus = iota
	focusFields
)

// editorModel is the page editor screen. All document changes go through
// the session; the model keeps the latest snapshot for rendering.
type editorModel struct {
	ctx      context.Context
	session  *editor.Session
	feed     *stateFeed
	pages    service.ClientPageService
	registry *sections.Registry

	state      editor.State
	sectionIdx int
	fieldIdx   int
	focus      editorFocus

	input        textinput.Model
	area         textarea.Model
	editingTitle bool

	prompt       promptModel
	uploadTarget editor.FieldPointer
	// exportDir receives canvas HTML files.
	exportDir string

	status string
}

func newEditorModel(ctx context.Context, session *editor.Session, feed *stateFeed, pages service.ClientPageService, registry *sections.Registry) editorModel {
	in := textinput.New()
	in.CharLimit = 500
	in.Width = 60

	area := textarea.New()
	area.ShowLineNumbers = false
	area.SetWidth(60)
	area.SetHeight(5)

	return editorModel{
		ctx:       ctx,
		session:   session,
		feed:      feed,
		pages:     pages,
		registry:  registry,
		state:     session.State(),
		input:     in,
		area:      area,
		exportDir: os.TempDir(),
	}
}

func (m editorModel) currentSection() (models.Section, bool) {
	sections := m.state.Doc.Sections
	if m.sectionIdx < 0 || m.sectionIdx >= len(sections) {
		return models.Section{}, false
	}
	return sections[m.sectionIdx], true
}

func (m editorModel) currentPaths() []models.FieldPath {
	s, ok := m.currentSection()
	if !ok {
		return nil
	}
	return contentOf(s).Paths()
}

func contentOf(s models.Section) models.Content {
	if s.Content != nil {
		return s.Content
	}
	c, err := models.NewContent(s.Type)
	if err != nil {
		return &models.HeroContent{}
	}
	return c
}

// apply takes a snapshot that is not older than the one on screen.
func (m editorModel) apply(st editor.State) editorModel {
	if st.Revision < m.state.Revision {
		return m
	}
	m.state = st
	m.clamp()
	if st.Editing == nil {
		m.input.Blur()
		m.area.Blur()
	}
	return m
}

func (m *editorModel) clamp() {
	if n := len(m.state.Doc.Sections); m.sectionIdx >= n {
		m.sectionIdx = n - 1
	}
	if m.sectionIdx < 0 {
		m.sectionIdx = 0
	}
	if n := len(m.currentPaths()); m.fieldIdx >= n {
		m.fieldIdx = n - 1
	}
	if m.fieldIdx < 0 {
		m.fieldIdx = 0
	}
}

func (m editorModel) dispatch(a editor.Action) editorModel {
	m.state = m.session.Dispatch(a)
	m.clamp()
	return m
}

func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		return m.apply(msg.state), m.feed.wait()
	case savedMsg:
		if msg.err != nil {
			m.status = "Не удалось сохранить: " + humanizeError(msg.err)
		} else {
			m.status = "Сохранено"
		}
		m.state = m.session.State()
		return m, cmdClearStatus()
	case publishedMsg:
		m.state = m.session.State()
		if msg.err != nil {
			m.status = "Не удалось опубликовать: " + humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m.status = "Опубликовано: " + m.pages.PreviewURL(m.state.Doc.ID)
		return m, nil
	case uploadedMsg:
		if msg.err != nil {
			m.status = "Не удалось загрузить: " + humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m = m.dispatch(editor.ChangeField{SectionID: msg.sectionID, Path: msg.path, Value: msg.asset.DownloadURL})
		m.status = "Изображение загружено"
		return m, cmdClearStatus()
	case canvasMsg:
		if msg.err != nil {
			m.status = "Не удалось получить холст: " + humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		m.status = "Холст сохранён: " + msg.file
		return m, nil
	case tea.KeyMsg:
		if m.prompt.active() {
			return m.updatePrompt(msg)
		}
		if m.editingTitle || m.state.Editing != nil {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m editorModel) updateEditing(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	if m.editingTitle {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) || key.Matches(msg, keys.tab) {
			m.editingTitle = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.state.Doc.Title {
			m = m.dispatch(editor.SetTitle{Title: v})
		}
		return m, cmd
	}

	ptr := *m.state.Editing
	multiline := models.IsMultiline(ptr.Path)
	switch {
	case key.Matches(msg, keys.esc):
		return m.endEdit(editor.EndEscape), nil
	case key.Matches(msg, keys.tab):
		return m.endEdit(editor.EndBlur), nil
	case key.Matches(msg, keys.enter) && !multiline:
		return m.endEdit(editor.EndEnter), nil
	}

	var (
		cmd   tea.Cmd
		value string
	)
	if multiline {
		m.area, cmd = m.area.Update(msg)
		value = m.area.Value()
	} else {
		m.input, cmd = m.input.Update(msg)
		value = m.input.Value()
	}

	if current, _ := m.fieldValue(ptr); value != current {
		m = m.dispatch(editor.ChangeField{SectionID: ptr.SectionID, Path: ptr.Path, Value: value})
	}
	return m, cmd
}

func (m editorModel) updatePrompt(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	p, cmd, submit, cancel := m.prompt.Update(msg)
	m.prompt = p
	if cancel {
		m.prompt = promptModel{}
		return m, nil
	}
	if !submit {
		return m, cmd
	}

	vals := m.prompt.values()
	switch m.prompt.kind {
	case promptColors:
		for _, c := range vals {
			if c != "" && !validators.ValidColor(c) {
				m.prompt.errMsg = fmt.Sprintf("Цвет %q: нужен формат #rgb или #rrggbb", c)
				return m, nil
			}
		}
		colors := models.Colors{Background: vals[0], Text: vals[1], Accent: vals[2]}
		if colors != m.state.Doc.Settings.ColorOverrides[m.sectionIdx] {
			m = m.dispatch(editor.SetColors{Index: m.sectionIdx, Colors: colors})
		}
	case promptSEO:
		settings := m.state.Doc.Settings
		if vals[0] != settings.SEOTitle || vals[1] != settings.SEODescription {
			m = m.dispatch(editor.SetSEO{Title: vals[0], Description: vals[1]})
		}
	case promptUpload:
		if vals[0] == "" {
			m.prompt.errMsg = "Укажите путь к файлу"
			return m, nil
		}
		m.prompt = promptModel{}
		m.status = "Загрузка..."
		return m, m.cmdUpload(m.uploadTarget, vals[0])
	}

	m.prompt = promptModel{}
	return m, nil
}

func (m editorModel) endEdit(reason editor.EndReason) editorModel {
	m = m.dispatch(editor.EndEdit{Reason: reason})
	if m.state.Editing == nil {
		m.input.Blur()
		m.area.Blur()
	}
	return m
}

func (m editorModel) fieldValue(ptr editor.FieldPointer) (string, bool) {
	idx := m.state.Doc.SectionIndex(ptr.SectionID)
	if idx < 0 {
		return "", false
	}
	return contentOf(m.state.Doc.Sections[idx]).Field(ptr.Path)
}

func (m editorModel) updateNavigation(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.focus == focusSections {
			m.focus = focusFields
		} else {
			m.focus = focusSections
		}
	case key.Matches(msg, keys.enter):
		if m.focus == focusSections {
			m.focus = focusFields
			m.fieldIdx = 0
			return m, nil
		}
		return m.startEdit()
	case key.Matches(msg, keys.add):
		return m, func() tea.Msg { return openTemplatesMsg{} }
	case key.Matches(msg, keys.remove):
		if s, ok := m.currentSection(); ok {
			m = m.dispatch(editor.RemoveSection{SectionID: s.ID})
		}
	case key.Matches(msg, keys.moveUp):
		m = m.moveSection(-1)
	case key.Matches(msg, keys.moveDown):
		m = m.moveSection(1)
	case key.Matches(msg, keys.toggle):
		if s, ok := m.currentSection(); ok {
			m = m.dispatch(editor.ToggleVisibility{SectionID: s.ID})
		}
	case key.Matches(msg, keys.title):
		m.editingTitle = true
		m.input.SetValue(m.state.Doc.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, keys.colors):
		if _, ok := m.currentSection(); !ok {
			return m, nil
		}
		c := m.state.Doc.Settings.ColorOverrides[m.sectionIdx]
		m.prompt = newPrompt(promptColors, fmt.Sprintf("Цвета секции %d", m.sectionIdx+1),
			[]string{"Фон", "Текст", "Акцент"}, []string{c.Background, c.Text, c.Accent})
		return m, textinput.Blink
	case key.Matches(msg, keys.seo):
		settings := m.state.Doc.Settings
		m.prompt = newPrompt(promptSEO, "SEO",
			[]string{"Заголовок", "Описание"}, []string{settings.SEOTitle, settings.SEODescription})
		return m, textinput.Blink
	case key.Matches(msg, keys.upload):
		return m.startUpload()
	case key.Matches(msg, keys.canvas):
		if m.state.Doc.ID == "" {
			m.status = "Сначала сохраните страницу"
			return m, cmdClearStatus()
		}
		m.status = "Получение холста..."
		return m, m.cmdCanvas()
	case key.Matches(msg, keys.save):
		m.status = "Сохранение..."
		return m, m.cmdSave()
	case key.Matches(msg, keys.publish):
		m.status = "Публикация..."
		return m, m.cmdPublish()
	case key.Matches(msg, keys.copy):
		if m.state.Doc.ID == "" || !m.state.Doc.IsPublished() {
			m.status = "Страница ещё не опубликована"
			return m, cmdClearStatus()
		}
		return m, cmdCopy(m.pages.PreviewURL(m.state.Doc.ID))
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m, func() tea.Msg { return leaveEditorMsg{} }
	}
	return m, nil
}

func (m *editorModel) moveCursor(delta int) {
	if m.focus == focusSections {
		next := m.sectionIdx + delta
		if next >= 0 && next < len(m.state.Doc.Sections) {
			m.sectionIdx = next
			m.fieldIdx = 0
		}
		return
	}
	next := m.fieldIdx + delta
	if next >= 0 && next < len(m.currentPaths()) {
		m.fieldIdx = next
	}
}

func (m editorModel) moveSection(delta int) editorModel {
	s, ok := m.currentSection()
	if !ok {
		return m
	}
	m = m.dispatch(editor.MoveSection{SectionID: s.ID, NewIndex: m.sectionIdx + delta})
	if idx := m.state.Doc.SectionIndex(s.ID); idx >= 0 {
		m.sectionIdx = idx
	}
	return m
}

func (m editorModel) startEdit() (editorModel, tea.Cmd) {
	s, ok := m.currentSection()
	paths := m.currentPaths()
	if !ok || m.fieldIdx >= len(paths) {
		return m, nil
	}

	path := paths[m.fieldIdx]
	m = m.dispatch(editor.StartEdit{SectionID: s.ID, Path: path})
	value, _ := contentOf(s).Field(path)

	if models.IsMultiline(path) {
		m.area.SetValue(value)
		return m, m.area.Focus()
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// startUpload opens the file prompt for the selected image field.
func (m editorModel) startUpload() (editorModel, tea.Cmd) {
	s, ok := m.currentSection()
	paths := m.currentPaths()
	if !ok || m.focus != focusFields || m.fieldIdx >= len(paths) || !isImageField(paths[m.fieldIdx]) {
		m.status = "Загрузка доступна только для поля изображения"
		return m, cmdClearStatus()
	}

	m.uploadTarget = editor.FieldPointer{SectionID: s.ID, Path: paths[m.fieldIdx]}
	m.prompt = newPrompt(promptUpload, "Загрузка изображения", []string{"Файл"}, nil)
	return m, textinput.Blink
}

func isImageField(p models.FieldPath) bool {
	return p.Field == "imageUrl" && !p.HasIndex
}

// addSection appends a section from templateID and selects it.
func (m editorModel) addSection(templateID string) editorModel {
	before := len(m.state.Doc.Sections)
	m = m.dispatch(editor.AddSection{TemplateID: templateID})
	if len(m.state.Doc.Sections) > before {
		m.sectionIdx = len(m.state.Doc.Sections) - 1
		m.fieldIdx = 0
		m.focus = focusFields
	}
	return m
}

func (m editorModel) cmdSave() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return savedMsg{err: session.SaveNow(ctx)}
	}
}

func (m editorModel) cmdPublish() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return publishedMsg{err: session.Publish(ctx)}
	}
}

func (m editorModel) cmdUpload(target editor.FieldPointer, file string) tea.Cmd {
	ctx, pages := m.ctx, m.pages
	return func() tea.Msg {
		asset, err := pages.UploadImage(ctx, file)
		return uploadedMsg{sectionID: target.SectionID, path: target.Path, asset: asset, err: err}
	}
}

// cmdCanvas writes the editing-mode HTML of the stored page to exportDir.
// Unsaved changes are not part of it.
func (m editorModel) cmdCanvas() tea.Cmd {
	ctx, pages, id, dir := m.ctx, m.pages, m.state.Doc.ID, m.exportDir
	return func() tea.Msg {
		html, err := pages.Canvas(ctx, id)
		if err != nil {
			return canvasMsg{err: err}
		}
		file := filepath.Join(dir, "landing-"+id+".html")
		if err = os.WriteFile(file, html, 0o600); err != nil {
			return canvasMsg{err: err}
		}
		return canvasMsg{file: file}
	}
}

func cmdCopy(url string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(url)}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func saveBadge(st editor.State) string {
	var label string
	switch st.Save.Status {
	case editor.SavePending:
		label = "есть изменения"
	case editor.SaveSaving:
		label = "сохранение..."
	case editor.SaveSaved:
		label = "сохранено " + st.Save.SavedAt.Local().Format("15:04:05")
	case editor.SaveError:
		label = "ошибка: " + st.Save.Err
	default:
		label = "не изменялась"
	}
	return saveStatusStyles[string(st.Save.Status)].Render("● " + label)
}

func sectionLabel(s models.Section) string {
	title, _ := contentOf(s).Field(models.FieldPath{Field: "title"})
	if strings.TrimSpace(title) == "" {
		title = "-"
	}
	return fmt.Sprintf("[%s] %s", s.Type, fitText(oneLine(title), 28))
}

func placeholderKey(p models.FieldPath) string {
	if p.HasIndex && p.SubField != "" {
		return p.Field + "." + p.SubField
	}
	return p.Field
}

func (m editorModel) sectionsPane() string {
	var b strings.Builder
	if len(m.state.Doc.Sections) == 0 {
		b.WriteString("Секций нет. a: добавить")
	}
	for i, s := range m.state.Doc.Sections {
		line := fmt.Sprintf("%d. %s", i+1, sectionLabel(s))
		if !s.Visible {
			line = hiddenStyle.Render(line)
		}
		b.WriteString(cursor(i == m.sectionIdx))
		b.WriteString(line)
		if i < len(m.state.Doc.Sections)-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if m.focus == focusSections {
		style = activePaneStyle
	}
	return style.Render(b.String())
}

func (m editorModel) fieldsPane() string {
	s, ok := m.currentSection()
	if !ok {
		return paneStyle.Render("-")
	}

	var b strings.Builder
	for i, p := range contentOf(s).Paths() {
		value, _ := contentOf(s).Field(p)

		b.WriteString(cursor(m.focus == focusFields && i == m.fieldIdx))
		b.WriteString(p.String())
		b.WriteString(": ")
		switch {
		case m.state.IsEditing(s.ID, p) && models.IsMultiline(p):
			b.WriteString("\n" + m.area.View())
		case m.state.IsEditing(s.ID, p):
			b.WriteString(m.input.View())
		case value == "":
			b.WriteString(placeholderSty.Render(m.registry.Placeholder(s.Type, placeholderKey(p))))
		default:
			b.WriteString(fitText(oneLine(value), 60))
		}
		b.WriteString("\n")
	}

	style := paneStyle
	if m.focus == focusFields {
		style = activePaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m editorModel) View() string {
	var b strings.Builder

	title := m.state.Doc.Title
	if m.editingTitle {
		title = m.input.View()
	}
	b.WriteString("Название: " + title + "   " + saveBadge(m.state) + "\n")
	b.WriteString(helpStyle.Render("Статус: " + string(m.state.Doc.Status)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sectionsPane(), " ", m.fieldsPane()))

	if m.state.Notice != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.state.Notice))
	}
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	if m.prompt.active() {
		b.WriteString("\n\n" + m.prompt.View())
	}

	hotKeys := "tab: секции/поля │ enter: править │ a: добавить │ x: удалить │ K/J: переместить │ space: скрыть\n" +
		"  t: название │ o: цвета │ s: SEO │ i: изображение │ w: холст\n" +
		"  ctrl+s: сохранить │ p: опубликовать │ c: ссылка │ esc: к списку"
	switch {
	case m.prompt.active():
		hotKeys = "enter: готово │ tab: следующее │ esc: отмена"
	case m.editingTitle || m.state.Editing != nil:
		hotKeys = "enter/esc: готово │ tab: следующее"
	}
	return renderPage("РЕДАКТОР", b.String(), hotKeys)
}
