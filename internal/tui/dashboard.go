package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// dashboardItem is either a stored page or a local draft.
type dashboardItem struct {
	page  models.LandingPage
	draft *models.Draft
}

func (i dashboardItem) title() string {
	title := i.page.Title
	if i.draft != nil {
		title = i.draft.Page.Title
	}
	if strings.TrimSpace(title) == "" {
		return "(без названия)"
	}
	return title
}

type dashboardModel struct {
	items   []dashboardItem
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s, loading: true}
}

// load replaces the items: drafts first, then pages.
func (m dashboardModel) load(pages []models.LandingPage, drafts []models.Draft, err error) dashboardModel {
	m.loading = false
	m.lastErr = err

	items := make([]dashboardItem, 0, len(drafts)+len(pages))
	for i := range drafts {
		items = append(items, dashboardItem{draft: &drafts[i]})
	}
	for _, p := range pages {
		items = append(items, dashboardItem{page: p})
	}
	m.items = items

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m dashboardModel) current() (dashboardItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return dashboardItem{}, false
	}
	return m.items[m.idx], true
}

func (m *dashboardModel) move(delta int) {
	next := m.idx + delta
	if next >= 0 && next < len(m.items) {
		m.idx = next
	}
}

func statusIcon(item dashboardItem) string {
	if item.draft != nil {
		return "[черновик]"
	}
	switch item.page.Status {
	case models.PageStatusPublished:
		return "[опубл.]  "
	case models.PageStatusArchived:
		return "[архив]   "
	default:
		return "[ред.]    "
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Нет страниц. Нажмите n, чтобы создать первую.\n")
	} else {
		for i, item := range m.items {
			line := fmt.Sprintf("%s %s", statusIcon(item), fitText(item.title(), 48))
			if item.draft != nil {
				line += helpStyle.Render("  сохранён локально " + item.draft.SavedAt.Local().Format("02.01 15:04"))
			}
			b.WriteString(cursor(i == m.idx))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+humanizeError(m.lastErr)) + "\n")
	}

	return renderPage("МОИ СТРАНИЦЫ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новая │ d: удалить │ c: ссылка │ r: обновить │ v: версия │ l: выйти │ q: выход")
}
