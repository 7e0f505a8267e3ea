package tui

import (
	"strings"

	"github.com/MKhiriev/go-landing-builder/models"
)

type buildInfoModel struct {
	build         models.AppBuildInfo
	serverVersion string
	err           error
	loading       bool
}

func (m buildInfoModel) View() string {
	var b strings.Builder
	b.WriteString("Название приложения: go-landing-builder\n")
	b.WriteString(m.build.String())
	b.WriteString("\n\nВерсия сервера: ")
	switch {
	case m.loading:
		b.WriteString("...")
	case m.err != nil:
		b.WriteString(humanizeError(m.err))
	default:
		b.WriteString(m.serverVersion)
	}
	return renderPage("О ПРОГРАММЕ", b.String(), "esc: назад")
}
