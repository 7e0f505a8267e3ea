package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"truncate me please", 10, "truncat..."},
		{"Привет, мир", 8, "Приве..."},
		{"abc", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", oneLine("a\nb\n\n  c  "))
}

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "line one\nline two", "q: quit")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  line one\n  line two\n")
	assert.Contains(t, out, "q: quit")

	assert.Contains(t, renderPage("T", "  ", ""), "  -\n")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrong password", fmt.Errorf("%w: 401", service.ErrWrongPassword), "Неверный логин или пароль"},
		{"login taken", store.ErrLoginAlreadyExists, "Такой логин уже занят"},
		{"expired", service.ErrTokenIsExpired, "Сессия истекла, войдите заново"},
		{"not found", store.ErrPageNotFound, "Страница не найдена"},
		{"rate limited", service.ErrTooManyRequests, "Слишком много попыток, подождите немного"},
		{"network", errors.New("dial tcp 127.0.0.1:8080: connection refused"), "Отсутствует сеть или Сервер недоступен"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
