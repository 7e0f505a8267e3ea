// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
)

var (
	ErrNoServices = errors.New("tui: client services are required")
)

// humanizeError turns service errors into messages for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword), errors.Is(err, store.ErrNoUserWasFound):
		return "Неверный логин или пароль"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "Такой логин уже занят"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrNotAuthenticated):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, store.ErrPageNotFound):
		return "Страница не найдена"
	case errors.Is(err, service.ErrTooManyRequests):
		return "Слишком много попыток, подождите немного"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Сервер временно недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
