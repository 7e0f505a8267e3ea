// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal landing page editor.
type TUI struct {
	services      *service.ClientServices
	registry      *sections.Registry
	autosaveDelay time.Duration
	build         models.AppBuildInfo
	logger        *logger.Logger
}

func New(services *service.ClientServices, registry *sections.Registry, cfg config.ClientEditor, build models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if registry == nil {
		registry = sections.Default()
	}

	return &TUI{
		services:      services,
		registry:      registry,
		autosaveDelay: cfg.AutosaveDelay,
		build:         build,
		logger:        logger,
	}, nil
}

// Run blocks until the user quits. An open editor is saved and closed
// before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.registry, t.autosaveDelay, t.build, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(appModel); ok && result.editor.session != nil {
		result.closeEditor()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
