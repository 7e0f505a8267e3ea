package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/service"
)

// DefaultDraftFlushInterval is how often queued drafts are written to disk.
const DefaultDraftFlushInterval = time.Second

var ErrNilDependency = errors.New("client: services and ui are required")

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the terminal editor together with the background draft writer.
type App struct {
	services      *service.ClientServices
	ui            UI
	flushInterval time.Duration
	logger        *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, flushInterval time.Duration, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}
	if flushInterval <= 0 {
		flushInterval = DefaultDraftFlushInterval
	}

	return &App{
		services:      services,
		ui:            ui,
		flushInterval: flushInterval,
		logger:        logger,
	}, nil
}

// Run blocks until the UI exits. Drafts still queued at that point are
// flushed before Run returns.
func (a *App) Run(ctx context.Context) error {
	if a.services.DraftJob != nil {
		a.services.DraftJob.Start(ctx, a.flushInterval)
		defer a.services.DraftJob.Stop()
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
