package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-landing-builder/internal/adapter"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (int64, error) {
	if err := checkCredentials(user); err != nil {
		return 0, err
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Str("login", user.Login).Msg("register failed")
		return 0, mapAdapterError(err)
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("registered")
	return token.UserID, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (int64, error) {
	if err := checkCredentials(user); err != nil {
		return 0, err
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return 0, mapAdapterError(err)
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("logged in")
	return token.UserID, nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}

func checkCredentials(user models.User) error {
	if strings.TrimSpace(user.Login) == "" || user.Password == "" {
		return fmt.Errorf("%w: login and password are required", ErrInvalidDataProvided)
	}
	return nil
}
