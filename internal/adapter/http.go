package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	hasher  *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout. Document bodies
// are signed with appCfg.HashKey when it is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		hasher:  utils.NewHasher(appCfg.HashKey),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	u, err := url.Parse(utils.BaseURL(raw))
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/user/register and keeps the bearer
// token from the Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login POSTs the credentials to /api/user/login and keeps the bearer token
// from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	userID, err := parseUserIDFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(signed)
	return models.Token{SignedString: signed, UserID: userID}, nil
}

func (h *httpServerAdapter) CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	req, err := h.signedRequest(ctx, page)
	if err != nil {
		return models.LandingPage{}, err
	}

	var created models.LandingPage
	resp, err := req.SetResult(&created).Post("/api/documents")
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("create page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LandingPage{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetPage(ctx context.Context, id string) (models.LandingPage, error) {
	var page models.LandingPage
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&page).
		Get("/api/documents/{id}")
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("get page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LandingPage{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	var list models.PageListResponse
	resp, err := h.authedRequest(ctx).
		SetQueryParam("owner", strconv.FormatInt(ownerID, 10)).
		SetResult(&list).
		Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list pages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Pages == nil {
		list.Pages = []models.LandingPage{}
	}
	return list.Pages, nil
}

func (h *httpServerAdapter) UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	req, err := h.signedRequest(ctx, page)
	if err != nil {
		return models.LandingPage{}, err
	}

	var updated models.LandingPage
	resp, err := req.
		SetPathParam("id", page.ID).
		SetResult(&updated).
		Put("/api/documents/{id}")
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("update page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LandingPage{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeletePage(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/documents/{id}")
	if err != nil {
		return fmt.Errorf("delete page request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Canvas(ctx context.Context, id string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/documents/{id}/canvas")
	if err != nil {
		return nil, fmt.Errorf("canvas request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error) {
	var presigned models.PresignResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&presigned).
		Post("/api/assets/presign")
	if err != nil {
		return models.PresignResponse{}, fmt.Errorf("presign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PresignResponse{}, err
	}

	return presigned, nil
}

func (h *httpServerAdapter) UploadAsset(ctx context.Context, uploadURL, contentType string, data []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(uploadURL)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) PreviewURL(id string) string {
	return h.baseURL + "/preview/" + url.PathEscape(id)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest encodes page as the JSON body and attaches its HMAC when a
// hash key is configured.
func (h *httpServerAdapter) signedRequest(ctx context.Context, page models.LandingPage) (*resty.Request, error) {
	body, err := json.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("encode page %q: %w", page.ID, err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(body))
	}
	return req, nil
}

// parseUserIDFromJWT reads the "sub" claim without verifying the signature;
// the client never holds the signing key.
func parseUserIDFromJWT(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, err
	}

	return (&models.Token{RegisteredClaims: *claims}).GetUserID()
}
