package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL from adapterCfg.HTTPAddress is normalised;
// a bare host:port gets the http scheme. adapterCfg.Token, when set, is used
// for authenticated calls until Register or Login replaces it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held, or an empty string.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	h.SetToken(registered.Token)
	return registered, nil
}

// Login prefers the token from the JSON body and falls back to the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&login).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := login.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return user, err
	}

	resp, err := req.SetResult(&user).Get("/api/users/me")
	if err != nil {
		return user, fmt.Errorf("me request: %w", err)
	}

	return user, mapHTTPError(resp)
}

// ListItems sends only the non-empty filter fields as query parameters.
func (h *httpServerAdapter) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	var items []models.Item

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"category": string(filter.Category),
		"priority": string(filter.Priority),
		"search":   filter.Search,
		"sort":     string(filter.Sort),
	}
	for k, v := range params {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}

	resp, err := req.SetResult(&items).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	h.logger.Debug().Int("count", len(items)).Msg("items listed")

	return items, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	var item models.Item

	req, err := h.authedRequest(ctx)
	if err != nil {
		return item, err
	}

	resp, err := req.SetBody(request).SetResult(&item).Post("/api/items")
	if err != nil {
		return item, fmt.Errorf("create item request: %w", err)
	}

	return item, mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error) {
	var item models.Item

	req, err := h.authedRequest(ctx)
	if err != nil {
		return item, err
	}

	resp, err := req.
		SetPathParam("id", itemID).
		SetBody(update).
		SetResult(&item).
		Patch("/api/items/{id}")
	if err != nil {
		return item, fmt.Errorf("update item request: %w", err)
	}

	return item, mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", itemID).Delete("/api/items/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health returns the decoded body for 503 as well, together with the error.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/api/health")
	if err != nil {
		return health, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
