package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

type httpClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClient returns an [APIClient] for the server at address. A bare
// "host:port" is treated as http. timeout <= 0 selects a 15s default.
func NewHTTPClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	h := &httpClient{logger: logger}
	h.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			h.logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("api call")
			return nil
		})

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClient) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", models.LoginRequest{Username: username, Password: password})
}

// authenticate posts credentials and stores the issued token. The body is
// preferred; the Authorization header is the fallback.
func (h *httpClient) authenticate(ctx context.Context, path string, body any) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&tokenResp).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResp.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEmptyToken, err)
		}
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpClient) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var result models.UsersResponse
	if err := h.get(ctx, "/api/users", nil, &result); err != nil {
		return nil, err
	}
	return result.Users, nil
}

func (h *httpClient) GetUser(ctx context.Context, username string) (models.UserProfile, error) {
	var result models.UserResponse
	if err := h.get(ctx, "/api/users/{username}", map[string]string{"username": username}, &result); err != nil {
		return models.UserProfile{}, err
	}
	return result.User, nil
}

func (h *httpClient) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	var result models.ReceivedMessagesResponse
	if err := h.get(ctx, "/api/users/{username}/to", map[string]string{"username": username}, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}

func (h *httpClient) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	var result models.SentMessagesResponse
	if err := h.get(ctx, "/api/users/{username}/from", map[string]string{"username": username}, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}

func (h *httpClient) SendMessage(ctx context.Context, toUsername, body string) (models.Message, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.SendMessageRequest{ToUsername: toUsername, Body: body}).
		SetResult(&result).
		Post("/api/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return result.Message, nil
}

func (h *httpClient) GetMessage(ctx context.Context, id int64) (models.MessageDetail, error) {
	var result models.MessageDetailResponse
	if err := h.get(ctx, "/api/messages/{id}", messageIDParams(id), &result); err != nil {
		return models.MessageDetail{}, err
	}
	return result.Message, nil
}

func (h *httpClient) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	var result models.ReadReceiptResponse

	resp, err := h.authedRequest(ctx).
		SetPathParams(messageIDParams(id)).
		SetResult(&result).
		Post("/api/messages/{id}/read")
	if err != nil {
		return models.ReadReceipt{}, fmt.Errorf("mark read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReadReceipt{}, err
	}

	return result.Message, nil
}

func (h *httpClient) Version(ctx context.Context) (string, error) {
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

func (h *httpClient) get(ctx context.Context, path string, params map[string]string, result any) error {
	req := h.authedRequest(ctx).SetResult(result)
	if len(params) > 0 {
		req.SetPathParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func messageIDParams(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}
