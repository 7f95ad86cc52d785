package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/utils"
	"github.com/MKhiriev/go-copper-beam/models"
)

// ProtocolVersion is the envelope version sent with every request.
const ProtocolVersion = 1

// Config locates the server.
type Config struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	keys   crypto.KeyService

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter]. cfg.HTTPAddress may omit the scheme, in which case http
// is assumed.
func NewHTTPServerAdapter(cfg Config, keys crypto.KeyService, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, keys: keys, logger: logger}, nil
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

func (h *httpServerAdapter) Ping(ctx context.Context) (models.PingResponse, error) {
	var pong models.PingResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&pong).
		Get("/ping")
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PingResponse{}, err
	}

	return pong, nil
}

func (h *httpServerAdapter) RegisterUser(ctx context.Context, details models.RegisterUserDetails, privateKeyPEM string) (models.RegisterUserResponse, error) {
	var registered models.RegisterUserResponse
	if err := h.post(ctx, "/d/register-user", details, privateKeyPEM, &registered); err != nil {
		return models.RegisterUserResponse{}, fmt.Errorf("register user: %w", err)
	}

	h.logger.Debug().Str("user_id", registered.ID).Str("session_id", registered.SessionID).Msg("user registered")
	return registered, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, details models.DeleteUserDetails, privateKeyPEM string) (models.DeleteUserResponse, error) {
	var deleted models.DeleteUserResponse
	if err := h.post(ctx, "/d/delete-user", details, privateKeyPEM, &deleted); err != nil {
		return models.DeleteUserResponse{}, fmt.Errorf("delete user: %w", err)
	}

	return deleted, nil
}

// post signs the JSON encoding of details and sends it in the request
// envelope. The signature covers exactly the bytes carried in Details.
func (h *httpServerAdapter) post(ctx context.Context, path string, details any, privateKeyPEM string, result any) error {
	req, err := h.signRequest(details, privateKeyPEM)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) signRequest(details any, privateKeyPEM string) (models.RestRequest, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return models.RestRequest{}, fmt.Errorf("marshal details: %w", err)
	}

	signature, err := h.keys.Sign(string(raw), privateKeyPEM)
	if err != nil {
		return models.RestRequest{}, fmt.Errorf("sign details: %w", err)
	}

	return models.RestRequest{
		Version:   ProtocolVersion,
		Details:   string(raw),
		Signature: signature,
	}, nil
}
