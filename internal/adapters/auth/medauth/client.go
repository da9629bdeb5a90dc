package medauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"insulin-worksheet/internal/platform/httpclient"
	"insulin-worksheet/internal/ports/auth"
)

var (
	ErrMedAuthNotConfigured = errors.New("medauth client not configured")
	ErrMedAuthUnauthorized  = errors.New("medauth unauthorized")
	ErrMedAuthUpstream      = errors.New("medauth upstream error")
)

// Config del cliente del servicio de identidad clínica.
// BaseURL y APIKey normalmente vendrán de env vars (MEDAUTH_BASE_URL, MEDAUTH_API_KEY).
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	configured   bool
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		configured:   strings.TrimSpace(cfg.BaseURL) != "" && strings.TrimSpace(cfg.APIKey) != "",
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.configured
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	ClinicID string `json:"clinic_id"`
}

// VerifyToken llama al servicio de identidad para verificar un token y traer claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrMedAuthNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrMedAuthUnauthorized
	}

	headers := map[string]string{
		c.apiKeyHeader: c.apiKey,
		// Algunos IAM esperan el token en Authorization, aunque también vaya en body.
		"Authorization": "Bearer " + token,
	}

	var resp verifyResponse
	err := c.http.DoJSON(ctx, "POST", "/v1/tokens/verify", headers, verifyRequest{Token: token}, &resp)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && (httpErr.StatusCode == 401 || httpErr.StatusCode == 403) {
			return auth.Claims{}, ErrMedAuthUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrMedAuthUpstream, err)
	}

	return auth.Claims{
		UserID:   strings.TrimSpace(resp.UserID),
		Email:    strings.TrimSpace(resp.Email),
		ClinicID: strings.TrimSpace(resp.ClinicID),
	}, nil
}
