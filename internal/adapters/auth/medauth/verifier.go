package medauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insulin-worksheet/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implementa auth.AuthVerifier contra el servicio de identidad.
// Se instancia desde main cuando MEDAUTH_BASE_URL está configurado;
// sin configuración el middleware queda en modo dev.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrMedAuthNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("medauth verify failed: %w", err)
	}

	if claims.UserID == "" {
		return auth.Claims{}, errors.New("medauth claims missing user id")
	}

	return claims, nil
}
