package static

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"tinytally/internal/ports/auth"
)

var (
	ErrTokenEmpty   = fmt.Errorf("token is empty: %w", auth.ErrInvalidToken)
	ErrTokenUnknown = fmt.Errorf("token not recognized: %w", auth.ErrInvalidToken)
)

// Verifier implementa auth.AuthVerifier con una tabla fija token => user id.
// Pensado para despliegues de un solo hogar (AUTH_STATIC_TOKENS).
type Verifier struct {
	tokens map[string]string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(tokens map[string]string) *Verifier {
	cp := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cp[k] = v
	}
	return &Verifier{tokens: cp}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	// recorre todo el mapa para no filtrar por timing qué prefijo coincide
	var userID string
	for known, uid := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 {
			userID = uid
		}
	}
	if userID == "" {
		return auth.Claims{}, ErrTokenUnknown
	}
	return auth.Claims{UserID: userID}, nil
}
