package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tinytally/internal/ports/auth"
)

type fakeVerifier map[string]string

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	switch token {
	case "down":
		return auth.Claims{}, fmt.Errorf("idp: %w", auth.ErrUnavailable)
	case "anon":
		return auth.Claims{}, nil
	}
	uid, ok := f[token]
	if !ok {
		return auth.Claims{}, fmt.Errorf("unknown: %w", auth.ErrInvalidToken)
	}
	return auth.Claims{UserID: uid}, nil
}

type result struct {
	status  int
	reached bool
	userID  string
	hasUser bool
}

func run(t *testing.T, verifier auth.AuthVerifier, header, value string) result {
	t.Helper()
	var res result
	h := AuthContext(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res.reached = true
		c, ok := GetClaims(r.Context())
		res.userID, res.hasUser = c.UserID, ok
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	res.status = rec.Code
	return res
}

func TestAuthContext_DevMode(t *testing.T) {
	res := run(t, nil, DebugUserHeader, "parent-1")
	if !res.hasUser || res.userID != "parent-1" {
		t.Fatalf("expected debug user, got %+v", res)
	}

	res = run(t, nil, "", "")
	if !res.reached || res.hasUser {
		t.Fatalf("expected anonymous request to pass through, got %+v", res)
	}
}

func TestAuthContext_Verifier(t *testing.T) {
	v := fakeVerifier{"tok": "parent-2"}

	res := run(t, v, "Authorization", "Bearer tok")
	if !res.hasUser || res.userID != "parent-2" {
		t.Fatalf("expected verified user, got %+v", res)
	}

	res = run(t, v, DebugUserHeader, "parent-1")
	if !res.reached || res.hasUser {
		t.Fatalf("debug header must be ignored when a verifier is configured, got %+v", res)
	}

	res = run(t, v, "", "")
	if !res.reached || res.hasUser {
		t.Fatalf("expected anonymous request to pass through, got %+v", res)
	}
}

func TestAuthContext_RejectedTokenStopsRequest(t *testing.T) {
	v := fakeVerifier{"tok": "parent-2"}

	cases := map[string]struct {
		token string
		want  int
	}{
		"unknown token":   {token: "nope", want: http.StatusUnauthorized},
		"claims w/o user": {token: "anon", want: http.StatusUnauthorized},
		"idp unavailable": {token: "down", want: http.StatusServiceUnavailable},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := run(t, v, "Authorization", "Bearer "+tc.token)
			if res.reached {
				t.Fatal("handler must not run for a rejected token")
			}
			if res.status != tc.want {
				t.Fatalf("status = %d, want %d", res.status, tc.want)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
