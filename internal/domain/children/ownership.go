package children

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tinytally/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Authorize devuelve el Child si userID es su dueño.
// ErrNotFound si no existe, ErrForbidden si pertenece a otro usuario.
func (s *Service) Authorize(ctx context.Context, childID, userID string) (Child, error) {
	c, err := s.GetByID(ctx, childID)
	if err != nil {
		return Child{}, err
	}
	if c.OwnerUserID != userID {
		return Child{}, ErrForbidden
	}
	return c, nil
}

// RequireOwner resuelve claims + {childID} de la ruta y escribe 401/403/404.
// Lo usan los handlers de tracking, medicine e insights para no repetir el bloque de permisos.
func RequireOwner(w http.ResponseWriter, r *http.Request, svc *Service) (Child, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Child{}, false
	}

	c, err := svc.Authorize(r.Context(), chi.URLParam(r, "childID"), claims.UserID)
	switch {
	case err == nil:
		return c, true
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "child not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return Child{}, false
}
