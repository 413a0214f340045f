package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken: el token fue rechazado (desconocido, vencido, revocado).
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnavailable: no se pudo verificar (servicio de identidad caído).
	ErrUnavailable = errors.New("token verification unavailable")
)

// AuthVerifier verifica un token y devuelve claims o un error que envuelve
// ErrInvalidToken o ErrUnavailable.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Chain prueba los verifiers en orden y se queda con el primero que acepta.
// Ignora los nil; sin ninguno devuelve nil (modo dev).
func Chain(verifiers ...AuthVerifier) AuthVerifier {
	var c chain
	for _, v := range verifiers {
		if v != nil {
			c = append(c, v)
		}
	}
	switch len(c) {
	case 0:
		return nil
	case 1:
		return c[0]
	}
	return c
}

type chain []AuthVerifier

func (c chain) Verify(ctx context.Context, token string) (Claims, error) {
	errs := make([]error, 0, len(c))
	for _, v := range c {
		claims, err := v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
		errs = append(errs, err)
	}
	return Claims{}, errors.Join(errs...)
}
