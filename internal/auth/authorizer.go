// Package auth guards the question mutation endpoints with editor tokens.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
)

// EditorAuthorizer accepts requests bearing a valid token with the editor role.
type EditorAuthorizer struct {
	tokens *jwt.Manager
}

func NewEditorAuthorizer(tokens *jwt.Manager) *EditorAuthorizer {
	return &EditorAuthorizer{tokens: tokens}
}

// Authorize returns an error matching apperr.ErrUnauthorized for a missing or
// invalid token and apperr.ErrForbidden for a valid token without the editor role.
func (a *EditorAuthorizer) Authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return fmt.Errorf("missing authorization header: %w", apperr.ErrUnauthorized)
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return fmt.Errorf("malformed authorization header: %w", apperr.ErrUnauthorized)
	}

	claims, err := a.tokens.Validate(strings.TrimSpace(token))
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrUnauthorized, err)
	}
	if claims.Role != jwt.RoleEditor {
		return fmt.Errorf("subject %q has role %q: %w", claims.Subject, claims.Role, apperr.ErrForbidden)
	}
	return nil
}
