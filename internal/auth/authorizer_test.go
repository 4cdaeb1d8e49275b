package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
)

func TestEditorAuthorizer(t *testing.T) {
	tokens := jwt.NewManager(jwt.TokenConfig{Secret: []byte("s3cret")})
	authz := NewEditorAuthorizer(tokens)

	editor, err := tokens.Generate("alice", jwt.RoleEditor)
	require.NoError(t, err)
	viewer, err := tokens.Generate("bob", jwt.RoleViewer)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"editor", "Bearer " + editor, nil},
		{"lowercase scheme", "bearer " + editor, nil},
		{"viewer", "Bearer " + viewer, apperr.ErrForbidden},
		{"missing", "", apperr.ErrUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", apperr.ErrUnauthorized},
		{"no token", "Bearer", apperr.ErrUnauthorized},
		{"garbage", "Bearer abc.def.ghi", apperr.ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/questions/1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			err := authz.Authorize(req)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
