package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, gotEmail, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "alice@example.com", gotEmail)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, gotEmail, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, gotID)
	assert.Empty(t, gotEmail)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	_, _, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, uuid.New(), "alice@example.com")
	assert.NoError(t, err)

	_, _, err = New("secret-b", time.Minute).GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid bearer header",
			header: "Bearer sometoken",
			want:   "sometoken",
		},
		{
			name:   "case-insensitive scheme",
			header: "bearer sometoken",
			want:   "sometoken",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic sometoken",
			wantErr: true,
		},
		{
			name:    "malformed header",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
