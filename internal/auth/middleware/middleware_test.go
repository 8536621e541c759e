package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvachan/onoe-sim/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	a := NewAuthService("k1")
	tok, err := a.IssueJWT("admin", "admin")
	require.NoError(t, err)

	c, err := a.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", c.Sub)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "nirvachan", c.Issuer)

	_, err = NewAuthService("k2").Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{Sub: "x", Role: "admin"}).SignedString([]byte("k1"))
	require.NoError(t, err)
	_, err = NewAuthService("k1").Parse(tok)
	assert.Error(t, err)
}

func TestJWTMiddlewarePutsIdentityOnContext(t *testing.T) {
	a := NewAuthService("k1")
	tok, err := a.IssueJWT("ops", "operator")
	require.NoError(t, err)

	var sub, role string
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub = SubjectFromContext(r.Context())
		role = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops", sub)
	assert.Equal(t, "operator", role)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
