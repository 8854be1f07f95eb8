package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

const contextIdentity = "identity"

type TokenValidator interface {
	Validate(raw string) (*auth.TokenClaims, error)
}

// OpenRoute is reachable without a token. A path ending in "/*" matches the
// whole subtree; an empty Method matches any method.
type OpenRoute struct {
	Method string
	Path   string
}

type AccessPolicy struct {
	open []OpenRoute
}

func NewAccessPolicy(open ...OpenRoute) *AccessPolicy {
	return &AccessPolicy{open: open}
}

func (p *AccessPolicy) IsOpen(method, path string) bool {
	if method == http.MethodOptions {
		return true
	}
	for _, r := range p.open {
		if r.Method != "" && r.Method != method {
			continue
		}
		if prefix, ok := strings.CutSuffix(r.Path, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == r.Path {
			return true
		}
	}
	return false
}

// AccessControl lets open routes through and requires a valid bearer token on
// everything else. It proves identity only; role checks belong to handlers.
func AccessControl(policy *AccessPolicy, tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.IsOpen(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		raw, ok := auth.ExtractBearer(c.GetHeader("Authorization"))
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "token_missing", "Authentication required.")
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			code, message := tokenFailure(err)
			httperr.Abort(c, http.StatusUnauthorized, code, message)
			return
		}

		c.Set(contextIdentity, auth.Identity{Email: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

func tokenFailure(err error) (string, string) {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "token_expired", "Session expired, please log in again."
	case errors.Is(err, auth.ErrTokenMalformed):
		return "token_malformed", "Invalid token."
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "token_signature_invalid", "Invalid token."
	default:
		return "token_invalid", "Invalid token."
	}
}

// IdentityFrom returns the caller resolved by AccessControl.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(contextIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
