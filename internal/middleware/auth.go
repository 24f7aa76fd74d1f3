package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/arena-klein/courtbooker/internal/domain"
)

const actorKey = "actor"

// Claims carries the authenticated identity. The admin flag is
// deliberately absent: it is resolved from storage per mutation, never
// trusted from the token.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth verifies the Bearer token and places the actor into the request
// context. Requests without a valid token are rejected.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		actor, err := parseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func parseToken(tokenStr, secret string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return domain.Actor{}, errors.New("invalid token")
	}

	return domain.Actor{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}

// ActorFromContext returns the actor set by Auth.
func ActorFromContext(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
