package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/BaoDuy1703/Ecommerce/internal/auth/errors"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"
	"github.com/BaoDuy1703/Ecommerce/internal/session"
)

type SessionReader interface {
	Get(ctx context.Context, id string) (session.Session, error)
}

// Auth validates the access token cookie, resolves the server-side
// session and injects the upstream bearer token into the request
// context for the commerce client.
type Auth struct {
	secret   []byte
	sessions SessionReader
}

func NewAuth(secret string, sessions SessionReader) *Auth {
	return &Auth{secret: []byte(secret), sessions: sessions}
}

func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("access_token")
		if err != nil {
			abortWith(c, autherrors.ErrUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		sid, ok := claims["sid"].(string)
		if !ok || sid == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		sess, err := a.sessions.Get(c.Request.Context(), sid)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id_validated", sess.UserID)
		c.Set("role", sess.Role)
		c.Set("session_id", sid)
		c.Request = c.Request.WithContext(
			commerce.WithToken(c.Request.Context(), sess.Token),
		)

		c.Next()
	}
}

func (a *Auth) RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		abortWith(c, autherrors.ErrForbidden)
	}
}

func abortWith(c *gin.Context, err error) {
	response.FromError(c, err)
	c.Abort()
}
