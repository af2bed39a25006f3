package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/model"
	"github.com/gin-gonic/gin"
)

const (
	TOKEN_KEY = "authToken"
	USER_KEY  = "user"
)

type AuthConfig struct {
	// SessionNotRequired lets the request through as anonymous when no
	// Authorization header is present. A header that is present but invalid
	// is still rejected.
	SessionNotRequired bool
	// ProfileNotRequired skips the local profile lookup gate. Used by the
	// profile-creation route itself.
	ProfileNotRequired bool
}

// TokenVerifier is the slice of *auth.Client the middleware needs. Tests
// substitute a fake.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

func Auth(userDB db.UserDatabase, verifier TokenVerifier, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader, ok := c.Request.Header["Authorization"]
		if !ok || len(authorizationHeader) == 0 {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "no authorization header",
			})
			c.Abort()
			return
		}
		if strings.Index(authorizationHeader[0], "Bearer ") != 0 || len(authorizationHeader[0]) < 8 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "incorrectly formatted authorization header",
			})
			c.Abort()
			return
		}
		token, err := verifier.VerifyIDToken(c, authorizationHeader[0][7:])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
			})
			c.Abort()
			return
		}
		c.Set(TOKEN_KEY, token)

		user, err := userDB.GetUser(c, token.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "database error",
			})
			c.Abort()
			return
		}
		if user == nil {
			if config.ProfileNotRequired {
				return
			}
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "must have a user profile",
			})
			c.Abort()
			return
		}
		c.Set(USER_KEY, user)
	}
}

func MustGetToken(c *gin.Context) *auth.Token {
	token, _ := c.Get(TOKEN_KEY)
	return token.(*auth.Token)
}

// GetUserMaybe returns the caller's profile, or nil for an anonymous request.
func GetUserMaybe(c *gin.Context) *model.User {
	user, ok := c.Get(USER_KEY)
	if !ok {
		return nil
	}
	return user.(*model.User)
}

func MustGetUser(c *gin.Context) *model.User {
	user, _ := c.Get(USER_KEY)
	return user.(*model.User)
}
