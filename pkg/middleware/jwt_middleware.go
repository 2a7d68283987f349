package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wxbrief/internal/models/db_models"
	"wxbrief/internal/repositories"
	"wxbrief/pkg/utils"
)

const currentUserKey = "current_user"

// AuthRequired resolves the bearer token to a user record and stores it in
// the request context. Missing token, bad token, and a subject that no longer
// maps to a user all fail the same way externally; the internal reason stays
// on the AuthError.
func AuthRequired(tokens *utils.TokenIssuer, users repositories.UserRepository) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c, utils.Unauthenticated(utils.AuthReasonMissingToken, nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := tokens.Verify(tokenString)
		if err != nil {
			abortUnauthenticated(c, err)
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), subject)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil {
			// user deleted after token issuance; same 401 as a bad token
			abortUnauthenticated(c, utils.Unauthenticated(utils.AuthReasonUnknownUser, nil))
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, err error) {
	c.Error(err)
	utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
	c.Abort()
}

// CurrentUser returns the user resolved by AuthRequired. It is nil on routes
// that skipped the middleware.
func CurrentUser(c *gin.Context) *db_models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*db_models.User)
	if !ok {
		return nil
	}
	return user
}
