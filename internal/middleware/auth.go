package middleware

import (
	"errors"
	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/util"
	"learning_portal_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserResolver loads the account a verified token refers to.
type UserResolver interface {
	ResolveUser(id string) (*model.User, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Query("token")
}

// AuthMiddleware verifies the bearer token and puts the resolved user in the context.
func AuthMiddleware(cfg *config.Config, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.HandleError(c, util.Unauthenticated("Not authorized, no token"))
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			if util.IsTokenExpired(err) {
				util.HandleError(c, util.Unauthenticated("Session expired. Please log in again."))
			} else {
				logger.Log.Debug("JWT rejected", zap.Error(err))
				util.HandleError(c, util.Unauthenticated("Invalid token"))
			}
			c.Abort()
			return
		}

		user, err := users.ResolveUser(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.HandleError(c, util.Unauthenticated("User no longer exists"))
			} else {
				util.HandleError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(util.ContextClaimsKey, claims)
		c.Set(util.ContextUserKey, user)
		c.Next()
	}
}

func roleLabel(roles []model.UserRole) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		s := string(r)
		if s == "" {
			continue
		}
		names = append(names, strings.ToUpper(s[:1])+s[1:]+"s")
	}
	return strings.Join(names, " and ")
}

// RoleMiddleware admits only users whose single role is one of roles.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	message := "Access denied: " + roleLabel(roles) + " only"
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.HandleError(c, util.Unauthenticated("Not authorized, no token"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.HandleError(c, util.Forbidden(message))
		c.Abort()
	}
}
