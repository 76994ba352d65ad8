package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/config"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
)

const principalKey = "principal"

// LoadPrincipal runs after JWTProtected and resolves the token into an
// authz.Principal. The user row is re-fetched on every request so a role
// change (promotion, NGO registration) takes effect without re-login.
func LoadPrincipal(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		p, err := principalFromToken(db, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: unknown account",
			})
		}

		c.Locals(principalKey, p)
		return c.Next()
	}
}

// OptionalPrincipal resolves the bearer token when one is presented and
// continues anonymously otherwise. Used on routes open to unauthenticated
// reporters.
func OptionalPrincipal(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		raw := strings.TrimPrefix(authHeader, "Bearer ")
		if raw == authHeader {
			return c.Next()
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		if p, err := principalFromToken(db, token); err == nil {
			c.Locals(principalKey, p)
		}
		return c.Next()
	}
}

// GetPrincipal returns the resolved principal, or nil for anonymous callers.
func GetPrincipal(c *fiber.Ctx) *authz.Principal {
	if p, ok := c.Locals(principalKey).(*authz.Principal); ok {
		return p
	}
	return nil
}

func principalFromToken(db *gorm.DB, token *jwt.Token) (*authz.Principal, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &authz.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		NGOID:  user.NGOID,
	}, nil
}
