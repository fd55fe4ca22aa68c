package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eventhub_backend/internals/configs"
	helper "eventhub_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the email claim in the
// request locals. Role guards run after this and read the stored email.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] ACCESS_TOKEN_SECRET is empty")
			return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		email, err := extractEmail(claims)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing email claim")
		}
		c.Locals("userEmail", email)

		return c.Next()
	}
}
