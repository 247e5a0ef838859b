package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// localsUserID is the fiber locals key carrying the verified owner id.
const localsUserID = "userId"

// AuthRequired returns a middleware enforcing the identity boundary.
// The external identity provider issues HS256 bearer tokens whose subject
// claim is the owner id; the token is verified here and the subject is
// trusted verbatim downstream. Requests without a resolvable identity never
// reach the todo operations.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
		}
		if !token.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
		}

		c.Locals(localsUserID, claims.Subject)
		return c.Next()
	}
}

// ownerID extracts the verified owner id stored by AuthRequired.
func ownerID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(localsUserID).(string)
	return id, ok && id != ""
}
