package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SupabaseAuth valida o access token emitido pelo GoTrue do backend hospedado.
// Autenticação e sessão vivem inteiramente no backend externo; aqui apenas
// verificamos a assinatura HS256 com o segredo compartilhado e a expiração.
// Com o segredo vazio (ambiente local) a verificação é desligada.
func SupabaseAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if jwtSecret == "" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token de acesso ausente",
			})
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token inválido ou expirado",
			})
		}

		if sub, err := claims.GetSubject(); err == nil {
			c.Locals("user_id", sub)
		}
		return c.Next()
	}
}
