package middleware

import (
	"encoding/base64"
	"strings"

	"erp/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ParseBasicAuth decodes a Basic scheme Authorization header value into a
// username/password pair. Any malformation (wrong scheme, bad base64,
// missing colon) reports ok=false; decoding never errors a request out.
func ParseBasicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	credentials := string(decoded)
	idx := strings.Index(credentials, ":")
	if idx < 0 {
		return "", "", false
	}
	return credentials[:idx], credentials[idx+1:], true
}

// BasicAuthRequired is a Fiber middleware enforcing HTTP Basic
// authentication against the injected verifier. Failures answer 401 with a
// Basic challenge and mutate nothing.
func BasicAuthRequired(verifier services.CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, password, ok := ParseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok || !verifier.Verify(username, password) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Login Required"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		c.Locals("username", username)
		return c.Next()
	}
}
