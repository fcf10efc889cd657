package httpserver

import (
	"movify/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidSecretKey = errs.Errorf(errs.EUNAUTHORIZED, "invalid secret key")

// RequireSecretKey guards a route behind the configured secret. The key
// travels in the secretKey query parameter and must match exactly; a
// rejection returns immediately so the wrapped handler never runs.
func (s *Server) RequireSecretKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.validSecretKey(c.QueryParam("secretKey")) {
			return errInvalidSecretKey
		}
		return next(c)
	}
}

func (s *Server) validSecretKey(key string) bool {
	return key != "" && key == s.SecretKey
}
