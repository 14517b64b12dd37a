package httpapi

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// sonicSerializer implements echo.JSONSerializer with bytedance/sonic.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigStd.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	return sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(i)
}

// requestLogger logs one structured entry per request.
func requestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			fields := log.Fields{
				"method":   c.Request().Method,
				"route":    c.Path(),
				"status":   c.Response().Status,
				"total_ms": time.Since(start).Milliseconds(),
			}
			entry := logger.WithFields(fields)
			if err != nil {
				entry.WithError(err).Warn("http.request")
				return nil
			}
			entry.Info("http.request")
			return nil
		}
	}
}
