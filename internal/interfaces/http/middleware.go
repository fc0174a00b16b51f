package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/infrastructure/metrics"
	"github.com/jhoicas/direcional-api/pkg/logger"
)

// HTTPObserver recibe la duración de cada petición. Lo cumple *metrics.Metrics.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
	InflightInc()
	InflightDec()
}

var _ HTTPObserver = (*metrics.Metrics)(nil)

// routePath devuelve el patrón de la ruta (/api/units/:id) para no disparar la cardinalidad.
func routePath(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return r.Path
	}
	return "unmatched"
}

// responseStatus status final: si el handler devolvió error, el ErrorHandler aún no lo escribió.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return err
	}
}

// MetricsMiddleware alimenta los collectors HTTP.
func MetricsMiddleware(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		obs.InflightInc()
		defer obs.InflightDec()
		start := time.Now()
		err := c.Next()
		obs.ObserveHTTP(c.Method(), routePath(c), responseStatus(c, err), time.Since(start))
		return err
	}
}
