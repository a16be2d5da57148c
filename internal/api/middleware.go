package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// requestLogger writes one structured logrus entry per request.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = "0"
			}

			log.WithFields(log.Fields{
				"remote_ip":     c.RealIP(),
				"method":        req.Method,
				"path":          path,
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),
				"bytes_in":      bytesIn,
				"bytes_out":     strconv.FormatInt(res.Size, 10),
				"request_id":    res.Header().Get(echo.HeaderXRequestID),
			}).Info("http request")

			return nil
		}
	}
}

func logPanic(c echo.Context, err error, stack []byte) error {
	log.WithFields(log.Fields{
		"path":       c.Request().URL.Path,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"stack":      string(stack),
	}).WithError(err).Error("panic recovered")
	return err
}
