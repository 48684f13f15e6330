package main

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/sirupsen/logrus"
)

// setupLogging sends logrus JSON output to logs/api.log next to the binary,
// as well as stdout.
func setupLogging() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logDir := filepath.Join(getWorkDir(), "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		logrus.Warnf("Failed to create log directory, logging to stdout only: %v", err)
		return
	}

	file, err := os.OpenFile(filepath.Join(logDir, "api.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Warnf("Failed to open log file, logging to stdout only: %v", err)
		return
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
}

// getWorkDir determines the working directory of the executable
func getWorkDir() string {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	dir := filepath.Dir(ex)

	if strings.Contains(dir, "go-build") {
		return "."
	}
	return dir
}

// RequestLoggerMiddleware logs each request with structured log fields
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			traceID, ok := c.Get("trace_id").(string)
			if !ok {
				traceID = ""
			}

			err := next(c)

			stop := time.Now()
			latency := stop.Sub(start)

			entry := logrus.WithFields(logrus.Fields{
				"time":      stop.Format(time.RFC3339),
				"method":    c.Request().Method,
				"path":      c.Request().URL.Path,
				"status":    c.Response().Status,
				"latency":   latency.String(),
				"trace_id":  traceID,
				"remote_ip": c.RealIP(),
			})

			if details := c.Get("log_details"); details != nil {
				entry = entry.WithField("details", details)
			}

			if err != nil {
				entry = entry.WithField("error", err)
				entry.Error("Request failed")
			} else {
				if c.Response().Status != http.StatusOK {
					entry = entry.WithField("error", "non-200 status code")
					entry.Warn("Request completed with non-200 status")
				} else {
					entry.Info("Request completed successfully")
				}
			}

			return err
		}
	}
}

// TraceIDMiddleware adds a trace ID to requests for tracking
func TraceIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set("trace_id", traceID)
			c.Response().Header().Set("X-Trace-ID", traceID)

			return next(c)
		}
	}
}
