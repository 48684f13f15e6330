package providers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v5"
)

type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Time    int64  `json:"time"`
}

// JsonApiResponse writes the standard response envelope. An empty message is
// filled with the status text, and any details are stashed on the context so
// the request logger picks them up.
func JsonApiResponse(c echo.Context, code int, message string, data any, details ...map[string]string) error {
	if len(details) > 0 {
		c.Set("log_details", details[0])
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
		Time:    time.Now().Unix(),
	})
}

// ResponseDetails builds a details map from key/value pairs, for logging
// alongside an error response.
func ResponseDetails(pairs ...string) map[string]string {
	details := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		details[pairs[i]] = pairs[i+1]
	}
	return details
}

func parseFloatParam(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

func parseIntParam(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}
