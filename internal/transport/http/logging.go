package http

import (
	"encoding/json"
	"log"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/njprem/DestiMatch_Web/internal/util"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			payload := struct {
				Time      string `json:"time"`
				Visitor   string `json:"visitor,omitempty"`
				Subject   string `json:"subject"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string      `json:"method"`
					URI    string      `json:"uri"`
					Body   interface{} `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int         `json:"status"`
					Body   interface{} `json:"body,omitempty"`
					Error  string      `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				Visitor:   VisitorID(c),
				Subject:   tokenSubject(c),
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			if summary := c.Get(requestBodyLogKey); summary != nil {
				payload.Request.Body = summary
			}

			payload.Response.Status = v.Status
			if summary := c.Get(responseBodyLogKey); summary != nil {
				payload.Response.Body = summary
			}
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

// tokenSubject names the API user behind the request for log lines only.
// The token is decoded without verification.
func tokenSubject(c echo.Context) string {
	session := CurrentSession(c)
	if session == nil {
		return "anonymous"
	}
	token, ok := session.Token(c.Request().Context())
	if !ok {
		return "anonymous"
	}
	claims, err := util.InspectToken(token)
	if err != nil || claims.Subject == "" {
		return "unknown"
	}
	return claims.Subject
}

// isSecretKey matches fields whose values never reach the logs.
func isSecretKey(key string) bool {
	return strings.Contains(key, "password") || strings.Contains(key, "token")
}

// sanitizeBody returns a loggable summary of a request or response body.
func sanitizeBody(body []byte, contentType string) interface{} {
	if len(body) == 0 {
		return nil
	}
	mediaType := strings.ToLower(strings.TrimSpace(contentType))

	if strings.HasPrefix(mediaType, echo.MIMEApplicationJSON) || json.Valid(body) {
		var data interface{}
		if err := json.Unmarshal(body, &data); err == nil {
			return boundSummary(redact(data, false))
		}
	}

	if strings.HasPrefix(mediaType, echo.MIMEApplicationForm) {
		if values, err := url.ParseQuery(string(body)); err == nil && len(values) > 0 {
			form := make(map[string]interface{}, len(values))
			for key, vals := range values {
				items := make([]interface{}, len(vals))
				for i, v := range vals {
					items[i] = v
				}
				if len(items) == 1 {
					form[key] = items[0]
				} else {
					form[key] = items
				}
			}
			return boundSummary(redact(form, false))
		}
	}

	if isBinary(body) {
		return "binary"
	}
	text := strings.ToLower(string(body))
	if strings.Contains(text, "password") || strings.Contains(text, "token") {
		return "redacted"
	}
	return clamp(string(body), maxLoggedBody)
}

// redact walks a decoded JSON value and masks every value stored under a
// secret key.
func redact(value interface{}, secret bool) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = redact(item, secret || isSecretKey(strings.ToLower(key)))
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = redact(item, secret)
		}
		return out
	case string:
		if secret {
			return "redacted"
		}
		if isBinary([]byte(v)) {
			return "binary"
		}
		return clamp(v, maxLoggedBody)
	default:
		if secret && v != nil {
			return "redacted"
		}
		return v
	}
}

// boundSummary replaces values whose JSON form exceeds maxLoggedBody with a
// shallow preview.
func boundSummary(value interface{}) interface{} {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	return map[string]interface{}{
		"_truncated": true,
		"_preview":   preview(value, 0),
	}
}

const (
	previewDepth   = 3
	previewKeys    = 6
	previewItems   = 3
	previewTextLen = 256
)

func preview(value interface{}, depth int) interface{} {
	if depth >= previewDepth {
		return "...(omitted)..."
	}
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]interface{}, previewKeys+1)
		for i, k := range keys {
			if i == previewKeys {
				out["_omitted_fields"] = len(keys) - previewKeys
				break
			}
			out[k] = preview(v[k], depth+1)
		}
		return out
	case []interface{}:
		out := map[string]interface{}{"_total_items": len(v)}
		sample := make([]interface{}, 0, previewItems)
		for i := 0; i < len(v) && i < previewItems; i++ {
			sample = append(sample, preview(v[i], depth+1))
		}
		if len(sample) > 0 {
			out["_sample"] = sample
		}
		return out
	case string:
		return clamp(v, previewTextLen)
	default:
		return v
	}
}

func isBinary(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

// clamp cuts s to at most n bytes without splitting a rune.
func clamp(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "...(truncated)"
}
