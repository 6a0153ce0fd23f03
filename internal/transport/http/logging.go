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
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
	maxPreviewEntries  = 6
)

// redactedKeys are matched as substrings of lower-cased field names.
var redactedKeys = []string{"password", "token", "secret", "authorization"}

type requestLogLine struct {
	Time      string `json:"time"`
	RequestID string `json:"request_id,omitempty"`
	SessionID string `json:"session_id"`
	RemoteIP  string `json:"remote_ip"`
	LatencyMS int64  `json:"latency_ms"`
	Request   struct {
		Method string `json:"method"`
		URI    string `json:"uri"`
		Body   any    `json:"body,omitempty"`
	} `json:"request"`
	Response struct {
		Status int    `json:"status"`
		Body   any    `json:"body,omitempty"`
		Error  string `json:"error,omitempty"`
	} `json:"response"`
}

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			line := requestLogLine{
				Time:      v.StartTime.UTC().Format(time.RFC3339),
				RequestID: v.RequestID,
				SessionID: "none",
				RemoteIP:  v.RemoteIP,
				LatencyMS: v.Latency.Milliseconds(),
			}
			if session, ok := CurrentSession(c); ok {
				line.SessionID = session.ID.String()
			}
			line.Request.Method = v.Method
			line.Request.URI = redactURI(v.URI)
			line.Request.Body = c.Get(requestBodyLogKey)
			line.Response.Status = v.Status
			line.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				line.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(line)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/swagger")
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if summary := summarizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
				c.Set(requestBodyLogKey, summary)
			}
			if summary := summarizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
				c.Set(responseBodyLogKey, summary)
			}
		},
	}))
}

func summarizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(contentType))

	if strings.HasPrefix(lowered, "application/json") || json.Valid(body) {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return limitSize(redactJSON(data, ""))
		}
	}
	if strings.HasPrefix(lowered, "application/pdf") || strings.HasPrefix(lowered, "image/") || isBinary(body) {
		return "binary"
	}
	if strings.HasPrefix(lowered, "text/html") {
		return "html"
	}
	return clampString(string(body))
}

func redactJSON(value any, key string) any {
	if isSensitive(key) {
		return "redacted"
	}
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = redactJSON(val, strings.ToLower(k))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactJSON(item, key)
		}
		return out
	case string:
		if strings.HasPrefix(v, "data:") {
			return "binary"
		}
		return clampString(v)
	default:
		return v
	}
}

func redactURI(uri string) string {
	u, err := url.ParseRequestURI(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}
	q := u.Query()
	changed := false
	for k := range q {
		if isSensitive(strings.ToLower(k)) {
			q.Set(k, "redacted")
			changed = true
		}
	}
	if !changed {
		return uri
	}
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

func isSensitive(key string) bool {
	if key == "" {
		return false
	}
	for _, k := range redactedKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}

// limitSize replaces oversized payloads with a shallow preview.
func limitSize(value any) any {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		preview := make(map[string]any, maxPreviewEntries)
		for i, k := range keys {
			if i == maxPreviewEntries {
				break
			}
			preview[k] = shallow(v[k])
		}
		return map[string]any{"_truncated": true, "_fields": len(keys), "_preview": preview}
	case []any:
		return map[string]any{"_truncated": true, "_total_items": len(v)}
	default:
		return map[string]any{"_truncated": true}
	}
}

func shallow(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return map[string]any{"_fields": len(v)}
	case []any:
		return map[string]any{"_total_items": len(v)}
	case string:
		if len(v) > 128 {
			return clampTo(v, 128)
		}
		return v
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

func clampString(value string) string {
	return clampTo(value, maxLoggedBody)
}

func clampTo(value string, max int) string {
	if len(value) <= max {
		return value
	}
	truncated := value[:max]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
