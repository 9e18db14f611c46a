package util

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestEvent describes one handled HTTP request.
type RequestEvent struct {
	RequestID string
	Method    string
	Path      string
	Route     string
	Query     string
	Status    int
	Latency   time.Duration
	IP        string
	UserAgent string
}

var requestLogDB *gorm.DB

// SetRequestLogDB enables persisting request events to the request_logs table.
// Passing nil turns persistence off.
func SetRequestLogDB(db *gorm.DB) {
	requestLogDB = db
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogRequestEvent writes the event to the process logger and, when a
// database was registered, stores it as a model.RequestLog.
func LogRequestEvent(event RequestEvent) {
	loc := GetIPLocation(event.IP)

	var evt *zerolog.Event
	switch {
	case event.Status >= 500:
		evt = Logger().Error()
	case event.Status >= 400:
		evt = Logger().Warn()
	default:
		evt = Logger().Info()
	}
	evt.Str("request_id", sanitizeLogValue(event.RequestID)).
		Str("method", sanitizeLogValue(event.Method)).
		Str("path", sanitizeLogValue(event.Path)).
		Int("status", event.Status).
		Dur("latency", event.Latency).
		Str("remote_ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Str("location", loc.String()).
		Msg(fmt.Sprintf("%s %s -> %d", event.Method, sanitizeLogValue(event.Path), event.Status))

	if requestLogDB == nil {
		return
	}

	var details datatypes.JSON
	if b, err := json.Marshal(map[string]interface{}{
		"route":      event.Route,
		"query":      sanitizeLogValue(event.Query),
		"latency_ms": event.Latency.Milliseconds(),
	}); err == nil {
		details = datatypes.JSON(b)
	}

	entry := model.RequestLog{
		RequestID: event.RequestID,
		Method:    event.Method,
		Path:      sanitizeLogValue(event.Path),
		Status:    event.Status,
		IP:        sanitizeLogValue(event.IP),
		Location:  loc.String(),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Details:   details,
	}
	if err := requestLogDB.Create(&entry).Error; err != nil {
		Logger().Warn().Err(err).Msg("failed to persist request log")
	}
}
