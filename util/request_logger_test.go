package util

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestLogger captures the process logger into a buffer until cleanup runs.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	orig := GetLoggerForTest()
	SetLoggerForTest(zerolog.New(buf))
	t.Cleanup(func() { SetLoggerForTest(orig) })
	return buf
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes newlines", "hello\nworld", "hello world"},
		{"removes carriage returns", "hello\rworld", "hello world"},
		{"removes tabs", "hello\tworld", "hello world"},
		{"truncates long values", strings.Repeat("a", 250), strings.Repeat("a", 200) + "..."},
		{"handles normal strings", "normal string", "normal string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeLogValue(tt.input))
		})
	}
}

func TestLogRequestEvent_WritesStructuredLine(t *testing.T) {
	buf := setupTestLogger(t)
	SetRequestLogDB(nil)

	LogRequestEvent(RequestEvent{
		RequestID: "abc",
		Method:    "GET",
		Path:      "/hospital/api/salas\nforged",
		Status:    404,
		Latency:   3 * time.Millisecond,
		IP:        "192.168.1.100",
		UserAgent: "TestAgent/1.0",
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"request_id":"abc"`)
	assert.Contains(t, out, "GET /hospital/api/salas forged -> 404")
	assert.Contains(t, out, "TestAgent/1.0")
	assert.NotContains(t, out, "salas\\nforged")
}

func TestLogRequestEvent_PersistsWhenDBSet(t *testing.T) {
	setupTestLogger(t)
	dsn := fmt.Sprintf("file:requestlog_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RequestLog{}))

	SetRequestLogDB(db)
	defer SetRequestLogDB(nil)

	LogRequestEvent(RequestEvent{RequestID: "req-1", Method: "POST", Path: "/hospital/api/citas", Route: "/hospital/api/citas", Status: 201})

	var logs []model.RequestLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "req-1", logs[0].RequestID)
	assert.Equal(t, 201, logs[0].Status)
	assert.Contains(t, string(logs[0].Details), `"route":"/hospital/api/citas"`)
}
