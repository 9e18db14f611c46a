package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEndpointCallLogger_LogsRequest(t *testing.T) {
	logs := captureLogs(t)
	r := newTestRouter(RequestID(), EndpointCallLogger())
	r.GET("/hospital/api/salas/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/hospital/api/salas/7?x=1", nil)
	req.RemoteAddr = "192.168.1.100:1234"
	req.Header.Set("User-Agent", "TestAgent/1.0")
	req.Header.Set(RequestIDHeader, "req-1")
	serve(r, req)

	out := logs.String()
	assert.Contains(t, out, "GET /hospital/api/salas/7 -> 404")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "192.168.1.100")
	assert.Contains(t, out, "TestAgent/1.0")
	assert.Contains(t, out, "req-1")
}

func TestEndpointCallLogger_PersistsWhenEnabled(t *testing.T) {
	captureLogs(t)
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	util.SetRequestLogDB(db)
	t.Cleanup(func() { util.SetRequestLogDB(nil) })

	r := newTestRouter(RequestID(), EndpointCallLogger())
	r.POST("/hospital/api/salas", func(c *gin.Context) { c.Status(http.StatusCreated) })
	serve(r, httptest.NewRequest(http.MethodPost, "/hospital/api/salas", nil))

	var entries []model.RequestLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, http.MethodPost, entries[0].Method)
	assert.Equal(t, http.StatusCreated, entries[0].Status)
	assert.NotEmpty(t, entries[0].RequestID)
	assert.Contains(t, string(entries[0].Details), `"route":"/hospital/api/salas"`)
}
