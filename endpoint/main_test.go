package endpoint

import (
	"os"
	"testing"

	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TestMain sets up consistent test configuration for all tests in the endpoint packages.
func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)
	util.SetLoggerForTest(zerolog.Nop())
	if err := util.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
