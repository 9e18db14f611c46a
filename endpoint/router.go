package endpoint

import (
	"fmt"

	"github.com/ariebrainware/hospital-api/config"
	_ "github.com/ariebrainware/hospital-api/docs"
	"github.com/ariebrainware/hospital-api/middleware"
	"github.com/ariebrainware/hospital-api/service"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// BasePath prefixes every resource route.
const BasePath = "/hospital/api"

// SetupRouter wires services, handlers and middleware onto a new gin engine.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if err := util.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.EndpointCallLogger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	r.GET("/", func(c *gin.Context) {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: fmt.Sprintf("Welcome to %s!", cfg.AppName)})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(func(c *gin.Context) {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path)})
	})

	doctors := service.NewDoctorService(db)
	patients := service.NewPatientService(db)
	rooms := service.NewRoomService(db)
	appointments := service.NewAppointmentService(db)

	limit := middleware.RateLimiter(middleware.RateLimitConfig{Limit: cfg.RateLimit, Window: cfg.RateLimitWindow})
	api := r.Group(BasePath)
	NewDoctorHandler(doctors).RegisterRoutes(api, limit)
	NewPatientHandler(patients, doctors, rooms).RegisterRoutes(api, limit)
	NewRoomHandler(rooms, patients).RegisterRoutes(api, limit)
	NewAppointmentHandler(appointments, patients, rooms).RegisterRoutes(api, limit)

	return r, nil
}

// guarded prepends the write middleware to a handler without sharing the
// backing array between routes.
func guarded(write []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(write)+1)
	chain = append(chain, write...)
	return append(chain, h)
}
