package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/openaquifer/groundwater-api/alert"
	"github.com/openaquifer/groundwater-api/external/resend"
	"github.com/openaquifer/groundwater-api/logmodule"
	"github.com/openaquifer/groundwater-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.GroundwaterCore
	mongoStore store.MongoStore

	// External services
	mailClient resend.Mailer

	// alert engine, shared with the scheduled job
	alertEngine *alert.Engine
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	mailClient resend.Mailer) *Server {
	groundwaterStore := store.NewGroundwaterStore(ormDB)

	return &Server{
		store:       groundwaterStore,
		mongoStore:  mongoStore,
		mailClient:  mailClient,
		alertEngine: alert.NewEngine(groundwaterStore, mongoStore, mailClient),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/stats", s.stats)
		apiRoute.POST("/predict", s.predict)
		apiRoute.GET("/districts", s.districts)
		apiRoute.GET("/temporal", s.temporalTrends)
		apiRoute.GET("/map-data", s.mapData)
		apiRoute.GET("/map-data-raw", s.mapDataRaw)
		apiRoute.GET("/available-years", s.availableYears)
		apiRoute.GET("/available-years-raw", s.availableYearsRaw)
		apiRoute.GET("/district-data", s.districtData)
		apiRoute.GET("/states", s.states)

		apiRoute.GET("/forecast", s.forecastValidation)
		apiRoute.GET("/forecast/:district", s.districtForecast)

		apiRoute.POST("/subscribe", s.subscribe)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/trigger-alert", s.adminTriggerAlert)
		secretRoute.POST("/run-job", s.adminRunAlertJob)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
