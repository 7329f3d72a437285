package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uci-sgcd/panel-api/api/swagger"
	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/handler"
	"github.com/uci-sgcd/panel-api/internal/middleware"
	"github.com/uci-sgcd/panel-api/internal/permissions"
	"github.com/uci-sgcd/panel-api/internal/service"
	"github.com/uci-sgcd/panel-api/internal/session"
	"github.com/uci-sgcd/panel-api/internal/store"
	"github.com/uci-sgcd/panel-api/pkg/cache"
	"github.com/uci-sgcd/panel-api/pkg/config"
	"github.com/uci-sgcd/panel-api/pkg/logger"
	corsmiddleware "github.com/uci-sgcd/panel-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uci-sgcd/panel-api/pkg/middleware/requestid"
)

// @title SGCD Panel API
// @version 1.0.0
// @description Session and roster panel for the academic workload system
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	validate := validator.New()
	metrics := service.NewMetricsService()

	gw := gateway.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logr, metrics)
	credStore := session.NewCredentialStore(redisClient, cfg.Session, logr)
	sessions := session.NewService(gw, credStore, validate, logr, cfg.Session)
	stores := store.NewRegistry(validate, logr, metrics, metrics)
	reports := service.NewReportService(logr, cfg.Reports)

	authHandler := handler.NewAuthHandler(sessions, stores)
	dataHandler := handler.NewDataHandler()
	professorHandler := handler.NewProfessorHandler()
	commentHandler := handler.NewCommentHandler()
	academicHandler := handler.NewAcademicHandler()
	assignmentHandler := handler.NewAssignmentHandler()
	userHandler := handler.NewUserHandler()
	reportHandler := handler.NewReportHandler(reports)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	authed := api.Group("")
	authed.Use(middleware.Session(sessions, stores, gw))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/me", authHandler.Me)

		authed.GET("/data", dataHandler.Snapshot)
		authed.POST("/data/load", dataHandler.Load)
		authed.POST("/data/refresh", dataHandler.Refresh)

		professorsRead := authed.Group("/professors")
		professorsRead.Use(middleware.RequirePermission(permissions.ViewProfessors))
		{
			professorsRead.GET("", professorHandler.List)
			professorsRead.GET("/stats", professorHandler.Stats)
			professorsRead.GET("/enums", professorHandler.Enums)
			professorsRead.GET("/:id", professorHandler.Get)
		}

		authed.POST("/professors",
			middleware.RequirePermission(permissions.AddProfessor), professorHandler.Create)
		authed.PUT("/professors/:id",
			middleware.RequirePermission(permissions.EditProfessor), professorHandler.Update)
		authed.DELETE("/professors/:id",
			middleware.RequirePermission(permissions.DeleteProfessor), professorHandler.Delete)

		authed.GET("/professors/export",
			middleware.RequirePermission(permissions.DownloadReports), professorHandler.ExportCSV)

		authed.GET("/comments",
			middleware.RequirePermission(permissions.ViewComments), commentHandler.List)
		authed.POST("/comments",
			middleware.RequirePermission(permissions.AddComment), commentHandler.Create)
		authed.POST("/comments/:id/read",
			middleware.RequireAnyPermission(permissions.ViewComments, permissions.AddComment), commentHandler.MarkRead)

		authed.GET("/faculties", academicHandler.Faculties)
		authed.GET("/faculties/:id", academicHandler.GetFaculty)
		authed.GET("/disciplines", academicHandler.Disciplines)
		authed.GET("/disciplines/:id", academicHandler.GetDiscipline)
		authed.GET("/subjects", academicHandler.Subjects)
		authed.GET("/subjects/:id", academicHandler.GetSubject)

		assignments := authed.Group("/assignments")
		assignments.Use(middleware.RequirePermission(permissions.ViewProfessors))
		{
			assignments.GET("", assignmentHandler.List)
			assignments.GET("/types", assignmentHandler.Types)
			assignments.GET("/:id/history", assignmentHandler.History)
			assignments.POST("", middleware.RequirePermission(permissions.EditProfessor), assignmentHandler.Create)
			assignments.PUT("/:id", middleware.RequirePermission(permissions.EditProfessor), assignmentHandler.Update)
			assignments.DELETE("/:id", middleware.RequirePermission(permissions.EditProfessor), assignmentHandler.Delete)
			assignments.GET("/export", middleware.RequirePermission(permissions.DownloadReports), assignmentHandler.ExportCSV)
		}

		users := authed.Group("/users")
		users.Use(middleware.RequirePermission(permissions.ManageUsers))
		{
			users.GET("", userHandler.List)
			users.GET("/roles", userHandler.Roles)
			users.GET("/:id", userHandler.Get)
			users.POST("", userHandler.Create)
			users.PATCH("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.POST("/:id/block", userHandler.Block)
			users.POST("/:id/unblock", userHandler.Unblock)
		}

		reportsGroup := authed.Group("/reports")
		reportsGroup.Use(middleware.RequirePermission(permissions.DownloadReports))
		{
			reportsGroup.GET("/roster", reportHandler.Roster)
			reportsGroup.GET("/workload", reportHandler.Workload)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
