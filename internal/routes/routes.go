package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/neal92/ServiceBooking-sub000/internal/audit"
	"github.com/neal92/ServiceBooking-sub000/internal/cache"
	"github.com/neal92/ServiceBooking-sub000/internal/config"
	"github.com/neal92/ServiceBooking-sub000/internal/handlers"
	"github.com/neal92/ServiceBooking-sub000/internal/infra/repository"
	"github.com/neal92/ServiceBooking-sub000/internal/middleware"
	"github.com/neal92/ServiceBooking-sub000/internal/monitor"
	"github.com/neal92/ServiceBooking-sub000/internal/storage"
	"github.com/neal92/ServiceBooking-sub000/internal/timezone"
	ucappointment "github.com/neal92/ServiceBooking-sub000/internal/usecase/appointment"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine and returns the progression monitor so main can drive its
// lifecycle.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	images *storage.ImageStore,
	log zerolog.Logger,
) *monitor.Monitor {

	loc := timezone.Location(cfg.Timezone)

	repo := repository.NewAppointmentGormRepository(db)
	auditor := audit.NewDispatcher(audit.New(db), log)
	catalog := cache.NewCatalog(rdb, log)

	createUC := ucappointment.NewCreateAppointment(repo, auditor, log, loc)
	updateUC := ucappointment.NewUpdateAppointment(repo, auditor, log, loc)
	statusUC := ucappointment.NewUpdateStatus(repo, auditor, loc)
	deleteUC := ucappointment.NewDeleteAppointment(repo, auditor)
	listUC := ucappointment.NewListAppointments(repo)

	progressUC := ucappointment.NewAutoProgress(repo, statusUC, loc, log)
	mon := monitor.New(
		progressUC,
		time.Duration(cfg.MonitorIntervalSeconds)*time.Second,
		log,
	)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(createUC, updateUC, statusUC, deleteUC, listUC)
	serviceHandler := handlers.NewServiceHandler(db, catalog, images)
	categoryHandler := handlers.NewCategoryHandler(db, catalog)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	monitorHandler := handlers.NewMonitorHandler(mon)

	// Public.
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	r.GET("/api/services", serviceHandler.List)
	r.GET("/api/services/:id", serviceHandler.Get)
	r.GET("/api/categories", categoryHandler.List)

	// Authenticated.
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/client", appointmentHandler.ListByClient)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}

	// Admin.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
	{
		admin.GET("/services", serviceHandler.ListAll)
		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)
		admin.POST("/services/:id/image", serviceHandler.UploadImage)

		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)

		admin.GET("/monitor", monitorHandler.Get)
		admin.PUT("/monitor", monitorHandler.Update)
	}

	return mon
}
