package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	"github.com/VidaPediatria/clinic-api/internal/cache"
	"github.com/VidaPediatria/clinic-api/internal/config"
	"github.com/VidaPediatria/clinic-api/internal/handlers"
	infraRepo "github.com/VidaPediatria/clinic-api/internal/infra/repository"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	ucAppointment "github.com/VidaPediatria/clinic-api/internal/usecase/appointment"
	ucDashboard "github.com/VidaPediatria/clinic-api/internal/usecase/dashboard"
	ucExamResult "github.com/VidaPediatria/clinic-api/internal/usecase/examresult"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, c *cache.Cache) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	examResultRepo := infraRepo.NewExamResultGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES — LAB
	// ======================================================
	getLabBoardUC := ucAppointment.NewGetLabBoard(appointmentRepo)

	advanceLabStatusUC := ucAppointment.NewAdvanceLabStatus(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — EXAM RESULTS
	// ======================================================
	upsertResultUC := ucExamResult.NewUpsertResult(
		examResultRepo,
		auditDispatcher,
	)

	listResultsUC := ucExamResult.NewListResults(examResultRepo)

	// ======================================================
	// 🧠 USE CASES — DASHBOARD
	// ======================================================
	getStatsUC := ucDashboard.NewGetStats(dashboardRepo, c)
	getDailySeriesUC := ucDashboard.NewGetDailySeries(dashboardRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	patientHandler := handlers.NewPatientHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		markNoShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		getAvailabilityUC,
		appointmentRepo,
	)

	labBoardHandler := handlers.NewLabBoardHandler(
		getLabBoardUC,
		advanceLabStatusUC,
	)

	examResultHandler := handlers.NewExamResultHandler(
		upsertResultUC,
		listResultsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		getStatsUC,
		getDailySeriesUC,
	)

	inventoryHandler := handlers.NewInventoryHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	adminUsersHandler := handlers.NewAdminUsersHandler(db, c, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/accept-invite", adminUsersHandler.AcceptInvite)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/patients", patientHandler.List)
			secured.GET("/patients/:id", patientHandler.Get)
			secured.POST("/patients", patientHandler.Create)
			secured.PATCH("/patients/:id", patientHandler.Update)

			// ------------------------------
			// SERVICES (catálogo)
			// ------------------------------
			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

			// ------------------------------
			// LAB BOARD
			// ------------------------------
			secured.GET("/lab/board", labBoardHandler.Board)
			secured.PATCH("/lab/appointments/:id/status", labBoardHandler.Advance)

			// ------------------------------
			// EXAM RESULTS
			// ------------------------------
			secured.GET("/appointments/:id/results", examResultHandler.List)
			secured.PUT("/appointments/:id/results/:serviceId", examResultHandler.Upsert)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/stats", dashboardHandler.Stats)
			secured.GET("/dashboard/series", dashboardHandler.Series)

			// ------------------------------
			// 🔒 ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				// estoque é tela restrita: leitura e escrita
				admin.GET("/inventory", inventoryHandler.List)
				admin.POST("/inventory", inventoryHandler.Create)
				admin.PATCH("/inventory/:id", inventoryHandler.Update)
				admin.PATCH("/inventory/:id/quantity", inventoryHandler.AdjustQuantity)

				admin.GET("/audit-logs", auditLogsHandler.List)

				admin.GET("/users", adminUsersHandler.List)
				admin.POST("/users", adminUsersHandler.Create)
				admin.PATCH("/users/:id/role", adminUsersHandler.UpdateRole)
				admin.PATCH("/users/:id/active", adminUsersHandler.SetActive)
				admin.DELETE("/users/:id", adminUsersHandler.Delete)
				admin.POST("/users/invite", adminUsersHandler.Invite)

				admin.GET("/settings", settingsHandler.Get)
				admin.PATCH("/settings", settingsHandler.Update)
				admin.GET("/settings/operating-hours", settingsHandler.GetOperatingHours)
				admin.PUT("/settings/operating-hours", settingsHandler.PutOperatingHours)
			}
		}
	}
}
