package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/cache"
	"github.com/BruksfildServices01/agendapro/internal/config"
	"github.com/BruksfildServices01/agendapro/internal/handlers"
	"github.com/BruksfildServices01/agendapro/internal/middleware"
	"github.com/BruksfildServices01/agendapro/internal/models"
	"github.com/BruksfildServices01/agendapro/internal/storage"
	ucAgenda "github.com/BruksfildServices01/agendapro/internal/usecase/agenda"
	ucAppointment "github.com/BruksfildServices01/agendapro/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/agendapro/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/agendapro/internal/usecase/catalog"
	ucCompany "github.com/BruksfildServices01/agendapro/internal/usecase/company"
	ucNotification "github.com/BruksfildServices01/agendapro/internal/usecase/notification"
	ucRating "github.com/BruksfildServices01/agendapro/internal/usecase/rating"
	"github.com/BruksfildServices01/agendapro/internal/validators"
)

// Dependencies are the process-wide singletons the routes are built from.
type Dependencies struct {
	Config  *config.Config
	Log     *zap.Logger
	Repos   Repositories
	Cache   cache.Cache
	Storage storage.Driver
	Audit   *audit.Dispatcher

	// Now defaults to time.Now.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg, log, repos := deps.Config, deps.Log, deps.Repos
	if deps.Now == nil {
		deps.Now = time.Now
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := ucAuth.NewTokens(cfg.JWTSecret, cfg.JWTExpiration())
	directory := ucCompany.NewDirectory(deps.Cache, cfg.CompanyCacheTTL, log)
	auditLogger := audit.New(repos.Audit)

	appointmentDeps := ucAppointment.Deps{
		Tx:            repos.Tx,
		Appointments:  repos.Appointments,
		Users:         repos.Users,
		Companies:     repos.Companies,
		Services:      repos.Services,
		Agendas:       repos.Agendas,
		Notifications: repos.Notifications,
		Audit:         deps.Audit,
		Now:           deps.Now,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	register := ucAuth.NewRegister(
		repos.Tx,
		repos.Users,
		repos.Companies,
		tokens,
		directory,
		deps.Audit,
		validators.EmailDomainCheck(cfg.ValidateEmailDomain),
	)
	login := ucAuth.NewLogin(repos.Users, tokens)
	me := ucAuth.NewMe(repos.Users, repos.Companies)

	getCompany := ucCompany.NewGetCompany(repos.Companies)
	createAppointment := ucAppointment.NewCreateAppointment(appointmentDeps)
	availability := ucAppointment.NewGetAvailability(appointmentDeps)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(register, login, me, log)

	companyHandler := handlers.NewCompanyHandler(
		ucCompany.NewListCompanies(repos.Companies, directory),
		getCompany,
		ucCompany.NewUpdateProfile(repos.Tx, repos.Users, repos.Companies, directory, deps.Audit),
		ucCompany.NewUploadLogo(repos.Companies, deps.Storage, deps.Audit),
		log,
	)

	employeeHandler := handlers.NewEmployeeHandler(
		ucCompany.NewCreateEmployee(repos.Users, repos.Companies, deps.Audit),
		ucCompany.NewListEmployees(repos.Users, repos.Companies),
		ucCompany.NewDeactivateEmployee(
			repos.Tx,
			repos.Users,
			repos.Appointments,
			repos.Notifications,
			deps.Audit,
			deps.Now,
		),
		log,
	)

	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewListServices(repos.Services, repos.Companies),
		ucCatalog.NewCreateService(repos.Services, deps.Audit),
		ucCatalog.NewUpdateService(repos.Services, deps.Audit),
		log,
	)

	agendaHandler := handlers.NewAgendaHandler(
		ucAgenda.NewCreateAgenda(repos.Agendas, repos.Users, deps.Audit),
		ucAgenda.NewListAgendas(repos.Agendas),
		ucAgenda.NewGetPublicView(repos.Users, repos.Agendas, repos.Services, getCompany, availability),
		createAppointment,
		log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(handlers.AppointmentUseCases{
		Create:       createAppointment,
		List:         ucAppointment.NewListAppointments(appointmentDeps),
		Get:          ucAppointment.NewGetAppointment(appointmentDeps),
		Confirm:      ucAppointment.NewConfirmAppointment(appointmentDeps),
		Complete:     ucAppointment.NewCompleteAppointment(appointmentDeps),
		Cancel:       ucAppointment.NewCancelAppointment(appointmentDeps),
		Reminder:     ucAppointment.NewSendReminder(appointmentDeps),
		Availability: availability,
	}, log)

	ratingHandler := handlers.NewRatingHandler(
		ucRating.NewSubmitRating(repos.Ratings, repos.Appointments, deps.Audit),
		ucRating.NewListCompanyRatings(repos.Ratings, repos.Companies),
		log,
	)

	notificationHandler := handlers.NewNotificationHandler(ucNotification.NewInbox(repos.Notifications), log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, log)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if local, ok := deps.Storage.(*storage.Local); ok {
		r.Static(storage.PublicPrefix, local.BasePath())
	}

	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		api.GET("/empresas", companyHandler.List)
		api.GET("/empresas/:id", companyHandler.Get)
		api.GET("/empresas/:id/servicos", serviceHandler.ListByCompany)
		api.GET("/empresas/:id/funcionarios", employeeHandler.ListByCompany)
		api.GET("/empresas/:id/avaliacoes", ratingHandler.ListByCompany)

		api.GET("/funcionarios/:id/disponibilidade", appointmentHandler.Availability)

		api.GET("/agendas/public/:userId", agendaHandler.PublicView)
		api.POST("/agendas/public/:userId/agendamentos", agendaHandler.PublicBook)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", authHandler.Me)

			// empresa
			company := secured.Group("/")
			company.Use(middleware.RequireRoles(models.RoleCompany))
			{
				company.PATCH("/empresas/me", companyHandler.UpdateMe)
				company.POST("/empresas/me/logo", companyHandler.UploadLogo)

				company.POST("/funcionarios", employeeHandler.Create)
				company.PATCH("/funcionarios/:id/desativar", employeeHandler.Deactivate)

				company.POST("/servicos", serviceHandler.Create)
				company.PATCH("/servicos/:id", serviceHandler.Update)

				company.GET("/me/audit-logs", auditLogsHandler.List)
			}

			// empresa + funcionario
			staff := secured.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				staff.GET("/agendas", agendaHandler.List)
				staff.POST("/agendas", agendaHandler.Create)

				staff.PATCH("/agendamentos/:id/confirmar", appointmentHandler.Confirm)
				staff.PATCH("/agendamentos/:id/concluir", appointmentHandler.Complete)
				staff.POST("/agendamentos/:id/lembrete", appointmentHandler.SendReminder)
			}

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/agendamentos", appointmentHandler.List)
			secured.POST("/agendamentos", appointmentHandler.Create)
			secured.GET("/agendamentos/:id", appointmentHandler.Get)
			secured.PATCH("/agendamentos/:id/cancelar", appointmentHandler.Cancel)

			secured.POST("/avaliacoes", middleware.RequireRoles(models.RoleClient), ratingHandler.Submit)

			secured.GET("/notificacoes", notificationHandler.List)
			secured.PATCH("/notificacoes/lidas", notificationHandler.MarkAllRead)
			secured.PATCH("/notificacoes/:id/lida", notificationHandler.MarkRead)
		}
	}
}
