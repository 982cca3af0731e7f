package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beauty-booking/internal/auth"
	"github.com/BruksfildServices01/beauty-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/beauty-booking/internal/db"
	"github.com/BruksfildServices01/beauty-booking/internal/handlers"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/beauty-booking/internal/infra/repository"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/middleware"
	"github.com/BruksfildServices01/beauty-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/beauty-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/beauty-booking/internal/usecase/catalog"
	ucIdentity "github.com/BruksfildServices01/beauty-booking/internal/usecase/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/validators"
)

// Deps are the process-wide collaborators the routes are built from.
// Optional ones may be left nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config

	// Revoker backs logout. Nil means logout answers 503.
	Revoker auth.Revoker
	// Images stores service pictures. Nil means uploads answer 503.
	Images ucCatalog.ImageSaver
	// Clock defaults to the wall clock in the configured timezone.
	Clock timezone.Clock
	// Checks are readiness checks run in addition to the database ping.
	Checks map[string]handlers.Check
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	clock := deps.Clock
	if clock == nil {
		clock = timezone.SystemClock(cfg.Timezone)
	}

	httperr.UseJSONFieldNames()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.Recovery(logger.L()),
		middleware.RequestID(),
		middleware.AccessLog(logger.L()),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(deps.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL, deps.Revoker)

	// ======================================================
	// USE CASES
	// ======================================================
	var domainCheck ucIdentity.DomainChecker
	if cfg.CheckEmailDomain {
		domainCheck = validators.NewEmailDomainChecker(nil, 3*time.Second).Check
	}
	createUserUC := ucIdentity.NewCreateUser(userRepo, domainCheck)
	authenticateUC := ucIdentity.NewAuthenticate(userRepo)
	resolveUserUC := ucIdentity.NewResolveUser(userRepo)

	listServicesUC := ucCatalog.NewListServices(serviceRepo)
	getServiceUC := ucCatalog.NewGetService(serviceRepo)
	createServiceUC := ucCatalog.NewCreateService(serviceRepo)
	setServiceImageUC := ucCatalog.NewSetServiceImage(serviceRepo, deps.Images)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, clock)
	retrieveBookingUC := ucBooking.NewRetrieveBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, clock)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	checks := map[string]handlers.Check{
		"database": func(ctx context.Context) error { return dbpkg.Ping(ctx, deps.DB) },
	}
	for name, check := range deps.Checks {
		checks[name] = check
	}
	healthHandler := handlers.NewHealthHandler(checks)

	authHandler := handlers.NewAuthHandler(createUserUC, authenticateUC, tokens)
	meHandler := handlers.NewMeHandler()
	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		getServiceUC,
		createServiceUC,
		setServiceImageUC,
	)
	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		createBookingUC,
		retrieveBookingUC,
		updateBookingUC,
		deleteBookingUC,
	)

	// ======================================================
	// PROBES
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, resolveUserUC))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services/", serviceHandler.List)
			secured.GET("/services/:id/", serviceHandler.Get)

			staff := secured.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				staff.POST("/services/", serviceHandler.Create)
				staff.PUT("/services/:id/image", serviceHandler.UploadImage)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings/", bookingHandler.List)
			secured.POST("/bookings/", bookingHandler.Create)
			secured.GET("/bookings/:id/", bookingHandler.Retrieve)
			secured.PUT("/bookings/:id/", bookingHandler.Update)
			secured.PATCH("/bookings/:id/", bookingHandler.PartialUpdate)
			secured.DELETE("/bookings/:id/", bookingHandler.Delete)
		}
	}
}
