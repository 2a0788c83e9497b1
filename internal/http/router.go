package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chetanraj-2002/portfolio/internal/config"
	"github.com/chetanraj-2002/portfolio/internal/http/csrf"
	"github.com/chetanraj-2002/portfolio/internal/http/handlers"
	adminhandlers "github.com/chetanraj-2002/portfolio/internal/http/handlers/admin"
	"github.com/chetanraj-2002/portfolio/internal/http/middleware"
	"github.com/chetanraj-2002/portfolio/internal/mailer"
	"github.com/chetanraj-2002/portfolio/internal/modules/auth"
	"github.com/chetanraj-2002/portfolio/internal/modules/contact"
	"github.com/chetanraj-2002/portfolio/internal/modules/content"
	"github.com/chetanraj-2002/portfolio/internal/modules/email"
	"github.com/chetanraj-2002/portfolio/internal/modules/profile"
	"github.com/chetanraj-2002/portfolio/internal/modules/records"
	"github.com/chetanraj-2002/portfolio/internal/storage"
)

const profileCacheTTL = 5 * time.Minute

// NewRouter wires every dependency and mounts the public and admin API.
func NewRouter(logger *slog.Logger, db *gorm.DB, cfg config.Config, store storage.Storage, mail mailer.Service) *gin.Engine {
	sessionCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
		TTL:        cfg.Session.TTL,
	}
	csrfCodec := csrf.NewCodec(cfg.Session.Secret, cfg.Session.TTL)

	// services
	profileRepo := profile.NewRepo(db, profileCacheTTL)
	contentRepo := content.NewRepo(db)
	authSvc := auth.NewService(db)
	recordsMgr := records.NewManager(db)

	var sender email.Sender
	if cfg.Mailtrap.APIURL != "" {
		sender = email.NewMailtrapProvider(cfg.Mailtrap, cfg.Contact.FromAddr, cfg.Contact.FromName)
	} else {
		sender = email.NewMailerAdapter(mail, cfg.Contact.FromAddr, cfg.Contact.FromName)
	}
	notifier := email.NewContactNotifier(sender, cfg.Contact.OwnerAddr, cfg.Contact.OwnerName)
	contactSvc := contact.NewService(db, notifier)
	contactSvc.SetLogger(logger)

	// handlers
	authHandler := handlers.NewAuthHandler(authSvc, sessionCfg, csrfCodec)
	publicHandler := handlers.NewPublicHandler(contentRepo, profileRepo)
	contactHandler := handlers.NewContactHandler(contactSvc)
	eventsHandler := handlers.NewProfileEventsHandler(profileRepo.Broadcaster())

	recordsHandler := adminhandlers.NewRecordsHandler(recordsMgr, profileRepo)
	messagesHandler := adminhandlers.NewMessagesHandler(contactSvc)
	adminProfileHandler := adminhandlers.NewProfileHandler(profileRepo)
	uploadsHandler := adminhandlers.NewUploadsHandler(store, cfg.Upload.MaxBytes)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.SessionMiddleware(sessionCfg))

	api := r.Group("/api")
	{
		api.GET("/profile", publicHandler.GetProfile)
		api.GET("/profile/events", eventsHandler.Stream)
		api.GET("/skills", publicHandler.ListSkills)
		api.GET("/education", publicHandler.ListEducation)
		api.GET("/experience", publicHandler.ListExperience)
		api.GET("/projects", publicHandler.ListProjects)
		api.GET("/media", publicHandler.ListMedia)
		api.GET("/testimonials", publicHandler.ListTestimonials)
		api.GET("/certificates", publicHandler.ListCertificates)
		api.GET("/timeline", publicHandler.GetTimeline)
		api.GET("/stats", publicHandler.GetStats)

		api.POST("/contact", contactHandler.Submit)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)
	}

	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.RequireAdmin())
	adminAPI.Use(middleware.RequireCSRF(csrfCodec))
	{
		adminAPI.GET("/profile", adminProfileHandler.Get)
		adminAPI.PUT("/profile", adminProfileHandler.Update)

		adminAPI.GET("/messages", messagesHandler.List)
		adminAPI.GET("/messages/:id", messagesHandler.View)
		adminAPI.POST("/messages/:id/responded", messagesHandler.MarkResponded)
		adminAPI.DELETE("/messages/:id", messagesHandler.Delete)

		adminAPI.POST("/uploads", uploadsHandler.Create)

		adminAPI.GET("/records/:resource", recordsHandler.List)
		adminAPI.POST("/records/:resource", recordsHandler.Create)
		adminAPI.GET("/records/:resource/:id", recordsHandler.Get)
		adminAPI.PUT("/records/:resource/:id", recordsHandler.Update)
		adminAPI.DELETE("/records/:resource/:id", recordsHandler.Delete)
	}

	return r
}
