package main

import (
	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/config"
	"github.com/petrobase/sitecms/internal/handlers"
	"github.com/petrobase/sitecms/internal/middleware"
	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiters: tight for the contact form and login, generous for
	// public reads
	formLimiter := middleware.NewRateLimiter(1, 5)
	publicLimiter := middleware.NewRateLimiter(20, 50)
	svc.limiters = append(svc.limiters, formLimiter, publicLimiter)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// Uploaded media (gallery images, documents, video files)
	r.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	api := r.Group("/api")
	{
		// Public site routes (no auth)
		publicHandler := handlers.NewPublicHandler(models.GetDB())
		public := api.Group("/public", publicLimiter.Middleware())
		{
			public.GET("/pages/:page/sections", publicHandler.GetPageSections)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/projects", publicHandler.ListProjects)
			public.GET("/projects/:slug", publicHandler.GetProject)
			public.GET("/jobs", publicHandler.ListJobs)
			public.GET("/support-articles", publicHandler.ListSupportArticles)
			public.GET("/locations", publicHandler.ListLocations)
			public.GET("/site-info", publicHandler.GetSiteInfo)
			public.POST("/contact", formLimiter.Middleware(), publicHandler.SubmitContact)
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", formLimiter.Middleware(), svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.GET("/config", svc.authHandler.GetAuthConfig)
		}

		// Protected backoffice routes (admin and editor)
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			protected.GET("/auth/me", svc.authHandler.Me)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard", dashboardHandler.GetStats)

			// Content sections (structured editor + raw escape hatch)
			sectionHandler := handlers.NewSectionHandler(models.GetDB())
			protected.GET("/sections", sectionHandler.List)
			protected.GET("/sections/:id", sectionHandler.Get)
			protected.POST("/sections", sectionHandler.Create)
			protected.PUT("/sections/:id", sectionHandler.Update)
			protected.DELETE("/sections/:id", sectionHandler.Delete)
			protected.GET("/sections/:id/form", sectionHandler.GetForm)
			protected.PUT("/sections/:id/form", sectionHandler.UpdateForm)
			protected.PUT("/sections/:id/raw", sectionHandler.UpdateRaw)

			// Product catalog
			productHandler := handlers.NewProductHandler(models.GetDB())
			protected.GET("/products", productHandler.List)
			protected.GET("/products/:id", productHandler.Get)
			protected.POST("/products", productHandler.Create)
			protected.PUT("/products/:id", productHandler.Update)
			protected.DELETE("/products/:id", productHandler.Delete)
			protected.GET("/products/:id/specifications", productHandler.GetSpecifications)
			protected.PUT("/products/:id/specifications", productHandler.UpdateSpecifications)
			protected.POST("/products/:id/videos", productHandler.AddVideo)
			protected.DELETE("/products/:id/videos/:index", productHandler.RemoveVideo)

			// Reference projects
			projectHandler := handlers.NewProjectHandler(models.GetDB())
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.Get)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Careers
			careerHandler := handlers.NewCareerHandler(models.GetDB())
			protected.GET("/jobs", careerHandler.List)
			protected.GET("/jobs/:id", careerHandler.Get)
			protected.POST("/jobs", careerHandler.Create)
			protected.PUT("/jobs/:id", careerHandler.Update)
			protected.DELETE("/jobs/:id", careerHandler.Delete)

			// Support articles
			supportHandler := handlers.NewSupportHandler(models.GetDB())
			protected.GET("/support-articles", supportHandler.List)
			protected.GET("/support-articles/:id", supportHandler.Get)
			protected.POST("/support-articles", supportHandler.Create)
			protected.PUT("/support-articles/:id", supportHandler.Update)
			protected.DELETE("/support-articles/:id", supportHandler.Delete)

			// Locations
			locationHandler := handlers.NewLocationHandler(models.GetDB())
			protected.GET("/locations", locationHandler.List)
			protected.GET("/locations/:id", locationHandler.Get)
			protected.POST("/locations", locationHandler.Create)
			protected.PUT("/locations/:id", locationHandler.Update)
			protected.DELETE("/locations/:id", locationHandler.Delete)

			// Message inbox
			contactHandler := handlers.NewContactHandler(models.GetDB())
			protected.GET("/contact-messages", contactHandler.List)
			protected.GET("/contact-messages/:id", contactHandler.Get)
			protected.PUT("/contact-messages/:id/status", contactHandler.UpdateStatus)

			// Media uploads
			mediaHandler := handlers.NewMediaHandler(&cfg.Uploads)
			protected.POST("/media", mediaHandler.Upload)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			userHandler := handlers.NewUserHandler(models.GetDB())
			admin.GET("/users", userHandler.List)
			admin.POST("/users", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			contactHandler := handlers.NewContactHandler(models.GetDB())
			admin.DELETE("/contact-messages/:id", contactHandler.Delete)

			settingHandler := handlers.NewSiteSettingHandler(models.GetDB())
			admin.GET("/settings", settingHandler.List)
			admin.PUT("/settings", settingHandler.Update)

			systemLogHandler := handlers.NewSystemLogHandler(models.GetDB())
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)
		}
	}
}
