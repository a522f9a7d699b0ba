// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/handlers"
	"github.com/studyshelf/studyshelf-backend/internal/middleware"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/services"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

func Initialize(db *gorm.DB, media services.MediaStorage, drive services.DriveStorage, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	bookService := services.NewBookService(db, media, drive, cfg)
	fileService := services.NewFileService(db, media, drive, cfg)
	paymentService := services.NewPaymentService(db, bookService, cfg)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	bookHandler := handlers.NewBookHandler(bookService)
	fileHandler := handlers.NewFileHandler(fileService, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Book catalog routes
		books := api.Group("/books")
		{
			books.GET("", middleware.OptionalAuth(), bookHandler.ListBooks)
			books.GET("/:id", middleware.OptionalAuth(), bookHandler.GetBook)

			protected := books.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", middleware.RoleRequired(models.UserRoleInstructor, models.UserRoleAdmin), bookHandler.CreateBook)
				protected.PUT("/:id", middleware.RoleRequired(models.UserRoleInstructor, models.UserRoleAdmin), bookHandler.UpdateBook)
				protected.DELETE("/:id", middleware.RoleRequired(models.UserRoleInstructor, models.UserRoleAdmin), bookHandler.DeleteBook)
				protected.POST("/:id/purchase", bookHandler.PurchaseBook)
				// Legacy route name kept for existing clients
				protected.POST("/:id/addBookToUser", bookHandler.AddBookToUser)
				protected.POST("/:id/reviews", bookHandler.AddReview)
			}
		}

		// File routes
		files := api.Group("/files")
		{
			protected := files.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.GET("/download/:fileId", fileHandler.Download)
				protected.POST("/upload", middleware.UploadRateLimit(), fileHandler.Upload)
				protected.GET("", fileHandler.ListFiles)
				protected.GET("/:id", fileHandler.GetFile)
				protected.PUT("/:id", fileHandler.UpdateFile)
				protected.DELETE("/:id", fileHandler.Delete)
			}
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("", middleware.AdminRequired(), userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/books", userHandler.GetUserBooks)
			users.PUT("/:id/profile", userHandler.UpdateProfile)
			users.PUT("/:id/password", userHandler.ChangePassword)
			users.PUT("/:id/role", middleware.AdminRequired(), userHandler.UpdateRole)
			users.DELETE("/:id", middleware.AdminRequired(), userHandler.DeleteUser)
		}

		// Payment routes
		payments := api.Group("/payments")
		payments.Use(middleware.AuthRequired())
		{
			payments.POST("/intent", paymentHandler.CreatePaymentIntent)
			payments.POST("/confirm", paymentHandler.ConfirmPayment)
			payments.GET("/history", paymentHandler.GetPaymentHistory)
		}

		// Catalog vocabulary (public)
		meta := api.Group("/meta")
		{
			meta.GET("/streams", getStreamsHandler)
			meta.GET("/subjects", getSubjectsHandler)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", adminHandler.GetDashboardStats)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./"+cfg.Upload.TempDir)
	}

	return r
}

func getStreamsHandler(c *gin.Context) {
	streams := make([]string, 0, len(models.Streams))
	for s := range models.Streams {
		if s != "" {
			streams = append(streams, s)
		}
	}
	utils.SuccessResponse(c, gin.H{"streams": streams})
}

func getSubjectsHandler(c *gin.Context) {
	subjects := make([]string, 0, len(models.Subjects))
	for s := range models.Subjects {
		subjects = append(subjects, s)
	}
	utils.SuccessResponse(c, gin.H{"subjects": subjects})
}
