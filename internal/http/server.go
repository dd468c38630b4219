package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gamecatalog/internal/http/handlers"
	"github.com/saradorri/gamecatalog/internal/http/middleware"
	"github.com/saradorri/gamecatalog/internal/infrastructure/auth"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	jwtService   auth.JWTService
	gameHandler  *handlers.GameHandler
	userHandler  *handlers.UserHandler
	errorHandler *middleware.ErrorHandler
	port         string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	gameHandler *handlers.GameHandler,
	userHandler *handlers.UserHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		gameHandler:  gameHandler,
		userHandler:  userHandler,
		errorHandler: errorHandler,
		port:         port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		gameRoutes := v1.Group("/games")
		{
			gameRoutes.GET("", s.gameHandler.ListGames)
			gameRoutes.GET("/:id", s.gameHandler.GetGame)
		}
		v1.GET("/genres", s.gameHandler.ListGenres)

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", s.userHandler.Register)
			authRoutes.POST("/login", s.userHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			protected.PUT("/auth/password", s.userHandler.ChangePassword)

			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetProfile)
				userRoutes.DELETE("/me", s.userHandler.DeleteAccount)
			}

			wishlistRoutes := protected.Group("/wishlist")
			{
				wishlistRoutes.GET("", s.userHandler.GetWishlist)
				wishlistRoutes.POST("/:game_id", s.userHandler.AddToWishlist)
				wishlistRoutes.DELETE("/:game_id", s.userHandler.RemoveFromWishlist)
			}

			protected.POST("/games/:id/reviews", s.userHandler.AddReview)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
