package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lalindra-code/clearBillCopy/api/swagger" // swagger docs
	"github.com/lalindra-code/clearBillCopy/internal/database"
	"github.com/lalindra-code/clearBillCopy/internal/handler"
	"github.com/lalindra-code/clearBillCopy/internal/mailer"
	"github.com/lalindra-code/clearBillCopy/internal/middleware"
	"github.com/lalindra-code/clearBillCopy/internal/render"
	"github.com/lalindra-code/clearBillCopy/internal/repository"
	"github.com/lalindra-code/clearBillCopy/internal/service"
	"github.com/lalindra-code/clearBillCopy/internal/websocket"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title           EcoBill API
// @version         1.0
// @description     Invoice generation and billing API for Sri Lankan small businesses.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found")
	}

	dsn := "postgres://" + env("DB_USER", "postgres") +
		":" + env("DB_PASSWORD", "postgres") +
		"@" + env("DB_HOST", "localhost") +
		":" + env("DB_PORT", "5432") +
		"/" + env("DB_NAME", "ecobill") +
		"?sslmode=" + env("DB_SSLMODE", "disable")

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to postgres")

	renderer, err := render.New()
	if err != nil {
		log.Fatal().Err(err).Msg("renderer init failed")
	}

	mail, err := mailer.New(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASSWORD"),
		env("MAIL_FROM", "EcoBill <no-reply@ecobill.lk>"),
		os.Getenv("SMTP_SKIP_VERIFY") == "true",
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("mailer init failed")
	}

	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Repository -> Service -> Handler
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	verifier := service.NewGoogleVerifier(os.Getenv("GOOGLE_CLIENT_ID"))
	authService := service.NewAuthService(userRepo, txManager, mail, verifier,
		middleware.GetJWTSecret(), env("BASE_URL", "http://localhost:5173"), log)
	invoiceService := service.NewInvoiceService(invoiceRepo, userRepo, txManager, renderer, wsHub, log)

	authHandler := handler.NewAuthHandler(authService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{env("FRONTEND_URL", "http://localhost:5173")}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	authHandler.RegisterRoutes(router.Group(""))
	invoiceHandler.RegisterRoutes(router.Group(""))

	port := env("PORT", "8080")
	log.Info().Str("port", port).Msg("server listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
