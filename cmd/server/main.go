package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"trafficportal/pkg/cache"
	"trafficportal/pkg/config"
	"trafficportal/pkg/database"
	"trafficportal/pkg/events"
	"trafficportal/pkg/handlers"
	"trafficportal/pkg/middleware"
	"trafficportal/pkg/repository"
	"trafficportal/pkg/security"
	"trafficportal/pkg/server"
	"trafficportal/pkg/services"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("[DB] migrations failed: %v", err)
	}
	log.Println("[DB] schema up to date")

	log.Println("[PORTAL] Connecting to Redis...")
	redis := cache.New(cfg.RedisURL)
	defer redis.Close()

	publisher := events.NewPublisher(cfg.RedisURL)
	defer publisher.Close()
	log.Println("[PORTAL] Redis connected")

	tokens := security.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)

	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db)
	accessLogs := repository.NewAccessLogRepository(db)
	traffic := repository.NewTrafficRepository(db)

	authService := services.NewAuthService(users, sessions, accessLogs, tokens, publisher)
	trafficService := services.NewTrafficService(traffic, redis)

	auth := handlers.NewAuth(authService)
	reports := handlers.NewTraffic(trafficService)

	app := server.NewApp("traffic-portal")
	app.Use(middleware.AccessLog(tokens, accessLogs))

	app.Get("/", auth.Root)

	app.Post("/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.Register)

	app.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.Login)

	app.Post("/logout", middleware.Auth(tokens), auth.Logout)

	trafficGroup := app.Group("/traffic", middleware.Auth(tokens))
	trafficGroup.Post("/summary", reports.Summary)
	trafficGroup.Post("/location-wanip-summary", reports.LocationSummary)

	userGroup := app.Group("/user", middleware.Auth(tokens))
	userGroup.Post("/activity-history", reports.ActivityHistory)

	addr := "0.0.0.0:" + cfg.Port
	log.Printf("[PORTAL] Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("[PORTAL] Failed to start: %v", err)
	}
}
