package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/phoenixfit/phoenix-fitness-api/internal/config"
	"github.com/phoenixfit/phoenix-fitness-api/internal/database"
	"github.com/phoenixfit/phoenix-fitness-api/internal/handler"
	"github.com/phoenixfit/phoenix-fitness-api/internal/middleware"
	"github.com/phoenixfit/phoenix-fitness-api/internal/queue"
	"github.com/phoenixfit/phoenix-fitness-api/internal/repository"
	"github.com/phoenixfit/phoenix-fitness-api/internal/router"
	"github.com/phoenixfit/phoenix-fitness-api/internal/validator"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; cache and limiter no-op
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limiter disabled")
	}

	users := repository.NewUserRepo(db)
	categories := repository.NewCategoryRepo(db)
	products := repository.NewProductRepo(db)
	sessions := repository.NewSessionRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users))
	router.RegisterCatalog(e, handler.NewCategoryHandler(categories), handler.NewProductHandler(products), cfg.JWTSecret, cache)
	bh := handler.NewBookingHandler(bookings, users, sessions)
	router.RegisterSessions(e, handler.NewSessionHandler(sessions), bh, cfg.JWTSecret, cache)
	router.RegisterBookings(e, bh, cfg.JWTSecret)
	router.RegisterPayments(e, handler.NewPaymentHandler(users, sessions), cfg.JWTSecret)
	router.RegisterUsers(e, handler.NewUserHandler(users), cfg.JWTSecret)

	// Booking confirmations are consumed in the background and appended
	// to logs/booking.log. The consumer reconnects on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
