package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/scorely/scoreboard-services/configs"
	"github.com/scorely/scoreboard-services/internal/boardsvc/broker"
	"github.com/scorely/scoreboard-services/internal/boardsvc/db"
	handlers "github.com/scorely/scoreboard-services/internal/boardsvc/handlers"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
	"github.com/scorely/scoreboard-services/internal/boardsvc/store"
	"github.com/scorely/scoreboard-services/internal/boardsvc/token"
	nats "github.com/scorely/scoreboard-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "board"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// signing secret is loaded once and injected, never looked up again
	codec := token.New([]byte(os.Getenv("JWT_SECRET")))

	userStore := store.NewUserStore(dbpool)
	scoreboardStore := store.NewScoreboardStore(dbpool)
	teamStore := store.NewTeamStore(dbpool)
	playerStore := store.NewPlayerStore(dbpool)
	gameStore := store.NewGameStore(dbpool)

	// Connect to NATS
	n, err := nats.Connect(SERVICE_NAME)
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	events := broker.NewBroker(n.Conn)

	authService := service.NewAuthService(userStore, codec)
	userService := service.NewUserService(userStore)
	scoreboardService := service.NewScoreboardService(dbpool, scoreboardStore, teamStore, playerStore, userStore, events)
	teamService := service.NewTeamService(teamStore, scoreboardStore, playerStore, events)
	gameService := service.NewGameService(gameStore)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(codec, authService, userService, scoreboardService, teamService, gameService)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("BOARD_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
