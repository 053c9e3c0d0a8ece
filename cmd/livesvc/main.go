package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	config "github.com/scorely/scoreboard-services/configs"
	"github.com/scorely/scoreboard-services/internal/comm"
	"github.com/scorely/scoreboard-services/internal/livesvc/broker"
	"github.com/scorely/scoreboard-services/internal/livesvc/routes"
	"github.com/scorely/scoreboard-services/internal/livesvc/ws"
	nats "github.com/scorely/scoreboard-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "live"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// Connect to NATS
	n, err := nats.Connect(SERVICE_NAME)
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// socket hub
	socketHub := ws.NewWs()

	// event fan-out broker
	b := broker.NewBroker(n.Conn, socketHub.GetConnection, socketHub.GetWatchers)

	sub, err := b.Subscribe(comm.TopicBoardEvents)
	if err != nil {
		log.Errorf("Error: unable to subscribe to topic %v", err)
		os.Exit(0)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(c.Handler)

	routes.SetRoutes(r, socketHub)

	// Create server with timeout settings
	server := &http.Server{
		Addr:        ":" + os.Getenv("LIVE_SERVICE_PORT"),
		Handler:     r,
		ReadTimeout: 60 * time.Second,
		IdleTimeout: 60 * time.Second,
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

	sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
