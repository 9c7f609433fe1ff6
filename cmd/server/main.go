// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/codeuno/server/internal/auth"
	"github.com/codeuno/server/internal/cache"
	"github.com/codeuno/server/internal/database"
	"github.com/codeuno/server/internal/handlers"
	"github.com/codeuno/server/internal/middleware"
)

func main() {
	auth.Init()
	database.ConnectDB()
	if err := cache.ConnectRedis(); err != nil {
		// Action logging degrades gracefully without Redis.
		log.Printf("redis unavailable, round action log disabled: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	gs := handlers.NewGameServer(logger)

	mux := http.NewServeMux()

	// user endpoints
	mux.HandleFunc("/user/create", handlers.CreateUserHandler)
	mux.HandleFunc("/user/login", handlers.LoginHandler)

	// room endpoints
	mux.Handle("/room/create", middleware.LogMiddleware(logger)(handlers.CreateRoomHandler(gs)))
	mux.Handle("/room/join", middleware.LogMiddleware(logger)(handlers.JoinRoomHandler(gs)))
	mux.Handle("/room/info", middleware.LogMiddleware(logger)(handlers.RoomInfoHandler(gs)))
	mux.Handle("/room/start", middleware.LogMiddleware(logger)(handlers.StartRoundHandler(gs)))

	// game websocket
	mux.Handle("/game/ws/", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.GameWSHandler(logger, gs),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
