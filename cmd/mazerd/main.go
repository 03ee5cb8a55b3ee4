// Command mazerd serves maze generation over HTTP and WebSocket.
//
// Routes:
//
//	POST /maze       - generate, answer the serialized grid
//	POST /maze/ascii - generate, answer a text drawing (Orthogonal only)
//	GET  /play       - WebSocket: reveal frames, then interactive moves
//	GET  /health     - liveness probe
//
// Environment:
//
//	PORT       - listen port, default 8080
//	LOG_LEVEL  - logrus level, default info
//	LOG_FORMAT - "json" for machine-readable logs, text otherwise
package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazer/server"
)

// App ties the router to the maze handlers.
type App struct {
	router *way.Router
	maze   *server.Server
}

func (a *App) routes() {
	a.router = way.NewRouter()
	a.router.HandleFunc("POST", "/maze", a.maze.HandleGenerate)
	a.router.HandleFunc("POST", "/maze/ascii", a.maze.HandleASCII)
	a.router.HandleFunc("GET", "/play", a.maze.HandlePlay)
	a.router.HandleFunc("GET", "/health", a.maze.HandleHealth)
}

// newLogger configures logrus from the environment.
func newLogger() *log.Logger {
	logger := log.New()

	// 1. Verbosity, default info.
	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	// 2. Format: json for log collectors, text for terminals.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	logger.SetOutput(os.Stdout)
	return logger
}

func main() {
	logger := newLogger()

	app := App{maze: server.New(logger)}
	app.routes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Printf("Defaulting to port %s", port)
	}
	logger.Infof("mazerd listening on :%s", port)
	logger.Fatalln(http.ListenAndServe(":"+port, app.router))
}
