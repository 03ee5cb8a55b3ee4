// Package server - the HTTP/WebSocket facade over maze generation.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// maxRequestBytes bounds incoming request bodies; maze requests are tiny.
const maxRequestBytes = 1 << 20

// Server wires the maze library to HTTP handlers. Construct it with New;
// the zero value has no logger.
type Server struct {
	log      *logrus.Logger
	upgrader websocket.Upgrader

	// seedSource supplies the seed for requests that carry none, so two
	// anonymous requests never produce the same maze. Tests pin it.
	seedSource func() int64
}

// New builds a Server logging through log. A nil log falls back to the
// logrus standard logger.
func New(log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		seedSource: func() int64 { return time.Now().UnixNano() },
	}
}

// errorBody is the JSON shape of every handler failure.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the proper content type.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("response write failed")
	}
}

// writeError logs the failure and reports it as JSON.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Warn("request rejected")
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}
