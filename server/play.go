package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazer/grid"
	"github.com/katalvlaran/mazer/request"
)

// Wire messages of a /play session. The client opens with one ordinary
// maze request; after the server's opening burst the session is strictly
// ping-pong, one move in and one reply out.

// playStep carries one generation frame of a capture-enabled request.
type playStep struct {
	Type string     `json:"type"`
	Step int        `json:"step"`
	Grid *grid.Grid `json:"grid"`
}

// playMaze carries the finished maze and the cursor's opening position.
type playMaze struct {
	Type      string           `json:"type"`
	Grid      *grid.Grid       `json:"grid"`
	Active    grid.Coordinates `json:"active"`
	Available []grid.Direction `json:"available"`
}

// playMove is the client's only message after the opening request.
type playMove struct {
	Move string `json:"move"`
}

// playState answers every legal move.
type playState struct {
	Type      string           `json:"type"`
	Active    grid.Coordinates `json:"active"`
	Available []grid.Direction `json:"available"`
	Solved    bool             `json:"solved"`
}

// playError answers everything else. Available is filled for wall bumps
// so the client can recover without another round trip.
type playError struct {
	Type      string           `json:"type"`
	Error     string           `json:"error"`
	Available []grid.Direction `json:"available,omitempty"`
}

// HandlePlay serves GET /play as a WebSocket session: generate once,
// replay the capture reel if the request asked for one, then walk the
// cursor move by move until the client hangs up. Wall bumps answer with
// an error message and keep the session alive.
func (s *Server) HandlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// 1. The opening message is a plain maze request.
	_, opening, err := conn.ReadMessage()
	if err != nil {
		return
	}
	g, err := s.generateForPlay(opening)
	if err != nil {
		s.log.WithError(err).Warn("play request rejected")
		conn.WriteJSON(playError{Type: "error", Error: err.Error()})
		return
	}
	s.log.WithFields(logrus.Fields{
		"maze_type": g.MazeType().String(),
		"steps":     len(g.GenerationSteps()),
	}).Info("play session started")

	// 2. Stream the generation reel ahead of the finished maze.
	for i, frame := range g.GenerationSteps() {
		if err = conn.WriteJSON(playStep{Type: "step", Step: i, Grid: frame}); err != nil {
			return
		}
	}
	if err = s.sendMaze(conn, g); err != nil {
		return
	}

	// 3. Ping-pong until the client leaves.
	s.playLoop(conn, g)
}

// generateForPlay mirrors the HTTP pipeline for the socket's opening
// message.
func (s *Server) generateForPlay(opening []byte) (*grid.Grid, error) {
	req, err := request.Parse(opening)
	if err != nil {
		return nil, err
	}
	if req.Seed == 0 {
		req.Seed = s.seedSource()
	}
	return request.Dispatch(req)
}

func (s *Server) sendMaze(conn *websocket.Conn, g *grid.Grid) error {
	active, err := g.ActiveCell()
	if err != nil {
		return err
	}
	available, err := g.AvailableMoves()
	if err != nil {
		return err
	}
	return conn.WriteJSON(playMaze{
		Type:      "maze",
		Grid:      g,
		Active:    active.Coords,
		Available: available,
	})
}

func (s *Server) sendState(conn *websocket.Conn, g *grid.Grid) error {
	active, err := g.ActiveCell()
	if err != nil {
		return err
	}
	available, err := g.AvailableMoves()
	if err != nil {
		return err
	}
	return conn.WriteJSON(playState{
		Type:      "state",
		Active:    active.Coords,
		Available: available,
		Solved:    active.IsGoal,
	})
}

// playLoop drives the cursor. Transport failures end the session;
// rejected moves do not.
func (s *Server) playLoop(conn *websocket.Conn, g *grid.Grid) {
	for {
		var msg playMove
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.WithError(err).Debug("play session dropped")
			}
			return
		}

		direction, err := grid.ParseDirection(msg.Move)
		if err == nil {
			err = g.MakeMove(direction)
		}
		if err != nil {
			available, _ := g.AvailableMoves()
			if werr := conn.WriteJSON(playError{Type: "error", Error: err.Error(), Available: available}); werr != nil {
				return
			}
			continue
		}
		if err = s.sendState(conn, g); err != nil {
			return
		}
	}
}
