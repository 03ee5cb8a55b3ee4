package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazer/grid"
	"github.com/katalvlaran/mazer/render"
	"github.com/katalvlaran/mazer/request"
)

// HandleHealth reports process liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// HandleGenerate serves POST /maze: one maze request in, one serialized
// grid out. Requests without a seed get a fresh one, so repeating the
// same anonymous request yields different mazes; requests that pin a
// seed stay reproducible.
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	g, err := s.generate(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"maze_type": g.MazeType().String(),
		"width":     g.Width(),
		"height":    g.Height(),
		"seed":      g.Seed(),
	}).Info("maze generated")
	s.writeJSON(w, http.StatusOK, g)
}

// HandleASCII serves POST /maze/ascii: the same request body as /maze,
// answered with a text drawing instead of JSON. Only Orthogonal mazes
// have an ASCII form; the rest are rejected.
func (s *Server) HandleASCII(w http.ResponseWriter, r *http.Request) {
	g, err := s.generate(w, r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	art, err := render.ASCII(g)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, art)
}

// generate reads the request body, seeds it if the caller did not, and
// runs the full parse+dispatch pipeline.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) (*grid.Grid, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", request.ErrSerialization, err)
	}
	req, err := request.Parse(body)
	if err != nil {
		return nil, err
	}
	if req.Seed == 0 {
		req.Seed = s.seedSource()
	}
	return request.Dispatch(req)
}
