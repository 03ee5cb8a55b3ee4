package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazer/grid"
	"github.com/katalvlaran/mazer/server"
)

// quiet builds a Server whose logging stays out of the test stream.
func quiet() *server.Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return server.New(logger)
}

// post runs one handler call with the given request body.
func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/maze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleHealth_ReportsOK(t *testing.T) {
	rec := httptest.NewRecorder()
	quiet().HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleGenerate_BuildsAPerfectMaze(t *testing.T) {
	rec := post(t, quiet().HandleGenerate,
		`{"maze_type":"Orthogonal","width":5,"height":4,"algorithm":"RecursiveBacktracker","seed":9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var g grid.Grid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 19, g.EdgeCount())

	perfect, err := g.IsPerfectMaze()
	require.NoError(t, err)
	assert.True(t, perfect)
}

func TestHandleGenerate_PinnedSeedIsReproducible(t *testing.T) {
	s := quiet()
	body := `{"maze_type":"Sigma","width":6,"height":6,"algorithm":"Prims","seed":21}`

	first := post(t, s.HandleGenerate, body)
	second := post(t, s.HandleGenerate, body)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleGenerate_RejectsBadRequests(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "malformed JSON",
			body:    `{"maze_type":`,
			message: "serialization",
		},
		{
			name:    "unknown algorithm",
			body:    `{"maze_type":"Orthogonal","width":4,"height":4,"algorithm":"Spelunker"}`,
			message: "unknown algorithm",
		},
		{
			name:    "unsupported pairing",
			body:    `{"maze_type":"Delta","width":6,"height":6,"algorithm":"Ellers"}`,
			message: "unavailable for maze type",
		},
		{
			name:    "zero width",
			body:    `{"maze_type":"Orthogonal","width":0,"height":4,"algorithm":"Prims"}`,
			message: "out of bounds",
		},
	}

	s := quiet()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s.HandleGenerate, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var got struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Contains(t, got.Error, tc.message)
		})
	}
}

func TestHandleASCII_DrawsOrthogonal(t *testing.T) {
	rec := post(t, quiet().HandleASCII,
		`{"maze_type":"Orthogonal","width":3,"height":3,"algorithm":"BinaryTree","seed":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "+---+---+---+\n"))
	// One border line plus two lines per row, every one newline-terminated.
	assert.Equal(t, 7, strings.Count(body, "\n"))
}

func TestHandleASCII_RejectsOtherTessellations(t *testing.T) {
	rec := post(t, quiet().HandleASCII,
		`{"maze_type":"Sigma","width":4,"height":4,"algorithm":"Prims","seed":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Error, "unsupported")
}

// playReply covers every message shape the /play socket emits.
type playReply struct {
	Type      string           `json:"type"`
	Step      int              `json:"step"`
	Active    grid.Coordinates `json:"active"`
	Available []string         `json:"available"`
	Solved    bool             `json:"solved"`
	Error     string           `json:"error"`
}

// dialPlay spins the handler up on a test server and opens a socket to it.
func dialPlay(t *testing.T) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(quiet().HandlePlay))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandlePlay_StreamsRevealThenMoves(t *testing.T) {
	conn := dialPlay(t)

	opening := `{"maze_type":"Orthogonal","width":4,"height":4,` +
		`"algorithm":"RecursiveBacktracker","seed":3,"capture_steps":true}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(opening)))

	// 1. One reveal frame per carved wall precedes the finished maze:
	//    the carver links one new cell per step on a 4x4 lattice.
	var msg playReply
	steps := 0
	for {
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type != "step" {
			break
		}
		assert.Equal(t, steps, msg.Step)
		steps++
	}
	assert.Equal(t, 15, steps)

	require.Equal(t, "maze", msg.Type)
	assert.Equal(t, grid.Coordinates{X: 0, Y: 0}, msg.Active)
	require.NotEmpty(t, msg.Available)
	for _, move := range msg.Available {
		assert.Contains(t, []string{"Right", "Down"}, move)
	}

	// 2. Up is never open from the origin corner; the session survives.
	require.NoError(t, conn.WriteJSON(map[string]string{"move": "Up"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "Up is not open")
	require.NotEmpty(t, msg.Available)

	// 3. A legal move relocates the cursor and its opposite walks back.
	forward := msg.Available[0]
	require.NoError(t, conn.WriteJSON(map[string]string{"move": forward}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "state", msg.Type)
	assert.NotEqual(t, grid.Coordinates{X: 0, Y: 0}, msg.Active)
	assert.False(t, msg.Solved)

	direction, err := grid.ParseDirection(forward)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]string{"move": direction.Opposite().String()}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "state", msg.Type)
	assert.Equal(t, grid.Coordinates{X: 0, Y: 0}, msg.Active)
}

func TestHandlePlay_SolvesTheCorridor(t *testing.T) {
	conn := dialPlay(t)

	opening := `{"maze_type":"Orthogonal","width":2,"height":1,` +
		`"algorithm":"RecursiveBacktracker","seed":8}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(opening)))

	// Without capture_steps, the finished maze is the first message.
	var msg playReply
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "maze", msg.Type)
	assert.Equal(t, []string{"Right"}, msg.Available)

	require.NoError(t, conn.WriteJSON(map[string]string{"move": "Right"}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "state", msg.Type)
	assert.Equal(t, grid.Coordinates{X: 1, Y: 0}, msg.Active)
	assert.True(t, msg.Solved)
}

func TestHandlePlay_RejectsBadOpening(t *testing.T) {
	conn := dialPlay(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"maze_type":`)))

	var msg playReply
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "serialization")

	// The session ends after a rejected opening.
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHandlePlay_UnknownMoveNameStaysInBand(t *testing.T) {
	conn := dialPlay(t)

	opening := `{"maze_type":"Orthogonal","width":2,"height":2,` +
		`"algorithm":"Prims","seed":4}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(opening)))

	var msg playReply
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "maze", msg.Type)

	require.NoError(t, conn.WriteJSON(map[string]string{"move": "Sideways"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "invalid direction")
	assert.NotEmpty(t, msg.Available)
}
