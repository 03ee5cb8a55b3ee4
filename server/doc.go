// Package server exposes maze generation over HTTP and WebSocket.
//
// What & Why:
//
//	The library's request package already speaks JSON; this package puts
//	that surface on the network. Three HTTP handlers cover generation
//	(POST /maze), text rendering (POST /maze/ascii) and liveness
//	(GET /health), and one WebSocket handler (GET /play) turns a maze
//	into an interactive session: the generation reel streams frame by
//	frame, then the client walks the cursor with move messages.
//
//	Requests that pin a seed stay fully reproducible; requests without
//	one are seeded per call so anonymous clients never see the same maze
//	twice.
//
// Error Conditions:
//
//	Every rejected HTTP request answers 400 with {"error": "..."} where
//	the text carries the library's sentinel message (malformed JSON,
//	unknown algorithm, out-of-range coordinates, tessellations without
//	an ASCII form). The /play socket answers bad moves in-band with an
//	error message and the currently available directions, and only
//	transport failures end the session.
//
// GoDoc Summary:
//
//	HTTP/WebSocket facade: generate, render and play mazes over the wire.
package server
