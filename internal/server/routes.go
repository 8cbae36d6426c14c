package server

import "net/http"

// registerRoutes wires all HTTP routes to the handler methods.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.healthz)

	// Packets
	mux.HandleFunc("GET /packets", s.listPackets)
	mux.HandleFunc("GET /packets/{key}", s.getPacket)

	// Questions
	mux.HandleFunc("GET /packet/{key}/questions/{index}", s.getQuestion)
	mux.HandleFunc("POST /packet/{key}/questions/{index}/submit", s.submitAnswer)
}
