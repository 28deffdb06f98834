// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Banks
	mux.HandleFunc("POST /banks", h.createBank)
	mux.HandleFunc("GET /banks", h.listBanks)
	mux.HandleFunc("GET /banks/{bankID}", h.getBank)
	mux.HandleFunc("DELETE /banks/{bankID}", h.deleteBank)
	mux.HandleFunc("POST /banks/{bankID}/questions", h.addQuestion)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/skip", h.skipQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/back", h.previousQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/exit", h.exitSession)
	mux.HandleFunc("POST /sessions/{sessionID}/leave", h.leaveSession)
	mux.HandleFunc("GET /sessions/{sessionID}/events", h.sessionEvents)
	mux.HandleFunc("GET /sessions/{sessionID}/results", h.sessionResults)
}
