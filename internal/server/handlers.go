package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/valpere/codecomment/internal"
	"github.com/valpere/codecomment/internal/generator"
	"github.com/valpere/codecomment/internal/prompt"
)

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request) {
	var req internal.CommentRequest
	// A body that does not decode counts as missing input.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" || req.Language == "" {
		writeJSON(w, http.StatusBadRequest, internal.ErrorResponse{Error: internal.MsgMissingInput})
		return
	}

	commented, err := s.gen.Generate(r.Context(), prompt.Build(req.Code, req.Language))
	if err != nil {
		s.logger.Error("Comment generation failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("language", req.Language),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, internal.ErrorResponse{Error: internal.MsgGenerationFailed})
		return
	}

	writeJSON(w, http.StatusOK, internal.CommentResponse{CommentedCode: commented})
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	pinger, ok := s.gen.(generator.Pinger)
	if !ok {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}

	if err := pinger.Ping(r.Context()); err != nil {
		s.logger.Warn("Backend unavailable",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
