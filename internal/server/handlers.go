package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/triage-api/internal/model"
	"github.com/sells-group/triage-api/internal/triage"
)

type analyzeRequest struct {
	Complaints []model.ComplaintInput `json:"complaints"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Raw    string `json:"raw,omitempty"`
}

type healthResponse struct {
	Status              string `json:"status"`
	AnthropicConfigured bool   `json:"anthropic_configured"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "complaints must be a non-empty array"})
		return
	}

	resp, err := s.analyzer.AnalyzeBatch(r.Context(), req.Complaints)
	if err != nil {
		s.writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:              "ok",
		AnthropicConfigured: s.analyzer.Configured(),
	})
}

// writeAnalyzeError maps the triage error taxonomy onto HTTP statuses.
// Unparseable model output gets bad-gateway semantics with a raw excerpt.
func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	var provErr *triage.ProviderError
	var unpErr *triage.UnparseableError

	switch {
	case errors.Is(err, triage.ErrInputInvalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "complaints must be a non-empty array"})
	case errors.Is(err, triage.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "analysis provider is not configured"})
	case errors.As(err, &unpErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "model output could not be parsed",
			Raw:   unpErr.Raw,
		})
	case errors.As(err, &provErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:  "completion provider failure",
			Detail: provErr.Err.Error(),
		})
	default:
		zap.L().Error("analyze: unexpected failure", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}
