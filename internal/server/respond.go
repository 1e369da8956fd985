package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crewledger/crewledger/internal/settlement"
	"github.com/crewledger/crewledger/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeServiceError maps errors from the store and the settlement engine
// onto HTTP statuses: missing records are 404, data the engine rejects is
// 422, everything else is an internal error.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var invalidParticipants *settlement.InvalidParticipantsError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.As(err, &invalidParticipants),
		errors.Is(err, settlement.ErrShareTypeMismatch),
		errors.Is(err, settlement.ErrUnknownShareType),
		errors.Is(err, settlement.ErrPercentageSumInvalid),
		errors.Is(err, settlement.ErrWeightTotalInvalid),
		errors.Is(err, settlement.ErrMissingAmount),
		errors.Is(err, settlement.ErrAmountSumMismatch):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
