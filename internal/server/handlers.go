package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crewledger/crewledger/internal/models"
	"github.com/crewledger/crewledger/internal/report"
)

type createTripRequest struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3,uppercase"`
}

type addParticipantsRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required"`
}

type expenseSplitRequest struct {
	ParticipantID string  `json:"participantId" validate:"required"`
	Share         float64 `json:"share"`
	Amount        *int64  `json:"amount,omitempty"`
}

type createExpenseRequest struct {
	Description string                `json:"description" validate:"required"`
	Amount      int64                 `json:"amount" validate:"gte=0"`
	PaidBy      string                `json:"paidBy" validate:"required"`
	Date        int64                 `json:"date"`
	ShareType   models.ShareType      `json:"shareType"`
	Splits      []expenseSplitRequest `json:"splits" validate:"dive"`
}

type createSettlementRequest struct {
	FromParticipantID string `json:"fromParticipantId" validate:"required"`
	ToParticipantID   string `json:"toParticipantId" validate:"required,nefield=FromParticipantID"`
	Amount            int64  `json:"amount" validate:"gt=0"`
	Note              string `json:"note"`
}

// decodeAndValidate parses the JSON body into v and runs struct validation.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return s.validate.Struct(v)
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	trip := &models.Trip{Name: req.Name, Currency: req.Currency}
	if err := s.store.CreateTrip(r.Context(), trip); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.store.GetTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleAddParticipants(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	var req addParticipantsRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := s.store.GetTrip(r.Context(), tripID); err != nil {
		s.writeServiceError(w, err)
		return
	}

	participants := make([]*models.Participant, len(req.Names))
	for i, name := range req.Names {
		participants[i] = &models.Participant{TripID: tripID, Name: name}
	}
	if err := s.store.AddParticipants(r.Context(), tripID, participants); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, participants)
}

func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := s.store.ListParticipants(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if participants == nil {
		participants = []models.Participant{}
	}
	writeJSON(w, http.StatusOK, participants)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	var req createExpenseRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Splits) > 0 && !req.ShareType.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid share type %q", req.ShareType))
		return
	}

	if _, err := s.store.GetTrip(r.Context(), tripID); err != nil {
		s.writeServiceError(w, err)
		return
	}

	expense := &models.Expense{
		TripID:      tripID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		Date:        req.Date,
	}
	splits := make([]models.ExpenseSplit, len(req.Splits))
	for i, split := range req.Splits {
		splits[i] = models.ExpenseSplit{
			ParticipantID: split.ParticipantID,
			ShareType:     req.ShareType,
			Share:         split.Share,
			Amount:        split.Amount,
		}
	}

	if err := s.store.CreateExpense(r.Context(), expense, splits); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.ListExpenses(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteExpense(r.Context(), chi.URLParam(r, "expenseID")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateSettlement(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	var req createSettlementRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := s.store.GetTrip(r.Context(), tripID); err != nil {
		s.writeServiceError(w, err)
		return
	}

	settlement := &models.Settlement{
		TripID:            tripID,
		FromParticipantID: req.FromParticipantID,
		ToParticipantID:   req.ToParticipantID,
		Amount:            req.Amount,
		Note:              req.Note,
	}
	if err := s.store.CreateSettlement(r.Context(), settlement); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, settlement)
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.store.ListSettlements(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if settlements == nil {
		settlements = []models.Settlement{}
	}
	writeJSON(w, http.StatusOK, settlements)
}

func (s *Server) handleDeleteSettlement(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSettlement(r.Context(), chi.URLParam(r, "settlementID")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleComputeSettlement(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.ComputeSettlement(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSettlementPlan(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.ComputeSettlement(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report.Render(summary))); err != nil {
		s.logger.Error("failed to write settlement plan", "error", err)
	}
}
