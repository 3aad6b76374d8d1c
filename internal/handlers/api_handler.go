package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CodeRangeTooLong is returned when a classify request spans more than the configured limit
const CodeRangeTooLong = "range_too_long"

// APIHandler exposes the range rules over JSON for consumers outside Slack
type APIHandler struct {
	log     *zap.Logger
	maxDays int
}

// NewAPIHandler caps classify requests at maxDays calendar days. Zero means no cap.
func NewAPIHandler(log *zap.Logger, maxDays int) *APIHandler {
	return &APIHandler{log: log.Named("api"), maxDays: maxDays}
}

type ClassifyResponse struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Weekdays []string `json:"weekdays"`
	Weekends []string `json:"weekends"`
}

type DayResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Weekend bool   `json:"weekend"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Classify handles GET /api/v1/classify?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *APIHandler) Classify(w http.ResponseWriter, r *http.Request) {
	start, err := calendar.Parse(r.URL.Query().Get("start"))
	if err != nil {
		h.writeValidationError(w, picker.ErrInvalidDate)
		return
	}
	end, err := calendar.Parse(r.URL.Query().Get("end"))
	if err != nil {
		h.writeValidationError(w, picker.ErrInvalidDate)
		return
	}

	rng := picker.Range{Start: start, End: end}
	if days := rng.Days(); h.maxDays > 0 && days > h.maxDays {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Range covers %d days, the limit is %d!", days, h.maxDays),
			Code:  CodeRangeTooLong,
		})
		return
	}

	classified, err := picker.Classify(rng)
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	n := picker.NewNotification(rng, classified)
	writeJSON(w, http.StatusOK, ClassifyResponse{
		Start:    n.Range[0],
		End:      n.Range[1],
		Weekdays: n.Weekdays,
		Weekends: n.Weekends,
	})
}

// Day handles GET /api/v1/days/{date}
func (h *APIHandler) Day(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.Parse(chi.URLParam(r, "date"))
	if err != nil {
		h.writeValidationError(w, picker.ErrInvalidDate)
		return
	}

	writeJSON(w, http.StatusOK, DayResponse{
		Date:    date.String(),
		Weekday: date.Weekday().String(),
		Weekend: picker.IsWeekend(date),
	})
}

func (h *APIHandler) writeValidationError(w http.ResponseWriter, err error) {
	var verr *picker.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Code: string(verr.Code)})
		return
	}

	h.log.Error("unexpected classification error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
