package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hazarhq/attendance-backend-go/internal/domain/auth"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"github.com/hazarhq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hazarhq/attendance-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

// GetMy implements SummaryHandler.
func (h *summaryHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	resp, err := h.summaryService.GetMonthly(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Recalculate implements SummaryHandler. Admin-only, targets any employee.
func (h *summaryHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	result, err := h.summaryService.Recalculate(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
