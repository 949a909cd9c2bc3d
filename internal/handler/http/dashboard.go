package http

import (
	"net/http"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/hazarhq/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	TopDelays(w http.ResponseWriter, r *http.Request)
	TopCommitment(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	stats, err := h.dashboardService.GetStats(
		r.Context(),
		queryInt(r, "year", now.Year()),
		queryInt(r, "month", int(now.Month())),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// TopDelays implements DashboardHandler.
func (h *dashboardHandlerImpl) TopDelays(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rankings, err := h.dashboardService.TopDelays(
		r.Context(),
		queryInt(r, "year", now.Year()),
		queryInt(r, "month", int(now.Month())),
		queryInt(r, "limit", 0),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rankings)
}

// TopCommitment implements DashboardHandler.
func (h *dashboardHandlerImpl) TopCommitment(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rankings, err := h.dashboardService.TopCommitment(
		r.Context(),
		queryInt(r, "year", now.Year()),
		queryInt(r, "month", int(now.Month())),
		queryInt(r, "limit", 0),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rankings)
}
