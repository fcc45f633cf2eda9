package controllers

import (
	"log/slog"
	"net/http"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/domain"
)

// RecordAnalyticsRequest is the request body for POST /api/analytics.
type RecordAnalyticsRequest struct {
	EventID          string `json:"event_id"`
	ParticipantCount *int   `json:"participant_count"`
}

// Validate implements Validator.
func (a RecordAnalyticsRequest) Validate() []string {
	var errs []string
	if a.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if a.ParticipantCount == nil {
		errs = append(errs, "participant_count is required")
	}
	return errs
}

// AnalyticsSuccessResponse is the success response envelope for POST /api/analytics (201).
type AnalyticsSuccessResponse struct {
	Data  *domain.Analytics `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AnalyticsListSuccessResponse is the success response envelope for GET /api/analytics (200).
type AnalyticsListSuccessResponse struct {
	Data  []*domain.Analytics `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SummarySuccessResponse is the success response envelope for GET /api/analytics/summary (200).
type SummarySuccessResponse struct {
	Data  *domain.DashboardSummary `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List analytics records
// @Description Every participant-count record with its event name. Public.
// @Tags analytics
// @Produce json
// @Success 200 {object} controllers.AnalyticsListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /analytics [get]
func (c *AnalyticsController) List(w http.ResponseWriter, r *http.Request) {
	records, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

// Record godoc
// @Summary Record participant count
// @Description Admin only. Appends a participant-count record for an event.
// @Tags analytics
// @Accept json
// @Produce json
// @Security AuthToken
// @Param body body RecordAnalyticsRequest true "Analytics data"
// @Success 201 {object} controllers.AnalyticsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /analytics [post]
func (c *AnalyticsController) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordAnalyticsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	record, err := c.Service.Record(r.Context(), req.EventID, *req.ParticipantCount)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, record)
}

// Summary godoc
// @Summary Dashboard statistics
// @Description Admin only. Event totals by type and category, users, registrations and participants.
// @Tags analytics
// @Produce json
// @Security AuthToken
// @Success 200 {object} controllers.SummarySuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /analytics/summary [get]
func (c *AnalyticsController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Service.Summary(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}
