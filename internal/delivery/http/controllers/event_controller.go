package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/delivery/http/middleware"
	"eventsync/internal/domain"
)

// EventRequest is the request body for POST /api/events and PUT /api/events/{id}.
// On update every field is optional and empty values keep the current one.
type EventRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	StartDate   *Date  `json:"start_date" swaggertype:"string" example:"2025-04-10"`
	EndDate     *Date  `json:"end_date" swaggertype:"string" example:"2025-04-12"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Picture     string `json:"picture"`
	ApplyLink   string `json:"apply_link"`
}

func (e EventRequest) patch() domain.EventPatch {
	return domain.EventPatch{
		Name:        e.Name,
		Type:        e.Type,
		Category:    e.Category,
		StartDate:   e.StartDate.Ptr(),
		EndDate:     e.EndDate.Ptr(),
		Description: e.Description,
		Location:    e.Location,
		Duration:    e.Duration,
		Picture:     e.Picture,
		ApplyLink:   e.ApplyLink,
	}
}

// EventSuccessResponse is the success response envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListResponse is the data payload of GET /api/events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventListSuccessResponse is the success response envelope for GET /api/events (200).
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MessageSuccessResponse is the success envelope for endpoints that only confirm an action.
type MessageSuccessResponse struct {
	Data  helpers.MessageResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// eventIDFromPath reads {id} and rejects values that are not UUIDs with 400.
func eventIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return "", false
	}
	return id, true
}

// List godoc
// @Summary List events
// @Description Paginated events ordered by start date. Optional filters: type (tech, non-tech) and category.
// @Tags events
// @Produce json
// @Security AuthToken
// @Param type query string false "Event type"
// @Param category query string false "Event category"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{Type: q.Get("type"), Category: q.Get("category")}
	page := helpers.ParsePagination(r)
	events, total, err := c.Service.List(r.Context(), filter, page)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(page, total),
	})
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security AuthToken
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Description Admin only. name, type, category, start_date and end_date are required. The caller becomes the creator.
// @Tags events
// @Accept json
// @Produce json
// @Security AuthToken
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event := &domain.Event{CreatedBy: userID}
	req.patch().Apply(event)
	if err := c.Service.Create(r.Context(), event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Admin only. Omitted or empty fields keep their current value; the merged event is validated like a new one.
// @Tags events
// @Accept json
// @Produce json
// @Security AuthToken
// @Param id path string true "Event ID (UUID)"
// @Param event body EventRequest true "Fields to update"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, req.patch())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security AuthToken
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.MessageSuccessResponse "Event deleted successfully"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Event deleted successfully"})
}

// Register godoc
// @Summary Register for an event
// @Description Adds the event to the caller's registered events. Repeating the call is harmless: 201 on the first registration, 200 afterwards.
// @Tags events
// @Produce json
// @Security AuthToken
// @Param id path string true "Event ID (UUID)"
// @Success 201 {object} controllers.MessageSuccessResponse
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id}/register [post]
func (c *EventController) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	created, err := c.Service.Register(r.Context(), id, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if !created {
		helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Already registered for this event"})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, helpers.MessageResponse{Message: "Registered for event"})
}

// Unregister godoc
// @Summary Cancel an event registration
// @Tags events
// @Produce json
// @Security AuthToken
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id}/register [delete]
func (c *EventController) Unregister(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Unregister(r.Context(), id, userID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Unregistered from event"})
}
