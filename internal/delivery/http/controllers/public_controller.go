package controllers

import (
	"log/slog"
	"net/http"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/domain"
)

// SubscribeRequest is the request body for POST /api/newsletter.
type SubscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PublicController serves the unauthenticated newsletter and contact forms.
type PublicController struct {
	Logger     *slog.Logger
	Newsletter domain.NewsletterService
	Contact    domain.ContactService
}

func NewPublicController(logger *slog.Logger, newsletter domain.NewsletterService, contact domain.ContactService) *PublicController {
	return &PublicController{Logger: logger, Newsletter: newsletter, Contact: contact}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Adds the email to the newsletter list and sends a welcome email.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Subscriber"
// @Success 201 {object} controllers.MessageSuccessResponse "Subscribed successfully"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (validation or Email already subscribed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /newsletter [post]
func (c *PublicController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Newsletter.Subscribe(r.Context(), req.Name, req.Email); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, helpers.MessageResponse{Message: "Subscribed successfully"})
}

// Contact godoc
// @Summary Send a contact message
// @Description Relays the message to the team inbox. All fields are required.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Message"
// @Success 200 {object} controllers.MessageSuccessResponse "Message received"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (Please fill all fields)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *PublicController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg := &domain.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := c.Contact.Submit(r.Context(), msg); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Message received"})
}
