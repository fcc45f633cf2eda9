package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/domain"
)

// uploadFormField is the multipart field carrying the image.
const uploadFormField = "picture"

// UploadResponse is the data payload of POST /api/uploads.
type UploadResponse struct {
	Path string `json:"path"`
}

// UploadSuccessResponse is the success response envelope for POST /api/uploads (201).
type UploadSuccessResponse struct {
	Data  UploadResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type UploadController struct {
	Logger   *slog.Logger
	Service  domain.UploadService
	MaxBytes int64
}

func NewUploadController(logger *slog.Logger, svc domain.UploadService, maxBytes int64) *UploadController {
	return &UploadController{Logger: logger, Service: svc, MaxBytes: maxBytes}
}

// Upload godoc
// @Summary Upload an event picture
// @Description Admin only. Multipart field "picture"; jpeg, jpg, png or gif up to the configured size. Returns the public path to use as an event picture.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security AuthToken
// @Param picture formData file true "Image file"
// @Success 201 {object} controllers.UploadSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /uploads [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxBytes)
	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file too large")
		case errors.Is(err, http.ErrMissingFile):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "picture file is required")
		default:
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		}
		return
	}
	defer file.Close()

	path, err := c.Service.SaveImage(r.Context(), header.Filename, file)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, UploadResponse{Path: path})
}
