package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"eventsync/internal/domain"
)

var allowedImageExts = map[string]bool{".jpeg": true, ".jpg": true, ".png": true, ".gif": true}

var allowedImageTypes = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true}

const errImagesOnly = "Only images are allowed (jpeg, jpg, png, gif)"

type uploadService struct {
	store domain.ImageStore
}

// NewUploadService returns an UploadService writing accepted images to store.
func NewUploadService(store domain.ImageStore) domain.UploadService {
	return &uploadService{store: store}
}

// SaveImage checks both the file extension and the sniffed content type before storing.
func (s *uploadService) SaveImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", domain.NewValidationError(errImagesOnly)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", domain.NewValidationError("file is empty")
	}
	if !allowedImageTypes[http.DetectContentType(head)] {
		return "", domain.NewValidationError(errImagesOnly)
	}

	path, err := s.store.Save(ctx, ext, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return path, nil
}
