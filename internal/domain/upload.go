package domain

import (
	"context"
	"io"
)

// ImageStore persists uploaded images and returns their public path.
type ImageStore interface {
	Save(ctx context.Context, ext string, r io.Reader) (publicPath string, err error)
}

// UploadService validates and stores event pictures.
type UploadService interface {
	SaveImage(ctx context.Context, filename string, r io.Reader) (publicPath string, err error)
}
