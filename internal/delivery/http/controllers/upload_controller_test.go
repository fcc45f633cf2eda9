package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/domain"
)

type fakeUploadService struct {
	err          error
	lastFilename string
	lastBody     []byte
}

func (f *fakeUploadService) SaveImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	f.lastFilename = filename
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.lastBody = b
	if f.err != nil {
		return "", f.err
	}
	return "/uploads/abc.png", nil
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadController_Upload(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	fake := &fakeUploadService{}
	ctrl := NewUploadController(testLogger(), fake, 1<<20)
	rr := httptest.NewRecorder()

	ctrl.Upload(rr, multipartRequest(t, "picture", "poster.png", png))

	require.Equal(t, http.StatusCreated, rr.Code)
	var data UploadResponse
	decodeEnvelope(t, rr, &data)
	assert.Equal(t, "/uploads/abc.png", data.Path)
	assert.Equal(t, "poster.png", fake.lastFilename)
	assert.Equal(t, png, fake.lastBody)
}

func TestUploadController_Upload_errors(t *testing.T) {
	tests := []struct {
		name     string
		req      func(t *testing.T) *http.Request
		maxBytes int64
		fakeErr  error
		wantMsg  string
	}{
		{
			name:     "missing file",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "", "", nil) },
			maxBytes: 1 << 20,
			wantMsg:  "picture file is required",
		},
		{
			name:     "too large",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "picture", "big.png", bytes.Repeat([]byte("a"), 4096)) },
			maxBytes: 512,
			wantMsg:  "file too large",
		},
		{
			name:     "not an image",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "picture", "notes.txt", []byte("hello")) },
			maxBytes: 1 << 20,
			fakeErr:  domain.NewValidationError("Only images are allowed (jpeg, jpg, png, gif)"),
			wantMsg:  "Only images are allowed (jpeg, jpg, png, gif)",
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/uploads", bytes.NewReader([]byte(`{}`)))
			},
			maxBytes: 1 << 20,
			wantMsg:  "invalid multipart form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewUploadController(testLogger(), &fakeUploadService{err: tt.fakeErr}, tt.maxBytes)
			rr := httptest.NewRecorder()

			ctrl.Upload(rr, tt.req(t))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
			assert.Equal(t, tt.wantMsg, envelope.Error.Message)
		})
	}
}
