// Package photos implements the third-party image host collaborator.
package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"subletswipe/config"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/service"

	"github.com/pkg/errors"
)

type cloudinaryService struct {
	uploadURL    string
	uploadPreset string
	folder       string
	deleteClient deleteClient
	httpClient   *http.Client
	logger       *slog.Logger
}

// deleteClient is the backend call that removes hosted photos; deletion goes
// through our own API because it needs the signed Cloudinary credentials.
type deleteClient interface {
	Post(ctx context.Context, path string, body, out any) error
}

// NewPhotoService creates the Cloudinary unsigned-upload adapter.
func NewPhotoService(cfg *config.Config, deleter deleteClient, logger *slog.Logger) service.PhotoService {
	host := cfg.PhotoHost
	if host == nil {
		host = &config.PhotoHostConfig{}
	}

	return &cloudinaryService{
		uploadURL:    host.UploadURL,
		uploadPreset: host.UploadPreset,
		folder:       host.Folder,
		deleteClient: deleter,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Upload pushes one image via the unsigned upload preset.
func (s *cloudinaryService) Upload(ctx context.Context, data []byte, filename string) (entity.Photo, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return entity.Photo{}, errors.WithStack(err)
	}
	if s.folder != "" {
		if err := writer.WriteField("folder", s.folder); err != nil {
			return entity.Photo{}, errors.WithStack(err)
		}
	}

	part, err := writer.CreateFormFile("file", path.Base(filename))
	if err != nil {
		return entity.Photo{}, errors.WithStack(err)
	}
	if _, err := part.Write(data); err != nil {
		return entity.Photo{}, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return entity.Photo{}, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return entity.Photo{}, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return entity.Photo{}, errors.Wrap(err, "upload photo")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)

		return entity.Photo{}, errors.Errorf("photo host returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var uploaded struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return entity.Photo{}, errors.Wrap(err, "decode upload response")
	}

	url := uploaded.SecureURL
	if url == "" {
		url = uploaded.URL
	}

	return entity.Photo{URL: url}, nil
}

// Delete removes previously uploaded photos by URL via the backend. The call
// is fire-and-forget in spirit: callers log failures and move on.
func (s *cloudinaryService) Delete(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	body := struct {
		URLs []string `json:"urls"`
	}{URLs: urls}

	return s.deleteClient.Post(ctx, "/photos/delete", body, nil)
}
