// internal/media/cloudinary.go
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/models"
)

// CloudinaryUploader posts unsigned uploads to a Cloudinary-compatible API.
type CloudinaryUploader struct {
	client       *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

type cloudinaryResponse struct {
	PublicID     string `json:"public_id"`
	SecureURL    string `json:"secure_url"`
	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`
}

func NewCloudinaryUploader(cfg config.MediaConfig, client *http.Client) *CloudinaryUploader {
	if client == nil {
		client = http.DefaultClient
	}
	return &CloudinaryUploader{
		client:       client,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
	}
}

// Endpoint returns the upload URL for a resource kind.
func (u *CloudinaryUploader) Endpoint(kind models.MediaResourceType) string {
	return fmt.Sprintf("%s/%s/%s/upload", u.baseURL, u.cloudName, kind)
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file File, folder string) (models.MediaItem, error) {
	kind := ResourceKind(file.ContentType)

	body, contentType := u.multipartBody(file, folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint(kind), body)
	if err != nil {
		body.Close()
		return models.MediaItem{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"file":   file.Name,
			"folder": folder,
		}).Warn("Media host rejected upload")
		return models.MediaItem{}, fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.MediaItem{}, fmt.Errorf("%w: invalid response: %v", ErrUploadFailed, err)
	}

	resourceType := models.MediaResourceType(out.ResourceType)
	if resourceType != models.MediaResourceVideo {
		resourceType = models.MediaResourceImage
	}
	return models.MediaItem{
		PublicID:     out.PublicID,
		SecureURL:    out.SecureURL,
		ResourceType: resourceType,
		Format:       out.Format,
	}, nil
}

// multipartBody streams the form so large videos are never held in memory.
func (u *CloudinaryUploader) multipartBody(file File, folder string) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := func() error {
			part, err := mw.CreateFormFile("file", file.Name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, file.Reader); err != nil {
				return err
			}
			if err := mw.WriteField("upload_preset", u.uploadPreset); err != nil {
				return err
			}
			if err := mw.WriteField("folder", folder); err != nil {
				return err
			}
			return mw.Close()
		}()
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}
