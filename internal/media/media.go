// internal/media/media.go
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/models"
)

var ErrUploadFailed = errors.New("media upload failed")

// Folder labels on the media host.
const (
	AgentFolder = "unihub/agents"
)

// PropertyFolder is the folder for a property's media. Properties that do not
// exist yet upload into "new".
func PropertyFolder(propertyID string) string {
	if propertyID == "" {
		propertyID = "new"
	}
	return "unihub/properties/" + propertyID
}

// File is one file to upload.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// Uploader sends a file to the media host and describes the stored asset.
// The returned item has Order zero; callers position it.
type Uploader interface {
	Upload(ctx context.Context, file File, folder string) (models.MediaItem, error)
}

// ResourceKind classifies a declared content type.
func ResourceKind(contentType string) models.MediaResourceType {
	if strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return models.MediaResourceVideo
	}
	return models.MediaResourceImage
}

// New builds the uploader selected by configuration.
func New(cfg *config.Config) (Uploader, error) {
	switch cfg.Media.Provider {
	case "cloudinary":
		client := &http.Client{Timeout: time.Duration(cfg.Media.Timeout) * time.Second}
		return NewCloudinaryUploader(cfg.Media, client), nil
	case "s3":
		return NewS3Uploader(cfg.AWS)
	default:
		return nil, fmt.Errorf("unsupported media provider %q", cfg.Media.Provider)
	}
}

// UploadAll uploads every file concurrently. Results keep the input order.
// When any upload fails the whole batch fails and no items are returned.
func UploadAll(ctx context.Context, u Uploader, files []File, folder string) ([]models.MediaItem, error) {
	results := make([]models.MediaItem, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			item, err := u.Upload(gctx, f, folder)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// OpenAll opens multipart file headers for upload. The returned closer
// releases every opened file.
func OpenAll(headers []*multipart.FileHeader) ([]File, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("failed to open %s: %w", h.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, File{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	return files, closeAll, nil
}
