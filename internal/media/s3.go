// internal/media/s3.go
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/models"
)

// S3Uploader stores media in an S3 bucket, optionally served through CloudFront.
type S3Uploader struct {
	client s3iface.S3API
	cfg    config.AWSConfig
	now    func() time.Time
}

func NewS3Uploader(cfg config.AWSConfig) (*S3Uploader, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewS3UploaderWithClient(s3.New(sess), cfg), nil
}

func NewS3UploaderWithClient(client s3iface.S3API, cfg config.AWSConfig) *S3Uploader {
	return &S3Uploader{client: client, cfg: cfg, now: time.Now}
}

func (u *S3Uploader) Upload(ctx context.Context, file File, folder string) (models.MediaItem, error) {
	data, err := io.ReadAll(file.Reader)
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("%w: failed to read %s: %v", ErrUploadFailed, file.Name, err)
	}

	key := u.objectKey(file.Name, folder)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return models.MediaItem{
		PublicID:     key,
		SecureURL:    u.objectURL(key),
		ResourceType: ResourceKind(file.ContentType),
		Format:       strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), "."),
	}, nil
}

func (u *S3Uploader) objectKey(originalName, folder string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s_%s%s", u.now().Format("20060102"), uuid.New().String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", strings.Trim(folder, "/"), filename)
	}
	return filename
}

func (u *S3Uploader) objectURL(key string) string {
	if u.cfg.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(u.cfg.CloudFrontURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.S3Bucket, u.cfg.Region, key)
}
