package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/errs"
)

// MediaStorage is the media host boundary. UploadImage returns the canonical
// serving URL plus an opaque asset identifier; the identifier is only
// meaningful to the host.
type MediaStorage interface {
	UploadImage(ctx context.Context, folder string, fileName string, file io.Reader, size int64) (string, string, error)
}

type MediaClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMediaClient(cfg *config.Config) (*MediaClient, error) {
	client, err := minio.New(cfg.Media.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media.AccessKey, cfg.Media.SecretKey, ""),
		Secure: cfg.Media.UseSSL,
		Region: cfg.Media.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating media client: %w", err)
	}

	return &MediaClient{client: client, cfg: cfg}, nil
}

func (m *MediaClient) UploadImage(ctx context.Context, folder string, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.Media.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("error uploading %s to media host: %v: %w", fileName, err, errs.ErrUpload)
	}

	scheme := "http"
	if m.cfg.Media.UseSSL {
		scheme = "https"
	}
	imageURL := fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.Media.Endpoint, m.cfg.Media.BucketName, objectName)

	return imageURL, objectName, nil
}
