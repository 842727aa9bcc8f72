package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/abdul8704/Cookify-server/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageService stores recipe and inventory images in S3 and hands out
// presigned read URLs.
type ImageService struct {
	s3 *config.S3Config
}

func NewImageService(s3cfg *config.S3Config) *ImageService {
	return &ImageService{s3: s3cfg}
}

// Upload stores the file under a namespaced random key and returns the key.
func (s *ImageService) Upload(ctx context.Context, prefix string, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrInvalidInput, ext)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return key, nil
}

// URL returns a presigned GET URL for a stored image, valid for one hour.
func (s *ImageService) URL(ctx context.Context, key string) (string, error) {
	return s.s3.GeneratePresignedURL(ctx, key, time.Hour)
}
