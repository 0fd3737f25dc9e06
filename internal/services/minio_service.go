package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MediaStorage stores poster images in a MinIO/S3 bucket. Movies and shows
// only persist the resulting public URL in image_url.
type MediaStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMediaStorage(cfg *config.MinIOConfig, logger *logrus.Logger) (*MediaStorage, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized")

	storage := &MediaStorage{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := storage.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return storage, nil
}

func (s *MediaStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created")
	}

	// Posters are read by the browser directly, so the bucket is public-read.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// PresignPosterUpload returns a presigned PUT URL for the browser to upload a
// poster, plus the public URL the catalog should store as image_url. Object
// names get a uuid suffix so re-uploads never collide.
func (s *MediaStorage) PresignPosterUpload(filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filepath.Base(filename), ext)
	objectPath := fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucket,
		objectPath,
		15*time.Minute,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectPath

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
	}).Info("Generated poster upload URL")

	return presignedURL.String(), publicURL, nil
}

// OwnsURL reports whether an image_url points into this bucket, i.e. was
// uploaded through PresignPosterUpload rather than hotlinked.
func (s *MediaStorage) OwnsURL(imageURL string) bool {
	return imageURL != "" && strings.HasPrefix(imageURL, s.publicURL)
}

// DeletePoster removes a previously uploaded poster. URLs outside the bucket
// are ignored so hotlinked posters are never touched.
func (s *MediaStorage) DeletePoster(imageURL string) error {
	if !s.OwnsURL(imageURL) {
		return nil
	}

	objectPath := strings.TrimPrefix(imageURL, s.publicURL+"/")

	err := s.client.RemoveObject(
		context.Background(),
		s.bucket,
		objectPath,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete poster: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("Poster deleted from MinIO")
	return nil
}
