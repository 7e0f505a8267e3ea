package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/MKhiriev/go-landing-builder/internal/validators"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner is the subset of *s3.PresignClient used for asset uploads.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type assetService struct {
	presigner   Presigner
	bucket      string
	ttl         time.Duration
	validator   validators.Validator
	idGenerator IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAssetService builds an S3 presign client from cfg. With no bucket
// configured the returned service reports ErrAssetStorageNotConfigured.
func NewAssetService(ctx context.Context, cfg config.S3, logger *logger.Logger) (AssetService, error) {
	if cfg.Bucket == "" {
		logger.Info().Msg("asset bucket is not configured, uploads are disabled")
		return disabledAssetService{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newAssetService(s3.NewPresignClient(client), cfg.Bucket, cfg.PresignTTL, logger), nil
}

func newAssetService(presigner Presigner, bucket string, ttl time.Duration, logger *logger.Logger) *assetService {
	return &assetService{
		presigner:   presigner,
		bucket:      bucket,
		ttl:         ttl,
		validator:   validators.NewPageValidator(),
		idGenerator: utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Presign returns a one-shot upload URL and a download URL for a new object
// under the owner's prefix.
func (a *assetService) Presign(ctx context.Context, ownerID int64, req models.PresignRequest) (models.PresignResponse, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.PresignResponse{}, invalid(err)
	}

	now := a.now()
	key := assetKey(ownerID, now, a.idGenerator.Generate(), req.FileName)

	put, err := a.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(a.ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("presign put failed")
		return models.PresignResponse{}, fmt.Errorf("%w: %w", ErrPresigningFailed, err)
	}

	get, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(a.ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("presign get failed")
		return models.PresignResponse{}, fmt.Errorf("%w: %w", ErrPresigningFailed, err)
	}

	return models.PresignResponse{
		Key:         key,
		UploadURL:   put.URL,
		DownloadURL: get.URL,
		ExpiresAt:   now.Add(a.ttl),
	}, nil
}

// assetKey builds "pages/<owner>/<yyyy>/<mm>/<id><ext>" keeping only a
// lowercase alphanumeric extension of the original name.
func assetKey(ownerID int64, now time.Time, id, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if len(ext) < 2 || len(ext) > 8 || strings.ContainsFunc(ext[min(1, len(ext)):], func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	}) {
		ext = ""
	}
	return fmt.Sprintf("pages/%d/%04d/%02d/%s%s", ownerID, now.Year(), now.Month(), id, ext)
}

type disabledAssetService struct{}

func (disabledAssetService) Presign(context.Context, int64, models.PresignRequest) (models.PresignResponse, error) {
	return models.PresignResponse{}, ErrAssetStorageNotConfigured
}
