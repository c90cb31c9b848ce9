package objectstore

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultURLTTL = 15 * time.Minute

type S3Config struct {
	BaseEndpoint string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	URLTTL       time.Duration
}

// S3Store hands out presigned URLs, the client talks to the bucket directly.
type S3Store struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, errors.New("loading aws config error: " + err.Error())
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			// MinIO and other self-hosted endpoints
			o.UsePathStyle = true
		}
	})
	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = defaultURLTTL
	}
	return &S3Store{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

func (s *S3Store) PresignPut(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", errors.New("presigning put error: " + err.Error())
	}
	return req.URL, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", errors.New("presigning get error: " + err.Error())
	}
	return req.URL, nil
}
