package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	internalConfig "github.com/sefazor/ourwedding-backend/internal/config"
)

// s3API is the part of *s3.Client the R2 store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// ErrObjectExists is returned by Put when the key is already taken.
var ErrObjectExists = errors.New("object already exists")

type R2Storage struct {
	client    s3API
	bucket    string
	publicURL string
}

var loadAWSConfig = config.LoadDefaultConfig

func NewR2Storage(cfg *internalConfig.Config) (*R2Storage, error) {
	endpoint := cfg.R2.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID)
	}

	awsCfg, err := loadAWSConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		// MinIO and other local endpoints do not resolve bucket subdomains.
		o.UsePathStyle = cfg.R2.Endpoint != ""
	})

	publicURL := cfg.R2.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimRight(endpoint, "/") + "/" + cfg.R2.Bucket
	}

	return newR2Storage(client, cfg.R2.Bucket, publicURL), nil
}

func newR2Storage(client s3API, bucket, publicURL string) *R2Storage {
	return &R2Storage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *R2Storage) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	if size < 0 {
		n, err := body.Seek(0, io.SeekEnd)
		if err != nil {
			return fmt.Errorf("failed to seek to end: %w", err)
		}
		size = n
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek back to start: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("max-age=3600"),
		IfNoneMatch:   aws.String("*"),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return fmt.Errorf("%s: %w", key, ErrObjectExists)
		}
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

func (s *R2Storage) List(ctx context.Context, prefix string) ([]Object, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	objects := []Object{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list R2 objects: %w", err)
		}
		for _, item := range page.Contents {
			objects = append(objects, Object{
				Key:  aws.ToString(item.Key),
				Size: aws.ToInt64(item.Size),
			})
		}
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (s *R2Storage) PublicURL(key string) string {
	return s.publicURL + "/" + escapeKey(key)
}

// escapeKey escapes each path segment but keeps the separators.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
