package client

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MemoryStorage keeps uploads in memory. URLs use the mem:// scheme.
type MemoryStorage struct {
	latency Latency
	bucket  string

	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStorage(latency time.Duration, bucket string) *MemoryStorage {
	return &MemoryStorage{latency: Latency(latency), bucket: bucket, objects: make(map[string][]byte)}
}

func (m *MemoryStorage) UploadFile(ctx context.Context, path string, data []byte) (string, error) {
	if err := m.latency.wait(ctx, 2*time.Second); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.objects[path] = append([]byte(nil), data...)
	m.mu.Unlock()
	return "mem://" + m.bucket + "/" + escapeKey(path), nil
}

func (m *MemoryStorage) DeleteFile(ctx context.Context, path string) error {
	if err := m.latency.wait(ctx, 500*time.Millisecond); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[path]; !ok {
		return ErrNotFound
	}
	delete(m.objects, path)
	return nil
}

// Object returns a stored upload; used by tests and the profile screen.
func (m *MemoryStorage) Object(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[path]
	return b, ok
}

// S3Config is what S3Storage needs to reach a bucket, typically a MinIO
// instance during development.
type S3Config struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Storage uploads files to an S3-compatible bucket.
type S3Storage struct {
	cfg    S3Config
	client s3API
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{cfg: cfg, client: client}, nil
}

func (s *S3Storage) UploadFile(ctx context.Context, path string, data []byte) (string, error) {
	bucket := s.cfg.Bucket
	key := path

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return s.objectURL(key), nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, path string) error {
	bucket := s.cfg.Bucket
	key := path

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (s *S3Storage) objectURL(key string) string {
	base := strings.TrimRight(s.cfg.BaseEndpoint, "/")
	if base == "" {
		base = fmt.Sprintf("https://s3.%s.amazonaws.com", s.cfg.Region)
	}
	return base + "/" + s.cfg.Bucket + "/" + escapeKey(key)
}

// escapeKey escapes each segment of an object key and keeps the slashes.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
