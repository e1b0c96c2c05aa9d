package keystore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// maxSecretSize bounds how much of an object is read as a secret phrase.
const maxSecretSize = 4096

// S3Source reads the secret phrase from an object in Amazon S3 or a compatible service.
type S3Source struct {
	client     *s3.S3
	bucketName string
	key        string
	log        *slog.Logger
}

// NewS3Source creates a new S3 object source.
// If accessKey and secretKey are provided they are used as static credentials,
// otherwise the default AWS credential chain applies.
// A custom endpoint switches the client to path-style addressing.
func NewS3Source(bucketName, key, region, endpoint, accessKey, secretKey string, log *slog.Logger) (*S3Source, error) {
	cfg := aws.Config{
		Region: aws.String(region),
	}

	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Source{
		client:     s3.New(sess),
		bucketName: bucketName,
		key:        key,
		log:        log,
	}, nil
}

// Fetch downloads the object and returns its trimmed content.
func (s *S3Source) Fetch(ctx context.Context) (string, error) {
	start := time.Now()

	result, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return "", fmt.Errorf("%w: s3://%s/%s", interfaces.ErrSecretNotFound, s.bucketName, s.key)
		}
		s.log.Error("Failed to read mnemonic from S3",
			slog.String("bucket", s.bucketName),
			slog.String("key", s.key),
			"err", err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrSourceUnavailable, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(io.LimitReader(result.Body, maxSecretSize))
	if err != nil {
		return "", fmt.Errorf("%w: %v", interfaces.ErrSourceUnavailable, err)
	}

	phrase := strings.TrimSpace(string(data))
	if phrase == "" {
		return "", fmt.Errorf("%w: s3://%s/%s is empty", interfaces.ErrSecretNotFound, s.bucketName, s.key)
	}

	s.log.Info("Fetched mnemonic from S3",
		slog.String("bucket", s.bucketName),
		slog.Duration("duration", time.Since(start)))

	return phrase, nil
}

// Name returns a unique identifier for this source.
func (s *S3Source) Name() string {
	return fmt.Sprintf("s3-%s-%s", s.bucketName, s.key)
}
