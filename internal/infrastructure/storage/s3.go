package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hygimar/catalogue-api/pkg/config"
)

var _ FileStore = (*S3Store)(nil)

// S3Store stratégie bucket S3 : la chaîne de credentials par défaut du SDK
// s'applique (rôle d'instance en production).
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string // base publique (CDN ou endpoint bucket)
}

// NewS3Store construit le store S3 depuis la configuration.
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("bucket S3 non configuré")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("charger configuration AWS: %w", err)
	}
	return &S3Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		prefix:  strings.Trim(cfg.S3Prefix, "/"),
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store pousse l'objet sous un nom unique et retourne son URL publique.
func (s *S3Store) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	name := UniqueName(suggestedName)
	key := name
	if s.prefix != "" {
		key = s.prefix + "/" + name
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object S3: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete supprime l'objet correspondant au locator (au mieux, idempotent).
func (s *S3Store) Delete(ctx context.Context, locator string) error {
	key := path.Base(locator)
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object S3: %w", err)
	}
	return nil
}
