package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// SpacesService stores rendered profile cards in a DigitalOcean Spaces
// bucket (S3 compatible).
type SpacesService struct {
	client *s3.Client
	bucket string
	region string
	root   string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, root string) *SpacesService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	client := s3.NewFromConfig(cfg)

	return &SpacesService{
		client: client,
		bucket: bucket,
		region: region,
		root:   strings.TrimPrefix(root, "/"),
	}
}

func (s *SpacesService) profileKey(discordID string) string {
	return fmt.Sprintf("%s/profiles/%s.png", s.root, discordID)
}

// UploadProfileImage stores a rendered profile card and returns its
// public URL.
func (s *SpacesService) UploadProfileImage(ctx context.Context, discordID string, image []byte) (string, error) {
	key := s.profileKey(discordID)
	contentType := "image/png"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(image),
		ContentType: &contentType,
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key), nil
}

// DeleteProfileImage removes a stored profile card.
func (s *SpacesService) DeleteProfileImage(ctx context.Context, discordID string) error {
	key := s.profileKey(discordID)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete profile image (%s): %w", key, err)
	}
	return nil
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
