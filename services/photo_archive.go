package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/r-4-e/SwasthAI/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoArchive stores analyzed meal photos in S3 when a bucket is
// configured. A nil archive is valid and archives nothing.
type PhotoArchive struct {
	client *s3.Client
	bucket string
}

// NewPhotoArchive returns nil (archive disabled) when S3_BUCKET is unset.
func NewPhotoArchive(ctx context.Context) (*PhotoArchive, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}

	return &PhotoArchive{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Archive uploads a captured meal photo. Failures are for the caller to
// log; archiving must never fail an analysis request.
func (p *PhotoArchive) Archive(ctx context.Context, userID, imageBase64 string) (string, error) {
	if p == nil {
		return "", nil
	}

	data, contentType, err := utils.DecodeImage(imageBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("meal-photos/%s-%d.jpg", userID, time.Now().UnixNano())
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}
