package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectStore stores opaque blobs by key and hands out retrieval URLs.
type ObjectStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignRead(ctx context.Context, key string) (string, error)
}

// S3Service implements ObjectStore with presigned S3 URLs.
type S3Service struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client(region string) *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

func NewS3Service(client *s3.Client, bucket string) *S3Service {
	return &S3Service{Presigner: s3.NewPresignClient(client), Bucket: bucket}
}

// PresignUpload generates a presigned URL for uploading a file
func (ss *S3Service) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	request, err := ss.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ss.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", NewUnavailable("failed to generate upload URL", err)
	}
	return request.URL, nil
}

// PresignRead generates a presigned URL for reading a file
func (ss *S3Service) PresignRead(ctx context.Context, key string) (string, error) {
	request, err := ss.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ss.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", NewUnavailable("failed to generate read URL", err)
	}
	return request.URL, nil
}

// PropertyImageKey builds a unique object key for a property image.
func PropertyImageKey(propertyID, fileName string) string {
	ext := "jpg"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = fileName[i+1:]
	}
	return "properties/" + propertyID + "/" + uuid.NewString() + "." + ext
}
