package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoService hands out presigned S3 URLs so listing photos are uploaded
// and served without passing through this server.
type PhotoService struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// InitializePhotoService builds the S3 presign client from the ambient AWS
// config.
func InitializePhotoService() *PhotoService {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return &PhotoService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
	}
}

// UploadURL returns a presigned PUT URL and the object key a listing photo
// will land under.
func (ps *PhotoService) UploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "listing-photos/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigned, err := ps.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// ReadURL returns a presigned GET URL for a stored listing photo.
func (ps *PhotoService) ReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(key),
	}
	presigned, err := ps.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
