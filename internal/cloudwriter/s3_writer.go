package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Writer buffers one object and uploads it with a single PutObject on Close.
type S3Writer struct {
	ctx        context.Context
	client     *s3.Client
	bucket     string
	objectPath string
	buffer     bytes.Buffer
}

type S3WriterFactory struct {
	ctx    context.Context
	client *s3.Client
}

// NewS3WriterFactory loads the default AWS credential chain for region.
func NewS3WriterFactory(ctx context.Context, region string) (*S3WriterFactory, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3WriterFactoryWithClient(ctx, s3.NewFromConfig(cfg)), nil
}

func NewS3WriterFactoryWithClient(ctx context.Context, client *s3.Client) *S3WriterFactory {
	return &S3WriterFactory{ctx: ctx, client: client}
}

func (f *S3WriterFactory) NewWriter(bucket, objectPath string) (CloudWriter, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket name is required")
	}
	return &S3Writer{
		ctx:        f.ctx,
		client:     f.client,
		bucket:     bucket,
		objectPath: objectPath,
	}, nil
}

func (w *S3Writer) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

func (w *S3Writer) Close() error {
	_, err := w.client.PutObject(w.ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.objectPath),
		Body:        bytes.NewReader(w.buffer.Bytes()),
		ContentType: aws.String("application/vnd.apache.parquet"),
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", w.objectPath, err)
	}
	log.Printf("Uploaded s3://%s/%s (%d bytes)", w.bucket, w.objectPath, w.buffer.Len())
	return nil
}
