package ambient

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	listObjectsV2 = func(c *s3.Client, ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
		return c.ListObjectsV2(ctx, in, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// GalleryConfig points at an S3-compatible bucket (MinIO in development)
// holding landscape photos under Prefix.
type GalleryConfig struct {
	AccessKey    string
	SecretKey    string
	Region       string
	BaseEndpoint string
	Bucket       string
	Prefix       string
	URLExpiry    time.Duration
}

// Gallery picks a random photo from the bucket and hands out a presigned
// GET URL for it.
type Gallery struct {
	cfg  GalleryConfig
	intn func(int) int
}

func NewGallery(cfg GalleryConfig) *Gallery {
	if cfg.URLExpiry == 0 {
		cfg.URLExpiry = time.Hour
	}
	return &Gallery{cfg: cfg, intn: rand.IntN}
}

func (g *Gallery) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(g.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			g.cfg.AccessKey,
			g.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(g.cfg.BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (g *Gallery) RandomImage(ctx context.Context) (string, error) {
	c, err := g.client(ctx)
	if err != nil {
		return "", fmt.Errorf("gallery: %w", err)
	}

	out, err := listObjectsV2(c, ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.cfg.Bucket),
		Prefix: aws.String(g.cfg.Prefix),
	})
	if err != nil {
		return "", fmt.Errorf("gallery list: %w", err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		// skip "directory" placeholders
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("gallery: %w", ErrNoResults)
	}

	key := keys[g.intn(len(keys))]
	req, err := presignGetObject(newS3PresignClient(c), ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(g.cfg.URLExpiry))
	if err != nil {
		return "", fmt.Errorf("gallery presign: %w", err)
	}

	return req.URL, nil
}
