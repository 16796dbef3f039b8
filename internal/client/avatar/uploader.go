// Package avatar uploads profile pictures to S3-compatible object storage
// through presigned PUT URLs.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	cc "github.com/ultraupload/ultraupload/internal/client/config"
	"github.com/ultraupload/ultraupload/internal/logging"
	"github.com/ultraupload/ultraupload/internal/netx"
)

var (
	ErrEmptyImage       = errors.New("empty image")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// contentTypes lists the accepted extensions.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	uploadObject = netx.UploadToPresignedURL

	newObjectID = uuid.NewString
)

// Uploader stores avatar images and returns their public URL.
type Uploader struct {
	config *cc.Config
	log    logging.Logger
	now    func() time.Time
}

func NewUploader(config *cc.Config, log logging.Logger) *Uploader {
	if log == nil {
		log = logging.Nop()
	}
	return &Uploader{config: config, log: log.With("component", "avatar"), now: time.Now}
}

// ObjectKey builds the storage key avatars/YYYY/MM/DD/<id><ext>.
func ObjectKey(t time.Time, id, ext string) string {
	return fmt.Sprintf("avatars/%04d/%02d/%02d/%s%s", t.Year(), t.Month(), t.Day(), id, ext)
}

// ContentType returns the MIME type for filename, or ErrUnsupportedImage.
func ContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
	return ct, nil
}

func (u *Uploader) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.S3AccessKey,
			u.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// Upload stores data under a fresh key and returns the public URL of the
// stored object.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	contentType, err := ContentType(filename)
	if err != nil {
		return "", err
	}

	presignClient, err := u.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 config: %w", err)
	}

	bucket := u.config.S3Bucket
	key := ObjectKey(u.now().UTC(), newObjectID(), strings.ToLower(filepath.Ext(filename)))

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := uploadObject(ctx, req.URL, contentType, data); err != nil {
		return "", err
	}

	url := strings.TrimRight(u.config.AvatarBaseURL(), "/") + "/" + key
	u.log.Info(ctx, "avatar uploaded", "key", key, "bytes", len(data))
	return url, nil
}
