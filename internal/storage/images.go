package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/neal92/ServiceBooking-sub000/internal/config"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
)

const (
	maxImageWidth = 800
	webpQuality   = 85
)

// ImageStore normalizes uploaded service images (resize + webp) and
// puts them in an S3-compatible bucket.
type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewImageStore returns nil when no bucket is configured; callers must
// treat a nil store as "uploads disabled".
func NewImageStore(cfg *config.Config) *ImageStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		// Path style keeps MinIO and friends working in dev.
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

// UploadServiceImage decodes a jpeg/png upload, scales it down to the
// catalog display width and stores it as webp. Returns the public URL.
func (s *ImageStore) UploadServiceImage(
	ctx context.Context,
	serviceID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img := scaleDown(src, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%d.webp", serviceID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}

func scaleDown(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
