// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var (
	// guard ringan ukuran upload
	maxUploadSize = int64(5 * 1024 * 1024)

	webpMaxW    = 1920
	webpMaxH    = 1920
	webpQuality = float32(80)
)

/* =======================================================================
   Konversi ke WebP: decode jpg/png/webp, downscale keep-aspect, encode.
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format tidak didukung: %s", ct)
}

// ConvertToWebP membaca file form dan mengembalikan bytes webp siap upload.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("baca file: %w", err)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > webpMaxW || b.Dy() > webpMaxH {
		img = imaging.Fit(img, webpMaxW, webpMaxH, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS SERVICE
   Kredensial dibaca dari ENV saat service dibuat (per pemanggilan
   controller), tidak divalidasi eager saat startup.
======================================================================= */

type Service struct {
	Client     *alioss.Client
	Bucket     *alioss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewServiceFromEnv(prefix string) (*Service, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := alioss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &Service{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

/* ======================= Upload ======================= */

// UploadAsWebP: recompress ke webp lalu PutObject di bawah prefix.
// Mengembalikan object key + public URL.
func (s *Service) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(base + ".webp")

	opts := []alioss.Option{
		alioss.WithContext(ctx),
		alioss.ContentType("image/webp"),
		alioss.ContentDisposition("inline"),
		alioss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		return "", "", err
	}
	return key, s.PublicURL(key), nil
}

/* ======================= List ======================= */

type ObjectInfo struct {
	Key          string
	URL          string
	Size         int64
	LastModified time.Time
}

// ListObjects: seluruh object di bawah prefix service, dibatasi maxResults.
func (s *Service) ListObjects(ctx context.Context, maxResults int) ([]ObjectInfo, error) {
	if maxResults <= 0 || maxResults > 1000 {
		maxResults = 100
	}

	res, err := s.Bucket.ListObjectsV2(
		alioss.Prefix(s.Prefix+"/"),
		alioss.MaxKeys(maxResults),
		alioss.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}

	out := make([]ObjectInfo, 0, len(res.Objects))
	for _, o := range res.Objects {
		out = append(out, ObjectInfo{
			Key:          o.Key,
			URL:          s.PublicURL(o.Key),
			Size:         o.Size,
			LastModified: o.LastModified,
		})
	}
	return out, nil
}

/* ======================= Meta & Delete ======================= */

// Exists: cek keberadaan object.
func (s *Service) Exists(ctx context.Context, key string) (bool, error) {
	return s.Bucket.IsObjectExist(key, alioss.WithContext(ctx))
}

// GetMeta membaca metadata user (x-oss-meta-*) sebuah object.
func (s *Service) GetMeta(ctx context.Context, key string) (http.Header, error) {
	return s.Bucket.GetObjectDetailedMeta(key, alioss.WithContext(ctx))
}

// SetMeta menimpa metadata user lewat CopyObject MetaReplace;
// binary dan URL tidak berubah.
func (s *Service) SetMeta(ctx context.Context, key string, meta map[string]string) error {
	opts := []alioss.Option{
		alioss.WithContext(ctx),
		alioss.MetadataDirective(alioss.MetaReplace),
		alioss.ContentType("image/webp"),
		alioss.ContentDisposition("inline"),
		alioss.CacheControl("public, max-age=31536000, immutable"),
	}
	for k, v := range meta {
		opts = append(opts, alioss.Meta(k, v))
	}
	_, err := s.Bucket.CopyObject(key, key, opts...)
	return err
}

func (s *Service) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, alioss.WithContext(ctx))
}

/* ======================= Key & URL utils ======================= */

func (s *Service) buildObjectKey(filename string) string {
	safe := sanitizeFilename(filename)
	name := fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8], safe)
	if s.Prefix == "" {
		return name
	}
	return s.Prefix + "/" + name
}

func sanitizeFilename(filename string) string {
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (s *Service) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, escapeKey(key))
}

// ExtractKeyFromPublicURL: kebalikan PublicURL, untuk reverse lookup
// asset dari URL yang tersimpan di record.
func (s *Service) ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("url tanpa object key: %s", publicURL)
	}
	return key, nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// MaxUploadSize untuk guard di controller.
func MaxUploadSize() int64 { return maxUploadSize }

func init() {
	if v := getEnv("OSS_MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxUploadSize = int64(n) * 1024 * 1024
			log.Printf("[OSS] max upload %dMB", n)
		}
	}
}
