package oss

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

func pngFixture(t *testing.T, w, h int) memFile {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return memFile{bytes.NewReader(buf.Bytes())}
}

func TestConvertToWebP(t *testing.T) {
	t.Run("png valid menghasilkan webp", func(t *testing.T) {
		out, err := ConvertToWebP(pngFixture(t, 64, 48), "foto.png")
		require.NoError(t, err)
		require.NotEmpty(t, out)
		// container WebP = RIFF....WEBP
		assert.Equal(t, "RIFF", string(out[:4]))
		assert.Equal(t, "WEBP", string(out[8:12]))
	})

	t.Run("payload bukan gambar ditolak", func(t *testing.T) {
		_, err := ConvertToWebP(memFile{bytes.NewReader([]byte("bukan gambar"))}, "file.txt")
		require.Error(t, err)
	})
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Denah_Kampus.webp", sanitizeFilename("Denah Kampus.webp"))
	assert.Equal(t, "foto_2_.webp", sanitizeFilename("foto(2).webp"))
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	svc := &Service{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "kampusku"}

	key := "bank-image/2026/09/01/abc-foto.webp"
	url := svc.PublicURL(key)

	got, err := svc.ExtractKeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}
