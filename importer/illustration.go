package importer

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// problem cards render small; anything wider gets downscaled before
// upload
const maxIllustrationWidth = 800

// loadIllustration finds illustration.png or illustration.jpg in the
// task dir and returns it re-encoded, downscaled when oversized. Absent
// illustration returns (nil, nil).
func loadIllustration(taskDir string) ([]byte, error) {
	for _, name := range []string{"illustration.png", "illustration.jpg", "illustration.jpeg"} {
		path := filepath.Join(taskDir, name)
		body, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return shrink(body, filepath.Ext(name))
	}
	return nil, nil
}

func shrink(body []byte, ext string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode illustration: %w", err)
	}

	if img.Bounds().Dx() > maxIllustrationWidth {
		img = resize.Resize(maxIllustrationWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	switch ext {
	case ".png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("encode illustration: %w", err)
	}
	return buf.Bytes(), nil
}
