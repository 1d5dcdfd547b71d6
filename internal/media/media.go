package media

import (
	"errors"
	"mime"
	"path/filepath"
	"strings"
)

var ErrNotImage = errors.New("please select an image file")

// Ref turns a picked file path into the opaque reference the upload flow
// stores. Only the media type is checked, never the file bytes; URLs pass
// through untouched.
func Ref(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrNotImage
	}
	if strings.Contains(path, "://") {
		return path, nil
	}

	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(mediaType, "image/") {
		return "", ErrNotImage
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}
