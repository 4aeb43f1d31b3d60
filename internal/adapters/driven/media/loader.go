// Package media loads profile photos from disk into base64 data URLs.
package media

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/uniwell-labs/bienestar-cli/internal/core/ports/driven"
	"github.com/uniwell-labs/bienestar-cli/internal/core/validation"
)

// Ensure Loader implements the interface.
var _ driven.ImageLoader = (*Loader)(nil)

// Loader reads image files and encodes them for storage alongside the
// user record. Uploads over the size limit or with a non-image content
// type are rejected before encoding.
type Loader struct{}

// NewLoader creates a new image loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and returns a data URL such as
// "data:image/png;base64,...".
func (l *Loader) Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if !validation.ImageSizeOK(info.Size()) {
		return "", fmt.Errorf("la imagen no debe superar los 2MB")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	mimeType := http.DetectContentType(data)
	if !validation.ImageTypeOK(mimeType) {
		return "", fmt.Errorf("el archivo debe ser una imagen")
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
}
