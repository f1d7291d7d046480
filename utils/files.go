package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveDataURLImage decodes a data:image/... URL and writes it under folder,
// returning the saved file name.
func SaveDataURLImage(dataURL, folder string) (string, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return "", errors.New("invalid image format")
	}
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return "", errors.New("invalid data url")
	}
	data, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d.png", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(folder, filename), data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// UploadFileName builds a collision-safe name for a multipart upload,
// keeping the original extension.
func UploadFileName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}
