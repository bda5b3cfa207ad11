package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image decodes a base64 image string and writes it under destDir.
// Returns the saved file path. The input may be either a raw base64 payload
// or a data URI like "data:image/png;base64,....".
func SaveBase64Image(base64Str string, destDir string) (string, error) {
	base64Str = strings.TrimSpace(base64Str)
	if base64Str == "" {
		return "", fmt.Errorf("empty base64 string")
	}

	ext := ".jpg"
	if strings.HasPrefix(base64Str, "data:") {
		parts := strings.SplitN(base64Str, ";base64,", 2)
		if len(parts) == 2 {
			switch strings.TrimPrefix(parts[0], "data:") {
			case "image/png":
				ext = ".png"
			case "image/jpeg", "image/jpg":
				ext = ".jpg"
			case "image/webp":
				ext = ".webp"
			}
			base64Str = parts[1]
		} else if idx := strings.Index(base64Str, ","); idx != -1 {
			base64Str = base64Str[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(base64Str)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(base64Str)
		if err != nil {
			return "", fmt.Errorf("base64 decode failed: %v", err)
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("mkdir failed: %v", err)
	}

	randBytes := make([]byte, 6)
	if _, err := rand.Read(randBytes); err != nil {
		randBytes = []byte(fmt.Sprintf("%d", time.Now().UnixNano()))
	}
	name := fmt.Sprintf("crop_%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(randBytes), ext)
	fullpath := filepath.Join(destDir, name)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file failed: %v", err)
	}

	return fullpath, nil
}
