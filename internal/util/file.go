package util

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// IsAllowedUpload checks the file extension against AllowedUploadExtensions.
func IsAllowedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// UploadName builds the stored object name: "<unix millis>-<original name>".
func UploadName(original string, now time.Time) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}
