package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType sniffs the real content type from the file bytes rather
// than trusting the upload header. The reader is rewound afterwards.
func GetSafeContentType(reader multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// ProbeImage decodes an image stream and returns its dimensions. The reader
// is rewound afterwards so it can be uploaded as-is.
func ProbeImage(reader multipart.File) (width, height int, err error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return 0, 0, err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// FormatFileSize renders a byte count as the human label stored on the file row.
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
