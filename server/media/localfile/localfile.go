// Package localfile turns a filesystem path into upload content, attaching a
// name and content type the way a browser does for a picked file.
package localfile

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"mediahub/server/media/domain"
)

const fallbackContentType = "application/octet-stream"

// File is an open local file ready for upload. Close it once the upload
// handle is done.
type File struct {
	Content domain.FileContent
	Size    int64
	file    *os.File
}

func (f *File) Close() error {
	return f.file.Close()
}

func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	contentType, err := detectContentType(f, path)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &File{
		Content: domain.FileContent{
			Name:        filepath.Base(path),
			ContentType: contentType,
			Body:        f,
		},
		Size: stat.Size(),
		file: f,
	}, nil
}

// detectContentType sniffs the leading bytes, then falls back to the file
// extension. f is rewound afterwards.
func detectContentType(f *os.File, path string) (string, error) {
	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if contentType := baseType(detected.String()); contentType != fallbackContentType && contentType != "text/plain" {
		return contentType, nil
	}
	if byExt := baseType(mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))); byExt != "" {
		return byExt, nil
	}
	return baseType(detected.String()), nil
}

func baseType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mediaType
}
