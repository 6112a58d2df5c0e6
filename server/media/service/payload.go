package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"mediahub/server/media/domain"
)

const (
	FileField    = "file"
	ProductField = "productId"

	defaultFileName    = "blob"
	defaultContentType = "application/octet-stream"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildUploadBody encodes req as multipart/form-data and returns the body
// with its Content-Type header value.
func buildUploadBody(req domain.UploadRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreatePart(filePartHeader(req.File))
	if err != nil {
		return nil, "", err
	}
	if req.File.Body != nil {
		if _, err := io.Copy(part, req.File.Body); err != nil {
			return nil, "", err
		}
	}

	if productID, ok := req.Product.Get(); ok {
		if err := w.WriteField(ProductField, productID); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// An empty filename would make the part a plain form value on the server.
func filePartHeader(file domain.FileContent) textproto.MIMEHeader {
	name := file.Name
	if name == "" {
		name = defaultFileName
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FileField, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)
	return h
}
