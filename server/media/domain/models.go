package domain

import (
	"io"
	"time"
)

// MediaAsset is the backend's record of a stored upload. The client only
// reads it.
type MediaAsset struct {
	ID          string  `json:"id"`
	Filename    string  `json:"filename"`
	ContentType string  `json:"contentType"`
	FileSize    int64   `json:"fileSize"`
	UploadedBy  string  `json:"uploadedBy"`
	ProductID   *string `json:"productId,omitempty"`
	UploadedAt  string  `json:"uploadedAt"`
}

// Product returns the associated product, if any.
func (a MediaAsset) Product() ProductID {
	if a.ProductID == nil {
		return NoProduct()
	}
	return ForProduct(*a.ProductID)
}

// UploadedTime parses UploadedAt as RFC 3339.
func (a MediaAsset) UploadedTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, a.UploadedAt)
}

// FileContent is a readable blob plus the name and content type attached by
// the caller's environment.
type FileContent struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// ProductID is an optional product association.
type ProductID struct {
	value string
	set   bool
}

func NoProduct() ProductID {
	return ProductID{}
}

func ForProduct(id string) ProductID {
	return ProductID{value: id, set: true}
}

// ProductFromString treats the empty string as no association.
func ProductFromString(id string) ProductID {
	if id == "" {
		return NoProduct()
	}
	return ForProduct(id)
}

func (p ProductID) Get() (string, bool) {
	return p.value, p.set
}

func (p ProductID) IsSet() bool {
	return p.set
}

// UploadRequest is what goes into the request body. The uploader identity
// travels separately as a request header.
type UploadRequest struct {
	File    FileContent
	Product ProductID
}
