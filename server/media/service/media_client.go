package service

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	commonlog "mediahub/server/common/log"
	"mediahub/server/media/domain"
)

const (
	IdentityHeader = "X-User-Email"
	UploadPath     = "/upload"
	FilesPath      = "/files/"
)

type Options struct {
	// BaseURL is the media subsystem root, e.g. http://localhost:8080/api/media.
	BaseURL string
	// HTTPClient overrides the transport; Timeout and InsecureSkipVerify are
	// ignored when it is set.
	HTTPClient         *http.Client
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// MediaClient uploads files to the media backend and derives retrieval URLs.
// It holds no mutable state and is safe for concurrent use.
type MediaClient struct {
	baseURL string
	http    *http.Client
}

func NewMediaClient(opts Options) *MediaClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(opts.Timeout, opts.InsecureSkipVerify)
	}
	return &MediaClient{
		baseURL: normalizeBaseURL(opts.BaseURL),
		http:    httpClient,
	}
}

func newHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev backends
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

func normalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

func (c *MediaClient) BaseURL() string {
	return c.baseURL
}

// Upload sends file to the backend in a single request and returns at once.
// file.Body must stay readable until the returned handle is done. The
// identity header is always sent, even when uploaderIdentity is empty.
func (c *MediaClient) Upload(ctx context.Context, file domain.FileContent, uploaderIdentity string, product domain.ProductID) *PendingUpload {
	pending := newPendingUpload()
	req := domain.UploadRequest{File: file, Product: product}
	go func() {
		asset, err := c.upload(ctx, req, uploaderIdentity)
		pending.resolve(asset, err)
	}()
	return pending
}

func (c *MediaClient) upload(ctx context.Context, req domain.UploadRequest, uploaderIdentity string) (domain.MediaAsset, error) {
	body, contentType, err := buildUploadBody(req)
	if err != nil {
		return domain.MediaAsset{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+UploadPath, body)
	if err != nil {
		return domain.MediaAsset{}, err
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set(IdentityHeader, uploaderIdentity)

	commonlog.Debugf("media upload dispatched url=%s name=%s bytes=%d product=%t", httpReq.URL, req.File.Name, body.Len(), req.Product.IsSet())
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.MediaAsset{}, err
	}
	defer resp.Body.Close()
	commonlog.Debugf("media upload response status=%d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return domain.MediaAsset{}, err
		}
		return domain.MediaAsset{}, &BackendError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       raw,
		}
	}

	var asset domain.MediaAsset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return domain.MediaAsset{}, err
	}
	return asset, nil
}

// ResolveURL returns the retrieval URL for a stored filename. It does no I/O
// and no escaping.
func (c *MediaClient) ResolveURL(filename string) string {
	return c.baseURL + FilesPath + filename
}

func ResolveURL(baseURL, filename string) string {
	return normalizeBaseURL(baseURL) + FilesPath + filename
}
