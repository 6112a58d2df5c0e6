package service

import (
	"context"

	"mediahub/server/media/domain"
)

// PendingUpload resolves once the upload exchange finishes, with either the
// stored asset or the unmodified failure.
type PendingUpload struct {
	done  chan struct{}
	asset domain.MediaAsset
	err   error
}

func newPendingUpload() *PendingUpload {
	return &PendingUpload{done: make(chan struct{})}
}

func (p *PendingUpload) resolve(asset domain.MediaAsset, err error) {
	p.asset = asset
	p.err = err
	close(p.done)
}

// Done is closed when the result is available.
func (p *PendingUpload) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the upload resolves or ctx ends. A ctx that ends first
// only stops the wait; the exchange keeps running.
func (p *PendingUpload) Wait(ctx context.Context) (domain.MediaAsset, error) {
	select {
	case <-p.done:
		return p.asset, p.err
	case <-ctx.Done():
		return domain.MediaAsset{}, ctx.Err()
	}
}

// Result reports ok=false while the upload is still in flight.
func (p *PendingUpload) Result() (domain.MediaAsset, error, bool) {
	select {
	case <-p.done:
		return p.asset, p.err, true
	default:
		return domain.MediaAsset{}, nil, false
	}
}
