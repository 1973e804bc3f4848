package paint

import (
	"context"
	"image"
	"log/slog"
)

// decodeResult is a finished bitmap decode tagged with the selection
// generation that requested it.
type decodeResult struct {
	gen uint64
	img *image.RGBA
	err error
}

// decoder runs Surface.DecodeBitmap off the event goroutine. Results are
// queued and only applied when the event goroutine drains the queue, so
// selection state is never touched concurrently.
type decoder struct {
	surface Surface
	results chan decodeResult
	pending int
}

func newDecoder(s Surface) *decoder {
	return &decoder{surface: s, results: make(chan decodeResult, 16)}
}

// schedule starts decoding a copy of buf for generation gen.
func (d *decoder) schedule(gen uint64, buf *image.RGBA) {
	buf = cloneRGBA(buf)
	d.pending++
	go func() {
		img, err := d.surface.DecodeBitmap(context.Background(), buf)
		d.results <- decodeResult{gen: gen, img: img, err: err}
	}()
}

func (d *decoder) deliver(r decodeResult, apply func(decodeResult)) {
	d.pending--
	if r.err != nil {
		Logger().Warn("paint: bitmap decode failed", slog.Uint64("generation", r.gen), slog.Any("err", r.err))
		return
	}
	apply(r)
}

// drain applies every finished decode without blocking.
func (d *decoder) drain(apply func(decodeResult)) {
	for {
		select {
		case r := <-d.results:
			d.deliver(r, apply)
		default:
			return
		}
	}
}

// wait applies decodes until none is pending or ctx is done.
func (d *decoder) wait(ctx context.Context, apply func(decodeResult)) error {
	for d.pending > 0 {
		select {
		case r := <-d.results:
			d.deliver(r, apply)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
