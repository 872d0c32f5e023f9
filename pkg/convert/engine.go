package convert

import (
	"fmt"

	"github.com/pion/pixfmt/internal/logging"
	"github.com/pion/pixfmt/pkg/frame"
	mio "github.com/pion/pixfmt/pkg/io"
)

const loggerScope = "pixfmt/convert"

// Engine resolves format pairs to kernels. An Engine is immutable once built
// and safe for concurrent use as long as concurrent calls do not share output
// buffers.
type Engine struct {
	accel    Accelerator
	enabled  map[frame.Format]struct{}
	disabled map[pair]struct{}
	log      logging.LeveledLogger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	accel         Accelerator
	loggerFactory logging.LoggerFactory
	formats       []frame.Format
	without       []pair
}

// WithAccelerator sets the backend consulted before the portable kernels. A nil
// accelerator keeps the engine portable only.
func WithAccelerator(a Accelerator) Option {
	return func(o *engineOptions) {
		o.accel = a
	}
}

// WithLoggerFactory overrides the default pion logger factory.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(o *engineOptions) {
		o.loggerFactory = f
	}
}

// WithFormats restricts the engine to the given formats. Pairs involving any
// other format fail with ErrUnsupportedFormat. Calling it more than once
// accumulates formats.
func WithFormats(formats ...frame.Format) Option {
	return func(o *engineOptions) {
		o.formats = append(o.formats, formats...)
	}
}

// WithoutPair removes a single src -> dst pair.
func WithoutPair(src, dst frame.Format) Option {
	return func(o *engineOptions) {
		o.without = append(o.without, pair{src, dst})
	}
}

// NewEngine builds an Engine. Without options every pair of distinct formats in
// the catalogue is supported.
func NewEngine(opts ...Option) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		accel: o.accel,
		log:   logging.NewLoggerFrom(o.loggerFactory, loggerScope),
	}
	if o.formats != nil {
		e.enabled = make(map[frame.Format]struct{}, len(o.formats))
		for _, f := range o.formats {
			e.enabled[f] = struct{}{}
		}
	}
	if len(o.without) > 0 {
		e.disabled = make(map[pair]struct{}, len(o.without))
		for _, p := range o.without {
			e.disabled[p] = struct{}{}
		}
	}
	return e
}

// Supported reports whether the engine has a kernel chain for src -> dst.
func (e *Engine) Supported(src, dst frame.Format) bool {
	return src != dst && e.lookup(src, dst) != nil
}

// Convert converts width x height pixels from src to dst. The source rows are
// pitch pixels apart; the destination is written tightly packed.
//
// Width, height and pitch are the caller's responsibility: odd dimensions on
// subsampled formats follow the lone-pixel policy and zero dimensions do
// nothing.
func (e *Engine) Convert(src, dst []byte, pitch, width, height int, srcFormat, dstFormat frame.Format) error {
	return e.convert(
		&frame.Image{Pix: src, Pitch: pitch, Width: width, Height: height, Format: srcFormat},
		&frame.Image{Pix: dst, Pitch: width, Width: width, Height: height, Format: dstFormat},
	)
}

// ConvertImage converts between two image views, honouring the pitch of each.
func (e *Engine) ConvertImage(src, dst *frame.Image) error {
	if src == nil || dst == nil {
		return ErrNullPointer
	}
	if src.Width != dst.Width || src.Height != dst.Height {
		return ErrSizeMismatch
	}
	return e.convert(src, dst)
}

func (e *Engine) convert(src, dst *frame.Image) error {
	if src.Pix == nil || dst.Pix == nil {
		return ErrNullPointer
	}
	if src.Format == dst.Format {
		return ErrFormatMismatch
	}

	k := e.lookup(src.Format, dst.Format)
	if k == nil {
		e.log.Debugf("no conversion from %s to %s", src.Format, dst.Format)
		return fmt.Errorf("%w: %s to %s", ErrUnsupportedFormat, src.Format, dst.Format)
	}

	sl, err := src.Planes()
	if err != nil {
		return err
	}
	dl, err := dst.Planes()
	if err != nil {
		return err
	}
	if n := sl.Extent(src.Width, src.Height); len(src.Pix) < n {
		return &mio.InsufficientBufferError{RequiredSize: n}
	}
	if n := dl.Extent(dst.Width, dst.Height); len(dst.Pix) < n {
		return &mio.InsufficientBufferError{RequiredSize: n}
	}

	if src.Width <= 0 || src.Height <= 0 {
		return nil
	}

	if e.accelerated(src.Format, dst.Format) {
		e.log.Tracef("accelerated conversion from %s to %s", src.Format, dst.Format)
		return e.accel.Convert(src, dst)
	}

	k(&sl, &dl, src.Width, src.Height)
	return nil
}

func (e *Engine) lookup(src, dst frame.Format) kernel {
	if !src.Valid() || !dst.Valid() {
		return nil
	}
	if e.enabled != nil {
		if _, ok := e.enabled[src]; !ok {
			return nil
		}
		if _, ok := e.enabled[dst]; !ok {
			return nil
		}
	}
	if _, ok := e.disabled[pair{src, dst}]; ok {
		return nil
	}
	return routes[route{src.Category(), dst.Category()}]
}

func (e *Engine) accelerated(src, dst frame.Format) bool {
	return e.accel != nil && !acceleratorMasked(dst) && e.accel.FormatPairSupported(src, dst)
}
