// Package jpeg decodes a baseline-sequential, non-subsampled (4:4:4) JFIF
// JPEG image into an in-memory RGB raster.
//
// The parser is a single-pass state machine over an in-memory byte slice,
// the same shape as the original jrm-1535/jpeg marker dispatch loop, cut
// down to the single non-hierarchical, non-progressive scan this decoder
// supports. A typical stream reads:
//
//	SOI <APPn|COM|DQT|DHT>* SOF0 <DQT|DHT>* SOS <entropy-coded segment> EOI
//
// The parser requires SOI first, exactly one SOF0, and SOF0 before SOS, and
// rejects an EOI that arrives before both; table, APPn and COM segments are
// accepted in any order.
//
// Any SOF1-SOF15, DAC, DHP/EXP, DRI or RSTn marker terminates decoding with
// an UnsupportedFeature error: this decoder targets only baseline
// sequential Huffman-coded, 4:4:4 JFIF streams.
package jpeg

import (
    "fmt"

    "github.com/pkg/errors"

    "github.com/jrm-1535/kpeg/internal/kpeglog"
)

// Result mirrors the process-wide outcome codes of the decoder: DONE on a
// fully reconstructed image, TERMINATE on a feature this decoder does not
// implement, INCOMPLETE on a truncated input, ERROR on malformed input or
// an I/O failure reading the source.
type Result int

const (
    ResultDone Result = iota
    ResultTerminate
    ResultIncomplete
    ResultError
)

func (r Result) String() string {
    switch r {
    case ResultDone:
        return "done"
    case ResultTerminate:
        return "terminate"
    case ResultIncomplete:
        return "incomplete"
    case ResultError:
        return "error"
    }
    return "unknown"
}

// Options controls optional decode behaviour. There are currently no
// tunables beyond the process-wide log sink, which is always active; the
// struct exists so Decode's signature does not need to change as the
// decoder grows, matching the teacher's own Control struct.
type Options struct{}

// Raster is the decoded image: a flat, contiguous RGB buffer, one byte per
// channel, row-major, cropped to the frame's declared width and height.
type Raster struct {
    Width, Height int
    Pix           []byte // len == Width*Height*3
}

// Decode parses data as a JFIF byte stream and reconstructs its single
// image frame. The returned Result classifies the outcome per the error
// taxonomy below; img is non-nil only when result is ResultDone.
func Decode(data []byte, opts *Options) (img *Raster, result Result, err error) {
    log := kpeglog.Logger()
    log.Printf("decode: %d bytes", len(data))

    d := newDecoder(data)
    err = d.parse()
    if err == nil {
        img, err = d.assemble()
    }

    if err == nil {
        log.Printf("decode: done, %dx%d", img.Width, img.Height)
        return img, ResultDone, nil
    }

    switch Kind(err) {
    case KindUnsupported:
        log.Printf("decode: terminate: %v", err)
        return nil, ResultTerminate, err
    case KindTruncated:
        log.Printf("decode: incomplete: %v", err)
        return nil, ResultIncomplete, err
    default:
        log.Printf("decode: error: %v", err)
        return nil, ResultError, err
    }
}

// errKind classifies an error into the spec's taxonomy. Kind implements it
// as a sentinel comparison (errors.Is) against the package's base errors:
// every error this package returns wraps one of them with
// github.com/pkg/errors, prefixed by the parser stage that produced it,
// rather than being an ad hoc error string.
type errKind int

const (
    KindMalformed errKind = iota
    KindUnsupported
    KindTruncated
    KindIO
)

var (
    errMalformed   = errors.New("malformed input")
    errUnsupported = errors.New("unsupported feature")
    errTruncated   = errors.New("truncated input")
    // errIO rounds out the taxonomy of spec.md §7. Decode takes an
    // in-memory []byte and never touches a file itself, so this package
    // never produces errIO — file I/O happens in cmd/kpeg, outside this
    // package's error path — but Kind still recognizes it for symmetry.
    errIO = errors.New("i/o error")
)

// Kind reports the taxonomy bucket of err, defaulting to KindMalformed for
// any error not produced by this package (e.g. a raw os.PathError from the
// caller's own file handling).
func Kind(err error) errKind {
    switch {
    case errors.Is(err, errTruncated):
        return KindTruncated
    case errors.Is(err, errUnsupported):
        return KindUnsupported
    case errors.Is(err, errIO):
        return KindIO
    default:
        return KindMalformed
    }
}

func malformed(stage, format string, args ...interface{}) error {
    return errors.Wrapf(errMalformed, "%s: %s", stage, fmt.Sprintf(format, args...))
}

func unsupported(stage, format string, args ...interface{}) error {
    return errors.Wrapf(errUnsupported, "%s: %s", stage, fmt.Sprintf(format, args...))
}

func truncated(stage string) error {
    return errors.Wrapf(errTruncated, "%s: ran out of input", stage)
}
