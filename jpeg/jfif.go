package jpeg

// Support for recognizing a JFIF APP0 identifier, trimmed from the
// teacher's jfif.go: this decoder only needs to tell a JFIF/JFXX APP0
// apart from an unrelated APP0 payload for logging purposes (spec.md §4.1
// treats every APPn payload as skip-only), so the density/units/thumbnail
// field parsing the teacher performs there is dropped.

import "bytes"

const (
    _APP0_JFIF = iota
    _APP0_JFXX
    _APP0_UNKNOWN = -1
)

func markerAPP0discriminator(h5 []byte) int {
    if bytes.Equal(h5, []byte("JFIF\x00")) {
        return _APP0_JFIF
    }
    if bytes.Equal(h5, []byte("JFXX\x00")) {
        return _APP0_JFXX
    }
    return _APP0_UNKNOWN
}
