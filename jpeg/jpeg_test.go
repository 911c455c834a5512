package jpeg_test

// End-to-end decode tests built from hand-assembled JFIF byte streams
// rather than checked-in golden files, following the synthetic-fixture
// style used across this corpus's codec tests (no binary test assets).

import (
    "bytes"
    "encoding/binary"
    "testing"

    "github.com/jrm-1535/kpeg/jpeg"
)

// segment appends a length-prefixed marker segment (the length field
// itself included in sLen, per the JFIF convention) to buf.
func segment(buf *bytes.Buffer, marker uint16, payload []byte) {
    var hdr [2]byte
    binary.BigEndian.PutUint16(hdr[:], marker)
    buf.Write(hdr[:])
    var len16 [2]byte
    binary.BigEndian.PutUint16(len16[:], uint16(2+len(payload)))
    buf.Write(len16[:])
    buf.Write(payload)
}

// buildMinimalGraySized builds a width x height, single-component
// (grayscale) baseline JFIF stream whose every MCU decodes to an all-zero
// coefficient block: DC category 0 (no difference), immediate AC
// end-of-block. Both Huffman tables used contain exactly one 1-bit-long
// symbol, so each MCU contributes exactly two bits ("00") to the
// entropy-coded segment; the whole stream packs cleanly into bytes
// regardless of the MCU count, with trailing padding bits ignored.
func buildMinimalGraySized(t *testing.T, width, height int) []byte {
    t.Helper()
    var buf bytes.Buffer

    buf.Write([]byte{0xff, 0xd8}) // SOI

    // DQT: one 8-bit precision table, id 0, all ones.
    dqt := make([]byte, 1+64)
    dqt[0] = 0x00
    for i := 1; i < len(dqt); i++ {
        dqt[i] = 1
    }
    segment(&buf, 0xffdb, dqt)

    // DHT: DC table class 0 id 0, one symbol of length 1 (category 0).
    dcTable := make([]byte, 1+16+1)
    dcTable[0] = 0x00
    dcTable[1] = 1 // one code of length 1
    dcTable[1+16] = 0x00
    segment(&buf, 0xffc4, dcTable)

    // DHT: AC table class 1 id 0, one symbol of length 1 (EOB, 0x00).
    acTable := make([]byte, 1+16+1)
    acTable[0] = 0x10
    acTable[1] = 1
    acTable[1+16] = 0x00
    segment(&buf, 0xffc4, acTable)

    // SOF0: 8 bit precision, width x height, one component.
    sof := []byte{
        8,
        byte(height >> 8), byte(height),
        byte(width >> 8), byte(width),
        1, 1, 0x11, 0,
    }
    segment(&buf, 0xffc0, sof)

    // SOS: one component, DC/AC table 0, Ss=0 Se=63 Ah/Al=0.
    sos := []byte{1, 1, 0x00, 0, 63, 0}
    segment(&buf, 0xffda, sos)

    mcusAcross := (width + 7) / 8
    mcusDown := (height + 7) / 8
    nMCUs := mcusAcross * mcusDown

    // Pack nMCUs pairs of "00" bits MSB-first, padding the final byte.
    var cur byte
    nBits := 0
    for i := 0; i < nMCUs; i++ {
        for b := 0; b < 2; b++ {
            cur <<= 1
            nBits++
            if nBits == 8 {
                buf.WriteByte(cur)
                if cur == 0xff {
                    buf.WriteByte(0x00) // destuff a literal 0xff byte
                }
                cur, nBits = 0, 0
            }
        }
    }
    if nBits > 0 {
        cur <<= uint(8 - nBits)
        buf.WriteByte(cur)
        if cur == 0xff {
            buf.WriteByte(0x00)
        }
    }
    buf.Write([]byte{0xff, 0xd9}) // EOI

    return buf.Bytes()
}

// buildMinimalGray builds the single-MCU 8x8 case of buildMinimalGraySized.
func buildMinimalGray(t *testing.T) []byte {
    t.Helper()
    return buildMinimalGraySized(t, 8, 8)
}

func TestDecodeSolidGray(t *testing.T) {
    data := buildMinimalGray(t)
    img, result, err := jpeg.Decode(data, nil)
    if err != nil {
        t.Fatalf("Decode: unexpected error: %v", err)
    }
    if result != jpeg.ResultDone {
        t.Fatalf("Decode: result = %v, want ResultDone", result)
    }
    if img.Width != 8 || img.Height != 8 {
        t.Fatalf("Decode: got %dx%d, want 8x8", img.Width, img.Height)
    }
    if len(img.Pix) != 8*8*3 {
        t.Fatalf("Decode: Pix has %d bytes, want %d", len(img.Pix), 8*8*3)
    }
    for i, v := range img.Pix {
        if v != 128 {
            t.Fatalf("Decode: Pix[%d] = %d, want 128 (all-zero block, level shift only)", i, v)
        }
    }
}

func TestDecodeRejectsSubsampling(t *testing.T) {
    data := buildMinimalGray(t)
    // Flip the component's sampling factor byte (byte 7, counting from 0,
    // of the SOF0 payload that follows the 4-byte marker+length prefix)
    // from 0x11 to 0x21.
    const markerAndLen = 4
    idx := bytes.Index(data, []byte{0xff, 0xc0})
    if idx < 0 {
        t.Fatalf("test fixture missing SOF0 marker")
    }
    sfOffset := idx + markerAndLen + 7
    data[sfOffset] = 0x21

    _, result, err := jpeg.Decode(data, nil)
    if err == nil {
        t.Fatalf("Decode: expected an error for subsampled input")
    }
    if result != jpeg.ResultTerminate {
        t.Fatalf("Decode: result = %v, want ResultTerminate", result)
    }
}

func TestDecodeRejectsMissingSOI(t *testing.T) {
    data := buildMinimalGray(t)
    data[0] = 0x00 // corrupt SOI

    _, result, err := jpeg.Decode(data, nil)
    if err == nil {
        t.Fatalf("Decode: expected an error")
    }
    if result != jpeg.ResultError {
        t.Fatalf("Decode: result = %v, want ResultError", result)
    }
}

func TestDecodeTruncatedMidScan(t *testing.T) {
    data := buildMinimalGray(t)
    // Cut the stream right after SOS, before the entropy-coded bits and EOI.
    idx := bytes.Index(data, []byte{0xff, 0xda})
    if idx < 0 {
        t.Fatalf("test fixture missing SOS marker")
    }
    truncated := data[:idx+10]

    _, result, err := jpeg.Decode(truncated, nil)
    if err == nil {
        t.Fatalf("Decode: expected an error for truncated input")
    }
    if result != jpeg.ResultIncomplete {
        t.Fatalf("Decode: result = %v, want ResultIncomplete", result)
    }
}

// TestDecodeCropsNonMultipleOf8 covers spec.md §8's boundary behaviour: a
// 10x10 frame is reconstructed over a padded 16x16 MCU grid (4 MCUs) and
// must be cropped back down to exactly the declared 10x10 before the raster
// is returned, with no seam artefacts at the crop boundary.
func TestDecodeCropsNonMultipleOf8(t *testing.T) {
    data := buildMinimalGraySized(t, 10, 10)
    img, result, err := jpeg.Decode(data, nil)
    if err != nil {
        t.Fatalf("Decode: unexpected error: %v", err)
    }
    if result != jpeg.ResultDone {
        t.Fatalf("Decode: result = %v, want ResultDone", result)
    }
    if img.Width != 10 || img.Height != 10 {
        t.Fatalf("Decode: got %dx%d, want 10x10", img.Width, img.Height)
    }
    if len(img.Pix) != 10*10*3 {
        t.Fatalf("Decode: Pix has %d bytes, want %d", len(img.Pix), 10*10*3)
    }
    for i, v := range img.Pix {
        if v != 128 {
            t.Fatalf("Decode: Pix[%d] = %d, want 128", i, v)
        }
    }
}

// TestDecodeAcceptsNonMultipleOf8Rectangular covers a non-square, non-8
// aligned frame to make sure both dimensions crop independently.
func TestDecodeAcceptsNonMultipleOf8Rectangular(t *testing.T) {
    data := buildMinimalGraySized(t, 20, 9)
    img, result, err := jpeg.Decode(data, nil)
    if err != nil {
        t.Fatalf("Decode: unexpected error: %v", err)
    }
    if result != jpeg.ResultDone {
        t.Fatalf("Decode: result = %v, want ResultDone", result)
    }
    if img.Width != 20 || img.Height != 9 {
        t.Fatalf("Decode: got %dx%d, want 20x9", img.Width, img.Height)
    }
}
