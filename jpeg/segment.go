package jpeg

// Segment handlers for DQT, DHT and SOF0, adapted from the teacher's
// startOfFrame and defineHuffmanTable (segment.go) and dequantize
// (decode.go), narrowed to a single baseline-sequential frame with 4:4:4
// sampling (spec.md's explicit Non-goal on chroma subsampling: any
// sampling factor other than 1x1 is rejected here as unsupported rather
// than silently upsampled).

import "github.com/jrm-1535/kpeg/internal/kpeglog"

// applicationSegment dispatches APP0..APP15. Only APP0 is inspected (to
// confirm a JFIF identifier, logged for diagnostics); every other APPn
// payload is skipped untouched, matching spec.md §4.1's "skip APPn beyond
// JFIF identification" rule and the dropped EXIF-parsing Non-goal.
func (f *frame) applicationSegment(marker uint) error {
    if marker == _APP0 {
        return f.app0()
    }
    return f.skipSegment("APPn")
}

// app0 identifies (and logs) a JFIF APP0 segment without acting on any of
// its fields beyond the identifier string, adapted from jfif.go's
// markerAPP0discriminator.
func (f *frame) app0() error {
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    if sLen < 7 {
        return f.skipSegment("APP0")
    }
    if f.offset+9 > len(f.data) {
        return truncated("segment parser")
    }
    id := f.data[f.offset+4 : f.offset+9]
    log := kpeglog.Logger()
    switch markerAPP0discriminator(id) {
    case _APP0_JFIF:
        log.Printf("app0: JFIF identifier present")
    case _APP0_JFXX:
        log.Printf("app0: JFIF extension (thumbnail), ignored")
    default:
        log.Printf("app0: unrecognized APP0 payload, skipping")
    }
    return f.skipSegment("APP0")
}

// commentSegment logs a COM segment's text to kpeg.log before skipping its
// payload, adapted from the teacher's commentSegment (segment.go), which
// stashes the comment bytes on a comSeg for later re-serialization; this
// decoder never re-emits JPEG bytes, so the text is only logged.
func (f *frame) commentSegment() error {
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    if sLen < 2 {
        return malformed("segment parser", "COM: invalid length %d", sLen)
    }
    end := f.offset + 2 + int(sLen)
    if end > len(f.data) {
        return truncated("segment parser")
    }
    text := f.data[f.offset+4 : end]
    kpeglog.Logger().Printf("com: %q", text)
    f.offset = end
    return nil
}

// defineQuantizationTable parses a DQT segment, storing each table in the
// zig-zag order it is transmitted in (spec.md's Quantization table, §3);
// un-zigzag happens later, combined with coefficient un-zigzag, in
// dequantizeAndUnzigzag (idct.go), the same combined-loop approach as the
// teacher's dequantize (decode.go).
func (f *frame) defineQuantizationTable() error {
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    end := f.offset + 2 + int(sLen)
    if end > len(f.data) {
        return truncated("segment parser")
    }
    offset := f.offset + 4
    for offset < end {
        pq, err := f.byteAt(offset)
        if err != nil {
            return err
        }
        precision := pq >> 4
        id := pq & 0x0f
        if id > 3 {
            return malformed("segment parser", "DQT: table id %d out of range", id)
        }
        offset++
        var table [64]uint16
        for i := 0; i < 64; i++ {
            if precision == 0 {
                b, err := f.byteAt(offset)
                if err != nil {
                    return err
                }
                table[i] = uint16(b)
                offset++
            } else {
                v, err := f.uint16At(offset)
                if err != nil {
                    return err
                }
                table[i] = uint16(v)
                offset += 2
            }
        }
        f.qTables[id] = &table
    }
    f.offset = end
    return nil
}

// defineHuffmanTable parses a DHT segment, which may carry several tables
// back to back, and builds each one's canonical tree via buildTree
// (huffman.go). This mirrors the teacher's defineHuffmanTable
// (segment.go), minus the progressive-mode bookkeeping it also performs.
func (f *frame) defineHuffmanTable() error {
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    end := f.offset + 2 + int(sLen)
    if end > len(f.data) {
        return truncated("segment parser")
    }
    offset := f.offset + 4
    for offset < end {
        tcth, err := f.byteAt(offset)
        if err != nil {
            return err
        }
        class := tcth >> 4 // 0: DC, 1: AC
        id := tcth & 0x0f
        if class > 1 || id > 3 {
            return malformed("segment parser", "DHT: invalid table class/id 0x%02x", tcth)
        }
        offset++

        var counts [16]byte
        total := 0
        for i := 0; i < 16; i++ {
            c, err := f.byteAt(offset + i)
            if err != nil {
                return err
            }
            counts[i] = c
            total += int(c)
        }
        offset += 16

        var values [16][]byte
        for i := 0; i < 16; i++ {
            n := int(counts[i])
            if n == 0 {
                continue
            }
            if offset+n > len(f.data) {
                return truncated("segment parser")
            }
            values[i] = append([]byte(nil), f.data[offset:offset+n]...)
            offset += n
        }

        tree, err := buildTree(values)
        if err != nil {
            return err
        }
        if class == 0 {
            f.dcTrees[id] = tree
        } else {
            f.acTrees[id] = tree
        }
    }
    f.offset = end
    return nil
}

// startOfFrame parses SOF0, the only frame type this decoder supports
// (spec.md's Non-goal on progressive/extended/lossless/hierarchical
// frames), and rejects any component whose sampling factors are not 1x1
// (spec.md's Non-goal on chroma subsampling), following the geometry
// computation of the teacher's startOfFrame (segment.go).
func (f *frame) startOfFrame() error {
    if f.sawSOF {
        return malformed("segment parser", "SOF0: second frame header")
    }
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    end := f.offset + 2 + int(sLen)
    if end > len(f.data) {
        return truncated("segment parser")
    }
    offset := f.offset + 4

    precision, err := f.byteAt(offset)
    if err != nil {
        return err
    }
    if precision != 8 {
        return unsupported("segment parser", "SOF0: sample precision %d", precision)
    }
    offset++

    height, err := f.uint16At(offset)
    if err != nil {
        return err
    }
    offset += 2
    width, err := f.uint16At(offset)
    if err != nil {
        return err
    }
    offset += 2

    if width == 0 || height == 0 {
        return malformed("segment parser", "SOF0: zero-sized frame")
    }

    nComp, err := f.byteAt(offset)
    if err != nil {
        return err
    }
    if nComp != 1 && nComp != 3 {
        return unsupported("segment parser", "SOF0: %d components", nComp)
    }
    offset++

    comps := make([]*component, 0, nComp)
    for i := 0; i < int(nComp); i++ {
        id, err := f.byteAt(offset)
        if err != nil {
            return err
        }
        sf, err := f.byteAt(offset + 1)
        if err != nil {
            return err
        }
        qt, err := f.byteAt(offset + 2)
        if err != nil {
            return err
        }
        offset += 3

        hSF := sf >> 4
        vSF := sf & 0x0f
        if hSF != 1 || vSF != 1 {
            return unsupported("segment parser", "chroma subsampling (component %d: %dx%d)", id, hSF, vSF)
        }
        if qt > 3 {
            return malformed("segment parser", "SOF0: quantization table id %d out of range", qt)
        }
        comps = append(comps, &component{id: id, qTable: qt})
    }

    f.width, f.height = int(width), int(height)
    f.components = comps
    f.sawSOF = true
    f.offset = end

    kpeglog.Logger().Printf("frame: %dx%d, %d component(s)", f.width, f.height, nComp)
    return nil
}

// startOfScan parses SOS, binding each previously declared component to
// the DC/AC Huffman tables it will use, following the teacher's
// processScanHeader (segment.go). Spectral selection and successive
// approximation bytes are validated to be the baseline-only (0,63,0)
// triple and otherwise rejected, since any other value implies a
// progressive scan.
func (f *frame) startOfScan() error {
    if !f.sawSOF {
        return malformed("segment parser", "SOS before SOF0")
    }
    sLen, err := f.uint16At(f.offset + 2)
    if err != nil {
        return err
    }
    end := f.offset + 2 + int(sLen)
    if end > len(f.data) {
        return truncated("segment parser")
    }
    offset := f.offset + 4

    nComp, err := f.byteAt(offset)
    if err != nil {
        return err
    }
    if int(nComp) != len(f.components) {
        return unsupported("segment parser", "SOS: multi-scan image (%d of %d components)", nComp, len(f.components))
    }
    offset++

    for i := 0; i < int(nComp); i++ {
        id, err := f.byteAt(offset)
        if err != nil {
            return err
        }
        tables, err := f.byteAt(offset + 1)
        if err != nil {
            return err
        }
        offset += 2

        comp := f.componentByID(id)
        if comp == nil {
            return malformed("segment parser", "SOS: unknown component id %d", id)
        }
        comp.dcTable = tables >> 4
        comp.acTable = tables & 0x0f
        if comp.dcTable > 3 || comp.acTable > 3 {
            return malformed("segment parser", "SOS: table selector out of range for component %d", id)
        }
    }

    ss, err := f.byteAt(offset)
    if err != nil {
        return err
    }
    se, err := f.byteAt(offset + 1)
    if err != nil {
        return err
    }
    ahal, err := f.byteAt(offset + 2)
    if err != nil {
        return err
    }
    if ss != 0 || se != 63 || ahal != 0 {
        return unsupported("segment parser", "progressive scan parameters (Ss=%d Se=%d Ah/Al=0x%02x)", ss, se, ahal)
    }

    f.sawSOS = true
    f.offset = end
    return nil
}

func (f *frame) componentByID(id byte) *component {
    for _, c := range f.components {
        if c.id == id {
            return c
        }
    }
    return nil
}
