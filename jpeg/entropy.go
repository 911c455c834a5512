package jpeg

// extend converts a raw "size" unsigned value read from the bitstream into
// its signed magnitude-category value, the table-free equivalent of the
// teacher's precomputed rlCodes[size][code] lookup (analyse.go) and of
// original_source/src/Transform.cpp's bitStringtoValue: values with their
// top bit clear represent negative numbers offset from -(2^size-1).
func extend(v uint16, size uint) int {
    if size == 0 {
        return 0
    }
    vt := uint16(1) << (size - 1)
    if v < vt {
        return int(v) - int(1<<size) + 1
    }
    return int(v)
}

const (
    eob = 0x00 // end-of-block AC run/size byte
    zrl = 0xf0 // 16 zero run-length with no value (zero run length)
)

// dataUnit holds one block's 64 coefficients in zig-zag order, matching
// spec.md §4.3's output of the entropy decoder, prior to dequantization
// and un-zigzag (C4).
type dataUnit [64]int

// decodeDataUnit reads one 8x8 block of coefficients for a single
// component, following the per-block algorithm of spec.md §4.3: one DC
// symbol via dcTree, then AC symbols via acTree until either 63
// coefficients are filled or an EOB is seen. pred is the component's
// running DC predictor (spec.md's DC predictor state), updated in place.
func decodeDataUnit(r *bitReader, dcTree, acTree *hcnode, pred *int) (dataUnit, error) {
    var du dataUnit

    size, err := decodeSymbol(dcTree, r.bit)
    if err != nil {
        return du, err
    }
    if size > 11 {
        return du, malformed("entropy decoder", "DC category %d out of range", size)
    }
    raw, err := r.bits(uint(size))
    if err != nil {
        return du, err
    }
    diff := extend(raw, uint(size))
    *pred += diff
    du[0] = *pred

    k := 1
    for k < 64 {
        rs, err := decodeSymbol(acTree, r.bit)
        if err != nil {
            return du, err
        }
        if rs == eob {
            break
        }
        run := int(rs >> 4)
        sz := uint(rs & 0x0f)
        if sz == 0 {
            // rs == zrl: 16 zero coefficients, no value. Any other
            // size-0 run/size byte besides 0x00 (eob) and 0xf0 (zrl) is
            // invalid.
            if rs != zrl {
                return du, malformed("entropy decoder", "invalid AC run/size byte 0x%02x", rs)
            }
            k += 16
            if k > 64 {
                return du, malformed("entropy decoder", "ZRL run overflows block")
            }
            continue
        }
        k += run
        if k >= 64 {
            return du, malformed("entropy decoder", "AC run overflows block")
        }
        raw, err := r.bits(sz)
        if err != nil {
            return du, err
        }
        du[k] = extend(raw, sz)
        k++
    }
    return du, nil
}
