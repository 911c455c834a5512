package jpeg

import "math"

// zigZagRowCol maps a zig-zag position (0..63) to its natural (row, col)
// matrix index. The values are identical to the teacher's zigZagRowCol
// table in jpeg.go and to matIndicesToZZOrder in
// original_source/src/Transform.cpp (that table is indexed the other way
// round: (row,col) -> zig-zag order; this one inverts it, kept as a
// direct 64-entry array for O(1) lookup during un-zigzag, matching
// spec.md §4.4 step 3).
var zigZagRowCol = [64][2]int{
    {0, 0},
    {0, 1}, {1, 0},
    {2, 0}, {1, 1}, {0, 2},
    {0, 3}, {1, 2}, {2, 1}, {3, 0},
    {4, 0}, {3, 1}, {2, 2}, {1, 3}, {0, 4},
    {0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0},
    {6, 0}, {5, 1}, {4, 2}, {3, 3}, {2, 4}, {1, 5}, {0, 6},
    {0, 7}, {1, 6}, {2, 5}, {3, 4}, {4, 3}, {5, 2}, {6, 1}, {7, 0},
    {7, 1}, {6, 2}, {5, 3}, {4, 4}, {3, 5}, {2, 6}, {1, 7},
    {2, 7}, {3, 6}, {4, 5}, {5, 4}, {6, 3}, {7, 2},
    {7, 3}, {6, 4}, {5, 5}, {4, 6}, {3, 7},
    {4, 7}, {5, 6}, {6, 5}, {7, 4},
    {7, 5}, {6, 6}, {5, 7},
    {6, 7}, {7, 6},
    {7, 7},
}

// dequantizeAndUnzigzag dequantizes a zig-zag ordered coefficient block
// against an 8x8 quantization table (itself stored in zig-zag order, as
// DQT segments carry it) and un-zigzags it into natural row-major order in
// one pass, following the combined loop in the teacher's dequantize
// (decode.go).
func dequantizeAndUnzigzag(du dataUnit, qt [64]uint16) [8][8]int {
    var m [8][8]int
    for zz := 0; zz < 64; zz++ {
        rc := zigZagRowCol[zz]
        m[rc[0]][rc[1]] = du[zz] * int(qt[zz])
    }
    return m
}

// idct8x8 performs the 2D inverse DCT-III over an 8x8 coefficient matrix,
// returning levels shifted by +128 as spec.md §4.4 step 6 requires (level
// shift happens immediately after the transform, before colour conversion,
// preserving the processing order spec.md §9 calls out as load-bearing even
// though a textbook implementation would shift later). The result is
// deliberately left unclamped: spec.md §4.4 only clamps the final R/G/B
// triple (step 7), and a level-shifted Cb/Cr sample commonly falls outside
// [0,255] on real images with IDCT ringing near block edges — clamping here
// would feed a wrong value into ycbcrToRGB. This matches
// original_source/src/MCU.cpp's performLevelShift, which stores the
// shifted sample in a signed Int16 and does not clamp; only
// convertYCbCrToRGB clamps.
//
// The transform is separable: a column pass followed by a row pass, the
// same factorization as the teacher's inverseDCT8 (decode.go), rather than
// the O(64^2) direct double sum (also present there, commented out, as the
// textbook reference). Both are mathematically equivalent after rounding.
func idct8x8(m [8][8]int) [8][8]int {
    var tmp [8][8]float64
    for x := 0; x < 8; x++ {
        var col [8]float64
        for u := 0; u < 8; u++ {
            col[u] = float64(m[u][x])
        }
        for y := 0; y < 8; y++ {
            tmp[y][x] = idct1D(col, y)
        }
    }

    var out [8][8]int
    for y := 0; y < 8; y++ {
        var row [8]float64
        for x := 0; x < 8; x++ {
            row[x] = tmp[y][x]
        }
        for x := 0; x < 8; x++ {
            // idct1D already folds in the formula's 1/2 factor; composing
            // the column pass and this row pass multiplies the two 1/2s
            // into the 2D formula's 1/4, so no further scaling belongs here.
            v := idct1D(row, x)
            out[y][x] = int(math.Round(v)) + 128
        }
    }
    return out
}

// idct1D computes one output sample of the 1D inverse DCT-III over 8
// input coefficients, per spec.md §4.4 step 5's formula:
//
//	f(x) = 1/2 * sum_{u=0}^{7} C(u) * F(u) * cos((2x+1)u*pi/16)
//
// with C(0) = 1/sqrt(2), C(u) = 1 for u > 0.
func idct1D(f [8]float64, x int) float64 {
    var sum float64
    for u := 0; u < 8; u++ {
        c := 1.0
        if u == 0 {
            c = invSqrt2
        }
        sum += c * f[u] * math.Cos(float64(2*x+1)*float64(u)*math.Pi/16.0)
    }
    return sum / 2
}

var invSqrt2 = 1.0 / math.Sqrt2

func clampByte(v int) byte {
    if v < 0 {
        return 0
    }
    if v > 255 {
        return 255
    }
    return byte(v)
}
