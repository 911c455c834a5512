package jpeg

// ycbcrToRGB converts one already level-shifted YCbCr sample to RGB using
// the same BT.601 constants as the teacher's writeYCbCr (jpeg.go/decode.go):
//
//	R = Y + 1.402*(Cr-128)
//	G = Y - 0.344136*(Cb-128) - 0.714136*(Cr-128)
//	B = Y + 1.772*(Cb-128)
//
// y, cb and cr are the unclamped, level-shifted samples idct8x8 produces
// (commonly outside [0,255] from IDCT ringing); only the R/G/B result is
// clamped, per spec.md §4.4 step 7 and the teacher's convertYCbCrToRGB,
// which clamps the converted channel, not the Y/Cb/Cr inputs.
func ycbcrToRGB(y, cb, cr int) (r, g, b byte) {
    yf := float64(y)
    cbf := float64(cb) - 128.0
    crf := float64(cr) - 128.0

    r = clampByte(int(0.5 + yf + 1.402*crf))
    g = clampByte(int(0.5 + yf - 0.344136*cbf - 0.714136*crf))
    b = clampByte(int(0.5 + yf + 1.772*cbf))
    return
}
