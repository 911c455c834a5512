package jpeg

// assemble reconstructs every decoded data unit (C4: dequantize, un-zigzag,
// inverse DCT, level shift) and tiles the results into the padded MCU grid
// before colour-converting and cropping to the declared frame size (C5),
// following spec.md §4.5. The padded buffer is a single contiguous owned
// slice (spec.md §9's flat-raster recommendation) rather than the
// teacher's/original_source's nested slice-of-slices PixelPtr.
func (f *frame) assemble() (*Raster, error) {
    mcusAcross := (f.width + 7) / 8
    mcusDown := (f.height + 7) / 8
    paddedW := mcusAcross * 8
    paddedH := mcusDown * 8

    // Planes hold the level-shifted-but-unclamped samples idct8x8
    // produces (int, not byte): ycbcrToRGB needs the true out-of-range
    // values to reproduce the teacher's colour conversion, so clamping is
    // deferred to the grayscale replication and colour-conversion loops
    // below, the only places spec.md §4.4 step 7 actually calls for it.
    planes := make([][]int, len(f.components))
    for c, comp := range f.components {
        qt := f.qTables[comp.qTable]
        plane := make([]int, paddedW*paddedH)
        for m, du := range f.units[c] {
            mr, mc := m/mcusAcross, m%mcusAcross
            mat := dequantizeAndUnzigzag(du, *qt)
            block := idct8x8(mat)
            baseY := mr * 8
            baseX := mc * 8
            for y := 0; y < 8; y++ {
                row := (baseY + y) * paddedW
                copy(plane[row+baseX:row+baseX+8], block[y][:])
            }
        }
        planes[c] = plane
    }

    pix := make([]byte, f.width*f.height*3)
    if len(planes) == 1 {
        for y := 0; y < f.height; y++ {
            for x := 0; x < f.width; x++ {
                v := clampByte(planes[0][y*paddedW+x])
                o := (y*f.width + x) * 3
                pix[o], pix[o+1], pix[o+2] = v, v, v
            }
        }
    } else {
        yp, cb, cr := planes[0], planes[1], planes[2]
        for y := 0; y < f.height; y++ {
            for x := 0; x < f.width; x++ {
                idx := y*paddedW + x
                r, g, b := ycbcrToRGB(yp[idx], cb[idx], cr[idx])
                o := (y*f.width + x) * 3
                pix[o], pix[o+1], pix[o+2] = r, g, b
            }
        }
    }

    return &Raster{Width: f.width, Height: f.height, Pix: pix}, nil
}
