package jpeg

// scanEntropyData decodes the entropy-coded segment that follows SOS,
// producing one data unit per component per MCU in raster order. With
// 4:4:4 sampling (the only mode this decoder accepts) an MCU is exactly
// one 8x8 block per component, so this is a flat loop rather than the
// teacher's nested sampling-factor loops in processSequentialEcs
// (segment.go) — there is no subsampled component to replicate blocks
// for.
func (f *frame) scanEntropyData() error {
    mcusAcross := (f.width + 7) / 8
    mcusDown := (f.height + 7) / 8
    nMCUs := mcusAcross * mcusDown

    f.units = make([][]dataUnit, len(f.components))
    for c := range f.components {
        f.units[c] = make([]dataUnit, nMCUs)
    }

    r := newBitReader(f.data, f.offset)

    for m := 0; m < nMCUs; m++ {
        for c, comp := range f.components {
            dcTree := f.dcTrees[comp.dcTable]
            acTree := f.acTrees[comp.acTable]
            if dcTree == nil || acTree == nil {
                return malformed("entropy decoder", "component %d: missing Huffman table", comp.id)
            }
            qt := f.qTables[comp.qTable]
            if qt == nil {
                return malformed("entropy decoder", "component %d: missing quantization table", comp.id)
            }
            du, err := decodeDataUnit(r, dcTree, acTree, &comp.predictor)
            if err != nil {
                return err
            }
            f.units[c][m] = du
        }
    }

    f.offset = r.markerOffset()
    return nil
}
