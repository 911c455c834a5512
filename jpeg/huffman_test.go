package jpeg

import "testing"

func TestBuildTreeDecodesEveryCanonicalCode(t *testing.T) {
    // A small, realistic DC-style table: two 2-bit codes and a 3-bit code,
    // the simplest shape with more than one code length.
    var values [16]([]byte)
    values[1] = []byte{0x00, 0x01} // two symbols of length 2
    values[2] = []byte{0x02}       // one symbol of length 3

    tree, err := buildTree(values)
    if err != nil {
        t.Fatalf("buildTree: %v", err)
    }

    // Canonical assignment: length-2 codes are 00, 01; the length-3 code
    // is the first unused 3-bit extension of the remaining 2-bit prefix,
    // i.e. 10 + "0" = 100.
    cases := []struct {
        bits []int
        want byte
    }{
        {[]int{0, 0}, 0x00},
        {[]int{0, 1}, 0x01},
        {[]int{1, 0, 0}, 0x02},
    }
    for _, c := range cases {
        i := 0
        next := func() (int, error) { v := c.bits[i]; i++; return v, nil }
        got, err := decodeSymbol(tree, next)
        if err != nil {
            t.Fatalf("decodeSymbol(%v): %v", c.bits, err)
        }
        if got != c.want {
            t.Errorf("decodeSymbol(%v) = 0x%02x, want 0x%02x", c.bits, got, c.want)
        }
    }
}

func TestBuildTreeRejectsOverfullTable(t *testing.T) {
    var values [16]([]byte)
    // Three symbols of length 1 cannot exist: only two 1-bit codes exist.
    values[0] = []byte{0x00, 0x01, 0x02}

    if _, err := buildTree(values); err == nil {
        t.Fatalf("buildTree: expected an error for an overfull length-1 bucket")
    }
}
