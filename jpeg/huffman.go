package jpeg

// Canonical Huffman tree construction, adapted from the breadth-first
// builder in jrm-1535/jpeg's segment.go (buildTree). A Huffman table is
// described as 16 buckets, one per code length 1..16, each holding the
// symbols assigned that length in order; the tree is built length-first,
// expanding every still-open leaf of the previous length into two children
// before assigning the next bucket's symbols to the new leaves.

type hcnode struct {
    left, right *hcnode
    parent      *hcnode
    leaf        bool
    symbol      byte
}

// buildTree constructs a canonical Huffman tree from 16 length buckets
// (values[0] holds the 1-bit codes, values[15] the 16-bit codes). It
// reports a malformed-input error instead of the teacher's panic when the
// table would require expanding past depth 16 or would double-assign a
// node — both indicate a corrupt DHT segment rather than a programmer
// error, so this decoder treats them as decode failures (spec's open
// question on DHT depth-16 bounds checking).
func buildTree(values [16][]byte) (*hcnode, error) {
    root := &hcnode{}
    frontier := []*hcnode{root}

    for length := 0; length < 16; length++ {
        var next []*hcnode
        for _, n := range frontier {
            n.left = &hcnode{parent: n}
            n.right = &hcnode{parent: n}
            next = append(next, n.left, n.right)
        }
        symbols := values[length]
        if len(symbols) > len(next) {
            return nil, malformed("huffman", "length %d wants %d codes, only %d available",
                length+1, len(symbols), len(next))
        }
        for i, sym := range symbols {
            next[i].leaf = true
            next[i].symbol = sym
        }
        // leaves just assigned are consumed; the rest carry forward as the
        // frontier available to the next, longer code length.
        frontier = next[len(symbols):]
    }
    return root, nil
}

// decodeSymbol walks the tree one bit at a time, read via next, until a
// leaf is reached. next must return (0 or 1, nil) per call, or an error
// once the bit source is exhausted.
func decodeSymbol(root *hcnode, next func() (int, error)) (byte, error) {
    n := root
    for !n.leaf {
        bit, err := next()
        if err != nil {
            return 0, err
        }
        if bit == 0 {
            n = n.left
        } else {
            n = n.right
        }
        if n == nil {
            return 0, malformed("huffman", "invalid code")
        }
    }
    return n.symbol, nil
}
