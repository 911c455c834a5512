package jpeg

import "testing"

// TestCommentSegmentAdvancesPastPayload checks that commentSegment consumes
// exactly its declared length and leaves the cursor positioned at the next
// marker, mirroring spec.md §4.1's COM handling.
func TestCommentSegmentAdvancesPastPayload(t *testing.T) {
    // COM marker (2 bytes) + length (2 bytes, inclusive of itself) + "hi".
    data := []byte{0xff, 0xfe, 0x00, 0x04, 'h', 'i', 0xff, 0xd9}
    f := newDecoder(data)
    f.offset = 0

    if err := f.commentSegment(); err != nil {
        t.Fatalf("commentSegment: %v", err)
    }
    if f.offset != 6 {
        t.Fatalf("offset after commentSegment = %d, want 6 (start of trailing EOI)", f.offset)
    }
}

func TestCommentSegmentRejectsShortLength(t *testing.T) {
    data := []byte{0xff, 0xfe, 0x00, 0x01}
    f := newDecoder(data)
    f.offset = 0

    if err := f.commentSegment(); err == nil {
        t.Fatalf("commentSegment: expected an error for a length field below the 2-byte minimum")
    }
}
