package bitstream

import "testing"

func TestReadUintRoundtrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0x1a5, 12)
	r := NewReader(w.Bytes(), w.Len())
	got := r.ReadUint(12)
	if got != 0x1a5 {
		t.Errorf("ReadUint = 0x%x, want 0x1a5", got)
	}
}

func TestReadIntSignExtend(t *testing.T) {
	w := NewWriter()
	w.WriteInt(-1, 8)
	w.WriteInt(63, 8)
	r := NewReader(w.Bytes(), w.Len())
	if got := r.ReadInt(8); got != -1 {
		t.Errorf("ReadInt = %d, want -1", got)
	}
	if got := r.ReadInt(8); got != 63 {
		t.Errorf("ReadInt = %d, want 63", got)
	}
}

func TestTruncatedReadUsesOnlyPresentBits(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0x3f, 6) // 6 valid bits
	r := NewReader(w.Bytes(), 6)
	// read 10 bits: only 6 are present, so the value is formed from
	// those 6 bits alone rather than padded out to 10.
	got := r.ReadUint(10)
	want := uint64(0x3f)
	if got != want {
		t.Errorf("ReadUint past end = %#b, want %#b", got, want)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestFits(t *testing.T) {
	r := NewReader([]byte{0xff}, 6)
	if !r.Fits(6) {
		t.Error("Fits(6) should be true at position 0 with 6 valid bits")
	}
	if r.Fits(7) {
		t.Error("Fits(7) should be false with only 6 valid bits")
	}
}

func TestReadTextStripsPadding(t *testing.T) {
	w := NewWriter()
	w.WriteText("AB", 24) // 4 chars, "AB@@"
	r := NewReader(w.Bytes(), w.Len())
	got := r.ReadText(24)
	if got != "AB" {
		t.Errorf("ReadText = %q, want %q", got, "AB")
	}
}

func TestReadBigMatchesUint(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0xABCD, 16)
	r := NewReader(w.Bytes(), w.Len())
	big := r.ReadBig(16)
	if big.Uint64() != 0xABCD {
		t.Errorf("ReadBig = %s, want 0xABCD", big.String())
	}
}
