package armor

import "testing"

func TestDecodeEncodeRoundtrip(t *testing.T) {
	for v := uint8(0); v < 64; v++ {
		c := Encode(v)
		got, err := Decode(c)
		if err != nil {
			t.Fatalf("Decode(Encode(%d)=%q): %s", v, c, err)
		}
		if got != v {
			t.Errorf("Decode(Encode(%d)=%q) = %d, want %d", v, c, got, v)
		}
	}
}

func TestDecodeKnownChars(t *testing.T) {
	cases := []struct {
		c    byte
		want uint8
	}{
		{'0', 0},
		{'9', 9},
		{'W', 39},
		{'`', 40},
		{'w', 63},
	}
	for _, c := range cases {
		got, err := Decode(c.c)
		if err != nil {
			t.Fatalf("Decode(%q): %s", c.c, err)
		}
		if got != c.want {
			t.Errorf("Decode(%q) = %d, want %d", c.c, got, c.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, c := range []byte{0x2f, 0x58, 0x5f, 0x78, 0x00} {
		if _, err := Decode(c); err == nil {
			t.Errorf("Decode(0x%02x): expected error, got nil", c)
		}
	}
}

func TestDecodeStringPayload(t *testing.T) {
	// first three characters of `15M67FC000G?ufbE\`FepT@3n00Sa` from the spec examples
	vals, err := DecodeString("15M")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{1, 5, 29}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("vals[%d] = %d, want %d", i, vals[i], want[i])
		}
	}
}
