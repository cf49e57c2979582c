package ais

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDecodeType1PositionReport(t *testing.T) {
	rec, err := Decode("15M67FC000G?ufbE`FepT@3n00Sa", 0)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if rec.MsgType != 1 {
		t.Fatalf("MsgType = %d, want 1", rec.MsgType)
	}
	if rec.MMSI != "366053209" {
		t.Errorf("MMSI = %q, want 366053209", rec.MMSI)
	}
	lon, ok := rec.Get("lon")
	if !ok {
		t.Fatal("missing lon field")
	}
	if !almostEqual(lon.(float64), -122.341618, 1e-5) {
		t.Errorf("lon = %v, want ~ -122.341618", lon)
	}
}

func TestDecodeTruncatedType21(t *testing.T) {
	rec, err := Decode("E>lt;", 2)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if rec.MsgType != 21 {
		t.Fatalf("MsgType = %d, want 21", rec.MsgType)
	}
	if rec.MMSI != "000971714" {
		t.Errorf("MMSI = %q, want 000971714", rec.MMSI)
	}
	aidType, ok := rec.Get("aid_type")
	if !ok {
		t.Fatal("missing aid_type field")
	}
	if aidType != nil {
		t.Errorf("aid_type = %v, want nil (enum field truncated)", aidType)
	}
}

func TestEncodeDecodeRoundtripType1(t *testing.T) {
	rec := &Record{
		MsgType: 1,
		Repeat:  0,
		MMSI:    "366053209",
		Fields: []FieldValue{
			{Name: "nav_status", Kind: KindEnum, Value: int64(0), EnumName: "nav_status"},
			{Name: "rot", Kind: KindInt, Value: int64(0)},
			{Name: "sog", Kind: KindScaled, Value: 12.3},
			{Name: "accuracy", Kind: KindBool, Value: true},
			{Name: "lon", Kind: KindScaled, Value: -122.341618},
			{Name: "lat", Kind: KindScaled, Value: 37.806946},
			{Name: "cog", Kind: KindScaled, Value: 90.0},
			{Name: "true_heading", Kind: KindUint, Value: uint64(90)},
			{Name: "timestamp", Kind: KindUint, Value: uint64(10)},
			{Name: "maneuver", Kind: KindEnum, Value: int64(0), EnumName: "maneuver"},
			{Name: "spare", Kind: KindUint, Value: uint64(0)},
			{Name: "raim", Kind: KindBool, Value: false},
			{Name: "radio", Kind: KindUint, Value: uint64(0)},
		},
	}
	payload, fillBits, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	got, err := Decode(payload, fillBits)
	if err != nil {
		t.Fatalf("Decode(Encode(...)): %s", err)
	}
	if got.MMSI != rec.MMSI {
		t.Errorf("MMSI roundtrip = %q, want %q", got.MMSI, rec.MMSI)
	}
	lon, _ := got.Get("lon")
	if !almostEqual(lon.(float64), -122.341618, 1e-4) {
		t.Errorf("lon roundtrip = %v", lon)
	}
}

func TestUnknownMessageType(t *testing.T) {
	// every bit set, so msg_type field 111111 = 63: armor char for value
	// 63 (0b111111) is 'w'.
	_, err := Decode("wwwwwwww", 0)
	if err == nil {
		t.Fatal("expected UnknownMessageTypeError")
	}
	if _, ok := err.(*UnknownMessageTypeError); !ok {
		t.Errorf("err = %T, want *UnknownMessageTypeError", err)
	}
}

func TestToMapEnumAsName(t *testing.T) {
	rec, err := Decode("15M67FC000G?ufbE`FepT@3n00Sa", 0)
	if err != nil {
		t.Fatal(err)
	}
	m := rec.ToMap(EnumOpts{AsInt: false})
	ev, ok := m["nav_status"].(EnumValue)
	if !ok {
		t.Fatalf("nav_status = %#v, want EnumValue", m["nav_status"])
	}
	if ev.Name == "" {
		t.Error("expected a non-empty enum name")
	}
}
