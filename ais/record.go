package ais

import (
	"fmt"
	"strings"
)

// FieldValue is one named value decoded from (or to be encoded into) an
// AIS payload. Value holds nil (absent/truncated), uint64, int64, bool,
// float64 (for KindScaled), string (for KindText and KindMMSI), or
// *big.Int (for KindRaw).
type FieldValue struct {
	Name     string
	Kind     Kind
	Value    interface{}
	EnumName string // set for KindEnum: which table to resolve the name from
}

// EnumValue is the presentation-layer pairing of an enum's raw integer and
// its symbolic name, produced only when a caller asks to render enums by
// name instead of by number.
type EnumValue struct {
	Value int64
	Name  string
}

// Record is the decoded form of one AIS message: a mapping from field name
// to value, in schema order. MsgType and Repeat are promoted to their own
// fields since every message type carries them identically.
type Record struct {
	MsgType uint8
	Repeat  uint8
	MMSI    string
	Fields  []FieldValue
}

// Get returns the named field's raw value and whether the field exists in
// this record (it may exist with a nil Value if it was truncated/absent).
func (r *Record) Get(name string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r *Record) field(name string) (FieldValue, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldValue{}, false
}

// EnumOpts controls enum rendering for ToMap/ToJSON.
type EnumOpts struct {
	// AsInt renders enum fields as their raw integer rather than an
	// EnumValue{int, name} pair.
	AsInt bool
}

// ToMap renders the record as a mapping from field name to presentation
// value: integers as integers, KindScaled as float64, KindMMSI as a
// zero-padded string, and KindEnum as either a bare integer (AsInt) or an
// EnumValue pairing the integer with its symbolic name.
func (r *Record) ToMap(opts EnumOpts) map[string]interface{} {
	out := make(map[string]interface{}, len(r.Fields)+3)
	out["msg_type"] = r.MsgType
	out["repeat"] = r.Repeat
	out["mmsi"] = r.MMSI
	for _, f := range r.Fields {
		if f.Kind == KindEnum && !opts.AsInt && f.Value != nil {
			v := f.Value.(int64)
			out[f.Name] = EnumValue{Value: v, Name: enumName(f.EnumName, v)}
			continue
		}
		out[f.Name] = f.Value
	}
	return out
}

// ToJSON renders the record as a JSON object, msg_type, repeat and mmsi
// first, followed by the per-type fields in schema order. Enums are rendered by
// integer value (enum_as_int semantics) for a stable, dependency-free
// representation.
func (r *Record) ToJSON() string {
	var b strings.Builder
	b.WriteByte('{')
	fmt.Fprintf(&b, "%q:%d,%q:%d,%q:%q", "msg_type", r.MsgType, "repeat", r.Repeat, "mmsi", r.MMSI)
	for _, f := range r.Fields {
		b.WriteByte(',')
		fmt.Fprintf(&b, "%q:", f.Name)
		writeJSONValue(&b, f)
	}
	b.WriteByte('}')
	return b.String()
}

func writeJSONValue(b *strings.Builder, f FieldValue) {
	if f.Value == nil {
		b.WriteString("null")
		return
	}
	switch f.Kind {
	case KindText, KindMMSI:
		fmt.Fprintf(b, "%q", f.Value)
	case KindBool:
		fmt.Fprintf(b, "%t", f.Value)
	case KindRaw:
		fmt.Fprintf(b, "%q", fmt.Sprint(f.Value))
	default:
		fmt.Fprintf(b, "%v", f.Value)
	}
}

// Envelope carries the NMEA-layer fields surfaced alongside a decoded
// Record by DecodeAndMerge.
type Envelope struct {
	Talker   string
	Type     uint8
	Channel  byte
	FragCnt  uint8
	FragNum  uint8
	SeqID    *uint8
	Payload  string
	FillBits uint8
	Checksum string
	Raw      string
}

// DecodeAndMerge decodes payload and returns a single map combining the
// envelope fields (talker, type, channel, frag_cnt, frag_num, seq_id,
// payload, fill_bits, checksum, raw, ais_id) with the decoded record's own
// fields, matching the "decode and merge" view callers commonly want for
// logging or serialization.
func DecodeAndMerge(env Envelope, opts EnumOpts) (map[string]interface{}, error) {
	rec, err := Decode(env.Payload, env.FillBits)
	if err != nil {
		return nil, err
	}
	out := rec.ToMap(opts)
	out["talker"] = env.Talker
	out["type"] = env.Type
	out["channel"] = string(env.Channel)
	out["frag_cnt"] = env.FragCnt
	out["frag_num"] = env.FragNum
	if env.SeqID != nil {
		out["seq_id"] = *env.SeqID
	} else {
		out["seq_id"] = nil
	}
	out["payload"] = env.Payload
	out["fill_bits"] = env.FillBits
	out["checksum"] = env.Checksum
	out["raw"] = env.Raw
	out["ais_id"] = rec.MsgType
	return out, nil
}
