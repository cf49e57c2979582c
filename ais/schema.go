package ais

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tormol/go-ais/bitstream"
)

// FieldSpec declares one field of a message type's layout: its bit width
// and how to interpret those bits. A schema is just an ordered []FieldSpec;
// executeSchema walks it against a bitstream.Reader positioned right after
// the preceding field.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Width    uint
	Scale    float64 // for KindScaled: decoded = raw * Scale
	Signed   bool    // for KindScaled: read as ReadInt instead of ReadUint
	EnumName string  // for KindEnum: which table resolves the symbolic name
	Optional bool    // tail field: absent (not zero-padded) if it doesn't fully fit
}

// executeSchema decodes fields in order from r, applying the three
// truncation rules: plain fields read whatever bits of them are present via
// the bit reader, narrowing rather than erroring, while enum and Optional
// fields explicitly check they fit before reading and become a nil-valued
// field otherwise.
func executeSchema(r *bitstream.Reader, fields []FieldSpec) []FieldValue {
	out := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		out = append(out, decodeField(r, f))
	}
	return out
}

func decodeField(r *bitstream.Reader, f FieldSpec) FieldValue {
	fv := FieldValue{Name: f.Name, Kind: f.Kind, EnumName: f.EnumName}
	mustFit := f.Optional || f.Kind == KindEnum
	if mustFit && !r.Fits(f.Width) {
		r.Skip(f.Width)
		return fv
	}
	switch f.Kind {
	case KindUint, KindMMSI:
		v := r.ReadUint(f.Width)
		if f.Kind == KindMMSI {
			fv.Value = fmt.Sprintf("%09d", v)
		} else {
			fv.Value = v
		}
	case KindInt:
		fv.Value = r.ReadInt(f.Width)
	case KindBool:
		fv.Value = r.ReadBool()
	case KindScaled:
		if f.Signed {
			fv.Value = float64(r.ReadInt(f.Width)) * f.Scale
		} else {
			fv.Value = float64(r.ReadUint(f.Width)) * f.Scale
		}
	case KindText:
		fv.Value = r.ReadText(f.Width)
	case KindRaw:
		fv.Value = r.ReadBig(f.Width)
	case KindEnum:
		fv.Value = int64(r.ReadUint(f.Width))
	}
	return fv
}

// encodeSchema writes fields in order into w, pulling each field's value
// out of rec by name. A missing or nil-valued field writes as all-zero
// bits, mirroring how a truncated payload decodes.
func encodeSchema(w *bitstream.Writer, fields []FieldSpec, rec *Record) {
	for _, f := range fields {
		fv, ok := rec.field(f.Name)
		if !ok || fv.Value == nil {
			w.WriteUint(0, f.Width)
			continue
		}
		encodeField(w, f, fv.Value)
	}
}

func encodeField(w *bitstream.Writer, f FieldSpec, value interface{}) {
	switch f.Kind {
	case KindUint:
		w.WriteUint(toUint64(value), f.Width)
	case KindMMSI:
		var n uint64
		fmt.Sscanf(value.(string), "%d", &n)
		w.WriteUint(n, f.Width)
	case KindInt:
		w.WriteInt(toInt64(value), f.Width)
	case KindBool:
		w.WriteBool(value.(bool))
	case KindScaled:
		f64 := value.(float64)
		if f.Signed {
			w.WriteInt(int64(math.Round(f64/f.Scale)), f.Width)
		} else {
			w.WriteUint(uint64(math.Round(f64/f.Scale)), f.Width)
		}
	case KindText:
		w.WriteText(value.(string), f.Width)
	case KindRaw:
		w.WriteBig(asBigInt(value), f.Width)
	case KindEnum:
		w.WriteUint(uint64(toInt64(value)), f.Width)
	}
}

func toUint64(v interface{}) uint64 {
	switch x := v.(type) {
	case uint64:
		return x
	case int64:
		return uint64(x)
	case int:
		return uint64(x)
	default:
		return 0
	}
}

func asBigInt(v interface{}) *big.Int {
	if b, ok := v.(*big.Int); ok {
		return b
	}
	return new(big.Int)
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case uint64:
		return int64(x)
	case int:
		return int64(x)
	default:
		return 0
	}
}
