package ais

import (
	"fmt"

	"github.com/tormol/go-ais/armor"
	"github.com/tormol/go-ais/bitstream"
)

const (
	scaleCoord  = 1.0 / 600000.0 // high-resolution lon/lat, 1/10000 minute
	scaleLowRes = 1.0 / 600.0    // type 17/23/27 lon/lat, 1/10 minute
	scaleTenth  = 0.1            // SOG/COG/draught tenths
)

// pack6Bit armors-decodes payload and packs the resulting 6-bit values into
// a bit buffer, discarding the trailing fillBits of padding from the final
// character.
func pack6Bit(payload string, fillBits uint8) (*bitstream.Reader, error) {
	vals, err := armor.DecodeString(payload)
	if err != nil {
		return nil, &ArmorError{Msg: err.Error()}
	}
	w := bitstream.NewWriter()
	for _, v := range vals {
		w.WriteUint(uint64(v), 6)
	}
	total := uint(len(vals))*6 - uint(fillBits)
	return bitstream.NewReader(w.Bytes(), total), nil
}

// unpack6Bit is the inverse of pack6Bit: it groups w's bits into 6-bit
// armor values, padding the final group with zero bits, and returns the
// armored payload plus how many padding bits were added.
func unpack6Bit(w *bitstream.Writer) (payload string, fillBits uint8) {
	rem := w.Len() % 6
	fillBits = uint8((6 - rem) % 6)
	if rem != 0 {
		w.WriteUint(0, 6-rem)
	}
	r := bitstream.NewReader(w.Bytes(), w.Len())
	n := w.Len() / 6
	vals := make([]uint8, n)
	for i := range vals {
		vals[i] = uint8(r.ReadUint(6))
	}
	return armor.EncodeValues(vals), fillBits
}

// Decode parses an AIS payload (already de-fragmented, still armored) into
// a Record, removing the six-bit armor itself. payload is the armored payload string
// and fillBits the number of bits to discard from its last character, both
// as carried by a complete nmea.Message.
func Decode(payload string, fillBits uint8) (*Record, error) {
	r, err := pack6Bit(payload, fillBits)
	if err != nil {
		return nil, err
	}
	msgType := uint8(r.ReadUint(6))
	repeat := uint8(r.ReadUint(2))
	mmsi := fmt.Sprintf("%09d", r.ReadUint(30))

	// A type-0 discriminator is treated as a type 1 position report: some
	// transmitters have been observed to use it that way.
	effectiveType := msgType
	if effectiveType == 0 {
		effectiveType = 1
	}

	fields, err := decodeBody(effectiveType, r)
	if err != nil {
		return nil, err
	}
	return &Record{MsgType: msgType, Repeat: repeat, MMSI: mmsi, Fields: fields}, nil
}

func decodeBody(msgType uint8, r *bitstream.Reader) ([]FieldValue, error) {
	switch msgType {
	case 1, 2, 3:
		return executeSchema(r, positionReportFields), nil
	case 4, 11:
		return executeSchema(r, baseStationFields), nil
	case 5:
		return executeSchema(r, staticVoyageFields), nil
	case 6:
		return decodeBinaryAddressed(r), nil
	case 7, 13:
		return decodeBinaryAck(r), nil
	case 8:
		return decodeBinaryBroadcast(r), nil
	case 9:
		return executeSchema(r, sarAircraftFields), nil
	case 10:
		return executeSchema(r, utcInquiryFields), nil
	case 12:
		return decodeSafetyText(r, "seqno_dest"), nil
	case 14:
		return decodeSafetyText(r, "broadcast"), nil
	case 15:
		return decodeInterrogation(r), nil
	case 16:
		return decodeAssignedMode(r), nil
	case 17:
		return decodeDGNSS(r), nil
	case 18:
		return executeSchema(r, classBPositionFields), nil
	case 19:
		return executeSchema(r, classBExtendedFields), nil
	case 20:
		return executeSchema(r, dataLinkMgmtFields), nil
	case 21:
		return decodeAidToNavigation(r), nil
	case 22:
		return decodeChannelManagement(r), nil
	case 23:
		return executeSchema(r, groupAssignmentFields), nil
	case 24:
		return decodeStaticDataReport(r), nil
	case 25:
		return decodeSingleSlotBinary(r), nil
	case 26:
		return decodeMultiSlotBinary(r), nil
	case 27:
		return executeSchema(r, longRangeFields), nil
	default:
		return nil, &UnknownMessageTypeError{Type: msgType}
	}
}

// Encode renders a Record's fields back into an armored payload and fill
// bit count, dispatching on rec.MsgType the same way Decode does.
func Encode(rec *Record) (payload string, fillBits uint8, err error) {
	w := bitstream.NewWriter()
	w.WriteUint(uint64(rec.MsgType), 6)
	w.WriteUint(uint64(rec.Repeat), 2)
	var mmsiNum uint64
	fmt.Sscanf(rec.MMSI, "%d", &mmsiNum)
	w.WriteUint(mmsiNum, 30)

	effectiveType := rec.MsgType
	if effectiveType == 0 {
		effectiveType = 1
	}
	if err := encodeBody(effectiveType, w, rec); err != nil {
		return "", 0, err
	}
	payload, fillBits = unpack6Bit(w)
	return payload, fillBits, nil
}

func encodeBody(msgType uint8, w *bitstream.Writer, rec *Record) error {
	switch msgType {
	case 1, 2, 3:
		encodeSchema(w, positionReportFields, rec)
	case 4, 11:
		encodeSchema(w, baseStationFields, rec)
	case 5:
		encodeSchema(w, staticVoyageFields, rec)
	case 9:
		encodeSchema(w, sarAircraftFields, rec)
	case 10:
		encodeSchema(w, utcInquiryFields, rec)
	case 17:
		encodeDGNSS(w, rec)
	case 18:
		encodeSchema(w, classBPositionFields, rec)
	case 19:
		encodeSchema(w, classBExtendedFields, rec)
	case 20:
		encodeSchema(w, dataLinkMgmtFields, rec)
	case 23:
		encodeSchema(w, groupAssignmentFields, rec)
	case 27:
		encodeSchema(w, longRangeFields, rec)
	case 6:
		encodeBinaryAddressed(w, rec)
	case 8:
		encodeBinaryBroadcast(w, rec)
	case 12, 14:
		encodeSchema(w, safetyTextHeaderFields(msgType), rec)
		encodeTextTail(w, rec, "text")
	case 7, 13:
		encodeBinaryAck(w, rec)
	case 15:
		encodeInterrogation(w, rec)
	case 16:
		encodeAssignedMode(w, rec)
	case 21:
		encodeAidToNavigation(w, rec)
	case 22:
		encodeChannelManagement(w, rec)
	case 24:
		encodeStaticDataReport(w, rec)
	case 25:
		encodeSingleSlotBinary(w, rec)
	case 26:
		encodeMultiSlotBinary(w, rec)
	default:
		return fmt.Errorf("ais: encoding message type %d is not supported", msgType)
	}
	return nil
}

func encodeRawTail(w *bitstream.Writer, rec *Record, name string) {
	v, _ := rec.Get(name)
	b := asBigInt(v)
	width := uint(b.BitLen())
	if rem := width % 8; rem != 0 {
		width += 8 - rem
	}
	w.WriteBig(b, width)
}

func encodeTextTail(w *bitstream.Writer, rec *Record, name string) {
	v, _ := rec.Get(name)
	s, _ := v.(string)
	if len(s) == 0 {
		return
	}
	w.WriteText(s, uint(len(s))*6)
}
