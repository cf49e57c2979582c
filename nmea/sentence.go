// Package nmea parses and formats the NMEA 0183 sentence envelope that
// carries AIS payloads (!AIVDM, !AIVDO, !ARVDM and similar talker/sentence
// combinations), verifies and computes its checksum, and reassembles
// multi-sentence messages.
package nmea

import (
	"bytes"
	"fmt"
	"time"
)

// ChecksumResult records whether a sentence carried a checksum and, if so,
// whether it matched the computed value.
type ChecksumResult byte

const (
	ChecksumPassed = ChecksumResult('t') // sentence has a checksum that matches
	ChecksumFailed = ChecksumResult('f') // sentence has a checksum that doesn't match
	ChecksumAbsent = ChecksumResult('N') // sentence has no checksum field
)

// recognized talker+sentence identifiers for AIS traffic. The final letter
// is 'M' for over-the-air traffic and 'O' for own-ship/self-transmitted.
var identifiers = []string{
	"ABVD", "ADVD", "AIVD", "ANVD", "ARVD",
	"ASVD", "ATVD", "AXVD", "BSVD", "SAVD",
}

// Sentence holds the fields parsed out of one NMEA 0183 line, plus the
// verbatim bytes it was parsed from.
type Sentence struct {
	Identifier [5]byte // e.g. "AIVDM"
	Parts      uint8   // total fragment count, starts at 1
	PartIndex  uint8   // this fragment's index, starts at 0
	SeqID      uint8   // sequence (group) id, 10 when absent
	HasSeqID   bool
	Channel    byte // 'A' or 'B', '*' if absent
	FillBits   uint8
	Checksum   ChecksumResult
	Payload    string // armored payload characters only
	Received   time.Time
	Raw        []byte // the full line, including trailing CRLF
}

// ParseSentence extracts the fields of a single NMEA 0183 line assumed to
// carry an AIS payload. It performs the minimum validation needed to find
// field boundaries; call Validate for full field-range checking. A failed
// or absent checksum is not itself an error: the result is recorded in
// Checksum so callers (in particular the fragment Assembler) can decide
// what to do with it.
func ParseSentence(b []byte, received time.Time) (Sentence, error) {
	if len(b) < 17 { // len(`!AIVDM,1,1,,,,0\r\n`): empty payload, no checksum
		return Sentence{}, fmt.Errorf("nmea: sentence too short (%d bytes)", len(b))
	}
	if len(b) > 99 { // nominally 82, some sources exceed it
		return Sentence{}, fmt.Errorf("nmea: sentence too long (%d bytes)", len(b))
	}
	s := Sentence{
		Raw:      append([]byte(nil), b...),
		Received: received,
		Identifier: [5]byte{b[1], b[2], b[3], b[4], b[5]},
		Parts:      b[7] - '0',
		PartIndex:  b[9] - '1',
		SeqID:      10,
		Channel:    '*',
		FillBits:   255,
		Checksum:   ChecksumAbsent,
	}

	empty := 0
	seq := b[11]
	channel := b[13]
	if seq != ',' {
		s.SeqID = seq - '0'
		s.HasSeqID = true
	} else {
		empty++
		channel = b[13-empty]
	}
	if channel != ',' {
		s.Channel = channel
	} else {
		empty++
	}

	payloadStart := 15 - empty
	payloadLen := bytes.IndexByte(b[payloadStart:], ',')
	if payloadLen == -1 {
		return s, fmt.Errorf("nmea: too few commas")
	}
	lastComma := payloadStart + payloadLen
	s.Payload = string(b[payloadStart:lastComma])
	s.FillBits = b[lastComma+1] - '0'

	after := len(b) - 2 - (lastComma + 1)
	if after == 1 {
		return s, nil // no checksum field
	} else if after != 4 {
		return s, fmt.Errorf("nmea: malformed fill-bits or checksum field (len %d)", after)
	}

	wantHex := b[lastComma+3 : lastComma+5]
	got := Checksum(b[1 : lastComma+2])
	if fmt.Sprintf("%02X", got) == string(wantHex) {
		s.Checksum = ChecksumPassed
	} else {
		s.Checksum = ChecksumFailed
	}
	return s, nil
}

// Validate performs the full range/shape checks ParseSentence skips for
// speed. parserErr should be the error (possibly nil) ParseSentence
// returned for the same sentence.
func (s Sentence) Validate(parserErr error) error {
	if parserErr != nil {
		return parserErr
	}
	valid := false
	for _, id := range identifiers {
		if string(s.Identifier[:4]) == id {
			valid = true
			break
		}
	}
	if !valid || (s.Identifier[4] != 'M' && s.Identifier[4] != 'O') {
		return fmt.Errorf("nmea: unrecognized identifier %s", s.Identifier)
	} else if s.Parts > 9 || s.Parts == 0 {
		return fmt.Errorf("nmea: part count is not a positive digit")
	} else if s.PartIndex >= s.Parts {
		return fmt.Errorf("nmea: part index is not a digit or too high")
	} else if s.HasSeqID && s.SeqID > 9 {
		return fmt.Errorf("nmea: sequence id is not a digit")
	} else if s.FillBits > 5 {
		return fmt.Errorf("nmea: fill bits is not a digit")
	} else if !s.HasSeqID && s.Parts != 1 {
		return fmt.Errorf("nmea: multipart sentence without sequence id")
	} else if s.HasSeqID && s.Parts == 1 {
		return fmt.Errorf("nmea: standalone sentence with sequence id")
	} else if s.Channel != 'A' && s.Channel != 'B' && s.Channel != '1' && s.Channel != '2' && s.Channel != '*' {
		return fmt.Errorf("nmea: unrecognized channel %c", s.Channel)
	}
	return nil
}

// NormalizedChannel returns the channel letter, mapping the numeric '1'/'2'
// convention some sources use onto 'A'/'B'.
func (s Sentence) NormalizedChannel() byte {
	switch s.Channel {
	case '1':
		return 'A'
	case '2':
		return 'B'
	default:
		return s.Channel
	}
}

// Format renders a Sentence back into wire form, computing a fresh
// checksum. Used by the encode direction (building sentences from a
// payload produced by ais.Encode).
func Format(talker string, parts, partIndex uint8, seqID uint8, hasSeqID bool, channel byte, payload string, fillBits uint8) string {
	seqField := ""
	if hasSeqID {
		seqField = fmt.Sprintf("%d", seqID)
	}
	chField := ""
	if channel != 0 && channel != '*' {
		chField = string(channel)
	}
	body := fmt.Sprintf("%s,%d,%d,%s,%s,%s,%d",
		talker, parts, partIndex+1, seqField, chField, payload, fillBits)
	sum := Checksum([]byte(body))
	return fmt.Sprintf("!%s*%02X\r\n", body, sum)
}

// Checksum computes the NMEA 0183 checksum: the XOR of every byte in b.
// Callers pass the bytes strictly between the leading '!' and trailing '*'.
func Checksum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum ^= c
	}
	return sum
}
