package ais

import "fmt"

// FramingError indicates the NMEA envelope around a payload was malformed
// (bad field count, bad fragment numbering) independent of its contents.
type FramingError struct{ Msg string }

func (e *FramingError) Error() string { return "ais: framing error: " + e.Msg }

// ChecksumError indicates a sentence's checksum did not match its contents.
type ChecksumError struct{ Msg string }

func (e *ChecksumError) Error() string { return "ais: checksum error: " + e.Msg }

// ArmorError indicates a payload character fell outside the six-bit armor
// alphabet.
type ArmorError struct{ Msg string }

func (e *ArmorError) Error() string { return "ais: armor error: " + e.Msg }

// UnknownMessageTypeError is always surfaced to the caller, even though
// IncompleteGroup and TruncatedPayload conditions are not: an unrecognized
// message type means the decoder cannot say anything about the payload at
// all.
type UnknownMessageTypeError struct{ Type uint8 }

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("ais: unknown message type %d", e.Type)
}

// IncompleteGroupError describes a fragment group that was abandoned before
// completion. Nothing in this module returns it: the stream adapters log
// abandoned groups as plain debug messages, and groups evicted from the
// assembler's LRU table are dropped without any report.
type IncompleteGroupError struct{ Msg string }

func (e *IncompleteGroupError) Error() string { return "ais: incomplete group: " + e.Msg }
