package nmea

import (
	"testing"
	"time"
)

func TestParseSentenceSingle(t *testing.T) {
	line := []byte("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\r\n")
	s, err := ParseSentence(line, time.Now())
	if err != nil {
		t.Fatalf("ParseSentence: %s", err)
	}
	if err := s.Validate(nil); err != nil {
		t.Fatalf("Validate: %s", err)
	}
	if string(s.Identifier[:]) != "AIVDM" {
		t.Errorf("Identifier = %s, want AIVDM", s.Identifier)
	}
	if s.Parts != 1 || s.PartIndex != 0 {
		t.Errorf("Parts/PartIndex = %d/%d, want 1/0", s.Parts, s.PartIndex)
	}
	if s.Channel != 'B' {
		t.Errorf("Channel = %c, want B", s.Channel)
	}
	if s.Payload != "15M67FC000G?ufbE`FepT@3n00Sa" {
		t.Errorf("Payload = %q", s.Payload)
	}
	if s.FillBits != 0 {
		t.Errorf("FillBits = %d, want 0", s.FillBits)
	}
	if s.Checksum != ChecksumPassed {
		t.Errorf("Checksum = %c, want passed", s.Checksum)
	}
}

func TestParseSentenceMultipart(t *testing.T) {
	line := []byte("!AIVDM,2,1,3,B,55P5TL01VIaAL@7WKO@mBplU92222222222221@44@mD0N0FhQEP100,0*2C\r\n")
	s, err := ParseSentence(line, time.Now())
	if err != nil {
		t.Fatalf("ParseSentence: %s", err)
	}
	if err := s.Validate(nil); err != nil {
		t.Fatalf("Validate: %s", err)
	}
	if s.Parts != 2 || s.PartIndex != 0 {
		t.Errorf("Parts/PartIndex = %d/%d, want 2/0", s.Parts, s.PartIndex)
	}
	if !s.HasSeqID || s.SeqID != 3 {
		t.Errorf("SeqID = %d (has=%v), want 3", s.SeqID, s.HasSeqID)
	}
}

func TestChecksumMismatch(t *testing.T) {
	line := []byte("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*00\r\n")
	s, err := ParseSentence(line, time.Now())
	if err != nil {
		t.Fatalf("ParseSentence: %s", err)
	}
	if s.Checksum != ChecksumFailed {
		t.Errorf("Checksum = %c, want failed", s.Checksum)
	}
}

func TestFormatProducesValidChecksum(t *testing.T) {
	line := Format("AIVDM", 1, 0, 0, false, 'B', "15M67FC000G?ufbE`FepT@3n00Sa", 0)
	s, err := ParseSentence([]byte(line), time.Now())
	if err != nil {
		t.Fatalf("ParseSentence(Format(...)): %s", err)
	}
	if s.Checksum != ChecksumPassed {
		t.Errorf("Format produced a sentence with checksum %c", s.Checksum)
	}
}
