package nmea

import (
	"testing"
	"time"
)

func parseOrFatal(t *testing.T, line string) Sentence {
	t.Helper()
	s, err := ParseSentence([]byte(line), time.Now())
	if err != nil {
		t.Fatalf("ParseSentence(%q): %s", line, err)
	}
	return s
}

func TestAssemblerSingleSentencePassesThrough(t *testing.T) {
	a := NewAssembler(0, 0)
	s := parseOrFatal(t, "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\r\n")
	msg, err := a.Accept(s)
	if err != nil {
		t.Fatalf("Accept: %s", err)
	}
	if msg == nil {
		t.Fatal("expected immediate message for standalone sentence")
	}
	if msg.Payload != s.Payload {
		t.Errorf("Payload = %q, want %q", msg.Payload, s.Payload)
	}
}

func TestAssemblerReassemblesOutOfOrder(t *testing.T) {
	a := NewAssembler(0, 0)
	part2 := parseOrFatal(t, "!AIVDM,2,2,3,B,22222222222,2*26\r\n")
	part1 := parseOrFatal(t, "!AIVDM,2,1,3,B,11111111111,0*24\r\n")

	msg, err := a.Accept(part2)
	if err != nil {
		t.Fatalf("Accept(part2): %s", err)
	}
	if msg != nil {
		t.Fatal("expected no message until both fragments arrive")
	}

	msg, err = a.Accept(part1)
	if err != nil {
		t.Fatalf("Accept(part1): %s", err)
	}
	if msg == nil {
		t.Fatal("expected message after second fragment")
	}
	want := part1.Payload + part2.Payload
	if msg.Payload != want {
		t.Errorf("Payload = %q, want %q", msg.Payload, want)
	}
	if msg.FillBits != part2.FillBits {
		t.Errorf("FillBits = %d, want %d (last fragment's)", msg.FillBits, part2.FillBits)
	}
}

func TestAssemblerDiscardsOnSizeCollision(t *testing.T) {
	a := NewAssembler(0, 0)
	first := parseOrFatal(t, "!AIVDM,2,1,3,B,11111111111,0*24\r\n")
	if _, err := a.Accept(first); err != nil {
		t.Fatalf("Accept(first): %s", err)
	}
	collide := parseOrFatal(t, "!AIVDM,3,1,3,B,22222222222,0*26\r\n")
	_, err := a.Accept(collide)
	if err == nil {
		t.Fatal("expected error on sequence id collision with a different fragment count")
	}
}
