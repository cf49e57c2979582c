package stream

import (
	"context"
	"io"
	"testing"
)

func TestByteSourceYieldsMessages(t *testing.T) {
	lines := [][]byte{
		[]byte("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\r\n"),
	}
	src := NewByteSource(lines, nil)
	defer src.Close()

	msg, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %s", err)
	}
	if msg.Payload != "15M67FC000G?ufbE`FepT@3n00Sa" {
		t.Errorf("Payload = %q", msg.Payload)
	}

	_, err = src.Next(context.Background())
	if err != io.EOF {
		t.Errorf("second Next() = %v, want io.EOF", err)
	}
}

func TestByteSourceReassemblesFragments(t *testing.T) {
	lines := [][]byte{
		[]byte("!AIVDM,2,1,3,B,11111111111,0*24\r\n"),
		[]byte("!AIVDM,2,2,3,B,22222222222,2*26\r\n"),
	}
	src := NewByteSource(lines, nil)
	msg, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %s", err)
	}
	if msg.Payload != "1111111111122222222222" {
		t.Errorf("Payload = %q", msg.Payload)
	}
}

func TestByteSourceCancellation(t *testing.T) {
	src := NewByteSource([][]byte{
		[]byte("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\r\n"),
	}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Next(ctx)
	if err != context.Canceled {
		t.Errorf("Next(cancelled) = %v", err)
	}
}
