// Package stream provides pull-based adapters that turn a byte-oriented
// transport (a file, an in-memory buffer, a reconnecting TCP connection)
// into a sequence of reassembled AIS messages, using nmea.Splitter and
// nmea.Assembler underneath. It intentionally does not know how to decode
// payloads; callers pass a Message's Payload/FillBits to ais.Decode.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/tormol/go-ais/internal/aislog"
	"github.com/tormol/go-ais/nmea"
)

// ErrClosed is returned by Next after Close has been called.
var ErrClosed = errors.New("stream: source closed")

// Source produces reassembled AIS messages one at a time.
type Source interface {
	// Next blocks until a message is available, ctx is cancelled, or the
	// source is exhausted (io.EOF) or fails.
	Next(ctx context.Context) (*nmea.Message, error)
	Close() error
}

// reassembler is embedded by every Source implementation; it turns a
// stream of raw lines into sentences and sentences into messages.
type reassembler struct {
	splitter  nmea.Splitter
	assembler *nmea.Assembler
	pending   []string
	log       *aislog.Logger
}

func newReassembler(log *aislog.Logger) reassembler {
	return reassembler{
		assembler: nmea.NewAssembler(nmea.DefaultGroups, nmea.DefaultMaxTimespan),
		log:       log,
	}
}

// feed splits chunk into sentences and reassembles them, returning the
// first complete Message found, if any. Leftover sentences from chunk that
// didn't complete a message are buffered in r.pending for drain().
func (r *reassembler) feed(chunk []byte) *nmea.Message {
	r.pending = append(r.pending, r.splitter.Feed(chunk)...)
	return r.drain()
}

// drain processes buffered sentences until one completes a message or the
// buffer runs out.
func (r *reassembler) drain() *nmea.Message {
	for len(r.pending) > 0 {
		line := r.pending[0]
		r.pending = r.pending[1:]
		s, err := nmea.ParseSentence([]byte(line), time.Now())
		if err == nil {
			err = s.Validate(nil)
		}
		if err != nil {
			r.log.Debug("dropping unparseable sentence: %s (%s)", aislog.Escape([]byte(line)), err)
			continue
		}
		msg, err := r.assembler.Accept(s)
		if err != nil {
			r.log.Debug("fragment reassembly: %s", err)
			continue
		}
		if msg != nil {
			return msg
		}
	}
	return nil
}

// dropInFlight discards the fragment group most recently touched by Accept,
// used when the underlying transport breaks mid-read and the remaining
// fragments of that group will never arrive.
func (r *reassembler) dropInFlight() {
	r.assembler.DropInFlight()
}

// FileSource reads an AIS log file to completion, then returns io.EOF.
type FileSource struct {
	reassembler
	r      *bufio.Reader
	closer io.Closer
}

// OpenFile opens path and returns a Source over its lines.
func OpenFile(path string, log *aislog.Logger) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{
		reassembler: newReassembler(log),
		r:           bufio.NewReaderSize(f, 512),
		closer:      f,
	}, nil
}

func (s *FileSource) Next(ctx context.Context) (*nmea.Message, error) {
	if msg := s.drain(); msg != nil {
		return msg, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := s.r.ReadBytes('\n')
		if len(line) > 0 {
			if msg := s.feed(line); msg != nil {
				return msg, nil
			}
		}
		if err != nil {
			return nil, err
		}
	}
}

func (s *FileSource) Close() error { return s.closer.Close() }

// ByteSource replays a fixed sequence of raw lines, matching a pull API
// over an in-memory buffer or test fixture rather than a live connection.
type ByteSource struct {
	reassembler
	lines [][]byte
	pos   int
}

// NewByteSource returns a Source that replays lines in order.
func NewByteSource(lines [][]byte, log *aislog.Logger) *ByteSource {
	return &ByteSource{reassembler: newReassembler(log), lines: lines}
}

func (s *ByteSource) Next(ctx context.Context) (*nmea.Message, error) {
	if msg := s.drain(); msg != nil {
		return msg, nil
	}
	for s.pos < len(s.lines) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := s.lines[s.pos]
		s.pos++
		if msg := s.feed(line); msg != nil {
			return msg, nil
		}
	}
	return nil, io.EOF
}

func (s *ByteSource) Close() error { return nil }
