package stream

import (
	"context"
	"net"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/tormol/go-ais/internal/aislog"
	"github.com/tormol/go-ais/nmea"
)

// Default backoff bounds for TCPSource's reconnect loop: retry quickly at
// first, cap the interval at 30s, and never give up on its own.
const (
	DefaultBackoffInitial = 1 * time.Second
	DefaultBackoffMax     = 30 * time.Second
)

func newBackoff(initial, max time.Duration) *backoff.ExponentialBackOff {
	if initial <= 0 {
		initial = DefaultBackoffInitial
	}
	if max <= 0 {
		max = DefaultBackoffMax
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = max
	b.MaxElapsedTime = 0 // never give up; callers cancel ctx to stop
	b.Reset()
	return b
}

// TCPSource reads AIS sentences from a TCP endpoint, reconnecting with
// exponential backoff whenever the connection drops, until the caller
// cancels a Next call's context.
type TCPSource struct {
	reassembler
	addr        string
	readTimeout time.Duration
	conn        net.Conn
	backoff     *backoff.ExponentialBackOff
	buf         []byte
	closed      bool
}

// DialTCP returns a Source that lazily connects to addr on the first call
// to Next. readTimeout bounds how long a single Read can block, which is
// also how quickly a cancelled context is observed. backoffInitial and
// backoffMax bound the reconnect delay; passing 0 for either uses its
// default (1s initial, 30s cap).
func DialTCP(addr string, readTimeout time.Duration, backoffInitial, backoffMax time.Duration, log *aislog.Logger) *TCPSource {
	return &TCPSource{
		reassembler: newReassembler(log),
		addr:        addr,
		readTimeout: readTimeout,
		backoff:     newBackoff(backoffInitial, backoffMax),
		buf:         make([]byte, 4096),
	}
}

func (s *TCPSource) ensureConnected(ctx context.Context) error {
	for s.conn == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := net.Dialer{Timeout: 5 * time.Second}
		conn, err := d.DialContext(ctx, "tcp", s.addr)
		if err != nil {
			nb := s.backoff.NextBackOff()
			s.log.Warning("failed to connect to %s: %s, retrying in %s", s.addr, err, nb)
			select {
			case <-time.After(nb):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		s.conn = conn
		s.backoff.Reset()
	}
	return nil
}

// Next returns the next reassembled message, reconnecting as needed.
// Cancelling ctx while a read is in flight is observed within one
// readTimeout window, since the read deadline on the connection bounds
// how long a single Read can block; the connection is then closed, and a
// later call reconnects. A read timeout drops whatever fragment
// group was in flight, since the sentences that would have completed it may
// never arrive.
func (s *TCPSource) Next(ctx context.Context) (*nmea.Message, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if msg := s.drain(); msg != nil {
		return msg, nil
	}
	for {
		if err := s.ensureConnected(ctx); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			s.conn.Close()
			s.conn = nil
			return nil, err
		}
		s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		n, err := s.conn.Read(s.buf)
		if n > 0 {
			if msg := s.feed(s.buf[:n]); msg != nil {
				return msg, nil
			}
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				s.dropInFlight()
				continue
			}
			s.log.Warning("%s: read error: %s", s.addr, err)
			s.conn.Close()
			s.conn = nil
			continue
		}
	}
}

func (s *TCPSource) Close() error {
	s.closed = true
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
