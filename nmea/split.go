package nmea

import "bytes"

// Splitter extracts individual NMEA 0183 lines out of a stream of arbitrary
// read chunks, normalizing line endings to "\r\n" and dropping any bytes
// before the first '!'. It keeps the tail of an incomplete sentence between
// calls to Feed, so callers can pass in reused read buffers directly.
type Splitter struct {
	incomplete []byte
}

// Feed appends chunk's bytes to the splitter and returns every complete
// sentence found so far, in order. Each returned sentence is a fresh copy
// ending in "\r\n"; chunk may be reused or overwritten immediately after
// Feed returns.
func (s *Splitter) Feed(chunk []byte) []string {
	var out []string
	for len(chunk) > 0 {
		sentence, next := firstSentence(s.incomplete, chunk)
		if next == -1 {
			s.incomplete = sentence
			return out
		}
		out = append(out, string(sentence))
		s.incomplete = nil
		chunk = chunk[next:]
	}
	return out
}

// Pending returns the bytes buffered for a not-yet-terminated sentence.
func (s *Splitter) Pending() []byte { return s.incomplete }

// firstSentence extracts the text of what looks like the first AIS
// NMEA 0183 sentence in a buffer. next is the index of the first byte not
// consumed (len(buf) if everything was used) or -1 if buf doesn't contain a
// complete sentence, in which case sentence is the (possibly still
// incomplete) bytes to carry over to the next call.
func firstSentence(incomplete, buf []byte) (sentence []byte, next int) {
	next = -1
	skipped := 0
	if len(incomplete) == 0 {
		start := bytes.IndexByte(buf, '!')
		if start == -1 {
			return []byte{}, -1
		}
		skipped = start
		buf = buf[start:]
		if nextm1 := bytes.IndexByte(buf[1:], '!'); nextm1 != -1 {
			next = nextm1 + 1
		}
	} else {
		next = bytes.IndexByte(buf, '!')
	}

	end := bytes.IndexByte(buf, '\n')

	switch {
	case next == -1 && end == -1:
		return append(incomplete, buf...), -1
	case end == -1 || (next != -1 && next < end):
		cpy := growCopy(incomplete, next+2)
		cpy = append(cpy, buf[:next]...)
		cpy = append(cpy, '\r', '\n')
		return cpy, skipped + next
	case (end != 0 && buf[end-1] == '\r') ||
		(end == 0 && len(incomplete) != 0 && incomplete[len(incomplete)-1] == '\r'):
		return append(incomplete, buf[:end+1]...), skipped + end + 1
	default:
		cpy := growCopy(incomplete, end+2)
		cpy = append(cpy, buf[:end]...)
		cpy = append(cpy, '\r', '\n')
		return cpy, skipped + end + 1
	}
}

func growCopy(b []byte, add int) []byte {
	if cap(b) >= len(b)+add {
		return b
	}
	return append(make([]byte, 0, len(b)+add), b...)
}
