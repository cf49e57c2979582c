package nmea

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultGroups is the default number of concurrently in-flight fragment
// groups an Assembler tracks before evicting the least recently touched one.
const DefaultGroups = 1024

// DefaultMaxTimespan is how long an Assembler waits for the remaining
// fragments of a group before treating it as abandoned.
const DefaultMaxTimespan = 30 * time.Second

// Message is a fully reassembled AIS message: one or more sentences sharing
// a sequence id, in fragment order, with their payloads already
// concatenated and all but the last fragment's fill bits zero.
type Message struct {
	Sentences []Sentence
	Payload   string
	FillBits  uint8
	Channel   byte
	Started   time.Time
	Ended     time.Time
}

type group struct {
	sentences map[uint8]Sentence
	parts     uint8
	started   time.Time
}

type groupKey struct {
	channel byte
	seqID   uint8
}

// Assembler reassembles multi-sentence AIS messages from sentences that may
// arrive out of order, interleaved with sentences from other groups and
// with single-sentence messages. It is not safe for concurrent use by
// multiple goroutines; callers run one Assembler per stream.
type Assembler struct {
	groups      *lru.Cache
	MaxTimespan time.Duration
	lastKey     *groupKey // group most recently touched by Accept, for DropInFlight
}

// NewAssembler creates an Assembler with a bounded LRU table of at most
// maxGroups concurrently incomplete fragment groups; groups untouched the
// longest are evicted first once the table is full.
func NewAssembler(maxGroups int, maxTimespan time.Duration) *Assembler {
	if maxGroups <= 0 {
		maxGroups = DefaultGroups
	}
	if maxTimespan <= 0 {
		maxTimespan = DefaultMaxTimespan
	}
	c, _ := lru.New(maxGroups) // only errors on size<=0, already guarded
	return &Assembler{groups: c, MaxTimespan: maxTimespan}
}

// Accept feeds one parsed sentence into the assembler. It returns a Message
// once the sentence completes a fragment group (or immediately, for a
// standalone single-sentence message), or an error describing why a
// sentence was rejected or an incomplete group was discarded. Both return
// values may be nil, meaning the sentence was accepted but its group is
// still incomplete.
func (a *Assembler) Accept(s Sentence) (*Message, error) {
	if s.Checksum == ChecksumFailed {
		dropped := a.discardMatching(s)
		if dropped {
			return nil, fmt.Errorf("nmea: checksum failed, discarded matching incomplete group")
		}
		return nil, fmt.Errorf("nmea: checksum failed")
	}
	if s.Parts < 2 {
		return &Message{
			Sentences: []Sentence{s},
			Payload:   s.Payload,
			FillBits:  s.FillBits,
			Channel:   s.NormalizedChannel(),
			Started:   s.Received,
			Ended:     s.Received,
		}, nil
	}
	if s.PartIndex >= s.Parts {
		return nil, fmt.Errorf("nmea: fragment index %d >= fragment count %d", s.PartIndex, s.Parts)
	}
	if !s.HasSeqID {
		return nil, fmt.Errorf("nmea: multipart sentence without sequence id")
	}

	key := groupKey{channel: s.NormalizedChannel(), seqID: s.SeqID}
	a.lastKey = &key
	v, ok := a.groups.Get(key)
	if !ok {
		a.groups.Add(key, a.startGroup(s))
		return nil, nil
	}
	g := v.(*group)
	switch {
	case g.parts != s.Parts:
		a.groups.Add(key, a.startGroup(s))
		return nil, fmt.Errorf("nmea: sequence id collision between groups of different size")
	case s.Received.Sub(g.started) >= a.MaxTimespan:
		a.groups.Add(key, a.startGroup(s))
		return nil, fmt.Errorf("nmea: incomplete group timed out")
	default:
		if _, have := g.sentences[s.PartIndex]; have {
			a.groups.Add(key, a.startGroup(s))
			return nil, fmt.Errorf("nmea: duplicate fragment index %d", s.PartIndex)
		}
		g.sentences[s.PartIndex] = s
		if uint8(len(g.sentences)) < g.parts {
			return nil, nil
		}
		a.groups.Remove(key)
		a.lastKey = nil
		return assembleGroup(g, s.Received), nil
	}
}

// DropInFlight evicts the group most recently touched by Accept, if any is
// still pending, and reports whether it did so. Callers whose transport
// dropped mid-read (a TCP read timeout, say) use this to discard a fragment
// group that will never see its remaining sentences, rather than leaving it
// to linger until MaxTimespan or LRU eviction.
func (a *Assembler) DropInFlight() bool {
	if a.lastKey == nil {
		return false
	}
	_, ok := a.groups.Get(*a.lastKey)
	if ok {
		a.groups.Remove(*a.lastKey)
	}
	a.lastKey = nil
	return ok
}

func (a *Assembler) startGroup(s Sentence) *group {
	return &group{
		sentences: map[uint8]Sentence{s.PartIndex: s},
		parts:     s.Parts,
		started:   s.Received,
	}
}

// discardMatching drops an in-flight group if s (which failed its checksum)
// matches one by key and fragment index, reporting whether it did so.
func (a *Assembler) discardMatching(s Sentence) bool {
	if s.Parts < 2 || !s.HasSeqID {
		return false
	}
	key := groupKey{channel: s.NormalizedChannel(), seqID: s.SeqID}
	v, ok := a.groups.Get(key)
	if !ok {
		return false
	}
	g := v.(*group)
	if g.parts != s.Parts || s.Received.Sub(g.started) >= a.MaxTimespan {
		return false
	}
	if _, have := g.sentences[s.PartIndex]; have {
		return false
	}
	a.groups.Remove(key)
	return true
}

func assembleGroup(g *group, ended time.Time) *Message {
	ordered := make([]Sentence, g.parts)
	for i := uint8(0); i < g.parts; i++ {
		ordered[i] = g.sentences[i]
	}
	payload := ""
	for _, s := range ordered {
		payload += s.Payload
	}
	return &Message{
		Sentences: ordered,
		Payload:   payload,
		FillBits:  ordered[len(ordered)-1].FillBits,
		Channel:   ordered[0].NormalizedChannel(),
		Started:   g.started,
		Ended:     ended,
	}
}
