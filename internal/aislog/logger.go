// Package aislog is a small thread-safe leveled logger used internally by
// the stream adapters to report connection and reassembly diagnostics.
// It is not part of the public decoding API: a nil *Logger disables logging
// entirely so pure codec use never pays for it.
package aislog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Importance levels, lowest first.
const (
	Debug   int = 9
	Info    int = 7
	Warning int = 5
	Error   int = 3
)

// Logger is a minimal mutex-guarded writer with an importance threshold.
// Should not be copied after first use.
type Logger struct {
	writeTo   io.Writer
	writeLock sync.Mutex
	Treshold  int
}

// New creates a Logger that writes messages at or below level to w.
func New(w io.Writer, level int) *Logger {
	return &Logger{writeTo: w, Treshold: level}
}

func (l *Logger) prefix(level int) {
	fmt.Fprint(l.writeTo, time.Now().Format("2006-01-02 15:04:05 "))
	switch level {
	case Warning:
		fmt.Fprint(l.writeTo, "WARNING: ")
	case Error:
		fmt.Fprint(l.writeTo, "ERROR: ")
	}
}

// Log writes the message if level passes the logger's threshold.
// A nil Logger silently drops every message.
func (l *Logger) Log(level int, format string, args ...interface{}) {
	if l == nil || level > l.Treshold {
		return
	}
	l.writeLock.Lock()
	defer l.writeLock.Unlock()
	l.prefix(level)
	if len(args) == 0 {
		fmt.Fprint(l.writeTo, format)
	} else {
		fmt.Fprintf(l.writeTo, format, args...)
	}
	fmt.Fprintln(l.writeTo)
}

func (l *Logger) Debug(format string, args ...interface{})   { l.Log(Debug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})    { l.Log(Info, format, args...) }
func (l *Logger) Warning(format string, args ...interface{}) { l.Log(Warning, format, args...) }
func (l *Logger) Error(format string, args ...interface{})   { l.Log(Error, format, args...) }

// Composer lets a caller hold the write lock across several writes so a
// multi-part diagnostic message isn't interleaved with another goroutine's.
type Composer struct {
	writeTo io.Writer
	lock    *sync.Mutex
}

// Compose starts a composed message if level passes the threshold, else
// returns a Composer that silently discards writes.
func (l *Logger) Compose(level int) Composer {
	if l == nil || level > l.Treshold {
		return Composer{}
	}
	l.writeLock.Lock()
	l.prefix(level)
	return Composer{writeTo: l.writeTo, lock: &l.writeLock}
}

func (c Composer) Write(format string, args ...interface{}) {
	if c.writeTo == nil {
		return
	}
	if len(args) == 0 {
		fmt.Fprint(c.writeTo, format)
	} else {
		fmt.Fprintf(c.writeTo, format, args...)
	}
}

func (c Composer) Close() {
	if c.writeTo == nil {
		return
	}
	fmt.Fprintln(c.writeTo)
	c.lock.Unlock()
}

// Escape escapes CR, LF and NUL for safely logging raw NMEA sentence text.
func Escape(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case '\r':
			out = append(out, '\\', 'r')
		case '\n':
			out = append(out, '\\', 'n')
		case 0:
			out = append(out, '\\', '0')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
