package tui

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// keyBytes translates a key event into the bytes a terminal would send.
// Keys with no meaning to the line editor return nil.
func keyBytes(event *tcell.EventKey) []byte {
	switch event.Key() {
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyEscape:
		return []byte{0x1b}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x08}
	case tcell.KeyCtrlU:
		return []byte{0x15}
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyRune:
		return []byte(string(event.Rune()))
	}
	return nil
}

// keyReader turns key presses from the UI goroutine into a blocking
// io.Reader for the console.
type keyReader struct {
	keys    chan []byte
	pending []byte
	done    chan struct{}
	once    sync.Once
}

func newKeyReader(buffer int) *keyReader {
	return &keyReader{
		keys: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// push queues a key without blocking. It reports false when the queue is
// full or the reader is closed.
func (k *keyReader) push(b []byte) bool {
	select {
	case <-k.done:
		return false
	default:
	}
	select {
	case k.keys <- b:
		return true
	default:
		return false
	}
}

func (k *keyReader) Read(p []byte) (int, error) {
	if len(k.pending) == 0 {
		select {
		case b := <-k.keys:
			k.pending = b
		case <-k.done:
			return 0, io.EOF
		}
	}
	n := copy(p, k.pending)
	k.pending = k.pending[n:]
	return n, nil
}

// Close makes pending and future reads return io.EOF.
func (k *keyReader) Close() error {
	k.once.Do(func() { close(k.done) })
	return nil
}
