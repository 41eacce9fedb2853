package glove

import (
	"fmt"
	"io"
	"sync"
)

// Mock simulates the serial link for testing and development. Emitted
// readings are captured in order; an optional writer echoes each line, which
// lets the CLI run the full stream against the console.
type Mock struct {
	mu        sync.Mutex
	connected bool
	readings  []Reading
	closes    int
	echo      io.Writer
}

// NewMock creates a new mocked device. echo may be nil.
func NewMock(echo io.Writer) *Mock {
	return &Mock{echo: echo}
}

// Connect simulates opening the link.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}
	m.connected = true
	return nil
}

// Close releases the simulated link. Safe to call more than once; only the
// first call counts as a release.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}
	m.connected = false
	m.closes++
	return nil
}

// Emit records the reading and optionally echoes the wire line.
func (m *Mock) Emit(r Reading) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return fmt.Errorf("not connected")
	}

	m.readings = append(m.readings, r)
	if m.echo != nil {
		fmt.Fprintf(m.echo, "%s\n", r)
	}
	return nil
}

// IsConnected returns whether the simulated link is open.
func (m *Mock) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Readings returns a copy of everything emitted so far.
func (m *Mock) Readings() []Reading {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Reading, len(m.readings))
	copy(out, m.readings)
	return out
}

// Closes returns how many times the link was actually released.
func (m *Mock) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}
