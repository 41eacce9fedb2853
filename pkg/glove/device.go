package glove

import (
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate matches the glove firmware's UART speed.
	DefaultBaudRate = 115200
	// DefaultReadTimeout is applied to the port on open. This side never
	// reads, the timeout only keeps a stray read from blocking forever.
	DefaultReadTimeout = time.Second
)

// Serial owns the serial connection to the visualizer side of the link.
// Writes are fire-and-forget; no acknowledgment is awaited.
type Serial struct {
	port        string
	baudRate    int
	readTimeout time.Duration

	conn      serial.Port
	mu        sync.Mutex
	connected bool
}

// NewSerial creates a new Serial device for the named port.
func NewSerial(port string, baudRate int, readTimeout time.Duration) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if readTimeout == 0 {
		readTimeout = DefaultReadTimeout
	}

	return &Serial{
		port:        port,
		baudRate:    baudRate,
		readTimeout: readTimeout,
	}
}

// Ports returns the names of the serial ports available on this machine.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

// Connect opens the serial port.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	mode := &serial.Mode{
		BaudRate: d.baudRate,
	}

	port, err := serial.Open(d.port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	if err := port.SetReadTimeout(d.readTimeout); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout on %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	return nil
}

// Close closes the connection. Safe to call more than once.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	err := d.conn.Close()
	d.conn = nil
	d.connected = false

	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", d.port, err)
	}
	return nil
}

// Emit writes one reading as a comma-separated line. A write failure means
// the link is broken; the caller is expected to stop the stream.
func (d *Serial) Emit(r Reading) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return fmt.Errorf("not connected")
	}

	if _, err := d.conn.Write([]byte(r.String() + "\n")); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}

	return nil
}

// IsConnected returns whether the port is currently open.
func (d *Serial) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}
