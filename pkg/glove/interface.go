package glove

// Device defines the interface for the downstream serial link (real or mocked).
type Device interface {
	Connect() error
	Close() error
	Emit(r Reading) error
	IsConnected() bool
}

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)
