package cecdev

import "errors"

var (
	// ErrUnsupported is returned by Initialise where no CEC framework is available
	ErrUnsupported = errors.New("cec: not supported on this platform")
	// ErrNoAdapter is returned when an operation needs an open adapter
	ErrNoAdapter = errors.New("cec: no adapter open")
)

// Callbacks are invoked by the library from its own goroutine.
// Nil callbacks are skipped.
type Callbacks struct {
	Log     func(LogMessage)
	Command func(Command)
	Alert   func(Alert)
}

// Configuration is handed to Initialise
type Configuration struct {
	// DeviceName is the OSD name announced on the bus
	DeviceName     string
	DeviceType     DeviceType
	ActivateSource bool
	// HDMIPort is the input of the base device the adapter is plugged in, 0 to autodetect
	HDMIPort   int
	BaseDevice LogicalAddress
	Callbacks  Callbacks
}

// Library is a CEC adapter library instance.
//
//go:generate mockgen -destination=mocks/library_mock.go -package=mocks github.com/genricoloni/vidmode/internal/cecdev Library
type Library interface {
	// DetectAdapters lists the adapters attached to the host
	DetectAdapters() []AdapterDescriptor

	// Open starts listening on the adapter at port
	Open(port string) bool

	// Close stops listening. No callback is in flight once it returns.
	Close()

	// Destroy releases the library. It must not be used afterwards.
	Destroy()
}
