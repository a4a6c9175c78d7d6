package power

import (
	"github.com/godbus/dbus/v5"
)

// DBusClient defines the D-Bus operations the power controller needs.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/vidmode/internal/power DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes a method on a D-Bus object and waits for the reply
	// dest: The bus name (e.g., "org.freedesktop.login1")
	// path: The object path (e.g., "/org/freedesktop/login1")
	// method: The fully qualified method (e.g., "org.freedesktop.login1.Manager.Suspend")
	Call(dest, path, method string, args ...interface{}) *dbus.Call
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the system bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method on a D-Bus object and waits for the reply
func (c *StdDBusClient) Call(dest, path, method string, args ...interface{}) *dbus.Call {
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	return obj.Call(method, 0, args...)
}
