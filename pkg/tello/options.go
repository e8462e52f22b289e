package tello

import "time"

const (
	DefaultDroneAddr   = "192.168.10.1:8889"
	DefaultCommandAddr = "0.0.0.0:8889"
	DefaultStateAddr   = "0.0.0.0:8890"
	DefaultAckTimeout  = 10 * time.Second

	// ExtendedHardwareID is the reply to "hardware?" from a unit carrying the
	// LED/matrix expansion board.
	ExtendedHardwareID = "RMTT"
)

// Options tells a Client where the drone is and where to listen.
type Options struct {
	DroneAddr   string // drone command endpoint
	CommandAddr string // local address for the command socket
	StateAddr   string // local address for the telemetry socket
	AckTimeout  time.Duration
}

func DefaultOptions() Options {
	return Options{
		DroneAddr:   DefaultDroneAddr,
		CommandAddr: DefaultCommandAddr,
		StateAddr:   DefaultStateAddr,
		AckTimeout:  DefaultAckTimeout,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DroneAddr == "" {
		o.DroneAddr = def.DroneAddr
	}
	if o.CommandAddr == "" {
		o.CommandAddr = def.CommandAddr
	}
	if o.StateAddr == "" {
		o.StateAddr = def.StateAddr
	}
	if o.AckTimeout <= 0 {
		o.AckTimeout = def.AckTimeout
	}
	return o
}
