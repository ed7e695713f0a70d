package rc

import "flag"

// Config defines the configurations for the receiver.
type Config struct {
	DeviceIndex int
	Verbose     bool
}

var defaultConfig = Config{
	DeviceIndex: -1,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.DeviceIndex, "rc-device", defaultConfig.DeviceIndex, "Joystick index for RC input, -1 for auto detection.")
	flag.BoolVar(&defaultConfig.Verbose, "rc-verbose", defaultConfig.Verbose, "Print joystick events.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewReceiver creates a receiver using the config.
func (c *Config) NewReceiver() *Receiver {
	r := NewReceiver()
	r.DeviceIndex = c.DeviceIndex
	r.Verbose = c.Verbose
	return r
}
