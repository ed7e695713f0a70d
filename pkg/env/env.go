// Package env provides the configuration shared by the binaries.
package env

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"

	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/link/mqtt"
	"github.com/robotalks/fcu.go/pkg/link/pipe"
	"github.com/robotalks/fcu.go/pkg/link/serial"
	"github.com/robotalks/fcu.go/pkg/link/websocket"
)

// Config specifies the link and files used by a process.
type Config struct {
	// LinkURL selects the transport, one of
	//   serial:///dev/ttyACM0,/dev/ttyUSB0?baud=921600
	//   mqtt://host:port/topic-prefix
	//   ws://host:port/path
	LinkURL string
	// ParamsFile is where the flight controller persists parameters.
	ParamsFile string
	// NodeID names the flight controller on MQTT.
	NodeID string
	// MQTTBrokerURL is used by the monitor.
	MQTTBrokerURL string
}

// DefaultBaud is used by ground stations on serial links without a
// baud query.
const DefaultBaud = 921600

var defaultConfig = Config{
	LinkURL:       "ws://localhost:5760/fcu",
	ParamsFile:    "params.yaml",
	MQTTBrokerURL: "mqtt://localhost:1883/fcu/",
}

func init() {
	if val := os.Getenv("FCU_LINK"); val != "" {
		defaultConfig.LinkURL = val
	}
	if val := os.Getenv("FCU_PARAMS"); val != "" {
		defaultConfig.ParamsFile = val
	}
	if val := os.Getenv("FCU_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("FCU_NODE"); val != "" {
		defaultConfig.NodeID = val
	} else {
		defaultConfig.NodeID = MachineID()
	}
}

// MachineID returns an app specific ID of this machine, "fcu" if
// the machine ID is not available.
func MachineID() string {
	id, err := machineid.ProtectedID("fcu")
	if err != nil {
		glog.V(1).Infof("machine id unavailable: %v", err)
		return "fcu"
	}
	return id
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.LinkURL, "link", defaultConfig.LinkURL, "Link URL: serial:///dev/tty..., mqtt://host:port/prefix or ws://host:port/path")
	flag.StringVar(&defaultConfig.ParamsFile, "params", defaultConfig.ParamsFile, "Parameters file")
	flag.StringVar(&defaultConfig.NodeID, "node", defaultConfig.NodeID, "Flight controller node ID on MQTT")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL for monitoring")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Endpoint is a parsed LinkURL.
type Endpoint struct {
	Scheme string
	// Devices lists serial devices.
	Devices []string
	Baud    int
	// Address is host:port for ws.
	Address string
	Path    string
	// BrokerURL is the MQTT broker with topic prefix.
	BrokerURL string
}

// ParseLinkURL parses a link URL.
func ParseLinkURL(linkURL string) (*Endpoint, error) {
	u, err := url.Parse(linkURL)
	if err != nil {
		return nil, fmt.Errorf("invalid link URL: %v", err)
	}
	ep := &Endpoint{Scheme: u.Scheme}
	switch u.Scheme {
	case "serial":
		for _, dev := range strings.Split(u.Path, ",") {
			if dev != "" {
				ep.Devices = append(ep.Devices, dev)
			}
		}
		if len(ep.Devices) == 0 {
			return nil, fmt.Errorf("no serial device in %q", linkURL)
		}
		ep.Baud = DefaultBaud
		if val := u.Query().Get("baud"); val != "" {
			if ep.Baud, err = strconv.Atoi(val); err != nil {
				return nil, fmt.Errorf("invalid baud %q: %v", val, err)
			}
		}
	case "mqtt":
		ep.BrokerURL = linkURL
	case "ws":
		ep.Address, ep.Path = u.Host, u.Path
		if ep.Path == "" {
			ep.Path = "/"
		}
	default:
		return nil, fmt.Errorf("unknown link URL scheme: %q", u.Scheme)
	}
	return ep, nil
}

// Opener creates the flight controller side opener of the link.
func (c *Config) Opener() (pipe.Opener, error) {
	ep, err := ParseLinkURL(c.LinkURL)
	if err != nil {
		return nil, err
	}
	switch ep.Scheme {
	case "serial":
		return serial.Opener(ep.Devices), nil
	case "mqtt":
		return mqtt.Opener(ep.BrokerURL, c.NodeID), nil
	default:
		return websocket.Opener(ep.Address, ep.Path), nil
	}
}

// Dial connects to the flight controller as a ground station.
func (c *Config) Dial() (link.PacketReadWriter, error) {
	ep, err := ParseLinkURL(c.LinkURL)
	if err != nil {
		return nil, err
	}
	switch ep.Scheme {
	case "serial":
		port, err := serial.Open(ep.Devices[0], ep.Baud)
		if err != nil {
			return nil, err
		}
		return port, nil
	case "mqtt":
		q, err := mqtt.NewQueueFromURL(ep.BrokerURL)
		if err != nil {
			return nil, err
		}
		if err = q.Connect(); err != nil {
			return nil, err
		}
		return mqtt.NewPacketReadWriter(q).ForGround(c.NodeID), nil
	default:
		conn, err := websocket.Dial(c.LinkURL)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}
