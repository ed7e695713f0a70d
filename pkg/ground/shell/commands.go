package shell

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/fcu.go/pkg/ground"
	"github.com/robotalks/fcu.go/pkg/link"
)

// FormatParam formats a parameter value for display.
func FormatParam(val *link.ParamValue) string {
	switch val.Type {
	case link.ParamTypeInt32:
		return fmt.Sprintf("%-16s %d", val.ParamID, val.IntValue)
	case link.ParamTypeFloat:
		return fmt.Sprintf("%-16s %g", val.ParamID, val.FloatValue)
	}
	return fmt.Sprintf("%-16s ?", val.ParamID)
}

// FormatMessage formats a received message for display.
func FormatMessage(sysid uint8, msg link.Message) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "[%d] %s", sysid, strings.TrimPrefix(fmt.Sprintf("%T", msg), "*link."))
	if text := msg.String(); text != "" {
		fmt.Fprintf(&w, " %s", text)
	}
	return w.String()
}

func parseFloats(args []string) ([]float32, error) {
	vals := make([]float32, len(args))
	for n, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", arg)
		}
		vals[n] = float32(v)
	}
	return vals, nil
}

const commandHelp = `COMMAND is one of read-params, write-params, set-param-defaults,
accel-calibration, gyro-calibration, baro-calibration, airspeed-calibration,
rc-calibration, reboot, reboot-to-bootloader, send-version.`

var controlModes = map[string]link.ControlMode{
	"pass":  link.ModePassThrough,
	"rate":  link.ModeRollRatePitchRateYawRateThrottle,
	"angle": link.ModeRollPitchYawRateThrottle,
}

var (
	// ConnectCmd connects the configured link.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "[LINK-URL]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) > 0 {
				s.Config.LinkURL = c.Args[0]
			}
			if err := s.Connect(); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects current link.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}

	// VersionCmd queries firmware version.
	VersionCmd = ishell.Cmd{
		Name: "version",
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			version, err := st.Version(ctx)
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, map[string]string{"version": version}, version)
		}),
	}

	// ParamsCmd lists all parameters.
	ParamsCmd = ishell.Cmd{
		Name:    "params",
		Aliases: []string{"p"},
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			values, err := st.RequestParams(ctx)
			if err != nil {
				c.Err(err)
				return
			}
			lines := make([]string, len(values))
			for n, val := range values {
				lines[n] = FormatParam(val)
			}
			s.Print(c, values, strings.Join(lines, "\n"))
		}),
	}

	// GetCmd reads a parameter.
	GetCmd = ishell.Cmd{
		Name: "get",
		Help: "NAME",
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("NAME required"))
				return
			}
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			val, err := st.GetParam(ctx, c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, val, FormatParam(val))
		}),
	}

	// SetCmd sets a parameter.
	SetCmd = ishell.Cmd{
		Name: "set",
		Help: "NAME VALUE",
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("NAME VALUE required"))
				return
			}
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			val, err := st.SetParam(ctx, c.Args[0], c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, val, FormatParam(val))
		}),
	}

	// CommandCmd runs a maintenance command.
	CommandCmd = ishell.Cmd{
		Name:     "cmd",
		Help:     "COMMAND",
		LongHelp: commandHelp,
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("COMMAND required"))
				return
			}
			kind, ok := link.ParseCommandKind(c.Args[0])
			if !ok {
				c.Err(fmt.Errorf("unknown command %q", c.Args[0]))
				return
			}
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			success, err := st.Command(ctx, kind)
			if err != nil {
				c.Err(err)
				return
			}
			text := "OK"
			if !success {
				text = "FAILED"
			}
			s.Print(c, &link.CommandAck{Command: kind, Success: success}, text)
		}),
	}

	// TimesyncCmd measures link latency.
	TimesyncCmd = ishell.Cmd{
		Name:    "timesync",
		Aliases: []string{"ping"},
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			s := ShellFrom(c)
			ctx, cancel := s.RequestContext()
			defer cancel()
			rtt, remote, err := st.Timesync(ctx)
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, map[string]interface{}{"rtt_us": rtt / time.Microsecond, "remote_ns": remote},
				fmt.Sprintf("rtt=%v remote=%v", rtt, time.Duration(remote)))
		}),
	}

	// OffboardCmd sends one offboard control setpoint.
	OffboardCmd = ishell.Cmd{
		Name:    "offboard",
		Aliases: []string{"ob"},
		Help:    "pass|rate|angle X Y Z F",
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			if len(c.Args) < 5 {
				c.Err(fmt.Errorf("MODE X Y Z F required"))
				return
			}
			mode, ok := controlModes[c.Args[0]]
			if !ok {
				c.Err(fmt.Errorf("unknown mode %q", c.Args[0]))
				return
			}
			vals, err := parseFloats(c.Args[1:5])
			if err != nil {
				c.Err(err)
				return
			}
			msg := &link.OffboardControl{
				Mode:   mode,
				X:      vals[0],
				Y:      vals[1],
				Z:      vals[2],
				F:      vals[3],
				XValid: true,
				YValid: true,
				ZValid: true,
				FValid: true,
			}
			if err := st.Send(msg); err != nil {
				c.Err(err)
			}
		}),
	}

	// WatchCmd prints received messages.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "[DURATION] [TYPE...]",
		Func: MustBeConnected(func(c *ishell.Context, st *ground.Station) {
			s := ShellFrom(c)
			dur := 5 * time.Second
			args := c.Args
			if len(args) > 0 {
				if d, err := time.ParseDuration(args[0]); err == nil {
					dur, args = d, args[1:]
				}
			}
			types := make(map[string]bool)
			for _, arg := range args {
				types[strings.ToLower(arg)] = true
			}
			stop := st.Watch(func(sysid uint8, msg link.Message) {
				name := strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", msg), "*link."))
				if len(types) > 0 && !types[name] {
					return
				}
				s.Print(c, msg, FormatMessage(sysid, msg))
			})
			defer stop()
			select {
			case <-time.After(dur):
			case <-s.Conn.Ctx.Done():
			}
		}),
	}
)
