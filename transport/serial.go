package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// Line configuration defaults: 9600 baud, 8N1.
const (
	DEFAULT_BAUD          = 9600
	DEFAULT_DATA_BITS     = 8
	DEFAULT_PARITY        = "none"
	DEFAULT_STOP_BITS     = "1"
	DEFAULT_READ_TIMEOUT  = time.Second
	DEFAULT_DRAIN_TIMEOUT = 10 * time.Millisecond
	READ_CHUNK            = 64
)

// Config is the serial line configuration.
type Config struct {
	Port         string
	Baud         int
	DataBits     int
	Parity       string        // none, odd, even, mark, space
	StopBits     string        // 1, 1.5, 2
	ReadTimeout  time.Duration // Bound on a whole ReadAvailable.
	DrainTimeout time.Duration // Quiet time that ends a ReadAvailable.
}

// DefaultConfig returns the bench line configuration for port.
func DefaultConfig(port string) Config {
	return Config{
		Port:         port,
		Baud:         DEFAULT_BAUD,
		DataBits:     DEFAULT_DATA_BITS,
		Parity:       DEFAULT_PARITY,
		StopBits:     DEFAULT_STOP_BITS,
		ReadTimeout:  DEFAULT_READ_TIMEOUT,
		DrainTimeout: DEFAULT_DRAIN_TIMEOUT,
	}
}

// Mode converts the configuration to a serial mode.
func (cfg Config) Mode() (mode *serial.Mode, err error) {
	mode = &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: cfg.DataBits,
	}

	switch cfg.Parity {
	case "", "none":
		mode.Parity = serial.NoParity
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	case "mark":
		mode.Parity = serial.MarkParity
	case "space":
		mode.Parity = serial.SpaceParity
	default:
		mode = nil
		err = ErrParity
		return
	}

	switch cfg.StopBits {
	case "", "1":
		mode.StopBits = serial.OneStopBit
	case "1.5":
		mode.StopBits = serial.OnePointFiveStopBits
	case "2":
		mode.StopBits = serial.TwoStopBits
	default:
		mode = nil
		err = ErrStop
		return
	}

	return
}

// String describes the line, ie "9600 baud, 8N1".
func (cfg Config) String() string {
	parity := "N"
	if len(cfg.Parity) != 0 && cfg.Parity != "none" {
		parity = strings.ToUpper(cfg.Parity[:1])
	}

	stop := cfg.StopBits
	if len(stop) == 0 {
		stop = "1"
	}

	return fmt.Sprintf("%d baud, %d%v%v", cfg.Baud, cfg.DataBits, parity, stop)
}

// Serial is an open serial port to the device under test.
type Serial struct {
	port   serial.Port
	config Config
	logger zerolog.Logger
}

// Open claims the configured port. Failures are wrapped in ErrOpen.
func Open(cfg Config) (ser *Serial, err error) {
	mode, err := cfg.Mode()
	if err != nil {
		err = &ErrOpen{Port: cfg.Port, Err: err}
		return
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		err = &ErrOpen{Port: cfg.Port, Err: err}
		return
	}

	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = DEFAULT_DRAIN_TIMEOUT
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DEFAULT_READ_TIMEOUT
	}

	err = port.SetReadTimeout(cfg.DrainTimeout)
	if err != nil {
		port.Close()
		err = &ErrOpen{Port: cfg.Port, Err: err}
		return
	}

	ser = &Serial{
		port:   port,
		config: cfg,
		logger: log.With().Str("port", cfg.Port).Logger(),
	}

	ser.logger.Debug().
		Int("baud", cfg.Baud).
		Int("data_bits", cfg.DataBits).
		Str("parity", cfg.Parity).
		Str("stop_bits", cfg.StopBits).
		Msg("transport: open")

	return
}

// Port returns the name of the port.
func (ser *Serial) Port() string {
	return ser.config.Port
}

// Write sends bytes to the device.
func (ser *Serial) Write(data []byte) (n int, err error) {
	if ser.port == nil {
		err = ErrClosed
		return
	}

	n, err = ser.port.Write(data)
	return
}

// ReadAvailable returns the bytes that arrived since the last read. It stops
// when the line has been quiet for the drain timeout, or after the read
// timeout for a device that never stops talking.
func (ser *Serial) ReadAvailable() (data []byte, err error) {
	if ser.port == nil {
		err = ErrClosed
		return
	}

	deadline := time.Now().Add(ser.config.ReadTimeout)

	var chunk [READ_CHUNK]byte
	for time.Now().Before(deadline) {
		var n int
		n, err = ser.port.Read(chunk[:])
		if err != nil {
			return
		}
		if n == 0 {
			break
		}
		data = append(data, chunk[:n]...)
	}

	return
}

// Close releases the port.
func (ser *Serial) Close() (err error) {
	if ser.port == nil {
		return
	}

	err = ser.port.Close()
	ser.port = nil

	ser.logger.Debug().Msg("transport: close")

	return
}

// PortInfo describes a serial port found on the system.
type PortInfo struct {
	Name        string
	Description string
}

// Ports lists the serial ports of the system, with USB details when the
// platform provides them.
func Ports() (ports []PortInfo, err error) {
	details, err := enumerator.GetDetailedPortsList()
	if err == nil {
		for _, detail := range details {
			info := PortInfo{Name: detail.Name}
			switch {
			case detail.IsUSB && len(detail.Product) != 0:
				info.Description = detail.Product
			case detail.IsUSB:
				info.Description = f("USB %v:%v", detail.VID, detail.PID)
			default:
				info.Description = "n/a"
			}
			ports = append(ports, info)
		}
		return
	}

	log.Debug().Err(err).Msg("transport: detailed port list")

	names, err := serial.GetPortsList()
	if err != nil {
		return
	}

	for _, name := range names {
		ports = append(ports, PortInfo{Name: name, Description: "n/a"})
	}

	return
}
