package bench

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/aluverify/session"
	"github.com/ezrec/aluverify/transport"
)

// Conn is an open transport owned by the host.
type Conn interface {
	session.Transport
	io.Closer
	Port() string
}

// Host runs the interactive bench.
type Host struct {
	In  io.Reader
	Out io.Writer

	// Port, if set, is opened first instead of asking the operator.
	Port string
	// Line describes the line configuration, ie "9600 baud, 8N1".
	Line string
	// Dial opens a port.
	Dial func(port string) (Conn, error)
	// Ports lists the ports the operator can choose from.
	Ports func() ([]transport.PortInfo, error)

	// Timing of ALU round trips, and of the raw byte mode wait. Nil uses
	// the stock delays; a zero Timing means no delay at all.
	Timing *session.Timing
	// Sleep replaces time.Sleep, mostly for tests.
	Sleep session.Sleeper

	conn    Conn
	scanner *bufio.Scanner
}

const rule = "============================================================"

func (host *Host) printf(format string, args ...any) {
	io.WriteString(host.Out, f(format, args...))
}

// readLine prompts and returns the next trimmed input line. ok is false at
// the end of the input.
func (host *Host) readLine(prompt string) (line string, ok bool) {
	if host.scanner == nil {
		host.scanner = bufio.NewScanner(host.In)
	}

	io.WriteString(host.Out, prompt)
	if !host.scanner.Scan() {
		return
	}

	line = strings.TrimSpace(host.scanner.Text())
	ok = true
	return
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "salir":
		return true
	}
	return false
}

func (host *Host) sleep(d time.Duration) {
	if host.Sleep != nil {
		host.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (host *Host) sessionOptions() (opts []session.Option) {
	if host.Timing != nil {
		opts = append(opts, session.WithTiming(*host.Timing))
	}
	if host.Sleep != nil {
		opts = append(opts, session.WithSleeper(host.Sleep))
	}
	return
}

// selectPort lists the ports and asks for one. ok is false if the operator
// chose to leave.
func (host *Host) selectPort() (port string, ok bool, err error) {
	host.printf("\n=== Available serial ports ===\n")

	ports, err := host.Ports()
	if err != nil {
		return
	}
	if len(ports) == 0 {
		host.printf("No serial ports found\n")
		err = ErrNoPorts
		return
	}

	for n, info := range ports {
		host.printf("%d. %v - %v\n", n+1, info.Name, info.Description)
	}

	for {
		line, more := host.readLine(f("\nSelect port number (or 0 to exit): "))
		if !more {
			return
		}

		choice, perr := strconv.Atoi(line)
		switch {
		case perr != nil:
			host.printf("Please enter a valid number\n")
		case choice == 0:
			return
		case choice >= 1 && choice <= len(ports):
			port = ports[choice-1].Name
			ok = true
			return
		default:
			host.printf("Invalid selection\n")
		}
	}
}

// connect opens a port. Failures are reported with guidance and returned;
// they are never retried.
func (host *Host) connect(port string) (err error) {
	host.printf("\nConnecting to %v...\n", port)
	if len(host.Line) != 0 {
		host.printf("Configuration: %v\n", host.Line)
	}

	conn, err := host.Dial(port)
	if err != nil {
		host.printf("\n✗ Error opening the port: %v\n", err)
		var openErr *transport.ErrOpen
		if errors.As(err, &openErr) {
			host.printf("\nCheck that:\n")
			for _, hint := range openErr.Guidance() {
				host.printf("- %v\n", hint)
			}
		}
		return
	}

	host.conn = conn
	host.printf("✓ Connected to %v\n", conn.Port())
	log.Info().Str("port", conn.Port()).Msg("bench: connected")

	return
}

// disconnect closes the current handle, if any.
func (host *Host) disconnect() (err error) {
	if host.conn == nil {
		return
	}

	err = host.conn.Close()
	log.Info().Str("port", host.conn.Port()).Err(err).Msg("bench: disconnected")
	host.conn = nil

	return
}

// Run is the main loop of the bench. It returns when the operator quits,
// the input ends, or a port cannot be opened.
func (host *Host) Run() (err error) {
	defer func() {
		cerr := host.disconnect()
		if err == nil {
			err = cerr
		}
	}()

	host.printf("%v\n        UART Serial Communication - Basys 3 + ALU\n%v\n", rule, rule)

	port := host.Port
	for {
		if host.conn == nil {
			if len(port) == 0 {
				var ok bool
				port, ok, err = host.selectPort()
				if err != nil || !ok {
					host.printf("Exiting...\n")
					return
				}
			}

			err = host.connect(port)
			if err != nil {
				return
			}
			port = ""
		}

		host.printf("\n%v\nMAIN MENU\n%v\n", rule, rule)
		host.printf("1. ALU operations\n")
		host.printf("2. Send raw bytes (HEX)\n")
		host.printf("3. Change port\n")
		host.printf("4. Exit\n")

		line, ok := host.readLine(f("\nSelect an option: "))
		if !ok {
			host.printf("\nConnection closed. Goodbye!\n")
			return
		}

		switch line {
		case "1":
			host.aluMode()
		case "2":
			host.rawMode()
		case "3":
			// Reconnect: the old handle is closed before a new port is
			// selected and opened on the next pass.
			err = host.disconnect()
		case "4":
			host.printf("\nConnection closed. Goodbye!\n")
			return
		default:
			host.printf("Invalid option\n")
		}

		if err != nil {
			return
		}
	}
}
