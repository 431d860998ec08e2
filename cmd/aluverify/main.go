// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ezrec/aluverify/bench"
	"github.com/ezrec/aluverify/config"
	"github.com/ezrec/aluverify/expr"
	"github.com/ezrec/aluverify/logging"
	"github.com/ezrec/aluverify/session"
	"github.com/ezrec/aluverify/translate"
	"github.com/ezrec/aluverify/transport"
)

var f = translate.From

var (
	ErrNoPort    = errors.New(f("no serial port given, use --port or [serial] port"))
	ErrMismatch  = errors.New(f("device result does not match the reference"))
	ErrSilent    = errors.New(f("no response from the device"))
	ErrAmbiguous = errors.New(f("device answered with more than one byte"))
)

// options are the flags shared by every command.
type options struct {
	config   string
	port     string
	baud     int
	simulate bool
	verbose  bool
}

// load reads the configuration file, applies the flags over it, and sets up
// logging and the locale.
func (opts *options) load(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg, err = config.Load(opts.config)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Serial.Port = opts.port
	}
	if flags.Changed("baud") {
		cfg.Serial.Baud = opts.baud
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	logging.Configure(logging.Options{
		Level:   cfg.Log.Level,
		Verbose: opts.verbose,
	})

	if len(cfg.Locale) != 0 {
		err = translate.SetLanguage(cfg.Locale)
		if err != nil {
			return
		}
	}

	log.Debug().Str("config", opts.config).Str("line", cfg.Transport().String()).Msg("aluverify: configured")

	return
}

// dial opens a port, or a fresh simulator when simulating.
func (opts *options) dial(cfg config.Config, port string) (conn bench.Conn, err error) {
	if opts.simulate {
		conn = &transport.Simulator{}
		return
	}

	line := cfg.Transport()
	line.Port = port

	ser, err := transport.Open(line)
	if err != nil {
		return
	}

	conn = ser
	return
}

// ports lists the ports the bench may choose from.
func (opts *options) ports() ([]transport.PortInfo, error) {
	if opts.simulate {
		return []transport.PortInfo{{Name: "simulator", Description: f("reference model")}}, nil
	}
	return transport.Ports()
}

// open connects to the configured port for a one shot command.
func (opts *options) open(cfg config.Config) (conn bench.Conn, err error) {
	port := cfg.Serial.Port
	if !opts.simulate && len(port) == 0 {
		err = ErrNoPort
		return
	}

	return opts.dial(cfg, port)
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "aluverify",
		Short:         "Verify an FPGA 8-bit ALU over a serial line",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return
			}

			timing := cfg.SessionTiming()

			host := &bench.Host{
				In:     os.Stdin,
				Out:    os.Stdout,
				Port:   cfg.Serial.Port,
				Line:   cfg.Transport().String(),
				Timing: &timing,
				Ports:  opts.ports,
				Dial: func(port string) (bench.Conn, error) {
					return opts.dial(cfg, port)
				},
			}

			err = host.Run()
			if errors.Is(err, &transport.ErrOpen{}) {
				// Already reported with guidance.
				os.Exit(1)
			}
			return
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "aluverify.toml", "TOML configuration file")
	flags.StringVarP(&opts.port, "port", "p", "", "Serial port of the device")
	flags.IntVarP(&opts.baud, "baud", "b", transport.DEFAULT_BAUD, "Baud rate")
	flags.BoolVar(&opts.simulate, "simulate", false, "Use the in-memory reference ALU instead of a port")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")

	// ports command
	portsCmd := &cobra.Command{
		Use:   "ports",
		Short: "List the serial ports of the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.load(cmd)
			if err != nil {
				return
			}

			ports, err := opts.ports()
			if err != nil {
				return
			}
			if len(ports) == 0 {
				return bench.ErrNoPorts
			}

			for _, info := range ports {
				fmt.Printf("%v\t%v\n", info.Name, info.Description)
			}
			return
		},
	}

	// eval command
	evalCmd := &cobra.Command{
		Use:   "eval OP A B",
		Short: "Run one verification round trip",
		Long: "Send [A][B][OP] to the device and compare its answer with the reference model.\n" +
			"OP is a mnemonic or a code; values may be expressions such as 0x80|3.\n" +
			"Exits non-zero on a mismatch, on silence, or on a multi-byte answer to a\n" +
			"registered operation. Custom codes are never compared.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return
			}

			req, err := expr.Frame(args[0], args[1], args[2])
			if err != nil {
				return
			}

			sel := session.Op(req.Op())
			if !req.Op().Registered() {
				sel = session.Custom(uint8(req.Op()))
			}

			conn, err := opts.open(cfg)
			if err != nil {
				return
			}
			defer conn.Close()

			outcome, err := session.Verify(conn, req.A(), req.B(), sel, session.WithTiming(cfg.SessionTiming()))
			if err != nil {
				return
			}

			err = outcome.Report(os.Stdout)
			if err != nil {
				return
			}

			switch {
			case outcome.Silent():
				err = ErrSilent
			case outcome.Verdict == session.VerdictMismatch:
				err = ErrMismatch
			case outcome.Ambiguous():
				err = ErrAmbiguous
			}
			return
		},
	}

	// table command
	tableCmd := &cobra.Command{
		Use:   "table OP [B]",
		Short: "Print the reference results of OP for every A",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			code, err := expr.OpCode(args[0])
			if err != nil {
				return
			}

			var b uint8
			if len(args) > 1 {
				b, err = expr.Operand("B", args[1])
				if err != nil {
					return
				}
			}

			return bench.WriteTable(os.Stdout, code, b)
		},
	}

	// batch command
	var asJSON bool

	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Verify every 'OP A B' line of FILE, or of stdin for '-'",
		Long: "Verify every 'OP A B' line of FILE, or of stdin for '-'.\n" +
			"Exits non-zero if any vector mismatched, got no answer, or got a\n" +
			"multi-byte answer to a registered operation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return
			}

			in := os.Stdin
			if args[0] != "-" {
				in, err = os.Open(args[0])
				if err != nil {
					return
				}
				defer in.Close()
			}

			conn, err := opts.open(cfg)
			if err != nil {
				return
			}
			defer conn.Close()

			batch := &bench.Batch{
				Out:     os.Stdout,
				JSON:    asJSON,
				Options: []session.Option{session.WithTiming(cfg.SessionTiming())},
			}

			sum, err := batch.Run(in, conn)
			fmt.Fprintln(os.Stderr, sum)
			if err != nil {
				return
			}

			if !sum.Ok() {
				err = errors.New(sum.String())
			}
			return
		},
	}
	batchCmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON object per line")

	rootCmd.AddCommand(portsCmd, evalCmd, tableCmd, batchCmd)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}
