// Package config loads the bench configuration from a TOML file.
//
//	locale = "en-US"
//
//	[serial]
//	port = "/dev/ttyUSB1"
//	baud = 9600
//	data_bits = 8
//	parity = "none"
//	stop_bits = "1"
//	read_timeout = "1s"
//	drain_timeout = "10ms"
//
//	[timing]
//	settle = "50ms"
//	wait = "100ms"
//
//	[log]
//	level = "warn"
package config

import (
	"errors"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/aluverify/session"
	"github.com/ezrec/aluverify/translate"
	"github.com/ezrec/aluverify/transport"
)

var f = translate.From

// ErrInvalid is returned for a configuration value that cannot be used.
type ErrInvalid struct {
	Key    string
	Reason string
}

func (err *ErrInvalid) Error() string {
	return f("config %v: %v", err.Key, err.Reason)
}

func (err *ErrInvalid) Is(target error) (ok bool) {
	_, ok = target.(*ErrInvalid)
	return
}

type Serial struct {
	Port         string        `toml:"port"`
	Baud         int           `toml:"baud"`
	DataBits     int           `toml:"data_bits"`
	Parity       string        `toml:"parity"`
	StopBits     string        `toml:"stop_bits"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	DrainTimeout time.Duration `toml:"drain_timeout"`
}

type Timing struct {
	Settle time.Duration `toml:"settle"`
	Wait   time.Duration `toml:"wait"`
}

type Log struct {
	Level string `toml:"level"`
}

// Config is the complete bench configuration.
type Config struct {
	Locale string `toml:"locale"`
	Serial Serial `toml:"serial"`
	Timing Timing `toml:"timing"`
	Log    Log    `toml:"log"`
}

// Default returns the configuration of the stock bench: 9600 8N1, 50ms
// settle, 100ms wait.
func Default() Config {
	line := transport.DefaultConfig("")
	timing := session.DefaultTiming()

	return Config{
		Serial: Serial{
			Port:         line.Port,
			Baud:         line.Baud,
			DataBits:     line.DataBits,
			Parity:       line.Parity,
			StopBits:     line.StopBits,
			ReadTimeout:  line.ReadTimeout,
			DrainTimeout: line.DrainTimeout,
		},
		Timing: Timing{
			Settle: timing.Settle,
			Wait:   timing.Wait,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path, or a missing
// file, yields the defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if len(path) == 0 {
		return
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	cfg, err = Parse(string(data))
	return
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (cfg Config, err error) {
	cfg = Default()

	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = &ErrInvalid{Key: undecoded[0].String(), Reason: f("unknown key")}
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the values that would only fail later, at the port.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.Serial.Baud <= 0:
		err = &ErrInvalid{Key: "serial.baud", Reason: f("must be positive")}
	case cfg.Serial.DataBits < 5 || cfg.Serial.DataBits > 8:
		err = &ErrInvalid{Key: "serial.data_bits", Reason: f("must be 5 to 8")}
	case cfg.Timing.Settle < 0:
		err = &ErrInvalid{Key: "timing.settle", Reason: f("must not be negative")}
	case cfg.Timing.Wait < 0:
		err = &ErrInvalid{Key: "timing.wait", Reason: f("must not be negative")}
	}
	if err != nil {
		return
	}

	_, err = cfg.Transport().Mode()
	if err != nil {
		err = &ErrInvalid{Key: "serial", Reason: err.Error()}
	}

	return
}

// Transport returns the serial line configuration.
func (cfg Config) Transport() transport.Config {
	return transport.Config{
		Port:         cfg.Serial.Port,
		Baud:         cfg.Serial.Baud,
		DataBits:     cfg.Serial.DataBits,
		Parity:       cfg.Serial.Parity,
		StopBits:     cfg.Serial.StopBits,
		ReadTimeout:  cfg.Serial.ReadTimeout,
		DrainTimeout: cfg.Serial.DrainTimeout,
	}
}

// SessionTiming returns the round trip delays.
func (cfg Config) SessionTiming() session.Timing {
	return session.Timing{
		Settle: cfg.Timing.Settle,
		Wait:   cfg.Timing.Wait,
	}
}
