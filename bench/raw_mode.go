package bench

import (
	"github.com/ezrec/aluverify/frame"
	"github.com/ezrec/aluverify/session"
)

// rawMode sends operator typed hex bytes and shows what comes back, once,
// after the response window.
func (host *Host) rawMode() {
	host.printf("\n=== Raw Byte Mode ===\n")
	host.printf("Enter hexadecimal bytes separated by spaces (eg: 05 0A 20)\n")
	host.printf("Or type 'exit' to return to the menu.\n")

	wait := session.DEFAULT_WAIT
	if host.Timing != nil {
		wait = host.Timing.Wait
	}

	for {
		line, ok := host.readLine(f("\nBytes (HEX): "))
		if !ok || isExit(line) {
			return
		}

		data, err := frame.ParseHex(line)
		if err != nil {
			host.printf("Error: %v\n", err)
			continue
		}

		host.printf("→ Sending: %v\n", frame.FormatHex(data))
		_, err = host.conn.Write(data)
		if err != nil {
			host.printf("✗ %v\n", err)
			continue
		}

		host.sleep(wait)

		resp, err := host.conn.ReadAvailable()
		if err != nil {
			host.printf("✗ %v\n", err)
			continue
		}
		if len(resp) == 0 {
			host.printf("✗ No response received\n")
			continue
		}

		host.printf("← Received: %v\n", frame.FormatHex(resp))
		for _, b := range resp {
			host.printf("   %3d (0x%02X) = %vb\n", b, b, frame.FormatBinary(b))
		}
	}
}
