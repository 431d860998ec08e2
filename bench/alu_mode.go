package bench

import (
	"strconv"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/expr"
	"github.com/ezrec/aluverify/frame"
	"github.com/ezrec/aluverify/session"
)

const CUSTOM_OPTION = "9"

// aluIntro prints the operation table.
func (host *Host) aluIntro() {
	host.printf("\n%v\n              ALU OPERATIONS MODE\n%v\n", rule, rule)
	host.printf("\nAvailable operations:\n")
	for _, entry := range alu.Enumerate() {
		host.printf("  0x%02X (%3d) - %-4s: %v\n", uint8(entry.Op), uint8(entry.Op), entry.Mnemonic, entry.Description)
	}
	host.printf("\nFormat: 3 bytes are sent: [A] [B] [OP]\n")
	host.printf("Type 'exit' to return to the menu.\n")
}

func (host *Host) aluMenu() {
	host.printf("\n------------------------------------------------------------\n")
	host.printf("Select operation:\n")
	for n, entry := range alu.Enumerate() {
		host.printf("  %d. %v\n", n+1, entry)
	}
	host.printf("  9. Send custom bytes\n")
	host.printf("  0. Exit\n")
}

// readOperands asks for A, B and, in custom mode, the operation code.
// ok is false if the input ended or a value was rejected.
func (host *Host) readOperands(custom bool) (a, b uint8, code alu.OpCode, ok bool) {
	line, more := host.readLine(f("Value A (0-255): "))
	if !more {
		return
	}
	a, err := expr.Operand("A", line)
	if err != nil {
		host.reject(err)
		return
	}

	line, more = host.readLine(f("Value B (0-255): "))
	if !more {
		return
	}
	b, err = expr.Operand("B", line)
	if err != nil {
		host.reject(err)
		return
	}

	if custom {
		line, more = host.readLine(f("Operation code (hex, eg 0x20): "))
		if !more {
			return
		}
		code, err = expr.OpCode(line)
		if err != nil {
			host.reject(err)
			return
		}
	}

	ok = true
	return
}

func (host *Host) reject(err error) {
	switch err.(type) {
	case frame.ErrOutOfRange:
		host.printf("Error: values out of range (0-255)\n")
	default:
		host.printf("Error: invalid value: %v\n", err)
	}
}

// aluMode runs ALU tests until the operator leaves.
func (host *Host) aluMode() {
	host.aluIntro()

	entries := alu.Enumerate()

	for {
		host.aluMenu()

		option, ok := host.readLine(f("\nOption: "))
		if !ok || option == "0" || isExit(option) {
			return
		}

		var sel session.Selector
		var a, b uint8

		if option == CUSTOM_OPTION {
			var code alu.OpCode
			a, b, code, ok = host.readOperands(true)
			if !ok {
				continue
			}
			sel = session.Custom(uint8(code))
		} else {
			n, err := strconv.Atoi(option)
			if err != nil || n < 1 || n > len(entries) {
				host.printf("Invalid option\n")
				continue
			}
			entry := entries[n-1]

			a, b, _, ok = host.readOperands(false)
			if !ok {
				continue
			}
			sel = session.Op(entry.Op)

			host.printf("\n→ Operation: %d %v %d\n", a, entry.Symbol, b)
		}

		host.verify(a, b, sel)
	}
}

// verify runs one session on the host's transport and reports it.
func (host *Host) verify(a, b uint8, sel session.Selector) {
	req := frame.Encode(a, b, sel.Code)
	host.printf("\n→ Sending: %v\n", req)

	sess := session.New(host.conn, host.sessionOptions()...)

	err := sess.Submit(a, b, sel)
	if err != nil {
		host.printf("✗ %v\n", err)
		return
	}

	host.printf("→ Waiting for result...\n")

	outcome, err := sess.AwaitResponse()
	if err != nil {
		host.printf("✗ %v\n", err)
		return
	}

	host.printf("\n")
	outcome.Report(host.Out)
}
