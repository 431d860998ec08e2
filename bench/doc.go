// Package bench is the operator's side of the verifier: the interactive
// menus, the serial port life cycle, and the batch runner.
//
// The Host owns the transport for the whole run. Each ALU test borrows it for
// one verification session. Changing port is an explicit transition of the
// host loop: the current handle is closed before the next one is opened.
package bench
