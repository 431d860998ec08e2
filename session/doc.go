// Package session runs one verification round trip against the ALU under
// test: encode a request frame, write it, let the hardware settle, read what
// came back once, and compare it with the reference model.
//
// A Session borrows the transport for exactly one Submit/AwaitResponse cycle
// and moves through Idle, FrameSent, AwaitingResponse and Completed. Completed
// is terminal; the transport is released and a new Session is needed for the
// next frame. All delays are blocking, and nothing is retried: each
// submission yields exactly one Outcome.
package session
