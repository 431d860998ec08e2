package session

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

// State of a verification session.
type State int

const (
	Idle             = State(0) // idle
	FrameSent        = State(1) // frame sent
	AwaitingResponse = State(2) // awaiting response
	Completed        = State(3) // completed
)

func (state State) String() string {
	switch state {
	case Idle:
		return "idle"
	case FrameSent:
		return "frame sent"
	case AwaitingResponse:
		return "awaiting response"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Selector names the operation of a submission: either a registered opcode,
// checked against the reference model, or a raw custom code that is sent
// without comparison.
type Selector struct {
	Code   alu.OpCode
	Custom bool
}

// Op selects a registered operation.
func Op(op alu.OpCode) Selector {
	return Selector{Code: op}
}

// Custom selects a raw wire code with no reference comparison.
func Custom(code uint8) Selector {
	return Selector{Code: alu.OpCode(code), Custom: true}
}

func (sel Selector) String() string {
	if sel.Custom {
		return f("custom 0x%02X", uint8(sel.Code))
	}
	return sel.Code.String()
}

// Option configures a Session.
type Option func(sess *Session)

// WithTiming sets the settle and wait delays.
func WithTiming(timing Timing) Option {
	return func(sess *Session) {
		sess.timing = timing
	}
}

// WithSleeper replaces time.Sleep, mostly for tests.
func WithSleeper(sleep Sleeper) Option {
	return func(sess *Session) {
		sess.sleep = sleep
	}
}

// WithLogger sets the logger for frame tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(sess *Session) {
		sess.logger = logger
	}
}

// Session is a single verification round trip.
type Session struct {
	transport Transport
	timing    Timing
	sleep     Sleeper
	logger    zerolog.Logger

	state    State
	request  frame.Request
	selector Selector
}

// New creates an idle session borrowing transport.
func New(transport Transport, opts ...Option) (sess *Session) {
	sess = &Session{
		transport: transport,
		timing:    DefaultTiming(),
		sleep:     time.Sleep,
		logger:    log.Logger,
	}

	for _, opt := range opts {
		opt(sess)
	}

	return
}

// State returns the current state.
func (sess *Session) State() State {
	return sess.state
}

// Request returns the submitted frame.
func (sess *Session) Request() frame.Request {
	return sess.request
}

// complete moves to the terminal state and releases the transport.
func (sess *Session) complete() {
	sess.state = Completed
	sess.transport = nil
}

// Submit encodes and writes a frame, then observes the settle delay.
// Unregistered codes must be submitted with Custom; they are rejected
// before any I/O otherwise.
func (sess *Session) Submit(a, b uint8, sel Selector) (err error) {
	switch sess.state {
	case Idle:
	case Completed:
		err = ErrCompleted
		return
	default:
		err = ErrFrameOutstanding
		return
	}

	if sess.transport == nil {
		err = ErrNoTransport
		return
	}

	if !sel.Custom {
		_, err = alu.Lookup(sel.Code)
		if err != nil {
			return
		}
	}

	sess.selector = sel
	sess.request = frame.Encode(a, b, sel.Code)

	n, err := sess.transport.Write(sess.request.Bytes())
	if err == nil && n != frame.RequestSize {
		err = io.ErrShortWrite
	}
	if err != nil {
		sess.complete()
		err = &ErrTransport{Op: "write", Err: err}
		return
	}

	sess.state = FrameSent
	sess.logger.Debug().
		Hex("frame", sess.request.Bytes()).
		Stringer("op", sel).
		Msg("session: frame sent")

	sess.sleep(sess.timing.Settle)
	sess.state = AwaitingResponse

	return
}

// AwaitResponse waits for the response window, reads once, and derives the
// outcome. The session is Completed afterwards, whatever happened.
func (sess *Session) AwaitResponse() (outcome Outcome, err error) {
	if sess.state != AwaitingResponse {
		err = ErrNotSubmitted
		return
	}

	transport := sess.transport
	defer sess.complete()

	sess.sleep(sess.timing.Wait)

	raw, err := transport.ReadAvailable()
	if err != nil {
		err = &ErrTransport{Op: "read", Err: err}
		return
	}

	outcome = NewOutcome(sess.request, sess.selector.Custom, frame.Decode(raw))

	sess.logger.Debug().
		Hex("response", raw).
		Stringer("kind", outcome.Response.Kind).
		Stringer("verdict", outcome.Verdict).
		Msg("session: response read")

	return
}

// Verify runs a complete round trip on a fresh session.
func Verify(transport Transport, a, b uint8, sel Selector, opts ...Option) (outcome Outcome, err error) {
	sess := New(transport, opts...)

	err = sess.Submit(a, b, sel)
	if err != nil {
		return
	}

	outcome, err = sess.AwaitResponse()
	return
}
