package hotkey

import "errors"

type State string

const (
	Idle      State = "idle"
	Recording State = "recording"
)

// Recorder drives interactive hotkey capture. While recording, the host
// UI must route every key event through Handle before its own handling;
// Handle returns true when the event was consumed, which is the signal
// to stop the event's default action and propagation. There is no
// timeout: capture ends only on an accepted combo or Escape.
type Recorder struct {
	state    State
	onAccept func(Combo)
}

// NewRecorder creates a recorder; onAccept receives each accepted combo
// (typically writing it into the settings draft).
func NewRecorder(onAccept func(Combo)) *Recorder {
	return &Recorder{state: Idle, onAccept: onAccept}
}

func (r *Recorder) State() State {
	return r.state
}

func (r *Recorder) Recording() bool {
	return r.state == Recording
}

// Start switches to capture mode. Starting while already recording is a
// no-op.
func (r *Recorder) Start() {
	r.state = Recording
}

// Handle feeds a key event into the capture state machine and reports
// whether the event was consumed. Rejected keys keep the recorder in
// capture mode; Escape and accepted combos return it to idle.
func (r *Recorder) Handle(ev KeyEvent) bool {
	if r.state != Recording {
		return false
	}

	combo, err := Capture(ev)
	switch {
	case errors.Is(err, ErrCancelled):
		r.state = Idle
	case err != nil:
		// rejected; wait for another press
	default:
		r.state = Idle
		if r.onAccept != nil {
			r.onAccept(combo)
		}
	}
	return true
}
