package hotkey

import (
	"errors"
	"testing"
)

func TestCapture(t *testing.T) {
	tests := []struct {
		name    string
		event   KeyEvent
		want    Combo
		wantErr error
	}{
		{
			name:  "function key without modifiers",
			event: KeyEvent{Code: "F9"},
			want:  "F9",
		},
		{
			name:  "function key with modifier",
			event: KeyEvent{Code: "F9", Ctrl: true},
			want:  "Ctrl+F9",
		},
		{
			name:  "letter with modifier",
			event: KeyEvent{Code: "KeyR", Ctrl: true},
			want:  "Ctrl+R",
		},
		{
			name:  "digit with modifier",
			event: KeyEvent{Code: "Digit3", Alt: true},
			want:  "Alt+3",
		},
		{
			name:  "space with modifier",
			event: KeyEvent{Code: "Space", Super: true},
			want:  "Super+Space",
		},
		{
			name:  "all modifiers in canonical order",
			event: KeyEvent{Code: "KeyA", Super: true, Shift: true, Alt: true, Ctrl: true},
			want:  "Ctrl+Alt+Shift+Super+A",
		},
		{
			name:  "press order does not matter",
			event: KeyEvent{Code: "KeyR", Shift: true, Ctrl: true},
			want:  "Ctrl+Shift+R",
		},
		{
			name:    "bare letter rejected",
			event:   KeyEvent{Code: "KeyA"},
			wantErr: ErrNoModifier,
		},
		{
			name:    "bare digit rejected",
			event:   KeyEvent{Code: "Digit0"},
			wantErr: ErrNoModifier,
		},
		{
			name:    "bare space rejected",
			event:   KeyEvent{Code: "Space"},
			wantErr: ErrNoModifier,
		},
		{
			name:    "escape cancels even with modifiers",
			event:   KeyEvent{Code: "Escape", Ctrl: true},
			wantErr: ErrCancelled,
		},
		{
			name:    "arrow key unsupported",
			event:   KeyEvent{Code: "ArrowUp", Ctrl: true},
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "enter unsupported",
			event:   KeyEvent{Code: "Enter", Ctrl: true},
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "F13 outside alphabet",
			event:   KeyEvent{Code: "F13"},
			wantErr: ErrUnsupportedKey,
		},
		{
			name:    "modifier alone unsupported",
			event:   KeyEvent{Code: "ControlLeft", Ctrl: true},
			wantErr: ErrUnsupportedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Capture(tt.event)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Capture(%+v) error = %v, want %v", tt.event, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Capture(%+v) unexpected error: %v", tt.event, err)
			}
			if got != tt.want {
				t.Errorf("Capture(%+v) = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestCaptureAllFunctionKeysStandAlone(t *testing.T) {
	for i := 1; i <= 12; i++ {
		code := "F" + itoa(i)
		got, err := Capture(KeyEvent{Code: code})
		if err != nil {
			t.Errorf("Capture(%s) unexpected error: %v", code, err)
			continue
		}
		if got != Combo(code) {
			t.Errorf("Capture(%s) = %q, want %q", code, got, code)
		}
	}
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return "1" + string(rune('0'+n-10))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Combo
		wantErr bool
	}{
		{name: "canonical passthrough", in: "Ctrl+Shift+R", want: "Ctrl+Shift+R"},
		{name: "lowercase normalized", in: "ctrl+shift+r", want: "Ctrl+Shift+R"},
		{name: "modifier order normalized", in: "Shift+Ctrl+R", want: "Ctrl+Shift+R"},
		{name: "control alias", in: "Control+A", want: "Ctrl+A"},
		{name: "meta alias", in: "Meta+Space", want: "Super+Space"},
		{name: "win alias", in: "Win+F5", want: "Super+F5"},
		{name: "bare function key", in: "F9", want: "F9"},
		{name: "whitespace tolerated", in: " Ctrl + F9 ", want: "Ctrl+F9"},
		{name: "bare letter rejected", in: "R", wantErr: true},
		{name: "modifiers only rejected", in: "Ctrl+Shift", wantErr: true},
		{name: "two keys rejected", in: "Ctrl+A+B", wantErr: true},
		{name: "unknown key rejected", in: "Ctrl+Enter", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	t.Run("idle recorder ignores events", func(t *testing.T) {
		r := NewRecorder(nil)
		if consumed := r.Handle(KeyEvent{Code: "F9"}); consumed {
			t.Error("idle recorder should not consume events")
		}
	})

	t.Run("accepted combo returns to idle and fires callback", func(t *testing.T) {
		var got Combo
		r := NewRecorder(func(c Combo) { got = c })
		r.Start()

		if consumed := r.Handle(KeyEvent{Code: "KeyR", Ctrl: true}); !consumed {
			t.Error("recording recorder should consume events")
		}
		if r.State() != Idle {
			t.Errorf("state = %s, want idle", r.State())
		}
		if got != "Ctrl+R" {
			t.Errorf("accepted combo = %q, want Ctrl+R", got)
		}
	})

	t.Run("escape discards without callback", func(t *testing.T) {
		called := false
		r := NewRecorder(func(Combo) { called = true })
		r.Start()

		if consumed := r.Handle(KeyEvent{Code: "Escape"}); !consumed {
			t.Error("escape should be consumed")
		}
		if r.State() != Idle {
			t.Errorf("state = %s, want idle", r.State())
		}
		if called {
			t.Error("escape must not produce a combo")
		}
	})

	t.Run("rejection keeps recording", func(t *testing.T) {
		r := NewRecorder(nil)
		r.Start()

		if consumed := r.Handle(KeyEvent{Code: "KeyA"}); !consumed {
			t.Error("rejected key should still be consumed")
		}
		if !r.Recording() {
			t.Error("rejection should keep the recorder in capture mode")
		}

		// a valid combo after a rejection still works
		r.Handle(KeyEvent{Code: "F5"})
		if r.Recording() {
			t.Error("accepted combo should end capture mode")
		}
	})
}
