package hotkey

import (
	"errors"
	"fmt"
	"strings"
)

// Combo is the canonical textual form of a global shortcut: modifiers in
// the fixed order Ctrl, Alt, Shift, Super joined to a single key token
// with '+', e.g. "Ctrl+Shift+R" or "F9".
type Combo string

// KeyEvent is a raw key press as reported by the host UI. Code uses W3C
// UI Events values ("KeyR", "Digit3", "F9", "Space", "Escape").
type KeyEvent struct {
	Code  string
	Ctrl  bool
	Alt   bool
	Shift bool
	Super bool
}

var (
	// ErrUnsupportedKey means the physical key has no place in a hotkey.
	ErrUnsupportedKey = errors.New("unsupported key")
	// ErrNoModifier means a plain letter/digit/Space key was pressed with
	// no modifier held. Such combos would fire on every normal keystroke.
	ErrNoModifier = errors.New("at least one modifier required")
	// ErrCancelled means Escape was pressed to leave capture mode.
	ErrCancelled = errors.New("capture cancelled")
)

// functionKeys is the set of bare keys allowed without a modifier.
var functionKeys = map[string]bool{
	"F1": true, "F2": true, "F3": true, "F4": true, "F5": true, "F6": true,
	"F7": true, "F8": true, "F9": true, "F10": true, "F11": true, "F12": true,
}

// Capture turns a raw key press into a canonical combo. Escape yields
// ErrCancelled; any other rejection leaves capture mode waiting for the
// next press. The function is pure: no state, no retries.
func Capture(ev KeyEvent) (Combo, error) {
	if ev.Code == "Escape" {
		return "", ErrCancelled
	}

	key, err := keyToken(ev.Code)
	if err != nil {
		return "", err
	}

	mods := modifierTokens(ev.Ctrl, ev.Alt, ev.Shift, ev.Super)
	if len(mods) == 0 && !functionKeys[key] {
		return "", fmt.Errorf("%w: %s", ErrNoModifier, key)
	}

	return Combo(strings.Join(append(mods, key), "+")), nil
}

// keyToken maps a physical key code to its canonical token.
func keyToken(code string) (string, error) {
	switch {
	case len(code) == 4 && strings.HasPrefix(code, "Key") &&
		code[3] >= 'A' && code[3] <= 'Z':
		return code[3:], nil

	case len(code) == 6 && strings.HasPrefix(code, "Digit") &&
		code[5] >= '0' && code[5] <= '9':
		return code[5:], nil

	case code == "Space":
		return "Space", nil

	case isFunctionCode(code):
		// F13 and above exist on some keyboards but are outside the
		// combo alphabet.
		if !functionKeys[code] {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, code)
		}
		return code, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, code)
}

// isFunctionCode reports whether code looks like "F" + digits.
func isFunctionCode(code string) bool {
	if len(code) < 2 || code[0] != 'F' {
		return false
	}
	for i := 1; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// modifierTokens returns held modifiers in canonical order regardless of
// physical press order.
func modifierTokens(ctrl, alt, shift, super bool) []string {
	var mods []string
	if ctrl {
		mods = append(mods, "Ctrl")
	}
	if alt {
		mods = append(mods, "Alt")
	}
	if shift {
		mods = append(mods, "Shift")
	}
	if super {
		mods = append(mods, "Super")
	}
	return mods
}

// Parse normalizes a user-written combo string into canonical form.
// Modifier aliases (CONTROL, META, WIN) and arbitrary case/order are
// accepted; the same alphabet and modifier rules as Capture apply.
func Parse(s string) (Combo, error) {
	var ctrl, alt, shift, super bool
	key := ""

	for _, part := range strings.Split(s, "+") {
		switch strings.ToUpper(strings.TrimSpace(part)) {
		case "CTRL", "CONTROL":
			ctrl = true
		case "ALT":
			alt = true
		case "SHIFT":
			shift = true
		case "SUPER", "META", "WIN":
			super = true
		case "SPACE":
			if key != "" {
				return "", fmt.Errorf("multiple keys in %q", s)
			}
			key = "Space"
		default:
			token := strings.ToUpper(strings.TrimSpace(part))
			if !isComboKey(token) {
				return "", fmt.Errorf("%w: %q", ErrUnsupportedKey, part)
			}
			if key != "" {
				return "", fmt.Errorf("multiple keys in %q", s)
			}
			key = token
		}
	}

	if key == "" {
		return "", fmt.Errorf("no key in %q", s)
	}
	if !functionKeys[key] && !ctrl && !alt && !shift && !super {
		return "", fmt.Errorf("%w: %s", ErrNoModifier, key)
	}

	mods := modifierTokens(ctrl, alt, shift, super)
	return Combo(strings.Join(append(mods, key), "+")), nil
}

// Valid reports whether s parses as a combo.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// isComboKey reports whether token is in the fixed key alphabet
// (letters, digits, F1-F12; Space is handled by the caller).
func isComboKey(token string) bool {
	if len(token) == 1 {
		c := token[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	return functionKeys[token]
}
