package notify

import (
	"fmt"
	"strings"

	"github.com/shytext/shytext/internal/settings"
)

const changesTitle = "Settings updated"

// transcription previews are cut to keep the notification readable
const previewLimit = 50

// ChangesApplied dispatches a single notification summarizing an applied
// change set, one "<Label>: <old> -> <new>" line per field. An empty
// change set sends nothing.
func ChangesApplied(n Notifier, cs settings.ChangeSet) {
	if len(cs) == 0 {
		return
	}

	lines := make([]string, len(cs))
	for i, c := range cs {
		lines[i] = fmt.Sprintf("%s: %s -> %s", c.Field, c.Old, c.New)
	}

	n.Notify(changesTitle, strings.Join(lines, "\n"))
}

// Transcribed announces a finished transcription with a truncated
// preview of the text.
func Transcribed(n Notifier, text string) {
	if text == "" {
		n.Notify("No speech detected", "Try speaking louder or closer to the microphone")
		return
	}

	preview := text
	if runes := []rune(text); len(runes) > previewLimit {
		preview = string(runes[:previewLimit]) + "..."
	}
	n.Notify("Transcribed", preview)
}
