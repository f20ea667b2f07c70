package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard. Empty text is a no-op so a
// blank transcription never clobbers whatever the user had copied.
func Copy(text string) error {
	if text == "" {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
