package notify

import (
	"fmt"
	"log"
	"os/exec"
)

const appName = "Shytext"

// Notifier delivers user-facing notifications. Delivery is best-effort
// everywhere: failures are logged and never propagate into the flow
// that triggered them.
type Notifier interface {
	Notify(title, body string)
	Error(msg string)
}

// Desktop sends notifications through notify-send.
type Desktop struct{}

func (Desktop) Notify(title, body string) {
	cmd := exec.Command("notify-send", "-a", appName, title, body)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", appName, "-u", "critical",
		fmt.Sprintf("%s Error", appName), msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

// Log writes notifications to the process log instead of the desktop.
type Log struct{}

func (Log) Notify(title, body string) {
	log.Printf("%s: %s: %s", appName, title, body)
}

func (Log) Error(msg string) {
	log.Printf("%s Error: %s", appName, msg)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) Notify(title, body string) {}
func (Nop) Error(msg string)          {}
