package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of an external tool
type Status struct {
	Installed bool
	Path      string
	Version   string
}

// Tool describes an external program Shytext relies on at runtime
type Tool struct {
	Name       string
	Purpose    string
	VersionArg string
	Optional   bool
}

// Tools lists the external programs Shytext calls out to.
// notify-send backs desktop notifications; the clipboard helpers
// back auto-copy (one of them is enough, picked by session type).
var Tools = []Tool{
	{Name: "notify-send", Purpose: "desktop notifications", VersionArg: "--version"},
	{Name: "wl-copy", Purpose: "clipboard (Wayland)", VersionArg: "--version", Optional: true},
	{Name: "xclip", Purpose: "clipboard (X11)", VersionArg: "-version", Optional: true},
	{Name: "xsel", Purpose: "clipboard (X11)", VersionArg: "--version", Optional: true},
}

// Check looks up a tool in PATH and tries to read its version
func Check(tool Tool) Status {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return Status{Installed: false}
	}

	status := Status{
		Installed: true,
		Path:      path,
	}

	if tool.VersionArg == "" {
		return status
	}

	cmd := exec.Command(path, tool.VersionArg)
	output, err := cmd.CombinedOutput()
	if err == nil {
		// first line carries the version string
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// ClipboardAvailable reports whether at least one clipboard helper is present
func ClipboardAvailable() bool {
	for _, tool := range Tools {
		if !strings.HasPrefix(tool.Purpose, "clipboard") {
			continue
		}
		if Check(tool).Installed {
			return true
		}
	}
	return false
}
