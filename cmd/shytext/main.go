package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/bus"
	"github.com/shytext/shytext/internal/daemon"
	"github.com/shytext/shytext/internal/deps"
	"github.com/shytext/shytext/internal/notify"
	"github.com/shytext/shytext/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "shytext",
	Short: "Hotkey-driven local dictation",
}

func init() {
	rootCmd.AddCommand(
		serveCmd(),
		statusCmd(),
		lastCmd(),
		stopCmd(),
		versionCmd(),
		configureCmd(),
		modelsCmd(),
		doctorCmd(),
	)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := daemon.New(nil)
			if err != nil {
				return fmt.Errorf("failed to create daemon: %w", err)
			}
			return d.Run()
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get current application status",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := bus.SendCommand('s')
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}
			fmt.Print(resp)
			return nil
		},
	}
}

func lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the last transcription",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := bus.SendCommand('l')
			if err != nil {
				return fmt.Errorf("failed to get last transcription: %w", err)
			}
			fmt.Print(resp)
			return nil
		},
	}
}

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := bus.SendCommand('q')
			if err != nil {
				return fmt.Errorf("failed to stop daemon: %w", err)
			}
			fmt.Print(resp)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get protocol version",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := bus.SendCommand('v')
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			fmt.Print(resp)
			return nil
		},
	}
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive settings editor",
		Long: `Interactive settings editor for shytext.
Edits are collected in a draft and written atomically on Save & Exit:
- Global hotkey
- Transcription language (when a model is loaded)
- Clipboard and notification behavior
- GPU selection (when devices are available)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(context.Background(), backend.NewLocal(), notify.Desktop{})
		},
	}
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available whisper models",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := backend.NewLocal()
			ctx := context.Background()

			dir, err := b.GetModelsDirectory(ctx)
			if err != nil {
				return err
			}

			available, err := b.GetAvailableModels(ctx)
			if err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			if len(available) == 0 {
				fmt.Printf("No models found in %s\n", dir)
				fmt.Println("Download a ggml .bin model and place it there.")
				return nil
			}

			fmt.Printf("Models in %s:\n", dir)
			for _, m := range available {
				fmt.Printf("  %-24s %s\n", m.Name, humanize.Bytes(uint64(m.Size)))
			}
			return nil
		},
	}
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tool := range deps.Tools {
				status := deps.Check(tool)
				mark := "missing"
				detail := tool.Purpose
				if status.Installed {
					mark = "ok"
					if status.Version != "" {
						detail = status.Version
					} else {
						detail = status.Path
					}
				} else if tool.Optional {
					mark = "missing (optional)"
				}
				fmt.Printf("  %-12s %-18s %s\n", tool.Name, mark, detail)
			}
			if !deps.ClipboardAvailable() {
				fmt.Println("\nNo clipboard helper found; auto-copy will not work.")
			}
			return nil
		},
	}
}
