package daemon

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/notify"
)

func newTestDaemon(t *testing.T) *Daemon {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_CACHE_HOME", tempDir)

	d, err := New(notify.Nop{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(d.cancel)
	return d
}

func roundTrip(t *testing.T, d *Daemon, cmd byte) string {
	t.Helper()
	server, client := net.Pipe()
	done := make(chan struct{})

	go func() {
		d.handle(server)
		close(done)
	}()

	if _, err := client.Write([]byte{cmd, '\n'}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	buf := make([]byte, 256)
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := client.Read(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	client.Close()
	<-done

	return string(buf[:n])
}

func TestDaemon_Commands(t *testing.T) {
	d := newTestDaemon(t)

	t.Run("status starts idle", func(t *testing.T) {
		resp := roundTrip(t, d, 's')
		if !strings.Contains(resp, "status=idle") {
			t.Errorf("status response = %q, want status=idle", resp)
		}
	})

	t.Run("version", func(t *testing.T) {
		resp := roundTrip(t, d, 'v')
		if !strings.HasPrefix(resp, "STATUS proto=") {
			t.Errorf("version response = %q", resp)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		resp := roundTrip(t, d, 'x')
		if !strings.HasPrefix(resp, "ERR unknown=") {
			t.Errorf("unknown command response = %q", resp)
		}
	})
}

func TestDaemon_StatusReflectsEvents(t *testing.T) {
	d := newTestDaemon(t)
	d.rec.Run(d.ctx)
	defer d.rec.Stop()

	d.rec.Feed(backend.Event{Kind: backend.EventStateChanged, Status: backend.Recording})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(roundTrip(t, d, 's'), "status=recording") {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("status did not reflect the state-changed event")
}

func TestDaemon_GpuFallbackResetsDraft(t *testing.T) {
	d := newTestDaemon(t)
	d.rec.Run(d.ctx)
	defer d.rec.Stop()

	// user has unsaved edits
	d.store.SetUseGpu(true)
	d.store.SetGpuDevice(2)
	if !d.store.HasPendingChanges() {
		t.Fatal("expected pending changes")
	}

	// engine reports it fell back to CPU
	d.rec.Feed(backend.Event{Kind: backend.EventGpuFallback})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !d.store.HasPendingChanges() {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if d.store.HasPendingChanges() {
		t.Fatal("gpu fallback should have discarded the unsaved draft")
	}
	if d.store.Draft().UseGpu {
		t.Error("draft should match the committed configuration on disk")
	}
}
