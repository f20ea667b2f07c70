package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocal(t *testing.T, opts ...LocalOption) *Local {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return NewLocal(opts...)
}

func TestLocal_LoadModel(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		l := newTestLocal(t)
		if err := l.LoadModel(ctx, "/nowhere/ggml-base.bin"); err == nil {
			t.Error("LoadModel should fail for a missing file")
		}
		if loaded, _ := l.HasModelLoaded(ctx); loaded {
			t.Error("failed load must not mark a model as loaded")
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		l := newTestLocal(t)
		path := filepath.Join(t.TempDir(), "model.txt")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := l.LoadModel(ctx, path); err == nil {
			t.Error("LoadModel should reject non-.bin files")
		}
	})

	t.Run("multilingual model", func(t *testing.T) {
		l := newTestLocal(t)
		path := filepath.Join(t.TempDir(), "ggml-base.bin")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := l.LoadModel(ctx, path); err != nil {
			t.Fatalf("LoadModel failed: %v", err)
		}

		if loaded, _ := l.HasModelLoaded(ctx); !loaded {
			t.Error("model should be loaded")
		}
		if multi, _ := l.IsModelMultilingual(ctx); !multi {
			t.Error("ggml-base should be multilingual")
		}

		cfg, err := l.GetConfig(ctx)
		if err != nil {
			t.Fatalf("GetConfig failed: %v", err)
		}
		if cfg.ModelPath != path {
			t.Errorf("config model_path = %q, want %q", cfg.ModelPath, path)
		}
	})

	t.Run("english-only model", func(t *testing.T) {
		l := newTestLocal(t)
		path := filepath.Join(t.TempDir(), "ggml-small.en.bin")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := l.LoadModel(ctx, path); err != nil {
			t.Fatalf("LoadModel failed: %v", err)
		}
		if multi, _ := l.IsModelMultilingual(ctx); multi {
			t.Error(".en model should not be multilingual")
		}
	})
}

func TestLocal_SaveConfigValidates(t *testing.T) {
	ctx := context.Background()
	l := newTestLocal(t)

	cfg, err := l.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}

	cfg.Hotkey = "not-a-hotkey"
	if err := l.SaveConfig(ctx, cfg); err == nil {
		t.Error("SaveConfig should reject an invalid hotkey")
	}

	// persisted config untouched by the failed save
	fresh, err := l.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if fresh.Hotkey != "F9" {
		t.Errorf("persisted hotkey = %q, want F9", fresh.Hotkey)
	}

	cfg.Hotkey = "Ctrl+F5"
	if err := l.SaveConfig(ctx, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	fresh, _ = l.GetConfig(ctx)
	if fresh.Hotkey != "Ctrl+F5" {
		t.Errorf("persisted hotkey = %q, want Ctrl+F5", fresh.Hotkey)
	}
}

func TestLocal_GetGpuDevices(t *testing.T) {
	ctx := context.Background()

	t.Run("default is empty", func(t *testing.T) {
		l := newTestLocal(t)
		devices, err := l.GetGpuDevices(ctx)
		if err != nil {
			t.Fatalf("GetGpuDevices failed: %v", err)
		}
		if len(devices) != 0 {
			t.Errorf("devices = %+v, want none", devices)
		}
	})

	t.Run("enumerator plugged in", func(t *testing.T) {
		want := []GpuDevice{{ID: 0, Name: "RTX", DeviceType: "DiscreteGpu", Backend: "Vulkan"}}
		l := newTestLocal(t, WithGpuEnumerator(func() []GpuDevice { return want }))

		devices, err := l.GetGpuDevices(ctx)
		if err != nil {
			t.Fatalf("GetGpuDevices failed: %v", err)
		}
		if len(devices) != 1 || devices[0].Name != "RTX" {
			t.Errorf("devices = %+v, want %+v", devices, want)
		}
	})
}

func TestPublisher(t *testing.T) {
	var p Publisher

	a := p.Subscribe()
	b := p.Subscribe()

	p.Publish(Event{Kind: EventTranscription, Text: "hello"})

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case ev := <-ch:
			if ev.Kind != EventTranscription || ev.Text != "hello" {
				t.Errorf("subscriber %s got %+v", name, ev)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestPublisherDropsWhenFull(t *testing.T) {
	var p Publisher
	ch := p.Subscribe()

	// fill the buffer and one more; the overflow is dropped, not blocking
	for i := 0; i < 20; i++ {
		p.Publish(Event{Kind: EventStateChanged, Status: Recording})
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}

	if drained != 16 {
		t.Errorf("drained %d events, want buffer size 16", drained)
	}
}
