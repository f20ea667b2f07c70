package daemon

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/bus"
	"github.com/shytext/shytext/internal/clipboard"
	"github.com/shytext/shytext/internal/config"
	"github.com/shytext/shytext/internal/notify"
	"github.com/shytext/shytext/internal/reconcile"
	"github.com/shytext/shytext/internal/settings"
)

// Daemon hosts the backend, the status reconciler and the committed/
// draft settings store, and serves the control socket.
type Daemon struct {
	notifier notify.Notifier
	backend  *backend.Local
	store    *settings.Store
	rec      *reconcile.Reconciler
	manager  *config.Manager

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(n notify.Notifier) (*Daemon, error) {
	if n == nil {
		n = notify.Desktop{}
	}

	b := backend.NewLocal()

	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	devices, err := b.GetGpuDevices(ctx)
	if err != nil {
		log.Printf("Daemon: gpu device listing failed: %v", err)
	}

	store := settings.New(manager.GetConfig(), b,
		settings.WithDeviceRenderer(settings.GpuDeviceRenderer(devices)))

	// externally rewritten config file discards any unsaved draft
	manager.Subscribe(store.Reload)

	d := &Daemon{
		notifier: n,
		backend:  b,
		store:    store,
		rec:      reconcile.New(b.GetConfig, store.Reload),
		manager:  manager,
		ctx:      ctx,
		cancel:   cancel,
	}

	return d, nil
}

func (d *Daemon) Run() error {
	if err := bus.CheckExistingDaemon(); err != nil {
		return err
	}

	ln, err := bus.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()

	if err := bus.CreatePidFile(); err != nil {
		return fmt.Errorf("failed to create PID file: %w", err)
	}
	defer bus.RemovePidFile()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully", sig)
		d.cancel()
	}()

	go func() {
		<-d.ctx.Done()
		ln.Close()
	}()

	d.rec.Run(d.ctx)
	defer d.rec.Stop()

	if err := d.manager.StartWatching(d.ctx); err != nil {
		log.Printf("Daemon: config watching unavailable: %v", err)
	}
	defer d.manager.Stop()

	d.wg.Add(1)
	go d.consumeEvents()
	defer d.wg.Wait()

	log.Printf("Daemon started, listening on socket")

	for {
		c, err := ln.Accept()
		if err != nil {
			if d.ctx.Err() != nil {
				log.Printf("Shutdown requested")
				return nil
			}
			log.Printf("Accept error: %v", err)
			return fmt.Errorf("accept failed: %w", err)
		}
		go d.handle(c)
	}
}

// consumeEvents feeds engine pushes into the reconciler and applies the
// transcription side effects the user asked for.
func (d *Daemon) consumeEvents() {
	defer d.wg.Done()

	events := d.backend.Events.Subscribe()
	for {
		select {
		case ev := <-events:
			d.rec.Feed(ev)
			d.applySideEffects(ev)
		case <-d.ctx.Done():
			return
		}
	}
}

func (d *Daemon) applySideEffects(ev backend.Event) {
	cfg := d.store.Committed()

	switch ev.Kind {
	case backend.EventTranscription:
		if cfg.AutoCopy {
			if err := clipboard.Copy(ev.Text); err != nil {
				log.Printf("Daemon: %v", err)
			}
		}
		if cfg.ShowNotifications {
			notify.Transcribed(d.notifier, ev.Text)
		}

	case backend.EventError:
		if ev.Text != "" && cfg.ShowNotifications {
			d.notifier.Error(ev.Text)
		}
	}
}

func (d *Daemon) handle(c net.Conn) {
	defer c.Close()

	line, err := bufio.NewReader(c).ReadString('\n')
	if err != nil {
		log.Printf("Client read error: %v", err)
		fmt.Fprintf(c, "ERR read_error: %v\n", err)
		return
	}
	if len(line) == 0 {
		fmt.Fprint(c, "ERR empty\n")
		return
	}

	d.dispatch(line[0], c)
}

func (d *Daemon) dispatch(cmd byte, c net.Conn) {
	switch cmd {
	case 's': // status
		snap := d.rec.Snapshot()
		fmt.Fprintf(c, "STATUS status=%s error=%q\n", snap.Status, snap.LastError)
	case 'l': // last transcription
		fmt.Fprintf(c, "STATUS transcription=%q\n", d.rec.Snapshot().LastTranscription)
	case 'v': // protocol version
		fmt.Fprintf(c, "STATUS proto=%s\n", bus.ProtoVer)
	case 'q': // quit daemon
		log.Printf("Shutdown requested")
		fmt.Fprint(c, "OK quitting\n")
		d.cancel()
	default:
		log.Printf("Unknown command: %c", cmd)
		fmt.Fprintf(c, "ERR unknown=%q\n", cmd)
	}
}
