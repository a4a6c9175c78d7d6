// Package cec turns HDMI-CEC remote control traffic into input events
package cec

import (
	"context"
	"sync"
	"time"

	"github.com/genricoloni/vidmode/internal/cecdev"
	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/input"
	"go.uber.org/zap"
)

const (
	// SourceName identifies CEC events
	SourceName = "CEC"
	// DeviceName is the OSD name announced to the TV
	DeviceName = "Streato"

	// SettingsSection holds every CEC option
	SettingsSection = "cec"

	checkInterval = 10 * time.Second
)

// LibraryFactory builds a library instance from a configuration
type LibraryFactory func(cfg cecdev.Configuration) (cecdev.Library, error)

type requestKind int

const (
	requestInit requestKind = iota
	requestClose
)

type request struct {
	kind  requestKind
	reply chan bool
}

// Worker owns a CEC library instance on its own goroutine.
// Init and Close are blocking calls served by that goroutine; library
// callbacks arrive on the library's goroutine and only touch fields
// guarded by mu.
type Worker struct {
	logger   *zap.Logger
	settings domain.Settings
	power    domain.PowerController
	factory  LibraryFactory
	interval time.Duration
	emitter  *input.Emitter

	requests  chan request
	done      chan struct{}
	closeOnce sync.Once

	// owned by the worker goroutine
	lib cecdev.Library

	mu      sync.Mutex
	closed  bool
	port    string
	verbose bool
	lastKey string
}

// NewWorker starts a worker goroutine. The library is created on Init.
func NewWorker(logger *zap.Logger, settings domain.Settings, power domain.PowerController, factory LibraryFactory) *Worker {
	return newWorker(logger, settings, power, factory, checkInterval)
}

func newWorker(logger *zap.Logger, settings domain.Settings, power domain.PowerController, factory LibraryFactory, interval time.Duration) *Worker {
	w := &Worker{
		logger:   logger.Named("cec"),
		settings: settings,
		power:    power,
		factory:  factory,
		interval: interval,
		emitter:  input.NewEmitter(logger.Named("cec"), input.EventBufferSize),
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer close(w.done)

	var ticker *time.Ticker
	var tick <-chan time.Time
	for {
		select {
		case req := <-w.requests:
			switch req.kind {
			case requestInit:
				ok := w.initCec()
				if ok && ticker == nil {
					ticker = time.NewTicker(w.interval)
					tick = ticker.C
				}
				req.reply <- ok
			case requestClose:
				if ticker != nil {
					ticker.Stop()
				}
				w.closeCec()
				req.reply <- true
				return
			}
		case <-tick:
			w.checkAdapter()
		}
	}
}

// Init creates the library and opens the first adapter found. It returns
// true once the library is up, even if no adapter is plugged in yet: the
// worker keeps looking for one every ten seconds.
func (w *Worker) Init(ctx context.Context) bool {
	reply := make(chan bool, 1)
	select {
	case w.requests <- request{kind: requestInit, reply: reply}:
	case <-w.done:
		return false
	case <-ctx.Done():
		return false
	}

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

// Close releases the library and stops the worker goroutine.
// Callbacks delivered after Close are dropped.
func (w *Worker) Close() error {
	w.closeOnce.Do(func() {
		reply := make(chan bool, 1)
		select {
		case w.requests <- request{kind: requestClose, reply: reply}:
			<-reply
		case <-w.done:
		}
		<-w.done

		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		w.emitter.Close()
	})
	return nil
}

// Events returns the stream of key events decoded from the bus
func (w *Worker) Events() <-chan domain.InputEvent {
	return w.emitter.Events()
}

func (w *Worker) initCec() bool {
	if w.lib != nil {
		return true
	}

	w.mu.Lock()
	w.verbose = w.settings.Bool(SettingsSection, "verbose_logging")
	w.mu.Unlock()

	cfg := cecdev.Configuration{
		DeviceName:     DeviceName,
		DeviceType:     cecdev.DeviceTypeRecording,
		ActivateSource: w.settings.Bool(SettingsSection, "activatesource"),
		HDMIPort:       w.settings.Int(SettingsSection, "hdmiport"),
		BaseDevice:     cecdev.AddressTV,
		Callbacks: cecdev.Callbacks{
			Log:     w.onLog,
			Command: w.onCommand,
			Alert:   w.onAlert,
		},
	}

	lib, err := w.factory(cfg)
	if err != nil {
		w.logger.Error("Unable to initialize CEC library", zap.Error(err))
		return false
	}
	w.lib = lib
	w.logger.Info("CEC library initialized",
		zap.Bool("activate_source", cfg.ActivateSource),
		zap.Int("hdmi_port", cfg.HDMIPort))

	w.checkAdapter()
	return true
}

func (w *Worker) closeCec() {
	if w.lib == nil {
		return
	}
	w.logger.Debug("Closing CEC library")
	w.setPort("")
	w.lib.Close()
	w.lib.Destroy()
	w.lib = nil
}

// checkAdapter reopens the adapter when none is open
func (w *Worker) checkAdapter() {
	if w.lib == nil || w.currentPort() != "" {
		return
	}

	w.lib.Close()
	w.openAdapter()
}

func (w *Worker) openAdapter() bool {
	adapters := w.lib.DetectAdapters()
	if len(adapters) == 0 {
		w.logger.Debug("No CEC adapter found")
		return false
	}

	adapter := adapters[0]
	w.logger.Info("Opening CEC adapter",
		zap.String("port", adapter.Port),
		zap.String("name", adapter.Name),
		zap.Uint16("physical_address", adapter.PhysicalAddress))

	w.setPort(adapter.Port)
	if !w.lib.Open(adapter.Port) {
		w.logger.Error("Unable to open CEC adapter", zap.String("port", adapter.Port))
		w.setPort("")
		return false
	}

	w.logger.Info("CEC adapter opened", zap.String("port", adapter.Port))
	return true
}

func (w *Worker) currentPort() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.port
}

func (w *Worker) setPort(port string) {
	w.mu.Lock()
	w.port = port
	w.mu.Unlock()
}

// isClosed also reports the verbose flag so callbacks take the lock once
func (w *Worker) isClosed() (closed, verbose bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed, w.verbose
}

func (w *Worker) onLog(msg cecdev.LogMessage) {
	closed, verbose := w.isClosed()
	if closed {
		return
	}

	switch msg.Level {
	case cecdev.LogError:
		w.logger.Error(msg.Message)
	case cecdev.LogWarning:
		w.logger.Warn(msg.Message)
	case cecdev.LogNotice:
		w.logger.Info(msg.Message)
	case cecdev.LogDebug:
		if verbose {
			w.logger.Debug(msg.Message)
		}
	}
}

func (w *Worker) onAlert(alert cecdev.Alert) {
	if closed, _ := w.isClosed(); closed {
		return
	}

	w.logger.Error("CEC alert", zap.Stringer("alert", alert))

	switch alert {
	case cecdev.AlertConnectionLost, cecdev.AlertPermissionError, cecdev.AlertPortBusy:
		w.logger.Debug("Adapter will be reopened on next check")
		w.setPort("")
	}
}

func (w *Worker) onCommand(cmd cecdev.Command) {
	closed, verbose := w.isClosed()
	if closed {
		return
	}

	if verbose {
		w.logger.Debug("CEC command received",
			zap.Uint8("opcode", uint8(cmd.Opcode)),
			zap.Uint8("initiator", uint8(cmd.Initiator)),
			zap.String("params", cmd.ParamsString()))
	}
	w.handleCommand(cmd)
}

func (w *Worker) send(key string, state domain.KeyState) {
	w.emitter.Emit(domain.InputEvent{Source: SourceName, Key: key, State: state})
}
