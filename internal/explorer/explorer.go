// Package explorer is a small file browser driven by vim keys or arrows.
//
// It is the reference host for the vimterm toolkit: it puts the terminal in
// raw mode, decodes key events, moves a navigator over the listing and shows
// a spinner while directories load in the background.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/logging"
	"github.com/muurk/vimterm/pkg/input"
	"github.com/muurk/vimterm/pkg/loading"
	"github.com/muurk/vimterm/pkg/navigator"
	"github.com/muurk/vimterm/pkg/terminal"
)

// Options configures an Explorer.
type Options struct {
	StartDir       string
	Columns        int
	ShowHidden     bool
	LoadingMessage string
	Interval       time.Duration

	// OnSignal runs after the terminal has been restored on SIGINT, SIGTERM
	// or SIGHUP. Nil leaves signal handling to the caller.
	OnSignal func(os.Signal)
}

// Explorer browses one directory at a time. Loads run on their own goroutine
// and the screen is redrawn from both that goroutine and the input loop.
type Explorer struct {
	term   *terminal.Terminal
	opts   Options
	status *loading.Status
	keys   input.KeyMap

	readDir func(ctx context.Context, dir string, showHidden bool) ([]Item, error)

	mu      sync.Mutex // guards the fields below
	dir     string
	items   []Item
	nav     *navigator.Navigator
	history []string
	lastErr error
	loadSeq uint64
	busy    bool // a load is in flight

	loads sync.WaitGroup

	draw   sync.Mutex // serialises frames with shutdown
	closed bool
}

// New creates an Explorer on t.
func New(t *terminal.Terminal, opts Options) *Explorer {
	if opts.Columns < 1 || opts.Columns > 2 {
		opts.Columns = 1
	}
	if opts.LoadingMessage == "" {
		opts.LoadingMessage = "Loading directory..."
	}

	e := &Explorer{
		term: t,
		opts: opts,
		keys:    input.DefaultKeyMap(),
		readDir: ReadDir,
		dir:     opts.StartDir,
		nav:  navigator.New(0, opts.Columns),
	}
	var statusOpts []loading.Option
	if opts.Interval > 0 {
		statusOpts = append(statusOpts, loading.WithInterval(opts.Interval))
	}
	e.status = loading.NewStatus(e.redraw, statusOpts...)
	return e
}

// Run takes over the terminal until the user quits or input ends. The
// terminal is always restored before Run returns.
func (e *Explorer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer e.loads.Wait()
	defer cancel()

	raw := e.term.EnableRawMode()
	defer raw.Restore()
	defer e.stopDrawing()

	if e.opts.OnSignal != nil {
		stop := terminal.RestoreOnSignal(raw, e.opts.OnSignal)
		defer stop()
	}

	logging.Info("Explorer started",
		zap.String("dir", e.opts.StartDir),
		zap.Int("columns", e.opts.Columns),
		zap.Bool("raw", raw.Active()),
	)

	e.load(ctx, e.opts.StartDir, loadInitial)

	dec := input.NewDecoder(e.term)
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			logging.Info("Input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !e.handle(ctx, ev) {
			logging.Info("Explorer quit")
			return nil
		}
		e.redraw()
	}
}

// handle applies one event. It returns false when the explorer should exit.
func (e *Explorer) handle(ctx context.Context, ev input.Event) bool {
	if ev.Kind == input.KindQuit {
		return false
	}
	// Keys other than quit wait until the listing they act on is shown.
	if e.loading() {
		return true
	}

	switch ev.Kind {
	case input.KindVim, input.KindArrow:
		e.mu.Lock()
		e.nav.Navigate(ev)
		e.mu.Unlock()
	case input.KindEnter:
		e.enter(ctx)
	case input.KindBackspace:
		e.back(ctx)
	case input.KindSpace:
		e.mu.Lock()
		dir := e.dir
		e.mu.Unlock()
		e.load(ctx, dir, loadRefresh)
	}
	return true
}

func (e *Explorer) loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// hasParent reports whether the listing starts with a ".." entry.
func (e *Explorer) hasParent() bool {
	_, ok := Parent(e.dir)
	return ok
}

func (e *Explorer) enter(ctx context.Context) {
	e.mu.Lock()
	selected := e.nav.SelectedIndex()
	offset := 0
	var target string
	if e.hasParent() {
		offset = 1
		if selected == 0 {
			target, _ = Parent(e.dir)
		}
	}
	if target == "" {
		i := selected - offset
		if i < 0 || i >= len(e.items) || !e.items[i].IsDir {
			e.mu.Unlock()
			return
		}
		target = e.items[i].Path
	}
	e.mu.Unlock()

	e.load(ctx, target, loadOpen)
}

func (e *Explorer) back(ctx context.Context) {
	e.mu.Lock()
	if len(e.history) == 0 {
		e.mu.Unlock()
		return
	}
	prev := e.history[len(e.history)-1]
	e.mu.Unlock()

	e.load(ctx, prev, loadBack)
}

type loadKind int

const (
	loadInitial loadKind = iota
	loadOpen             // pushes the current directory on success
	loadBack             // pops the history on success
	loadRefresh          // keeps the selection
)

// load lists dir in the background. The explorer counts as loading from
// the moment load is called until the listing is in place, so keys that
// follow are not applied to the old listing. History only changes once the
// new directory has been read.
func (e *Explorer) load(ctx context.Context, dir string, kind loadKind) {
	e.mu.Lock()
	e.loadSeq++
	seq := e.loadSeq
	e.busy = true
	e.mu.Unlock()

	e.loads.Add(1)
	go func() {
		defer e.loads.Done()
		defer func() {
			e.mu.Lock()
			if seq == e.loadSeq {
				e.busy = false
			}
			e.mu.Unlock()
		}()

		start := time.Now()
		err := e.status.Do(ctx, e.opts.LoadingMessage, func(ctx context.Context) error {
			items, err := e.readDir(ctx, dir, e.opts.ShowHidden)

			e.mu.Lock()
			defer e.mu.Unlock()
			if seq != e.loadSeq {
				return nil
			}
			if err != nil {
				e.lastErr = err
				return err
			}
			e.lastErr = nil
			switch kind {
			case loadOpen:
				e.history = append(e.history, e.dir)
			case loadBack:
				if n := len(e.history); n > 0 {
					e.history = e.history[:n-1]
				}
			}
			e.dir = dir
			e.items = items
			total := len(items)
			if e.hasParent() {
				total++
			}
			if kind == loadRefresh {
				e.nav.UpdateItemCount(total)
			} else {
				e.nav = navigator.New(total, e.opts.Columns)
			}
			return nil
		})

		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn("Failed to load directory", zap.String("dir", dir), zap.Error(err))
			return
		}
		logging.Debug("Directory loaded",
			zap.String("dir", dir),
			zap.Int("kind", int(kind)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()
}

// redraw writes a full frame. It is called from the input loop and, through
// the loading status, from load goroutines.
func (e *Explorer) redraw() {
	e.draw.Lock()
	defer e.draw.Unlock()
	if e.closed {
		return
	}
	width, height := e.term.Size()

	e.mu.Lock()
	frame := e.render(width, height)
	e.mu.Unlock()

	if err := e.term.WriteString(terminal.ClearScreen + frame); err != nil {
		logging.Debug("Failed to draw frame", zap.Error(err))
	}
}

// stopDrawing drops frames from loads still finishing, so nothing is drawn
// once the terminal has been restored.
func (e *Explorer) stopDrawing() {
	e.draw.Lock()
	e.closed = true
	e.draw.Unlock()
}

// Dir returns the directory currently listed.
func (e *Explorer) Dir() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dir
}

// Selection returns the selected index and column.
func (e *Explorer) Selection() (index, column int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nav.SelectedIndex(), e.nav.SelectedColumn()
}

// Entries returns the names shown, including ".." when present.
func (e *Explorer) Entries() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, 0, len(e.items)+1)
	if e.hasParent() {
		names = append(names, "..")
	}
	for _, it := range e.items {
		names = append(names, it.Name)
	}
	return names
}
