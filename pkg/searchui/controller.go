package searchui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/nextwave/siteclient/pkg/shared/sched"
	"github.com/nextwave/siteclient/pkg/sitesearch"
)

// DefaultDelay is the quiet period after the last keystroke before a search runs.
const DefaultDelay = 300 * time.Millisecond

type Options struct {
	Delay     time.Duration
	Scheduler sched.Scheduler
	Log       zerolog.Logger
}

// Controller owns the debounce timer, the request sequence and the panel state
// of one search box.
type Controller struct {
	searcher  Searcher
	panel     Panel
	overlay   Overlay
	navigator Navigator
	scheduler sched.Scheduler
	delay     time.Duration
	log       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	pending  sched.Timer
	timerGen uint64
	seq      uint64
	state    State
	closed   bool
}

// NewController creates a controller rendering into panel.
func NewController(ctx context.Context, searcher Searcher, panel Panel, opts Options) *Controller {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = sched.Real
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		searcher:  searcher,
		panel:     panel,
		scheduler: opts.Scheduler,
		delay:     opts.Delay,
		log:       opts.Log.With().Str("component", "search_controller").Logger(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Bind wires a controller to the regions of a page. If a required region or the
// searcher is missing, nothing is attached and nil is returned.
func Bind(ctx context.Context, surface Surface, searcher Searcher, opts Options) *Controller {
	if !surface.complete() || searcher == nil {
		opts.Log.Debug().
			Bool("input", surface.Input != nil).
			Bool("trigger", surface.Trigger != nil).
			Bool("results", surface.Results != nil).
			Msg("Search surface incomplete, not binding")
		return nil
	}
	c := NewController(ctx, searcher, surface.Results, opts)
	c.overlay = surface.Overlay
	c.navigator = surface.Navigator

	input := surface.Input
	input.OnInput(c.OnInput)
	input.OnEnter(c.OnSubmit)
	surface.Trigger.OnClick(func() {
		c.OnSubmit(input.Value())
	})
	return c
}

// OnInput schedules a search for query after the debounce delay, replacing any
// search that hasn't fired yet.
func (c *Controller) OnInput(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.timerGen++
	gen := c.timerGen
	c.pending = c.scheduler.AfterFunc(c.delay, func() {
		c.fire(gen, query)
	})
}

func (c *Controller) fire(gen uint64, query string) {
	c.mu.Lock()
	if c.closed || gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()
	c.Search(query)
}

// OnSubmit searches immediately. A pending debounced search is left scheduled.
func (c *Controller) OnSubmit(query string) {
	c.Search(query)
}

// Search clears the panel for blank queries, otherwise shows the loading state and
// starts a request with the untrimmed query. Only the newest search may render.
func (c *Controller) Search(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	if strings.TrimSpace(query) == "" {
		c.setStateLocked(State{Kind: StateEmpty})
		c.mu.Unlock()
		return
	}
	c.setStateLocked(State{Kind: StateLoading, Query: query})
	c.wg.Add(1)
	c.mu.Unlock()

	go c.run(seq, query)
}

func (c *Controller) run(seq uint64, query string) {
	defer c.wg.Done()
	log := c.log.With().
		Stringer("request_id", xid.New()).
		Uint64("seq", seq).
		Logger()
	log.Debug().Str("query", query).Msg("Sending search request")

	results, err := c.searcher.Search(log.WithContext(c.ctx), query)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.closed:
		return
	case seq != c.seq:
		log.Debug().Uint64("latest_seq", c.seq).Msg("Discarding stale search response")
	case err != nil:
		log.Err(err).Str("query", query).Msg("Search failed")
		c.setStateLocked(State{Kind: StateFailed, Query: query, Err: err})
	default:
		if results == nil {
			results = []sitesearch.Result{}
		}
		log.Debug().Int("count", len(results)).Msg("Rendering search results")
		c.setStateLocked(State{Kind: StateResults, Query: query, Results: results})
	}
}

func (c *Controller) setStateLocked(state State) {
	c.state = state
	c.panel.Render(state)
}

// Open closes the containing overlay and then navigates to the result.
func (c *Controller) Open(result sitesearch.Result) {
	if c.overlay != nil {
		c.overlay.Close()
	}
	if c.navigator != nil {
		c.navigator.Navigate(result.URL)
	}
}

// State returns the last rendered panel state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether a debounced search is waiting to fire.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Wait blocks until every started request has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close drops the pending timer and cancels outstanding requests. Further calls are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.mu.Unlock()
	c.cancel()
	c.wg.Wait()
}
