package feed

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// State of the load-more state machine.
type State int

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// DefaultLoadDelay is the simulated latency of a load-more.
const DefaultLoadDelay = 600 * time.Millisecond

// Pager keeps the filter and visible count of one feed view and advances it
// one page at a time. It re-composes from its source on every read, so it
// never holds a copy of the content that could go stale.
type Pager struct {
	src      Source
	composer Composer
	pageSize int
	delay    time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	filter  Filter
	visible int
	state   State
	gen     uint64 // bumped on filter change; stale loads do not advance
	timer   *time.Timer
	done    chan struct{}
}

type PagerOption func(*Pager)

func WithPageSize(n int) PagerOption {
	return func(p *Pager) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

func WithDelay(d time.Duration) PagerOption {
	return func(p *Pager) {
		if d >= 0 {
			p.delay = d
		}
	}
}

func WithPagerLogger(l *zap.Logger) PagerOption {
	return func(p *Pager) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPager starts on FilterAll with one page visible.
func NewPager(src Source, c Composer, opts ...PagerOption) *Pager {
	p := &Pager{
		src:      src,
		composer: c,
		pageSize: PageSize,
		delay:    DefaultLoadDelay,
		log:      zap.NewNop(),
		filter:   FilterAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.visible = p.pageSize
	return p
}

// Page is what a view renders.
type Page struct {
	Filter  Filter
	Items   []Item
	Visible int
	Total   int
	HasMore bool
	State   State
}

func (p *Pager) Page() Page {
	p.mu.Lock()
	filter, visible, state := p.filter, p.visible, p.state
	p.mu.Unlock()

	full := p.composer.Compose(filter, Snapshot(p.src))
	shown, more := VisibleSlice(full, visible)
	return Page{
		Filter:  filter,
		Items:   shown,
		Visible: visible,
		Total:   len(full),
		HasMore: more,
		State:   state,
	}
}

func (p *Pager) Filter() Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetFilter switches the filter and resets the view to one page. A load in
// flight is dropped without advancing. Selecting the current filter again
// changes nothing.
func (p *Pager) SetFilter(f Filter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f == p.filter {
		return
	}
	p.filter = f
	p.visible = p.pageSize
	p.gen++
	if p.state == Loading && p.timer.Stop() {
		p.finish()
	}
	p.log.Debug("feed filter set", zap.String("filter", string(f)))
}

// LoadMore starts advancing the view by one page. It returns a channel that
// is closed once the advance has been applied. It does nothing and returns
// false while a load is pending or when everything is already visible.
func (p *Pager) LoadMore() (<-chan struct{}, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Loading {
		return nil, false
	}
	total := len(p.composer.Compose(p.filter, Snapshot(p.src)))
	if p.visible >= total {
		return nil, false
	}

	p.state = Loading
	done := make(chan struct{})
	p.done = done
	gen := p.gen
	p.timer = time.AfterFunc(p.delay, func() { p.resolve(gen) })

	p.log.Debug("feed load started",
		zap.String("filter", string(p.filter)),
		zap.Int("visible", p.visible),
		zap.Int("total", total),
	)
	return done, true
}

func (p *Pager) resolve(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Loading {
		return
	}
	if gen == p.gen {
		total := len(p.composer.Compose(p.filter, Snapshot(p.src)))
		if next := min(p.visible+p.pageSize, total); next > p.visible {
			p.visible = next
		}
	}
	p.log.Debug("feed load resolved", zap.Int("visible", p.visible), zap.Bool("stale", gen != p.gen))
	p.finish()
}

// finish must be called with p.mu held.
func (p *Pager) finish() {
	p.state = Idle
	p.timer = nil
	if p.done != nil {
		close(p.done)
		p.done = nil
	}
}

// Close cancels a pending load. The pager stays usable.
func (p *Pager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Loading && p.timer.Stop() {
		p.finish()
	}
}
