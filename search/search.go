// Package search drives one incremental problem-search box: debounced
// keystrokes, a fetch against the backend, reconciliation against the
// problems already selected in the form, and an explicit state machine
// the UI renders from. Responses superseded by a newer keystroke are
// discarded, so a slow early request can never overwrite a fast later
// one's results.
package search

import (
	"context"
	"sync"

	"github.com/programme-lv/console/debounce"
	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/reconcile"
)

type State int

const (
	StateIdle State = iota
	StateSearching
	StateResolved
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateResolved:
		return "resolved"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the search box for rendering.
type Snapshot struct {
	State   State
	Keyword string
	Results []entity.Problem
	Err     error
}

// FetchFunc runs the actual search request.
type FetchFunc func(ctx context.Context, keyword string) ([]entity.Problem, error)

// ProblemSearch owns one search box. Safe for concurrent use: the UI
// loop types into it while timer goroutines resolve fetches.
type ProblemSearch struct {
	mu       sync.Mutex
	snap     Snapshot
	fetch    FetchFunc
	selected *reconcile.Selection
	notify   func(Snapshot)
	sched    *debounce.Scheduler
	ctx      context.Context
}

// New wires a search box. selected may be nil when the box is not part
// of a composition form; notify may be nil when the caller polls
// Snapshot instead.
func New(ctx context.Context, fetch FetchFunc, selected *reconcile.Selection, notify func(Snapshot)) *ProblemSearch {
	ps := &ProblemSearch{
		fetch:    fetch,
		selected: selected,
		notify:   notify,
		ctx:      ctx,
	}
	ps.sched = debounce.NewScheduler(ps.run, ps.clear)
	return ps
}

// Scheduler exposes the underlying debouncer for delay overrides.
func (ps *ProblemSearch) Scheduler() *debounce.Scheduler {
	return ps.sched
}

// Type registers a keystroke: the full current content of the box.
func (ps *ProblemSearch) Type(keyword string) {
	ps.mu.Lock()
	ps.snap.Keyword = keyword
	ps.mu.Unlock()
	ps.sched.Schedule(keyword)
}

// Snapshot returns the current view.
func (ps *ProblemSearch) Snapshot() Snapshot {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.snap
}

// Reconcile re-filters the current results against the selection, used
// after the user picks a result so it disappears from the list without
// a refetch.
func (ps *ProblemSearch) Reconcile() {
	ps.mu.Lock()
	if ps.selected != nil && ps.snap.State == StateResolved {
		ps.snap.Results = reconcile.FilterSelected(ps.snap.Results, ps.selected)
	}
	snap := ps.snap
	ps.mu.Unlock()
	ps.emit(snap)
}

func (ps *ProblemSearch) clear() {
	ps.mu.Lock()
	ps.snap = Snapshot{State: StateIdle, Keyword: ps.snap.Keyword}
	snap := ps.snap
	ps.mu.Unlock()
	ps.emit(snap)
}

func (ps *ProblemSearch) run(keyword string, seq uint64) {
	ps.mu.Lock()
	ps.snap.State = StateSearching
	ps.snap.Err = nil
	snap := ps.snap
	ps.mu.Unlock()
	ps.emit(snap)

	results, err := ps.fetch(ps.ctx, keyword)

	if ps.sched.Stale(seq) {
		// a newer keystroke superseded this request while it was in
		// flight; its answer would be wrong to show
		return
	}

	ps.mu.Lock()
	if err != nil {
		ps.snap.State = StateErrored
		ps.snap.Err = err
		ps.snap.Results = nil
	} else {
		if ps.selected != nil {
			results = reconcile.FilterSelected(results, ps.selected)
		}
		ps.snap.State = StateResolved
		ps.snap.Results = results
	}
	snap = ps.snap
	ps.mu.Unlock()
	ps.emit(snap)
}

func (ps *ProblemSearch) emit(snap Snapshot) {
	if ps.notify != nil {
		ps.notify(snap)
	}
}
