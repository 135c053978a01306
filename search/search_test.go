package search_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/reconcile"
	"github.com/programme-lv/console/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSearchResolves(t *testing.T) {
	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		return []entity.Problem{{ID: 1, DisplayID: "A", Title: keyword}}, nil
	}
	ps := search.New(context.Background(), fetch, nil, nil)
	ps.Scheduler().SetDelay(10 * time.Millisecond)

	ps.Type("two sum")

	waitFor(t, func() bool { return ps.Snapshot().State == search.StateResolved })
	snap := ps.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "two sum", snap.Results[0].Title)
}

func TestSearchFiltersSelected(t *testing.T) {
	sel := reconcile.NewSelection()
	require.NoError(t, sel.Add(entity.Problem{ID: 1, DisplayID: "A"}))

	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		return []entity.Problem{
			{ID: 1, DisplayID: "A"},
			{ID: 2, DisplayID: "B"},
		}, nil
	}
	ps := search.New(context.Background(), fetch, sel, nil)
	ps.Scheduler().SetDelay(10 * time.Millisecond)

	ps.Type("x")

	waitFor(t, func() bool { return ps.Snapshot().State == search.StateResolved })
	snap := ps.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, 2, snap.Results[0].ID, "already selected problem is filtered out")
}

func TestSearchErrored(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		return nil, boom
	}
	ps := search.New(context.Background(), fetch, nil, nil)
	ps.Scheduler().SetDelay(10 * time.Millisecond)

	ps.Type("x")

	waitFor(t, func() bool { return ps.Snapshot().State == search.StateErrored })
	assert.ErrorIs(t, ps.Snapshot().Err, boom)
}

func TestEmptyKeywordGoesIdle(t *testing.T) {
	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		return []entity.Problem{{ID: 1}}, nil
	}
	ps := search.New(context.Background(), fetch, nil, nil)
	ps.Scheduler().SetDelay(10 * time.Millisecond)

	ps.Type("x")
	waitFor(t, func() bool { return ps.Snapshot().State == search.StateResolved })

	ps.Type("  ")
	snap := ps.Snapshot()
	assert.Equal(t, search.StateIdle, snap.State)
	assert.Empty(t, snap.Results, "results clear immediately, no network call")
}

func TestStaleResponseDiscarded(t *testing.T) {
	var mu sync.Mutex
	release := map[string]chan struct{}{
		"slow": make(chan struct{}),
		"fast": make(chan struct{}),
	}

	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		mu.Lock()
		ch := release[keyword]
		mu.Unlock()
		<-ch
		return []entity.Problem{{ID: 1, Title: keyword}}, nil
	}
	ps := search.New(context.Background(), fetch, nil, nil)
	ps.Scheduler().SetDelay(5 * time.Millisecond)

	ps.Type("slow")
	time.Sleep(30 * time.Millisecond) // let the slow request take off

	ps.Type("fast")
	time.Sleep(30 * time.Millisecond)
	close(release["fast"])

	waitFor(t, func() bool { return ps.Snapshot().State == search.StateResolved })
	assert.Equal(t, "fast", ps.Snapshot().Results[0].Title)

	// now the slow response lands; it must be dropped
	close(release["slow"])
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "fast", ps.Snapshot().Results[0].Title,
		"a stale response must not overwrite newer results")
}

func TestReconcileAfterPick(t *testing.T) {
	sel := reconcile.NewSelection()
	fetch := func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		return []entity.Problem{
			{ID: 1, DisplayID: "A"},
			{ID: 2, DisplayID: "B"},
		}, nil
	}
	ps := search.New(context.Background(), fetch, sel, nil)
	ps.Scheduler().SetDelay(10 * time.Millisecond)

	ps.Type("x")
	waitFor(t, func() bool { return ps.Snapshot().State == search.StateResolved })
	require.Len(t, ps.Snapshot().Results, 2)

	require.NoError(t, sel.Add(entity.Problem{ID: 1, DisplayID: "A"}))
	ps.Reconcile()

	snap := ps.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, 2, snap.Results[0].ID)
}
