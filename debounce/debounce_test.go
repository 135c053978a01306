package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/programme-lv/console/debounce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu       sync.Mutex
	keywords []string
	seqs     []uint64
	clears   int
}

func (r *recorder) search(keyword string, seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keywords = append(r.keywords, keyword)
	r.seqs = append(r.seqs, seq)
}

func (r *recorder) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *recorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.keywords...), r.clears
}

func TestOnlyLastKeystrokeFires(t *testing.T) {
	rec := &recorder{}
	s := debounce.NewScheduler(rec.search, rec.clear)
	s.SetDelay(60 * time.Millisecond)

	s.Schedule("a")
	time.Sleep(10 * time.Millisecond)
	s.Schedule("ab")
	time.Sleep(10 * time.Millisecond)
	s.Schedule("abc")

	time.Sleep(150 * time.Millisecond)

	keywords, clears := rec.snapshot()
	require.Equal(t, []string{"abc"}, keywords)
	assert.Equal(t, 0, clears)
}

func TestEmptyKeywordClearsImmediately(t *testing.T) {
	rec := &recorder{}
	s := debounce.NewScheduler(rec.search, rec.clear)
	s.SetDelay(40 * time.Millisecond)

	s.Schedule("abc")
	s.Schedule("   ")

	time.Sleep(100 * time.Millisecond)

	keywords, clears := rec.snapshot()
	assert.Empty(t, keywords, "pending search must be cancelled")
	assert.Equal(t, 1, clears)
}

func TestStaleSequenceDetection(t *testing.T) {
	rec := &recorder{}
	s := debounce.NewScheduler(rec.search, rec.clear)
	s.SetDelay(20 * time.Millisecond)

	s.Schedule("first")
	time.Sleep(60 * time.Millisecond)

	rec.mu.Lock()
	require.Len(t, rec.seqs, 1)
	firstSeq := rec.seqs[0]
	rec.mu.Unlock()

	assert.False(t, s.Stale(firstSeq), "latest fired search is not stale")

	s.Schedule("second")
	assert.True(t, s.Stale(firstSeq),
		"a newer keystroke makes the in-flight response stale")
}

func TestCancelStopsPendingTimer(t *testing.T) {
	rec := &recorder{}
	s := debounce.NewScheduler(rec.search, rec.clear)
	s.SetDelay(30 * time.Millisecond)

	s.Schedule("abc")
	s.Cancel()

	time.Sleep(80 * time.Millisecond)

	keywords, clears := rec.snapshot()
	assert.Empty(t, keywords)
	assert.Equal(t, 0, clears, "Cancel does not clear results")
}

func TestRescheduleAfterFire(t *testing.T) {
	rec := &recorder{}
	s := debounce.NewScheduler(rec.search, rec.clear)
	s.SetDelay(20 * time.Millisecond)

	s.Schedule("one")
	time.Sleep(60 * time.Millisecond)
	s.Schedule("two")
	time.Sleep(60 * time.Millisecond)

	keywords, _ := rec.snapshot()
	assert.Equal(t, []string{"one", "two"}, keywords)
}
