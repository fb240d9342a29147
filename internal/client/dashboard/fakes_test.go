package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/logging"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

var (
	ann = models.Identity{ID: "u-ann", Email: "ann@example.com"}
	bob = models.Identity{ID: "u-bob", Email: "bob@example.com"}
)

const fallbackBG = "/images/fallback-bg.jpg"

// fakeTasks is an in-memory task repository. A channel in block holds back
// ListByOwner for that owner until it is closed.
type fakeTasks struct {
	mu      sync.Mutex
	byOwner map[string][]*models.Task
	block   map[string]chan struct{}
	nextID  int

	listErr   error
	createErr error
	deleteErr error
	doneErr   error

	listCalls   int
	createCalls int
	deleteCalls int
	doneCalls   int
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{
		byOwner: make(map[string][]*models.Task),
		block:   make(map[string]chan struct{}),
	}
}

func (f *fakeTasks) seed(owner string, texts ...string) []models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	for _, text := range texts {
		f.nextID++
		t := &models.Task{ID: fmt.Sprintf("t%d", f.nextID), OwnerID: owner, Text: text}
		f.byOwner[owner] = append(f.byOwner[owner], t)
		out = append(out, *t)
	}
	return out
}

func (f *fakeTasks) hold(owner string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.block[owner] = ch
	return ch
}

func (f *fakeTasks) calls() (list, create, del, done int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls, f.deleteCalls, f.doneCalls
}

func (f *fakeTasks) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	f.mu.Lock()
	f.listCalls++
	ch := f.block[ownerID]
	err := f.listErr
	out := make([]*models.Task, 0, len(f.byOwner[ownerID]))
	for _, t := range f.byOwner[ownerID] {
		c := *t
		out = append(out, &c)
	}
	f.mu.Unlock()

	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeTasks) Create(_ context.Context, ownerID string, text string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	t := &models.Task{ID: fmt.Sprintf("t%d", f.nextID), OwnerID: ownerID, Text: text, CreatedAt: time.Now()}
	f.byOwner[ownerID] = append(f.byOwner[ownerID], t)
	c := *t
	return &c, nil
}

func (f *fakeTasks) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for owner, tasks := range f.byOwner {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		f.byOwner[owner] = kept
	}
	return nil
}

func (f *fakeTasks) SetCompleted(_ context.Context, id string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doneCalls++
	if f.doneErr != nil {
		return f.doneErr
	}
	for _, tasks := range f.byOwner {
		for _, t := range tasks {
			if t.ID == id {
				t.Completed = completed
			}
		}
	}
	return nil
}

type fakeAmbient struct {
	bgURL      string
	bgErr      error
	loc        *models.Location
	geoErr     error
	weather    *models.Weather
	weatherErr error

	mu           sync.Mutex
	weatherCalls int
}

func (f *fakeAmbient) BackgroundImage(context.Context) (string, error) {
	return f.bgURL, f.bgErr
}

func (f *fakeAmbient) Geolocation(context.Context) (*models.Location, error) {
	return f.loc, f.geoErr
}

func (f *fakeAmbient) Weather(context.Context, models.Location) (*models.Weather, error) {
	f.mu.Lock()
	f.weatherCalls++
	f.mu.Unlock()
	return f.weather, f.weatherErr
}

// fakeSession is a session store driven by the test through emit.
type fakeSession struct {
	mu         sync.Mutex
	current    *models.Identity
	subs       map[int]func(*models.Identity)
	next       int
	signOutErr error
	signOuts   int
}

func newFakeSession(current *models.Identity) *fakeSession {
	return &fakeSession{current: current, subs: make(map[int]func(*models.Identity))}
}

func (f *fakeSession) Subscribe(fn func(*models.Identity)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = fn
	current := f.current
	f.mu.Unlock()

	fn(current)
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fakeSession) emit(identity *models.Identity) {
	f.mu.Lock()
	f.current = identity
	subs := make([]func(*models.Identity), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

func (f *fakeSession) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *fakeSession) SignOut(context.Context) error {
	f.mu.Lock()
	f.signOuts++
	err := f.signOutErr
	f.mu.Unlock()

	f.emit(nil)
	return err
}

type harness struct {
	tasks   *fakeTasks
	ambient *fakeAmbient
	session *fakeSession
	ctrl    *Controller
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	if opts.FallbackBackground == "" {
		opts.FallbackBackground = fallbackBG
	}
	if opts.ClockInterval == 0 {
		opts.ClockInterval = time.Hour
	}
	h := &harness{
		tasks:   newFakeTasks(),
		ambient: &fakeAmbient{bgURL: "https://img/1.jpg", geoErr: errBoom},
		session: newFakeSession(nil),
	}
	h.ctrl = NewController(h.tasks, h.ambient, h.session, logging.Nop{}, opts)
	t.Cleanup(func() {
		h.ctrl.Teardown()
		h.ctrl.Wait()
	})
	return h
}

func waitReady(t *testing.T, c *Controller) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Status == StatusReady
	}, time.Second, time.Millisecond)
	return c.Snapshot()
}

// waitSettled waits for the task list and the background photo. The
// default harness has no weather and a clock that never ticks.
func waitSettled(t *testing.T, c *Controller) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		s := c.Snapshot()
		return s.Status == StatusReady && s.Background != ""
	}, time.Second, time.Millisecond)
	return c.Snapshot()
}

func texts(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}
