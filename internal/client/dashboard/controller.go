package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/logging"
)

// ErrNotStarted is returned by mutations issued while no identity is active.
var ErrNotStarted = errors.New("dashboard not started")

// TaskRepository is the remote source of truth for tasks.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, ownerID string, text string) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// AmbientGateway provides the cosmetic data. Every call is best effort.
type AmbientGateway interface {
	BackgroundImage(ctx context.Context) (string, error)
	Geolocation(ctx context.Context) (*models.Location, error)
	Weather(ctx context.Context, loc models.Location) (*models.Weather, error)
}

// SessionStore holds the current identity.
type SessionStore interface {
	Subscribe(fn func(*models.Identity)) (unsubscribe func())
	SignOut(ctx context.Context) error
}

type Options struct {
	FallbackBackground string
	ClockInterval      time.Duration
	CallTimeout        time.Duration // zero means no timeout
	TimeFormat         string
	DateFormat         string
	Now                func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ClockInterval <= 0 {
		o.ClockInterval = time.Second
	}
	if o.TimeFormat == "" {
		o.TimeFormat = "15:04:05"
	}
	if o.DateFormat == "" {
		o.DateFormat = "Monday, January 2, 2006"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Controller owns the dashboard view state of one signed-in identity at a
// time.
//
// Each Start opens a new generation with its own context. Every write into
// the view state names the generation it belongs to and is dropped when that
// generation is no longer current, so responses that arrive after Teardown
// or after a switch to another identity never show up.
type Controller struct {
	tasks   TaskRepository
	ambient AmbientGateway
	session SessionStore
	logger  logging.Logger
	opts    Options

	mu      sync.Mutex
	gen     uint64
	active  bool
	genCtx  context.Context
	cancel  context.CancelFunc
	state   Snapshot
	subs    map[int]func(Snapshot)
	nextSub int

	notifyMu sync.Mutex
	wg       sync.WaitGroup
}

func NewController(tasks TaskRepository, ambient AmbientGateway, session SessionStore, logger logging.Logger, opts Options) *Controller {
	return &Controller{
		tasks:   tasks,
		ambient: ambient,
		session: session,
		logger:  logger,
		opts:    opts.withDefaults(),
		subs:    make(map[int]func(Snapshot)),
		state:   Snapshot{Status: StatusLoading},
	}
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers fn to receive the view state after every change. fn
// is called once right away with the current state, so a subscriber never
// misses a change that lands while it is being registered. fn runs on the
// goroutine that made the change and must not block.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.notifyMu.Lock()
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	snap := c.state.clone()
	c.mu.Unlock()

	fn(snap)
	c.notifyMu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	snap := c.state.clone()
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// apply runs fn against the view state if gen is still the live generation.
func (c *Controller) apply(gen uint64, fn func(s *Snapshot)) bool {
	c.mu.Lock()
	if !c.active || c.gen != gen {
		c.mu.Unlock()
		return false
	}
	fn(&c.state)
	c.mu.Unlock()

	c.notify()
	return true
}

// current returns the live generation and its identity.
func (c *Controller) current() (uint64, models.Identity, context.Context, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active || c.state.Identity == nil {
		return 0, models.Identity{}, nil, false
	}
	return c.gen, *c.state.Identity, c.genCtx, true
}

// callContext derives the context of one outgoing call: it ends with the
// caller's ctx, with the generation, or after CallTimeout.
func (c *Controller) callContext(ctx, genCtx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(genCtx, cancel)

	if c.opts.CallTimeout <= 0 {
		return ctx, func() { stop(); cancel() }
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, c.opts.CallTimeout)
	return ctx, func() { cancelTimeout(); stop(); cancel() }
}

func (c *Controller) goGen(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

// Start begins the dashboard of identity: the task fetch, the background
// photo, the weather and the clock are launched without waiting on each
// other. Starting again with the identity already shown does nothing.
func (c *Controller) Start(ctx context.Context, identity models.Identity) {
	now := c.opts.Now()

	c.mu.Lock()
	if c.active && c.state.Identity != nil && c.state.Identity.ID == identity.ID {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	c.genCtx, c.cancel = context.WithCancel(context.WithoutCancel(ctx))
	genCtx := c.genCtx
	c.active = true
	c.state = Snapshot{
		Status:   StatusLoading,
		Identity: &identity,
		Clock:    now.Format(c.opts.TimeFormat),
		Date:     now.Format(c.opts.DateFormat),
	}
	c.mu.Unlock()

	c.logger.Info(ctx, "dashboard started", "user_id", identity.ID)
	c.notify()

	c.goGen(func() { c.refetch(genCtx, gen, identity.ID) })
	c.goGen(func() { c.loadBackground(genCtx, gen) })
	c.goGen(func() { c.loadWeather(genCtx, gen) })
	c.goGen(func() { c.runClock(genCtx, gen) })
}

// refetch replaces the task list wholesale with a fresh repository read.
// A failed read shows an empty list.
func (c *Controller) refetch(genCtx context.Context, gen uint64, ownerID string) {
	ctx, cancel := c.callContext(genCtx, genCtx)
	defer cancel()

	fetched, err := c.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		c.logger.Error(ctx, "failed to fetch tasks", "user_id", ownerID, "error", err)
		fetched = nil
	}

	tasks := make([]models.Task, 0, len(fetched))
	for _, t := range fetched {
		if t == nil || t.OwnerID != ownerID {
			continue
		}
		tasks = append(tasks, *t)
	}

	c.apply(gen, func(s *Snapshot) {
		s.Tasks = tasks
		s.Status = StatusReady
	})
}

func (c *Controller) loadBackground(genCtx context.Context, gen uint64) {
	ctx, cancel := c.callContext(genCtx, genCtx)
	defer cancel()

	url, err := c.ambient.BackgroundImage(ctx)
	if err != nil || url == "" {
		c.logger.Debug(ctx, "background image unavailable", "error", err)
		url = c.opts.FallbackBackground
	}

	c.apply(gen, func(s *Snapshot) { s.Background = url })
}

func (c *Controller) loadWeather(genCtx context.Context, gen uint64) {
	ctx, cancel := c.callContext(genCtx, genCtx)
	defer cancel()

	loc, err := c.ambient.Geolocation(ctx)
	if err != nil || loc == nil {
		c.logger.Debug(ctx, "geolocation unavailable", "error", err)
		return
	}

	w, err := c.ambient.Weather(ctx, *loc)
	if err != nil || w == nil {
		c.logger.Debug(ctx, "weather unavailable", "error", err)
		return
	}

	reading := *w
	c.apply(gen, func(s *Snapshot) { s.Weather = &reading })
}

func (c *Controller) runClock(genCtx context.Context, gen uint64) {
	ticker := time.NewTicker(c.opts.ClockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-genCtx.Done():
			return
		case <-ticker.C:
			now := c.opts.Now()
			if !c.apply(gen, func(s *Snapshot) {
				s.Clock = now.Format(c.opts.TimeFormat)
				s.Date = now.Format(c.opts.DateFormat)
			}) {
				return
			}
		}
	}
}

// SetPending stores the not yet submitted text of a new task.
func (c *Controller) SetPending(text string) {
	c.mu.Lock()
	gen, active := c.gen, c.active
	c.mu.Unlock()
	if !active {
		return
	}
	c.apply(gen, func(s *Snapshot) { s.Pending = text })
}

// Add creates a task for the current identity and then reloads the list.
// Blank text is ignored. On failure the pending text is kept so the user can
// submit it again.
func (c *Controller) Add(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	gen, identity, genCtx, ok := c.current()
	if !ok {
		return ErrNotStarted
	}

	callCtx, cancel := c.callContext(ctx, genCtx)
	_, err := c.tasks.Create(callCtx, identity.ID, text)
	cancel()
	if err != nil {
		c.logger.Error(ctx, "failed to create task", "user_id", identity.ID, "error", err)
		return err
	}

	c.apply(gen, func(s *Snapshot) { s.Pending = "" })
	c.refetch(genCtx, gen, identity.ID)
	return nil
}

// Delete removes a task and reloads the list, whether or not the removal
// succeeded.
func (c *Controller) Delete(ctx context.Context, taskID string) {
	gen, identity, genCtx, ok := c.current()
	if !ok {
		return
	}

	callCtx, cancel := c.callContext(ctx, genCtx)
	err := c.tasks.Delete(callCtx, taskID)
	cancel()
	if err != nil {
		c.logger.Error(ctx, "failed to delete task", "task_id", taskID, "error", err)
	}

	c.refetch(genCtx, gen, identity.ID)
}

// SetCompleted updates the completion flag of a task and reloads the list,
// whether or not the update succeeded.
func (c *Controller) SetCompleted(ctx context.Context, taskID string, completed bool) error {
	gen, identity, genCtx, ok := c.current()
	if !ok {
		return ErrNotStarted
	}

	callCtx, cancel := c.callContext(ctx, genCtx)
	err := c.tasks.SetCompleted(callCtx, taskID, completed)
	cancel()
	if err != nil {
		c.logger.Error(ctx, "failed to update task", "task_id", taskID, "error", err)
	}

	c.refetch(genCtx, gen, identity.ID)
	return err
}

// SignOut ends the session and tears the dashboard down. Navigation back to
// sign-in follows from the session store's notification.
func (c *Controller) SignOut(ctx context.Context) {
	if err := c.session.SignOut(ctx); err != nil {
		c.logger.Error(ctx, "sign out failed", "error", err)
	}
	c.Teardown()
}

// Teardown stops the clock and in-flight work of the current generation and
// clears the view state. It is safe to call repeatedly.
func (c *Controller) Teardown() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.genCtx = nil
	c.state = Snapshot{Status: StatusLoading}
	c.mu.Unlock()

	c.notify()
}

// Wait blocks until every background fetch and the clock have returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}
