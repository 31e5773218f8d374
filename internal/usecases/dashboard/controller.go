package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/pkg/log"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

const DefaultLoadTimeout = 20 * time.Second

// Source busca os dados brutos de um dashboard para o range informado
type Source[T any] interface {
	Fetch(ctx context.Context, rng domain.TimeRange) (T, error)
}

type SourceFunc[T any] func(ctx context.Context, rng domain.TimeRange) (T, error)

func (f SourceFunc[T]) Fetch(ctx context.Context, rng domain.TimeRange) (T, error) {
	return f(ctx, rng)
}

// BuildFunc transforma os dados brutos no snapshot publicado
type BuildFunc[T any] func(raw T, rng domain.TimeRange) (*domain.DashboardSnapshot, error)

// Recorder recebe os resultados de cada carga (implementado por pkg/metrics)
type Recorder interface {
	ObserveDashboardLoad(dashboard, outcome string, duration time.Duration)
	IncDashboardDiscarded(dashboard string)
}

// State é o que a camada HTTP enxerga. Snapshot é o último resultado pronto,
// marcado como Stale enquanto uma nova carga está em andamento.
type State struct {
	Dashboard  string                    `json:"dashboard"`
	Status     Status                    `json:"status"`
	Range      domain.TimeRange          `json:"range"`
	Snapshot   *domain.DashboardSnapshot `json:"snapshot,omitempty"`
	Stale      bool                      `json:"stale"`
	ErrorKind  ErrorKind                 `json:"error_kind,omitempty"`
	Error      string                    `json:"error,omitempty"`
	UpdatedAt  time.Time                 `json:"updated_at"`
	Generation uint64                    `json:"-"`
}

// Pending representa uma carga disparada por Load/Refresh
type Pending struct {
	done       chan struct{}
	generation uint64
	discarded  bool
	state      func() State
}

// Wait bloqueia até a carga terminar ou o ctx expirar e retorna o estado atual do dashboard
func (p *Pending) Wait(ctx context.Context) State {
	select {
	case <-p.done:
	case <-ctx.Done():
	}
	return p.state()
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Discarded indica que o resultado foi descartado porque uma carga mais nova começou depois
func (p *Pending) Discarded() bool {
	select {
	case <-p.done:
		return p.discarded
	default:
		return false
	}
}

type Option func(*options)

type options struct {
	timeout      time.Duration
	defaultRange domain.TimeRange
	recorder     Recorder
	now          func() time.Time
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithDefaultRange(rng domain.TimeRange) Option {
	return func(o *options) {
		o.defaultRange = rng
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Controller controla o ciclo fetch → build → publish de um dashboard.
// Cada carga recebe um número de geração e só a mais recente pode publicar.
type Controller[T any] struct {
	name   string
	source Source[T]
	build  BuildFunc[T]
	opts   options

	mu         sync.Mutex
	state      State
	lastReady  *domain.DashboardSnapshot
	generation uint64
	inFlight   *Pending
}

func NewController[T any](name string, source Source[T], build BuildFunc[T], opts ...Option) *Controller[T] {
	o := options{
		timeout:      DefaultLoadTimeout,
		defaultRange: domain.TimeRange30d,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[T]{
		name:   name,
		source: source,
		build:  build,
		opts:   o,
		state: State{
			Dashboard: name,
			Status:    StatusIdle,
			Range:     o.defaultRange,
		},
	}
}

func (c *Controller[T]) Name() string {
	return c.name
}

func (c *Controller[T]) DefaultRange() domain.TimeRange {
	return c.opts.defaultRange
}

// State retorna uma cópia do estado atual
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load dispara uma carga assíncrona para o range. Se outra carga estiver em
// andamento ela continua, mas o resultado será descartado.
func (c *Controller[T]) Load(rng domain.TimeRange) *Pending {
	if rng == "" {
		rng = c.opts.defaultRange
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation

	c.state = State{
		Dashboard:  c.name,
		Status:     StatusLoading,
		Range:      rng,
		Snapshot:   c.lastReady,
		Stale:      c.lastReady != nil,
		UpdatedAt:  c.opts.now(),
		Generation: gen,
	}

	p := &Pending{
		done:       make(chan struct{}),
		generation: gen,
		state:      c.State,
	}
	c.inFlight = p
	c.mu.Unlock()

	go c.run(gen, rng, p)

	return p
}

// Refresh recarrega o range selecionado
func (c *Controller[T]) Refresh() *Pending {
	return c.Load(c.State().Range)
}

// Ensure só dispara uma carga quando o dashboard nunca carregou ou quando o range mudou.
// Com uma carga do mesmo range em andamento, retorna a carga existente.
func (c *Controller[T]) Ensure(rng domain.TimeRange) *Pending {
	if rng == "" {
		rng = c.opts.defaultRange
	}

	c.mu.Lock()
	state := c.state
	inFlight := c.inFlight
	c.mu.Unlock()

	switch {
	case state.Status == StatusIdle || state.Range != rng:
		return c.Load(rng)
	case state.Status == StatusLoading && inFlight != nil:
		return inFlight
	default:
		return nil
	}
}

func (c *Controller[T]) run(gen uint64, rng domain.TimeRange, p *Pending) {
	started := c.opts.now()

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.timeout)
	defer cancel()

	snapshot, err := c.fetchAndBuild(ctx, rng)
	c.settle(gen, rng, snapshot, Classify(err), started, p)
}

type fetchResult[T any] struct {
	raw T
	err error
}

func (c *Controller[T]) fetchAndBuild(ctx context.Context, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
	results := make(chan fetchResult[T], 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- fetchResult[T]{err: Transform(fmt.Errorf("panic: %v", r))}
			}
		}()

		raw, err := c.source.Fetch(ctx, rng)
		results <- fetchResult[T]{raw: raw, err: err}
	}()

	var res fetchResult[T]
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if res.err != nil {
		return nil, res.err
	}

	return c.safeBuild(res.raw, rng)
}

func (c *Controller[T]) safeBuild(raw T, rng domain.TimeRange) (snapshot *domain.DashboardSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			snapshot = nil
			err = Transform(fmt.Errorf("panic: %v", r))
		}
	}()

	snapshot, err = c.build(raw, rng)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return nil, loadErr
		}
		return nil, Transform(err)
	}

	if snapshot == nil {
		return nil, Transform(fmt.Errorf("build returned no snapshot"))
	}

	return snapshot, nil
}

func (c *Controller[T]) settle(gen uint64, rng domain.TimeRange, snapshot *domain.DashboardSnapshot, loadErr *LoadError, started time.Time, p *Pending) {
	defer close(p.done)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		p.discarded = true
		if c.opts.recorder != nil {
			c.opts.recorder.IncDashboardDiscarded(c.name)
		}
		log.L.WithFields(log.Fields{
			"dashboard":  c.name,
			"range":      rng,
			"generation": gen,
			"current":    c.generation,
		}).Debug("dashboard: discarding stale result")
		return
	}

	c.inFlight = nil
	now := c.opts.now()

	outcome := string(StatusReady)
	if loadErr != nil {
		outcome = string(loadErr.Kind)

		c.state = State{
			Dashboard:  c.name,
			Status:     StatusError,
			Range:      rng,
			Snapshot:   c.lastReady,
			ErrorKind:  loadErr.Kind,
			Error:      loadErr.Message,
			UpdatedAt:  now,
			Generation: gen,
		}

		log.L.WithFields(log.Fields{
			"dashboard": c.name,
			"range":     rng,
			"kind":      loadErr.Kind,
			"error":     loadErr.Message,
		}).Warn("dashboard: load failed")
	} else {
		c.lastReady = snapshot
		c.state = State{
			Dashboard:  c.name,
			Status:     StatusReady,
			Range:      rng,
			Snapshot:   snapshot,
			UpdatedAt:  now,
			Generation: gen,
		}
	}

	if c.opts.recorder != nil {
		c.opts.recorder.ObserveDashboardLoad(c.name, outcome, now.Sub(started))
	}
}
