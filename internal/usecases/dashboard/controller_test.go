package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somework/landing-api/internal/domain"
)

type fakeRecorder struct {
	mu        sync.Mutex
	outcomes  []string
	discarded int
}

func (f *fakeRecorder) ObserveDashboardLoad(dashboard, outcome string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeRecorder) IncDashboardDiscarded(dashboard string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discarded++
}

// stepSource devolve o resultado configurado para cada range, bloqueando nos gates informados
type stepSource struct {
	mu      sync.Mutex
	gates   map[domain.TimeRange]chan struct{}
	results map[domain.TimeRange]error
}

func newStepSource() *stepSource {
	return &stepSource{
		gates:   map[domain.TimeRange]chan struct{}{},
		results: map[domain.TimeRange]error{},
	}
}

func (s *stepSource) block(rng domain.TimeRange) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan struct{})
	s.gates[rng] = gate
	return gate
}

func (s *stepSource) fail(rng domain.TimeRange, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[rng] = err
}

func (s *stepSource) Fetch(ctx context.Context, rng domain.TimeRange) (string, error) {
	s.mu.Lock()
	gate := s.gates[rng]
	err := s.results[rng]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return "", err
	}
	return string(rng), nil
}

func buildLabel(raw string, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
	return &domain.DashboardSnapshot{
		Range:          rng,
		OverviewTotals: []domain.OverviewTotal{{Label: raw, Value: 1}},
	}, nil
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestController_TransicoesDeEstado(t *testing.T) {
	source := newStepSource()
	gate := source.block(domain.TimeRange7d)

	ctrl := NewController[string]("test", source, buildLabel)
	assert.Equal(t, StatusIdle, ctrl.State().Status)
	assert.Equal(t, domain.TimeRange30d, ctrl.State().Range)

	p := ctrl.Load(domain.TimeRange7d)
	state := ctrl.State()
	assert.Equal(t, StatusLoading, state.Status)
	assert.Equal(t, domain.TimeRange7d, state.Range)
	assert.Nil(t, state.Snapshot)
	assert.False(t, state.Stale)

	close(gate)
	state = p.Wait(waitCtx(t))

	assert.Equal(t, StatusReady, state.Status)
	require.NotNil(t, state.Snapshot)
	assert.Equal(t, domain.TimeRange7d, state.Snapshot.Range)
	assert.False(t, state.Stale)
	assert.Empty(t, state.Error)
	assert.False(t, p.Discarded())
}

func TestController_DescartaResultadoAntigo(t *testing.T) {
	source := newStepSource()
	slow := source.block(domain.TimeRange7d)
	recorder := &fakeRecorder{}

	ctrl := NewController[string]("test", source, buildLabel, WithRecorder(recorder))

	first := ctrl.Load(domain.TimeRange7d)
	second := ctrl.Load(domain.TimeRange30d)

	state := second.Wait(waitCtx(t))
	assert.Equal(t, StatusReady, state.Status)
	assert.Equal(t, domain.TimeRange30d, state.Range)

	close(slow)
	<-first.Done()

	assert.True(t, first.Discarded())
	assert.False(t, second.Discarded())

	state = ctrl.State()
	assert.Equal(t, domain.TimeRange30d, state.Range)
	require.NotNil(t, state.Snapshot)
	assert.Equal(t, "30d", state.Snapshot.OverviewTotals[0].Label)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, 1, recorder.discarded)
	assert.Equal(t, []string{"ready"}, recorder.outcomes)
}

func TestController_SnapshotAnteriorFicaStaleDuranteCarga(t *testing.T) {
	source := newStepSource()
	ctrl := NewController[string]("test", source, buildLabel)

	ready := ctrl.Load(domain.TimeRange7d).Wait(waitCtx(t))
	require.Equal(t, StatusReady, ready.Status)

	gate := source.block(domain.TimeRange90d)
	p := ctrl.Load(domain.TimeRange90d)

	state := ctrl.State()
	assert.Equal(t, StatusLoading, state.Status)
	assert.True(t, state.Stale)
	assert.Same(t, ready.Snapshot, state.Snapshot)

	close(gate)
	state = p.Wait(waitCtx(t))
	assert.False(t, state.Stale)
	assert.Equal(t, domain.TimeRange90d, state.Snapshot.Range)
}

func TestController_CredenciaisAusentes(t *testing.T) {
	t.Run("Sem snapshot anterior", func(t *testing.T) {
		source := newStepSource()
		source.fail(domain.TimeRange30d, Unconfigured(""))

		ctrl := NewController[string]("threads", source, buildLabel)
		state := ctrl.Load(domain.TimeRange30d).Wait(waitCtx(t))

		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, KindUnconfigured, state.ErrorKind)
		assert.Equal(t, "Credentials missing", state.Error)
		assert.Nil(t, state.Snapshot)
	})

	t.Run("Mantém o snapshot pronto anterior", func(t *testing.T) {
		source := newStepSource()
		ctrl := NewController[string]("threads", source, buildLabel)

		ready := ctrl.Load(domain.TimeRange30d).Wait(waitCtx(t))
		require.Equal(t, StatusReady, ready.Status)

		source.fail(domain.TimeRange30d, Unconfigured("Credentials missing"))
		state := ctrl.Refresh().Wait(waitCtx(t))

		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, "Credentials missing", state.Error)
		assert.Same(t, ready.Snapshot, state.Snapshot)
		assert.False(t, state.Stale)
	})
}

func TestController_ClassificacaoDeErros(t *testing.T) {
	tests := []struct {
		name     string
		source   SourceFunc[string]
		build    BuildFunc[string]
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name: "Erro upstream repassa a mensagem",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "", Upstream("Insights Error: Invalid metric")
			},
			build:    buildLabel,
			wantKind: KindUpstream,
			wantMsg:  "Insights Error: Invalid metric",
		},
		{
			name: "Erro sem classificação vira transporte",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "", errors.New("dial tcp: connection refused")
			},
			build:    buildLabel,
			wantKind: KindTransport,
			wantMsg:  "dial tcp: connection refused",
		},
		{
			name: "Resultado vazio",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "", EmptyResult("No data returned from Threads API (Empty Response)")
			},
			build:    buildLabel,
			wantKind: KindEmptyResult,
			wantMsg:  "No data returned from Threads API (Empty Response)",
		},
		{
			name: "Panic no fetch vira transform",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				panic("nil map")
			},
			build:    buildLabel,
			wantKind: KindTransform,
			wantMsg:  "panic: nil map",
		},
		{
			name: "Panic no build vira transform",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "ok", nil
			},
			build: func(raw string, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
				panic("index out of range")
			},
			wantKind: KindTransform,
			wantMsg:  "panic: index out of range",
		},
		{
			name: "Erro no build vira transform",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "ok", nil
			},
			build: func(raw string, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
				return nil, errors.New("invalid series")
			},
			wantKind: KindTransform,
			wantMsg:  "invalid series",
		},
		{
			name: "Build sem snapshot vira transform",
			source: func(ctx context.Context, rng domain.TimeRange) (string, error) {
				return "ok", nil
			},
			build: func(raw string, rng domain.TimeRange) (*domain.DashboardSnapshot, error) {
				return nil, nil
			},
			wantKind: KindTransform,
			wantMsg:  "build returned no snapshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			ctrl := NewController[string]("test", tt.source, tt.build, WithRecorder(recorder))

			state := ctrl.Load(domain.TimeRange7d).Wait(waitCtx(t))

			assert.Equal(t, StatusError, state.Status)
			assert.Equal(t, tt.wantKind, state.ErrorKind)
			assert.Equal(t, tt.wantMsg, state.Error)

			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			assert.Equal(t, []string{string(tt.wantKind)}, recorder.outcomes)
		})
	}
}

func TestController_Timeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	source := SourceFunc[string](func(ctx context.Context, rng domain.TimeRange) (string, error) {
		<-release
		return "late", nil
	})

	ctrl := NewController[string]("test", source, buildLabel, WithTimeout(20*time.Millisecond))
	state := ctrl.Load(domain.TimeRange7d).Wait(waitCtx(t))

	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, KindTransport, state.ErrorKind)
	assert.Equal(t, "timeout: context deadline exceeded", state.Error)
}

func TestController_Ensure(t *testing.T) {
	source := newStepSource()
	ctrl := NewController[string]("test", source, buildLabel, WithDefaultRange(domain.TimeRange7d))

	p := ctrl.Ensure("")
	require.NotNil(t, p)
	state := p.Wait(waitCtx(t))
	assert.Equal(t, domain.TimeRange7d, state.Range)

	assert.Nil(t, ctrl.Ensure(domain.TimeRange7d), "mesmo range já pronto não recarrega")

	gate := source.block(domain.TimeRange90d)
	loading := ctrl.Ensure(domain.TimeRange90d)
	require.NotNil(t, loading)
	assert.Same(t, loading, ctrl.Ensure(domain.TimeRange90d), "carga em andamento é reaproveitada")

	close(gate)
	state = loading.Wait(waitCtx(t))
	assert.Equal(t, domain.TimeRange90d, state.Range)
	assert.Equal(t, StatusReady, state.Status)
}

func TestController_RefreshUsaRangeAtual(t *testing.T) {
	source := newStepSource()
	ctrl := NewController[string]("test", source, buildLabel)

	ctrl.Load(domain.TimeRange365d).Wait(waitCtx(t))
	state := ctrl.Refresh().Wait(waitCtx(t))

	assert.Equal(t, domain.TimeRange365d, state.Range)
	assert.Equal(t, StatusReady, state.Status)
	assert.Equal(t, uint64(2), state.Generation)
}

func TestRegistry(t *testing.T) {
	web := NewController[string]("web", newStepSource(), buildLabel)
	threads := NewController[string]("threads", newStepSource(), buildLabel)

	registry := NewRegistry(web, threads)

	got, ok := registry.Get("web")
	require.True(t, ok)
	assert.Equal(t, "web", got.Name())

	_, ok = registry.Get("unknown")
	assert.False(t, ok)

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "threads", all[0].Name())
	assert.Equal(t, "web", all[1].Name())
}
