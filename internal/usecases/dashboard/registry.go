package dashboard

import (
	"sort"
	"sync"

	"github.com/somework/landing-api/internal/domain"
)

// Dashboard é a visão não genérica de um Controller, usada pelos handlers e pelo scheduler
type Dashboard interface {
	Name() string
	DefaultRange() domain.TimeRange
	State() State
	Load(rng domain.TimeRange) *Pending
	Refresh() *Pending
	Ensure(rng domain.TimeRange) *Pending
}

type Registry struct {
	mu         sync.RWMutex
	dashboards map[string]Dashboard
}

func NewRegistry(dashboards ...Dashboard) *Registry {
	r := &Registry{dashboards: make(map[string]Dashboard)}
	for _, d := range dashboards {
		r.Register(d)
	}
	return r
}

func (r *Registry) Register(d Dashboard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboards[d.Name()] = d
}

func (r *Registry) Get(name string) (Dashboard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dashboards[name]
	return d, ok
}

// All retorna os dashboards ordenados pelo nome
func (r *Registry) All() []Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Dashboard, 0, len(r.dashboards))
	for _, d := range r.dashboards {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}
