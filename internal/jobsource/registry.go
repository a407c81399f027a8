package jobsource

import (
	"strings"

	"go.uber.org/zap"

	"jobhunter/internal/config"
)

// Registry holds every configured board adapter in canonical order.
type Registry struct {
	adapters []Adapter
	byName   map[string]Adapter
	logger   *zap.Logger
}

func NewRegistry(cfg config.SourcesConfig, logger *zap.Logger) *Registry {
	adapters := []Adapter{
		NewRemoteOK(logger),
		NewRemotive(logger),
		NewArbeitnow(logger),
		NewHimalayas(logger),
		NewJobicy(logger),
		NewJSearch(cfg.JSearchAPIKey, logger),
		NewAdzuna(cfg.AdzunaAppID, cfg.AdzunaAppKey, logger),
	}

	byName := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}

	return &Registry{adapters: adapters, byName: byName, logger: logger}
}

// All returns every adapter in canonical order.
func (r *Registry) All() []Adapter {
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

// Resolve maps source names to adapters, preserving canonical order. Unknown
// names are logged and skipped. An empty name list resolves to all adapters.
func (r *Registry) Resolve(names []string) []Adapter {
	if len(names) == 0 {
		return r.All()
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := r.byName[name]; !ok {
			r.logger.Warn("unknown job source requested", zap.String("source", name))
			continue
		}
		wanted[name] = true
	}

	out := make([]Adapter, 0, len(wanted))
	for _, a := range r.adapters {
		if wanted[a.Name()] {
			out = append(out, a)
		}
	}
	return out
}
