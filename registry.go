package trakt

import (
	"log/slog"
	"sort"
	"sync"
)

// Described is implemented by every *Endpoint.
type Described interface {
	Info() EndpointInfo
}

// Registry is a catalogue of endpoints grouped by service. It is used by tooling
// and fakes; Build and Parse do not need it.
type Registry struct {
	mu       sync.RWMutex
	routes   map[string]*route
	services []string
	logger   *slog.Logger
}

type route struct {
	service  string
	name     string
	endpoint Described
	seq      int
}

func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]*route),
	}
}

// WithLogger sets a custom logger for the registry.
// If not set, slog.Default() will be used.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Service returns a Service namespace.
func (r *Registry) Service(name string) *Service {
	return &Service{
		registry: r,
		name:     name,
	}
}

// Services returns the service names in registration order.
func (r *Registry) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.services...)
}

// Lookup returns the endpoint registered as service.name.
func (r *Registry) Lookup(service, name string) (Described, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.routes[service+"."+name]
	if !ok {
		return nil, false
	}
	return rt.endpoint, true
}

// Entry is a registered endpoint with its service and operation names.
type Entry struct {
	Service string
	Name    string
	Info    EndpointInfo
}

// Key returns "service.name".
func (e Entry) Key() string { return e.Service + "." + e.Name }

// Endpoints lists every registered endpoint, grouped by service in
// registration order and by registration order within a service.
func (r *Registry) Endpoints() []Entry {
	r.mu.RLock()
	order := make(map[string]int, len(r.services))
	for i, s := range r.services {
		order[s] = i
	}
	routes := make([]*route, 0, len(r.routes))
	for _, rt := range r.routes {
		routes = append(routes, rt)
	}
	r.mu.RUnlock()

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].service != routes[j].service {
			return order[routes[i].service] < order[routes[j].service]
		}
		return routes[i].seq < routes[j].seq
	})
	entries := make([]Entry, len(routes))
	for i, rt := range routes {
		entries[i] = Entry{Service: rt.service, Name: rt.name, Info: rt.endpoint.Info()}
	}
	return entries
}

type Service struct {
	registry *Registry
	name     string
}

// Register adds an endpoint under the given operation name.
// If an endpoint is already registered for this service and name, it will be
// replaced and a warning will be logged.
func (s *Service) Register(name string, e Described) *Service {
	key := s.name + "." + name
	r := s.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := len(r.routes)
	if existing, exists := r.routes[key]; exists {
		r.log().Warn("duplicate endpoint registration",
			slog.String("service", s.name),
			slog.String("name", name),
			slog.String("endpoint", e.Info().Metadata.Endpoint))
		seq = existing.seq
	} else if !containsString(r.services, s.name) {
		r.services = append(r.services, s.name)
	}

	r.routes[key] = &route{service: s.name, name: name, endpoint: e, seq: seq}
	return s
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
