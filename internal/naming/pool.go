// Package naming holds the static candidate vocabulary and the selection
// logic built on top of it.
package naming

import "strings"

var defaultNames = []string{
	"Aurora", "Luna", "Stella", "Alba", "Brezza", "Celeste", "Dafne", "Elettra", "Fenice", "Gaia",
	"Iris", "Ginevra", "Lucia", "Marina", "Nives", "Ondina", "Perla", "Rosa", "Serena", "Tea",
	"Viola", "Zefira", "Ambra", "Bianca", "Camelia", "Diana", "Edera", "Flora", "Giada", "Ilaria",
	"Lavinia", "Melissa", "Nora", "Olivia", "Petra", "Rebecca", "Sole", "Vittoria", "Azzurra", "Beatrice",
	"Chiara", "Delia", "Emma", "Fiamma", "Greta", "Irene", "Livia", "Mirta", "Nadia", "Ofelia",
	"Priscilla", "Regina", "Sofia", "Tamara", "Ursula", "Vanessa", "Zoe", "Arianna", "Cleo", "Estella",
}

var defaultFallback = map[string][]string{
	"PE 25": {"Aurora", "Luna", "Stella"},
	"AI 25": {"Brezza", "Nives", "Ambra"},
	"PE 24": {"Marina", "Sole", "Perla"},
	"AI 24": {"Edera", "Fiamma", "Greta"},
}

// Pool is the immutable candidate vocabulary plus the per-season fallback
// table. It is built once at startup and shared read-only between requests.
type Pool struct {
	names    []string
	fallback map[string][]string
}

func NewPool(names []string, fallback map[string][]string) *Pool {
	p := &Pool{
		names:    append([]string(nil), names...),
		fallback: make(map[string][]string, len(fallback)),
	}
	for season, list := range fallback {
		p.fallback[season] = append([]string(nil), list...)
	}
	return p
}

func DefaultPool() *Pool {
	return NewPool(defaultNames, defaultFallback)
}

func (p *Pool) Len() int {
	return len(p.names)
}

// Names returns a copy of the candidate list in its curated order.
func (p *Pool) Names() []string {
	return append([]string(nil), p.names...)
}

// Fallback returns the static names for season, or an empty list when the
// season is unknown.
func (p *Pool) Fallback(season string) []string {
	return append([]string{}, p.fallback[season]...)
}

func (p *Pool) HasFallback(season string) bool {
	_, ok := p.fallback[season]
	return ok
}

// Available returns the candidates whose lowercase form matches none of the
// excluded names, keeping the curated order.
func (p *Pool) Available(excluded []string) []string {
	skip := make(map[string]struct{}, len(excluded))
	for _, n := range excluded {
		skip[strings.ToLower(n)] = struct{}{}
	}

	available := make([]string, 0, len(p.names))
	for _, n := range p.names {
		if _, ok := skip[strings.ToLower(n)]; ok {
			continue
		}
		available = append(available, n)
	}
	return available
}
