package aspirantes

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// DefaultPageSize is the listing page size applied when a query does
// not set an explicit limit.
const DefaultPageSize = 12

// Store holds every enriched aspirante in dataset order plus a
// slug-keyed index. The collections are immutable after construction;
// the only mutable state is the query cache, which is append-only and
// guarded by a mutex.
type Store struct {
	ref    *judicatura.Judicatura
	all    []Aspirante
	bySlug map[string]Aspirante

	mu    sync.Mutex
	cache map[string][]Aspirante
}

// NewStore enriches every raw record and builds the indexes. Duplicate
// slugs fail the build: two names that slugify identically would
// silently shadow each other in the slug index otherwise.
func NewStore(raws []AspiranteRaw, ref *judicatura.Judicatura, updated time.Time) (*Store, error) {
	s := &Store{
		ref:    ref,
		all:    make([]Aspirante, 0, len(raws)),
		bySlug: make(map[string]Aspirante, len(raws)),
		cache:  make(map[string][]Aspirante),
	}

	for _, raw := range raws {
		a, err := enrich(raw, ref, updated)
		if err != nil {
			return nil, err
		}
		if _, exists := s.bySlug[a.Slug]; exists {
			return nil, fmt.Errorf("duplicate slug %q (aspirante %q)", a.Slug, a.Nombre)
		}
		s.all = append(s.all, a)
		s.bySlug[a.Slug] = a
	}

	return s, nil
}

// Ref exposes the reference data the store was built against.
func (s *Store) Ref() *judicatura.Judicatura { return s.ref }

// Count returns the total unfiltered number of aspirantes.
func (s *Store) Count() int { return len(s.all) }

// GetBySlug returns the aspirante for an exact slug, or false when no
// such record exists. A miss is a normal outcome, not an error.
func (s *Store) GetBySlug(slug string) (Aspirante, bool) {
	a, ok := s.bySlug[slug]
	return a, ok
}

// Query returns the aspirantes matching the conjunctive filters in
// params, paginated by offset/limit. Dataset order is preserved; an
// offset past the end returns an empty list. The pre-pagination result
// set is cached by filter signature for the life of the process.
func (s *Store) Query(params QueryParams) []Aspirante {
	filtered := s.filtered(params)

	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if offset >= len(filtered) {
		return []Aspirante{}
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end]
}

// filtered returns the cached result set for the filter signature,
// computing and storing it on first use. Entries are never updated or
// evicted; the key space is bounded by the filterable fields and the
// dataset never changes at runtime.
func (s *Store) filtered(params QueryParams) []Aspirante {
	key := params.cacheKey()

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached
	}

	matched := make([]Aspirante, 0)
	for _, a := range s.all {
		if s.matches(a, params) {
			matched = append(matched, a)
		}
	}

	s.mu.Lock()
	s.cache[key] = matched
	s.mu.Unlock()
	return matched
}

// matches applies the conjunctive filter set to one aspirante. Filter
// values are pre-validated at the boundary; a value that matches no
// record simply yields zero results.
func (s *Store) matches(a Aspirante, p QueryParams) bool {
	if p.Organo != "" && a.OrganoSlug != p.Organo {
		return false
	}
	// Matching on the organo's titulo key, not the candidate's gendered
	// display form: filtering "juez" returns juezas too.
	if p.Titulo != "" && a.TituloSlug != p.Titulo {
		return false
	}
	if p.Sala != "" && a.SalaSlug != p.Sala {
		return false
	}
	if p.Circuito != "" && a.CircuitoSlug != p.Circuito {
		return false
	}
	if p.Materia != "" && a.MateriaSlug != p.Materia {
		return false
	}
	if p.Genero != "" && a.Genero != p.Genero {
		return false
	}
	if p.Nombre != "" && !containsFold(a, p.Nombre) {
		return false
	}
	if p.Entidad != "" && !coversEntidad(a, p.Entidad) {
		return false
	}
	return true
}

// containsFold is the case- and diacritic-insensitive name substring
// match.
func containsFold(a Aspirante, query string) bool {
	return strings.Contains(a.nombreFold, fold(query))
}

// coversEntidad reports whether an aspirante belongs to an entidad,
// either because their sala explicitly covers it or because their
// circuito lies in it. Electoral salas assign coverage by entidad list;
// every other organo assigns it by circuito.
func coversEntidad(a Aspirante, entidad string) bool {
	if a.Sala != nil {
		for _, e := range a.Sala.Entidades {
			if e == entidad {
				return true
			}
		}
	}
	return a.EntidadSlug == entidad
}
