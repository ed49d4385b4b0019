package aspirantes

import (
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

//go:embed data/aspirantes.yaml
var rawAspirantes []byte

// dataset is the shape of the bundled aspirantes file: a dataset-wide
// freshness stamp plus the candidate records in presentation order.
type dataset struct {
	Actualizado string         `yaml:"actualizado"`
	Aspirantes  []AspiranteRaw `yaml:"aspirantes"`
}

// store is the process-wide candidate store, set once by Init.
var store *Store

// LoadStore parses both bundled datasets and builds the enriched store.
// Any inconsistency (broken reference, duplicate slug, malformed
// timestamp) is returned as an error; nothing partial is ever built.
func LoadStore() (*Store, error) {
	ref, err := judicatura.Load()
	if err != nil {
		return nil, err
	}

	var ds dataset
	if err := yaml.Unmarshal(rawAspirantes, &ds); err != nil {
		return nil, fmt.Errorf("parse aspirantes dataset: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, ds.Actualizado)
	if err != nil {
		return nil, fmt.Errorf("aspirantes dataset: bad actualizado stamp: %w", err)
	}

	return NewStore(ds.Aspirantes, ref, updated)
}

// Init loads the bundled datasets into the process-wide store. The
// data is foundational: failure to load aborts startup rather than
// serving partially-resolved records.
func Init() {
	s, err := LoadStore()
	if err != nil {
		log.Fatal("[aspirantes] failed to load dataset: ", err)
	}
	store = s
	log.Printf("[aspirantes] loaded %d aspirantes across %d organos", s.Count(), len(s.Ref().Organos))
}

// Data returns the process-wide store for other packages (sitemap
// generation, export tooling).
func Data() *Store { return store }
