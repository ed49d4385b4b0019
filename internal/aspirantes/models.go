package aspirantes

import (
	"fmt"
	"time"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// AspiranteRaw is one candidate record as authored in the bundled
// dataset. Only keys are stored; display objects are resolved during
// enrichment.
type AspiranteRaw struct {
	Nombre     string `yaml:"nombre"`
	Organo     string `yaml:"organo"`
	Genero     string `yaml:"genero"`
	Circuito   string `yaml:"circuito"`
	Materia    string `yaml:"materia"`
	Sala       string `yaml:"sala"`
	Expediente string `yaml:"expediente"`
	Numero     int    `yaml:"numero"`

	// FechaRegistro overrides the dataset-wide actualizado stamp for
	// this record's lastModified (RFC 3339).
	FechaRegistro string `yaml:"fechaRegistro"`
}

// Color is the deterministic color assignment used for the listing
// cards and the legend.
type Color struct {
	Name string `json:"name"`
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

// Aspirante is a fully-resolved candidate record. Built exactly once at
// load time and immutable afterwards.
type Aspirante struct {
	Nombre     string `json:"nombre"`
	Genero     string `json:"genero"`
	Expediente string `json:"expediente"`
	Numero     int    `json:"numero,omitempty"`

	Slug string `json:"slug"`

	TituloSlug string `json:"tituloSlug"`
	Titulo     string `json:"titulo"`
	Cargo      string `json:"cargo"`

	OrganoSlug string            `json:"organoSlug"`
	Organo     judicatura.Organo `json:"organo"`

	SalaSlug string           `json:"salaSlug,omitempty"`
	Sala     *judicatura.Sala `json:"sala,omitempty"`

	MateriaSlug string `json:"materiaSlug,omitempty"`
	Materia     string `json:"materia,omitempty"`

	CircuitoSlug string               `json:"circuitoSlug,omitempty"`
	Circuito     *judicatura.Circuito `json:"circuito,omitempty"`

	EntidadSlug string `json:"entidadSlug,omitempty"`
	Entidad     string `json:"entidad,omitempty"`

	Color Color `json:"color"`

	LastModified time.Time `json:"lastModified"`

	// nombre lowercased and stripped of diacritics, precomputed for the
	// name filter.
	nombreFold string
}

// QueryParams are the filters and pagination for a listing query. All
// filters are optional and conjunctive. Enum fields must be validated
// against the reference data before reaching the store (see Validate).
type QueryParams struct {
	Nombre   string `json:"nombre,omitempty"`
	Titulo   string `json:"titulo,omitempty"`
	Organo   string `json:"organo,omitempty"`
	Sala     string `json:"sala,omitempty"`
	Circuito string `json:"circuito,omitempty"`
	Entidad  string `json:"entidad,omitempty"`
	Materia  string `json:"materia,omitempty"`
	Genero   string `json:"genero,omitempty"`

	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// cacheKey serializes the filter set, excluding pagination, so queries
// that differ only in offset/limit share one cached result set.
func (p QueryParams) cacheKey() string {
	return fmt.Sprintf("nombre=%s|titulo=%s|organo=%s|sala=%s|circuito=%s|entidad=%s|materia=%s|genero=%s",
		p.Nombre, p.Titulo, p.Organo, p.Sala, p.Circuito, p.Entidad, p.Materia, p.Genero)
}
