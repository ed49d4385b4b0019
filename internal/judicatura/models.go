package judicatura

import "sort"

// Genero values recorded for aspirantes. The titulos table only carries
// masculine and feminine display forms; GeneroIndistinto is accepted as
// input and resolved to the masculine form (see SingularTitulo).
const (
	GeneroMasculino  = "Masculino"
	GeneroFemenino   = "Femenino"
	GeneroIndistinto = "Indistinto"
)

// TituloFormas holds the two grammatical-gender display forms of a title.
type TituloFormas struct {
	Masculino string `yaml:"Masculino" json:"Masculino"`
	Femenino  string `yaml:"Femenino" json:"Femenino"`
}

// Titulo is a role title (ministro, magistrado, juez) with its
// gender-inflected singular and plural display forms.
type Titulo struct {
	Singular TituloFormas `yaml:"singular" json:"singular"`
	Plural   TituloFormas `yaml:"plural" json:"plural"`
}

// Sala is a chamber of the electoral tribunal.
type Sala struct {
	Nombre      string `yaml:"nombre" json:"nombre"`
	Descripcion string `yaml:"descripcion" json:"descripcion,omitempty"`

	// Entidades lists the entidad keys the sala covers. nil means the
	// sala has no fixed subset of entidades (national scope).
	Entidades []string `yaml:"entidades" json:"entidades"`
}

// Organo is a judicial organizational unit an aspirante runs for.
type Organo struct {
	Nombre   string   `yaml:"nombre" json:"nombre"`
	Titulo   string   `yaml:"titulo" json:"titulo"`
	Conector string   `yaml:"conector" json:"conector,omitempty"`
	Siglas   string   `yaml:"siglas" json:"siglas,omitempty"`
	Materias []string `yaml:"materias" json:"materias,omitempty"`

	// Salas is only populated for the electoral tribunal; sala keys are
	// addressable only under their owning organo.
	Salas map[string]Sala `yaml:"salas" json:"salas,omitempty"`
}

// CircuitoOrgano records which organo type operates in a circuito and
// in which materias.
type CircuitoOrgano struct {
	Tipo     string   `yaml:"tipo" json:"tipo"`
	Materias []string `yaml:"materias" json:"materias"`
}

// Circuito is a judicial circuit, mapped to exactly one entidad.
type Circuito struct {
	Nombre  string           `yaml:"nombre" json:"nombre"`
	Entidad string           `yaml:"entidad" json:"entidad"`
	Organos []CircuitoOrgano `yaml:"organos" json:"organos,omitempty"`
}

// Judicatura is the full reference dataset: immutable lookup tables
// keyed by stable identifier strings, loaded once at process start.
type Judicatura struct {
	Organos   map[string]Organo   `yaml:"organos" json:"organos"`
	Circuitos map[string]Circuito `yaml:"circuitos" json:"circuitos"`
	Materias  map[string]string   `yaml:"materias" json:"materias"`
	Titulos   map[string]Titulo   `yaml:"titulos" json:"titulos"`
	Entidades map[string]string   `yaml:"entidades" json:"entidades"`
}

// SingularTitulo returns the gender-correct singular display form for a
// titulo key. GeneroIndistinto (and any unlisted value) resolves to the
// masculine form; this default is applied here and nowhere else.
func (j *Judicatura) SingularTitulo(titulo, genero string) string {
	t, ok := j.Titulos[titulo]
	if !ok {
		return ""
	}
	if genero == GeneroFemenino {
		return t.Singular.Femenino
	}
	return t.Singular.Masculino
}

// OrganosForTitulo returns the organo keys whose titulo matches, in
// stable sorted order.
func (j *Judicatura) OrganosForTitulo(titulo string) []string {
	var keys []string
	for key, organo := range j.Organos {
		if organo.Titulo == titulo {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// SalaFor resolves a sala key under a given organo. The second return
// is false when the organo has no such sala.
func (j *Judicatura) SalaFor(organo, sala string) (Sala, bool) {
	o, ok := j.Organos[organo]
	if !ok {
		return Sala{}, false
	}
	s, ok := o.Salas[sala]
	return s, ok
}

// SalaKeys returns every sala key across all organos, sorted. In the
// bundled dataset only the electoral tribunal carries salas, but the
// lookup does not assume that.
func (j *Judicatura) SalaKeys() []string {
	var keys []string
	for _, organo := range j.Organos {
		for key := range organo.Salas {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
