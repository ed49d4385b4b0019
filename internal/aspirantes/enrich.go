package aspirantes

import (
	"fmt"
	"time"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// defaultConector joins titulo and organo nombre when the organo does
// not define its own connector word.
const defaultConector = "de"

var colors = map[string]Color{
	"morado":     {Name: "morado", Bg: "#8882D3", Text: "#FFFFFF"},
	"rosa":       {Name: "rosa", Bg: "#C18CA4", Text: "#FFFFFF"},
	"verde":      {Name: "verde", Bg: "#83C8BC", Text: "#000000"},
	"azul":       {Name: "azul", Bg: "#3D7D98", Text: "#FFFFFF"},
	"anaranjado": {Name: "anaranjado", Bg: "#F5C5B8", Text: "#000000"},
	"amarillo":   {Name: "amarillo", Bg: "#F1DB4B", Text: "#000000"},
	"gris":       {Name: "gris", Bg: "#D1D5DB", Text: "#000000"},
}

// colorFor assigns the legend color from (organo, titulo, sala). Total
// and deterministic: every valid combination maps to exactly one color,
// and the same combination always maps to the same color.
func colorFor(organo, titulo, sala string) Color {
	switch {
	case titulo == "ministro":
		return colors["morado"]
	case titulo == "juez":
		return colors["amarillo"]
	case organo == "tdj":
		return colors["verde"]
	case organo == "tepjf":
		if sala == "superior" {
			return colors["rosa"]
		}
		return colors["anaranjado"]
	case titulo == "magistrado":
		return colors["azul"]
	default:
		return colors["gris"]
	}
}

// enrich resolves one raw record against the reference data. Every key
// the record carries must resolve; a failure here is a data-authoring
// error and aborts the load, it is never a per-request condition.
func enrich(raw AspiranteRaw, j *judicatura.Judicatura, fallback time.Time) (Aspirante, error) {
	organo, ok := j.Organos[raw.Organo]
	if !ok {
		return Aspirante{}, fmt.Errorf("aspirante %q: unknown organo %q", raw.Nombre, raw.Organo)
	}

	switch raw.Genero {
	case judicatura.GeneroMasculino, judicatura.GeneroFemenino, judicatura.GeneroIndistinto:
	default:
		return Aspirante{}, fmt.Errorf("aspirante %q: unknown genero %q", raw.Nombre, raw.Genero)
	}
	titulo := j.SingularTitulo(organo.Titulo, raw.Genero)

	conector := organo.Conector
	if conector == "" {
		conector = defaultConector
	}

	a := Aspirante{
		Nombre:     raw.Nombre,
		Genero:     raw.Genero,
		Expediente: raw.Expediente,
		Numero:     raw.Numero,

		Slug: slugify(raw.Nombre),

		TituloSlug: organo.Titulo,
		Titulo:     titulo,
		Cargo:      fmt.Sprintf("%s %s %s", titulo, conector, organo.Nombre),

		OrganoSlug: raw.Organo,
		Organo:     organo,

		Color: colorFor(raw.Organo, organo.Titulo, raw.Sala),

		LastModified: fallback,

		nombreFold: fold(raw.Nombre),
	}

	if raw.Sala != "" {
		sala, ok := j.SalaFor(raw.Organo, raw.Sala)
		if !ok {
			return Aspirante{}, fmt.Errorf("aspirante %q: organo %q has no sala %q", raw.Nombre, raw.Organo, raw.Sala)
		}
		a.SalaSlug = raw.Sala
		a.Sala = &sala
	}

	if raw.Materia != "" {
		materia, ok := j.Materias[raw.Materia]
		if !ok {
			return Aspirante{}, fmt.Errorf("aspirante %q: unknown materia %q", raw.Nombre, raw.Materia)
		}
		a.MateriaSlug = raw.Materia
		a.Materia = materia
	}

	if raw.Circuito != "" {
		circuito, ok := j.Circuitos[raw.Circuito]
		if !ok {
			return Aspirante{}, fmt.Errorf("aspirante %q: unknown circuito %q", raw.Nombre, raw.Circuito)
		}
		a.CircuitoSlug = raw.Circuito
		a.Circuito = &circuito

		// The entidad follows from the circuito. Candidates without a
		// circuito (ministros, salas electorales) have no direct
		// entidad; sala coverage is handled at query time.
		a.EntidadSlug = circuito.Entidad
		a.Entidad = j.Entidades[circuito.Entidad]
	}

	if raw.FechaRegistro != "" {
		ts, err := time.Parse(time.RFC3339, raw.FechaRegistro)
		if err != nil {
			return Aspirante{}, fmt.Errorf("aspirante %q: bad fechaRegistro: %w", raw.Nombre, err)
		}
		a.LastModified = ts
	}

	return a, nil
}
