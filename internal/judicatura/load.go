package judicatura

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed data/judicatura.yaml
var rawJudicatura []byte

// Load parses and validates the bundled reference dataset. The dataset
// is authored at build time and trusted afterwards: any schema or
// cross-reference problem here is a fatal startup condition, so callers
// should abort on error rather than serve partially-resolved data.
func Load() (*Judicatura, error) {
	return Parse(rawJudicatura)
}

// Parse parses and validates a reference dataset from YAML.
func Parse(data []byte) (*Judicatura, error) {
	var j Judicatura
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse judicatura dataset: %w", err)
	}
	if err := j.validate(); err != nil {
		return nil, fmt.Errorf("invalid judicatura dataset: %w", err)
	}
	return &j, nil
}

// validate runs the single load-time consistency pass. Downstream code
// treats every key reference as resolvable and never re-validates.
func (j *Judicatura) validate() error {
	if len(j.Organos) == 0 {
		return fmt.Errorf("no organos defined")
	}
	if len(j.Titulos) == 0 {
		return fmt.Errorf("no titulos defined")
	}
	if len(j.Entidades) == 0 {
		return fmt.Errorf("no entidades defined")
	}

	for key, organo := range j.Organos {
		if organo.Nombre == "" {
			return fmt.Errorf("organo %q: missing nombre", key)
		}
		if _, ok := j.Titulos[organo.Titulo]; !ok {
			return fmt.Errorf("organo %q: unknown titulo %q", key, organo.Titulo)
		}
		for _, materia := range organo.Materias {
			if _, ok := j.Materias[materia]; !ok {
				return fmt.Errorf("organo %q: unknown materia %q", key, materia)
			}
		}
		for salaKey, sala := range organo.Salas {
			if sala.Nombre == "" {
				return fmt.Errorf("organo %q: sala %q: missing nombre", key, salaKey)
			}
			for _, entidad := range sala.Entidades {
				if _, ok := j.Entidades[entidad]; !ok {
					return fmt.Errorf("organo %q: sala %q: unknown entidad %q", key, salaKey, entidad)
				}
			}
		}
	}

	for key, circuito := range j.Circuitos {
		if circuito.Nombre == "" {
			return fmt.Errorf("circuito %q: missing nombre", key)
		}
		if _, ok := j.Entidades[circuito.Entidad]; !ok {
			return fmt.Errorf("circuito %q: unknown entidad %q", key, circuito.Entidad)
		}
		for _, co := range circuito.Organos {
			if _, ok := j.Organos[co.Tipo]; !ok {
				return fmt.Errorf("circuito %q: unknown organo %q", key, co.Tipo)
			}
			for _, materia := range co.Materias {
				if _, ok := j.Materias[materia]; !ok {
					return fmt.Errorf("circuito %q: unknown materia %q", key, materia)
				}
			}
		}
	}

	for key, titulo := range j.Titulos {
		if titulo.Singular.Masculino == "" || titulo.Singular.Femenino == "" {
			return fmt.Errorf("titulo %q: missing singular forms", key)
		}
		if titulo.Plural.Masculino == "" || titulo.Plural.Femenino == "" {
			return fmt.Errorf("titulo %q: missing plural forms", key)
		}
	}

	return nil
}
