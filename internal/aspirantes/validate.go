package aspirantes

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// FieldError attributes one validation problem to the query field that
// caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseQuery builds QueryParams from URL query values and validates
// them. Unknown pagination values and enum values outside the reference
// key sets are reported per field; the store is only reached with a
// clean parameter set.
func ParseQuery(values url.Values, ref *judicatura.Judicatura) (QueryParams, []FieldError) {
	params := QueryParams{
		Nombre:   values.Get("nombre"),
		Titulo:   values.Get("titulo"),
		Organo:   values.Get("organo"),
		Sala:     values.Get("sala"),
		Circuito: values.Get("circuito"),
		Entidad:  values.Get("entidad"),
		Materia:  values.Get("materia"),
		Genero:   values.Get("genero"),
	}

	var errs []FieldError

	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, FieldError{Field: "offset", Message: "must be a non-negative integer"})
		} else {
			params.Offset = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			params.Limit = n
		}
	}

	errs = append(errs, Validate(params, ref)...)
	return params, errs
}

// Validate checks the enum-constrained filters of an already-typed
// parameter set against the reference key sets. Used directly for the
// POST search body, where pagination arrives as typed integers.
func Validate(p QueryParams, ref *judicatura.Judicatura) []FieldError {
	var errs []FieldError

	if p.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "must be a non-negative integer"})
	}
	if p.Titulo != "" {
		if _, ok := ref.Titulos[p.Titulo]; !ok {
			errs = append(errs, FieldError{Field: "titulo", Message: fmt.Sprintf("unknown titulo %q", p.Titulo)})
		}
	}
	if p.Organo != "" {
		if _, ok := ref.Organos[p.Organo]; !ok {
			errs = append(errs, FieldError{Field: "organo", Message: fmt.Sprintf("unknown organo %q", p.Organo)})
		}
	}
	if p.Sala != "" && !knownSala(ref, p.Sala) {
		errs = append(errs, FieldError{Field: "sala", Message: fmt.Sprintf("unknown sala %q", p.Sala)})
	}
	if p.Circuito != "" {
		if _, ok := ref.Circuitos[p.Circuito]; !ok {
			errs = append(errs, FieldError{Field: "circuito", Message: fmt.Sprintf("unknown circuito %q", p.Circuito)})
		}
	}
	if p.Entidad != "" {
		if _, ok := ref.Entidades[p.Entidad]; !ok {
			errs = append(errs, FieldError{Field: "entidad", Message: fmt.Sprintf("unknown entidad %q", p.Entidad)})
		}
	}
	if p.Materia != "" {
		if _, ok := ref.Materias[p.Materia]; !ok {
			errs = append(errs, FieldError{Field: "materia", Message: fmt.Sprintf("unknown materia %q", p.Materia)})
		}
	}
	if p.Genero != "" {
		switch p.Genero {
		case judicatura.GeneroMasculino, judicatura.GeneroFemenino, judicatura.GeneroIndistinto:
		default:
			errs = append(errs, FieldError{Field: "genero", Message: fmt.Sprintf("unknown genero %q", p.Genero)})
		}
	}

	return errs
}

func knownSala(ref *judicatura.Judicatura, sala string) bool {
	for _, key := range ref.SalaKeys() {
		if key == sala {
			return true
		}
	}
	return false
}
