package aspirantes

import (
	"fmt"
	"sort"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// Control identifies one filter control on the listing page.
type Control string

const (
	ControlTitulo   Control = "titulo"
	ControlOrgano   Control = "organo"
	ControlSala     Control = "sala"
	ControlEntidad  Control = "entidad"
	ControlCircuito Control = "circuito"
	ControlMateria  Control = "materia"
	ControlGenero   Control = "genero"
)

// Controls lists every filter control in display order.
var Controls = []Control{
	ControlTitulo, ControlOrgano, ControlSala, ControlEntidad,
	ControlCircuito, ControlMateria, ControlGenero,
}

// Item is one selectable option of a filter control. Disabled options
// stay visible: the UI communicates "this combination is excluded"
// without removing the option from view.
type Item struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// DisplayState describes how one control must render for the current
// filter selection.
type DisplayState struct {
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Value    string `json:"value"`
	Items    []Item `json:"items,omitempty"`
}

// FilterState is the current (partial) filter selection the resolver
// evaluates against. It deliberately excludes nombre and pagination,
// which have no cross-control dependencies.
type FilterState struct {
	Titulo   string `json:"titulo,omitempty"`
	Organo   string `json:"organo,omitempty"`
	Sala     string `json:"sala,omitempty"`
	Entidad  string `json:"entidad,omitempty"`
	Circuito string `json:"circuito,omitempty"`
	Materia  string `json:"materia,omitempty"`
	Genero   string `json:"genero,omitempty"`
}

// dependents maps each control to the controls cleared when its value
// changes, so a change never leaves an inconsistent combination behind.
var dependents = map[Control][]Control{
	ControlOrgano:   {ControlSala, ControlCircuito, ControlTitulo},
	ControlTitulo:   {ControlOrgano, ControlSala, ControlCircuito},
	ControlSala:     {ControlEntidad},
	ControlEntidad:  {},
	ControlCircuito: {},
	ControlMateria:  {},
	ControlGenero:   {},
}

// get returns the state's value for a control.
func (f FilterState) get(key Control) string {
	switch key {
	case ControlTitulo:
		return f.Titulo
	case ControlOrgano:
		return f.Organo
	case ControlSala:
		return f.Sala
	case ControlEntidad:
		return f.Entidad
	case ControlCircuito:
		return f.Circuito
	case ControlMateria:
		return f.Materia
	case ControlGenero:
		return f.Genero
	}
	return ""
}

func (f *FilterState) set(key Control, value string) {
	switch key {
	case ControlTitulo:
		f.Titulo = value
	case ControlOrgano:
		f.Organo = value
	case ControlSala:
		f.Sala = value
	case ControlEntidad:
		f.Entidad = value
	case ControlCircuito:
		f.Circuito = value
	case ControlMateria:
		f.Materia = value
	case ControlGenero:
		f.Genero = value
	}
}

// ApplyChange returns the filter state after the user changes one
// control: dependents of the changed control are cleared first, then
// the new value is applied (an empty value clears the control).
func ApplyChange(f FilterState, key Control, value string) FilterState {
	for _, dep := range dependents[key] {
		f.set(dep, "")
	}
	f.set(key, value)
	return f
}

// DisplayStates resolves the render state of every control for the
// current selection. Pure function of (state, reference data): the
// server-rendered initial page and every client-side re-evaluation
// derive the identical result from scratch.
func DisplayStates(f FilterState, ref *judicatura.Judicatura) map[Control]DisplayState {
	states := make(map[Control]DisplayState, len(Controls))
	for _, key := range Controls {
		states[key] = displayState(key, f, ref)
	}
	return states
}

func displayState(key Control, f FilterState, ref *judicatura.Judicatura) DisplayState {
	switch key {
	case ControlOrgano:
		items := organoItems(ref)
		// A titulo selection does not hide mismatched organos, it
		// disables them in place.
		if f.Titulo != "" {
			valid := make(map[string]bool)
			for _, organoKey := range ref.OrganosForTitulo(f.Titulo) {
				valid[organoKey] = true
			}
			for i := range items {
				items[i].Disabled = !valid[items[i].Value]
			}
		}
		return DisplayState{Visible: true, Value: f.Organo, Items: items}

	case ControlTitulo:
		items := tituloItems(ref)
		// An organo determines its titulo unambiguously, so once an
		// organo is chosen the titulo control locks to it.
		if f.Organo != "" {
			value := ""
			if organo, ok := ref.Organos[f.Organo]; ok {
				value = organo.Titulo
			}
			return DisplayState{Visible: true, Disabled: true, Value: value, Items: items}
		}
		return DisplayState{Visible: true, Value: f.Titulo, Items: items}

	case ControlSala:
		// Salas exist only under the electoral tribunal, so the control
		// only renders when the selected organo carries salas.
		organo, ok := ref.Organos[f.Organo]
		visible := ok && len(organo.Salas) > 0
		return DisplayState{Visible: visible, Value: f.Sala, Items: salaItems(ref)}

	case ControlEntidad:
		// Hidden only when the selected sala explicitly covers no fixed
		// entidad subset (national scope).
		if f.Organo != "" && f.Sala != "" {
			if sala, ok := ref.SalaFor(f.Organo, f.Sala); ok && sala.Entidades == nil {
				return DisplayState{Visible: false, Items: entidadItems(ref)}
			}
		}
		return DisplayState{Visible: true, Value: f.Entidad, Items: entidadItems(ref)}

	case ControlCircuito:
		// Circuitos and salas are mutually exclusive geographic
		// schemes: hide this control while an organo with salas is
		// selected.
		organo, ok := ref.Organos[f.Organo]
		visible := !ok || len(organo.Salas) == 0
		return DisplayState{Visible: visible, Value: f.Circuito, Items: circuitoItems(ref)}

	case ControlMateria:
		return DisplayState{Visible: true, Value: f.Materia, Items: materiaItems(ref)}

	case ControlGenero:
		return DisplayState{Visible: true, Value: f.Genero, Items: generoItems()}
	}

	return DisplayState{}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func organoItems(ref *judicatura.Judicatura) []Item {
	items := make([]Item, 0, len(ref.Organos))
	for _, key := range sortedKeys(ref.Organos) {
		items = append(items, Item{Value: key, Label: ref.Organos[key].Nombre})
	}
	return items
}

func tituloItems(ref *judicatura.Judicatura) []Item {
	items := make([]Item, 0, len(ref.Titulos))
	for _, key := range sortedKeys(ref.Titulos) {
		t := ref.Titulos[key]
		items = append(items, Item{
			Value: key,
			Label: fmt.Sprintf("%s / %s", t.Singular.Femenino, t.Singular.Masculino),
		})
	}
	return items
}

func salaItems(ref *judicatura.Judicatura) []Item {
	var items []Item
	for _, organoKey := range sortedKeys(ref.Organos) {
		salas := ref.Organos[organoKey].Salas
		for _, key := range sortedKeys(salas) {
			items = append(items, Item{Value: key, Label: salas[key].Nombre})
		}
	}
	return items
}

func entidadItems(ref *judicatura.Judicatura) []Item {
	items := make([]Item, 0, len(ref.Entidades))
	for _, key := range sortedKeys(ref.Entidades) {
		items = append(items, Item{Value: key, Label: ref.Entidades[key]})
	}
	return items
}

func circuitoItems(ref *judicatura.Judicatura) []Item {
	items := make([]Item, 0, len(ref.Circuitos))
	for _, key := range sortedKeys(ref.Circuitos) {
		items = append(items, Item{Value: key, Label: ref.Circuitos[key].Nombre})
	}
	return items
}

func materiaItems(ref *judicatura.Judicatura) []Item {
	items := make([]Item, 0, len(ref.Materias))
	for _, key := range sortedKeys(ref.Materias) {
		items = append(items, Item{Value: key, Label: ref.Materias[key]})
	}
	return items
}

func generoItems() []Item {
	return []Item{
		{Value: judicatura.GeneroMasculino, Label: judicatura.GeneroMasculino},
		{Value: judicatura.GeneroFemenino, Label: judicatura.GeneroFemenino},
		{Value: judicatura.GeneroIndistinto, Label: judicatura.GeneroIndistinto},
	}
}
