package aspirantes

import (
	"strings"
	"testing"
	"time"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/judicatura"
)

// testJudicatura is a reduced reference dataset exercising every
// cross-reference shape: an organo with salas (with and without entity
// coverage), circuitos, materias and all three titulos.
const testJudicatura = `
titulos:
  ministro:
    singular: { Masculino: Ministro, Femenino: Ministra }
    plural: { Masculino: Ministros, Femenino: Ministras }
  magistrado:
    singular: { Masculino: Magistrado, Femenino: Magistrada }
    plural: { Masculino: Magistrados, Femenino: Magistradas }
  juez:
    singular: { Masculino: Juez, Femenino: Jueza }
    plural: { Masculino: Jueces, Femenino: Juezas }
materias:
  penal: Penal
  civil: Civil
entidades:
  cmx: Ciudad de México
  jal: Jalisco
organos:
  scjn:
    nombre: Suprema Corte de Justicia de la Nación
    titulo: ministro
    conector: de la
    siglas: SCJN
  tdj:
    nombre: Tribunal de Disciplina Judicial
    titulo: magistrado
    conector: del
  tepjf:
    nombre: Tribunal Electoral del Poder Judicial de la Federación
    titulo: magistrado
    conector: del
    salas:
      superior:
        nombre: Sala Superior
        entidades: null
      cdmx:
        nombre: Sala Regional Ciudad de México
        entidades: [cmx, jal]
  tcc:
    nombre: Tribunales Colegiados de Circuito
    titulo: magistrado
    conector: de
    materias: [penal, civil]
  jdo:
    nombre: Juzgados de Distrito
    titulo: juez
    conector: de
    materias: [penal, civil]
circuitos:
  Primero:
    nombre: Primer Circuito
    entidad: cmx
    organos:
      - { tipo: jdo, materias: [penal] }
  Tercero:
    nombre: Tercer Circuito
    entidad: jal
    organos:
      - { tipo: tcc, materias: [civil] }
`

// seven candidates, four of them for the scjn, in dataset order.
var testRaws = []AspiranteRaw{
	{Nombre: "María Pérez Ríos", Organo: "scjn", Genero: "Femenino", Expediente: "SCJN/001"},
	{Nombre: "Juan López Ortega", Organo: "scjn", Genero: "Masculino", Expediente: "SCJN/002"},
	{Nombre: "Ana Sofía Ramírez", Organo: "scjn", Genero: "Femenino", Expediente: "SCJN/003"},
	{Nombre: "Pedro Aguilar Cano", Organo: "scjn", Genero: "Masculino", Expediente: "SCJN/004"},
	{Nombre: "Lucía Gómez Rodríguez", Organo: "tepjf", Genero: "Femenino", Sala: "cdmx", Expediente: "TEPJF/001"},
	{Nombre: "Héctor Muñoz Alba", Organo: "jdo", Genero: "Masculino", Circuito: "Primero", Materia: "penal", Expediente: "JDO/001"},
	{Nombre: "Elena Castro Díaz", Organo: "tcc", Genero: "Femenino", Circuito: "Tercero", Materia: "civil", Expediente: "TCC/001"},
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ref, err := judicatura.Parse([]byte(testJudicatura))
	if err != nil {
		t.Fatalf("parse test judicatura: %v", err)
	}
	s, err := NewStore(testRaws, ref, time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build test store: %v", err)
	}
	return s
}

func slugs(list []Aspirante) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Slug
	}
	return out
}

// TestQuery_OrganoFilter runs the end-to-end scenario: seven candidates
// total, four for the scjn.
func TestQuery_OrganoFilter(t *testing.T) {
	s := newTestStore(t)

	got := s.Query(QueryParams{Organo: "scjn", Limit: 10})
	if len(got) != 4 {
		t.Fatalf("expected 4 scjn aspirantes, got %d", len(got))
	}
	for _, a := range got {
		if a.OrganoSlug != "scjn" {
			t.Errorf("expected organo scjn, got %q for %q", a.OrganoSlug, a.Nombre)
		}
		found, ok := s.GetBySlug(a.Slug)
		if !ok || found.Nombre != a.Nombre {
			t.Errorf("GetBySlug(%q) did not round-trip", a.Slug)
		}
	}

	if s.Count() != 7 {
		t.Errorf("expected Count()=7, got %d", s.Count())
	}
}

// TestQuery_TituloFilter verifies titulo matching goes through the
// organo's titulo key, so it spans both gendered display forms.
func TestQuery_TituloFilter(t *testing.T) {
	s := newTestStore(t)

	got := s.Query(QueryParams{Titulo: "magistrado", Limit: 10})
	if len(got) != 2 {
		t.Fatalf("expected 2 magistrados (tepjf + tcc), got %d", len(got))
	}
	seen := map[string]bool{}
	for _, a := range got {
		if a.TituloSlug != "magistrado" {
			t.Errorf("expected tituloSlug magistrado, got %q", a.TituloSlug)
		}
		seen[a.Titulo] = true
	}
	// one Magistrada, one Magistrado: both inflections match the filter
	if !seen["Magistrada"] || !seen["Magistrado"] {
		t.Errorf("expected both gendered forms in results, got %v", seen)
	}
}

// TestQuery_EntidadFilter verifies the two coverage paths: the sala's
// explicit entity list and the circuito's entidad.
func TestQuery_EntidadFilter(t *testing.T) {
	s := newTestStore(t)

	got := s.Query(QueryParams{Entidad: "cmx", Limit: 10})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for cmx, got %d: %v", len(got), slugs(got))
	}
	// sala coverage, no circuito set
	if got[0].Nombre != "Lucía Gómez Rodríguez" {
		t.Errorf("expected sala-covered aspirante first, got %q", got[0].Nombre)
	}
	// circuito membership
	if got[1].Nombre != "Héctor Muñoz Alba" {
		t.Errorf("expected circuito-based aspirante second, got %q", got[1].Nombre)
	}

	// jal matches the sala list and the Tercero circuito
	if got := s.Query(QueryParams{Entidad: "jal", Limit: 10}); len(got) != 2 {
		t.Errorf("expected 2 matches for jal, got %d", len(got))
	}
}

// TestQuery_NombreFilter verifies case- and diacritic-insensitive
// substring search.
func TestQuery_NombreFilter(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		query string
		want  string
	}{
		{"rodr", "Lucía Gómez Rodríguez"},
		{"RODRÍG", "Lucía Gómez Rodríguez"},
		{"munoz", "Héctor Muñoz Alba"},
		{"díaz", "Elena Castro Díaz"},
	}
	for _, tc := range cases {
		got := s.Query(QueryParams{Nombre: tc.query, Limit: 10})
		if len(got) != 1 || got[0].Nombre != tc.want {
			t.Errorf("Query(nombre=%q): expected [%s], got %v", tc.query, tc.want, slugs(got))
		}
	}

	if got := s.Query(QueryParams{Nombre: "zzz", Limit: 10}); len(got) != 0 {
		t.Errorf("expected no matches for zzz, got %d", len(got))
	}
}

// TestQuery_ConjunctiveFilters verifies filters combine with AND
// semantics.
func TestQuery_ConjunctiveFilters(t *testing.T) {
	s := newTestStore(t)

	got := s.Query(QueryParams{Genero: "Femenino", Organo: "scjn", Limit: 10})
	if len(got) != 2 {
		t.Fatalf("expected 2 female scjn aspirantes, got %d", len(got))
	}

	// a value that matches nothing yields empty, never an error
	if got := s.Query(QueryParams{Organo: "scjn", Circuito: "Tercero", Limit: 10}); len(got) != 0 {
		t.Errorf("expected empty result for contradictory filters, got %d", len(got))
	}
}

// TestQuery_Pagination verifies disjoint pages that concatenate to the
// larger page, and empty results past the end.
func TestQuery_Pagination(t *testing.T) {
	s := newTestStore(t)

	page1 := s.Query(QueryParams{Offset: 0, Limit: 5})
	page2 := s.Query(QueryParams{Offset: 5, Limit: 5})
	all := s.Query(QueryParams{Offset: 0, Limit: 10})

	if len(page1) != 5 {
		t.Fatalf("expected 5 on page 1, got %d", len(page1))
	}
	if len(page2) != 2 {
		t.Fatalf("expected 2 on page 2, got %d", len(page2))
	}

	seen := map[string]bool{}
	for _, slug := range slugs(page1) {
		seen[slug] = true
	}
	for _, slug := range slugs(page2) {
		if seen[slug] {
			t.Errorf("slug %q appears on both pages", slug)
		}
	}

	combined := append(slugs(page1), slugs(page2)...)
	if len(combined) != len(all) {
		t.Fatalf("concatenated pages length %d != full page %d", len(combined), len(all))
	}
	for i, slug := range slugs(all) {
		if combined[i] != slug {
			t.Errorf("position %d: expected %q, got %q", i, slug, combined[i])
		}
	}

	if got := s.Query(QueryParams{Offset: 100, Limit: 5}); len(got) != 0 {
		t.Errorf("expected empty page past the end, got %d items", len(got))
	}
}

// TestQuery_DefaultLimit verifies the default page size applies when no
// limit is set.
func TestQuery_DefaultLimit(t *testing.T) {
	s := newTestStore(t)
	if got := s.Query(QueryParams{}); len(got) != 7 {
		t.Errorf("expected all 7 under the default limit, got %d", len(got))
	}
}

// TestQuery_CacheIdempotence verifies repeated identical queries return
// identical results (the cache changes performance, never content).
func TestQuery_CacheIdempotence(t *testing.T) {
	s := newTestStore(t)

	params := QueryParams{Organo: "scjn", Offset: 1, Limit: 2}
	first := s.Query(params)
	second := s.Query(params)

	if len(first) != len(second) {
		t.Fatalf("repeated query changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Slug != second[i].Slug {
			t.Errorf("position %d differs: %q vs %q", i, first[i].Slug, second[i].Slug)
		}
	}
}

// TestGetBySlug_NotFound verifies a miss is reported as a value.
func TestGetBySlug_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.GetBySlug("this-slug-does-not-exist"); ok {
		t.Error("expected miss for unknown slug")
	}
}

// TestNewStore_DuplicateSlug verifies two names that slugify
// identically fail the load instead of silently shadowing each other.
func TestNewStore_DuplicateSlug(t *testing.T) {
	ref, err := judicatura.Parse([]byte(testJudicatura))
	if err != nil {
		t.Fatalf("parse test judicatura: %v", err)
	}

	raws := append(append([]AspiranteRaw(nil), testRaws...), AspiranteRaw{
		// same name, different accents: identical slug
		Nombre: "Maria Perez Rios", Organo: "tdj", Genero: "Femenino", Expediente: "TDJ/001",
	})
	_, err = NewStore(raws, ref, time.Now())
	if err == nil {
		t.Fatal("expected duplicate-slug error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate slug") {
		t.Errorf("expected duplicate slug error, got: %v", err)
	}
}

// TestLoadStore_BundledDataset verifies the shipped dataset builds.
func TestLoadStore_BundledDataset(t *testing.T) {
	s, err := LoadStore()
	if err != nil {
		t.Fatalf("LoadStore() failed: %v", err)
	}
	if s.Count() == 0 {
		t.Fatal("bundled dataset is empty")
	}

	// every record must carry the enriched essentials
	for _, a := range s.Query(QueryParams{Limit: s.Count()}) {
		if a.Slug == "" || a.Titulo == "" || a.Cargo == "" || a.Color.Name == "" {
			t.Errorf("aspirante %q missing enriched fields", a.Nombre)
		}
		if a.LastModified.IsZero() {
			t.Errorf("aspirante %q missing lastModified", a.Nombre)
		}
	}
}
