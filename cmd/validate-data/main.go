// Command validate-data loads the bundled datasets exactly the way the
// server does and exits non-zero on any inconsistency. Run it in CI
// after editing the YAML files.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/aspirantes"
)

func main() {
	store, err := aspirantes.LoadStore()
	if err != nil {
		log.Fatalf("dataset invalid: %v", err)
	}

	ref := store.Ref()
	fmt.Printf("✓ judicatura: %d organos, %d circuitos, %d entidades, %d materias, %d titulos\n",
		len(ref.Organos), len(ref.Circuitos), len(ref.Entidades), len(ref.Materias), len(ref.Titulos))
	fmt.Printf("✓ aspirantes: %d records, all slugs unique\n", store.Count())

	perOrgano := make(map[string]int)
	for _, a := range store.Query(aspirantes.QueryParams{Limit: store.Count()}) {
		perOrgano[a.OrganoSlug]++
	}
	keys := make([]string, 0, len(perOrgano))
	for key := range perOrgano {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-6s %3d  (%s)\n", key, perOrgano[key], ref.Organos[key].Nombre)
	}
}
