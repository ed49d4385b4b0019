// Command export-db loads the enriched aspirante dataset into postgres
// so analysts can run ad-hoc SQL against it. The serving path never
// touches a database; this is an offline mirror of the in-memory store.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/aspirantes"
)

// AspiranteRow flattens an enriched aspirante into one table row. Sala
// entity coverage keeps its list shape as a text array.
type AspiranteRow struct {
	Slug          string `gorm:"primaryKey"`
	Nombre        string
	Genero        string
	Expediente    string
	Numero        int
	Titulo        string
	TituloSlug    string
	Cargo         string
	OrganoSlug    string
	OrganoNombre  string
	SalaSlug      string
	SalaNombre    string
	SalaEntidades pq.StringArray `gorm:"type:text[]"`
	CircuitoSlug  string
	EntidadSlug   string
	Entidad       string
	MateriaSlug   string
	Materia       string
	ColorName     string
	ColorBg       string
	ColorText     string
	LastModified  time.Time
}

func (AspiranteRow) TableName() string { return "aspirantes.aspirantes" }

func main() {
	_ = godotenv.Load(".env.local")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	store, err := aspirantes.LoadStore()
	if err != nil {
		log.Fatalf("dataset invalid: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS aspirantes`).Error; err != nil {
		log.Fatal("Failed to ensure schema aspirantes: ", err)
	}
	if err := db.AutoMigrate(&AspiranteRow{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}

	// Walk the store page by page through the same incremental feed the
	// listing client uses.
	feed := aspirantes.NewFeed(
		func(ctx context.Context, params aspirantes.QueryParams) ([]aspirantes.Aspirante, error) {
			return store.Query(params), nil
		},
		aspirantes.QueryParams{Limit: 50},
		store.Query(aspirantes.QueryParams{Limit: 50}),
	)
	ctx := context.Background()
	for feed.HasMore() {
		feed.LoadMore(ctx)
		// the feed debounces triggers; pace the walk instead of spinning
		time.Sleep(250 * time.Millisecond)
	}

	start := time.Now()
	rows := make([]AspiranteRow, 0, store.Count())
	for _, a := range feed.Items() {
		row := AspiranteRow{
			Slug:         a.Slug,
			Nombre:       a.Nombre,
			Genero:       a.Genero,
			Expediente:   a.Expediente,
			Numero:       a.Numero,
			Titulo:       a.Titulo,
			TituloSlug:   a.TituloSlug,
			Cargo:        a.Cargo,
			OrganoSlug:   a.OrganoSlug,
			OrganoNombre: a.Organo.Nombre,
			SalaSlug:     a.SalaSlug,
			CircuitoSlug: a.CircuitoSlug,
			EntidadSlug:  a.EntidadSlug,
			Entidad:      a.Entidad,
			MateriaSlug:  a.MateriaSlug,
			Materia:      a.Materia,
			ColorName:    a.Color.Name,
			ColorBg:      a.Color.Bg,
			ColorText:    a.Color.Text,
			LastModified: a.LastModified,
		}
		if a.Sala != nil {
			row.SalaNombre = a.Sala.Nombre
			row.SalaEntidades = pq.StringArray(a.Sala.Entidades)
		}
		rows = append(rows, row)
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).CreateInBatches(rows, 100)
	if result.Error != nil {
		log.Fatalf("Failed to upsert aspirantes: %v", result.Error)
	}

	log.Printf("[export-db] upserted %d records in %dms", len(rows), time.Since(start).Milliseconds())
}
