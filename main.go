package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/aspirantes"
	"github.com/JudicaturaAbierta/aspirantes-api/internal/middleware"
	"github.com/JudicaturaAbierta/aspirantes-api/internal/sitemap"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}
	rps, _ := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if rps <= 0 {
		rps = 50
	}

	aspirantes.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.ThrottleMiddleware(rps, int(rps)*2))
	r.Get("/", RootHandler)

	r.Mount("/aspirantes", aspirantes.SetupRoutes())

	sm := sitemap.NewHandler(aspirantes.Data(), "", 0)
	r.Get("/sitemap-index.xml", sm.Index)
	r.Get("/sitemap/{id}.xml", sm.Shard)

	log.Printf("Server listening on port :%s...", port)

	if err := http.ListenAndServe("0.0.0.0:"+port, r); err != nil {
		log.Fatal(err)
	}
}
