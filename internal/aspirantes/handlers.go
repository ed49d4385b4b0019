package aspirantes

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// validationResponse is the structured, field-attributed error list the
// boundary returns instead of an opaque failure.
type validationResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

// ListAspirantes serves the filtered, paginated listing from URL query
// parameters.
func ListAspirantes(w http.ResponseWriter, r *http.Request) {
	params, errs := ParseQuery(r.URL.Query(), store.Ref())
	if len(errs) > 0 {
		log.Printf("[aspirantes] list rejected: %d invalid fields from %s", len(errs), r.RemoteAddr)
		writeJSONStatus(w, http.StatusBadRequest, validationResponse{Error: "invalid filters", Fields: errs})
		return
	}

	writeJSON(w, store.Query(params))
}

// SearchAspirantes is the POST counterpart of ListAspirantes: the same
// filter object as a JSON body. This is the endpoint the incremental
// "load more" client calls.
func SearchAspirantes(w http.ResponseWriter, r *http.Request) {
	var params QueryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if errs := Validate(params, store.Ref()); len(errs) > 0 {
		log.Printf("[aspirantes] search rejected: %d invalid fields from %s", len(errs), r.RemoteAddr)
		writeJSONStatus(w, http.StatusBadRequest, validationResponse{Error: "invalid filters", Fields: errs})
		return
	}

	writeJSON(w, store.Query(params))
}

// CountAspirantes returns the total unfiltered candidate count, used by
// pagination-size consumers such as the sitemap shard computation.
func CountAspirantes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"total": store.Count()})
}

// GetAspirante serves one candidate by slug; an unknown slug is a
// normal 404, not a server error.
func GetAspirante(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	a, ok := store.GetBySlug(slug)
	if !ok {
		writeJSONStatus(w, http.StatusNotFound, map[string]string{"error": "aspirante not found"})
		return
	}
	writeJSON(w, a)
}

// FilterStates resolves the filter-control display states for the
// selection carried in the query string, so the server-rendered page
// and client re-evaluations share one implementation.
func FilterStates(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	state := FilterState{
		Titulo:   values.Get("titulo"),
		Organo:   values.Get("organo"),
		Sala:     values.Get("sala"),
		Entidad:  values.Get("entidad"),
		Circuito: values.Get("circuito"),
		Materia:  values.Get("materia"),
		Genero:   values.Get("genero"),
	}

	if errs := Validate(QueryParams{
		Titulo:   state.Titulo,
		Organo:   state.Organo,
		Sala:     state.Sala,
		Entidad:  state.Entidad,
		Circuito: state.Circuito,
		Materia:  state.Materia,
		Genero:   state.Genero,
	}, store.Ref()); len(errs) > 0 {
		writeJSONStatus(w, http.StatusBadRequest, validationResponse{Error: "invalid filters", Fields: errs})
		return
	}

	writeJSON(w, DisplayStates(state, store.Ref()))
}
