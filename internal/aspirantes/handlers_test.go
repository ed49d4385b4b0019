package aspirantes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store = newTestStore(t)
	server := httptest.NewServer(SetupRoutes())
	t.Cleanup(server.Close)
	return server
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func TestListAspirantes(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/?organo=scjn")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var list []Aspirante
	decodeBody(t, resp, &list)
	if len(list) != 4 {
		t.Fatalf("expected 4 scjn aspirantes, got %d", len(list))
	}
	for _, a := range list {
		if a.OrganoSlug != "scjn" {
			t.Errorf("expected organo scjn, got %q", a.OrganoSlug)
		}
	}
}

func TestListAspirantes_InvalidFilters(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/?organo=nope&offset=-1")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body validationResponse
	decodeBody(t, resp, &body)
	if body.Error != "invalid filters" {
		t.Errorf("expected error \"invalid filters\", got %q", body.Error)
	}
	fields := map[string]bool{}
	for _, fe := range body.Fields {
		fields[fe.Field] = true
	}
	if !fields["organo"] || !fields["offset"] {
		t.Errorf("expected organo and offset attributed, got %v", fields)
	}
}

func TestSearchAspirantes(t *testing.T) {
	server := setupTestServer(t)

	body := `{"genero":"Femenino","organo":"scjn","limit":10}`
	resp, err := http.Post(server.URL+"/search", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list []Aspirante
	decodeBody(t, resp, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 female scjn aspirantes, got %d", len(list))
	}
}

func TestSearchAspirantes_BadBody(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Post(server.URL+"/search", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", resp.StatusCode)
	}
}

func TestSearchAspirantes_InvalidFilters(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Post(server.URL+"/search", "application/json",
		strings.NewReader(`{"materia":"mercantil"}`))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body validationResponse
	decodeBody(t, resp, &body)
	if len(body.Fields) != 1 || body.Fields[0].Field != "materia" {
		t.Errorf("expected one materia field error, got %v", body.Fields)
	}
}

func TestCountAspirantes(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/count")
	if err != nil {
		t.Fatalf("GET /count: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]int
	decodeBody(t, resp, &body)
	if body["total"] != 7 {
		t.Errorf("expected total 7, got %d", body["total"])
	}
}

func TestGetAspirante(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/maria-perez-rios")
	if err != nil {
		t.Fatalf("GET /{slug}: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var a Aspirante
	decodeBody(t, resp, &a)
	if a.Nombre != "María Pérez Ríos" {
		t.Errorf("expected María Pérez Ríos, got %q", a.Nombre)
	}
	if a.Cargo == "" || a.Color.Name == "" {
		t.Errorf("expected enriched fields on the detail response, got %+v", a)
	}
}

func TestGetAspirante_NotFound(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/no-such-aspirante")
	if err != nil {
		t.Fatalf("GET /{slug}: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "aspirante not found" {
		t.Errorf("expected not-found error body, got %v", body)
	}
}

func TestFilterStates(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/filtros?organo=tepjf")
	if err != nil {
		t.Fatalf("GET /filtros: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var states map[Control]DisplayState
	decodeBody(t, resp, &states)

	if !states[ControlSala].Visible {
		t.Error("expected sala control visible under tepjf")
	}
	if states[ControlCircuito].Visible {
		t.Error("expected circuito control hidden under tepjf")
	}
	titulo := states[ControlTitulo]
	if !titulo.Disabled || titulo.Value != "magistrado" {
		t.Errorf("expected titulo locked to magistrado, got %+v", titulo)
	}
}

func TestFilterStates_InvalidSelection(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/filtros?sala=inventada")
	if err != nil {
		t.Fatalf("GET /filtros: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown sala, got %d", resp.StatusCode)
	}
}
