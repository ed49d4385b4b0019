// Package sitemap renders the sharded sitemap and the sitemap index
// for the aspirante profile pages. Consumers of the candidate store
// read only slug and lastModified here.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JudicaturaAbierta/aspirantes-api/internal/aspirantes"
)

// DefaultPageSize is the number of profile URLs per sitemap shard.
const DefaultPageSize = 100

// Source is the slice of the candidate store the sitemap needs.
type Source interface {
	Query(params aspirantes.QueryParams) []aspirantes.Aspirante
	Count() int
}

// Handler serves /sitemap-index.xml and /sitemap/{id}.xml.
type Handler struct {
	source   Source
	baseURL  string
	pageSize int
}

// NewHandler builds a sitemap handler. baseURL and pageSize fall back
// to BASE_URL / SITEMAP_PAGE_SIZE from the environment, then to
// defaults.
func NewHandler(source Source, baseURL string, pageSize int) *Handler {
	if baseURL == "" {
		baseURL = os.Getenv("BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:5050"
	}
	if pageSize <= 0 {
		pageSize, _ = strconv.Atoi(os.Getenv("SITEMAP_PAGE_SIZE"))
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Handler{source: source, baseURL: baseURL, pageSize: pageSize}
}

// Shards returns how many sitemap shards the dataset needs:
// ceil(total / pageSize).
func (h *Handler) Shards() int {
	return (h.source.Count() + h.pageSize - 1) / h.pageSize
}

type sitemapRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Index serves the sitemap index referencing every shard.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	index := sitemapIndex{Xmlns: sitemapNS}
	for id := 0; id < h.Shards(); id++ {
		index.Sitemaps = append(index.Sitemaps, sitemapRef{
			Loc:     fmt.Sprintf("%s/sitemap/%d.xml", h.baseURL, id),
			LastMod: now,
		})
	}
	h.writeXML(w, index)
}

// Shard serves one sitemap shard: the profile URLs for one page of the
// unfiltered listing.
func (h *Handler) Shard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 || id >= h.Shards() {
		http.Error(w, "sitemap not found", http.StatusNotFound)
		return
	}

	page := h.source.Query(aspirantes.QueryParams{
		Offset: id * h.pageSize,
		Limit:  h.pageSize,
	})

	set := urlSet{Xmlns: sitemapNS}
	for _, a := range page {
		set.URLs = append(set.URLs, urlEntry{
			Loc:     fmt.Sprintf("%s/aspirantes/%s", h.baseURL, a.Slug),
			LastMod: a.LastModified.UTC().Format(time.RFC3339),
		})
	}
	h.writeXML(w, set)
}

func (h *Handler) writeXML(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/xml")
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[sitemap] encode failed: %v", err)
	}
}
