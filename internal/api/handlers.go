package api

import (
	"encoding/json"
	"net/http"

	"awsranges/internal/filter"
	"awsranges/internal/log"
	"awsranges/internal/ranges"
)

// Handler manages all API endpoints.
type Handler struct {
	store     *DocumentStore
	rangesURL string
}

// NewHandler creates a new API handler serving documents from the given
// store, refreshing them from rangesURL.
func NewHandler(store *DocumentStore, rangesURL string) *Handler {
	return &Handler{
		store:     store,
		rangesURL: rangesURL,
	}
}

// GetPrefixes runs the filtering pipeline over the loaded document. Repeated
// "filter" query parameters are applied in order, exactly like CLI arguments.
func (h *Handler) GetPrefixes(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Get()
	if doc == nil {
		WriteServiceError(w, "ranges document is not loaded")
		return
	}

	entries, err := doc.Consolidate()
	if err != nil {
		WriteServiceError(w, err.Error())
		return
	}
	ranges.SortByNetwork(entries)

	keywords, addresses := filter.ParseTerms(r.URL.Query()["filter"])
	for _, term := range keywords {
		entries = filter.Apply(entries, term)
	}
	if len(addresses) > 0 {
		entries = filter.MatchAddresses(entries, addresses)
	}

	response := PrefixesResponse{
		Serial:   doc.SyncToken,
		Count:    len(entries),
		Prefixes: make([]PrefixEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Prefixes = append(response.Prefixes, PrefixEntry{
			Network:  entry.Network,
			Region:   entry.Region,
			Services: entry.Services,
		})
	}

	writeJSON(w, response)
}

// GetSerial returns the serial of the loaded document.
func (h *Handler) GetSerial(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Get()
	if doc == nil {
		WriteServiceError(w, "ranges document is not loaded")
		return
	}

	writeJSON(w, SerialResponse{Serial: doc.SyncToken})
}

// Refresh re-fetches the document from its source.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	doc, err := ranges.Fetch(h.rangesURL)
	if err != nil {
		log.Errorf("Failed to refresh ranges document: %v", err)
		WriteServiceError(w, err.Error())
		return
	}

	h.store.Set(doc)
	log.Infof("Ranges document refreshed, serial %s, %d prefixes", doc.SyncToken, len(doc.Prefixes))

	writeJSON(w, RefreshResponse{Serial: doc.SyncToken, Prefixes: len(doc.Prefixes)})
}

// CheckHealth is the liveness probe.
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
