package api

import (
	"net/http"

	"github.com/newthinker/boxoffice/internal/api/response"
	"github.com/newthinker/boxoffice/internal/app"
)

// StatsProvider reports on the loaded dataset
type StatsProvider interface {
	Loaded() bool
	Stats() app.Stats
}

// DatasetHandler handles dataset info requests.
type DatasetHandler struct {
	provider StatsProvider
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(provider StatsProvider) *DatasetHandler {
	return &DatasetHandler{provider: provider}
}

// Get returns load statistics for the current dataset.
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"loaded": h.provider.Loaded(),
		"stats":  h.provider.Stats(),
	})
}
