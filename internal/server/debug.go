package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine"
	"github.com/damn090909-boop/Simple-Game/internal/infrastructure/storage"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
	"github.com/damn090909-boop/Simple-Game/pkg/api"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

// DebugHandler exposes the internal state of the session. Every read runs
// on the frame loop through Runner.Do.
type DebugHandler struct {
	Runner    *engine.Runner
	Snapshots *storage.SnapshotService
}

func NewDebugHandler(r *engine.Runner, snapshots *storage.SnapshotService) *DebugHandler {
	return &DebugHandler{Runner: r, Snapshots: snapshots}
}

// RegisterRoutes registers the debug endpoints.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/grid", h.handleGrid)
	mux.HandleFunc("/debug/walkable", h.handleWalkable)
	mux.HandleFunc("/debug/path", h.handlePath)
	mux.HandleFunc("/debug/session", h.handleSession)
	mux.HandleFunc("/debug/snapshot", h.handleSnapshot)
}

// GridDump is the answer of /debug/grid.
type GridDump struct {
	MapID string       `json:"mapId"`
	Grid  api.GridMeta `json:"grid"`
	Rows  []string     `json:"rows"`
}

// /debug/grid - the active grid rendered as text rows
func (h *DebugHandler) handleGrid(w http.ResponseWriter, r *http.Request) {
	var dump GridDump
	err := h.Runner.Do(r.Context(), func(g *engine.Game) {
		grid := g.Grid()
		dump = GridDump{
			MapID: string(g.MapID()),
			Grid:  api.GridMeta{Width: grid.Width(), Height: grid.Height(), Version: grid.Version()},
			Rows:  engine.RenderRows(grid),
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, dump)
}

// WalkableView is the answer of /debug/walkable.
type WalkableView struct {
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Walkable bool   `json:"walkable"`
	Terrain  string `json:"terrain"`
}

// /debug/walkable?col=3&row=4 - walkability of one cell
func (h *DebugHandler) handleWalkable(w http.ResponseWriter, r *http.Request) {
	col, err := strconv.Atoi(r.URL.Query().Get("col"))
	if err != nil {
		http.Error(w, "col must be an integer", http.StatusBadRequest)
		return
	}
	row, err := strconv.Atoi(r.URL.Query().Get("row"))
	if err != nil {
		http.Error(w, "row must be an integer", http.StatusBadRequest)
		return
	}

	view := WalkableView{Col: col, Row: row, Terrain: "out-of-bounds"}
	err = h.Runner.Do(r.Context(), func(g *engine.Game) {
		view.Walkable = g.Grid().IsWalkable(col, row)
		if code, ok := g.Grid().Cell(col, row); ok {
			view.Terrain = code.String()
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, view)
}

// /debug/path?from=5,5&to=8,5 - shortest path over the active grid
func (h *DebugHandler) handlePath(w http.ResponseWriter, r *http.Request) {
	from, err := domain.ParseGridPos(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := domain.ParseGridPos(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		path    domain.Path
		findErr error
	)
	err = h.Runner.Do(r.Context(), func(g *engine.Game) {
		path, findErr = systems.FindPath(g.Grid(), from, to)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if findErr != nil && !errors.Is(findErr, domain.ErrNoPath) {
		http.Error(w, findErr.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, engine.NewPathView(from, to, path, findErr == nil))
}

// /debug/session - everything a client would render
func (h *DebugHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	var view *api.SessionView
	if err := h.Runner.Do(r.Context(), func(g *engine.Game) { view = g.BuildState() }); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, view)
}

// /debug/snapshot (POST) - save the active grid to the snapshot directory
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.Snapshots == nil {
		http.Error(w, "snapshots disabled", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}

	var snap *storage.Snapshot
	if err := h.Runner.Do(r.Context(), func(g *engine.Game) { snap = g.Snapshot() }); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	path, err := h.Snapshots.Save(snap)
	if err != nil {
		logger.Log.WithError(err).Error("snapshot save failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"path": path})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Local debug pages are served from another origin
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug response write failed")
	}
}
