package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/kbostats/internal/portal"
	"github.com/wonny/kbostats/pkg/logger"
)

// PlayerHandler serves the JSON endpoints and the on-demand comparison chart
// ⭐ SSOT: 선수 API 핸들러는 이 구조체에서만
type PlayerHandler struct {
	portal *portal.Portal
	logger *logger.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(p *portal.Portal, log *logger.Logger) *PlayerHandler {
	return &PlayerHandler{portal: p, logger: log}
}

// PlayerListItem is the roster dropdown's row shape; field names are part of
// the client contract.
type PlayerListItem struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
	Pos  string `json:"Pos"`
}

// ListByTeam returns a team's roster sorted by WAR descending
// GET /api/players/{team}
func (h *PlayerHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]

	players := h.portal.PlayersOfTeam(team)
	result := make([]PlayerListItem, 0, len(players))
	for _, p := range players {
		result = append(result, PlayerListItem{
			ID:   p.ID(),
			Name: p.Name(),
			Pos:  p.Position(),
		})
	}

	respondJSON(w, http.StatusOK, result)
}

// Get returns a player's full stat line with the team symbol added
// GET /api/player/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	player, ok := h.portal.PlayerAPI(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// ComparePlot renders the two-player comparison chart and serves the PNG
// GET /plot/compare/{p1}/{p2}
func (h *PlayerHandler) ComparePlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	p1, err1 := strconv.Atoi(vars["p1"])
	p2, err2 := strconv.Atoi(vars["p2"])
	if err1 != nil || err2 != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Error"))
		return
	}

	if _, ok := h.portal.PlayerCompareArtifact(p1, p2); !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Error"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, h.portal.ComparisonPath(p1, p2))
}
