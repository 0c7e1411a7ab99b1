package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
	"github.com/wonny/kbostats/internal/portal"
	"github.com/wonny/kbostats/pkg/logger"
)

// PageHandler renders the portal's HTML pages
// ⭐ SSOT: 페이지 핸들러는 이 구조체에서만
type PageHandler struct {
	portal *portal.Portal
	tmpl   *template.Template
	logger *logger.Logger
}

// NewPageHandler parses the template set and creates the page handler
func NewPageHandler(p *portal.Portal, templatesDir string, log *logger.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &PageHandler{portal: p, tmpl: tmpl, logger: log}, nil
}

// render executes a template; failures surface as 500 (페이지 단위 오류)
func (h *PageHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.WithError(err).WithField("template", name).Error("Template render failed")
	}
}

// Ranking renders the landing page: ranking table plus the season graph
// GET /
func (h *PageHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", map[string]interface{}{
		"Teams": h.portal.ListRanking(),
	})
}

// Analysis renders the team analysis hub with the team selector
// GET /analysis
func (h *PageHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	h.render(w, "analysis.html", map[string]interface{}{
		"TeamNames": h.portal.TeamNames(),
	})
}

// PlayerCompare renders the two-player comparison page
// GET /player_compare
func (h *PageHandler) PlayerCompare(w http.ResponseWriter, r *http.Request) {
	h.render(w, "player_compare.html", map[string]interface{}{
		"TeamNames": h.portal.TeamNames(),
	})
}

// teamDetailData carries everything the team page shows
type teamDetailData struct {
	Team    dataset.TeamRecord
	Players []dataset.PlayerRecord
	Pyth    metric.PythSummary
	HasMap  bool
}

// TeamDetail renders a team's analysis page, rendering its scoped artifacts
// on the way
// GET /team/{name}
func (h *PageHandler) TeamDetail(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	team, players, pyth, ok := h.portal.TeamDetail(name)
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "팀 데이터를 찾을 수 없습니다.")
		return
	}

	h.render(w, "team_detail.html", teamDetailData{
		Team:    team,
		Players: players,
		Pyth:    pyth,
		HasMap:  team.Latitude != 0 && team.Longitude != 0,
	})
}

// PlayerDetail renders a player's page, rendering the chart trio on the way
// GET /player/{id}
func (h *PageHandler) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "선수 정보를 찾을 수 없습니다.")
		return
	}

	player, symbol, ok := h.portal.PlayerDetail(id)
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "선수 정보를 찾을 수 없습니다.")
		return
	}

	h.render(w, "player_detail.html", map[string]interface{}{
		"Player":     player,
		"TeamSymbol": symbol,
	})
}
