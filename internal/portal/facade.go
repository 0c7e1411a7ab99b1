package portal

import (
	"github.com/wonny/kbostats/internal/chart"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
	"github.com/wonny/kbostats/pkg/logger"
)

// Portal is the thin read surface behind the HTTP layer. Detail queries
// lazily render their scoped artifacts before returning, so a page never
// references an image that was not at least attempted.
// ⭐ SSOT: 조회 + 지연 렌더링 결합은 이 타입에서만
type Portal struct {
	store  *dataset.Store
	render *chart.Renderer
	log    *logger.Logger
}

// NewPortal creates the query facade.
func NewPortal(store *dataset.Store, render *chart.Renderer, log *logger.Logger) *Portal {
	return &Portal{store: store, render: render, log: log}
}

// ListRanking returns the ranking-page rows, rank ascending.
func (p *Portal) ListRanking() []dataset.TeamSummary {
	return p.store.ListTeams()
}

// TeamNames returns the team names in ranking order, for the compare pages.
func (p *Portal) TeamNames() []string {
	list := p.store.ListTeams()
	names := make([]string, 0, len(list))
	for _, t := range list {
		names = append(names, t.Name)
	}
	return names
}

// TeamDetail returns a team's record, its players sorted by WAR descending
// and the Pythagorean summary. As a side effect it renders the team-scoped
// artifacts (stadium map, runs chart, Pythagorean chart); render failures
// degrade to a page with a missing image, never an error.
func (p *Portal) TeamDetail(name string) (dataset.TeamRecord, []dataset.PlayerRecord, metric.PythSummary, bool) {
	team, ok := p.store.GetTeam(name)
	if !ok {
		return dataset.TeamRecord{}, nil, metric.PythSummary{}, false
	}

	players := p.store.GetPlayersOfTeam(name)

	if team.Latitude != 0 && team.Longitude != 0 {
		if err := p.render.StadiumMap(name, team.Latitude, team.Longitude, team.Stadium); err != nil {
			p.log.WithError(err).WithField("team", name).Error("홈구장 지도 생성 실패")
		}
	}

	if err := p.render.TeamRunsChart(team); err != nil {
		p.log.WithError(err).WithField("team", name).Error("득실점 그래프 생성 실패")
	}

	// 순수 계산과 렌더링 분리: 같은 triple을 차트와 HTML 양쪽에 전달
	sum := metric.Pythagorean(team.Runs, team.RunsAllowed, team.PCT)
	if err := p.render.PythagoreanChart(name, sum); err != nil {
		p.log.WithError(err).WithField("team", name).Error("피타고리안 차트 생성 실패")
	}

	return team, players, sum, true
}

// PlayersOfTeam returns a team's players sorted by WAR descending.
func (p *Portal) PlayersOfTeam(name string) []dataset.PlayerRecord {
	return p.store.GetPlayersOfTeam(name)
}

// PlayerDetail returns a player and their team's symbol path, rendering the
// three player-scoped charts on the way.
func (p *Portal) PlayerDetail(id int) (dataset.PlayerRecord, string, bool) {
	player, ok := p.store.GetPlayer(id)
	if !ok {
		return nil, "", false
	}

	if err := p.render.PlayerWARChart(player); err != nil {
		p.log.WithError(err).WithField("player", id).Error("WAR 도넛 생성 실패")
	}
	if err := p.render.PlayerOffensiveChart(player); err != nil {
		p.log.WithError(err).WithField("player", id).Error("공격 지표 차트 생성 실패")
	}
	if err := p.render.PlayerDetailChart(player); err != nil {
		p.log.WithError(err).WithField("player", id).Error("세부 기록 차트 생성 실패")
	}

	return player, p.store.GetTeamSymbol(player.Team()), true
}

// PlayerAPI returns the player's full stat line with the TeamSymbol field
// added, the exact shape served by /api/player/{id}.
func (p *Portal) PlayerAPI(id int) (dataset.PlayerRecord, bool) {
	player, ok := p.store.GetPlayer(id)
	if !ok {
		return nil, false
	}
	return player.WithSymbol(p.store.GetTeamSymbol(player.Team())), true
}

// PlayerCompareArtifact renders the two-player comparison chart on demand
// and returns its bare filename. ok=false when either player is unknown.
func (p *Portal) PlayerCompareArtifact(p1id, p2id int) (string, bool) {
	p1, ok1 := p.store.GetPlayer(p1id)
	p2, ok2 := p.store.GetPlayer(p2id)
	if !ok1 || !ok2 {
		return "", false
	}

	name, err := p.render.PlayerComparisonChart(p1, p2)
	if err != nil {
		p.log.WithError(err).WithFields(map[string]interface{}{
			"p1": p1id,
			"p2": p2id,
		}).Error("선수 비교 차트 생성 실패")
		return "", false
	}
	return name, true
}

// ComparisonPath resolves a comparison filename to its on-disk path.
func (p *Portal) ComparisonPath(p1id, p2id int) string {
	return p.render.Catalog().Comparison(p1id, p2id)
}
