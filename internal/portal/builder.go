// Package portal ties the dataset, metric kernel and renderer together: the
// startup build of cohort-wide artifacts and the read facade behind the HTTP
// layer.
package portal

import (
	"github.com/wonny/kbostats/internal/chart"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
	"github.com/wonny/kbostats/pkg/logger"
)

// Builder materialises the cohort-wide artifacts at process start: ranking
// graph, all radars, all WAA tables, all head-to-head tables. Team- and
// player-scoped artifacts are rendered lazily by the facade.
// ⭐ SSOT: 기동 시 일괄 렌더링 순서는 여기서만
type Builder struct {
	store  *dataset.Store
	render *chart.Renderer
	log    *logger.Logger
}

// NewBuilder creates a startup builder.
func NewBuilder(store *dataset.Store, render *chart.Renderer, log *logger.Logger) *Builder {
	return &Builder{store: store, render: render, log: log}
}

// BuildAll runs the four cohort-wide render passes in order. Each pass is
// independently fault-tolerant: a failure is logged and the next pass runs.
func (b *Builder) BuildAll() {
	if err := b.render.RankingGraph(dataset.Season2025()); err != nil {
		b.log.WithError(err).Error("순위 그래프 생성 실패")
	}

	teams := b.store.GetAllTeams()
	bounds := WAABounds(teams)

	for _, team := range teams {
		if err := b.render.TeamRadar(team, bounds); err != nil {
			b.log.WithError(err).WithField("team", team.Name).Error("레이더 차트 생성 실패")
		}
	}

	for _, team := range teams {
		if err := b.render.WAATable(team); err != nil {
			b.log.WithError(err).WithField("team", team.Name).Error("WAA 표 생성 실패")
		}
	}

	for team, records := range b.store.GetHeadToHead() {
		for _, rec := range records {
			// 자기 자신과의 기록은 센티널, 건너뜀
			if rec.Opponent == team {
				continue
			}
			if err := b.render.HeadToHeadTable(team, rec); err != nil {
				b.log.WithError(err).WithFields(map[string]interface{}{
					"team":     team,
					"opponent": rec.Opponent,
				}).Error("상대 전적 표 생성 실패")
			}
		}
	}

	b.log.Info("Cohort-wide artifacts built")
}

// WAABounds computes per-category cohort min/max across all teams, the
// explicit summary the radar renderer needs.
func WAABounds(teams map[string]dataset.TeamRecord) map[string]metric.Bounds {
	bounds := make(map[string]metric.Bounds, len(dataset.WAACategories))
	for _, cat := range dataset.WAACategories {
		values := make([]float64, 0, len(teams))
		for _, team := range teams {
			values = append(values, team.WAA(cat))
		}
		bounds[cat] = metric.BoundsOf(values)
	}
	return bounds
}
