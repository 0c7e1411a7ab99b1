package chart

import (
	"fmt"
	"sort"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/dataset"
)

// Ranking graph geometry.
const (
	rankingW      = 1000
	rankingH      = 600
	rankingLeft   = 70.0
	rankingRight  = 130.0 // 범례 공간
	rankingTop    = 40.0
	rankingBottom = 60.0
	rankingSlots  = 10 // y축 순위 눈금 1..10
)

// RankingGraph renders the league ranking line chart: one line per team over
// the season months, rank 1 topmost. Writes static/image/ranking_graph.png.
func (r *Renderer) RankingGraph(series dataset.SeasonSeries) error {
	if len(series.Labels) == 0 || len(series.Teams) == 0 {
		return nil // 데이터 없으면 조용히 스킵
	}

	dc := gg.NewContext(rankingW, rankingH)
	clearOpaque(dc)
	r.applyFont(dc, 16)

	plotW := float64(rankingW) - rankingLeft - rankingRight
	plotH := float64(rankingH) - rankingTop - rankingBottom

	xAt := func(i int) float64 {
		if len(series.Labels) == 1 {
			return rankingLeft + plotW/2
		}
		return rankingLeft + plotW*float64(i)/float64(len(series.Labels)-1)
	}
	// y축 반전: 1위가 맨 위 (ylim 10.5 → 0.5와 동일한 매핑)
	yAt := func(rank float64) float64 {
		return rankingTop + plotH*(rank-0.5)/rankingSlots
	}

	// Dashed grid.
	dc.SetLineWidth(1)
	dc.SetRGBA(0.6, 0.6, 0.6, 0.6)
	dc.SetDash(4, 4)
	for rank := 1; rank <= rankingSlots; rank++ {
		y := yAt(float64(rank))
		dc.DrawLine(rankingLeft, y, rankingLeft+plotW, y)
		dc.Stroke()
	}
	for i := range series.Labels {
		x := xAt(i)
		dc.DrawLine(x, rankingTop, x, rankingTop+plotH)
		dc.Stroke()
	}
	dc.SetDash()

	// Axis tick labels.
	dc.SetHexColor(colorInk)
	for rank := 1; rank <= rankingSlots; rank++ {
		dc.DrawStringAnchored(fmt.Sprintf("%d위", rank), rankingLeft-12, yAt(float64(rank)), 1, 0.5)
	}
	for i, label := range series.Labels {
		dc.DrawStringAnchored(label, xAt(i), rankingTop+plotH+22, 0.5, 0.5)
	}

	// Team lines, drawn in a deterministic order.
	names := make([]string, 0, len(series.Teams))
	for name := range series.Teams {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ranks := series.Teams[name]
		if len(ranks) != len(series.Labels) {
			r.log.WithField("team", name).Warn("순위 시리즈 길이가 라벨과 다름, 건너뜀")
			continue
		}
		dc.SetHexColor(teamColor(name))
		dc.SetLineWidth(2)
		for i := 1; i < len(ranks); i++ {
			dc.DrawLine(xAt(i-1), yAt(float64(ranks[i-1])), xAt(i), yAt(float64(ranks[i])))
			dc.Stroke()
		}
		for i, rank := range ranks {
			dc.DrawCircle(xAt(i), yAt(float64(rank)), 4)
			dc.Fill()
		}
	}

	// Legend.
	legendX := rankingLeft + plotW + 18
	for i, name := range names {
		y := rankingTop + 14 + float64(i)*26
		dc.SetHexColor(teamColor(name))
		dc.DrawLine(legendX, y, legendX+22, y)
		dc.SetLineWidth(3)
		dc.Stroke()
		dc.DrawCircle(legendX+11, y, 4)
		dc.Fill()
		dc.SetHexColor(colorInk)
		dc.DrawStringAnchored(name, legendX+30, y, 0, 0.5)
	}

	return r.save(dc, r.catalog.Ranking())
}
