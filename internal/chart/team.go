package chart

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
)

// TeamRunsChart renders the per-game scored-vs-allowed bars with the signed
// run margin as the title. Writes
// static/image/team_chart/runs_chart_{team}.png with a transparent
// background.
func (r *Renderer) TeamRunsChart(team dataset.TeamRecord) error {
	const (
		runsW    = 500
		runsH    = 600
		plotTop  = 110.0
		baseline = 520.0
		barW     = 95.0
	)

	scored := team.RunsPerGame
	allowed := team.RunsAllowedPerGame

	dc := gg.NewContext(runsW, runsH)
	clearTransparent(dc)

	// 제목: 득실 마진 (마이너스면 빨강, 플러스면 파랑)
	margin := metric.RunMargin(scored, allowed)
	titleColor := colorBlue
	if margin < 0 {
		titleColor = colorRed
	}
	r.applyFont(dc, 22)
	dc.SetHexColor(titleColor)
	drawTextBold(dc, "득실 마진: "+metric.FormatMargin(margin), float64(runsW)/2, 50, 0.5, 0.5)

	maxV := scored
	if allowed > maxV {
		maxV = allowed
	}
	if maxV <= 0 {
		maxV = 1
	}

	bars := []struct {
		label string
		value float64
		color string
	}{
		{"평균 득점", scored, colorBlue},
		{"평균 실점", allowed, colorGreyBarC},
	}

	for i, b := range bars {
		cx := float64(runsW) * (0.3 + 0.4*float64(i))
		h := (b.value / (maxV * 1.15)) * (baseline - plotTop)
		dc.SetHexColor(b.color)
		dc.DrawRectangle(cx-barW/2, baseline-h, barW, h)
		dc.Fill()

		// 막대 위 수치 (막대 색 그대로, 크고 진하게)
		r.applyFont(dc, 26)
		drawTextBold(dc, formatNumber(b.value), cx, baseline-h-22, 0.5, 0.5)

		r.applyFont(dc, 18)
		dc.SetHexColor(colorInk)
		dc.DrawStringAnchored(b.label, cx, baseline+28, 0.5, 0.5)
	}

	return r.save(dc, r.catalog.RunsChart(team.Name))
}

// PythagoreanChart renders the expected-vs-actual winning percentage bars
// from the already-computed summary. The caller owns the pure computation
// (metric.Pythagorean) and reuses the same triple for the HTML layer.
// Writes static/image/team_chart/pythagorean_{team}.png.
func (r *Renderer) PythagoreanChart(team string, sum metric.PythSummary) error {
	const (
		pythW     = 600
		pythH     = 300
		labelArea = 120.0
		barH      = 46.0
		barSpan   = 400.0 // 승률 1.0의 막대 길이
	)

	dc := gg.NewContext(pythW, pythH)
	clearTransparent(dc)

	bars := []struct {
		label string
		value float64
		color string
	}{
		{"기대 승률", sum.Expected, colorGreyBarA},
		{"실제 승률", sum.Actual, colorMaroon},
	}

	for i, b := range bars {
		y := 70 + float64(i)*100
		r.applyFont(dc, 17)
		dc.SetHexColor(colorInk)
		drawTextBold(dc, b.label, labelArea-14, y+barH/2, 1, 0.5)

		v := b.value
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		dc.SetHexColor(b.color)
		dc.DrawRectangle(labelArea, y, barSpan*v, barH)
		dc.Fill()

		dc.SetHexColor(colorInk)
		drawTextBold(dc, fmt.Sprintf("%.3f", b.value), labelArea+barSpan*v+12, y+barH/2, 0, 0.5)
	}

	return r.save(dc, r.catalog.Pythagorean(team))
}
