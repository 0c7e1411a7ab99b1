package chart

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
)

// Radar axes in fixed order with their Korean labels.
var radarAxes = []struct {
	category string
	label    string
}{
	{"Batting", "타격"},
	{"Baserunning", "주루"},
	{"Defense", "수비"},
	{"Starter", "선발"},
	{"Reliever", "구원"},
}

// Radar geometry. The plotting region is capped at 100 normalised units;
// value and axis labels sit outside it (120/138 units) so they never overlap
// the polygon.
const (
	radarSize      = 600
	radarUnit      = 1.9 // 정규화 단위당 픽셀
	radarValueDist = 120.0
	radarLabelDist = 138.0
)

// TeamRadar renders a team's five-axis WAA pentagon, normalised 0..100
// against the cohort bounds. Writes static/image/radar/radar_{team}.png with
// a transparent background.
func (r *Renderer) TeamRadar(team dataset.TeamRecord, bounds map[string]metric.Bounds) error {
	dc := gg.NewContext(radarSize, radarSize)
	clearTransparent(dc)
	r.applyFont(dc, 15)

	cx, cy := float64(radarSize)/2, float64(radarSize)/2
	n := len(radarAxes)

	angleAt := func(i int) float64 {
		// 첫 축이 12시 방향, 시계 방향 진행
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	pointAt := func(i int, dist float64) (float64, float64) {
		a := angleAt(i)
		return cx + dist*radarUnit*math.Cos(a), cy + dist*radarUnit*math.Sin(a)
	}

	// Guide rings and spokes.
	dc.SetRGBA(0.6, 0.6, 0.6, 0.5)
	dc.SetLineWidth(1)
	for _, level := range []float64{20, 40, 60, 80, 100} {
		dc.DrawCircle(cx, cy, level*radarUnit)
		dc.Stroke()
	}
	for i := 0; i < n; i++ {
		x, y := pointAt(i, 100)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}

	// Normalised polygon.
	values := make([]float64, n)
	raws := make([]float64, n)
	for i, axis := range radarAxes {
		raw := team.WAA(axis.category)
		raws[i] = raw
		values[i] = bounds[axis.category].Normalize(raw)
	}

	for i := 0; i < n; i++ {
		x, y := pointAt(i, values[i])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetHexColor(colorNavy + "33") // 20% 투명 채움
	dc.FillPreserve()
	dc.SetHexColor(colorNavy)
	dc.SetLineWidth(2)
	dc.Stroke()

	// Raw values (bold, team navy) and axis names (grey) outside the rings.
	for i, axis := range radarAxes {
		vx, vy := pointAt(i, radarValueDist)
		r.applyFont(dc, 19)
		dc.SetHexColor(colorNavy)
		drawTextBold(dc, formatNumber(raws[i]), vx, vy, 0.5, 0.5)

		lx, ly := pointAt(i, radarLabelDist)
		r.applyFont(dc, 15)
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored(axis.label, lx, ly, 0.5, 0.5)
	}

	return r.save(dc, r.catalog.Radar(team.Name))
}
