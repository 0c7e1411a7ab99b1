package chart

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
)

// PlayerWARChart renders the oWAR/dWAR donut with the total WAR in the hole.
// Zero contribution on both sides degrades to a plain grey ring with no
// labels. Writes static/image/player_chart/war_chart_{id}.png.
func (r *Renderer) PlayerWARChart(p dataset.PlayerRecord) error {
	const (
		donutSize = 300
		outerR    = 110.0
		innerR    = 66.0 // 도넛 두께 = 0.4 * outerR
	)

	dc := gg.NewContext(donutSize, donutSize)
	clearTransparent(dc)

	cx, cy := float64(donutSize)/2, float64(donutSize)/2
	oWAR := math.Abs(p.Float("oWAR"))
	dWAR := math.Abs(p.Float("dWAR"))
	total := oWAR + dWAR

	if total == 0 {
		// 기여도 없음: 라벨 없는 회색 링
		dc.SetHexColor(colorRing)
		dc.SetLineWidth(outerR - innerR)
		dc.DrawCircle(cx, cy, (outerR+innerR)/2)
		dc.Stroke()
	} else {
		wedges := []struct {
			frac  float64
			color string
			label string
		}{
			{oWAR / total, colorRed, "공격"},
			{dWAR / total, colorBlue, "수비"},
		}

		start := -math.Pi / 2 // 12시 방향에서 시작
		for _, w := range wedges {
			if w.frac == 0 {
				continue
			}
			end := start + 2*math.Pi*w.frac
			dc.MoveTo(cx+outerR*math.Cos(start), cy+outerR*math.Sin(start))
			dc.DrawArc(cx, cy, outerR, start, end)
			dc.LineTo(cx+innerR*math.Cos(end), cy+innerR*math.Sin(end))
			dc.DrawArc(cx, cy, innerR, end, start)
			dc.ClosePath()
			dc.SetHexColor(w.color)
			dc.FillPreserve()
			dc.SetRGB(1, 1, 1) // 흰 경계선
			dc.SetLineWidth(2)
			dc.Stroke()

			// 라벨은 쐐기 중앙각 바깥쪽에
			mid := (start + end) / 2
			r.applyFont(dc, 15)
			dc.SetHexColor(colorInk)
			dc.DrawStringAnchored(w.label, cx+132*math.Cos(mid), cy+132*math.Sin(mid), 0.5, 0.5)

			start = end
		}
	}

	// 가운데 구멍: 총 WAR (문서 표기 그대로)
	r.applyFont(dc, 14)
	dc.SetHexColor(colorInk)
	drawTextBold(dc, "총 기여도", cx, cy-20, 0.5, 0.5)
	drawTextBold(dc, "(WAR)", cx, cy, 0.5, 0.5)
	drawTextBold(dc, p.Raw("WAR"), cx, cy+20, 0.5, 0.5)

	return r.save(dc, r.catalog.PlayerWAR(p.ID()))
}

// PlayerOffensiveChart renders the five ratio-scaled offensive bars (wRC+,
// OPS, 장타율, 출루율, 타율, top to bottom). Writes
// static/image/player_chart/offensive_chart_{id}.png.
func (r *Renderer) PlayerOffensiveChart(p dataset.PlayerRecord) error {
	const (
		offW      = 600
		offH      = 400
		labelArea = 120.0
		barSpan   = 400.0 // 비율 1.0의 막대 길이
		barH      = 44.0
		rowGap    = 72.0
	)

	dc := gg.NewContext(offW, offH)
	clearTransparent(dc)

	bars := metric.OffensiveBars(p.Float)
	// 상위 두 지표만 강조색
	colors := []string{colorBlue, colorRed, colorMuted, colorMuted, colorMuted}

	for i, b := range bars {
		y := 36 + float64(i)*rowGap

		r.applyFont(dc, 18)
		dc.SetHexColor(colorInk)
		drawTextBold(dc, b.Label, labelArea-14, y+barH/2, 1, 0.5)

		dc.SetHexColor(colors[i])
		dc.DrawRectangle(labelArea, y, barSpan*b.Ratio, barH)
		dc.Fill()

		r.applyFont(dc, 16)
		dc.SetHexColor(colorNavy)
		drawTextBold(dc, b.FormatRaw(), labelArea+barSpan*b.Ratio+12, y+barH/2, 0, 0.5)
	}

	return r.save(dc, r.catalog.PlayerOffensive(p.ID()))
}

// Detail chart categories in fixed order with Korean labels.
var detailStats = []struct {
	key   string
	label string
}{
	{"H", "안타"},
	{"R", "득점"},
	{"RBI", "타점"},
	{"BB", "볼넷"},
	{"SO", "삼진"},
	{"2B", "2루타"},
	{"HR", "홈런"},
	{"3B", "3루타"},
}

// PlayerDetailChart renders the eight-category batting detail line with a
// lightly filled area. Writes static/image/player_chart/detail_chart_{id}.png.
func (r *Renderer) PlayerDetailChart(p dataset.PlayerRecord) error {
	const (
		detW    = 1000
		detH    = 400
		left    = 50.0
		right   = 50.0
		top     = 50.0
		bottom  = 60.0
		markerR = 5.0
	)

	dc := gg.NewContext(detW, detH)
	clearTransparent(dc)

	values := make([]float64, len(detailStats))
	maxV := 0.0
	for i, s := range detailStats {
		values[i] = p.Float(s.key)
		if values[i] > maxV {
			maxV = values[i]
		}
	}
	// y축 상한 = 최대값의 1.2배 (텍스트 잘림 방지)
	ceiling := maxV * 1.2
	if ceiling <= 0 {
		ceiling = 1
	}

	plotW := float64(detW) - left - right
	plotH := float64(detH) - top - bottom
	baseline := top + plotH

	xAt := func(i int) float64 {
		return left + plotW*float64(i)/float64(len(detailStats)-1)
	}
	yAt := func(v float64) float64 {
		return baseline - plotH*(v/ceiling)
	}

	// 채움 영역 (10% 투명)
	dc.MoveTo(xAt(0), baseline)
	for i, v := range values {
		dc.LineTo(xAt(i), yAt(v))
	}
	dc.LineTo(xAt(len(values)-1), baseline)
	dc.ClosePath()
	dc.SetHexColor(colorNavy + "1a")
	dc.Fill()

	// 선과 마커
	dc.SetHexColor(colorNavy)
	dc.SetLineWidth(2)
	for i := 1; i < len(values); i++ {
		dc.DrawLine(xAt(i-1), yAt(values[i-1]), xAt(i), yAt(values[i]))
		dc.Stroke()
	}
	for i, v := range values {
		dc.DrawCircle(xAt(i), yAt(v), markerR)
		dc.Fill()
	}

	// 수치와 카테고리 라벨
	for i, s := range detailStats {
		r.applyFont(dc, 15)
		dc.SetHexColor(colorInk)
		drawTextBold(dc, formatNumber(values[i]), xAt(i), yAt(values[i])-16, 0.5, 0.5)

		dc.DrawStringAnchored(s.label, xAt(i), baseline+24, 0.5, 0.5)
	}

	return r.save(dc, r.catalog.PlayerDetail(p.ID()))
}

// Comparison stats in fixed order; AVG renders to three decimals, the rest
// as integers.
var comparisonStats = []struct {
	key     string
	label   string
	isFloat bool
}{
	{"AVG", "타율", true},
	{"HR", "홈런", false},
	{"RBI", "타점", false},
	{"SB", "도루", false},
	{"H", "안타", false},
}

// PlayerComparisonChart renders the grouped two-player stat bars and returns
// the artifact's bare filename for the HTTP layer. Writes
// static/image/comparison/compare_{p1}_vs_{p2}.png.
func (r *Renderer) PlayerComparisonChart(p1, p2 dataset.PlayerRecord) (string, error) {
	const (
		cmpW     = 800
		cmpH     = 500
		top      = 60.0
		baseline = 420.0
		barW     = 52.0
		barGap   = 6.0
	)

	dc := gg.NewContext(cmpW, cmpH)
	clearTransparent(dc)

	maxV := 1.0
	v1 := make([]float64, len(comparisonStats))
	v2 := make([]float64, len(comparisonStats))
	for i, s := range comparisonStats {
		v1[i] = p1.Float(s.key)
		v2[i] = p2.Float(s.key)
		if v1[i] > maxV {
			maxV = v1[i]
		}
		if v2[i] > maxV {
			maxV = v2[i]
		}
	}

	format := func(i int, v float64) string {
		if comparisonStats[i].isFloat {
			return fmt.Sprintf("%.3f", v)
		}
		return fmt.Sprintf("%d", int(v))
	}

	for i, s := range comparisonStats {
		center := float64(cmpW) * (float64(i) + 0.5) / float64(len(comparisonStats))

		pairs := []struct {
			value float64
			color string
			x     float64
		}{
			{v1[i], colorNavy, center - barW - barGap/2},
			{v2[i], colorMaroon, center + barGap/2},
		}
		for _, b := range pairs {
			h := (b.value / (maxV * 1.15)) * (baseline - top)
			dc.SetHexColor(b.color)
			dc.DrawRectangle(b.x, baseline-h, barW, h)
			dc.Fill()

			r.applyFont(dc, 13)
			dc.SetHexColor(colorInk)
			drawTextBold(dc, format(i, b.value), b.x+barW/2, baseline-h-12, 0.5, 0.5)
		}

		r.applyFont(dc, 17)
		dc.SetHexColor(colorInk)
		drawTextBold(dc, s.label, center, baseline+26, 0.5, 0.5)
	}

	// 범례: 선수 이름
	legend := []struct {
		name  string
		color string
	}{
		{p1.Name(), colorNavy},
		{p2.Name(), colorMaroon},
	}
	lx := float64(cmpW) - 190
	for i, l := range legend {
		y := 24 + float64(i)*26
		dc.SetHexColor(l.color)
		dc.DrawRectangle(lx, y-7, 14, 14)
		dc.Fill()
		r.applyFont(dc, 15)
		dc.SetHexColor(colorInk)
		dc.DrawStringAnchored(l.name, lx+22, y, 0, 0.5)
	}

	name := r.catalog.ComparisonName(p1.ID(), p2.ID())
	if err := r.save(dc, r.catalog.Comparison(p1.ID(), p2.ID())); err != nil {
		return "", err
	}
	return name, nil
}
