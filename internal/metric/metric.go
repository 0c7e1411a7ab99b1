// Package metric holds the pure numerical kernels behind the charts: cohort
// normalisation, Pythagorean expectation, luck commentary, offensive ratio
// scaling and run margins. Nothing here touches the filesystem.
package metric

import (
	"fmt"
	"math"
)

// pythExponent is the Pythagorean exponent calibrated for KBO run environments.
const pythExponent = 1.83

// Bounds is the observed min/max of one metric across the team cohort.
type Bounds struct {
	Min float64
	Max float64
}

// BoundsOf computes cohort bounds over a value set.
func BoundsOf(values []float64) Bounds {
	if len(values) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

// Normalize rescales v into 0..100 against the cohort bounds.
// 모든 팀이 같은 값이면 중앙(50) 고정
func (b Bounds) Normalize(v float64) float64 {
	if b.Max == b.Min {
		return 50
	}
	return (v - b.Min) / (b.Max - b.Min) * 100
}

// PythagoreanPCT returns the expected winning percentage from runs scored and
// allowed: R^1.83 / (R^1.83 + RA^1.83). Zero runs on both sides yields 0.
func PythagoreanPCT(r, ra float64) float64 {
	if r+ra == 0 {
		return 0
	}
	rp := math.Pow(r, pythExponent)
	rap := math.Pow(ra, pythExponent)
	return rp / (rp + rap)
}

// PythSummary pairs the expected winning percentage with the luck commentary
// shown under the chart.
type PythSummary struct {
	Expected float64
	Actual   float64
	Label    string
	Desc     string
}

// Pythagorean computes the expected PCT and classifies actual-vs-expected
// into the four commentary bands.
func Pythagorean(r, ra, actualPCT float64) PythSummary {
	expected := PythagoreanPCT(r, ra)
	label, desc := luckCommentary(actualPCT - expected)
	return PythSummary{
		Expected: expected,
		Actual:   actualPCT,
		Label:    label,
		Desc:     desc,
	}
}

// luckCommentary maps the actual−expected delta onto the fixed bands.
// 경계: +0.02 / 0 / −0.02
func luckCommentary(diff float64) (label, desc string) {
	switch {
	case diff > 0.02:
		return "운이 매우 좋음 (접전 승리 다수)",
			"실력보다 더 좋은 성적을 거뒀습니다. 불펜이 강하거나 운이 따랐을 가능성이 높습니다."
	case diff > 0:
		return "약간의 행운", "기대치보다 조금 더 많이 이겼습니다."
	case diff > -0.02:
		return "정직한 성적", "득실점 능력만큼 딱 그만큼의 성적을 거뒀습니다."
	default:
		return "불운 (성적 반등 가능성)",
			"전력에 비해 승리를 챙기지 못했습니다. 다음 시즌엔 성적이 오를 가능성이 큽니다."
	}
}

// RunMargin is per-game runs scored minus per-game runs allowed.
func RunMargin(scoredPerGame, allowedPerGame float64) float64 {
	return scoredPerGame - allowedPerGame
}

// FormatMargin renders a margin with a leading sign and two decimals.
func FormatMargin(m float64) string {
	if m >= 0 {
		return fmt.Sprintf("+%.2f", m)
	}
	return fmt.Sprintf("%.2f", m)
}

// OffensiveBar is one row of the offensive horizontal-bar chart.
type OffensiveBar struct {
	Key   string  // 스탯 키 (문서 필드명)
	Label string  // 차트 라벨
	Raw   float64 // 실제 값
	Ratio float64 // 기준치 대비 막대 길이 (0..1)
}

// offensiveCeilings are the fixed reference ceilings each stat is scaled
// against. Chosen for visual balance, not league calibration.
var offensiveCeilings = []struct {
	key   string
	label string
	limit float64
}{
	{"wRC+", "wRC+", 200},
	{"OPS", "OPS", 1.2},
	{"SLG", "장타율", 0.8},
	{"OBP", "출루율", 0.6},
	{"AVG", "타율", 0.5},
}

// OffensiveBars scales the five offensive stats against their ceilings,
// clamped to 1.0. value reports a stat by document key, 0 when absent.
func OffensiveBars(value func(key string) float64) []OffensiveBar {
	bars := make([]OffensiveBar, 0, len(offensiveCeilings))
	for _, c := range offensiveCeilings {
		raw := value(c.key)
		ratio := raw / c.limit
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		bars = append(bars, OffensiveBar{Key: c.key, Label: c.label, Raw: raw, Ratio: ratio})
	}
	return bars
}

// FormatRaw renders the bar's raw value: wRC+ as an integer, the rate stats
// to three decimals.
func (b OffensiveBar) FormatRaw() string {
	if b.Key == "wRC+" {
		return fmt.Sprintf("%.0f", b.Raw)
	}
	return fmt.Sprintf("%.3f", b.Raw)
}
