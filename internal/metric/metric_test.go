package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPythagoreanPCT(t *testing.T) {
	tests := []struct {
		name     string
		r, ra    float64
		expected float64
	}{
		{"winning run differential", 750, 600, 0.6007},
		{"even runs", 650, 650, 0.5},
		{"losing run differential", 600, 750, 0.3993},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PythagoreanPCT(tt.r, tt.ra), 0.0005)
		})
	}
}

func TestPythagoreanPCT_ZeroRuns(t *testing.T) {
	// 시즌 개막 전: 득점과 실점이 모두 0
	assert.Equal(t, 0.0, PythagoreanPCT(0, 0))
}

func TestPythagorean_LuckCommentary(t *testing.T) {
	tests := []struct {
		name   string
		r, ra  float64
		actual float64
		label  string
	}{
		// expected ≈ 0.6007
		{"very lucky", 750, 600, 0.65, "운이 매우 좋음 (접전 승리 다수)"},
		{"slightly lucky", 750, 600, 0.61, "약간의 행운"},
		{"honest", 750, 600, 0.60, "정직한 성적"},
		{"unlucky", 750, 600, 0.55, "불운 (성적 반등 가능성)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Pythagorean(tt.r, tt.ra, tt.actual)
			assert.Equal(t, tt.label, sum.Label)
			assert.NotEmpty(t, sum.Desc)
			assert.Equal(t, tt.actual, sum.Actual)
		})
	}
}

func TestPythagorean_ExactlyExpected(t *testing.T) {
	// diff가 정확히 0이면 "정직한 성적" 밴드
	sum := Pythagorean(650, 650, 0.5)
	assert.Equal(t, "정직한 성적", sum.Label)
}

func TestBounds_Normalize(t *testing.T) {
	b := BoundsOf([]float64{-2, 0, 3})

	assert.Equal(t, -2.0, b.Min)
	assert.Equal(t, 3.0, b.Max)
	assert.InDelta(t, 0, b.Normalize(-2), 1e-9)
	assert.InDelta(t, 40, b.Normalize(0), 1e-9)
	assert.InDelta(t, 100, b.Normalize(3), 1e-9)
}

func TestBounds_Degenerate(t *testing.T) {
	// 전 팀이 동일한 값이면 중앙 고정
	b := BoundsOf([]float64{1, 1, 1})
	assert.Equal(t, 50.0, b.Normalize(1))
}

func TestBoundsOf_Empty(t *testing.T) {
	b := BoundsOf(nil)
	assert.Equal(t, Bounds{}, b)
}

func TestFormatMargin(t *testing.T) {
	tests := []struct {
		margin   float64
		expected string
	}{
		{0.73, "+0.73"},
		{0, "+0.00"},
		{-0.41, "-0.41"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMargin(tt.margin))
	}
}

func TestRunMargin(t *testing.T) {
	assert.InDelta(t, 0.52, RunMargin(5.21, 4.69), 1e-9)
}

func TestOffensiveBars(t *testing.T) {
	stats := map[string]float64{
		"wRC+": 150, "OPS": 0.9, "SLG": 0.5, "OBP": 0.4, "AVG": 0.333,
	}
	bars := OffensiveBars(func(key string) float64 { return stats[key] })

	assert.Len(t, bars, 5)
	assert.Equal(t, "wRC+", bars[0].Key)
	assert.Equal(t, "타율", bars[4].Label)
	assert.InDelta(t, 0.75, bars[0].Ratio, 1e-3)  // 150/200
	assert.InDelta(t, 0.75, bars[1].Ratio, 1e-3)  // 0.9/1.2
	assert.InDelta(t, 0.625, bars[2].Ratio, 1e-3) // 0.5/0.8
	assert.InDelta(t, 0.667, bars[3].Ratio, 1e-3) // 0.4/0.6
	assert.InDelta(t, 0.666, bars[4].Ratio, 1e-3) // 0.333/0.5

	labels := []string{"150", "0.900", "0.500", "0.400", "0.333"}
	for i, b := range bars {
		assert.Equal(t, labels[i], b.FormatRaw())
	}
}

func TestOffensiveBars_Clamped(t *testing.T) {
	bars := OffensiveBars(func(key string) float64 {
		if key == "wRC+" {
			return 250 // 상한 200 초과
		}
		return -1 // 음수는 0으로
	})

	assert.Equal(t, 1.0, bars[0].Ratio)
	for _, b := range bars[1:] {
		assert.Equal(t, 0.0, b.Ratio)
	}
}

func TestOffensiveBar_FormatRaw(t *testing.T) {
	assert.Equal(t, "150", OffensiveBar{Key: "wRC+", Raw: 150.4}.FormatRaw())
	assert.Equal(t, "0.312", OffensiveBar{Key: "AVG", Raw: 0.312}.FormatRaw())
}
