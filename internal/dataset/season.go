package dataset

// SeasonSeries is the month-by-month rank history drawn on the main page line
// chart. All rank sequences share the label sequence's length.
type SeasonSeries struct {
	Labels []string
	Teams  map[string][]int
}

// Season2025 returns the fixed 2025 season rank history.
// ⭐ SSOT: 시즌 순위 변동 데이터는 여기서만
func Season2025() SeasonSeries {
	return SeasonSeries{
		Labels: []string{"3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월"},
		Teams: map[string][]int{
			"LG":   {1, 1, 1, 2, 2, 1, 1, 1},
			"한화": {7, 3, 2, 1, 1, 2, 2, 2},
			"SSG":  {2, 7, 6, 5, 4, 3, 3, 3},
			"삼성": {2, 2, 5, 7, 7, 5, 4, 4},
			"NC":   {6, 9, 8, 8, 8, 7, 5, 5},
			"KT":   {4, 5, 4, 6, 5, 6, 6, 6},
			"롯데": {9, 4, 3, 3, 3, 4, 7, 7},
			"KIA":  {7, 6, 7, 4, 6, 8, 8, 8},
			"두산": {10, 8, 9, 9, 9, 9, 9, 9},
			"키움": {5, 10, 10, 10, 10, 10, 10, 10},
		},
	}
}
