package chart

import (
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/kbostats/internal/artifact"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
	"github.com/wonny/kbostats/pkg/logger"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return New(artifact.NewCatalog(t.TempDir()), logger.Discard())
}

// requirePNG asserts the artifact exists and decodes as a PNG.
func requirePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "artifact missing: %s", path)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err, "artifact is not a valid PNG: %s", path)
	assert.Positive(t, img.Bounds().Dx())
}

func testTeam() dataset.TeamRecord {
	return dataset.TeamRecord{
		Name: "LG", Rank: 1, W: 87, L: 55, D: 2, PCT: 0.613,
		Runs: 750, RunsAllowed: 600, RunsPerGame: 5.21, RunsAllowedPerGame: 4.17,
		Stadium: "잠실야구장", Latitude: 37.5122, Longitude: 127.0719,
		BattingWAA: 3.1, BattingRank: 1,
		BaserunningWAA: 0.4, BaserunningRank: 3,
		DefenseWAA: 1.2, DefenseRank: 2,
		StarterWAA: 2.0, StarterRank: 1,
		RelieverWAA: -0.5, RelieverRank: 6,
	}
}

func testPlayer(id int, war, owar float64) dataset.PlayerRecord {
	return dataset.PlayerRecord{
		"Id": float64(id), "Name": "김민수", "Team": "LG", "Pos.": "CF",
		"WAR": war, "oWAR": owar, "dWAR": war - owar,
		"AVG": 0.321, "OBP": 0.402, "SLG": 0.523, "OPS": 0.925, "wRC+": 151.2,
		"H": 162.0, "R": 98.0, "RBI": 81.0, "BB": 64.0, "SO": 88.0,
		"2B": 28.0, "HR": 22.0, "3B": 4.0, "SB": 18.0,
	}
}

func TestRankingGraph(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.RankingGraph(dataset.Season2025()))
	requirePNG(t, r.Catalog().Ranking())
}

func TestRankingGraph_EmptySeries(t *testing.T) {
	r := newTestRenderer(t)

	// 시리즈가 비어 있으면 파일을 만들지 않음
	require.NoError(t, r.RankingGraph(dataset.SeasonSeries{}))
	_, err := os.Stat(r.Catalog().Ranking())
	assert.True(t, os.IsNotExist(err))
}

func TestTeamRadar(t *testing.T) {
	r := newTestRenderer(t)
	team := testTeam()

	bounds := map[string]metric.Bounds{}
	for _, cat := range dataset.WAACategories {
		bounds[cat] = metric.Bounds{Min: -3, Max: 3.5}
	}

	require.NoError(t, r.TeamRadar(team, bounds))
	requirePNG(t, r.Catalog().Radar("LG"))
}

func TestWAATable(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.WAATable(testTeam()))
	requirePNG(t, r.Catalog().WAATable("LG"))
}

func TestHeadToHeadTable(t *testing.T) {
	r := newTestRenderer(t)

	rec := dataset.HeadToHeadRecord{
		Opponent: "키움", W: "11", D: "1", L: "4", WinningPCT: "0.733",
	}
	require.NoError(t, r.HeadToHeadTable("LG", rec))
	requirePNG(t, r.Catalog().HeadToHead("LG", "키움"))
}

func TestHeadToHeadTable_MalformedPCT(t *testing.T) {
	r := newTestRenderer(t)

	// 승률 파싱 불가("-")여도 렌더링은 성공해야 함
	rec := dataset.HeadToHeadRecord{
		Opponent: "KT", W: "8", D: "0", L: "8", WinningPCT: "-",
	}
	require.NoError(t, r.HeadToHeadTable("LG", rec))
	requirePNG(t, r.Catalog().HeadToHead("LG", "KT"))
}

func TestTeamRunsChart(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.TeamRunsChart(testTeam()))
	requirePNG(t, r.Catalog().RunsChart("LG"))
}

func TestPythagoreanChart(t *testing.T) {
	r := newTestRenderer(t)

	sum := metric.Pythagorean(750, 600, 0.613)
	require.NoError(t, r.PythagoreanChart("LG", sum))
	requirePNG(t, r.Catalog().Pythagorean("LG"))
}

func TestPlayerWARChart(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.PlayerWARChart(testPlayer(1001, 5.2, 3.9)))
	requirePNG(t, r.Catalog().PlayerWAR(1001))
}

func TestPlayerWARChart_ZeroContribution(t *testing.T) {
	r := newTestRenderer(t)

	// oWAR과 dWAR이 모두 0이면 회색 링으로 저하
	require.NoError(t, r.PlayerWARChart(testPlayer(1002, 0, 0)))
	requirePNG(t, r.Catalog().PlayerWAR(1002))
}

func TestPlayerOffensiveChart(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.PlayerOffensiveChart(testPlayer(1001, 5.2, 3.9)))
	requirePNG(t, r.Catalog().PlayerOffensive(1001))
}

func TestPlayerDetailChart(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.PlayerDetailChart(testPlayer(1001, 5.2, 3.9)))
	requirePNG(t, r.Catalog().PlayerDetail(1001))
}

func TestPlayerComparisonChart(t *testing.T) {
	r := newTestRenderer(t)

	name, err := r.PlayerComparisonChart(testPlayer(1001, 5.2, 3.9), testPlayer(1002, 3.1, 2.0))
	require.NoError(t, err)

	assert.Equal(t, "compare_1001_vs_1002.png", name)
	requirePNG(t, r.Catalog().Comparison(1001, 1002))
}

func TestStadiumMap(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.StadiumMap("LG", 37.5122, 127.0719, "잠실야구장"))

	f, err := os.Open(r.Catalog().StadiumMap("LG"))
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	// Leaflet 자산과 지도 컨테이너가 포함됨
	assert.Equal(t, 1, doc.Find("div#map").Length())
	leafletCSS := doc.Find(`link[href*="leaflet"]`).Length()
	assert.Equal(t, 1, leafletCSS)

	script := doc.Find("script").Last().Text()
	assert.Contains(t, script, "setView")
	assert.Contains(t, script, "37.5122")
	assert.True(t, strings.Contains(script, "bindPopup"))
	assert.True(t, strings.Contains(script, "bindTooltip"))
}
