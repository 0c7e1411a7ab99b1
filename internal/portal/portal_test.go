package portal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/kbostats/internal/artifact"
	"github.com/wonny/kbostats/internal/chart"
	"github.com/wonny/kbostats/internal/dataset"
	"github.com/wonny/kbostats/internal/metric"
	"github.com/wonny/kbostats/pkg/logger"
)

const teamFixture = `{
  "LG": [{
    "Rank": 1, "W": 87, "L": 55, "D": 2, "PCT": 0.613,
    "R": 750, "-R": 600, "R/G": 5.21, "-R/G": 4.17,
    "Latitude": 37.5122, "Longitude": 127.0719,
    "Stadium": "잠실야구장", "Symbol": "image/symbol/LG.png",
    "Batting_WAA": 3.1, "Batting_Rank": 1,
    "Baserunning_WAA": 0.4, "Baserunning_Rank": 3,
    "Defense_WAA": 1.2, "Defense_Rank": 2,
    "Starter_WAA": 2.0, "Starter_Rank": 1,
    "Reliever_WAA": -0.5, "Reliever_Rank": 6
  }],
  "키움": [{
    "Rank": 10, "W": 58, "L": 86, "D": 0, "PCT": 0.403,
    "R": 610, "-R": 780, "R/G": 4.24, "-R/G": 5.42,
    "Stadium": "고척스카이돔", "Symbol": "image/symbol/키움.png",
    "Batting_WAA": -2.8, "Batting_Rank": 10,
    "Baserunning_WAA": -0.2, "Baserunning_Rank": 7,
    "Defense_WAA": -1.1, "Defense_Rank": 9,
    "Starter_WAA": -1.9, "Starter_Rank": 10,
    "Reliever_WAA": -0.9, "Reliever_Rank": 8
  }]
}`

const comparisonFixture = `{
  "LG": [
    {"Opponent": "LG", "W": "-", "D": "-", "L": "-", "Winning_PCT": "-"},
    {"Opponent": "키움", "W": 11, "D": 1, "L": 4, "Winning_PCT": 0.733}
  ],
  "키움": [
    {"Opponent": "LG", "W": 4, "D": 1, "L": 11, "Winning_PCT": 0.267},
    {"Opponent": "키움", "W": "-", "D": "-", "L": "-", "Winning_PCT": "-"}
  ]
}`

const playerFixture = `{
  "LG": [
    {"Id": 1001, "Name": "김민수", "Team": "LG", "Pos.": "CF",
     "WAR": 5.2, "oWAR": 3.9, "dWAR": 1.3,
     "AVG": 0.321, "OBP": 0.402, "SLG": 0.523, "OPS": 0.925, "wRC+": 151.2,
     "H": 162, "R": 98, "RBI": 81, "BB": 64, "SO": 88,
     "2B": 28, "HR": 22, "3B": 4, "SB": 18},
    {"Id": 1002, "Name": "이도윤", "Team": "LG", "Pos.": "C",
     "WAR": 2.1, "oWAR": 1.2, "dWAR": 0.9,
     "AVG": 0.255, "OBP": 0.330, "SLG": 0.390, "OPS": 0.720, "wRC+": 92.0,
     "H": 101, "R": 44, "RBI": 52, "BB": 38, "SO": 75,
     "2B": 17, "HR": 9, "3B": 1, "SB": 2}
  ]
}`

// newFixture wires a store, renderer and catalog over one temp static tree.
func newFixture(t *testing.T) (*dataset.Store, *chart.Renderer, string) {
	t.Helper()
	staticDir := t.TempDir()
	dataDir := filepath.Join(staticDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	files := map[string]string{
		"kbo_team_data.json":       teamFixture,
		"kbo_team_comparison.json": comparisonFixture,
		"kbo_player_data.json":     playerFixture,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(body), 0o644))
	}

	store := dataset.New(dataDir, logger.Discard())
	render := chart.New(artifact.NewCatalog(staticDir), logger.Discard())
	return store, render, staticDir
}

func TestBuilder_BuildAll(t *testing.T) {
	store, render, _ := newFixture(t)
	NewBuilder(store, render, logger.Discard()).BuildAll()

	c := render.Catalog()
	for _, path := range []string{
		c.Ranking(),
		c.Radar("LG"), c.Radar("키움"),
		c.WAATable("LG"), c.WAATable("키움"),
		c.HeadToHead("LG", "키움"), c.HeadToHead("키움", "LG"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "missing artifact: %s", path)
	}

	// 자기 자신 센티널 행은 렌더링하지 않음
	_, err := os.Stat(c.HeadToHead("LG", "LG"))
	assert.True(t, os.IsNotExist(err))
}

func TestWAABounds(t *testing.T) {
	store, _, _ := newFixture(t)

	bounds := WAABounds(store.GetAllTeams())
	require.Len(t, bounds, len(dataset.WAACategories))

	b := bounds["Batting"]
	assert.Equal(t, -2.8, b.Min)
	assert.Equal(t, 3.1, b.Max)
}

func TestPortal_TeamDetail(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	team, players, pyth, ok := p.TeamDetail("LG")
	require.True(t, ok)

	assert.Equal(t, "LG", team.Name)
	require.Len(t, players, 2)
	assert.Equal(t, 1001, players[0].ID(), "WAR 내림차순")

	// 피타고리안 기대 승률과 실제 승률이 함께 반환됨
	assert.InDelta(t, metric.PythagoreanPCT(750, 600), pyth.Expected, 1e-9)
	assert.Equal(t, 0.613, pyth.Actual)
	assert.NotEmpty(t, pyth.Label)

	// 팀 범위 아티팩트가 지연 렌더링됨
	c := render.Catalog()
	for _, path := range []string{
		c.StadiumMap("LG"), c.RunsChart("LG"), c.Pythagorean("LG"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "missing artifact: %s", path)
	}
}

func TestPortal_TeamDetail_NoCoordinates(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	// 키움은 좌표가 없으므로 지도는 만들지 않음
	_, _, _, ok := p.TeamDetail("키움")
	require.True(t, ok)

	_, err := os.Stat(render.Catalog().StadiumMap("키움"))
	assert.True(t, os.IsNotExist(err))
}

func TestPortal_TeamDetail_Unknown(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	_, _, _, ok := p.TeamDetail("없는팀")
	assert.False(t, ok)
}

func TestPortal_PlayerDetail(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	player, symbol, ok := p.PlayerDetail(1001)
	require.True(t, ok)
	assert.Equal(t, "김민수", player.Name())
	assert.Equal(t, "image/symbol/LG.png", symbol)

	c := render.Catalog()
	for _, path := range []string{
		c.PlayerWAR(1001), c.PlayerOffensive(1001), c.PlayerDetail(1001),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "missing artifact: %s", path)
	}

	_, _, ok = p.PlayerDetail(9999)
	assert.False(t, ok)
}

func TestPortal_PlayerAPI(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	player, ok := p.PlayerAPI(1001)
	require.True(t, ok)
	assert.Equal(t, "image/symbol/LG.png", player["TeamSymbol"])

	_, ok = p.PlayerAPI(9999)
	assert.False(t, ok)
}

func TestPortal_PlayerCompareArtifact(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	name, ok := p.PlayerCompareArtifact(1001, 1002)
	require.True(t, ok)
	assert.Equal(t, "compare_1001_vs_1002.png", name)

	_, err := os.Stat(p.ComparisonPath(1001, 1002))
	assert.NoError(t, err)

	_, ok = p.PlayerCompareArtifact(1001, 9999)
	assert.False(t, ok)
}

func TestPortal_TeamNames(t *testing.T) {
	store, render, _ := newFixture(t)
	p := NewPortal(store, render, logger.Discard())

	assert.Equal(t, []string{"LG", "키움"}, p.TeamNames())
}
