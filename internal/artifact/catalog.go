// Package artifact owns the filesystem convention for rendered artifacts.
// One logical identity maps to exactly one path; regeneration overwrites in
// place and nothing here ever deletes.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Catalog maps logical artifact identities to paths under the static root.
// ⭐ SSOT: 생성 파일 경로 규칙은 이 타입에서만
type Catalog struct {
	root string // static 트리 루트
}

// NewCatalog creates a catalog rooted at the static directory.
func NewCatalog(root string) *Catalog {
	return &Catalog{root: root}
}

// Root returns the static root the catalog is anchored at.
func (c *Catalog) Root() string { return c.root }

// Ranking is the league ranking line chart.
func (c *Catalog) Ranking() string {
	return filepath.Join(c.root, "image", "ranking_graph.png")
}

// Radar is a team's WAA pentagon chart.
func (c *Catalog) Radar(team string) string {
	return filepath.Join(c.root, "image", "radar", fmt.Sprintf("radar_%s.png", team))
}

// WAATable is a team's WAA breakdown table image.
func (c *Catalog) WAATable(team string) string {
	return filepath.Join(c.root, "image", "table", fmt.Sprintf("table_%s.png", team))
}

// HeadToHead is the single-row record table for one ordered matchup.
func (c *Catalog) HeadToHead(team, opponent string) string {
	return filepath.Join(c.root, "image", "record", fmt.Sprintf("record_%s_vs_%s.png", team, opponent))
}

// RunsChart is a team's scored-vs-allowed bar chart.
func (c *Catalog) RunsChart(team string) string {
	return filepath.Join(c.root, "image", "team_chart", fmt.Sprintf("runs_chart_%s.png", team))
}

// Pythagorean is a team's expected-vs-actual winning percentage chart.
func (c *Catalog) Pythagorean(team string) string {
	return filepath.Join(c.root, "image", "team_chart", fmt.Sprintf("pythagorean_%s.png", team))
}

// PlayerWAR is a player's WAR donut chart.
func (c *Catalog) PlayerWAR(id int) string {
	return filepath.Join(c.root, "image", "player_chart", fmt.Sprintf("war_chart_%d.png", id))
}

// PlayerOffensive is a player's offensive ratio bar chart.
func (c *Catalog) PlayerOffensive(id int) string {
	return filepath.Join(c.root, "image", "player_chart", fmt.Sprintf("offensive_chart_%d.png", id))
}

// PlayerDetail is a player's batting detail line chart.
func (c *Catalog) PlayerDetail(id int) string {
	return filepath.Join(c.root, "image", "player_chart", fmt.Sprintf("detail_chart_%d.png", id))
}

// ComparisonName is the bare comparison chart filename handed to the HTTP
// layer (the route serves it from the comparison directory).
func (c *Catalog) ComparisonName(p1, p2 int) string {
	return fmt.Sprintf("compare_%d_vs_%d.png", p1, p2)
}

// Comparison is the two-player comparison chart path.
func (c *Catalog) Comparison(p1, p2 int) string {
	return filepath.Join(c.root, "image", "comparison", c.ComparisonName(p1, p2))
}

// StadiumMap is a team's stadium map HTML document.
func (c *Catalog) StadiumMap(team string) string {
	return filepath.Join(c.root, "maps", fmt.Sprintf("map_%s.html", team))
}

// Ensure creates the artifact's parent directory. Idempotent.
func (c *Catalog) Ensure(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure artifact dir: %w", err)
	}
	return nil
}
