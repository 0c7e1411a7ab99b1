package dataset

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TeamRecord is one team's season line from kbo_team_data.json.
// JSON tags mirror the document field names verbatim; the document stores each
// team as a single-element array and the store unwraps element 0.
// ⭐ SSOT: 팀 데이터 스키마는 이 구조체에서만
type TeamRecord struct {
	Name string `json:"-"` // 감싸는 맵의 키, 로드 시 주입

	Rank int     `json:"Rank"`
	W    int     `json:"W"`
	L    int     `json:"L"`
	D    int     `json:"D"`
	PCT  float64 `json:"PCT"`

	Runs               float64 `json:"R"`
	RunsAllowed        float64 `json:"-R"`
	RunsPerGame        float64 `json:"R/G"`
	RunsAllowedPerGame float64 `json:"-R/G"`

	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
	Stadium   string  `json:"Stadium"`
	Symbol    string  `json:"Symbol"`

	BattingWAA      float64 `json:"Batting_WAA"`
	BattingRank     int     `json:"Batting_Rank"`
	BaserunningWAA  float64 `json:"Baserunning_WAA"`
	BaserunningRank int     `json:"Baserunning_Rank"`
	DefenseWAA      float64 `json:"Defense_WAA"`
	DefenseRank     int     `json:"Defense_Rank"`
	StarterWAA      float64 `json:"Starter_WAA"`
	StarterRank     int     `json:"Starter_Rank"`
	RelieverWAA     float64 `json:"Reliever_WAA"`
	RelieverRank    int     `json:"Reliever_Rank"`
}

// WAACategories lists the five WAA categories in fixed render order.
var WAACategories = []string{"Batting", "Baserunning", "Defense", "Starter", "Reliever"}

// WAA returns the WAA value for one of the five categories.
func (t TeamRecord) WAA(category string) float64 {
	switch category {
	case "Batting":
		return t.BattingWAA
	case "Baserunning":
		return t.BaserunningWAA
	case "Defense":
		return t.DefenseWAA
	case "Starter":
		return t.StarterWAA
	case "Reliever":
		return t.RelieverWAA
	}
	return 0
}

// WAARank returns the league rank for one of the five categories.
func (t TeamRecord) WAARank(category string) int {
	switch category {
	case "Batting":
		return t.BattingRank
	case "Baserunning":
		return t.BaserunningRank
	case "Defense":
		return t.DefenseRank
	case "Starter":
		return t.StarterRank
	case "Reliever":
		return t.RelieverRank
	}
	return 0
}

// TeamSummary carries the columns shown on the main ranking page.
type TeamSummary struct {
	Name string  `json:"name"`
	Rank int     `json:"rank"`
	W    int     `json:"w"`
	L    int     `json:"l"`
	D    int     `json:"d"`
	PCT  float64 `json:"pct"`
}

// HeadToHeadRecord is one (team, opponent) line from kbo_team_comparison.json.
// W/D/L/Winning_PCT arrive as numbers or strings depending on the scrape run,
// so they are carried as tolerant scalars and parsed at render time.
type HeadToHeadRecord struct {
	Opponent   string `json:"Opponent"`
	W          Flex   `json:"W"`
	D          Flex   `json:"D"`
	L          Flex   `json:"L"`
	WinningPCT Flex   `json:"Winning_PCT"`
}

// Flex is a JSON scalar that may arrive as a number or a string.
type Flex string

// UnmarshalJSON accepts both forms and keeps the textual value.
func (f *Flex) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	*f = Flex(b)
	return nil
}

func (f Flex) String() string { return string(f) }

// Float parses the scalar as a float.
func (f Flex) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
}

// PlayerRecord is one player's stat line from kbo_player_data.json.
// The document carries an open-ended set of scalar stats that the API must
// pass through verbatim, so the record keeps every field and exposes typed
// accessors for the handful the renderers need.
type PlayerRecord map[string]interface{}

// ID returns the globally unique player id, 0 if absent.
func (p PlayerRecord) ID() int {
	v, _ := p.Number("Id")
	return int(v)
}

// Name returns the player name.
func (p PlayerRecord) Name() string { return p.Text("Name") }

// Team returns the team name, a key into the team document.
func (p PlayerRecord) Team() string { return p.Text("Team") }

// Position returns the fielding position ("Pos." in the document).
func (p PlayerRecord) Position() string { return p.Text("Pos.") }

// WAR returns the player's WAR and whether it was present and numeric.
// 정렬 시 ok=false는 꼴찌(-99 센티널) 취급
func (p PlayerRecord) WAR() (float64, bool) {
	return p.Number("WAR")
}

// Float returns a numeric stat, 0 when missing or unparsable.
func (p PlayerRecord) Float(key string) float64 {
	v, _ := p.Number(key)
	return v
}

// Number returns a numeric stat with an ok flag. String values are coerced
// best-effort.
func (p PlayerRecord) Number(key string) (float64, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// Text returns a string stat, best-effort.
func (p PlayerRecord) Text(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

// Raw renders a stat the way the document spells it, for verbatim display.
func (p PlayerRecord) Raw(key string) string { return p.Text(key) }

// WithSymbol returns a copy of the record with the TeamSymbol field added,
// the shape served by /api/player/{id}.
func (p PlayerRecord) WithSymbol(symbol string) PlayerRecord {
	out := make(PlayerRecord, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out["TeamSymbol"] = symbol
	return out
}
