package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wonny/kbostats/pkg/logger"
)

// Document file names under the data directory. Field names inside are part
// of the contract with the renderers and the JSON API.
const (
	teamDataFile   = "kbo_team_data.json"
	comparisonFile = "kbo_team_comparison.json"
	playerDataFile = "kbo_player_data.json"
)

// warSentinel orders players with missing or non-numeric WAR last.
const warSentinel = -99

// Store is the read-only provider over the three KBO JSON documents.
// 파일은 호출 시마다 다시 읽는다 (캐시 없음, 문서가 곧 진실)
// ⭐ SSOT: 데이터 파일 접근은 이 타입을 통해서만
type Store struct {
	dir string // static/data
	log *logger.Logger
}

// New creates a store over the given data directory.
func New(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// ListTeams returns the ranking-page summary rows sorted by rank ascending.
// Missing or unparsable documents degrade to an empty list.
func (s *Store) ListTeams() []TeamSummary {
	teams, err := s.readTeams()
	if err != nil {
		s.log.WithError(err).Error("팀 데이터 로드 실패")
		return []TeamSummary{}
	}

	list := make([]TeamSummary, 0, len(teams))
	for name, rec := range teams {
		list = append(list, TeamSummary{
			Name: name,
			Rank: rec.Rank,
			W:    rec.W,
			L:    rec.L,
			D:    rec.D,
			PCT:  rec.PCT,
		})
	}

	// 순위 기준 오름차순 (1위 -> 10위)
	sort.Slice(list, func(i, j int) bool { return list[i].Rank < list[j].Rank })
	return list
}

// GetTeam returns one team's record.
func (s *Store) GetTeam(name string) (TeamRecord, bool) {
	teams, err := s.readTeams()
	if err != nil {
		s.log.WithError(err).Error("팀 데이터 로드 실패")
		return TeamRecord{}, false
	}
	rec, ok := teams[name]
	return rec, ok
}

// GetAllTeams returns every team's record keyed by team name. Used by
// cohort-wide computations (radar normalisation, startup rendering).
func (s *Store) GetAllTeams() map[string]TeamRecord {
	teams, err := s.readTeams()
	if err != nil {
		s.log.WithError(err).Error("팀 데이터 로드 실패")
		return map[string]TeamRecord{}
	}
	return teams
}

// GetHeadToHead returns the head-to-head matrix keyed by team name. The
// record where opponent equals team is a sentinel the renderer skips.
func (s *Store) GetHeadToHead() map[string][]HeadToHeadRecord {
	raw, err := os.ReadFile(filepath.Join(s.dir, comparisonFile))
	if err != nil {
		s.log.WithError(err).Error("상대 전적 데이터 로드 실패")
		return map[string][]HeadToHeadRecord{}
	}

	var doc map[string][]HeadToHeadRecord
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.WithError(err).Error("상대 전적 데이터 파싱 실패")
		return map[string][]HeadToHeadRecord{}
	}
	return doc
}

// GetPlayersOfTeam returns a team's players sorted by WAR descending.
// Unknown team degrades to an empty list.
func (s *Store) GetPlayersOfTeam(name string) []PlayerRecord {
	doc, err := s.readPlayers()
	if err != nil {
		s.log.WithError(err).Error("선수 데이터 로드 실패")
		return []PlayerRecord{}
	}

	players, ok := doc[name]
	if !ok {
		return []PlayerRecord{}
	}

	sorted := make([]PlayerRecord, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortWAR(sorted[i]) > sortWAR(sorted[j])
	})
	return sorted
}

// GetPlayer finds a player by id with a linear scan over all teams.
func (s *Store) GetPlayer(id int) (PlayerRecord, bool) {
	doc, err := s.readPlayers()
	if err != nil {
		s.log.WithError(err).Error("선수 데이터 로드 실패")
		return nil, false
	}

	for _, players := range doc {
		for _, p := range players {
			if p.ID() == id {
				return p, true
			}
		}
	}
	return nil, false
}

// GetTeamSymbol returns the team's symbol image path, empty when unknown.
func (s *Store) GetTeamSymbol(name string) string {
	rec, ok := s.GetTeam(name)
	if !ok {
		return ""
	}
	return rec.Symbol
}

// readTeams loads and unwraps the team document. Each team is stored as a
// single-element array; consumers index position 0 (load-bearing schema).
func (s *Store) readTeams() (map[string]TeamRecord, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, teamDataFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", teamDataFile, err)
	}

	var doc map[string][]TeamRecord
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", teamDataFile, err)
	}

	teams := make(map[string]TeamRecord, len(doc))
	for name, recs := range doc {
		if len(recs) == 0 {
			continue
		}
		rec := recs[0]
		rec.Name = name
		teams[name] = rec
	}
	return teams, nil
}

func (s *Store) readPlayers() (map[string][]PlayerRecord, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, playerDataFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", playerDataFile, err)
	}

	var doc map[string][]PlayerRecord
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", playerDataFile, err)
	}
	return doc, nil
}

func sortWAR(p PlayerRecord) float64 {
	if war, ok := p.WAR(); ok {
		return war
	}
	return warSentinel
}
