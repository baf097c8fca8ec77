package services

import (
	"time"

	"ballotbox/internal/db"
	"ballotbox/internal/utils"
)

// CandidateTally is one row of an election's result table.
type CandidateTally struct {
	CandidateID   uint   `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	TotalVotes    int    `json:"total_votes"`
}

// ElectionStats groups the tallies of one election. A slice keeps election
// order stable, unlike a map keyed by title.
type ElectionStats struct {
	ElectionID    uint             `json:"election_id"`
	ElectionTitle string           `json:"election_title"`
	Candidates    []CandidateTally `json:"candidates"`
}

const statsCacheKey = "election_statistics"
const statsCacheTTL = 30 * time.Second

// ComputeStatistics builds per-candidate vote tallies for every election.
// Every candidate of every election appears, with zero votes when nobody
// voted for them; ordering is by election id then candidate id. Results
// are cached briefly; any write that changes tallies invalidates.
func ComputeStatistics() ([]ElectionStats, error) {
	if cached := utils.GetCache().Get(statsCacheKey); cached != nil {
		if stats, ok := cached.([]ElectionStats); ok {
			return stats, nil
		}
	}

	var rows []struct {
		ElectionID    uint
		ElectionTitle string
		CandidateID   uint
		CandidateName string
		TotalVotes    int
	}
	err := db.DB.Raw(`
		SELECT e.id AS election_id,
		       e.title AS election_title,
		       c.id AS candidate_id,
		       u.username AS candidate_name,
		       COUNT(v.id) AS total_votes
		FROM elections e
		JOIN candidates c ON c.election_id = e.id
		JOIN users u ON u.id = c.user_id
		LEFT JOIN votes v ON v.candidate_id = c.id
		GROUP BY e.id, e.title, c.id, u.username
		ORDER BY e.id ASC, c.id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var stats []ElectionStats
	for _, row := range rows {
		tally := CandidateTally{
			CandidateID:   row.CandidateID,
			CandidateName: row.CandidateName,
			TotalVotes:    row.TotalVotes,
		}
		if n := len(stats); n > 0 && stats[n-1].ElectionID == row.ElectionID {
			stats[n-1].Candidates = append(stats[n-1].Candidates, tally)
			continue
		}
		stats = append(stats, ElectionStats{
			ElectionID:    row.ElectionID,
			ElectionTitle: row.ElectionTitle,
			Candidates:    []CandidateTally{tally},
		})
	}

	utils.GetCache().Set(statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}

// FindElectionStats picks one election's tallies out of a statistics set
// by title. The second return is false when the title is unknown.
func FindElectionStats(stats []ElectionStats, title string) (ElectionStats, bool) {
	for _, s := range stats {
		if s.ElectionTitle == title {
			return s, true
		}
	}
	return ElectionStats{}, false
}

// InvalidateStatistics drops the cached tallies after any write that can
// change them.
func InvalidateStatistics() {
	utils.GetCache().Delete(statsCacheKey)
}
