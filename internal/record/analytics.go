package record

import "fmt"

// MatchSummary aggregates outcomes across all recorded matches.
type MatchSummary struct {
	Matches  int
	WinsA    int
	WinsB    int
	Draws    int
	AvgTurns float64
}

// AgentSummary reports one agent's record across matches it played,
// from either seat.
type AgentSummary struct {
	Agent   string
	Matches int
	Wins    int
	WinRate float64
}

// CardUsage reports how often a card was played across all matches.
type CardUsage struct {
	CardName string
	Plays    int
}

// Summarize returns aggregate outcome stats over finished matches.
func (s *Store) Summarize() (MatchSummary, error) {
	var sum MatchSummary
	row := s.sqlDB.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE winner WHEN 'A' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE winner WHEN 'B' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE winner WHEN 'DRAW' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(turns), 0)
		   FROM matches
		  WHERE ended_at IS NOT NULL`,
	)
	if err := row.Scan(&sum.Matches, &sum.WinsA, &sum.WinsB, &sum.Draws, &sum.AvgTurns); err != nil {
		return MatchSummary{}, fmt.Errorf("summarize matches: %w", err)
	}
	return sum, nil
}

// AgentSummaries returns per-agent win rates. An agent that played
// both seats is counted once with both seats merged.
func (s *Store) AgentSummaries() ([]AgentSummary, error) {
	rows, err := s.sqlDB.Query(
		`SELECT agent, COUNT(*), SUM(won) FROM (
		    SELECT agent_a AS agent, CASE winner WHEN 'A' THEN 1 ELSE 0 END AS won
		      FROM matches WHERE ended_at IS NOT NULL
		    UNION ALL
		    SELECT agent_b AS agent, CASE winner WHEN 'B' THEN 1 ELSE 0 END AS won
		      FROM matches WHERE ended_at IS NOT NULL
		  ) GROUP BY agent ORDER BY agent`,
	)
	if err != nil {
		return nil, fmt.Errorf("agent summaries: %w", err)
	}
	defer rows.Close()

	var out []AgentSummary
	for rows.Next() {
		var a AgentSummary
		if err := rows.Scan(&a.Agent, &a.Matches, &a.Wins); err != nil {
			return nil, fmt.Errorf("agent summaries: %w", err)
		}
		if a.Matches > 0 {
			a.WinRate = float64(a.Wins) / float64(a.Matches)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("agent summaries: %w", err)
	}
	return out, nil
}

// TopCards returns the most played cards, most frequent first.
func (s *Store) TopCards(limit int) ([]CardUsage, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.sqlDB.Query(
		`SELECT card_name, COUNT(*) AS plays
		   FROM plays
		  GROUP BY card_name
		  ORDER BY plays DESC, card_name ASC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top cards: %w", err)
	}
	defer rows.Close()

	var out []CardUsage
	for rows.Next() {
		var u CardUsage
		if err := rows.Scan(&u.CardName, &u.Plays); err != nil {
			return nil, fmt.Errorf("top cards: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top cards: %w", err)
	}
	return out, nil
}
