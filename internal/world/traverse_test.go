package world_test

import (
	"testing"

	"open-football/internal/world"
	"open-football/internal/world/worldtest"
)

func teamFilter(id world.TeamID) *world.TeamID { return &id }

// TestCollectMatches verifies the limit bounds the output while the scan count stays exact
func TestCollectMatches(t *testing.T) {
	s := worldtest.Snapshot(t)

	tests := []struct {
		name    string
		query   world.MatchQuery
		wantIDs []string
	}{
		{"no filter, large limit", world.MatchQuery{Limit: 10}, []string{"pl-1", "pl-2", "pl-3", "ll-1", "ll-2"}},
		{"no filter, limit 2", world.MatchQuery{Limit: 2}, []string{"pl-1", "pl-2"}},
		{"limit 0", world.MatchQuery{Limit: 0}, nil},
		{"negative limit", world.MatchQuery{Limit: -3}, nil},
		{"team in second league only", world.MatchQuery{Team: teamFilter(worldtest.TeamCosta), Limit: 10}, []string{"ll-2"}},
		{"team across first league", world.MatchQuery{Team: teamFilter(worldtest.TeamNorth), Limit: 10}, []string{"pl-1", "pl-3"}},
		{"team filter with limit 1", world.MatchQuery{Team: teamFilter(worldtest.TeamSierra), Limit: 1}, []string{"ll-1"}},
		{"team with no matches", world.MatchQuery{Team: teamFilter(99), Limit: 10}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := world.CollectMatches(s, tt.query)

			if scan.Scanned != worldtest.TotalMatches {
				t.Errorf("Expected %d scanned, got %d", worldtest.TotalMatches, scan.Scanned)
			}
			if len(scan.Matches) != len(tt.wantIDs) {
				t.Fatalf("Expected %d matches, got %d", len(tt.wantIDs), len(scan.Matches))
			}
			for i, m := range scan.Matches {
				if m.ID != tt.wantIDs[i] {
					t.Errorf("Match %d: expected %s, got %s", i, tt.wantIDs[i], m.ID)
				}
			}
		})
	}
}
