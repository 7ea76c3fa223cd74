package seed

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"open-football/internal/world"
)

// TestLoad verifies the sample world decodes into a consistent Snapshot
func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "world.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if want := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC); !s.Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, s.Date)
	}
	if s.MatchCount() != 1 {
		t.Errorf("Expected 1 match, got %d", s.MatchCount())
	}

	id, ok := s.SlugIndex().ResolveTeam("north-united")
	if !ok {
		t.Fatal("north-united not indexed")
	}
	team, _ := s.Team(id)
	if team.Tactics == nil || team.Tactics.Formation != "4-4-2" {
		t.Errorf("Unexpected tactics %+v", team.Tactics)
	}

	p, ok := s.Player(101)
	if !ok {
		t.Fatal("Player 101 not found")
	}
	if p.Name.String() != "Tom Hale" || p.Behaviour != world.BehaviourGood || !p.Happy {
		t.Errorf("Unexpected player %+v", p)
	}
	if len(p.Positions) != 2 || p.Positions[0] != world.PositionStriker {
		t.Errorf("Unexpected positions %v", p.Positions)
	}
	if len(p.Statuses) != 2 || p.Statuses[1] != world.StatusBidReceived {
		t.Errorf("Unexpected statuses %v", p.Statuses)
	}
	if p.Contract == nil || p.Contract.SquadStatus != world.SquadStatusKeyPlayer || p.Contract.Expiration.Month() != time.December {
		t.Errorf("Unexpected contract %+v", p.Contract)
	}

	keeper, _ := s.Player(201)
	if keeper.Contract != nil || !keeper.IsInjured() {
		t.Errorf("Unexpected keeper %+v", keeper)
	}

	m := s.Continents[0].Countries[0].Leagues[0].Matches[0]
	if m.LeagueSlug != "premier-league" || len(m.Score.Goals) != 2 || !m.Score.Goals[1].OwnGoal {
		t.Errorf("Unexpected match %+v", m)
	}
}

// TestLoadMissingFile verifies the read error is wrapped
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read world file") {
		t.Errorf("Expected read error, got %v", err)
	}
}

// TestParseErrors covers decoding, enum and consistency failures
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not yaml", "date: [", "failed to parse world"},
		{"no date", "continents: []", "no date"},
		{"bad date", "date: 15/06/2024", "parsing time"},
		{"bad position", worldWith(`positions: [XX]`), "unknown position"},
		{"bad status", worldWith(`statuses: [Nope]`), "unknown player status"},
		{"bad behaviour", worldWith(`behaviour: Grumpy`), "unknown behaviour"},
		{"bad squad status", worldWith("contract: { salary: 1, expires: 2025-01-01, squad_status: legend }"), "unknown squad status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// TestParseInconsistentWorld verifies graph validation runs on loaded worlds
func TestParseInconsistentWorld(t *testing.T) {
	doc := `
date: 2024-06-15
continents:
  - id: 1
    countries:
      - id: 1
        leagues:
          - id: 1
            slug: l
            teams:
              - { id: 1, slug: a }
            matches:
              - { id: m, home: 1, away: 2 }
`
	_, err := Parse([]byte(doc))
	var verr *world.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

// worldWith returns a one-player world with an extra player field.
func worldWith(field string) string {
	return `
date: 2024-06-15
continents:
  - id: 1
    countries:
      - id: 1
        leagues:
          - id: 1
            slug: l
            teams:
              - id: 1
                slug: a
                players:
                  - id: 1
                    ` + field + `
`
}
