package world

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a Snapshot that violates the internal-consistency
// invariant (dangling team reference, duplicate id, home == away, ...).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid snapshot: " + e.Reason
}

// Snapshot is the whole simulated world at one instant.
// Once returned by NewSnapshot it must be treated as immutable: the writer
// publishes new generations, it never edits a published one.
type Snapshot struct {
	ID         uuid.UUID
	Date       time.Time
	Continents []*Continent

	index *SlugIndex

	teams   map[TeamID]*Team
	players map[PlayerID]*Player
	leagues map[LeagueID]*League

	matchCount int
}

type snapshotOptions struct {
	skipIndex bool
}

// SnapshotOption tweaks snapshot construction.
type SnapshotOption func(*snapshotOptions)

// WithoutSlugIndex builds a Snapshot whose slug index is absent, as happens
// while a writer publishes before indexing has completed.
func WithoutSlugIndex() SnapshotOption {
	return func(o *snapshotOptions) { o.skipIndex = true }
}

// NewSnapshot validates the entity graph, builds the flat id accessors and,
// unless disabled, the slug index.
func NewSnapshot(date time.Time, continents []*Continent, opts ...SnapshotOption) (*Snapshot, error) {
	var o snapshotOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Snapshot{
		ID:         uuid.New(),
		Date:       date,
		Continents: continents,
		teams:      make(map[TeamID]*Team),
		players:    make(map[PlayerID]*Player),
		leagues:    make(map[LeagueID]*League),
	}

	if err := s.buildAccessors(); err != nil {
		return nil, err
	}
	if err := s.validateMatches(); err != nil {
		return nil, err
	}

	if !o.skipIndex {
		idx, err := buildSlugIndex(continents)
		if err != nil {
			return nil, err
		}
		s.index = idx
	}

	return s, nil
}

func (s *Snapshot) buildAccessors() error {
	for _, continent := range s.Continents {
		for _, country := range continent.Countries {
			for _, league := range country.Leagues {
				if _, dup := s.leagues[league.ID]; dup {
					return &ValidationError{Reason: fmt.Sprintf("duplicate league id %d", league.ID)}
				}
				s.leagues[league.ID] = league

				for _, team := range league.Teams {
					if _, dup := s.teams[team.ID]; dup {
						return &ValidationError{Reason: fmt.Sprintf("duplicate team id %d", team.ID)}
					}
					if team.LeagueID != league.ID {
						return &ValidationError{Reason: fmt.Sprintf("team %d listed under league %d but references league %d", team.ID, league.ID, team.LeagueID)}
					}
					s.teams[team.ID] = team

					for _, player := range team.Players {
						if _, dup := s.players[player.ID]; dup {
							return &ValidationError{Reason: fmt.Sprintf("player %d appears on more than one roster", player.ID)}
						}
						s.players[player.ID] = player
					}
				}
				s.matchCount += len(league.Matches)
			}
		}
	}
	return nil
}

func (s *Snapshot) validateMatches() error {
	for _, league := range s.leagues {
		for _, m := range league.Matches {
			if m.HomeTeamID == m.AwayTeamID {
				return &ValidationError{Reason: fmt.Sprintf("match %s: home and away team are both %d", m.ID, m.HomeTeamID)}
			}
			if _, ok := s.teams[m.HomeTeamID]; !ok {
				return &ValidationError{Reason: fmt.Sprintf("match %s: unknown home team %d", m.ID, m.HomeTeamID)}
			}
			if _, ok := s.teams[m.AwayTeamID]; !ok {
				return &ValidationError{Reason: fmt.Sprintf("match %s: unknown away team %d", m.ID, m.AwayTeamID)}
			}
		}
	}
	return nil
}

// WithDate returns a new Snapshot generation sharing this one's entity graph
// with the date cursor moved. The slug index is rebuilt for the new generation.
func (s *Snapshot) WithDate(date time.Time) (*Snapshot, error) {
	var opts []SnapshotOption
	if s.index == nil {
		opts = append(opts, WithoutSlugIndex())
	}
	return NewSnapshot(date, s.Continents, opts...)
}

// SlugIndex returns the secondary index, or nil when it was not built.
func (s *Snapshot) SlugIndex() *SlugIndex {
	return s.index
}

func (s *Snapshot) Team(id TeamID) (*Team, bool) {
	t, ok := s.teams[id]
	return t, ok
}

func (s *Snapshot) Player(id PlayerID) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *Snapshot) League(id LeagueID) (*League, bool) {
	l, ok := s.leagues[id]
	return l, ok
}

// MatchCount is the number of matches reachable from the tree.
func (s *Snapshot) MatchCount() int {
	return s.matchCount
}
