package world

import "time"

type (
	ContinentID uint32
	CountryID   uint32
	LeagueID    uint32
	TeamID      uint32
	PlayerID    uint32
)

// Continent is the root containment node of the world tree.
type Continent struct {
	ID        ContinentID
	Name      string
	Countries []*Country
}

// Country groups the leagues played inside it.
type Country struct {
	ID      CountryID
	Code    string
	Name    string
	Leagues []*League
}

// League owns its teams and the matches played between them.
// Matches are kept in storage order; they are not time-ordered.
type League struct {
	ID      LeagueID
	Slug    string
	Name    string
	Teams   []*Team
	Matches []*Match
}

// Team is a club taking part in a league.
type Team struct {
	ID         TeamID
	Slug       string
	Name       string
	LeagueID   LeagueID
	Reputation int // world reputation, 0-10000
	Tactics    *Tactics
	Players    []*Player
}

// HasPlayer reports whether the player is on this team's roster.
func (t *Team) HasPlayer(id PlayerID) bool {
	for _, p := range t.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Tactics is a team's tactical setup.
type Tactics struct {
	Formation string
	Style     string
}

// FullName holds a player's name parts.
type FullName struct {
	First string
	Last  string
}

func (n FullName) String() string {
	switch {
	case n.First == "":
		return n.Last
	case n.Last == "":
		return n.First
	}
	return n.First + " " + n.Last
}

// Personality holds mental attributes on a 0.0-1.0 scale.
type Personality struct {
	Ambition        float64
	Loyalty         float64
	Professionalism float64
	Temperament     float64
}

// SeasonStatistics are the player's current-season numbers.
type SeasonStatistics struct {
	AverageRating float64
	Goals         int
	Assists       int
	Played        int
}

// Contract is a player's employment contract with their club.
type Contract struct {
	Salary         uint32 // weekly
	Expiration     time.Time
	SquadStatus    SquadStatus
	TransferListed bool
}

// Player is a single footballer.
type Player struct {
	ID        PlayerID
	Slug      string
	Name      FullName
	BirthDate time.Time
	Positions []Position

	Personality Personality
	Behaviour   Behaviour
	Happy       bool

	// CurrentAbility and Condition are on a 0.0-1.0 scale.
	CurrentAbility float64
	Condition      float64

	Statistics SeasonStatistics
	Statuses   []PlayerStatus
	Contract   *Contract
}

// PrimaryPosition returns the first listed position, or false when none is set.
func (p *Player) PrimaryPosition() (Position, bool) {
	if len(p.Positions) == 0 {
		return 0, false
	}
	return p.Positions[0], true
}

// HasStatus reports whether s is in the player's status set.
func (p *Player) HasStatus(s PlayerStatus) bool {
	for _, st := range p.Statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (p *Player) IsInjured() bool   { return p.HasStatus(StatusInjured) }
func (p *Player) IsSuspended() bool { return p.HasStatus(StatusSuspended) }

// Match is a played fixture between two teams of the same league.
type Match struct {
	ID         string
	LeagueID   LeagueID
	LeagueSlug string
	HomeTeamID TeamID
	AwayTeamID TeamID
	Score      Score
}

// Involves reports whether the team played in this match.
func (m *Match) Involves(team TeamID) bool {
	return m.HomeTeamID == team || m.AwayTeamID == team
}

// Score is a final score plus the goals in order of occurrence.
type Score struct {
	Home  int
	Away  int
	Goals []Goal
}

// Goal is one goal event. OwnGoal marks goals credited to the opposing side.
type Goal struct {
	PlayerID PlayerID
	Minute   int
	OwnGoal  bool
}
