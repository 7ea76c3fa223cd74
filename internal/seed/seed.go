// Package seed loads a world description from YAML and builds a Snapshot.
package seed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"open-football/internal/world"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date written as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Time = t
	return nil
}

// File is the top-level world document.
type File struct {
	Date       Date        `yaml:"date"`
	Continents []Continent `yaml:"continents"`
}

type Continent struct {
	ID        uint32    `yaml:"id"`
	Name      string    `yaml:"name"`
	Countries []Country `yaml:"countries"`
}

type Country struct {
	ID      uint32   `yaml:"id"`
	Code    string   `yaml:"code"`
	Name    string   `yaml:"name"`
	Leagues []League `yaml:"leagues"`
}

type League struct {
	ID      uint32  `yaml:"id"`
	Slug    string  `yaml:"slug"`
	Name    string  `yaml:"name"`
	Teams   []Team  `yaml:"teams"`
	Matches []Match `yaml:"matches"`
}

type Team struct {
	ID         uint32   `yaml:"id"`
	Slug       string   `yaml:"slug"`
	Name       string   `yaml:"name"`
	Reputation int      `yaml:"reputation"`
	Tactics    *Tactics `yaml:"tactics"`
	Players    []Player `yaml:"players"`
}

type Tactics struct {
	Formation string `yaml:"formation"`
	Style     string `yaml:"style"`
}

type Player struct {
	ID          uint32      `yaml:"id"`
	Slug        string      `yaml:"slug"`
	FirstName   string      `yaml:"first_name"`
	LastName    string      `yaml:"last_name"`
	BirthDate   Date        `yaml:"birth_date"`
	Positions   []string    `yaml:"positions"`
	Personality Personality `yaml:"personality"`
	Behaviour   string      `yaml:"behaviour"`
	Happy       bool        `yaml:"happy"`
	Ability     float64     `yaml:"ability"`
	Condition   float64     `yaml:"condition"`
	Statistics  Statistics  `yaml:"statistics"`
	Statuses    []string    `yaml:"statuses"`
	Contract    *Contract   `yaml:"contract"`
}

type Personality struct {
	Ambition        float64 `yaml:"ambition"`
	Loyalty         float64 `yaml:"loyalty"`
	Professionalism float64 `yaml:"professionalism"`
	Temperament     float64 `yaml:"temperament"`
}

type Statistics struct {
	AverageRating float64 `yaml:"average_rating"`
	Goals         int     `yaml:"goals"`
	Assists       int     `yaml:"assists"`
	Played        int     `yaml:"played"`
}

type Contract struct {
	Salary         uint32 `yaml:"salary"`
	Expires        Date   `yaml:"expires"`
	SquadStatus    string `yaml:"squad_status"`
	TransferListed bool   `yaml:"transfer_listed"`
}

type Match struct {
	ID     string `yaml:"id"`
	HomeID uint32 `yaml:"home"`
	AwayID uint32 `yaml:"away"`
	Score  Score  `yaml:"score"`
}

type Score struct {
	Home  int    `yaml:"home"`
	Away  int    `yaml:"away"`
	Goals []Goal `yaml:"goals"`
}

type Goal struct {
	PlayerID uint32 `yaml:"player"`
	Minute   int    `yaml:"minute"`
	OwnGoal  bool   `yaml:"own_goal"`
}

// Load reads and parses the world file at path.
func Load(path string, opts ...world.SnapshotOption) (*world.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	s, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a world document and validates it into a Snapshot.
func Parse(data []byte, opts ...world.SnapshotOption) (*world.Snapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse world: %w", err)
	}
	if f.Date.IsZero() {
		return nil, errors.New("world has no date")
	}

	continents, err := f.build()
	if err != nil {
		return nil, err
	}
	return world.NewSnapshot(f.Date.Time, continents, opts...)
}

func (f *File) build() ([]*world.Continent, error) {
	continents := make([]*world.Continent, 0, len(f.Continents))
	for _, c := range f.Continents {
		continent := &world.Continent{ID: world.ContinentID(c.ID), Name: c.Name}
		for _, co := range c.Countries {
			country := &world.Country{ID: world.CountryID(co.ID), Code: co.Code, Name: co.Name}
			for _, l := range co.Leagues {
				league, err := l.build()
				if err != nil {
					return nil, err
				}
				country.Leagues = append(country.Leagues, league)
			}
			continent.Countries = append(continent.Countries, country)
		}
		continents = append(continents, continent)
	}
	return continents, nil
}

func (l *League) build() (*world.League, error) {
	league := &world.League{
		ID:   world.LeagueID(l.ID),
		Slug: l.Slug,
		Name: l.Name,
	}

	for _, t := range l.Teams {
		team := &world.Team{
			ID:         world.TeamID(t.ID),
			Slug:       t.Slug,
			Name:       t.Name,
			LeagueID:   league.ID,
			Reputation: t.Reputation,
		}
		if t.Tactics != nil {
			team.Tactics = &world.Tactics{Formation: t.Tactics.Formation, Style: t.Tactics.Style}
		}
		for _, p := range t.Players {
			player, err := p.build()
			if err != nil {
				return nil, fmt.Errorf("team %s: %w", t.Slug, err)
			}
			team.Players = append(team.Players, player)
		}
		league.Teams = append(league.Teams, team)
	}

	for _, m := range l.Matches {
		match := &world.Match{
			ID:         m.ID,
			LeagueID:   league.ID,
			LeagueSlug: league.Slug,
			HomeTeamID: world.TeamID(m.HomeID),
			AwayTeamID: world.TeamID(m.AwayID),
			Score:      world.Score{Home: m.Score.Home, Away: m.Score.Away},
		}
		for _, g := range m.Score.Goals {
			match.Score.Goals = append(match.Score.Goals, world.Goal{
				PlayerID: world.PlayerID(g.PlayerID),
				Minute:   g.Minute,
				OwnGoal:  g.OwnGoal,
			})
		}
		league.Matches = append(league.Matches, match)
	}

	return league, nil
}

func (p *Player) build() (*world.Player, error) {
	player := &world.Player{
		ID:        world.PlayerID(p.ID),
		Slug:      p.Slug,
		Name:      world.FullName{First: p.FirstName, Last: p.LastName},
		BirthDate: p.BirthDate.Time,
		Personality: world.Personality{
			Ambition:        p.Personality.Ambition,
			Loyalty:         p.Personality.Loyalty,
			Professionalism: p.Personality.Professionalism,
			Temperament:     p.Personality.Temperament,
		},
		Happy:          p.Happy,
		CurrentAbility: p.Ability,
		Condition:      p.Condition,
		Statistics: world.SeasonStatistics{
			AverageRating: p.Statistics.AverageRating,
			Goals:         p.Statistics.Goals,
			Assists:       p.Statistics.Assists,
			Played:        p.Statistics.Played,
		},
	}

	if p.Behaviour != "" {
		b, err := world.ParseBehaviour(p.Behaviour)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", p.ID, err)
		}
		player.Behaviour = b
	}

	for _, code := range p.Positions {
		pos, err := world.ParsePosition(code)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", p.ID, err)
		}
		player.Positions = append(player.Positions, pos)
	}

	for _, code := range p.Statuses {
		st, err := world.ParsePlayerStatus(code)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", p.ID, err)
		}
		player.Statuses = append(player.Statuses, st)
	}

	if c := p.Contract; c != nil {
		status := world.SquadStatusNotYetSet
		if c.SquadStatus != "" {
			s, err := world.ParseSquadStatus(c.SquadStatus)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", p.ID, err)
			}
			status = s
		}
		player.Contract = &world.Contract{
			Salary:         c.Salary,
			Expiration:     c.Expires.Time,
			SquadStatus:    status,
			TransferListed: c.TransferListed,
		}
	}

	return player, nil
}
