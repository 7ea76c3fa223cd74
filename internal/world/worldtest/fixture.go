// Package worldtest builds a small, fully consistent world for tests.
//
// Layout:
//
//	Europe
//	  England / premier-league: north-united, south-city, east-rovers; 3 matches among them
//	  Spain   / la-liga:        costa-athletic, sierra-fc, valle-cf; 2 matches, one involving costa-athletic
//
// costa-athletic carries the interesting roster; valle-cf has no players.
package worldtest

import (
	"testing"
	"time"

	"open-football/internal/world"
)

// Date is the date cursor of the fixture Snapshot (a Saturday).
var Date = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

const (
	LeaguePremier world.LeagueID = 1
	LeagueLaLiga  world.LeagueID = 2

	TeamNorth  world.TeamID = 1
	TeamSouth  world.TeamID = 2
	TeamEast   world.TeamID = 3
	TeamCosta  world.TeamID = 4
	TeamSierra world.TeamID = 5
	TeamValle  world.TeamID = 6

	// PlayerStar is Good, happy, ambition 0.75, contract 179 days from expiry.
	PlayerStar world.PlayerID = 401
	// PlayerInjured is Poor, unhappy, injured, transfer listed, 180 days from expiry.
	PlayerInjured world.PlayerID = 402
	// PlayerKeeper is Normal, happy and has no contract.
	PlayerKeeper world.PlayerID = 403
	PlayerSierra world.PlayerID = 501
	PlayerNorth  world.PlayerID = 101

	// PlayerUnknown scores in a match but is on no roster.
	PlayerUnknown world.PlayerID = 9999
)

const (
	SlugPremier = "premier-league"
	SlugLaLiga  = "la-liga"
	SlugCosta   = "costa-athletic"
	SlugSierra  = "sierra-fc"
	SlugValle   = "valle-cf"
	SlugNorth   = "north-united"
)

// TotalMatches is the number of matches reachable from the tree.
const TotalMatches = 5

// Continents builds a fresh world tree. Each call returns new values, so tests
// may mutate the result.
func Continents() []*world.Continent {
	star := &world.Player{
		ID:        PlayerStar,
		Slug:      "luis-ortega",
		Name:      world.FullName{First: "Luis", Last: "Ortega"},
		BirthDate: time.Date(1998, time.March, 20, 0, 0, 0, 0, time.UTC),
		Positions: []world.Position{world.PositionStriker, world.PositionForwardCenter},
		Personality: world.Personality{
			Ambition:        0.75,
			Loyalty:         0.5,
			Professionalism: 0.9,
			Temperament:     0.33,
		},
		Behaviour:      world.BehaviourGood,
		Happy:          true,
		CurrentAbility: 0.64,
		Condition:      0.8,
		Statistics:     world.SeasonStatistics{AverageRating: 7.2, Goals: 12, Assists: 4, Played: 30},
		Statuses:       []world.PlayerStatus{world.StatusWanted, world.StatusBidReceived},
		Contract: &world.Contract{
			Salary:      45000,
			Expiration:  Date.AddDate(0, 0, 179),
			SquadStatus: world.SquadStatusKeyPlayer,
		},
	}

	injured := &world.Player{
		ID:             PlayerInjured,
		Slug:           "marco-ruiz",
		Name:           world.FullName{First: "Marco", Last: "Ruiz"},
		BirthDate:      time.Date(2000, time.June, 16, 0, 0, 0, 0, time.UTC),
		Positions:      []world.Position{world.PositionDefenderCenter},
		Personality:    world.Personality{Ambition: 0.2, Loyalty: 0.1, Professionalism: 0.4, Temperament: 0.05},
		Behaviour:      world.BehaviourPoor,
		CurrentAbility: 0.4,
		Condition:      0.5,
		Statistics:     world.SeasonStatistics{AverageRating: 6.1, Played: 11},
		Statuses:       []world.PlayerStatus{world.StatusInjured, world.StatusUnhappy},
		Contract: &world.Contract{
			Salary:         12500,
			Expiration:     Date.AddDate(0, 0, 180),
			SquadStatus:    world.SquadStatusRotation,
			TransferListed: true,
		},
	}

	keeper := &world.Player{
		ID:             PlayerKeeper,
		Name:           world.FullName{First: "Pablo", Last: "Sanz"},
		BirthDate:      time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Positions:      []world.Position{world.PositionGoalkeeper},
		Personality:    world.Personality{Ambition: 0.5, Loyalty: 1, Professionalism: 1, Temperament: 0.5},
		Happy:          true,
		CurrentAbility: 0.2,
		Condition:      0.875,
		Statistics:     world.SeasonStatistics{AverageRating: 6.8, Played: 29},
	}

	sierra := &world.Player{
		ID:             PlayerSierra,
		Slug:           "diego-mora",
		Name:           world.FullName{First: "Diego", Last: "Mora"},
		BirthDate:      time.Date(1995, time.October, 2, 0, 0, 0, 0, time.UTC),
		Positions:      []world.Position{world.PositionMidfielderCenter},
		Happy:          true,
		CurrentAbility: 0.5,
		Condition:      0.9,
	}

	north := &world.Player{
		ID:             PlayerNorth,
		Slug:           "tom-hale",
		Name:           world.FullName{First: "Tom", Last: "Hale"},
		BirthDate:      time.Date(1997, time.May, 5, 0, 0, 0, 0, time.UTC),
		Positions:      []world.Position{world.PositionStriker},
		Behaviour:      world.BehaviourGood,
		Happy:          true,
		CurrentAbility: 0.7,
		Condition:      0.85,
	}

	premier := &world.League{
		ID:   LeaguePremier,
		Slug: SlugPremier,
		Name: "Premier League",
		Teams: []*world.Team{
			{ID: TeamNorth, Slug: SlugNorth, Name: "North United", LeagueID: LeaguePremier, Reputation: 7500, Players: []*world.Player{north}},
			{ID: TeamSouth, Slug: "south-city", Name: "South City", LeagueID: LeaguePremier, Reputation: 4200},
			{ID: TeamEast, Slug: "east-rovers", Name: "East Rovers", LeagueID: LeaguePremier, Reputation: 2100},
		},
		Matches: []*world.Match{
			{ID: "pl-1", LeagueID: LeaguePremier, LeagueSlug: SlugPremier, HomeTeamID: TeamNorth, AwayTeamID: TeamSouth,
				Score: world.Score{Home: 1, Goals: []world.Goal{{PlayerID: PlayerNorth, Minute: 33}}}},
			{ID: "pl-2", LeagueID: LeaguePremier, LeagueSlug: SlugPremier, HomeTeamID: TeamSouth, AwayTeamID: TeamEast},
			{ID: "pl-3", LeagueID: LeaguePremier, LeagueSlug: SlugPremier, HomeTeamID: TeamEast, AwayTeamID: TeamNorth},
		},
	}

	laliga := &world.League{
		ID:   LeagueLaLiga,
		Slug: SlugLaLiga,
		Name: "La Liga",
		Teams: []*world.Team{
			{
				ID:         TeamCosta,
				Slug:       SlugCosta,
				Name:       "Costa Athletic",
				LeagueID:   LeagueLaLiga,
				Reputation: 6200,
				Tactics:    &world.Tactics{Formation: "4-3-3", Style: "Attacking"},
				Players:    []*world.Player{star, injured, keeper},
			},
			{ID: TeamSierra, Slug: SlugSierra, Name: "Sierra FC", LeagueID: LeagueLaLiga, Reputation: 3000, Players: []*world.Player{sierra}},
			{ID: TeamValle, Slug: SlugValle, Name: "Valle CF", LeagueID: LeagueLaLiga, Reputation: 500},
		},
		Matches: []*world.Match{
			{ID: "ll-1", LeagueID: LeagueLaLiga, LeagueSlug: SlugLaLiga, HomeTeamID: TeamSierra, AwayTeamID: TeamValle,
				Score: world.Score{Away: 1, Goals: []world.Goal{{PlayerID: PlayerUnknown, Minute: 58}}}},
			{ID: "ll-2", LeagueID: LeagueLaLiga, LeagueSlug: SlugLaLiga, HomeTeamID: TeamCosta, AwayTeamID: TeamSierra,
				Score: world.Score{Home: 2, Away: 1, Goals: []world.Goal{
					{PlayerID: PlayerStar, Minute: 12},
					{PlayerID: PlayerSierra, Minute: 40, OwnGoal: true},
					{PlayerID: PlayerSierra, Minute: 77},
				}}},
		},
	}

	return []*world.Continent{{
		ID:   1,
		Name: "Europe",
		Countries: []*world.Country{
			{ID: 1, Code: "ENG", Name: "England", Leagues: []*world.League{premier}},
			{ID: 2, Code: "ESP", Name: "Spain", Leagues: []*world.League{laliga}},
		},
	}}
}

// Snapshot builds the fixture Snapshot and fails the test on error.
func Snapshot(tb testing.TB, opts ...world.SnapshotOption) *world.Snapshot {
	tb.Helper()
	s, err := world.NewSnapshot(Date, Continents(), opts...)
	if err != nil {
		tb.Fatalf("build fixture snapshot: %v", err)
	}
	return s
}

// LoadedContainer returns a container with the fixture Snapshot published.
func LoadedContainer(tb testing.TB, opts ...world.SnapshotOption) *world.Container {
	tb.Helper()
	c := world.NewContainer()
	c.Replace(Snapshot(tb, opts...))
	return c
}
