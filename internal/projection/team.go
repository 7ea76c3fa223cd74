package projection

import (
	"context"
	"strconv"

	"open-football/internal/stats"
	"open-football/internal/world"
)

// RecentFormPlaceholder stands in for the last-five-results string until
// match history is carried in the Snapshot.
const RecentFormPlaceholder = "-----"

// TeamAIStateResponse is the AI-focused state of one team.
type TeamAIStateResponse struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`

	LeagueName string `json:"league_name"`
	LeagueSlug string `json:"league_slug"`

	RecentForm   string       `json:"recent_form"`
	Finances     Finances     `json:"finances"`
	SquadSummary SquadSummary `json:"squad_summary"`
	Morale       Morale       `json:"morale"`
	Tactics      *Tactics     `json:"tactics"`
	Reputation   Reputation   `json:"reputation"`
}

type Finances struct {
	// WeeklyWageK is the weekly wage bill in thousands.
	WeeklyWageK uint64 `json:"weekly_wage_k"`
}

type SquadSummary struct {
	TotalPlayers     int     `json:"total_players"`
	AverageAge       float64 `json:"average_age"`
	AverageAbility   float64 `json:"average_ability"`
	AverageCondition float64 `json:"average_condition"`
	InjuredCount     int     `json:"injured_count"`
	SuspendedCount   int     `json:"suspended_count"`
	UnhappyCount     int     `json:"unhappy_count"`
}

type Morale struct {
	TeamBehaviour   string `json:"team_behaviour"`
	PlayersPoorMood int    `json:"players_poor_mood"`
	PlayersGoodMood int    `json:"players_good_mood"`
}

type Tactics struct {
	Formation string `json:"formation"`
	Style     string `json:"style"`
}

type Reputation struct {
	World int    `json:"world"`
	Level string `json:"level"`
}

// TeamAIState projects one team found by slug.
func (s *Service) TeamAIState(ctx context.Context, slug string) (*TeamAIStateResponse, error) {
	var resp *TeamAIStateResponse
	err := s.view(ctx, func(snap *world.Snapshot, _ uint64) error {
		team, err := resolveTeam(snap, slug)
		if err != nil {
			return err
		}

		league, ok := snap.League(team.LeagueID)
		if !ok {
			return &NotFoundError{Entity: world.KindLeague, Identifier: strconv.FormatUint(uint64(team.LeagueID), 10)}
		}

		summary := stats.Summarize(team.Players, snap.Date)
		morale := stats.TeamMorale(team.Players)

		resp = &TeamAIStateResponse{
			ID:         uint32(team.ID),
			Name:       team.Name,
			Slug:       team.Slug,
			LeagueName: league.Name,
			LeagueSlug: league.Slug,
			RecentForm: RecentFormPlaceholder,
			Finances: Finances{
				WeeklyWageK: stats.WeeklyWage(team.Players) / 1000,
			},
			SquadSummary: SquadSummary{
				TotalPlayers:     summary.Total,
				AverageAge:       summary.AverageAge,
				AverageAbility:   summary.AverageAbility,
				AverageCondition: summary.AverageCondition,
				InjuredCount:     summary.Injured,
				SuspendedCount:   summary.Suspended,
				UnhappyCount:     summary.Unhappy,
			},
			Morale: Morale{
				TeamBehaviour:   morale.Behaviour.String(),
				PlayersPoorMood: morale.Poor,
				PlayersGoodMood: morale.Good,
			},
			Tactics: tacticsOf(team),
			Reputation: Reputation{
				World: team.Reputation,
				Level: stats.Reputation(team.Reputation).String(),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func tacticsOf(t *world.Team) *Tactics {
	if t.Tactics == nil {
		return nil
	}
	return &Tactics{Formation: t.Tactics.Formation, Style: t.Tactics.Style}
}
