package projection

import (
	"context"

	"open-football/internal/stats"
	"open-football/internal/world"
)

// SquadStateResponse is the full roster of one team with per-player state.
type SquadStateResponse struct {
	TeamID   uint32 `json:"team_id"`
	TeamName string `json:"team_name"`
	TeamSlug string `json:"team_slug"`

	// TeamMorale is the mean player happiness, 0 for an empty roster.
	TeamMorale int `json:"team_morale"`

	Players []PlayerSquadState `json:"players"`
}

// PlayerSquadState is the flattened per-player record of a squad listing.
type PlayerSquadState struct {
	ID       uint32 `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`

	Happiness int    `json:"happiness"`
	IsHappy   bool   `json:"is_happy"`
	Behaviour string `json:"behaviour"`

	Condition     int     `json:"condition"`
	Ability       int     `json:"ability"`
	AverageRating float64 `json:"average_rating"`
	IsMatchReady  bool    `json:"is_match_ready"`

	IsInjured        bool `json:"is_injured"`
	IsSuspended      bool `json:"is_suspended"`
	IsTransferListed bool `json:"is_transfer_listed"`

	ContractDaysRemaining *int    `json:"contract_days_remaining"`
	ContractExpiringSoon  bool    `json:"contract_expiring_soon"`
	SquadStatus           *string `json:"squad_status"`

	Concerns []string `json:"concerns"`

	Ambition        int `json:"ambition"`
	Loyalty         int `json:"loyalty"`
	Professionalism int `json:"professionalism"`
	Temperament     int `json:"temperament"`
}

// SquadState projects every roster member of the team found by slug.
func (s *Service) SquadState(ctx context.Context, slug string) (*SquadStateResponse, error) {
	var resp *SquadStateResponse
	err := s.view(ctx, func(snap *world.Snapshot, _ uint64) error {
		team, err := resolveTeam(snap, slug)
		if err != nil {
			return err
		}

		players := make([]PlayerSquadState, 0, len(team.Players))
		for _, p := range team.Players {
			players = append(players, squadEntry(p, snap))
		}

		resp = &SquadStateResponse{
			TeamID:     uint32(team.ID),
			TeamName:   team.Name,
			TeamSlug:   team.Slug,
			TeamMorale: stats.MeanHappiness(team.Players),
			Players:    players,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func squadEntry(p *world.Player, snap *world.Snapshot) PlayerSquadState {
	mood := moodOf(p)
	form := formOf(p)
	traits := personalityOf(p)

	entry := PlayerSquadState{
		ID:       uint32(p.ID),
		Name:     p.Name.String(),
		Position: displayPositions(p),
		Age:      stats.Age(p.BirthDate, snap.Date),

		Happiness: mood.Happiness,
		IsHappy:   mood.IsHappy,
		Behaviour: mood.Behaviour,

		Condition:     form.Condition,
		Ability:       stats.AbilityStars(p),
		AverageRating: form.AverageRating,
		IsMatchReady:  form.IsMatchReady,

		IsInjured:   p.IsInjured(),
		IsSuspended: p.IsSuspended(),

		Concerns: stats.Concerns(p.Statuses),

		Ambition:        traits.Ambition,
		Loyalty:         traits.Loyalty,
		Professionalism: traits.Professionalism,
		Temperament:     traits.Temperament,
	}

	if c := contractOf(p, snap.Date); c != nil {
		days := c.DaysToExpiration
		status := c.SquadStatus
		entry.IsTransferListed = c.IsTransferListed
		entry.ContractDaysRemaining = &days
		entry.ContractExpiringSoon = c.IsExpiringSoon
		entry.SquadStatus = &status
	}
	return entry
}
