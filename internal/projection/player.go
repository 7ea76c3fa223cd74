package projection

import (
	"context"
	"strconv"
	"strings"
	"time"

	"open-football/internal/stats"
	"open-football/internal/world"
)

// PlayerStateResponse is the AI-focused state of one player.
type PlayerStateResponse struct {
	ID       uint32 `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`

	Mood        Mood           `json:"mood"`
	Form        Form           `json:"form"`
	Contract    *ContractState `json:"contract"`
	Concerns    []string       `json:"concerns"`
	Personality Personality    `json:"personality"`
}

type Mood struct {
	// Happiness is 0-100.
	Happiness int    `json:"happiness"`
	IsHappy   bool   `json:"is_happy"`
	Behaviour string `json:"behaviour"`
}

type Form struct {
	// Condition is 0-100.
	Condition     int     `json:"condition"`
	AverageRating float64 `json:"average_rating"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MatchesPlayed int     `json:"matches_played"`
	IsMatchReady  bool    `json:"is_match_ready"`
}

type ContractState struct {
	// SalaryK is the weekly salary in thousands.
	SalaryK          uint32 `json:"salary_k"`
	DaysToExpiration int    `json:"days_to_expiration"`
	IsExpiringSoon   bool   `json:"is_expiring_soon"`
	SquadStatus      string `json:"squad_status"`
	IsTransferListed bool   `json:"is_transfer_listed"`
}

// Personality holds traits on the 0-20 scale.
type Personality struct {
	Ambition        int `json:"ambition"`
	Loyalty         int `json:"loyalty"`
	Professionalism int `json:"professionalism"`
	Temperament     int `json:"temperament"`
}

// PlayerState projects a single player found by numeric id.
func (s *Service) PlayerState(ctx context.Context, id world.PlayerID) (*PlayerStateResponse, error) {
	var resp *PlayerStateResponse
	err := s.view(ctx, func(snap *world.Snapshot, _ uint64) error {
		player, ok := snap.Player(id)
		if !ok {
			return &NotFoundError{Entity: world.KindPlayer, Identifier: strconv.FormatUint(uint64(id), 10)}
		}

		resp = &PlayerStateResponse{
			ID:          uint32(player.ID),
			Name:        player.Name.String(),
			Position:    primaryPosition(player),
			Age:         stats.Age(player.BirthDate, snap.Date),
			Mood:        moodOf(player),
			Form:        formOf(player),
			Contract:    contractOf(player, snap.Date),
			Concerns:    stats.Concerns(player.Statuses),
			Personality: personalityOf(player),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func moodOf(p *world.Player) Mood {
	return Mood{
		Happiness: stats.PlayerHappiness(p),
		IsHappy:   p.Happy,
		Behaviour: p.Behaviour.String(),
	}
}

func formOf(p *world.Player) Form {
	return Form{
		Condition:     stats.Condition(p),
		AverageRating: p.Statistics.AverageRating,
		Goals:         p.Statistics.Goals,
		Assists:       p.Statistics.Assists,
		MatchesPlayed: p.Statistics.Played,
		IsMatchReady:  stats.IsMatchReady(p),
	}
}

func contractOf(p *world.Player, asOf time.Time) *ContractState {
	c := p.Contract
	if c == nil {
		return nil
	}

	days := stats.DaysUntil(c.Expiration, asOf)
	return &ContractState{
		SalaryK:          c.Salary / 1000,
		DaysToExpiration: days,
		IsExpiringSoon:   stats.IsExpiringSoon(days),
		SquadStatus:      c.SquadStatus.String(),
		IsTransferListed: c.TransferListed,
	}
}

func personalityOf(p *world.Player) Personality {
	scores := stats.Personality(p.Personality)
	return Personality{
		Ambition:        scores.Ambition,
		Loyalty:         scores.Loyalty,
		Professionalism: scores.Professionalism,
		Temperament:     scores.Temperament,
	}
}

func primaryPosition(p *world.Player) string {
	pos, ok := p.PrimaryPosition()
	if !ok {
		return ""
	}
	return pos.ShortName()
}

func displayPositions(p *world.Player) string {
	names := make([]string, len(p.Positions))
	for i, pos := range p.Positions {
		names[i] = pos.DisplayName()
	}
	return strings.Join(names, ", ")
}
