package projection

import (
	"context"

	"open-football/internal/world"
)

// Scoring sides reported for a goal.
const (
	SideHome    = "home"
	SideAway    = "away"
	SideUnknown = "unknown"
)

// EventTypeMatchResult is the only event type produced today.
const EventTypeMatchResult = "match_result"

// RecentEventsQuery selects recent match events.
type RecentEventsQuery struct {
	// Limit caps the number of events; nil uses the service default.
	Limit *int
	// TeamSlug restricts events to one team's matches when non-empty.
	TeamSlug string
}

// RecentEventsResponse lists match events for AI context.
type RecentEventsResponse struct {
	GameDate     string      `json:"game_date"`
	Events       []GameEvent `json:"events"`
	TotalMatches int         `json:"total_matches"`
}

// GameEvent is one match result with its goals.
type GameEvent struct {
	EventType  string      `json:"event_type"`
	MatchID    string      `json:"match_id"`
	LeagueSlug string      `json:"league_slug"`
	HomeTeam   TeamInfo    `json:"home_team"`
	AwayTeam   TeamInfo    `json:"away_team"`
	Score      ScoreInfo   `json:"score"`
	Goals      []GoalEvent `json:"goals"`
}

type TeamInfo struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ScoreInfo struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GoalEvent is a single goal. PlayerName is nil when the scorer is unknown.
type GoalEvent struct {
	PlayerID    uint32  `json:"player_id"`
	PlayerName  *string `json:"player_name"`
	Minute      int     `json:"minute"`
	IsOwnGoal   bool    `json:"is_own_goal"`
	ScoringTeam string  `json:"scoring_team"`
}

// RecentEvents returns up to the requested number of match events in world
// traversal order, plus the number of matches scanned.
func (s *Service) RecentEvents(ctx context.Context, q RecentEventsQuery) (*RecentEventsResponse, error) {
	limit := s.eventsLimit
	if q.Limit != nil {
		if *q.Limit < 0 {
			return nil, s.fail(&InvalidInputError{Field: "limit", Reason: "must not be negative"})
		}
		limit = *q.Limit
	}

	var resp *RecentEventsResponse
	err := s.view(ctx, func(snap *world.Snapshot, _ uint64) error {
		mq := world.MatchQuery{Limit: limit}
		if q.TeamSlug != "" {
			team, err := resolveTeam(snap, q.TeamSlug)
			if err != nil {
				return err
			}
			mq.Team = &team.ID
		}

		scan := world.CollectMatches(snap, mq)

		events := make([]GameEvent, 0, len(scan.Matches))
		for _, m := range scan.Matches {
			events = append(events, buildMatchEvent(snap, m))
		}

		resp = &RecentEventsResponse{
			GameDate:     snap.Date.Format(dateLayout),
			Events:       events,
			TotalMatches: scan.Scanned,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func buildMatchEvent(snap *world.Snapshot, m *world.Match) GameEvent {
	home, _ := snap.Team(m.HomeTeamID)
	away, _ := snap.Team(m.AwayTeamID)

	goals := make([]GoalEvent, 0, len(m.Score.Goals))
	for _, g := range m.Score.Goals {
		ev := GoalEvent{
			PlayerID:    uint32(g.PlayerID),
			Minute:      g.Minute,
			IsOwnGoal:   g.OwnGoal,
			ScoringTeam: scoringSide(snap, home, g),
		}
		if p, ok := snap.Player(g.PlayerID); ok {
			name := p.Name.String()
			ev.PlayerName = &name
		}
		goals = append(goals, ev)
	}

	return GameEvent{
		EventType:  EventTypeMatchResult,
		MatchID:    m.ID,
		LeagueSlug: m.LeagueSlug,
		HomeTeam:   teamInfo(home, m.HomeTeamID),
		AwayTeam:   teamInfo(away, m.AwayTeamID),
		Score:      ScoreInfo{Home: m.Score.Home, Away: m.Score.Away},
		Goals:      goals,
	}
}

// scoringSide attributes a goal to a side from the scorer's membership of the
// home roster, inverted for own goals. Unresolvable scorers give "unknown".
func scoringSide(snap *world.Snapshot, home *world.Team, g world.Goal) string {
	player, ok := snap.Player(g.PlayerID)
	if !ok || home == nil {
		return SideUnknown
	}

	if home.HasPlayer(player.ID) != g.OwnGoal {
		return SideHome
	}
	return SideAway
}

func teamInfo(t *world.Team, id world.TeamID) TeamInfo {
	if t == nil {
		return TeamInfo{ID: uint32(id), Name: "Unknown", Slug: "unknown"}
	}
	return TeamInfo{ID: uint32(t.ID), Name: t.Name, Slug: t.Slug}
}
