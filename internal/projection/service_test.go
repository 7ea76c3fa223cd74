package projection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"open-football/internal/world"
	"open-football/internal/world/worldtest"
)

func intPtr(n int) *int { return &n }

func newTestService(t *testing.T, opts ...world.SnapshotOption) *Service {
	t.Helper()
	return NewService(worldtest.LoadedContainer(t, opts...))
}

// TestRecentEventsScenario filters to a team that only plays in the second league
func TestRecentEventsScenario(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RecentEvents(context.Background(), RecentEventsQuery{Limit: intPtr(10), TeamSlug: worldtest.SlugCosta})
	if err != nil {
		t.Fatalf("RecentEvents failed: %v", err)
	}

	if len(resp.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(resp.Events))
	}
	if resp.TotalMatches != worldtest.TotalMatches {
		t.Errorf("Expected total %d, got %d", worldtest.TotalMatches, resp.TotalMatches)
	}
	if resp.GameDate != "2024-06-15" {
		t.Errorf("Expected game date 2024-06-15, got %s", resp.GameDate)
	}

	ev := resp.Events[0]
	if ev.EventType != EventTypeMatchResult || ev.MatchID != "ll-2" || ev.LeagueSlug != worldtest.SlugLaLiga {
		t.Errorf("Unexpected event header %+v", ev)
	}
	if ev.HomeTeam.Slug != worldtest.SlugCosta || ev.AwayTeam.Name != "Sierra FC" {
		t.Errorf("Unexpected teams %+v vs %+v", ev.HomeTeam, ev.AwayTeam)
	}
	if ev.Score != (ScoreInfo{Home: 2, Away: 1}) {
		t.Errorf("Unexpected score %+v", ev.Score)
	}
}

// TestRecentEventsGoalAttribution covers own goals and unknown scorers
func TestRecentEventsGoalAttribution(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.RecentEvents(context.Background(), RecentEventsQuery{})
	if err != nil {
		t.Fatalf("RecentEvents failed: %v", err)
	}
	if len(resp.Events) != worldtest.TotalMatches {
		t.Fatalf("Expected %d events, got %d", worldtest.TotalMatches, len(resp.Events))
	}

	unknown := resp.Events[3]
	if len(unknown.Goals) != 1 {
		t.Fatalf("Expected 1 goal in ll-1, got %d", len(unknown.Goals))
	}
	if g := unknown.Goals[0]; g.ScoringTeam != SideUnknown || g.PlayerName != nil {
		t.Errorf("Unknown scorer should give side unknown and no name, got %+v", g)
	}

	goals := resp.Events[4].Goals
	want := []struct {
		name    string
		ownGoal bool
		side    string
	}{
		{"Luis Ortega", false, SideHome},
		{"Diego Mora", true, SideHome},
		{"Diego Mora", false, SideAway},
	}
	if len(goals) != len(want) {
		t.Fatalf("Expected %d goals, got %d", len(want), len(goals))
	}
	for i, w := range want {
		g := goals[i]
		if g.PlayerName == nil || *g.PlayerName != w.name {
			t.Errorf("Goal %d: expected scorer %s, got %v", i, w.name, g.PlayerName)
		}
		if g.IsOwnGoal != w.ownGoal || g.ScoringTeam != w.side {
			t.Errorf("Goal %d: expected own=%v side=%s, got own=%v side=%s", i, w.ownGoal, w.side, g.IsOwnGoal, g.ScoringTeam)
		}
	}
}

// TestRecentEventsLimits verifies the limit never changes the total count
func TestRecentEventsLimits(t *testing.T) {
	svc := newTestService(t, world.WithoutSlugIndex())
	svc.eventsLimit = 3

	tests := []struct {
		name       string
		limit      *int
		wantEvents int
	}{
		{"default limit", nil, 3},
		{"zero", intPtr(0), 0},
		{"one", intPtr(1), 1},
		{"above total", intPtr(500), worldtest.TotalMatches},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.RecentEvents(context.Background(), RecentEventsQuery{Limit: tt.limit})
			if err != nil {
				t.Fatalf("RecentEvents failed: %v", err)
			}
			if len(resp.Events) != tt.wantEvents {
				t.Errorf("Expected %d events, got %d", tt.wantEvents, len(resp.Events))
			}
			if resp.TotalMatches != worldtest.TotalMatches {
				t.Errorf("Expected total %d, got %d", worldtest.TotalMatches, resp.TotalMatches)
			}
			if resp.Events == nil {
				t.Error("Events must be an empty list, not nil")
			}
		})
	}
}

// TestNotLoaded verifies every query fails cleanly before the first Snapshot
func TestNotLoaded(t *testing.T) {
	svc := NewService(world.NewContainer())
	ctx := context.Background()

	queries := map[string]func() error{
		"recent events": func() error { _, err := svc.RecentEvents(ctx, RecentEventsQuery{}); return err },
		"player state":  func() error { _, err := svc.PlayerState(ctx, worldtest.PlayerStar); return err },
		"team ai state": func() error { _, err := svc.TeamAIState(ctx, worldtest.SlugCosta); return err },
		"squad state":   func() error { _, err := svc.SquadState(ctx, worldtest.SlugCosta); return err },
		"game date":     func() error { _, err := svc.GameDate(ctx); return err },
	}

	for name, run := range queries {
		t.Run(name, func(t *testing.T) {
			err := run()
			if !errors.Is(err, ErrNotLoaded) {
				t.Errorf("Expected ErrNotLoaded, got %v", err)
			}
			if ErrorKind(err) != KindNotLoaded {
				t.Errorf("Expected kind %s, got %s", KindNotLoaded, ErrorKind(err))
			}
		})
	}
}

// TestInvalidInputBeforeAccess verifies malformed input wins over NotLoaded
func TestInvalidInputBeforeAccess(t *testing.T) {
	svc := NewService(world.NewContainer())

	_, err := svc.RecentEvents(context.Background(), RecentEventsQuery{Limit: intPtr(-1)})
	var inv *InvalidInputError
	if !errors.As(err, &inv) {
		t.Fatalf("Expected InvalidInputError, got %v", err)
	}
	if inv.Field != "limit" {
		t.Errorf("Expected field limit, got %s", inv.Field)
	}
}

// TestIndexUnavailable verifies a missing index is distinct from a missing slug
func TestIndexUnavailable(t *testing.T) {
	svc := newTestService(t, world.WithoutSlugIndex())
	ctx := context.Background()

	if _, err := svc.TeamAIState(ctx, worldtest.SlugCosta); !errors.Is(err, ErrIndexUnavailable) {
		t.Errorf("TeamAIState: expected ErrIndexUnavailable, got %v", err)
	}
	if _, err := svc.SquadState(ctx, worldtest.SlugCosta); !errors.Is(err, ErrIndexUnavailable) {
		t.Errorf("SquadState: expected ErrIndexUnavailable, got %v", err)
	}
	if _, err := svc.RecentEvents(ctx, RecentEventsQuery{TeamSlug: worldtest.SlugCosta}); !errors.Is(err, ErrIndexUnavailable) {
		t.Errorf("RecentEvents: expected ErrIndexUnavailable, got %v", err)
	}

	// id lookups do not need the index
	if _, err := svc.PlayerState(ctx, worldtest.PlayerStar); err != nil {
		t.Errorf("PlayerState should not need the index, got %v", err)
	}
}

// TestNotFound verifies unknown identifiers report the entity kind
func TestNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		run    func() error
		entity world.EntityKind
	}{
		{"player", func() error { _, err := svc.PlayerState(ctx, worldtest.PlayerUnknown); return err }, world.KindPlayer},
		{"team ai state", func() error { _, err := svc.TeamAIState(ctx, "nowhere-fc"); return err }, world.KindTeam},
		{"squad state", func() error { _, err := svc.SquadState(ctx, "Costa-Athletic"); return err }, world.KindTeam},
		{"events filter", func() error {
			_, err := svc.RecentEvents(ctx, RecentEventsQuery{TeamSlug: "nowhere-fc"})
			return err
		}, world.KindTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nf *NotFoundError
			err := tt.run()
			if !errors.As(err, &nf) {
				t.Fatalf("Expected NotFoundError, got %v", err)
			}
			if nf.Entity != tt.entity {
				t.Errorf("Expected entity %s, got %s", tt.entity, nf.Entity)
			}
		})
	}
}

// TestPlayerState checks the derived fields of a fully populated player
func TestPlayerState(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.PlayerState(context.Background(), worldtest.PlayerStar)
	if err != nil {
		t.Fatalf("PlayerState failed: %v", err)
	}

	if resp.Name != "Luis Ortega" || resp.Position != "ST" || resp.Age != 26 {
		t.Errorf("Unexpected identity %s/%s/%d", resp.Name, resp.Position, resp.Age)
	}
	if resp.Mood != (Mood{Happiness: 100, IsHappy: true, Behaviour: "Good"}) {
		t.Errorf("Unexpected mood %+v", resp.Mood)
	}
	if resp.Form != (Form{Condition: 80, AverageRating: 7.2, Goals: 12, Assists: 4, MatchesPlayed: 30, IsMatchReady: true}) {
		t.Errorf("Unexpected form %+v", resp.Form)
	}
	if resp.Personality != (Personality{Ambition: 15, Loyalty: 10, Professionalism: 18, Temperament: 6}) {
		t.Errorf("Unexpected personality %+v", resp.Personality)
	}

	wantContract := ContractState{SalaryK: 45, DaysToExpiration: 179, IsExpiringSoon: true, SquadStatus: "key_player"}
	if resp.Contract == nil || *resp.Contract != wantContract {
		t.Errorf("Expected contract %+v, got %+v", wantContract, resp.Contract)
	}

	if len(resp.Concerns) != 1 || resp.Concerns[0] != "wanted_by_other_club" {
		t.Errorf("Unexpected concerns %v", resp.Concerns)
	}
}

// TestPlayerStateWithoutContract verifies the contract is null and concerns an empty list
func TestPlayerStateWithoutContract(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.PlayerState(context.Background(), worldtest.PlayerKeeper)
	if err != nil {
		t.Fatalf("PlayerState failed: %v", err)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Contains(body, []byte(`"contract":null`)) {
		t.Errorf("Expected null contract in %s", body)
	}
	if !bytes.Contains(body, []byte(`"concerns":[]`)) {
		t.Errorf("Expected empty concerns in %s", body)
	}
}

// TestPlayerStateIdempotent verifies repeated queries on one generation give identical bytes
func TestPlayerStateIdempotent(t *testing.T) {
	svc := newTestService(t)

	encode := func() []byte {
		resp, err := svc.PlayerState(context.Background(), worldtest.PlayerInjured)
		if err != nil {
			t.Fatalf("PlayerState failed: %v", err)
		}
		body, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		return body
	}

	first, second := encode(), encode()
	if !bytes.Equal(first, second) {
		t.Errorf("Responses differ:\n%s\n%s", first, second)
	}
}

// TestTeamAIState checks aggregates for a three-player roster
func TestTeamAIState(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.TeamAIState(context.Background(), worldtest.SlugCosta)
	if err != nil {
		t.Fatalf("TeamAIState failed: %v", err)
	}

	if resp.ID != uint32(worldtest.TeamCosta) || resp.LeagueSlug != worldtest.SlugLaLiga || resp.LeagueName != "La Liga" {
		t.Errorf("Unexpected identity %+v", resp)
	}
	if resp.RecentForm != RecentFormPlaceholder {
		t.Errorf("Expected placeholder form, got %q", resp.RecentForm)
	}
	if resp.Finances.WeeklyWageK != 57 {
		t.Errorf("Expected weekly wage 57k, got %d", resp.Finances.WeeklyWageK)
	}

	sq := resp.SquadSummary
	if sq.TotalPlayers != 3 || sq.InjuredCount != 1 || sq.SuspendedCount != 0 || sq.UnhappyCount != 1 {
		t.Errorf("Unexpected counts %+v", sq)
	}
	if math.Abs(sq.AverageAge-83.0/3) > 1e-9 || sq.AverageAbility != 2 || math.Abs(sq.AverageCondition-217.0/3) > 1e-9 {
		t.Errorf("Unexpected averages %+v", sq)
	}

	if resp.Morale != (Morale{TeamBehaviour: "Normal", PlayersPoorMood: 1, PlayersGoodMood: 1}) {
		t.Errorf("Unexpected morale %+v", resp.Morale)
	}
	if resp.Tactics == nil || *resp.Tactics != (Tactics{Formation: "4-3-3", Style: "Attacking"}) {
		t.Errorf("Unexpected tactics %+v", resp.Tactics)
	}
	if resp.Reputation != (Reputation{World: 6200, Level: "Continental"}) {
		t.Errorf("Unexpected reputation %+v", resp.Reputation)
	}
}

// TestTeamAIStateEmptyRoster verifies an empty squad yields zeroes and no tactics
func TestTeamAIStateEmptyRoster(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.TeamAIState(context.Background(), worldtest.SlugValle)
	if err != nil {
		t.Fatalf("TeamAIState failed: %v", err)
	}
	if resp.SquadSummary != (SquadSummary{}) {
		t.Errorf("Expected zero summary, got %+v", resp.SquadSummary)
	}
	if resp.Morale.TeamBehaviour != "Normal" {
		t.Errorf("Expected Normal behaviour, got %s", resp.Morale.TeamBehaviour)
	}
	if resp.Tactics != nil {
		t.Errorf("Expected no tactics, got %+v", resp.Tactics)
	}
	if resp.Reputation.Level != "Local" {
		t.Errorf("Expected Local, got %s", resp.Reputation.Level)
	}
}

// TestSquadState checks team morale and the flattened player records
func TestSquadState(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.SquadState(context.Background(), worldtest.SlugCosta)
	if err != nil {
		t.Fatalf("SquadState failed: %v", err)
	}

	if resp.TeamMorale != 56 {
		t.Errorf("Expected morale 56, got %d", resp.TeamMorale)
	}
	if len(resp.Players) != 3 {
		t.Fatalf("Expected 3 players, got %d", len(resp.Players))
	}

	star := resp.Players[0]
	if star.Position != "Striker, Forward Center" || star.Ability != 3 || star.Ambition != 15 {
		t.Errorf("Unexpected star %+v", star)
	}

	injured := resp.Players[1]
	if !injured.IsInjured || injured.IsMatchReady || !injured.IsTransferListed {
		t.Errorf("Unexpected injured flags %+v", injured)
	}
	if injured.ContractDaysRemaining == nil || *injured.ContractDaysRemaining != 180 || injured.ContractExpiringSoon {
		t.Errorf("Expected 180 days and not expiring, got %v/%v", injured.ContractDaysRemaining, injured.ContractExpiringSoon)
	}
	if injured.SquadStatus == nil || *injured.SquadStatus != "rotation" {
		t.Errorf("Unexpected squad status %v", injured.SquadStatus)
	}
	if len(injured.Concerns) != 2 || injured.Concerns[0] != "injured" || injured.Concerns[1] != "unhappy" {
		t.Errorf("Unexpected concerns %v", injured.Concerns)
	}

	keeper := resp.Players[2]
	if keeper.ContractDaysRemaining != nil || keeper.SquadStatus != nil || keeper.ContractExpiringSoon {
		t.Errorf("Keeper has no contract, got %+v", keeper)
	}
	if keeper.Happiness != 70 || keeper.Condition != 87 {
		t.Errorf("Unexpected keeper mood/form %d/%d", keeper.Happiness, keeper.Condition)
	}
}

// TestSquadStateEmptyRoster verifies zero morale and an empty player list
func TestSquadStateEmptyRoster(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.SquadState(context.Background(), worldtest.SlugValle)
	if err != nil {
		t.Fatalf("SquadState failed: %v", err)
	}
	if resp.TeamMorale != 0 {
		t.Errorf("Expected morale 0, got %d", resp.TeamMorale)
	}
	if resp.Players == nil || len(resp.Players) != 0 {
		t.Errorf("Expected empty non-nil players, got %#v", resp.Players)
	}
}

// TestGameDate verifies the date breakdown and generation
func TestGameDate(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GameDate(context.Background())
	if err != nil {
		t.Fatalf("GameDate failed: %v", err)
	}
	want := GameDateResponse{Date: "2024-06-15", Year: 2024, Month: 6, Day: 15, Weekday: "Saturday", SnapshotID: resp.SnapshotID, Generation: 1}
	if *resp != want {
		t.Errorf("Expected %+v, got %+v", want, *resp)
	}
	if resp.SnapshotID == "" {
		t.Error("Expected a snapshot id")
	}
}
