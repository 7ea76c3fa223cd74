// Package stats derives consumer-facing numbers and labels from raw entity
// state.
//
// Every function here is pure and total: identical inputs give identical
// outputs, and out-of-range inputs are clamped rather than rejected.
package stats

import (
	"math"
	"time"

	"open-football/internal/world"
)

const (
	// ExpiringSoonDays is the threshold under which a contract counts as expiring.
	ExpiringSoonDays = 180

	PersonalityMax  = 20
	AbilityStarsMax = 5
	ConditionMax    = 100

	// MatchReadyCondition is the minimum condition (0-100) to be match ready.
	MatchReadyCondition = 75
)

// Scale maps a 0.0-1.0 attribute onto 0..max: multiply, floor, clamp.
// Every surfaced attribute goes through this one transform.
func Scale(v float64, max int) int {
	if math.IsNaN(v) {
		return 0
	}
	n := math.Floor(v * float64(max))
	switch {
	case n < 0:
		return 0
	case n > float64(max):
		return max
	}
	return int(n)
}

// HappinessScore returns 0-100: a base from behaviour (Good 80, Normal 50,
// Poor 20) moved 20 points up when happy and 20 down otherwise.
func HappinessScore(b world.Behaviour, happy bool) int {
	base := 50
	switch b {
	case world.BehaviourGood:
		base = 80
	case world.BehaviourPoor:
		base = 20
	}

	if happy {
		return clamp(base+20, 0, 100)
	}
	return clamp(base-20, 0, 100)
}

// PlayerHappiness is HappinessScore for a player.
func PlayerHappiness(p *world.Player) int {
	return HappinessScore(p.Behaviour, p.Happy)
}

// Concerns maps a status set to concern tags, keeping status order and
// dropping statuses that are not concerns.
func Concerns(statuses []world.PlayerStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if tag := s.Concern(); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Age returns completed years between birth and asOf. Never negative.
func Age(birth, asOf time.Time) int {
	years := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() || (asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// DaysUntil returns whole calendar days from asOf to t; negative once t has passed.
func DaysUntil(t, asOf time.Time) int {
	from := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// IsExpiringSoon reports whether a contract this many days from expiry is expiring soon.
func IsExpiringSoon(daysToExpiration int) bool {
	return daysToExpiration < ExpiringSoonDays
}

// AbilityStars scales current ability to 0-5.
func AbilityStars(p *world.Player) int {
	return Scale(p.CurrentAbility, AbilityStarsMax)
}

// Condition scales physical condition to 0-100.
func Condition(p *world.Player) int {
	return Scale(p.Condition, ConditionMax)
}

// IsMatchReady reports whether a player could be picked today.
func IsMatchReady(p *world.Player) bool {
	return Condition(p) >= MatchReadyCondition && !p.IsInjured() && !p.IsSuspended()
}

// PersonalityScores holds personality attributes on the 0-20 scale.
type PersonalityScores struct {
	Ambition        int
	Loyalty         int
	Professionalism int
	Temperament     int
}

// Personality scales every personality attribute to 0-20.
func Personality(p world.Personality) PersonalityScores {
	return PersonalityScores{
		Ambition:        Scale(p.Ambition, PersonalityMax),
		Loyalty:         Scale(p.Loyalty, PersonalityMax),
		Professionalism: Scale(p.Professionalism, PersonalityMax),
		Temperament:     Scale(p.Temperament, PersonalityMax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
