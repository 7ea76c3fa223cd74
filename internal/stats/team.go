package stats

import (
	"time"

	"open-football/internal/world"
)

// ReputationTier buckets a 0-10000 world reputation.
type ReputationTier uint8

const (
	TierLocal ReputationTier = iota
	TierRegional
	TierNational
	TierContinental
	TierWorldClass

	tierCount
)

var tierLabels = [tierCount]string{
	TierLocal:       "Local",
	TierRegional:    "Regional",
	TierNational:    "National",
	TierContinental: "Continental",
	TierWorldClass:  "World Class",
}

func (t ReputationTier) String() string {
	if t >= tierCount {
		return tierLabels[TierLocal]
	}
	return tierLabels[t]
}

// Reputation maps a score to its tier; breakpoints are inclusive upper bounds.
func Reputation(score int) ReputationTier {
	switch {
	case score <= 1000:
		return TierLocal
	case score <= 3000:
		return TierRegional
	case score <= 5000:
		return TierNational
	case score <= 7000:
		return TierContinental
	default:
		return TierWorldClass
	}
}

// SquadSummary aggregates a roster. Averages are 0 for an empty roster.
type SquadSummary struct {
	Total            int
	AverageAge       float64
	AverageAbility   float64
	AverageCondition float64
	Injured          int
	Suspended        int
	Unhappy          int
}

// Summarize computes the squad aggregates as of the given date.
func Summarize(players []*world.Player, asOf time.Time) SquadSummary {
	sum := SquadSummary{Total: len(players)}

	var age, ability, condition int
	for _, p := range players {
		age += Age(p.BirthDate, asOf)
		ability += AbilityStars(p)
		condition += Condition(p)

		if p.IsInjured() {
			sum.Injured++
		}
		if p.IsSuspended() {
			sum.Suspended++
		}
		if !p.Happy {
			sum.Unhappy++
		}
	}

	sum.AverageAge = mean(age, len(players))
	sum.AverageAbility = mean(ability, len(players))
	sum.AverageCondition = mean(condition, len(players))
	return sum
}

// Morale counts players in poor and good mood and derives the team behaviour.
type Morale struct {
	Behaviour world.Behaviour
	Poor      int
	Good      int
}

// TeamMorale classifies a roster: Good when good moods outnumber poor ones,
// Poor in the opposite case, Normal on a tie (including an empty roster).
func TeamMorale(players []*world.Player) Morale {
	var m Morale
	for _, p := range players {
		switch p.Behaviour {
		case world.BehaviourGood:
			m.Good++
		case world.BehaviourPoor:
			m.Poor++
		}
	}

	switch {
	case m.Good > m.Poor:
		m.Behaviour = world.BehaviourGood
	case m.Poor > m.Good:
		m.Behaviour = world.BehaviourPoor
	default:
		m.Behaviour = world.BehaviourNormal
	}
	return m
}

// MeanHappiness is the integer mean of the roster's happiness scores, 0 when empty.
func MeanHappiness(players []*world.Player) int {
	if len(players) == 0 {
		return 0
	}
	total := 0
	for _, p := range players {
		total += PlayerHappiness(p)
	}
	return total / len(players)
}

// WeeklyWage sums the weekly salaries of every contracted player.
func WeeklyWage(players []*world.Player) uint64 {
	var total uint64
	for _, p := range players {
		if p.Contract != nil {
			total += uint64(p.Contract.Salary)
		}
	}
	return total
}

func mean(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
