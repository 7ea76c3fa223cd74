package world

import "fmt"

// Behaviour is the tri-state mood summary of a player (or, aggregated, a team).
// The zero value is BehaviourNormal.
type Behaviour uint8

const (
	BehaviourNormal Behaviour = iota
	BehaviourPoor
	BehaviourGood

	behaviourCount
)

var behaviourLabels = [behaviourCount]string{
	BehaviourNormal: "Normal",
	BehaviourPoor:   "Poor",
	BehaviourGood:   "Good",
}

// String returns the display label. Out-of-range values render as "Normal".
func (b Behaviour) String() string {
	if b >= behaviourCount {
		return behaviourLabels[BehaviourNormal]
	}
	return behaviourLabels[b]
}

// ParseBehaviour maps a display label back to a Behaviour.
func ParseBehaviour(s string) (Behaviour, error) {
	for i, label := range behaviourLabels {
		if label == s {
			return Behaviour(i), nil
		}
	}
	return BehaviourNormal, fmt.Errorf("unknown behaviour %q", s)
}

// PlayerStatus is one entry of a player's status set.
type PlayerStatus uint8

const (
	StatusInjured PlayerStatus = iota
	StatusSuspended
	StatusWanted
	StatusUnhappy
	StatusTransferRequest
	StatusTransferListed
	StatusLowMatchFitness
	StatusNeedsRest
	StatusContractExpiring
	StatusFutureConcern
	StatusSlightConcern
	StatusInternationalDuty
	StatusUnfit
	StatusBidReceived
	StatusOnLoan
	StatusYouth
	StatusPlannedRelease

	playerStatusCount
)

// statusInfo pairs the short status code used in world files with the
// concern tag surfaced to consumers. An empty concern means the status
// is not a concern and is omitted from projections.
type statusInfo struct {
	code    string
	concern string
}

var playerStatusTable = [playerStatusCount]statusInfo{
	StatusInjured:           {"Inj", "injured"},
	StatusSuspended:         {"Sus", "suspended"},
	StatusWanted:            {"Wnt", "wanted_by_other_club"},
	StatusUnhappy:           {"Unh", "unhappy"},
	StatusTransferRequest:   {"Req", "transfer_request"},
	StatusTransferListed:    {"Lst", "transfer_listed"},
	StatusLowMatchFitness:   {"Lmp", "low_match_fitness"},
	StatusNeedsRest:         {"Rst", "needs_rest"},
	StatusContractExpiring:  {"Ctr", "contract_expiring"},
	StatusFutureConcern:     {"Fut", "concerned_about_future"},
	StatusSlightConcern:     {"Slt", "slight_concerns"},
	StatusInternationalDuty: {"Int", "international_duty"},
	StatusUnfit:             {"Unf", "unfit"},
	StatusBidReceived:       {"Bid", ""},
	StatusOnLoan:            {"Loa", ""},
	StatusYouth:             {"Yth", ""},
	StatusPlannedRelease:    {"Frt", ""},
}

// Code returns the short status code ("Inj", "Sus", ...).
func (s PlayerStatus) Code() string {
	if s >= playerStatusCount {
		return ""
	}
	return playerStatusTable[s].code
}

// Concern returns the snake_case concern tag, or "" when the status is not a concern.
func (s PlayerStatus) Concern() string {
	if s >= playerStatusCount {
		return ""
	}
	return playerStatusTable[s].concern
}

func (s PlayerStatus) String() string {
	if code := s.Code(); code != "" {
		return code
	}
	return fmt.Sprintf("PlayerStatus(%d)", uint8(s))
}

// ParsePlayerStatus maps a short status code to a PlayerStatus.
func ParsePlayerStatus(code string) (PlayerStatus, error) {
	for i, info := range playerStatusTable {
		if info.code == code {
			return PlayerStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown player status %q", code)
}

// AllPlayerStatuses lists every status in declaration order.
func AllPlayerStatuses() []PlayerStatus {
	out := make([]PlayerStatus, playerStatusCount)
	for i := range out {
		out[i] = PlayerStatus(i)
	}
	return out
}

// SquadStatus is the role a contract assigns a player within the squad.
type SquadStatus uint8

const (
	SquadStatusInvalid SquadStatus = iota
	SquadStatusNotYetSet
	SquadStatusKeyPlayer
	SquadStatusFirstTeamRegular
	SquadStatusRotation
	SquadStatusBackup
	SquadStatusHotProspect
	SquadStatusDecentYoungster
	SquadStatusNotNeeded

	squadStatusCount
)

var squadStatusLabels = [squadStatusCount]string{
	SquadStatusInvalid:          "invalid",
	SquadStatusNotYetSet:        "not_set",
	SquadStatusKeyPlayer:        "key_player",
	SquadStatusFirstTeamRegular: "first_team_regular",
	SquadStatusRotation:         "rotation",
	SquadStatusBackup:           "backup",
	SquadStatusHotProspect:      "hot_prospect",
	SquadStatusDecentYoungster:  "decent_youngster",
	SquadStatusNotNeeded:        "not_needed",
}

// String returns the snake_case label. Out-of-range values render as "unknown".
func (s SquadStatus) String() string {
	if s >= squadStatusCount {
		return "unknown"
	}
	return squadStatusLabels[s]
}

// ParseSquadStatus maps a snake_case label to a SquadStatus.
func ParseSquadStatus(s string) (SquadStatus, error) {
	for i, label := range squadStatusLabels {
		if label == s {
			return SquadStatus(i), nil
		}
	}
	return SquadStatusInvalid, fmt.Errorf("unknown squad status %q", s)
}

// Position is a pitch position a player can play.
type Position uint8

const (
	PositionGoalkeeper Position = iota
	PositionDefenderLeft
	PositionDefenderCenter
	PositionDefenderRight
	PositionWingbackLeft
	PositionWingbackRight
	PositionDefensiveMidfielder
	PositionMidfielderLeft
	PositionMidfielderCenter
	PositionMidfielderRight
	PositionAttackingMidfielderLeft
	PositionAttackingMidfielderCenter
	PositionAttackingMidfielderRight
	PositionForwardLeft
	PositionForwardCenter
	PositionForwardRight
	PositionStriker

	positionCount
)

var positionNames = [positionCount]struct{ short, display string }{
	PositionGoalkeeper:                {"GK", "Goalkeeper"},
	PositionDefenderLeft:              {"DL", "Defender Left"},
	PositionDefenderCenter:            {"DC", "Defender Center"},
	PositionDefenderRight:             {"DR", "Defender Right"},
	PositionWingbackLeft:              {"WBL", "Wingback Left"},
	PositionWingbackRight:             {"WBR", "Wingback Right"},
	PositionDefensiveMidfielder:       {"DM", "Defensive Midfielder"},
	PositionMidfielderLeft:            {"ML", "Midfielder Left"},
	PositionMidfielderCenter:          {"MC", "Midfielder Center"},
	PositionMidfielderRight:           {"MR", "Midfielder Right"},
	PositionAttackingMidfielderLeft:   {"AML", "Attacking Midfielder Left"},
	PositionAttackingMidfielderCenter: {"AMC", "Attacking Midfielder Center"},
	PositionAttackingMidfielderRight:  {"AMR", "Attacking Midfielder Right"},
	PositionForwardLeft:               {"FL", "Forward Left"},
	PositionForwardCenter:             {"FC", "Forward Center"},
	PositionForwardRight:              {"FR", "Forward Right"},
	PositionStriker:                   {"ST", "Striker"},
}

// ShortName returns the abbreviated position ("GK", "DC", "ST", ...).
func (p Position) ShortName() string {
	if p >= positionCount {
		return "?"
	}
	return positionNames[p].short
}

// DisplayName returns the long position name.
func (p Position) DisplayName() string {
	if p >= positionCount {
		return "Unknown"
	}
	return positionNames[p].display
}

func (p Position) String() string { return p.ShortName() }

// ParsePosition maps a short position name to a Position.
func ParsePosition(short string) (Position, error) {
	for i, n := range positionNames {
		if n.short == short {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", short)
}
