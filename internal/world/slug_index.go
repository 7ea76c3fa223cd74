package world

import "fmt"

// EntityKind names an indexable entity kind.
type EntityKind string

const (
	KindTeam   EntityKind = "team"
	KindLeague EntityKind = "league"
	KindPlayer EntityKind = "player"
)

// SlugIndex maps human-readable slugs to numeric ids, one table per entity kind.
// It is built once for a single Snapshot and never mutated afterwards.
// Lookups are exact and case-sensitive.
type SlugIndex struct {
	tables map[EntityKind]map[string]uint32
}

func buildSlugIndex(continents []*Continent) (*SlugIndex, error) {
	idx := &SlugIndex{tables: map[EntityKind]map[string]uint32{
		KindTeam:   {},
		KindLeague: {},
		KindPlayer: {},
	}}

	for _, continent := range continents {
		for _, country := range continent.Countries {
			for _, league := range country.Leagues {
				if err := idx.add(KindLeague, league.Slug, uint32(league.ID)); err != nil {
					return nil, err
				}
				for _, team := range league.Teams {
					if err := idx.add(KindTeam, team.Slug, uint32(team.ID)); err != nil {
						return nil, err
					}
					for _, player := range team.Players {
						// player slugs are optional
						if player.Slug == "" {
							continue
						}
						if err := idx.add(KindPlayer, player.Slug, uint32(player.ID)); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return idx, nil
}

func (idx *SlugIndex) add(kind EntityKind, slug string, id uint32) error {
	if slug == "" {
		return &ValidationError{Reason: fmt.Sprintf("%s %d has an empty slug", kind, id)}
	}
	table := idx.tables[kind]
	if existing, ok := table[slug]; ok && existing != id {
		return &ValidationError{Reason: fmt.Sprintf("%s slug %q used by both %d and %d", kind, slug, existing, id)}
	}
	table[slug] = id
	return nil
}

// Resolve looks up the id registered for slug under kind.
func (idx *SlugIndex) Resolve(kind EntityKind, slug string) (uint32, bool) {
	table, ok := idx.tables[kind]
	if !ok {
		return 0, false
	}
	id, ok := table[slug]
	return id, ok
}

func (idx *SlugIndex) ResolveTeam(slug string) (TeamID, bool) {
	id, ok := idx.Resolve(KindTeam, slug)
	return TeamID(id), ok
}

func (idx *SlugIndex) ResolveLeague(slug string) (LeagueID, bool) {
	id, ok := idx.Resolve(KindLeague, slug)
	return LeagueID(id), ok
}

func (idx *SlugIndex) ResolvePlayer(slug string) (PlayerID, bool) {
	id, ok := idx.Resolve(KindPlayer, slug)
	return PlayerID(id), ok
}

// Len returns the number of slugs indexed for kind.
func (idx *SlugIndex) Len(kind EntityKind) int {
	return len(idx.tables[kind])
}
