package world

// MatchQuery bounds a traversal over every match in the world tree.
type MatchQuery struct {
	// Team restricts results to matches involving this team. Nil means no filter.
	Team *TeamID
	// Limit caps the number of matches returned. Zero returns none.
	Limit int
}

// MatchScan is the traversal result.
type MatchScan struct {
	Matches []*Match
	// Scanned counts every match visited, whether or not it passed the filter
	// or fit under the limit. It always equals Snapshot.MatchCount.
	Scanned int
}

// CollectMatches walks continents, countries, leagues and matches in storage
// order and returns up to q.Limit matches passing the team filter.
//
// The walk always covers the whole tree so Scanned stays exact; the limit only
// bounds the result size.
func CollectMatches(s *Snapshot, q MatchQuery) MatchScan {
	limit := q.Limit
	if limit < 0 {
		limit = 0
	}

	scan := MatchScan{Matches: make([]*Match, 0, min(limit, s.MatchCount()))}

	for _, continent := range s.Continents {
		for _, country := range continent.Countries {
			for _, league := range country.Leagues {
				for _, m := range league.Matches {
					scan.Scanned++

					if len(scan.Matches) >= limit {
						continue
					}
					if q.Team != nil && !m.Involves(*q.Team) {
						continue
					}
					scan.Matches = append(scan.Matches, m)
				}
			}
		}
	}

	return scan
}
