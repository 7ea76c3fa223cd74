package projection

import (
	"context"

	"open-football/internal/world"
)

const dateLayout = "2006-01-02"

// GameDateResponse reports the simulation clock of the current Snapshot.
type GameDateResponse struct {
	Date       string `json:"date"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Weekday    string `json:"weekday"`
	SnapshotID string `json:"snapshot_id"`
	Generation uint64 `json:"generation"`
}

// GameDate returns the date cursor of the loaded Snapshot and the container
// generation it was read from.
func (s *Service) GameDate(ctx context.Context) (*GameDateResponse, error) {
	var resp *GameDateResponse
	err := s.view(ctx, func(snap *world.Snapshot, gen uint64) error {
		d := snap.Date
		resp = &GameDateResponse{
			Date:       d.Format(dateLayout),
			Year:       d.Year(),
			Month:      int(d.Month()),
			Day:        d.Day(),
			Weekday:    d.Weekday().String(),
			SnapshotID: snap.ID.String(),
			Generation: gen,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
