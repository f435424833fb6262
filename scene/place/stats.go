package place

import "log/slog"

// Stats counts placement outcomes for diagnostics. Rejections are expected
// filtering, never errors; the counters exist so a run can be inspected.
type Stats struct {
	// Accepted placements per pass.
	Trees      int
	General    int
	Satellites int
	Grass      int

	// Rejected candidates per filter.
	ClearingRejected  int
	AnnulusRejected   int
	CollisionRejected int
	AltitudeRejected  int
}

// Placed returns the total number of accepted placements.
func (s Stats) Placed() int {
	return s.Trees + s.General + s.Satellites + s.Grass
}

// LogValue implements slog.LogValuer so a whole Stats can be attached to a
// log record as one group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("trees", s.Trees),
		slog.Int("general", s.General),
		slog.Int("satellites", s.Satellites),
		slog.Int("grass", s.Grass),
		slog.Int("rejected_clearing", s.ClearingRejected),
		slog.Int("rejected_annulus", s.AnnulusRejected),
		slog.Int("rejected_collision", s.CollisionRejected),
		slog.Int("rejected_altitude", s.AltitudeRejected),
	)
}
