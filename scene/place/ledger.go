package place

import "github.com/go-gl/mathgl/mgl64"

// ledger is the running record of accepted placement positions and their
// spacing requirements. It only serves collision queries during a run and is
// discarded with the engine.
type ledger struct {
	entries []ledgerEntry
}

type ledgerEntry struct {
	pos     mgl64.Vec2
	spacing float64
}

// collides reports whether a candidate with the given required spacing is too
// close to any recorded placement. The larger of the two declared spacings
// governs, so the verdict is symmetric in insertion order.
func (l *ledger) collides(p mgl64.Vec2, spacing float64) bool {
	for _, e := range l.entries {
		s := max(spacing, e.spacing)
		if e.pos.Sub(p).LenSqr() < s*s {
			return true
		}
	}
	return false
}

// near reports whether any recorded placement lies within dist of p.
func (l *ledger) near(p mgl64.Vec2, dist float64) bool {
	for _, e := range l.entries {
		if e.pos.Sub(p).LenSqr() < dist*dist {
			return true
		}
	}
	return false
}

func (l *ledger) add(p mgl64.Vec2, spacing float64) {
	l.entries = append(l.entries, ledgerEntry{pos: p, spacing: spacing})
}
