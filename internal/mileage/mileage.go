// Package mileage turns state-crossing records into per-state mileage totals
// for IFTA reporting. Everything here is a pure function over domain types:
// no I/O, no hidden state, identical input always yields identical output.
package mileage

import (
	"fmt"
	"sort"

	"github.com/haulledger/backend/internal/domain"
)

// Aggregate converts the crossings of a single trip into per-state totals,
// sorted by miles descending (ties broken by state code ascending).
//
// Each interval between two consecutive crossings is attributed to the state
// of the earlier crossing: the vehicle was in that state until it crossed into
// the next one. Revisiting a state adds to the same entry. Fewer than two
// crossings define no interval and yield an empty slice.
//
// Crossings are ordered by CrossedAt before pairing (stable, so equal
// timestamps keep the caller's order); the input slice is not modified.
// Odometer deltas are summed as-is, including negative ones from historical
// data that predates write-time validation.
//
// A crossing with an empty State, a negative Odometer, or a zero CrossedAt
// is rejected with an error wrapping domain.ErrPrecondition.
func Aggregate(crossings []domain.Crossing) ([]domain.StateMileage, error) {
	if err := checkCrossings(crossings); err != nil {
		return nil, err
	}
	acc := newAccumulator()
	acc.addTrip(crossings)
	return acc.result(), nil
}

// AggregateTrips aggregates each trip's crossings independently and merges
// the per-state totals. The last crossing of one trip is never paired with
// the first crossing of another.
func AggregateTrips(trips [][]domain.Crossing) ([]domain.StateMileage, error) {
	for i, crossings := range trips {
		if err := checkCrossings(crossings); err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
	}
	acc := newAccumulator()
	for _, crossings := range trips {
		acc.addTrip(crossings)
	}
	return acc.result(), nil
}

// Total returns the sum of miles across entries.
func Total(entries []domain.StateMileage) int64 {
	var total int64
	for _, e := range entries {
		total += e.Miles
	}
	return total
}

func checkCrossings(crossings []domain.Crossing) error {
	for i, c := range crossings {
		switch {
		case c.State == "":
			return fmt.Errorf("%w: crossing %d has no state", domain.ErrPrecondition, i)
		case c.Odometer < 0:
			return fmt.Errorf("%w: crossing %d has negative odometer %d", domain.ErrPrecondition, i, c.Odometer)
		case c.CrossedAt.IsZero():
			return fmt.Errorf("%w: crossing %d has no timestamp", domain.ErrPrecondition, i)
		}
	}
	return nil
}

// accumulator sums miles per state code, remembering first-seen display names.
type accumulator struct {
	totals map[string]*domain.StateMileage
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]*domain.StateMileage)}
}

func (a *accumulator) addTrip(crossings []domain.Crossing) {
	if len(crossings) < 2 {
		return
	}
	ordered := make([]domain.Crossing, len(crossings))
	copy(ordered, crossings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CrossedAt.Before(ordered[j].CrossedAt)
	})

	for i := 0; i < len(ordered)-1; i++ {
		cur, next := ordered[i], ordered[i+1]
		miles := next.Odometer - cur.Odometer
		if e, ok := a.totals[cur.State]; ok {
			e.Miles += miles
			continue
		}
		a.totals[cur.State] = &domain.StateMileage{
			State:     cur.State,
			StateName: cur.StateName,
			Miles:     miles,
		}
	}
}

func (a *accumulator) result() []domain.StateMileage {
	out := make([]domain.StateMileage, 0, len(a.totals))
	for _, e := range a.totals {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Miles != out[j].Miles {
			return out[i].Miles > out[j].Miles
		}
		return out[i].State < out[j].State
	})
	return out
}
