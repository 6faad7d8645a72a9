package timeseries

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-globe/schema"
)

// Entry - one location in serialization order. Index is its position in the
// serialized locations, -1 when it was left out.
type Entry struct {
	Key    LocationKey
	Series Series
	Index  int
}

// Aggregator - computes the statistics of a day across all locations
type Aggregator struct {
	population      schema.PopulationTable
	worldPopulation int64
	log             log.FieldLogger
}

// NewAggregator - new aggregator, world population has to be positive
func NewAggregator(population schema.PopulationTable, worldPopulation int64, logger log.FieldLogger) (*Aggregator, error) {
	if worldPopulation <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorldPopulation, worldPopulation)
	}
	return &Aggregator{
		population:      population,
		worldPopulation: worldPopulation,
		log:             entry(logger),
	}, nil
}

// Population returns the population of a location and whether it is known
func (a *Aggregator) Population(name string) (int64, bool) {
	p, ok := a.population[name]
	return p, ok
}

// Day collects the global sums and leaderboards of one date. The
// entries have to be in serialization order.
func (a *Aggregator) Day(entries []Entry, date string) schema.DayStats {
	stats := schema.DayStats{Name: date}

	for _, e := range entries {
		m, ok := e.Series[date]
		if !ok {
			continue
		}

		if e.Key.Suppressed() {
			a.log.WithFields(log.Fields{
				"date":     date,
				"location": e.Key.Name,
			}).Debug("skip national aggregate from global sums")
		} else {
			stats.CumulativeGlobal += m.Cumulative
			stats.DayGlobal += m.Day
			stats.DeltaGlobal += m.Delta
		}

		if e.Index < 0 {
			continue
		}

		compete(&stats.TopCumulative, float64(m.Cumulative), e.Index)
		compete(&stats.TopDay, float64(abs(m.Day)), e.Index)
		compete(&stats.TopDelta, float64(abs(m.Delta)), e.Index)

		if p, ok := a.Population(e.Key.Name); ok && p > 0 {
			compete(&stats.TopCumulativePercent, float64(m.Cumulative)/float64(p)*100, e.Index)
		}
	}

	stats.CumulativeGlobalPercent = float64(stats.CumulativeGlobal) / float64(a.worldPopulation) * 100
	return stats
}

// compete keeps the first location reaching the highest value
func compete(l *schema.Leaderboard, value float64, idx int) {
	if value > l.Value {
		l.Value = value
		l.LocationIdx = idx
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
