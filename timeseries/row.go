package timeseries

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/covid-globe/schema"
)

// nationalUS - display name of the aggregated US row in the global files
const nationalUS = "US"

// LocationKey - identity of one location series. Two rows describe the same
// location only when every field matches.
type LocationKey struct {
	Lat            string
	Lng            string
	Name           string
	USFileType     bool
	ForceIncludeUS bool
}

func (k LocationKey) String() string {
	return fmt.Sprintf("%s,%s,%s,%t,%t", k.Lat, k.Lng, k.Name, k.USFileType, k.ForceIncludeUS)
}

// Suppressed reports whether the location is the national US aggregate of a
// global file, which is already counted through the detailed US file
func (k LocationKey) Suppressed() bool {
	return !k.USFileType && !k.ForceIncludeUS && k.Name == nationalUS
}

func (k LocationKey) less(o LocationKey) bool {
	if k.Name != o.Name {
		return k.Name < o.Name
	}
	if k.Lat != o.Lat {
		return k.Lat < o.Lat
	}
	if k.Lng != o.Lng {
		return k.Lng < o.Lng
	}
	if k.USFileType != o.USFileType {
		return !k.USFileType
	}
	return !k.ForceIncludeUS && o.ForceIncludeUS
}

// Series - daily metrics of one location keyed by date key
type Series map[string]schema.DailyMetric

type running struct {
	started    bool
	cumulative int64
	day        int64
}

// next folds one cumulative value into the accumulator
func (r running) next(cumulative int64) (running, schema.DailyMetric) {
	m := schema.DailyMetric{Cumulative: cumulative, Day: cumulative}
	if r.started {
		m.Day = cumulative - r.cumulative
		m.Delta = m.Day - r.day
	}
	return running{started: true, cumulative: cumulative, day: m.Day}, m
}

// DeriveSeries builds the series of cumulative values given in date key order
func DeriveSeries(dates []string, cumulatives []int64) Series {
	s := make(Series, len(dates))
	var acc running
	for i, date := range dates {
		var m schema.DailyMetric
		acc, m = acc.next(cumulatives[i])
		s[date] = m
	}
	return s
}

func locationName(parts ...string) string {
	names := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.Replace(p, ",", "", -1)
		if p == "" && i > 0 {
			continue
		}
		names = append(names, p)
	}
	return strings.Join(names, " - ")
}

func parseCount(value string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, value)
	}
	return int64(f), nil
}
