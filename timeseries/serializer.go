package timeseries

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-globe/schema"
)

// hideFlag - trailing value telling the front end not to draw a location
const hideFlag = 1

// Serializer - builds the globe document of a dataset
type Serializer struct {
	aggregator *Aggregator
	log        log.FieldLogger
}

// NewSerializer - new serializer using the aggregator for the day statistics
func NewSerializer(aggregator *Aggregator, logger log.FieldLogger) *Serializer {
	return &Serializer{
		aggregator: aggregator,
		log:        entry(logger),
	}
}

// Build creates the document of the dataset. Locations with invalid
// coordinates are left out.
func (s *Serializer) Build(ds *Dataset) schema.GlobeDocument {
	s.log.Info("start creating globe document")

	doc := schema.GlobeDocument{
		Locations:   []schema.GlobeLocation{},
		SeriesStats: []schema.DayStats{},
	}
	if ds == nil {
		return doc
	}

	entries := make([]Entry, 0, len(ds.Records))
	for _, key := range SortedKeys(ds) {
		series := ds.Records[key]
		e := Entry{Key: key, Series: series, Index: -1}

		loc, err := s.location(key, series)
		if err != nil {
			s.log.WithFields(log.Fields{
				"key":   key.String(),
				"error": err,
			}).Warn("unable to parse lat/lng")
		} else {
			e.Index = len(doc.Locations)
			doc.Locations = append(doc.Locations, loc)
		}
		entries = append(entries, e)
	}

	for _, date := range SortedDates(ds) {
		doc.SeriesStats = append(doc.SeriesStats, s.aggregator.Day(entries, date))
	}

	s.log.WithFields(log.Fields{
		"locations": len(doc.Locations),
		"days":      len(doc.SeriesStats),
	}).Info("finished creating globe document")
	return doc
}

// Marshal builds the document and encodes it as json
func (s *Serializer) Marshal(ds *Dataset, pretty bool) ([]byte, error) {
	doc := s.Build(ds)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func (s *Serializer) location(key LocationKey, series Series) (schema.GlobeLocation, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(key.Lat), 64)
	if err != nil {
		return schema.GlobeLocation{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(key.Lng), 64)
	if err != nil {
		return schema.GlobeLocation{}, err
	}

	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	values := make([][]int64, 0, len(dates))
	for _, d := range dates {
		m := series[d]
		v := []int64{m.Cumulative, m.Day, m.Delta}
		if key.Suppressed() {
			v = append(v, hideFlag)
		}
		values = append(values, v)
	}

	population, _ := s.aggregator.Population(key.Name)
	return schema.GlobeLocation{
		Lat:            lat,
		Lng:            lng,
		Location:       key.Name,
		Values:         values,
		Population2020: population,
	}, nil
}

// SortedKeys returns the location keys of a dataset in serialization order
func SortedKeys(ds *Dataset) []LocationKey {
	keys := make([]LocationKey, 0, len(ds.Records))
	for k := range ds.Records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}

// SortedDates returns every date key of a dataset in chronological order
func SortedDates(ds *Dataset) []string {
	seen := make(map[string]struct{}, len(ds.Dates))
	for _, d := range ds.Dates {
		seen[d] = struct{}{}
	}
	for _, series := range ds.Records {
		for d := range series {
			seen[d] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
