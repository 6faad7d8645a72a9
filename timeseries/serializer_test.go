package timeseries

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-globe/schema"
)

type SerializerTestSuite struct {
	suite.Suite
	hook       *test.Hook
	serializer *Serializer
	dataset    *Dataset
}

func (s *SerializerTestSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	s.hook = hook

	population := schema.PopulationTable{"Italy": 1000, "Korea South": 500, "US": 2000}
	aggregator, err := NewAggregator(population, population.Total(), logger)
	s.Require().NoError(err)
	s.serializer = NewSerializer(aggregator, logger)

	dates := []string{"20-01-22", "20-01-23"}
	records := make(map[LocationKey]Series)
	records[LocationKey{Lat: "41.8", Lng: "12.5", Name: "Italy"}] = DeriveSeries(dates, []int64{10, 30})
	records[LocationKey{Lat: "35.9", Lng: "127.7", Name: "Korea South"}] = DeriveSeries(dates, []int64{2, 10})
	records[LocationKey{Name: "Diamond Princess"}] = DeriveSeries(dates, []int64{100, 100})
	records[LocationKey{Lat: "40", Lng: "-100", Name: "US"}] = DeriveSeries(dates, []int64{20, 50})
	records[LocationKey{Lat: "32.5", Lng: "-86.6", Name: "US - Alabama", USFileType: true}] = DeriveSeries(dates, []int64{20, 50})

	s.dataset = &Dataset{
		Dates:   []string{"20-01-23", "20-01-22"},
		Records: records,
	}
}

func (s *SerializerTestSuite) TestBuildLocations() {
	doc := s.serializer.Build(s.dataset)

	s.Len(doc.Locations, 4)
	names := make([]string, len(doc.Locations))
	for i, l := range doc.Locations {
		names[i] = l.Location
	}
	s.Equal([]string{"Italy", "Korea South", "US", "US - Alabama"}, names)

	italy := doc.Locations[0]
	s.Equal(41.8, italy.Lat)
	s.Equal(12.5, italy.Lng)
	s.Equal(int64(1000), italy.Population2020)
	// values follow the chronological order, not the header order
	s.Equal([][]int64{{10, 10, 0}, {30, 20, 10}}, italy.Values)

	s.Equal([][]int64{{20, 20, 0, 1}, {50, 30, 10, 1}}, doc.Locations[2].Values)
	s.Equal(int64(0), doc.Locations[3].Population2020)
}

func (s *SerializerTestSuite) TestBuildSkipsInvalidCoordinates() {
	doc := s.serializer.Build(s.dataset)

	for _, l := range doc.Locations {
		s.NotEqual("Diamond Princess", l.Location)
	}

	warned := false
	for _, e := range s.hook.AllEntries() {
		key, _ := e.Data["key"].(string)
		if e.Level == logrus.WarnLevel && strings.Contains(key, "Diamond Princess") {
			warned = true
		}
	}
	s.True(warned, "missing warning of invalid coordinates")
}

func (s *SerializerTestSuite) TestBuildSeriesStats() {
	doc := s.serializer.Build(s.dataset)

	s.Len(doc.SeriesStats, 2)
	s.Equal("20-01-22", doc.SeriesStats[0].Name)
	s.Equal("20-01-23", doc.SeriesStats[1].Name)

	first := doc.SeriesStats[0]
	// Diamond Princess counts, the national US row does not
	s.Equal(int64(10+2+100+20), first.CumulativeGlobal)
	s.InDelta(float64(132)/3500*100, first.CumulativeGlobalPercent, 1e-9)

	// indexes point into the serialized locations
	s.Equal(2, first.TopCumulative.LocationIdx)
	s.Equal(float64(20), first.TopCumulative.Value)
	s.Equal("US", doc.Locations[first.TopCumulative.LocationIdx].Location)

	second := doc.SeriesStats[1]
	s.Equal(int64(30+10+100+50), second.CumulativeGlobal)
	s.Equal(int64(20+8+0+30), second.DayGlobal)
	s.Equal(schema.Leaderboard{Value: 10, LocationIdx: 0}, second.TopDelta)
	s.Equal(0, second.TopCumulativePercent.LocationIdx)
	s.InDelta(3.0, second.TopCumulativePercent.Value, 1e-9)
}

func (s *SerializerTestSuite) TestMarshalRoundTrip() {
	expected := s.serializer.Build(s.dataset)

	for _, pretty := range []bool{false, true} {
		data, err := s.serializer.Marshal(s.dataset, pretty)
		s.Require().NoError(err)
		s.Equal(pretty, strings.Contains(string(data), "\n  "))

		var actual schema.GlobeDocument
		s.Require().NoError(json.Unmarshal(data, &actual))
		s.Equal(expected, actual)
	}
}

func (s *SerializerTestSuite) TestMarshalKeys() {
	data, err := s.serializer.Marshal(s.dataset, false)
	s.Require().NoError(err)

	var raw map[string][]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &raw))

	location := raw["locations"][0]
	for _, k := range []string{"lat", "lng", "location", "values", "population_2020"} {
		s.Contains(location, k)
	}
	stats := raw["series_stats"][0]
	for _, k := range []string{"name", "cumulative_global", "day_global", "delta_global", "cumulative_global_percent",
		"top_cumulative", "top_day", "top_delta", "top_cumulative_percent"} {
		s.Contains(stats, k)
	}
	s.Equal(map[string]interface{}{"value": float64(20), "location_idx": float64(2)}, stats["top_cumulative"])
}

func (s *SerializerTestSuite) TestBuildEmptyDataset() {
	data, err := s.serializer.Marshal(&Dataset{}, false)
	s.Require().NoError(err)
	s.JSONEq(`{"locations": [], "series_stats": []}`, string(data))
}

func TestSerializer(t *testing.T) {
	suite.Run(t, new(SerializerTestSuite))
}
