package schema

// DailyMetric - derived values of one location on one date
type DailyMetric struct {
	Cumulative int64 `json:"cumulative"`
	Day        int64 `json:"day"`
	Delta      int64 `json:"delta"`
}

// PopulationTable - population count keyed by location display name
type PopulationTable map[string]int64

// Total returns the sum of every population in the table
func (p PopulationTable) Total() int64 {
	var total int64
	for _, v := range p {
		total += v
	}
	return total
}

// Leaderboard - winning value of a metric for one day and the index of the
// winning location in GlobeDocument.Locations
type Leaderboard struct {
	Value       float64 `json:"value"`
	LocationIdx int     `json:"location_idx"`
}

// DayStats - cross location statistics of one date
type DayStats struct {
	Name                    string      `json:"name"`
	CumulativeGlobal        int64       `json:"cumulative_global"`
	DayGlobal               int64       `json:"day_global"`
	DeltaGlobal             int64       `json:"delta_global"`
	CumulativeGlobalPercent float64     `json:"cumulative_global_percent"`
	TopCumulative           Leaderboard `json:"top_cumulative"`
	TopDay                  Leaderboard `json:"top_day"`
	TopDelta                Leaderboard `json:"top_delta"`
	TopCumulativePercent    Leaderboard `json:"top_cumulative_percent"`
}

// GlobeLocation - one location and its daily values ordered by date.
// Each value is [cumulative, day, delta], with a trailing 1 when the
// location must not be drawn.
type GlobeLocation struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Location       string    `json:"location"`
	Values         [][]int64 `json:"values"`
	Population2020 int64     `json:"population_2020"`
}

// GlobeDocument - the document consumed by the globe front end
type GlobeDocument struct {
	Locations   []GlobeLocation `json:"locations"`
	SeriesStats []DayStats      `json:"series_stats"`
}
