// Package timeseries turns CSSE cumulative time series CSV files into the
// per location daily series and per day statistics drawn by the globe.
package timeseries

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "timeseries"

	// USDeathsOffset - the US deaths file carries an extra Population column
	// before its first date
	USDeathsOffset = 12
)

var (
	ErrMalformedHeaderToken   = fmt.Errorf("malformed header date token")
	ErrRowTooShort            = fmt.Errorf("row has fewer columns than the date keys")
	ErrInvalidCount           = fmt.Errorf("invalid count value")
	ErrDateKeyMismatch        = fmt.Errorf("date keys of merged datasets do not match")
	ErrInvalidWorldPopulation = fmt.Errorf("world population must be positive")
)

// Layout - column layout of a source file
type Layout int

const (
	// Global - Province/State,Country/Region,Lat,Long,dates...
	Global Layout = iota
	// US - UID,iso2,iso3,code3,FIPS,Admin2,Province_State,Country_Region,Lat,Long_,Combined_Key,dates...
	US
)

// DefaultOffset returns the index of the first date column
func (l Layout) DefaultOffset() int {
	if l == US {
		return 11
	}
	return 4
}

func (l Layout) String() string {
	if l == US {
		return "us"
	}
	return "global"
}

func entry(logger log.FieldLogger) log.FieldLogger {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return logger.WithField("prefix", logPrefix)
}
