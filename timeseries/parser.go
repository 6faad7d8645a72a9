package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Dataset - series of every location of one or more source files
type Dataset struct {
	Dates   []string
	Records map[LocationKey]Series
}

// Parser - parses the files of one layout. The date keys are read from the
// first header and reused afterwards.
type Parser struct {
	layout         Layout
	offset         int
	forceIncludeUS bool
	dates          []string
	log            log.FieldLogger
}

// NewParser - new parser of a file layout, offset 0 selects the default
// offset of the layout
func NewParser(layout Layout, offset int, forceIncludeUS bool, logger log.FieldLogger) *Parser {
	if offset <= 0 {
		offset = layout.DefaultOffset()
	}
	return &Parser{
		layout:         layout,
		offset:         offset,
		forceIncludeUS: forceIncludeUS,
		log:            entry(logger).WithField("layout", layout.String()),
	}
}

// Dates returns the date keys established by ParseHeader
func (p *Parser) Dates() []string {
	return p.dates
}

// ParseHeader establishes the date keys, it does nothing when they are
// already known
func (p *Parser) ParseHeader(tokens []string) error {
	if len(p.dates) > 0 {
		p.log.Debug("date keys already loaded")
		return nil
	}

	dates, err := ParseHeader(tokens, p.offset)
	if err != nil {
		return err
	}
	p.dates = dates
	p.log.WithField("dates", len(dates)).Info("found date keys")
	return nil
}

// ParseRow derives the key and the series of one data row
func (p *Parser) ParseRow(row []string) (LocationKey, Series, error) {
	if len(row) < p.offset+len(p.dates) || len(row) < p.layout.DefaultOffset() {
		return LocationKey{}, nil, fmt.Errorf("%w: %d columns, need %d", ErrRowTooShort, len(row), p.offset+len(p.dates))
	}

	key := LocationKey{
		USFileType:     p.layout == US,
		ForceIncludeUS: p.forceIncludeUS,
	}
	if p.layout == US {
		key.Name = locationName(row[7], row[6], row[5])
		key.Lat, key.Lng = row[8], row[9]
	} else {
		key.Name = locationName(row[1], row[0])
		key.Lat, key.Lng = row[2], row[3]
	}

	cumulatives := make([]int64, len(p.dates))
	for i := range p.dates {
		v, err := parseCount(row[p.offset+i])
		if err != nil {
			return LocationKey{}, nil, fmt.Errorf("%s %s: %w", key.Name, p.dates[i], err)
		}
		cumulatives[i] = v
	}

	return key, DeriveSeries(p.dates, cumulatives), nil
}

// Parse reads a whole CSV file, the first line being the header. Any error
// discards the file.
func (p *Parser) Parse(r io.Reader) (*Dataset, error) {
	p.log.Info("start parsing file")

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	ds := &Dataset{Records: make(map[LocationKey]Series)}
	for lineno := 0; ; lineno++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}

		if lineno == 0 {
			if err := p.ParseHeader(record); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			continue
		}

		key, series, err := p.ParseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		ds.Records[key] = series
	}
	ds.Dates = p.dates

	p.log.WithField("locations", len(ds.Records)).Info("finished parsing file")
	return ds, nil
}
