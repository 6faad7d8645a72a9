package main

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-globe/external/csse"
	"github.com/bitmark-inc/covid-globe/external/worldometers"
	"github.com/bitmark-inc/covid-globe/schema"
	"github.com/bitmark-inc/covid-globe/timeseries"
)

type Cron interface {
	Run() error
}

type globeJob struct {
	kind           string
	globalFile     string
	usFile         string
	usOffset       int
	forceIncludeUS bool
	files          map[string][]byte
	population     schema.PopulationTable
	outputDir      string
	pretty         bool
}

func (j globeJob) Run() error {
	logger := log.WithFields(log.Fields{"prefix": logPrefix, "kind": j.kind})

	global, err := timeseries.NewParser(timeseries.Global, 0, j.forceIncludeUS, logger).
		Parse(bytes.NewReader(j.files[j.globalFile]))
	if nil != err {
		return fmt.Errorf("%s: %w", j.globalFile, err)
	}

	// there is no US file for every kind
	us := &timeseries.Dataset{}
	if j.usFile != "" {
		us, err = timeseries.NewParser(timeseries.US, j.usOffset, j.forceIncludeUS, logger).
			Parse(bytes.NewReader(j.files[j.usFile]))
		if nil != err {
			return fmt.Errorf("%s: %w", j.usFile, err)
		}
	}

	merged, err := timeseries.Merge(global, us)
	if nil != err {
		return fmt.Errorf("%s: %w", j.kind, err)
	}

	aggregator, err := timeseries.NewAggregator(j.population, j.population.Total(), logger)
	if nil != err {
		return err
	}

	data, err := timeseries.NewSerializer(aggregator, logger).Marshal(merged, j.pretty)
	if nil != err {
		return err
	}

	filename := filepath.Join(j.outputDir, j.kind+".json")
	logger.WithField("file", filename).Info("writing globe data")
	return ioutil.WriteFile(filename, data, 0644)
}

// newGlobeJobs - one job per drawn dataset
func newGlobeJobs(files map[string][]byte, population schema.PopulationTable, outputDir string, pretty bool) []Cron {
	return []Cron{
		&globeJob{
			kind:       "confirmed",
			globalFile: csse.GlobalConfirmed,
			usFile:     csse.USConfirmed,
			files:      files,
			population: population,
			outputDir:  outputDir,
			pretty:     pretty,
		},
		&globeJob{
			kind:       "deaths",
			globalFile: csse.GlobalDeaths,
			usFile:     csse.USDeaths,
			usOffset:   timeseries.USDeathsOffset,
			files:      files,
			population: population,
			outputDir:  outputDir,
			pretty:     pretty,
		},
		&globeJob{
			kind:           "recovered",
			globalFile:     csse.GlobalRecovered,
			forceIncludeUS: true,
			files:          files,
			population:     population,
			outputDir:      outputDir,
			pretty:         pretty,
		},
	}
}

// run downloads every source and writes the globe data of each job
func run(ctx context.Context, source csse.Source, population worldometers.Population, outputDir string, pretty bool) error {
	files, err := csse.LoadAll(ctx, source, csse.TimeSeriesFiles)
	if nil != err {
		return err
	}

	table, err := population.Get(ctx)
	if nil != err {
		return err
	}

	jobs := newGlobeJobs(files, table, outputDir, pretty)
	var firstErr error
	failed := 0
	for _, job := range jobs {
		if err := job.Run(); err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("globe job")
			if firstErr == nil {
				firstErr = err
			}
			failed++
		}
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d jobs failed: %w", failed, len(jobs), firstErr)
	}
	return nil
}
