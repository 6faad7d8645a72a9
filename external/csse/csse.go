package csse

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	logPrefix  = "csse"
	DefaultURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"

	GlobalConfirmed = "time_series_covid19_confirmed_global.csv"
	GlobalDeaths    = "time_series_covid19_deaths_global.csv"
	GlobalRecovered = "time_series_covid19_recovered_global.csv"
	USConfirmed     = "time_series_covid19_confirmed_US.csv"
	USDeaths        = "time_series_covid19_deaths_US.csv"
)

var (
	ErrResponseStatus = fmt.Errorf("response status not ok")
)

// TimeSeriesFiles - every file used to draw the globe
var TimeSeriesFiles = []string{
	GlobalConfirmed,
	GlobalDeaths,
	GlobalRecovered,
	USConfirmed,
	USDeaths,
}

// Source - interface to download the CSSE time series files
type Source interface {
	Get(ctx context.Context, file string) ([]byte, error)
}

type source struct {
	client *http.Client
	url    string
}

func (s source) Get(ctx context.Context, file string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", s.url, file)
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"url":    url,
	}).Debug("download time series")

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := s.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    url,
			"error":  err,
		}).Error("get time series")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s %d", ErrResponseStatus, file, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("read time series response")
		return nil, err
	}
	return data, nil
}

// LoadAll downloads the files in parallel, it fails when any of them fails
func LoadAll(ctx context.Context, s Source, files []string) (map[string][]byte, error) {
	var mu sync.Mutex
	res := make(map[string][]byte, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		f := f
		g.Go(func() error {
			data, err := s.Get(ctx, f)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			mu.Lock()
			res[f] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "files": len(res)}).Info("loaded time series")
	return res, nil
}

// New - new CSSE source, empty url selects the github repository
func New(client *http.Client, url string) Source {
	u := DefaultURL
	if url != "" {
		u = strings.TrimSuffix(url, "/")
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &source{
		client: client,
		url:    u,
	}
}
