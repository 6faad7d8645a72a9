package worldometers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/bitmark-inc/covid-globe/consts"
	"github.com/bitmark-inc/covid-globe/schema"
)

const (
	logPrefix  = "worldometers"
	DefaultURL = "https://www.worldometers.info/world-population/population-by-country/"

	countryColumn    = "Country"
	populationColumn = "Population"
)

var (
	ErrResponseStatus = fmt.Errorf("response status not ok")
	ErrNoTable        = fmt.Errorf("no population table found")
	ErrMissingColumn  = fmt.Errorf("population table column not found")
)

// Population - interface to load the population of every country
type Population interface {
	Get(ctx context.Context) (schema.PopulationTable, error)
}

type population struct {
	client *http.Client
	url    string
}

func (p population) Get(ctx context.Context) (schema.PopulationTable, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"url":    p.url,
	}).Debug("download global population")

	req, err := http.NewRequest(http.MethodGet, p.url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := p.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("get global population")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	return ParseTable(bytes.NewReader(data))
}

// ParseTable reads the population of each country from the first table of
// the page. Country names are converted to the CSSE names.
func ParseTable(r io.Reader) (schema.PopulationTable, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, ErrNoTable
	}

	var header []string
	if th := findFirst(table, "thead"); th != nil {
		if tr := findFirst(th, "tr"); tr != nil {
			header = cells(tr)
		}
	}

	countryIdx, populationIdx := -1, -1
	for i, h := range header {
		if countryIdx < 0 && strings.HasPrefix(h, countryColumn) {
			countryIdx = i
		}
		if populationIdx < 0 && strings.HasPrefix(h, populationColumn) {
			populationIdx = i
		}
	}
	if countryIdx < 0 || populationIdx < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumn, header)
	}

	res := make(schema.PopulationTable)
	body := findFirst(table, "tbody")
	if body == nil {
		body = table
	}
	for _, tr := range findAll(body, "tr") {
		row := cells(tr)
		if len(row) <= countryIdx || len(row) <= populationIdx {
			continue
		}

		count, err := strconv.ParseInt(strings.Replace(row[populationIdx], ",", "", -1), 10, 64)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":     logPrefix,
				"country":    row[countryIdx],
				"population": row[populationIdx],
			}).Warn("invalid population")
			continue
		}
		res[consts.CSSEName(row[countryIdx])] = count
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "countries": len(res)}).Info("loaded global population")
	return res, nil
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var res []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			res = append(res, c)
			continue
		}
		res = append(res, findAll(c, tag)...)
	}
	return res
}

// cells returns the text of every th / td of a row
func cells(tr *html.Node) []string {
	var res []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			res = append(res, strings.TrimSpace(text(c)))
		}
	}
	return res
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(text(c))
	}
	return sb.String()
}

// New - new population source, empty url selects worldometers
func New(client *http.Client, url string) Population {
	u := DefaultURL
	if url != "" {
		u = url
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &population{
		client: client,
		url:    u,
	}
}
