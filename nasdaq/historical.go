// Copyright 2026 Stockwire

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nasdaq

import (
	"context"
	"math"
	"time"

	"github.com/stockparfait/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// PriceBar is one daily OHLCV bar. NOCP series populate only Date and Close.
type PriceBar struct {
	Date   string   `json:"date"`
	Open   *float64 `json:"open"`
	High   *float64 `json:"high"`
	Low    *float64 `json:"low"`
	Close  *float64 `json:"close"`
	Volume *int64   `json:"volume"`
}

// historicalDays maps the accepted period names to the size of the date
// window in days.
var historicalDays = map[string]int{
	"1day":   1,
	"5day":   5,
	"1month": 30,
	"3month": 90,
	"1year":  365,
}

// HistoricalPeriods lists the accepted period names for GetHistorical, sorted.
func HistoricalPeriods() []string {
	periods := maps.Keys(historicalDays)
	slices.Sort(periods)
	return periods
}

// ParseHistorical normalizes a historical trades payload into daily bars.
func ParseHistorical(p Payload) []PriceBar {
	bars := []PriceBar{}
	for _, row := range p.Rows("tradesTable", "rows") {
		bars = append(bars, PriceBar{
			Date:   row.Str("date"),
			Open:   Number(row.Value("open")),
			High:   Number(row.Value("high")),
			Low:    Number(row.Value("low")),
			Close:  Number(row.Value("close")),
			Volume: Volume(row.Value("volume")),
		})
	}
	return bars
}

// ParseHistoricalNOCP normalizes a nominal official closing price payload.
// Only the date and close columns exist in this series.
func ParseHistoricalNOCP(p Payload) []PriceBar {
	bars := []PriceBar{}
	for _, row := range p.Rows("nocp", "rows") {
		bars = append(bars, PriceBar{
			Date:  row.Str("date"),
			Close: Number(row.Value("nocp")),
		})
	}
	return bars
}

// GetHistorical fetches and normalizes daily price bars over a named period
// ending today. Unknown periods are rejected before a request is issued.
func GetHistorical(ctx context.Context, symbol, period string) ([]PriceBar, error) {
	days, ok := historicalDays[period]
	if !ok {
		return nil, errors.Reason("unsupported historical period %q (want one of %v)",
			period, HistoricalPeriods())
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	p, err := FetchHistorical(ctx, symbol,
		from.Format("2006-01-02"), to.Format("2006-01-02"), 100)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch historical prices for %s", symbol)
	}
	return ParseHistorical(p), nil
}

// ReturnStats are sample statistics of daily log-returns of a price series.
type ReturnStats struct {
	Mean       float64 `json:"mean"`
	Volatility float64 `json:"volatility"`
	Samples    int     `json:"samples"`
}

// Returns computes daily log-return statistics over the bars' close prices.
// Bars with a missing or non-positive close are skipped.
func Returns(bars []PriceBar) ReturnStats {
	var closes []float64
	for _, b := range bars {
		if b.Close != nil && *b.Close > 0 {
			closes = append(closes, *b.Close)
		}
	}
	var rets []float64
	for i := 1; i < len(closes); i++ {
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	s := ReturnStats{Samples: len(rets)}
	if len(rets) > 0 {
		s.Mean = stat.Mean(rets, nil)
	}
	if len(rets) > 1 {
		s.Volatility = stat.StdDev(rets, nil)
	}
	return s
}
