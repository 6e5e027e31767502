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

// Package compat preserves the original two-step workflow of the library:
// fetch every raw payload of a symbol into one big map, then normalize the map
// into the legacy output schema in a separate pure step. New code should use
// the typed Get* methods of the nasdaq package instead.
package compat

import (
	"context"
	"sort"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"

	"github.com/stockwire/stockwire/nasdaq"
)

// RawData is the unnormalized result of FetchAllSymbolData: one raw payload
// per endpoint, nil where the fetch failed, plus request metadata.
type RawData map[string]any

// rawFetch is one endpoint fetch of FetchAllSymbolData.
type rawFetch struct {
	key   string
	fetch func(ctx context.Context, symbol string) (nasdaq.Payload, error)
}

var rawFetches = []rawFetch{
	{"info", nasdaq.FetchInfo},
	{"dividends", nasdaq.FetchDividends},
	{"historical", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		to := time.Now().UTC()
		from := to.AddDate(0, 0, -30)
		return nasdaq.FetchHistorical(ctx, symbol,
			from.Format("2006-01-02"), to.Format("2006-01-02"), 100)
	}},
	{"historical_5d", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchHistoricalNOCP(ctx, symbol, "d5")
	}},
	{"historical_1m", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchHistoricalNOCP(ctx, symbol, "m1")
	}},
	{"financials_annual", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchFinancials(ctx, symbol, 1)
	}},
	{"financials_quarterly", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchFinancials(ctx, symbol, 2)
	}},
	{"peg_ratio", nasdaq.FetchPEGRatio},
	{"short_interest", nasdaq.FetchShortInterest},
	{"institutional_holdings", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchInstitutionalHoldings(ctx, symbol, 50)
	}},
	{"insider_trades", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchInsiderTrades(ctx, symbol, 50)
	}},
	{"sec_filings", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchSECFilings(ctx, symbol, 50)
	}},
	{"press_releases", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchPressReleases(ctx, symbol, 50, 0)
	}},
	{"news_articles", func(ctx context.Context, symbol string) (nasdaq.Payload, error) {
		return nasdaq.FetchNewsArticles(ctx, symbol, 50, 0)
	}},
}

// FetchAllSymbolData fetches every raw endpoint payload for a symbol. Failed
// endpoints are logged and stored as nil; the call only fails when no client
// is injected in the context.
func FetchAllSymbolData(ctx context.Context, symbol string) (RawData, error) {
	if nasdaq.GetClient(ctx) == nil {
		return nil, errors.Reason("no client in context")
	}
	raw := RawData{
		"symbol":     symbol,
		"fetched_at": time.Now().UTC().Format(time.RFC3339),
	}
	fetched := 0
	for _, rf := range rawFetches {
		p, err := rf.fetch(ctx, symbol)
		if err != nil {
			logging.Warningf(ctx, "%s: failed to fetch %s: %s", symbol, rf.key, err.Error())
			raw[rf.key] = nil
			continue
		}
		raw[rf.key] = p
		fetched++
	}
	logging.Infof(ctx, "%s: fetched %d / %d endpoints", symbol, fetched, len(rawFetches))
	return raw, nil
}

// ExchangeListing is the full stock listing of one exchange.
type ExchangeListing struct {
	Exchange string              `json:"exchange"`
	Symbols  []nasdaq.SymbolInfo `json:"symbols"`
}

// FetchAllExchanges fetches the stock listings of all supported exchanges in
// parallel. Individual exchange failures are logged and skipped; an error is
// returned only when every exchange fails. The result is sorted by exchange
// and symbol.
func FetchAllExchanges(ctx context.Context) ([]ExchangeListing, error) {
	f := func(exchange string) *ExchangeListing {
		symbols, err := nasdaq.SearchSymbols(ctx, nasdaq.Criteria{Exchange: exchange})
		if err != nil {
			logging.Warningf(ctx, "failed to fetch %s listing: %s", exchange, err.Error())
			return nil
		}
		return &ExchangeListing{Exchange: exchange, Symbols: symbols}
	}
	pm := iterator.ParallelMap(ctx, len(nasdaq.Exchanges()),
		iterator.FromSlice(nasdaq.Exchanges()), f)
	defer pm.Close()

	listings := iterator.Reduce[*ExchangeListing, []ExchangeListing](
		pm, []ExchangeListing{},
		func(l *ExchangeListing, ls []ExchangeListing) []ExchangeListing {
			if l == nil {
				return ls
			}
			return append(ls, *l)
		})
	if len(listings) == 0 {
		return nil, errors.Reason("failed to fetch any exchange listing")
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Exchange < listings[j].Exchange
	})
	for _, l := range listings {
		sort.Slice(l.Symbols, func(i, j int) bool {
			return l.Symbols[i].Symbol < l.Symbols[j].Symbol
		})
	}
	return listings, nil
}

// GetUniqueSymbols deduplicates the symbols of several exchange listings,
// preserving first-seen order.
func GetUniqueSymbols(listings []ExchangeListing) []string {
	seen := make(map[string]bool)
	symbols := []string{}
	for _, l := range listings {
		for _, s := range l.Symbols {
			if s.Symbol == "" || seen[s.Symbol] {
				continue
			}
			seen[s.Symbol] = true
			symbols = append(symbols, s.Symbol)
		}
	}
	return symbols
}
