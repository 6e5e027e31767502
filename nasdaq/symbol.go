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
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"golang.org/x/exp/slices"
)

// Data categories accepted by GetSymbolData.
const (
	CategoryQuote         = "quote"
	CategoryFinancials    = "financials"
	CategoryDividends     = "dividends"
	CategoryOwnership     = "ownership"
	CategoryHistorical    = "historical"
	CategoryNews          = "news"
	CategoryAnalyst       = "analyst"
	CategoryShortInterest = "short_interest"
)

// allCategories in the order they are fetched.
var allCategories = []string{
	CategoryQuote,
	CategoryFinancials,
	CategoryDividends,
	CategoryOwnership,
	CategoryHistorical,
	CategoryNews,
	CategoryAnalyst,
	CategoryShortInterest,
}

// Categories lists all data categories in fetch order.
func Categories() []string {
	return slices.Clone(allCategories)
}

// SymbolData is the aggregate record of all requested categories for one
// symbol. A category that failed to fetch leaves its field at the zero value
// and records the error message under its name in Errors.
type SymbolData struct {
	Symbol        string            `json:"symbol"`
	FetchedAt     string            `json:"fetched_at"`
	Quote         *Quote            `json:"quote"`
	Financials    *Financials       `json:"financials"`
	Dividends     *Dividends        `json:"dividends"`
	Ownership     *Ownership        `json:"ownership"`
	Historical    []PriceBar        `json:"historical"`
	News          []Article         `json:"news"`
	Analyst       *AnalystRatings   `json:"analyst"`
	ShortInterest *ShortInterest    `json:"short_interest"`
	Errors        map[string]string `json:"errors"`
}

// GetSymbolData fetches the given categories for one symbol, all of them when
// categories is empty. Unknown category names are rejected before any request
// is issued. A category failure does not abort the rest: the error is recorded
// per category and the aggregate is still returned.
func GetSymbolData(ctx context.Context, symbol string, categories ...string) (*SymbolData, error) {
	for _, c := range categories {
		if !slices.Contains(allCategories, c) {
			return nil, errors.Reason("unknown data category %q (want one of %v)",
				c, allCategories)
		}
	}
	if len(categories) == 0 {
		categories = allCategories
	}
	data := &SymbolData{
		Symbol:    symbol,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Errors:    make(map[string]string),
	}
	fail := func(category string, err error) {
		logging.Warningf(ctx, "%s: failed to fetch %s: %s", symbol, category, err.Error())
		data.Errors[category] = err.Error()
	}
	for _, category := range allCategories {
		if !slices.Contains(categories, category) {
			continue
		}
		var err error
		switch category {
		case CategoryQuote:
			data.Quote, err = GetQuote(ctx, symbol)
		case CategoryFinancials:
			data.Financials, err = GetFinancials(ctx, symbol, PeriodAnnual)
		case CategoryDividends:
			data.Dividends, err = GetDividends(ctx, symbol)
		case CategoryOwnership:
			data.Ownership, err = GetOwnership(ctx, symbol)
		case CategoryHistorical:
			data.Historical, err = GetHistorical(ctx, symbol, "1month")
		case CategoryNews:
			data.News, err = GetNews(ctx, symbol, defaultNewsLimit)
		case CategoryAnalyst:
			data.Analyst, err = GetAnalystRatings(ctx, symbol)
		case CategoryShortInterest:
			data.ShortInterest, err = GetShortInterest(ctx, symbol)
		}
		if err != nil {
			fail(category, err)
		}
	}
	return data, nil
}
