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

	"github.com/stockparfait/errors"
)

// Financial statement periods accepted by GetFinancials.
const (
	PeriodAnnual    = "annual"
	PeriodQuarterly = "quarterly"
)

// LineItem is one statement row. The endpoint serves statements as a list of
// rows whose non-label columns are period values keyed value1, value2, ...;
// Values keeps those columns pivoted per line item, coerced to numbers.
type LineItem struct {
	Label  string              `json:"line_item"`
	Values map[string]*float64 `json:"values"`
}

// Financials is the normalized set of financial statements for one period
// type. Missing statement sections become empty slices, never missing keys.
type Financials struct {
	IncomeStatement []LineItem `json:"income_statement"`
	BalanceSheet    []LineItem `json:"balance_sheet"`
	CashFlow        []LineItem `json:"cash_flow"`
	Ratios          []LineItem `json:"ratios"`
}

// parseStatement pivots one statement table into line items.
func parseStatement(table Payload, labelKey string) []LineItem {
	items := []LineItem{}
	for _, row := range table.Rows("rows") {
		item := LineItem{
			Label:  row.Str(labelKey),
			Values: make(map[string]*float64),
		}
		for key, value := range row {
			if key == labelKey {
				continue
			}
			item.Values[key] = Number(value)
		}
		items = append(items, item)
	}
	return items
}

// ParseFinancials normalizes a financials payload.
func ParseFinancials(p Payload) *Financials {
	return &Financials{
		IncomeStatement: parseStatement(p.Object("incomeStatementTable"), "label"),
		BalanceSheet:    parseStatement(p.Object("balanceSheetTable"), "label"),
		CashFlow:        parseStatement(p.Object("cashFlowTable"), "label"),
		Ratios:          parseStatement(p.Object("financialRatiosTable"), "label"),
	}
}

// GetFinancials fetches and normalizes financial statements. Period must be
// PeriodAnnual or PeriodQuarterly; anything else is rejected before a request
// is issued.
func GetFinancials(ctx context.Context, symbol, period string) (*Financials, error) {
	var frequency int
	switch period {
	case PeriodAnnual:
		frequency = 1
	case PeriodQuarterly:
		frequency = 2
	default:
		return nil, errors.Reason(
			"unsupported financials period %q (want %s or %s)",
			period, PeriodAnnual, PeriodQuarterly)
	}
	p, err := FetchFinancials(ctx, symbol, frequency)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch financials for %s", symbol)
	}
	return ParseFinancials(p), nil
}
