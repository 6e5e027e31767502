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
	"strings"

	"github.com/stockparfait/errors"
)

// DividendRow is one historical dividend payment.
type DividendRow struct {
	ExDate          string   `json:"ex_date"`
	Amount          *float64 `json:"amount"`
	Type            string   `json:"type"`
	DeclarationDate string   `json:"declaration_date"`
	RecordDate      string   `json:"record_date"`
	PaymentDate     string   `json:"payment_date"`
}

// Dividends is the normalized dividend summary plus payment history.
type Dividends struct {
	Yield          *float64      `json:"yield"`
	AnnualAmount   *float64      `json:"annual_amount"`
	PayoutRatio    *float64      `json:"payout_ratio"`
	ExDividendDate string        `json:"ex_dividend_date"`
	PaymentDate    string        `json:"payment_date"`
	History        []DividendRow `json:"history"`
}

// ParseDividends normalizes a dividends payload.
func ParseDividends(p Payload) *Dividends {
	d := &Dividends{
		Yield:          Percent(p.Value("yield")),
		AnnualAmount:   Number(p.Value("annualizedDividend")),
		PayoutRatio:    Percent(p.Value("payoutRatio")),
		ExDividendDate: p.Str("exDividendDate"),
		PaymentDate:    p.Str("dividendPaymentDate"),
		History:        []DividendRow{},
	}
	for _, row := range p.Rows("dividends", "rows") {
		d.History = append(d.History, DividendRow{
			ExDate:          row.Str("exOrEffDate"),
			Amount:          Number(row.Value("amount")),
			Type:            strings.ToLower(row.Str("type")),
			DeclarationDate: row.Str("declarationDate"),
			RecordDate:      row.Str("recordDate"),
			PaymentDate:     row.Str("paymentDate"),
		})
	}
	return d
}

// GetDividends fetches and normalizes dividend data for a symbol.
func GetDividends(ctx context.Context, symbol string) (*Dividends, error) {
	p, err := FetchDividends(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch dividends for %s", symbol)
	}
	return ParseDividends(p), nil
}
