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
	"github.com/stockparfait/logging"
)

const (
	maxTopHolders    = 10
	maxInsiderTrades = 20
)

// InstitutionalSummary aggregates institutional ownership of a symbol.
type InstitutionalSummary struct {
	SharesOutstandingMillions     *int64   `json:"shares_outstanding_millions"`
	InstitutionalOwnershipPercent *float64 `json:"institutional_ownership_percent"`
	TotalValueMillions            *float64 `json:"total_value_millions"`
	TotalHolders                  *int64   `json:"total_holders"`
	TotalSharesHeld               *int64   `json:"total_shares_held"`
}

// Holder is one institutional position.
type Holder struct {
	Institution    string   `json:"institution"`
	Shares         *int64   `json:"shares"`
	SharesChange   *int64   `json:"change"`
	ChangePercent  *float64 `json:"change_percent"`
	ValueThousands *float64 `json:"value_thousands"`
	Date           string   `json:"date"`
}

// InsiderTrade is one reported insider transaction.
type InsiderTrade struct {
	Insider         string   `json:"insider"`
	Relationship    string   `json:"relationship"`
	TransactionType string   `json:"transaction_type"`
	Shares          *int64   `json:"shares"`
	Price           *float64 `json:"price"`
	SharesHeld      *int64   `json:"shares_held"`
	Date            string   `json:"date"`
}

// Institutional groups the summary with the largest positions.
type Institutional struct {
	Summary    InstitutionalSummary `json:"summary"`
	TopHolders []Holder             `json:"top_holders"`
}

// Ownership is the normalized ownership record: institutional holdings plus
// insider trades, each sourced from its own endpoint. Either side may come
// from a failed request and parse to its empty value.
type Ownership struct {
	Institutional Institutional  `json:"institutional"`
	InsiderTrades []InsiderTrade `json:"insider_trades"`
}

// strAny returns the first non-empty string among the keys. The two ownership
// endpoints renamed several row fields over time and both spellings are live.
func strAny(p Payload, keys ...string) string {
	for _, key := range keys {
		if s := p.Str(key); s != "" {
			return s
		}
	}
	return ""
}

// ParseOwnership normalizes the institutional holdings and insider trades
// payloads into a single record.
func ParseOwnership(institutional, insider Payload) *Ownership {
	o := &Ownership{
		Institutional: Institutional{TopHolders: []Holder{}},
		InsiderTrades: []InsiderTrade{},
	}

	summary := institutional.Object("ownershipSummary")
	o.Institutional.Summary = InstitutionalSummary{
		SharesOutstandingMillions:     Volume(summary.Object("ShareoutstandingTotal").Value("value")),
		InstitutionalOwnershipPercent: Percent(summary.Object("SharesOutstandingPCT").Value("value")),
		TotalValueMillions:            Number(summary.Object("TotalHoldingsValue").Value("value")),
	}
	transactions := institutional.Object("holdingsTransactions")
	o.Institutional.Summary.TotalHolders = Volume(transactions.Value("totalRecords"))
	o.Institutional.Summary.TotalSharesHeld = Volume(transactions.Value("sharesHeld"))

	for _, row := range transactions.Rows("table", "rows") {
		if len(o.Institutional.TopHolders) >= maxTopHolders {
			break
		}
		o.Institutional.TopHolders = append(o.Institutional.TopHolders, Holder{
			Institution:    row.Str("ownerName"),
			Shares:         Volume(row.Value("sharesHeld")),
			SharesChange:   Volume(row.Value("sharesChange")),
			ChangePercent:  Percent(row.Value("sharesChangePCT")),
			ValueThousands: Number(row.Value("marketValue")),
			Date:           row.Str("date"),
		})
	}

	for _, row := range insider.Rows("transactionTable", "rows") {
		if len(o.InsiderTrades) >= maxInsiderTrades {
			break
		}
		o.InsiderTrades = append(o.InsiderTrades, InsiderTrade{
			Insider:         strAny(row, "insider", "insiderName"),
			Relationship:    strAny(row, "relation", "relationship", "position"),
			TransactionType: row.Str("transactionType"),
			Shares:          Volume(row.Value("sharesTraded")),
			Price:           Number(row.Value("lastPrice")),
			SharesHeld:      Volume(row.Value("sharesHeld")),
			Date:            row.Str("lastDate"),
		})
	}
	return o
}

// GetOwnership fetches and normalizes institutional holdings and insider
// trades. A failure of one of the two requests degrades to a partial record;
// only both failing is an error.
func GetOwnership(ctx context.Context, symbol string) (*Ownership, error) {
	institutional, instErr := FetchInstitutionalHoldings(ctx, symbol, 50)
	insider, insiderErr := FetchInsiderTrades(ctx, symbol, 50)
	if instErr != nil && insiderErr != nil {
		return nil, errors.Annotate(instErr, "failed to fetch ownership for %s", symbol)
	}
	if instErr != nil {
		logging.Warningf(ctx, "no institutional holdings for %s: %s", symbol, instErr.Error())
	}
	if insiderErr != nil {
		logging.Warningf(ctx, "no insider trades for %s: %s", symbol, insiderErr.Error())
	}
	return ParseOwnership(institutional, insider), nil
}
