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

// Quote is the normalized current quote for a symbol. Nil pointer fields are
// the null sentinel; all keys are always present in the marshaled output.
type Quote struct {
	Symbol        string   `json:"symbol"`
	CompanyName   string   `json:"company_name"`
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
	Volume        *int64   `json:"volume"`
	Bid           *float64 `json:"bid"`
	Ask           *float64 `json:"ask"`
	BidSize       *int64   `json:"bid_size"`
	AskSize       *int64   `json:"ask_size"`
	PreviousClose *float64 `json:"previous_close"`
	Week52High    *float64 `json:"week_52_high"`
	Week52Low     *float64 `json:"week_52_low"`
	MarketStatus  string   `json:"market_status"`
	Timestamp     string   `json:"timestamp"`
}

// ParseQuote normalizes a quote info payload. The endpoint omits the symbol
// itself, so the requested one is passed in.
func ParseQuote(p Payload, symbol string) *Quote {
	primary := p.Object("primaryData")
	secondary := p.Object("secondaryData")
	q := &Quote{
		Symbol:        symbol,
		CompanyName:   p.Str("companyName"),
		Price:         Number(primary.Value("lastSalePrice")),
		Change:        Number(primary.Value("netChange")),
		ChangePercent: Percent(primary.Value("percentageChange")),
		Volume:        Volume(primary.Value("volume")),
		Bid:           Number(primary.Value("bidPrice")),
		Ask:           Number(primary.Value("askPrice")),
		BidSize:       Volume(primary.Value("bidSize")),
		AskSize:       Volume(primary.Value("askSize")),
		PreviousClose: Number(secondary.Value("lastSalePrice")),
		MarketStatus:  p.Str("marketStatus"),
		Timestamp:     primary.Str("lastTradeTimestamp"),
	}
	week52 := p.Object("keyStats").Object("fiftyTwoWeekHighLow")
	q.Week52Low, q.Week52High = Range(week52.Value("value"))
	return q
}

// GetQuote fetches and normalizes the current quote for a symbol.
func GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	p, err := FetchInfo(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch quote for %s", symbol)
	}
	return ParseQuote(p, symbol), nil
}
