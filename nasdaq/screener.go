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
	"golang.org/x/exp/slices"
)

// SymbolInfo is one stock listing from the screener.
type SymbolInfo struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Sector    string   `json:"sector"`
	Industry  string   `json:"industry"`
	MarketCap *float64 `json:"market_cap"`
	LastSale  *float64 `json:"last_sale"`
	Volume    *int64   `json:"volume"`
	Exchange  string   `json:"exchange"`
}

// Criteria filters the screener listing. An empty field matches everything.
// Exchange is matched by the server, Sector client-side.
type Criteria struct {
	Exchange string `json:"exchange"`
	Sector   string `json:"sector"`
}

var exchanges = []string{"nasdaq", "nyse", "amex"}

// Exchanges lists the exchange names accepted by Criteria.Exchange.
func Exchanges() []string {
	return slices.Clone(exchanges)
}

// ParseScreener normalizes a screener payload. The screener's rows carry no
// exchange column, so the queried exchange is passed in; it may be empty.
func ParseScreener(p Payload, exchange string) []SymbolInfo {
	infos := []SymbolInfo{}
	for _, row := range p.Rows("rows") {
		infos = append(infos, SymbolInfo{
			Symbol:    row.Str("symbol"),
			Name:      row.Str("name"),
			Sector:    row.Str("sector"),
			Industry:  row.Str("industry"),
			MarketCap: Number(row.Value("marketCap")),
			LastSale:  Number(row.Value("lastsale")),
			Volume:    Volume(row.Value("volume")),
			Exchange:  strings.ToUpper(exchange),
		})
	}
	return infos
}

// SearchSymbols fetches the stock listing matching the criteria. An unknown
// exchange is rejected before a request is issued.
func SearchSymbols(ctx context.Context, criteria Criteria) ([]SymbolInfo, error) {
	exchange := strings.ToLower(criteria.Exchange)
	if exchange != "" && !slices.Contains(exchanges, exchange) {
		return nil, errors.Reason("unsupported exchange %q (want one of %v)",
			criteria.Exchange, exchanges)
	}
	p, err := FetchScreener(ctx, exchange)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch screener")
	}
	infos := ParseScreener(p, exchange)
	if criteria.Sector == "" {
		return infos, nil
	}
	filtered := []SymbolInfo{}
	for _, info := range infos {
		if strings.EqualFold(info.Sector, criteria.Sector) {
			filtered = append(filtered, info)
		}
	}
	return filtered, nil
}
