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
	"fmt"
	"net/url"
	"strings"
)

// Raw category fetchers. Each issues a single GET and returns the unparsed
// data payload; query parameters mirror what the nasdaq.com frontend sends.
// These are the building blocks of both the typed facade (Get*) and the
// legacy two-step surface in the compat package.

// FetchInfo fetches the quote info payload for a symbol.
func FetchInfo(ctx context.Context, symbol string) (Payload, error) {
	query := make(url.Values)
	query.Set("assetclass", "stocks")
	return apiGet(ctx, "/quote/"+symbol+"/info", query)
}

// FetchDividends fetches the dividends payload for a symbol.
func FetchDividends(ctx context.Context, symbol string) (Payload, error) {
	query := make(url.Values)
	query.Set("assetclass", "stocks")
	return apiGet(ctx, "/quote/"+symbol+"/dividends", query)
}

// FetchHistorical fetches daily trades between fromDate and toDate, both in
// YYYY-MM-DD format.
func FetchHistorical(ctx context.Context, symbol, fromDate, toDate string, limit int) (Payload, error) {
	query := make(url.Values)
	query.Set("assetclass", "stocks")
	query.Set("fromdate", fromDate)
	query.Set("todate", toDate)
	query.Set("limit", fmt.Sprintf("%d", limit))
	return apiGet(ctx, "/quote/"+symbol+"/historical", query)
}

// FetchHistoricalNOCP fetches closing prices without corporate actions for a
// fixed timeframe: d5, m1, m3, y1 and so on.
func FetchHistoricalNOCP(ctx context.Context, symbol, timeframe string) (Payload, error) {
	query := make(url.Values)
	query.Set("timeframe", timeframe)
	return apiGet(ctx, "/company/"+symbol+"/historical-nocp", query)
}

// FetchFinancials fetches financial statements. Frequency is 1 for annual and
// 2 for quarterly statements.
func FetchFinancials(ctx context.Context, symbol string, frequency int) (Payload, error) {
	query := make(url.Values)
	query.Set("frequency", fmt.Sprintf("%d", frequency))
	return apiGet(ctx, "/company/"+symbol+"/financials", query)
}

// FetchPEGRatio fetches the analyst PEG ratio payload.
func FetchPEGRatio(ctx context.Context, symbol string) (Payload, error) {
	return apiGet(ctx, "/analyst/"+symbol+"/peg-ratio", nil)
}

// FetchShortInterest fetches the short interest payload.
func FetchShortInterest(ctx context.Context, symbol string) (Payload, error) {
	query := make(url.Values)
	query.Set("assetClass", "stocks") // sic: this endpoint expects camel case
	return apiGet(ctx, "/quote/"+symbol+"/short-interest", query)
}

// FetchInstitutionalHoldings fetches institutional holdings sorted by market
// value.
func FetchInstitutionalHoldings(ctx context.Context, symbol string, limit int) (Payload, error) {
	query := make(url.Values)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("type", "TOTAL")
	query.Set("sortColumn", "marketValue")
	return apiGet(ctx, "/company/"+symbol+"/institutional-holdings", query)
}

// FetchInsiderTrades fetches insider trades, most recent first.
func FetchInsiderTrades(ctx context.Context, symbol string, limit int) (Payload, error) {
	query := make(url.Values)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("type", "all")
	query.Set("sortColumn", "lastDate")
	query.Set("sortOrder", "DESC")
	return apiGet(ctx, "/company/"+symbol+"/insider-trades", query)
}

// FetchSECFilings fetches SEC filings, most recent first.
func FetchSECFilings(ctx context.Context, symbol string, limit int) (Payload, error) {
	query := make(url.Values)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("sortColumn", "filed")
	query.Set("sortOrder", "desc")
	query.Set("IsQuoteMedia", "true")
	return apiGet(ctx, "/company/"+symbol+"/sec-filings", query)
}

// FetchPressReleases fetches press releases for a symbol.
func FetchPressReleases(ctx context.Context, symbol string, limit, offset int) (Payload, error) {
	query := make(url.Values)
	query.Set("q", "symbol:"+strings.ToLower(symbol)+"|assetclass:stocks")
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("offset", fmt.Sprintf("%d", offset))
	return webGet(ctx, "/news/topic/press_release", query)
}

// FetchNewsArticles fetches news articles for a symbol, falling back to
// general market news when the symbol has none.
func FetchNewsArticles(ctx context.Context, symbol string, limit, offset int) (Payload, error) {
	query := make(url.Values)
	query.Set("q", strings.ToUpper(symbol)+"|STOCKS")
	query.Set("offset", fmt.Sprintf("%d", offset))
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("fallback", "true")
	return webGet(ctx, "/news/topic/articlebysymbol", query)
}

// FetchScreener fetches the full stock listing of one exchange, or of all
// exchanges when exchange is empty.
func FetchScreener(ctx context.Context, exchange string) (Payload, error) {
	query := make(url.Values)
	query.Set("tableonly", "true")
	query.Set("limit", "10000")
	query.Set("download", "true")
	if exchange != "" {
		query.Set("exchange", strings.ToLower(exchange))
	}
	return apiGet(ctx, "/screener/stocks", query)
}
