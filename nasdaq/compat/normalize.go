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

package compat

import (
	"strings"

	"github.com/stockwire/stockwire/nasdaq"
)

// NormalizeNasdaqData reshapes raw endpoint payloads into the legacy output
// schema. The step is pure: it issues no requests, never fails, and every
// top-level section is present in the result even when its raw payload is
// missing.
func NormalizeNasdaqData(raw RawData) map[string]any {
	p := func(key string) nasdaq.Payload { return nasdaq.AsPayload(raw[key]) }
	return map[string]any{
		"metadata":          normalizeMetadata(raw, p("info")),
		"quote":             normalizeQuote(p("info")),
		"key_metrics":       normalizeKeyMetrics(p("info"), p("dividends"), p("institutional_holdings")),
		"dividends":         normalizeDividends(p("dividends")),
		"historical_prices": normalizeHistoricalPrices(p("historical"), p("historical_5d"), p("historical_1m")),
		"financials":        normalizeFinancials(p("financials_annual"), p("financials_quarterly")),
		"ownership":         normalizeOwnership(p("institutional_holdings"), p("insider_trades")),
		"analyst_data":      normalizeAnalystData(p("peg_ratio")),
		"short_interest":    normalizeShortInterest(p("short_interest")),
		"sec_filings":       normalizeSECFilings(p("sec_filings")),
		"news":              normalizeNews(p("press_releases"), p("news_articles")),
	}
}

func normalizeMetadata(raw RawData, info nasdaq.Payload) map[string]any {
	return map[string]any{
		"symbol":           raw["symbol"],
		"fetched_at":       raw["fetched_at"],
		"company_name":     info.Str("companyName"),
		"stock_type":       info.Str("stockType"),
		"exchange":         info.Str("exchange"),
		"asset_class":      info.Str("assetClass"),
		"market_status":    info.Str("marketStatus"),
		"is_nasdaq_listed": info.Value("isNasdaqListed"),
		"is_nasdaq_100":    info.Value("isNasdaq100"),
	}
}

func normalizeQuote(info nasdaq.Payload) map[string]any {
	primary := info.Object("primaryData")
	secondary := info.Object("secondaryData")
	return map[string]any{
		"price":          nasdaq.Number(primary.Value("lastSalePrice")),
		"change":         nasdaq.Number(primary.Value("netChange")),
		"change_percent": nasdaq.Percent(primary.Value("percentageChange")),
		"volume":         nasdaq.Volume(primary.Value("volume")),
		"bid":            nasdaq.Number(primary.Value("bidPrice")),
		"ask":            nasdaq.Number(primary.Value("askPrice")),
		"bid_size":       nasdaq.Volume(primary.Value("bidSize")),
		"ask_size":       nasdaq.Volume(primary.Value("askSize")),
		"previous_close": nasdaq.Number(secondary.Value("lastSalePrice")),
		"timestamp":      primary.Str("lastTradeTimestamp"),
		"is_realtime":    primary.Value("isRealTime"),
	}
}

func normalizeKeyMetrics(info, dividends, institutional nasdaq.Payload) map[string]any {
	low, high := nasdaq.Range(
		info.Object("keyStats").Object("fiftyTwoWeekHighLow").Value("value"))
	sharesMillions := nasdaq.Volume(institutional.
		Object("ownershipSummary").Object("ShareoutstandingTotal").Value("value"))
	var sharesOutstanding *int64
	if sharesMillions != nil {
		n := *sharesMillions * 1_000_000
		sharesOutstanding = &n
	}
	return map[string]any{
		"pe_ratio":                    nasdaq.Number(dividends.Value("payoutRatio")),
		"week_52_high":                high,
		"week_52_low":                 low,
		"dividend_yield":              nasdaq.Percent(dividends.Value("yield")),
		"market_cap":                  nil, // not served by any raw endpoint
		"avg_volume":                  nil, // not served by any raw endpoint
		"shares_outstanding":          sharesOutstanding,
		"shares_outstanding_millions": sharesMillions,
	}
}

func normalizeDividends(dividends nasdaq.Payload) map[string]any {
	history := []map[string]any{}
	for _, row := range dividends.Rows("dividends", "rows") {
		history = append(history, map[string]any{
			"ex_date":          row.Str("exOrEffDate"),
			"amount":           nasdaq.Number(row.Value("amount")),
			"type":             strings.ToLower(row.Str("type")),
			"declaration_date": row.Str("declarationDate"),
			"record_date":      row.Str("recordDate"),
			"payment_date":     row.Str("paymentDate"),
		})
	}
	return map[string]any{
		"summary": map[string]any{
			"yield":            nasdaq.Percent(dividends.Value("yield")),
			"annual_amount":    nasdaq.Number(dividends.Value("annualizedDividend")),
			"payout_ratio":     nasdaq.Percent(dividends.Value("payoutRatio")),
			"ex_dividend_date": dividends.Str("exDividendDate"),
			"payment_date":     dividends.Str("dividendPaymentDate"),
		},
		"history": history,
	}
}

func normalizeBars(rows []nasdaq.Payload) []map[string]any {
	bars := []map[string]any{}
	for _, row := range rows {
		bars = append(bars, map[string]any{
			"date":   row.Str("date"),
			"close":  nasdaq.Number(row.Value("close")),
			"volume": nasdaq.Volume(row.Value("volume")),
			"open":   nasdaq.Number(row.Value("open")),
			"high":   nasdaq.Number(row.Value("high")),
			"low":    nasdaq.Number(row.Value("low")),
		})
	}
	return bars
}

func normalizeHistoricalPrices(daily, nocp5d, nocp1m nasdaq.Payload) map[string]any {
	return map[string]any{
		"daily":     normalizeBars(daily.Rows("tradesTable", "rows")),
		"period_5d": normalizeBars(nocp5d.Rows("nocp", "rows")),
		"period_1m": normalizeBars(nocp1m.Rows("nocp", "rows")),
	}
}

// normalizeStatement pivots one statement table, mapping the label column to
// the labelTo key and coercing the value columns with coerce.
func normalizeStatement(table nasdaq.Payload, labelKey, labelTo string,
	coerce func(any) *float64) []map[string]any {
	items := []map[string]any{}
	for _, row := range table.Rows("rows") {
		item := map[string]any{}
		for key, value := range row {
			if key == labelKey {
				item[labelTo] = value
				continue
			}
			item[key] = coerce(value)
		}
		items = append(items, item)
	}
	return items
}

func normalizeStatements(financials nasdaq.Payload) map[string]any {
	return map[string]any{
		"income_statement": normalizeStatement(
			financials.Object("incomeStatementTable"), "label", "line_item", nasdaq.Number),
		"balance_sheet": normalizeStatement(
			financials.Object("balanceSheetTable"), "label", "line_item", nasdaq.Number),
		"cash_flow": normalizeStatement(
			financials.Object("cashFlowTable"), "label", "line_item", nasdaq.Number),
		"financial_ratios": normalizeStatement(
			financials.Object("financialRatiosTable"), "value1", "ratio_name", nasdaq.Percent),
	}
}

func normalizeFinancials(annual, quarterly nasdaq.Payload) map[string]any {
	return map[string]any{
		"annual":    normalizeStatements(annual),
		"quarterly": normalizeStatements(quarterly),
	}
}

func normalizeOwnership(institutional, insider nasdaq.Payload) map[string]any {
	summary := institutional.Object("ownershipSummary")
	transactions := institutional.Object("holdingsTransactions")
	topHolders := []map[string]any{}
	for _, row := range transactions.Rows("table", "rows") {
		topHolders = append(topHolders, map[string]any{
			"institution":     row.Str("ownerName"),
			"shares":          nasdaq.Volume(row.Value("sharesHeld")),
			"change":          nasdaq.Volume(row.Value("sharesChange")),
			"change_percent":  nasdaq.Percent(row.Value("sharesChangePCT")),
			"value_thousands": nasdaq.Number(row.Value("marketValue")),
			"date":            row.Str("date"),
		})
	}
	insiderTrades := []map[string]any{}
	for _, row := range insider.Rows("transactionTable", "rows") {
		insiderTrades = append(insiderTrades, map[string]any{
			"date":        row.Str("lastDate"),
			"insider":     row.Str("insider"),
			"title":       row.Str("position"),
			"transaction": row.Str("transactionType"),
			"shares":      nasdaq.Volume(row.Value("sharesTraded")),
			"price":       nasdaq.Number(row.Value("lastPrice")),
			"shares_held": nasdaq.Volume(row.Value("sharesHeld")),
		})
	}
	return map[string]any{
		"institutional": map[string]any{
			"summary": map[string]any{
				"shares_outstanding_millions": nasdaq.Volume(
					summary.Object("ShareoutstandingTotal").Value("value")),
				"institutional_ownership_percent": nasdaq.Percent(
					summary.Object("SharesOutstandingPCT").Value("value")),
				"total_value_millions": nasdaq.Number(
					summary.Object("TotalHoldingsValue").Value("value")),
				"total_institutional_holders": nasdaq.Volume(transactions.Value("totalRecords")),
				"total_shares_held":           nasdaq.Volume(transactions.Value("sharesHeld")),
			},
			"top_holders": topHolders,
		},
		"insider_trades": insiderTrades,
	}
}

func normalizeAnalystData(peg nasdaq.Payload) map[string]any {
	var peRatio any
	for _, entry := range peg.Object("per").Rows("peRatioChart") {
		if strings.Contains(entry.Str("x"), "Actual") {
			peRatio = entry.Value("y")
			break
		}
	}
	var growthRate any
	if chart := peg.Object("gr").Rows("peGrowthChart"); len(chart) > 0 {
		growthRate = chart[len(chart)-1].Value("y")
	}
	return map[string]any{
		"peg_ratio":   peg.Object("pegr").Value("pegValue"),
		"pe_ratio":    peRatio,
		"growth_rate": growthRate,
	}
}

func normalizeShortInterest(short nasdaq.Payload) map[string]any {
	rows := short.Rows("shortInterestTable", "rows")
	if len(rows) == 0 {
		return map[string]any{}
	}
	latest := rows[0]
	return map[string]any{
		"settlement_date":  latest.Str("settlementDate"),
		"shares_short":     nasdaq.Volume(latest.Value("shortInterest")),
		"avg_daily_volume": nasdaq.Volume(latest.Value("avgDailyShareVolume")),
		"days_to_cover":    nasdaq.Number(latest.Value("daysToCover")),
	}
}

func normalizeSECFilings(filings nasdaq.Payload) []map[string]any {
	result := []map[string]any{}
	for _, row := range filings.Rows("data", "rows") {
		result = append(result, map[string]any{
			"date_filed":  row.Str("filed"),
			"form_type":   row.Str("formType"),
			"description": row.Str("description"),
			"url":         row.Str("url"),
		})
	}
	return result
}

func normalizeNews(press, articles nasdaq.Payload) map[string]any {
	pressReleases := []map[string]any{}
	for _, row := range press.Rows("rows") {
		pressReleases = append(pressReleases, map[string]any{
			"date":      row.Str("created"),
			"title":     row.Str("title"),
			"url":       row.Str("url"),
			"publisher": row.Str("publisher"),
		})
	}
	items := []map[string]any{}
	for _, row := range articles.Rows("rows") {
		related := []string{}
		for _, v := range row.List("related_symbols") {
			if s, ok := v.(string); ok {
				related = append(related, strings.ToUpper(strings.SplitN(s, "|", 2)[0]))
			}
		}
		items = append(items, map[string]any{
			"date":            row.Str("created"),
			"title":           row.Str("title"),
			"url":             row.Str("url"),
			"publisher":       row.Str("publisher"),
			"related_symbols": related,
		})
	}
	return map[string]any{
		"press_releases": pressReleases,
		"articles":       items,
	}
}
