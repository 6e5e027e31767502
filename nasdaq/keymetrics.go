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

// KeyMetrics is a cross-endpoint summary of a symbol, combined from the
// quote info, dividends and institutional holdings payloads.
type KeyMetrics struct {
	PERatio                   *float64 `json:"pe_ratio"`
	Week52High                *float64 `json:"week_52_high"`
	Week52Low                 *float64 `json:"week_52_low"`
	DividendYield             *float64 `json:"dividend_yield"`
	SharesOutstanding         *int64   `json:"shares_outstanding"`
	SharesOutstandingMillions *int64   `json:"shares_outstanding_millions"`
}

// ParseKeyMetrics combines the three payloads into one metrics record. Any of
// them may be nil.
func ParseKeyMetrics(info, dividends, institutional Payload) *KeyMetrics {
	m := &KeyMetrics{
		PERatio:       Number(dividends.Value("payoutRatio")),
		DividendYield: Percent(dividends.Value("yield")),
	}
	week52 := info.Object("keyStats").Object("fiftyTwoWeekHighLow")
	m.Week52Low, m.Week52High = Range(week52.Value("value"))
	m.SharesOutstandingMillions = Volume(institutional.
		Object("ownershipSummary").Object("ShareoutstandingTotal").Value("value"))
	if m.SharesOutstandingMillions != nil {
		n := *m.SharesOutstandingMillions * 1_000_000
		m.SharesOutstanding = &n
	}
	return m
}
