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

// ShortInterest is the most recent short interest settlement for a symbol.
type ShortInterest struct {
	SettlementDate string   `json:"settlement_date"`
	SharesShort    *int64   `json:"shares_short"`
	AvgDailyVolume *int64   `json:"average_daily_volume"`
	DaysToCover    *float64 `json:"days_to_cover"`
}

// ParseShortInterest normalizes a short interest payload. The table lists
// settlements most recent first; only the latest row is kept.
func ParseShortInterest(p Payload) *ShortInterest {
	si := &ShortInterest{}
	rows := p.Rows("shortInterestTable", "rows")
	if len(rows) == 0 {
		return si
	}
	row := rows[0]
	si.SettlementDate = row.Str("settlementDate")
	si.SharesShort = Volume(firstNonNil(
		row.Value("interest"), row.Value("shortInterest")))
	si.AvgDailyVolume = Volume(firstNonNil(
		row.Value("avgDailyShareVolume"), row.Value("averageDailyShareVolume")))
	si.DaysToCover = Number(row.Value("daysToCover"))
	return si
}

// firstNonNil returns the first non-nil value, or nil.
func firstNonNil(vs ...any) any {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}

// GetShortInterest fetches and normalizes short interest for a symbol.
func GetShortInterest(ctx context.Context, symbol string) (*ShortInterest, error) {
	p, err := FetchShortInterest(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch short interest for %s", symbol)
	}
	return ParseShortInterest(p), nil
}
