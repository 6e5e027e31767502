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

// AnalystRatings is the normalized analyst valuation record.
type AnalystRatings struct {
	PEGRatio   *float64 `json:"peg_ratio"`
	PERatio    *float64 `json:"pe_ratio"`
	GrowthRate *float64 `json:"growth_rate"`
}

// ParseAnalyst normalizes a PEG ratio payload.
func ParseAnalyst(p Payload) *AnalystRatings {
	peg := p.Object("pegRatio")
	return &AnalystRatings{
		PEGRatio:   Number(peg.Value("value")),
		PERatio:    Number(peg.Value("peRatio")),
		GrowthRate: Percent(peg.Value("growthRate")),
	}
}

// GetAnalystRatings fetches and normalizes analyst valuation data.
func GetAnalystRatings(ctx context.Context, symbol string) (*AnalystRatings, error) {
	p, err := FetchPEGRatio(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch analyst ratings for %s", symbol)
	}
	return ParseAnalyst(p), nil
}
