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

// Filing is one normalized SEC filing record.
type Filing struct {
	Filed       string `json:"date_filed"`
	FormType    string `json:"form_type"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ParseFilings normalizes a SEC filings payload. The endpoint has served the
// rows both nested under a data object and at the top level.
func ParseFilings(p Payload) []Filing {
	rows := p.Rows("data", "rows")
	if rows == nil {
		rows = p.Rows("rows")
	}
	filings := []Filing{}
	for _, row := range rows {
		filings = append(filings, Filing{
			Filed:       row.Str("filed"),
			FormType:    row.Str("formType"),
			Description: row.Str("reportingOwner"),
			URL:         row.Object("view").Str("htmlLink"),
		})
	}
	return filings
}

// GetSECFilings fetches and normalizes the most recent SEC filings.
func GetSECFilings(ctx context.Context, symbol string, limit int) ([]Filing, error) {
	if limit <= 0 {
		limit = 50
	}
	p, err := FetchSECFilings(ctx, symbol, limit)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch SEC filings for %s", symbol)
	}
	return ParseFilings(p), nil
}
