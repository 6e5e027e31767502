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

const (
	defaultNewsLimit = 20
	maxNewsLimit     = 50
)

// Article is one normalized news item.
type Article struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
}

// ParseNews normalizes a news payload. The news endpoints disagree on field
// names for dates and sources, hence the fallbacks.
func ParseNews(p Payload) []Article {
	rows := p.Rows("rows")
	if rows == nil {
		rows = p.Rows("data", "rows")
	}
	articles := []Article{}
	for _, row := range rows {
		articles = append(articles, Article{
			Title:         row.Str("title"),
			Summary:       row.Str("summary"),
			URL:           row.Str("url"),
			PublishedDate: strAny(row, "publishedDate", "published", "created"),
			Source:        strAny(row, "providerName", "source", "publisher"),
		})
	}
	return articles
}

// GetNews fetches and normalizes news articles for a symbol. A non-positive
// limit defaults to 20; limits above 50 are clamped to 50.
func GetNews(ctx context.Context, symbol string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	if limit > maxNewsLimit {
		limit = maxNewsLimit
	}
	p, err := FetchNewsArticles(ctx, symbol, limit, 0)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch news for %s", symbol)
	}
	return ParseNews(p), nil
}
