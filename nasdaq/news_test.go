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
	"net/url"
	"testing"

	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNews(t *testing.T) {
	Convey("ParseNews", t, func() {
		Convey("normalizes rows with field fallbacks", func() {
			p := Payload{
				"rows": []any{
					map[string]any{
						"title":         "Apple Reports Q4 Results",
						"summary":       "Record revenue.",
						"url":           "/articles/apple-q4",
						"publishedDate": "Nov 25, 2025",
						"providerName":  "Reuters",
					},
					map[string]any{
						"title":     "Markets Rally",
						"url":       "/articles/rally",
						"created":   "Nov 24, 2025",
						"publisher": "MT Newswires",
					},
				},
			}
			So(ParseNews(p), ShouldResemble, []Article{
				{
					Title:         "Apple Reports Q4 Results",
					Summary:       "Record revenue.",
					URL:           "/articles/apple-q4",
					PublishedDate: "Nov 25, 2025",
					Source:        "Reuters",
				},
				{
					Title:         "Markets Rally",
					URL:           "/articles/rally",
					PublishedDate: "Nov 24, 2025",
					Source:        "MT Newswires",
				},
			})
		})

		Convey("reads rows nested under data", func() {
			p := Payload{
				"data": map[string]any{
					"rows": []any{
						map[string]any{"title": "Nested", "url": "/articles/nested"},
					},
				},
			}
			So(ParseNews(p), ShouldResemble, []Article{
				{Title: "Nested", URL: "/articles/nested"},
			})
		})

		Convey("empty payload yields empty list", func() {
			So(ParseNews(Payload{}), ShouldResemble, []Article{})
		})
	})

	Convey("GetNews", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		WebURL = server.URL() + "/webapi"
		ctx := UseClient(context.Background())

		Convey("requests the news endpoint with a clamped limit", func() {
			server.ResponseBody = []string{`{"data": {"rows": []}}`}
			articles, err := GetNews(ctx, "aapl", 100)
			So(err, ShouldBeNil)
			So(articles, ShouldResemble, []Article{})
			So(server.RequestPath, ShouldEqual, "/webapi/news/topic/articlebysymbol")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"q":        []string{"AAPL|STOCKS"},
				"offset":   []string{"0"},
				"limit":    []string{"50"},
				"fallback": []string{"true"},
			})
		})

		Convey("non-positive limit defaults to 20", func() {
			server.ResponseBody = []string{`{"data": {"rows": []}}`}
			_, err := GetNews(ctx, "AAPL", 0)
			So(err, ShouldBeNil)
			So(server.RequestQuery.Get("limit"), ShouldEqual, "20")
		})
	})
}
