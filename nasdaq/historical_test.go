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
	"math"
	"testing"

	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHistorical(t *testing.T) {
	Convey("ParseHistorical", t, func() {
		p := Payload{
			"tradesTable": map[string]any{
				"rows": []any{
					map[string]any{
						"date":   "11/25/2025",
						"open":   "$276.00",
						"high":   "$279.50",
						"low":    "$275.10",
						"close":  "$277.90",
						"volume": "48,493,333",
					},
				},
			},
		}
		So(ParseHistorical(p), ShouldResemble, []PriceBar{{
			Date:   "11/25/2025",
			Open:   fptr(276.0),
			High:   fptr(279.5),
			Low:    fptr(275.1),
			Close:  fptr(277.9),
			Volume: iptr(48493333),
		}})
		So(ParseHistorical(Payload{}), ShouldResemble, []PriceBar{})
	})

	Convey("ParseHistoricalNOCP keeps date and close only", t, func() {
		p := Payload{
			"nocp": map[string]any{
				"rows": []any{
					map[string]any{"date": "11/25/2025", "nocp": "277.90"},
				},
			},
		}
		So(ParseHistoricalNOCP(p), ShouldResemble, []PriceBar{{
			Date:  "11/25/2025",
			Close: fptr(277.9),
		}})
	})

	Convey("GetHistorical", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		URL = server.URL() + "/api"
		ctx := UseClient(context.Background())

		Convey("requests a date window", func() {
			server.ResponseBody = []string{`{"data": {}}`}
			bars, err := GetHistorical(ctx, "AAPL", "1month")
			So(err, ShouldBeNil)
			So(bars, ShouldResemble, []PriceBar{})
			So(server.RequestPath, ShouldEqual, "/api/quote/AAPL/historical")
			So(server.RequestQuery.Get("assetclass"), ShouldEqual, "stocks")
			So(server.RequestQuery.Get("limit"), ShouldEqual, "100")
			So(server.RequestQuery.Get("fromdate"), ShouldNotEqual, "")
			So(server.RequestQuery.Get("todate"), ShouldNotEqual, "")
		})

		Convey("unknown period is rejected without a request", func() {
			_, err := GetHistorical(ctx, "AAPL", "2weeks")
			So(err, ShouldNotBeNil)
			So(server.RequestPath, ShouldEqual, "")
		})
	})

	Convey("HistoricalPeriods is sorted", t, func() {
		So(HistoricalPeriods(), ShouldResemble,
			[]string{"1day", "1month", "1year", "3month", "5day"})
	})

	Convey("Returns", t, func() {
		Convey("computes log-return statistics", func() {
			bars := []PriceBar{
				{Close: fptr(100.0)},
				{Close: nil}, // skipped
				{Close: fptr(110.0)},
				{Close: fptr(121.0)},
			}
			s := Returns(bars)
			So(s.Samples, ShouldEqual, 2)
			So(testutil.Round(s.Mean, 6), ShouldEqual, testutil.Round(math.Log(1.1), 6))
			So(s.Volatility, ShouldEqual, 0.0)
		})

		Convey("too few samples yield zeros", func() {
			So(Returns(nil), ShouldResemble, ReturnStats{})
			So(Returns([]PriceBar{{Close: fptr(100.0)}}), ShouldResemble,
				ReturnStats{Samples: 0})
			s := Returns([]PriceBar{{Close: fptr(100.0)}, {Close: fptr(101.0)}})
			So(s.Samples, ShouldEqual, 1)
			So(s.Volatility, ShouldEqual, 0.0)
		})
	})
}
