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

func TestFinancials(t *testing.T) {
	Convey("ParseFinancials", t, func() {
		Convey("pivots statement rows into line items", func() {
			p := Payload{
				"incomeStatementTable": map[string]any{
					"rows": []any{
						map[string]any{
							"label":  "Total Revenue",
							"value1": "$391,035,000",
							"value2": "$383,285,000",
						},
					},
				},
			}
			f := ParseFinancials(p)
			So(f.IncomeStatement, ShouldResemble, []LineItem{{
				Label: "Total Revenue",
				Values: map[string]*float64{
					"value1": fptr(391035000.0),
					"value2": fptr(383285000.0),
				},
			}})
		})

		Convey("missing sections are empty, not missing", func() {
			f := ParseFinancials(Payload{})
			So(f.IncomeStatement, ShouldResemble, []LineItem{})
			So(f.BalanceSheet, ShouldResemble, []LineItem{})
			So(f.CashFlow, ShouldResemble, []LineItem{})
			So(f.Ratios, ShouldResemble, []LineItem{})
		})
	})

	Convey("GetFinancials", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		URL = server.URL() + "/api"
		ctx := UseClient(context.Background())

		Convey("annual maps to frequency 1", func() {
			server.ResponseBody = []string{`{"data": {}}`}
			_, err := GetFinancials(ctx, "AAPL", PeriodAnnual)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/company/AAPL/financials")
			So(server.RequestQuery, ShouldResemble,
				url.Values{"frequency": []string{"1"}})
		})

		Convey("quarterly maps to frequency 2", func() {
			server.ResponseBody = []string{`{"data": {}}`}
			_, err := GetFinancials(ctx, "AAPL", PeriodQuarterly)
			So(err, ShouldBeNil)
			So(server.RequestQuery, ShouldResemble,
				url.Values{"frequency": []string{"2"}})
		})

		Convey("unknown period is rejected without a request", func() {
			server.ResponseBody = nil
			_, err := GetFinancials(ctx, "AAPL", "monthly")
			So(err, ShouldNotBeNil)
			So(server.RequestPath, ShouldEqual, "")
		})
	})
}
