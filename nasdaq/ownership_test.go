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
	"testing"

	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOwnership(t *testing.T) {
	Convey("ParseOwnership", t, func() {
		Convey("normalizes both payloads", func() {
			institutional := Payload{
				"ownershipSummary": map[string]any{
					"ShareoutstandingTotal": map[string]any{"value": "14,840"},
					"SharesOutstandingPCT":  map[string]any{"value": "62.51"},
					"TotalHoldingsValue":    map[string]any{"value": "$2,577,925"},
				},
				"holdingsTransactions": map[string]any{
					"totalRecords": "5,181",
					"sharesHeld":   "9,277,140,080",
					"table": map[string]any{
						"rows": []any{
							map[string]any{
								"ownerName":       "Vanguard Group Inc",
								"sharesHeld":      "1,395,129,447",
								"sharesChange":    "-4,094,224",
								"sharesChangePCT": "-0.293%",
								"marketValue":     "$387,646,617",
								"date":            "09/30/2025",
							},
						},
					},
				},
			}
			insider := Payload{
				"transactionTable": map[string]any{
					"rows": []any{
						map[string]any{
							"insider":         "COOK TIMOTHY D",
							"relation":        "Chief Executive Officer",
							"transactionType": "Sell",
							"sharesTraded":    "100,000",
							"lastPrice":       "$268.33",
							"sharesHeld":      "3,280,180",
							"lastDate":        "11/03/2025",
						},
					},
				},
			}
			o := ParseOwnership(institutional, insider)
			So(o.Institutional.Summary.SharesOutstandingMillions, ShouldResemble, iptr(14840))
			So(testutil.Round(*o.Institutional.Summary.InstitutionalOwnershipPercent, 10),
				ShouldEqual, 0.6251)
			So(o.Institutional.Summary.TotalValueMillions, ShouldResemble, fptr(2577925.0))
			So(o.Institutional.Summary.TotalHolders, ShouldResemble, iptr(5181))
			So(len(o.Institutional.TopHolders), ShouldEqual, 1)
			holder := o.Institutional.TopHolders[0]
			So(holder.Institution, ShouldEqual, "Vanguard Group Inc")
			So(holder.Shares, ShouldResemble, iptr(1395129447))
			So(holder.SharesChange, ShouldResemble, iptr(-4094224))
			So(testutil.Round(*holder.ChangePercent, 10), ShouldEqual, -0.00293)
			So(holder.ValueThousands, ShouldResemble, fptr(387646617.0))
			So(holder.Date, ShouldEqual, "09/30/2025")
			So(o.InsiderTrades, ShouldResemble, []InsiderTrade{{
				Insider:         "COOK TIMOTHY D",
				Relationship:    "Chief Executive Officer",
				TransactionType: "Sell",
				Shares:          iptr(100000),
				Price:           fptr(268.33),
				SharesHeld:      iptr(3280180),
				Date:            "11/03/2025",
			}})
		})

		Convey("top holders are capped", func() {
			rows := []any{}
			for i := 0; i < 25; i++ {
				rows = append(rows, map[string]any{"ownerName": fmt.Sprintf("Inst %d", i)})
			}
			institutional := Payload{
				"holdingsTransactions": map[string]any{
					"table": map[string]any{"rows": rows},
				},
			}
			o := ParseOwnership(institutional, nil)
			So(len(o.Institutional.TopHolders), ShouldEqual, 10)
		})

		Convey("empty payloads yield empty lists, not nils", func() {
			o := ParseOwnership(nil, nil)
			So(o.Institutional.TopHolders, ShouldResemble, []Holder{})
			So(o.InsiderTrades, ShouldResemble, []InsiderTrade{})
		})
	})

	Convey("GetOwnership", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		ctx := logging.Use(context.Background(),
			logging.DefaultGoLogger(logging.Error))
		URL = server.URL() + "/api"
		ctx = UseClient(ctx)

		Convey("fetches both endpoints", func() {
			server.ResponseBody = []string{`{"data": {}}`, `{"data": {}}`}
			o, err := GetOwnership(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(o.Institutional.TopHolders, ShouldResemble, []Holder{})
			So(server.RequestPath, ShouldEqual, "/api/company/AAPL/insider-trades")
		})

		Convey("one failing endpoint degrades to a partial record", func() {
			server.ResponseBody = []string{`not json`, `{"data":
				{"transactionTable": {"rows": [{"insider": "SMITH JOHN"}]}}}`}
			o, err := GetOwnership(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(len(o.InsiderTrades), ShouldEqual, 1)
			So(o.InsiderTrades[0].Insider, ShouldEqual, "SMITH JOHN")
		})

		Convey("both failing is an error", func() {
			server.ResponseBody = []string{`not json`, `not json`}
			_, err := GetOwnership(ctx, "AAPL")
			So(err, ShouldNotBeNil)
		})
	})
}
