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

func TestShortInterest(t *testing.T) {
	Convey("ParseShortInterest", t, func() {
		Convey("keeps only the latest settlement", func() {
			p := Payload{
				"shortInterestTable": map[string]any{
					"rows": []any{
						map[string]any{
							"settlementDate":      "11/14/2025",
							"interest":            "105,379,476",
							"avgDailyShareVolume": "46,907,648",
							"daysToCover":         "2.246747",
						},
						map[string]any{
							"settlementDate": "10/31/2025",
							"interest":       "99,000,000",
						},
					},
				},
			}
			si := ParseShortInterest(p)
			So(si.SettlementDate, ShouldEqual, "11/14/2025")
			So(si.SharesShort, ShouldResemble, iptr(105379476))
			So(si.AvgDailyVolume, ShouldResemble, iptr(46907648))
			So(si.DaysToCover, ShouldResemble, fptr(2.246747))
		})

		Convey("alternate field spellings are accepted", func() {
			p := Payload{
				"shortInterestTable": map[string]any{
					"rows": []any{
						map[string]any{
							"settlementDate":          "11/14/2025",
							"shortInterest":           "105,379,476",
							"averageDailyShareVolume": "46,907,648",
						},
					},
				},
			}
			si := ParseShortInterest(p)
			So(si.SharesShort, ShouldResemble, iptr(105379476))
			So(si.AvgDailyVolume, ShouldResemble, iptr(46907648))
		})

		Convey("empty payload yields an empty record", func() {
			So(ParseShortInterest(Payload{}), ShouldResemble, &ShortInterest{})
		})
	})

	Convey("GetShortInterest requests the short-interest endpoint", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		URL = server.URL() + "/api"
		ctx := UseClient(context.Background())

		server.ResponseBody = []string{`{"data": {}}`}
		_, err := GetShortInterest(ctx, "AAPL")
		So(err, ShouldBeNil)
		So(server.RequestPath, ShouldEqual, "/api/quote/AAPL/short-interest")
		So(server.RequestQuery, ShouldResemble,
			url.Values{"assetClass": []string{"stocks"}})
	})
}
