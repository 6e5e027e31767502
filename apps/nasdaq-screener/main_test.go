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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"
	"github.com/stockwire/stockwire/nasdaq"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	Convey("parseFlags", t, func() {
		flags, err := parseFlags([]string{
			"-exchange", "nyse", "-sector", "Finance", "-rows", "5",
			"-csv", "-log-level", "warning"})
		So(err, ShouldBeNil)
		So(flags.Exchange, ShouldEqual, "nyse")
		So(flags.Sector, ShouldEqual, "Finance")
		So(flags.Rows, ShouldEqual, 5)
		So(flags.CSV, ShouldBeTrue)
		So(flags.LogLevel, ShouldEqual, logging.Warning)
	})

	Convey("printData", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		ctx := logging.Use(context.Background(),
			logging.DefaultGoLogger(logging.Error))
		nasdaq.URL = server.URL() + "/api"

		body := `{"data": {"rows": [
			{"symbol": "AAPL", "name": "Apple Inc.", "sector": "Technology",
			 "industry": "Computer Manufacturing", "marketCap": "4,100,000,000,000",
			 "lastsale": "$277.90", "volume": "48,493,333"}
		]}}`

		Convey("prints CSV", func() {
			server.ResponseBody = []string{body}
			flags, err := parseFlags([]string{"-exchange", "nasdaq", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Symbol,Name,Sector,Industry,Market Cap,Last Sale,Volume,Exchange
AAPL,Apple Inc.,Technology,Computer Manufacturing,4100000000000,277.9,48493333,NASDAQ
`)
		})

		Convey("unknown exchange is an error", func() {
			flags, err := parseFlags([]string{"-exchange", "lse"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldNotBeNil)
		})
	})
}
