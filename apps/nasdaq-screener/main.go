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
	"context"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"github.com/stockwire/stockwire/nasdaq"
	"github.com/stockwire/stockwire/table"
)

type Flags struct {
	Exchange string // nasdaq, nyse or amex; default: all
	Sector   string // sector name filter
	Rows     int    // maximum rows to print; 0 = unlimited
	CSV      bool   // dump CSV format; default: text
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("nasdaq-screener", flag.ExitOnError)
	fs.StringVar(&flags.Exchange, "exchange", "",
		"exchange to list: nasdaq, nyse or amex; default: all")
	fs.StringVar(&flags.Sector, "sector", "", "sector name filter")
	fs.IntVar(&flags.Rows, "rows", 0, "maximum number of rows to print; 0 = unlimited")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	return &flags, err
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func screenerTable(infos []nasdaq.SymbolInfo) *table.Table {
	tbl := table.New("Symbol", "Name", "Sector", "Industry",
		"Market Cap", "Last Sale", "Volume", "Exchange")
	for _, info := range infos {
		tbl.Add(info.Symbol, info.Name, info.Sector, info.Industry,
			formatFloat(info.MarketCap), formatFloat(info.LastSale),
			formatInt(info.Volume), info.Exchange)
	}
	return tbl
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	ctx = nasdaq.UseClient(ctx)
	infos, err := nasdaq.SearchSymbols(ctx, nasdaq.Criteria{
		Exchange: flags.Exchange,
		Sector:   flags.Sector,
	})
	if err != nil {
		return errors.Annotate(err, "failed to fetch listings")
	}
	tbl := screenerTable(infos)
	params := table.Params{Limit: flags.Rows}
	if flags.CSV {
		if err := tbl.WriteCSV(w, params); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, params); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
