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
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"github.com/stockwire/stockwire/nasdaq"
	"github.com/stockwire/stockwire/nasdaq/compat"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Symbol     string // required
	Categories string // comma-separated; default: all
	Conf       string // optional toml config with default categories
	Legacy     bool   // raw fetch + legacy normalized schema
	Stats      bool   // include daily return statistics
	Output     string // output file; default: stdout
	LogLevel   logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("nasdaq-fetch", flag.ExitOnError)
	fs.StringVar(&flags.Symbol, "symbol", "", "stock symbol to fetch (required)")
	fs.StringVar(&flags.Categories, "include", "",
		"comma-separated data categories; default: all")
	fs.StringVar(&flags.Conf, "conf", "", "toml config file with default categories")
	fs.BoolVar(&flags.Legacy, "legacy", false,
		"fetch all raw endpoints and print the legacy normalized schema")
	fs.BoolVar(&flags.Stats, "stats", false,
		"include daily return statistics of the historical prices")
	fs.StringVar(&flags.Output, "out", "", "output file; default: stdout")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.Symbol == "" {
		return nil, errors.Reason("missing required -symbol argument")
	}
	if flags.Legacy && flags.Categories != "" {
		return nil, errors.Reason("-include cannot be used with -legacy")
	}
	return &flags, nil
}

type Config struct {
	Categories []string `toml:"categories"` // default categories to fetch
}

func parseConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

// categories resolves the list to fetch: the -include flag wins, then the
// config file, then all categories.
func categories(flags *Flags) ([]string, error) {
	if flags.Categories != "" {
		var cs []string
		for _, c := range strings.Split(flags.Categories, ",") {
			cs = append(cs, strings.TrimSpace(c))
		}
		return cs, nil
	}
	if flags.Conf != "" {
		c, err := parseConfig(flags.Conf)
		if err != nil {
			return nil, errors.Annotate(err, "failed to parse config")
		}
		return c.Categories, nil
	}
	return nil, nil
}

func fetchData(ctx context.Context, flags *Flags) (any, error) {
	if flags.Legacy {
		raw, err := compat.FetchAllSymbolData(ctx, flags.Symbol)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch %s", flags.Symbol)
		}
		return compat.NormalizeNasdaqData(raw), nil
	}
	cs, err := categories(flags)
	if err != nil {
		return nil, err
	}
	data, err := nasdaq.GetSymbolData(ctx, flags.Symbol, cs...)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", flags.Symbol)
	}
	if !flags.Stats {
		return data, nil
	}
	return struct {
		*nasdaq.SymbolData
		Returns nasdaq.ReturnStats `json:"returns"`
	}{data, nasdaq.Returns(data.Historical)}, nil
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	ctx = nasdaq.UseClient(ctx)
	data, err := fetchData(ctx, flags)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Annotate(err, "failed to marshal data")
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return errors.Annotate(err, "failed to write output")
	}
	return nil
}

func run(ctx context.Context, flags *Flags) error {
	w := io.Writer(os.Stdout)
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return errors.Annotate(err, "failed to create output file %s", flags.Output)
		}
		defer f.Close()
		w = f
	}
	return printData(ctx, flags, w)
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

	if err := run(ctx, flags); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
