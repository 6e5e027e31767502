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

// Package nasdaq is a client for NASDAQ's public web API. It fetches the raw
// JSON payloads served to nasdaq.com and reshapes them into normalized records
// with a fixed schema per data category.
package nasdaq

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the main API server. It may be overwritten in
// tests before creating a new client.
var URL = "https://api.nasdaq.com/api"

// WebURL is the default base URL of the web API server hosting the news
// endpoints. It may be overwritten in tests before creating a new client.
var WebURL = "https://www.nasdaq.com/api"

// Client for querying NASDAQ data categories. The API requires no credentials,
// but rejects requests that do not look like they come from a browser.
type Client struct {
	baseURL string // quote / company / screener endpoints
	webURL  string // news endpoints
}

// newClient creates a new client.
func newClient(baseURL, webURL string) *Client {
	return &Client{
		baseURL: baseURL,
		webURL:  webURL,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client from the current base URLs and injects it
// into the context, along with an HTTP client that presents browser headers
// on every request.
func UseClient(ctx context.Context) context.Context {
	ctx = fetch.UseClient(ctx, &http.Client{Transport: &headerTransport{}})
	return context.WithValue(ctx, clientContextKey, newClient(URL, WebURL))
}

// browserHeader returns the headers sent with every request. The server
// responds with an empty body to clients that do not present a browser-like
// User-Agent.
func browserHeader() http.Header {
	h := make(http.Header)
	h.Set("User-Agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:85.0) Gecko/20100101 Firefox/85.0")
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	return h
}

// headerTransport decorates every outgoing request with browserHeader.
type headerTransport struct {
	base http.RoundTripper // nil = http.DefaultTransport
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key, values := range browserHeader() {
		req.Header[key] = values
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// envelope is the common wrapper of every API response.
type envelope struct {
	Data any `json:"data"`
}

// get fetches uri and strips the {"data": ...} envelope. A nil Payload with a
// nil error means the server responded successfully with a null data section.
func get(ctx context.Context, uri string, query url.Values) (Payload, error) {
	var env envelope
	if err := fetch.FetchJSON(ctx, uri, &env, query, nil); err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", uri)
	}
	return AsPayload(env.Data), nil
}

// apiGet fetches an endpoint relative to the main API base URL.
func apiGet(ctx context.Context, path string, query url.Values) (Payload, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("no client in context")
	}
	return get(ctx, client.baseURL+path, query)
}

// webGet fetches an endpoint relative to the web API base URL.
func webGet(ctx context.Context, path string, query url.Values) (Payload, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("no client in context")
	}
	return get(ctx, client.webURL+path, query)
}
