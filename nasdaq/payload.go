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

// Payload is the raw "data" object of one endpoint response. The upstream
// service only loosely specifies its shapes: fields may be absent, null, or
// change type across symbols. All navigation methods are nil-safe and return
// zero values instead of failing, so parsers can chain them freely.
type Payload map[string]any

// AsPayload converts a generic JSON value to a Payload, or nil if the value is
// not an object.
func AsPayload(v any) Payload {
	switch t := v.(type) {
	case Payload:
		return t
	case map[string]any:
		return Payload(t)
	}
	return nil
}

// Value returns the raw value under key, or nil.
func (p Payload) Value(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// Object returns the nested object under key, or nil.
func (p Payload) Object(key string) Payload {
	return AsPayload(p.Value(key))
}

// Str returns the string under key, or "" when absent or not a string.
func (p Payload) Str(key string) string {
	s, _ := p.Value(key).(string)
	return s
}

// List returns the list under key, or nil.
func (p Payload) List(key string) []any {
	l, _ := p.Value(key).([]any)
	return l
}

// Rows walks the nested objects named by path and returns the list under the
// last path element as a slice of objects, skipping non-object entries. The
// result is nil when any step of the path is missing.
func (p Payload) Rows(path ...string) []Payload {
	if len(path) == 0 {
		return nil
	}
	obj := p
	for _, key := range path[:len(path)-1] {
		obj = obj.Object(key)
	}
	var rows []Payload
	for _, v := range obj.List(path[len(path)-1]) {
		if row := AsPayload(v); row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}
