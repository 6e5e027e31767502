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
	"regexp"
	"strconv"
	"strings"
)

// Scalar coercion shared by every category parser and normalizer. The API
// serves numbers as display strings ("$277.90", "1,234,567", "0.34%"), as
// plain JSON numbers, or not at all; these helpers accept anything and return
// nil instead of failing. A nil result is the null sentinel: the record key is
// still present in the output, its value is null.

// placeholder strings the API uses for "no value".
func isPlaceholder(s string) bool {
	switch strings.ToUpper(s) {
	case "", "N/A", "NA", "-", "--", "NULL":
		return true
	}
	return false
}

// scalar parses an arbitrary JSON scalar. percent reports a trailing '%' on
// string input; val is the parsed value before any percent division.
func scalar(v any) (val float64, percent bool, ok bool) {
	switch t := v.(type) {
	case float64:
		return t, false, true
	case float32:
		return float64(t), false, true
	case int:
		return float64(t), false, true
	case int64:
		return float64(t), false, true
	case bool:
		if t {
			return 1, false, true
		}
		return 0, false, true
	case string:
		s := strings.TrimSpace(t)
		if isPlaceholder(s) {
			return 0, false, false
		}
		if strings.HasSuffix(s, "%") {
			percent = true
		}
		s = strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(s)
		if isPlaceholder(s) {
			return 0, false, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, false
		}
		return f, percent, true
	}
	return 0, false, false
}

// Number coerces v to a float. Currency symbols and thousands separators are
// stripped; a trailing percent sign divides the value by 100. Unparseable
// input yields nil.
func Number(v any) *float64 {
	f, percent, ok := scalar(v)
	if !ok {
		return nil
	}
	if percent {
		f /= 100
	}
	return &f
}

// Percent coerces v to a ratio: "10%", "10" and 10 all yield 0.10.
func Percent(v any) *float64 {
	f, _, ok := scalar(v)
	if !ok {
		return nil
	}
	f /= 100
	return &f
}

// Volume coerces v to an integer count, truncating any fractional part.
func Volume(v any) *int64 {
	f, percent, ok := scalar(v)
	if !ok {
		return nil
	}
	if percent {
		f /= 100
	}
	n := int64(f)
	return &n
}

var rangeRe = regexp.MustCompile(`([$\d.,]+)\s*-\s*([$\d.,]+)`)

// Range parses a "245.54 - 260.10" style range string into its low and high
// bounds. Either bound is nil when the input does not look like a range.
func Range(v any) (low, high *float64) {
	s, ok := v.(string)
	if !ok {
		return nil, nil
	}
	m := rangeRe.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	return Number(m[1]), Number(m[2])
}
