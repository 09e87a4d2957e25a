// Copyright 2026 The fuzz_exporter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package regexutil

import "regexp"

// FindNamedGroupsMatch finds the leftmost match of a regex with named groups
// and returns the values of the sub-matches as key-value pairs.
// An optional group that did not participate in the match is present in the
// result with an empty value.
func FindNamedGroupsMatch(regex *regexp.Regexp, text string) (map[string]string, bool) {
	match := regex.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	result := make(map[string]string)
	for i, name := range regex.SubexpNames() {
		if i != 0 && name != "" {
			result[name] = match[i]
		}
	}
	return result, true
}
