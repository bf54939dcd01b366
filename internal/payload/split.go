// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package payload parses operator-supplied message payloads into the
// message pool consumed by the dry-run engine.
package payload

import (
	"regexp"
	"strings"
)

// delimiter matches either an ampersand or the whole word "and"
// (case-insensitive), with optional surrounding whitespace.
var delimiter = regexp.MustCompile(`(?i)\s*(?:&|\band\b)\s*`)

// ampersandVariants maps exactly the three ampersand look-alikes to
// ASCII `&`: U+FE60 SMALL AMPERSAND, U+FF06 FULLWIDTH AMPERSAND, and
// U+214B TURNED AMPERSAND. All other characters pass through verbatim.
var ampersandVariants = strings.NewReplacer(
	"﹠", "&",
	"＆", "&",
	"⅋", "&",
)

// Split parses a raw payload string into individual messages.
// Ampersand look-alikes (small, fullwidth, turned) are normalized to
// ASCII `&` before splitting on `&` or the word "and". Each piece is
// trimmed and empty pieces are dropped, so blank input yields nil.
func Split(raw string) []string {
	raw = ampersandVariants.Replace(raw)

	var messages []string
	for _, part := range delimiter.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		messages = append(messages, part)
	}
	return messages
}

// Decode converts raw uploaded-file bytes into a string, dropping any
// byte sequences that are not valid UTF-8.
func Decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
