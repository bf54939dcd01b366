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

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "ampersand and word delimiters",
			raw:  "a & b and c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "single message",
			raw:  "hello world",
			want: []string{"hello world"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: nil,
		},
		{
			name: "uppercase AND",
			raw:  "x AND y",
			want: []string{"x", "y"},
		},
		{
			name: "and requires word boundaries",
			raw:  "sandy & randy",
			want: []string{"sandy", "randy"},
		},
		{
			name: "fullwidth ampersand",
			raw:  "x ＆ y",
			want: []string{"x", "y"},
		},
		{
			name: "small ampersand",
			raw:  "x ﹠ y",
			want: []string{"x", "y"},
		},
		{
			name: "turned ampersand",
			raw:  "x ⅋ y",
			want: []string{"x", "y"},
		},
		{
			name: "fullwidth letters pass through untouched",
			raw:  "ｘ ＡＮＤ ｙ",
			want: []string{"ｘ ＡＮＤ ｙ"},
		},
		{
			name: "consecutive delimiters drop empties",
			raw:  "a && b and and c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "pieces are trimmed",
			raw:  "  a  &  b  ",
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.raw))
		})
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "x & y", Decode([]byte("x & y")))

	// Invalid UTF-8 bytes are dropped rather than replaced.
	assert.Equal(t, "ab", Decode([]byte{'a', 0xff, 0xfe, 'b'}))
}
