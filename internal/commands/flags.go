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

package commands

import "github.com/spf13/pflag"

// stringFlag reads a string flag, returning "" when it is not set or
// not registered on the command.
func stringFlag(flags *pflag.FlagSet, name string) string {
	v, _ := flags.GetString(name)
	return v
}

// int64Flag reads an int64 flag, returning 0 when it is not set or not
// registered on the command.
func int64Flag(flags *pflag.FlagSet, name string) int64 {
	v, _ := flags.GetInt64(name)
	return v
}
