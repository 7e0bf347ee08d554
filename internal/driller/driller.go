// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Driller resolves a dotted path such as "owner.team" or "tags[1]" against a
// JSON document. A segment naming a one element array steps into that element;
// longer arrays are returned whole unless indexed. An invalid segment or an
// out of range index yields the zero Result.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(matches[1])
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
