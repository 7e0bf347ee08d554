// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed field of a --sort spec.
type sortKey struct {
	field         string
	descending    bool
	caseSensitive bool
}

func parseSortSpec(spec string) []sortKey {
	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		k := sortKey{}
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			k.descending = true
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			k.caseSensitive = true
		}
		if field == "" {
			continue
		}
		k.field = field
		keys = append(keys, k)
	}
	return keys
}

// SortDataset stable-sorts rows by a --sort spec such as "-added,path". A
// leading "-" reverses a field and "!" makes string comparison case
// sensitive. Numbers compare numerically, everything else as strings.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	keys := parseSortSpec(spec)
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(resultSet, func(one, two int) bool {
		for _, k := range keys {
			oneValue := resultSet[one][k.field]
			twoValue := resultSet[two][k.field]

			oneNum, oneOk := oneValue.(float64)
			twoNum, twoOk := twoValue.(float64)
			if oneOk && twoOk {
				if oneNum != twoNum {
					return (oneNum < twoNum) != k.descending
				}
				continue
			}

			// Strings, bools and missing values.
			oneStr := InterfaceToString(oneValue)
			twoStr := InterfaceToString(twoValue)
			if !k.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				return (oneStr < twoStr) != k.descending
			}
		}
		return false
	})
}
