// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/tfctl/dirdiff/internal/log"
)

// Attr is one column of listing output. Key names a field of the entry JSON
// object; OutputKey is its column title and the name --filter and --sort use.
type Attr struct {
	// The JSON key to extract from each entry.
	Key string `yaml:"key" json:"Key"`
	// Included in output, or only carried for filtering and sorting?
	Include bool `yaml:"include" json:"Include"`
	// Output key and column title.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec applied to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Spec letters:
//
//	h    numeric byte count as a human size (1.2 kB)
//	t/T  RFC3339 timestamp as local time / time ago
//	l/u  lower / upper case, last one wins
//	N    truncate to N cells, -N keeps both ends around ".."
func (a *Attr) Transform(value interface{}) interface{} {
	if strings.Contains(a.TransformSpec, "h") {
		if n, ok := toUint64(value); ok {
			value = humanize.Bytes(n)
			log.Tracef("bytes human: value=%v", value)
		}
	}

	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		result = transformTime(result, strings.Contains(a.TransformSpec, "T"))
	}

	// A global case spec is prepended to the attr's own, so the last letter is
	// the most specific. --attrs '*::U,path::l' lowers path.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
		log.Tracef("case lower: result=%s", result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
		log.Tracef("case upper: result=%s", result)
	}

	if match := lengthRe.FindAllString(a.TransformSpec, -1); len(match) != 0 {
		// Same precedence rule as case: the last length wins.
		l, _ := strconv.Atoi(match[len(match)-1])
		result = truncate(result, l)
	}

	return result
}

// transformTime renders an RFC3339 value in the local zone, or as a relative
// "3 hours ago" when ago is set. Unparseable values pass through.
func transformTime(value string, ago bool) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}

	local := t.In(time.Now().Location())
	if ago {
		value = humanize.Time(local)
		log.Tracef("time ago: result=%s", value)
	} else {
		value = local.Format("2006-01-02T15:04:05MST")
		log.Tracef("time local: result=%s", value)
	}
	return value
}

// truncate limits s to abs(l) display cells. A negative l keeps the head and
// tail of s joined by "..", which suits paths.
func truncate(s string, l int) string {
	abs := int(math.Abs(float64(l)))
	width := runewidth.StringWidth(s)
	if width <= abs {
		return s
	}

	if l >= 0 {
		s = runewidth.Truncate(s, abs, "")
		log.Tracef("length trunc: result=%s", s)
		return s
	}

	side := abs/2 - 1
	if side < 0 {
		side = 0
	}
	s = runewidth.Truncate(s, side, "") + ".." + runewidth.TruncateLeft(s, width-side, "")
	log.Tracef("length middle: result=%s", s)
	return s
}

// toUint64 normalizes the numeric shapes a JSON decode or caller may produce.
func toUint64(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	default:
		return 0, false
	}
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses each comma-separated key:title:transform spec from --attrs and
// adds it to the list, or updates the entry already holding that key.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {
		attr := Attr{
			Include: true,
		}

		fields := strings.Split(spec, ":")

		// A leading ! keeps the key for filtering and sorting only.
		attr.Key = strings.TrimSpace(fields[jsonIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		// Entries are flat objects; a leading "." is accepted and ignored.
		attr.Key = strings.TrimPrefix(attr.Key, ".")
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec: %q", spec)
		}

		if attr.Key == "*" {
			attr.Include = false
		}
		log.Tracef("key parsed: key=%s, include=%v", attr.Key, attr.Include)

		// The title defaults to the last dotted segment of the key.
		if len(fields) == 1 || fields[outputIdx] == "" {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}
		log.Tracef("output set: outputKey=%s", attr.OutputKey)

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("transform set: spec=%s", attr.TransformSpec)

		// A default attr, or one the user entered twice, is updated in place.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		*a = append(*a, attr)
		log.Tracef("attr appended: len=%d", len(*a))
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform spec of the "*" attr, if any,
// to every attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	for attr := range *a {
		if (*a)[attr].Key == "*" {
			spec = (*a)[attr].TransformSpec
			break
		}
	}
	log.Debugf("global spec: spec=%s", spec)

	if spec == "" {
		return nil
	}

	for attr := range *a {
		(*a)[attr].TransformSpec = spec + "," + (*a)[attr].TransformSpec
	}

	return nil
}

// String returns the list in --attrs form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}

	resultStr := strings.Join(result, ",")
	log.Debugf("string built: result=%s", resultStr)
	return resultStr
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
