// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag is a discovered json struct tag, printed by --schema.
type schemaTag struct {
	Name     string
	Optional bool
}

// NewTag parses a json struct tag value. h, when set, prefixes the name with
// its holder to build dotted attribute paths. "-" and empty names yield the
// zero tag.
func NewTag(h string, s string) schemaTag {
	parts := strings.Split(s, ",")
	if parts[0] == "" || parts[0] == "-" {
		return schemaTag{}
	}

	tag := schemaTag{Name: parts[0]}
	if h != "" {
		tag.Name = h + "." + tag.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.Optional = true
		}
	}
	return tag
}

// print renders the tag into its display form.
func (t schemaTag) print() string {
	if t.Optional {
		return t.Name + " (optional)"
	}
	return t.Name
}

// maxSchemaDepth limits how far nested structs are walked.
const maxSchemaDepth = 1

// DumpSchema writes the sorted attribute names of typ, the keys --attrs,
// --filter and --sort accept, to w. If w is nil, os.Stdout is used.
func DumpSchema(prefix string, typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, "Attributes available to --attrs, --filter and --sort.")
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker(prefix, typ, 0)
	if len(tags) == 0 {
		log.Debugf("No tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, tag.print())
	}
}

// dumpSchemaWalker recursively walks a struct type collecting json tags.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok || !field.IsExported() {
			continue
		}

		tag := NewTag(holder, tagValue)
		if tag.Name == "" {
			continue
		}
		tags = append(tags, tag)

		if depth >= maxSchemaDepth {
			continue
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			tags = append(tags, dumpSchemaWalker(tag.Name, ft, depth+1)...)
		}
	}

	return tags
}
