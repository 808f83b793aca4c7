package console

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	indexColumn  = "(index)"
	valuesColumn = "Values"
	separator    = " | "
	minCellWidth = 3
)

type tableRow struct {
	index    string
	cells    map[string]string
	value    string
	hasValue bool
}

type table struct {
	columns   []string
	seen      map[string]bool
	hasValues bool
	rows      []tableRow
}

// buildTable flattens slices, arrays, maps and structs into rows. It reports
// false for data with no tabular form.
func buildTable(data any) (*table, bool) {
	v := indirect(reflect.ValueOf(data))
	if !v.IsValid() {
		return nil, false
	}

	t := &table{seen: make(map[string]bool)}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		for i := 0; i < v.Len(); i++ {
			t.addRow(strconv.Itoa(i), v.Index(i))
		}
	case reflect.Map:
		for _, k := range sortedKeys(v) {
			t.addRow(fmt.Sprint(k.Interface()), v.MapIndex(k))
		}
	case reflect.Struct:
		eachField(v, func(name string, field reflect.Value) {
			t.addRow(name, field)
		})
	default:
		return nil, false
	}
	return t, true
}

func (t *table) addRow(index string, v reflect.Value) {
	row := tableRow{index: index, cells: make(map[string]string)}
	v = indirect(v)

	switch {
	case !v.IsValid():
		row.value = "null"
		row.hasValue = true
	case v.Kind() == reflect.Map:
		for _, k := range sortedKeys(v) {
			name := fmt.Sprint(k.Interface())
			t.addColumn(name)
			row.cells[name] = formatCell(v.MapIndex(k))
		}
	case v.Kind() == reflect.Struct:
		eachField(v, func(name string, field reflect.Value) {
			t.addColumn(name)
			row.cells[name] = formatCell(field)
		})
	default:
		row.value = formatCell(v)
		row.hasValue = true
	}

	if row.hasValue {
		t.hasValues = true
	}
	t.rows = append(t.rows, row)
}

func (t *table) addColumn(name string) {
	if t.seen[name] {
		return
	}
	t.seen[name] = true
	t.columns = append(t.columns, name)
}

func (t *table) header() []string {
	header := append([]string{indexColumn}, t.columns...)
	if t.hasValues {
		header = append(header, valuesColumn)
	}
	return header
}

func (t *table) cells(row tableRow) []string {
	out := make([]string, 0, len(t.columns)+2)
	out = append(out, row.index)
	for _, col := range t.columns {
		out = append(out, row.cells[col])
	}
	if t.hasValues {
		if row.hasValue {
			out = append(out, row.value)
		} else {
			out = append(out, "")
		}
	}
	return out
}

// render writes the grid to b. A positive maxWidth limits the total line
// width by truncating columns evenly.
func (t *table) render(b *strings.Builder, maxWidth int) {
	header := t.header()
	lines := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		lines = append(lines, t.cells(row))
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}
	for _, line := range lines {
		for i, cell := range line {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	fitWidths(widths, maxWidth)

	writeLine(b, header, widths)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(dashes, "-+-"))
	b.WriteByte('\n')
	for _, line := range lines {
		writeLine(b, line, widths)
	}
}

// fitWidths shrinks the widest columns until the rendered line fits in limit.
func fitWidths(widths []int, limit int) {
	if limit <= 0 || len(widths) == 0 {
		return
	}
	budget := limit - len(separator)*(len(widths)-1)
	for total(widths) > budget {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minCellWidth {
			return
		}
		widths[widest]--
	}
}

func total(widths []int) int {
	sum := 0
	for _, w := range widths {
		sum += w
	}
	return sum
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		s := runewidth.Truncate(cell, widths[i], "…")
		if i < len(cells)-1 {
			s = runewidth.FillRight(s, widths[i])
			b.WriteString(s)
			b.WriteString(separator)
			continue
		}
		b.WriteString(s)
	}
	b.WriteByte('\n')
}

func formatCell(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return "null"
	}
	return fmt.Sprint(v.Interface())
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

// eachField visits exported fields in declaration order, honouring json tag
// names and skipping fields tagged "-".
func eachField(v reflect.Value, fn func(name string, field reflect.Value)) {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fn(name, v.Field(i))
	}
}
