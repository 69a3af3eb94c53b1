package engine

import (
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
)

// IndicatorTable holds the wide indicator file (one row per country and
// indicator, one float64 column per year) as a single Arrow record.
type IndicatorTable struct {
	rec        arrow.Record
	indicators *array.String
	years      map[string]*array.Float64

	// Year column labels in file order.
	YearLabels []string

	// Dictionary Encoded Country Names (row -> ID -> name)
	CountryIDs  []int32
	CountryDict []string
	countryIDs  map[string]int32
}

func (t *IndicatorTable) Len() int {
	return len(t.CountryIDs)
}

func (t *IndicatorTable) Country(row int) string {
	return t.CountryDict[t.CountryIDs[row]]
}

func (t *IndicatorTable) Indicator(row int) string {
	return t.indicators.Value(row)
}

func (t *IndicatorTable) HasYear(year string) bool {
	_, ok := t.years[year]
	return ok
}

// Value returns the cell for row and year; ok is false for null cells and
// unknown year labels.
func (t *IndicatorTable) Value(row int, year string) (float64, bool) {
	col, ok := t.years[year]
	if !ok || col.IsNull(row) {
		return 0, false
	}
	return col.Value(row), true
}

// Release frees the Arrow buffers. The table must not be used afterwards.
func (t *IndicatorTable) Release() {
	if t.rec != nil {
		t.rec.Release()
		t.rec = nil
	}
}

// View is a read-only row subset of an IndicatorTable. No data is copied.
type View struct {
	table *IndicatorTable
	rows  []int
}

func (v *View) Len() int {
	return len(v.rows)
}

func (v *View) Table() *IndicatorTable {
	return v.table
}

// Countries returns the country of each row in view order.
func (v *View) Countries() []string {
	out := make([]string, len(v.rows))
	for i, r := range v.rows {
		out[i] = v.table.Country(r)
	}
	return out
}

// InequalityTable holds the long-format poverty file: one row per country
// and year, with Indicator naming the inequality column that was loaded.
type InequalityTable struct {
	rec       arrow.Record
	years     *array.Int64
	values    *array.Float64
	Indicator string

	CountryIDs  []int32
	CountryDict []string
	countryIDs  map[string]int32
}

func (t *InequalityTable) Len() int {
	return len(t.CountryIDs)
}

func (t *InequalityTable) Country(row int) string {
	return t.CountryDict[t.CountryIDs[row]]
}

func (t *InequalityTable) Year(row int) (int64, bool) {
	if t.years.IsNull(row) {
		return 0, false
	}
	return t.years.Value(row), true
}

func (t *InequalityTable) Value(row int) (float64, bool) {
	if t.values.IsNull(row) {
		return 0, false
	}
	return t.values.Value(row), true
}

func (t *InequalityTable) Release() {
	if t.rec != nil {
		t.rec.Release()
		t.rec = nil
	}
}

// InequalityView is a row subset of an InequalityTable.
type InequalityView struct {
	table *InequalityTable
	rows  []int
}

func (v *InequalityView) Len() int {
	return len(v.rows)
}

func (v *InequalityView) Indicator() string {
	return v.table.Indicator
}

// Dataset bundles every table the dashboard reads. It is built once at
// startup and shared read-only between requests.
type Dataset struct {
	Indicators *IndicatorTable
	Population *View

	// Nil when no inequality file was loaded.
	Inequality *InequalityTable
	Gini       *InequalityView
}

func (d *Dataset) Release() {
	if d.Indicators != nil {
		d.Indicators.Release()
	}
	if d.Inequality != nil {
		d.Inequality.Release()
	}
}

// encodeDictionary assigns IDs to distinct strings in first-seen order.
func encodeDictionary(col *array.String) ([]int32, []string, map[string]int32) {
	ids := make([]int32, col.Len())
	dict := make([]string, 0, 256)
	index := make(map[string]int32, 256)

	for i := 0; i < col.Len(); i++ {
		s := ""
		if col.IsValid(i) {
			s = col.Value(i)
		}
		id, ok := index[s]
		if !ok {
			id = int32(len(dict))
			str := strings.Clone(s) // detach from the Arrow buffer
			dict = append(dict, str)
			index[str] = id
		}
		ids[i] = id
	}
	return ids, dict, index
}
