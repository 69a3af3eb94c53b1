package engine

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"os"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"golang.org/x/sync/errgroup"

	"povdash/internal/apperr"
	"povdash/internal/logging"
)

const (
	ColCountryName   = "Country Name"
	ColIndicatorName = "Indicator Name"
	ColYear          = "year"

	PopulationIndicator = "Population, total"
	DefaultGiniColumn   = "GINI index (World Bank estimate)"
)

// Regions lists the aggregate rows of the indicator file that are not
// countries. They are kept out of per-country rankings.
var Regions = []string{
	"East Asia & Pacific",
	"Europe & Central Asia",
	"Fragile and conflict affected situations",
	"High income",
	"IDA countries classified as fragile situations",
	"IDA total",
	"Latin America & Caribbean",
	"Low & middle income",
	"Low income",
	"Lower middle income",
	"Middle East & North Africa",
	"Middle income",
	"South Asia",
	"Sub-Saharan Africa",
	"Upper middle income",
	"World",
}

var logger = logging.New("engine")

// Sources names the input files. An empty InequalityPath skips the
// inequality file entirely.
type Sources struct {
	IndicatorPath  string
	InequalityPath string
	// Inequality column of the poverty file; DefaultGiniColumn when empty.
	InequalityColumn string
	Allocator        memory.Allocator
}

// Load reads every source concurrently and derives the subtables. Any
// failure is returned; nothing is partially usable.
func Load(ctx context.Context, src Sources) (*Dataset, error) {
	start := time.Now()
	mem := src.Allocator
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	column := src.InequalityColumn
	if column == "" {
		column = DefaultGiniColumn
	}

	var (
		indicators *IndicatorTable
		inequality *InequalityTable
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		indicators, err = LoadIndicators(ctx, src.IndicatorPath, mem)
		return err
	})
	if src.InequalityPath != "" {
		g.Go(func() error {
			var err error
			inequality, err = LoadInequality(ctx, src.InequalityPath, column, mem)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if indicators != nil {
			indicators.Release()
		}
		if inequality != nil {
			inequality.Release()
		}
		return nil, err
	}

	ds := &Dataset{
		Indicators: indicators,
		Population: PopulationView(indicators),
	}
	if inequality != nil {
		ds.Inequality = inequality
		ds.Gini = NonMissing(inequality)
	}

	logger.Infof("Load Complete. Indicator rows: %d, population rows: %d. Time: %v",
		indicators.Len(), ds.Population.Len(), time.Since(start))
	return ds, nil
}

// LoadIndicators reads the wide indicator CSV. Four-digit headers become
// nullable float64 columns; every other column is kept as text.
func LoadIndicators(ctx context.Context, path string, mem memory.Allocator) (*IndicatorTable, error) {
	header, rec, err := readRecord(ctx, path, mem, func(name string) arrow.DataType {
		if isYearLabel(name) {
			return arrow.PrimitiveTypes.Float64
		}
		return arrow.BinaryTypes.String
	})
	if err != nil {
		return nil, err
	}

	countryIdx, ok1 := columnIndex(header, ColCountryName)
	indicatorIdx, ok2 := columnIndex(header, ColIndicatorName)
	if !ok1 || !ok2 {
		rec.Release()
		return nil, apperr.DataLoad("%s: missing %q or %q column", path, ColCountryName, ColIndicatorName)
	}

	t := &IndicatorTable{
		rec:        rec,
		indicators: rec.Column(indicatorIdx).(*array.String),
		years:      make(map[string]*array.Float64),
	}
	for i, name := range header {
		if isYearLabel(name) {
			t.years[name] = rec.Column(i).(*array.Float64)
			t.YearLabels = append(t.YearLabels, name)
		}
	}
	t.CountryIDs, t.CountryDict, t.countryIDs = encodeDictionary(rec.Column(countryIdx).(*array.String))

	logger.Debugf("%s: %d rows, %d year columns", path, t.Len(), len(t.YearLabels))
	return t, nil
}

// LoadInequality reads the long-format poverty CSV keeping column as the
// inequality index.
func LoadInequality(ctx context.Context, path, column string, mem memory.Allocator) (*InequalityTable, error) {
	header, rec, err := readRecord(ctx, path, mem, func(name string) arrow.DataType {
		switch name {
		case ColYear:
			return arrow.PrimitiveTypes.Int64
		case column:
			return arrow.PrimitiveTypes.Float64
		}
		return arrow.BinaryTypes.String
	})
	if err != nil {
		return nil, err
	}

	countryIdx, ok1 := columnIndex(header, ColCountryName)
	yearIdx, ok2 := columnIndex(header, ColYear)
	valueIdx, ok3 := columnIndex(header, column)
	if !ok1 || !ok2 || !ok3 {
		rec.Release()
		return nil, apperr.DataLoad("%s: missing one of %q, %q, %q columns", path, ColCountryName, ColYear, column)
	}

	t := &InequalityTable{
		rec:       rec,
		years:     rec.Column(yearIdx).(*array.Int64),
		values:    rec.Column(valueIdx).(*array.Float64),
		Indicator: column,
	}
	t.CountryIDs, t.CountryDict, t.countryIDs = encodeDictionary(rec.Column(countryIdx).(*array.String))

	logger.Debugf("%s: %d rows", path, t.Len())
	return t, nil
}

// PopulationView keeps the "Population, total" rows of real countries.
func PopulationView(t *IndicatorTable) *View {
	excluded := make(map[string]bool, len(Regions))
	for _, r := range Regions {
		excluded[r] = true
	}

	rows := make([]int, 0, 256)
	for i := 0; i < t.Len(); i++ {
		if t.Indicator(i) != PopulationIndicator || excluded[t.Country(i)] {
			continue
		}
		rows = append(rows, i)
	}
	return &View{table: t, rows: rows}
}

// NonMissing keeps the rows whose inequality index is present.
func NonMissing(t *InequalityTable) *InequalityView {
	rows := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if t.values.IsValid(i) {
			rows = append(rows, i)
		}
	}
	return &InequalityView{table: t, rows: rows}
}

// readRecord loads a whole CSV file into one Arrow record. The schema is
// built from the header row with types chosen by classify.
func readRecord(ctx context.Context, path string, mem memory.Allocator, classify func(string) arrow.DataType) ([]string, arrow.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, apperr.WithCode(apperr.CodeDataLoad, err)
	}

	header, err := stdcsv.NewReader(bytes.NewReader(content)).Read()
	if err != nil {
		return nil, nil, apperr.Wrapf(apperr.WithCode(apperr.CodeDataLoad, err), "%s: read header", path)
	}
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		header[i] = name
		fields[i] = arrow.Field{Name: name, Type: classify(name), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	r := csv.NewReader(bytes.NewReader(content), schema,
		csv.WithAllocator(mem),
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, ""),
		csv.WithLazyQuotes(true),
	)
	defer r.Release()

	ok := r.Next()
	if err := r.Err(); err != nil {
		return nil, nil, apperr.Wrapf(apperr.WithCode(apperr.CodeDataLoad, err), "%s: parse", path)
	}
	if ok {
		rec := r.Record()
		rec.Retain()
		return header, rec, nil
	}

	// Header only.
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	return header, b.NewRecord(), nil
}

func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

func isYearLabel(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
