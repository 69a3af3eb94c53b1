package engine

import (
	"sort"

	"povdash/internal/models"
)

// SumYear adds the year column over every row whose country equals
// country exactly. Null cells count as zero; an unknown country or year
// yields 0.
func (t *IndicatorTable) SumYear(country, year string) float64 {
	id, ok := t.countryIDs[country]
	if !ok || !t.HasYear(year) {
		return 0
	}

	var total float64
	for row, cid := range t.CountryIDs {
		if cid != id {
			continue
		}
		if v, ok := t.Value(row, year); ok {
			total += v
		}
	}
	return total
}

// Countries returns the distinct country names in file order.
func (t *IndicatorTable) Countries() []string {
	out := make([]string, 0, len(t.CountryDict))
	for _, c := range t.CountryDict {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Top returns the n largest non-null values of the year column, highest
// first. Ties keep view order.
func (v *View) Top(year string, n int) []models.RankItem {
	items := make([]models.RankItem, 0, len(v.rows))
	for _, row := range v.rows {
		val, ok := v.table.Value(row, year)
		if !ok {
			continue
		}
		items = append(items, models.RankItem{Name: v.table.Country(row), Value: val})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// ByYear returns every country's index for year, lowest first.
func (v *InequalityView) ByYear(year int64) []models.RankItem {
	items := make([]models.RankItem, 0, 64)
	for _, row := range v.rows {
		y, ok := v.table.Year(row)
		if !ok || y != year {
			continue
		}
		val, ok := v.table.Value(row)
		if !ok {
			continue
		}
		items = append(items, models.RankItem{Name: v.table.Country(row), Value: val})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })
	return items
}

// ByCountry returns the index series of one country ordered by year.
func (v *InequalityView) ByCountry(country string) []models.YearValue {
	id, ok := v.table.countryIDs[country]
	if !ok {
		return []models.YearValue{}
	}

	points := make([]models.YearValue, 0, 32)
	for _, row := range v.rows {
		if v.table.CountryIDs[row] != id {
			continue
		}
		y, ok := v.table.Year(row)
		if !ok {
			continue
		}
		val, ok := v.table.Value(row)
		if !ok {
			continue
		}
		points = append(points, models.YearValue{Year: y, Value: val})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// Years returns the distinct years present in the view, ascending.
func (v *InequalityView) Years() []int64 {
	seen := make(map[int64]bool)
	years := make([]int64, 0, 64)
	for _, row := range v.rows {
		y, ok := v.table.Year(row)
		if !ok || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years
}

// Countries returns the distinct countries present in the view, sorted.
func (v *InequalityView) Countries() []string {
	seen := make(map[int32]bool)
	names := make([]string, 0, 256)
	for _, row := range v.rows {
		id := v.table.CountryIDs[row]
		if seen[id] {
			continue
		}
		seen[id] = true
		if name := v.table.CountryDict[id]; name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
