package engine

import (
	"testing"
)

func TestSumYear(t *testing.T) {
	ds := loadFixture(t)
	tbl := ds.Indicators

	tests := []struct {
		country string
		year    string
		want    float64
	}{
		// Every indicator row of the country is summed.
		{"World", "2010", 1003.5},
		{"Chad", "2010", 2000},
		{"Mali", "2010", 1512.5},
		{"Chad", "2019", 0},
		{"chad", "2010", 0},
		{"Atlantis", "2010", 0},
		{"Chad", "1999", 0},
	}
	for _, tt := range tests {
		if got := tbl.SumYear(tt.country, tt.year); got != tt.want {
			t.Errorf("SumYear(%q, %q): expected %v, got %v", tt.country, tt.year, tt.want, got)
		}
	}
}

func TestTop(t *testing.T) {
	ds := loadFixture(t)

	top := ds.Population.Top("2010", 20)
	if len(top) != 3 {
		t.Fatalf("Expected 3 countries, got %d", len(top))
	}
	// Check Sort Order & Values
	if top[0].Name != "Chad" || top[0].Value != 2000 {
		t.Errorf("Expected Chad first, got %+v", top[0])
	}
	if top[1].Name != "Mali" || top[2].Name != "Korea, Rep." {
		t.Errorf("Unexpected order: %+v", top)
	}
	for _, item := range top {
		if item.Name == "World" || item.Name == "Sub-Saharan Africa" {
			t.Errorf("Aggregate row %q leaked into the ranking", item.Name)
		}
	}

	if got := ds.Population.Top("2010", 2); len(got) != 2 || got[1].Name != "Mali" {
		t.Errorf("Top 2: got %+v", got)
	}
	if got := ds.Population.Top("2019", 20); len(got) != 1 || got[0].Name != "Korea, Rep." {
		t.Errorf("Null cells should be dropped, got %+v", got)
	}
	if got := ds.Population.Top("1999", 20); len(got) != 0 {
		t.Errorf("Unknown year should be empty, got %+v", got)
	}
}

func TestInequalityByYear(t *testing.T) {
	ds := loadFixture(t)

	got := ds.Gini.ByYear(2010)
	if len(got) != 2 {
		t.Fatalf("Expected 2 countries, got %+v", got)
	}
	if got[0].Name != "Mali" || got[0].Value != 33.0 || got[1].Name != "Brazil" {
		t.Errorf("Expected ascending Mali, Brazil; got %+v", got)
	}
	if len(ds.Gini.ByYear(1990)) != 0 {
		t.Error("Unknown year should be empty")
	}
}

func TestInequalityByCountry(t *testing.T) {
	ds := loadFixture(t)

	got := ds.Gini.ByCountry("Chad")
	if len(got) != 2 {
		t.Fatalf("Expected 2 points, got %+v", got)
	}
	if got[0].Year != 2003 || got[0].Value != 39.8 || got[1].Year != 2011 {
		t.Errorf("Expected 2003, 2011; got %+v", got)
	}
	if len(ds.Gini.ByCountry("Atlantis")) != 0 {
		t.Error("Unknown country should be empty")
	}
}

func TestInequalityDistinctValues(t *testing.T) {
	ds := loadFixture(t)

	years := ds.Gini.Years()
	wantYears := []int64{2003, 2010, 2011, 2012}
	if len(years) != len(wantYears) {
		t.Fatalf("Years: expected %v, got %v", wantYears, years)
	}
	for i := range wantYears {
		if years[i] != wantYears[i] {
			t.Errorf("Years[%d]: expected %d, got %d", i, wantYears[i], years[i])
		}
	}

	countries := ds.Gini.Countries()
	wantCountries := []string{"Albania", "Brazil", "Chad", "Mali"}
	if len(countries) != len(wantCountries) {
		t.Fatalf("Countries: expected %v, got %v", wantCountries, countries)
	}
	for i := range wantCountries {
		if countries[i] != wantCountries[i] {
			t.Errorf("Countries[%d]: expected %q, got %q", i, wantCountries[i], countries[i])
		}
	}
}
