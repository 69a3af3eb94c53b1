package dashboard

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"povdash/internal/engine"
	"povdash/internal/models"
)

const (
	// SummaryYear is the column the country summary reads. It does not
	// follow the year dropdown.
	SummaryYear    = "2010"
	DefaultCountry = "World"
	DefaultYear    = "2010"
	TopCountries   = 20

	FirstYear = 1974
	LastYear  = 2018
)

var printer = message.NewPrinter(language.English)

// CountrySummary reports the 2010 total for country ("World" when no
// country is selected).
func CountrySummary(t *engine.IndicatorTable, country string) models.Text {
	if country == "" {
		country = DefaultCountry
	}
	total := t.SumYear(country, SummaryYear)
	return models.Text{
		Tag:  "h3",
		Text: printer.Sprintf("The population of %s in %s was %d", country, SummaryYear, int64(math.RoundToEven(total))),
	}
}

// PopulationChart ranks the countries of the population view for year.
func PopulationChart(pop *engine.View, year string) models.Figure {
	if year == "" {
		year = DefaultYear
	}
	top := pop.Top(year, TopCountries)

	tr := models.Trace{Type: "bar", Orientation: "v"}
	for _, item := range top {
		tr.Categories = append(tr.Categories, item.Name)
		tr.Values = append(tr.Values, item.Value)
	}
	return models.Figure{
		Data: []models.Trace{tr},
		Layout: models.Layout{
			Title:    models.Title{Text: "Top 20 countries by population = " + year},
			Template: "none",
		},
	}
}

// InequalityByYear charts every country's index for year, lowest first.
// No year means no update.
func InequalityByYear(gini *engine.InequalityView, year string) models.Update[models.Figure] {
	if year == "" {
		return models.NoUpdate[models.Figure]()
	}
	return models.Replace(inequalityYearFigure(gini, year))
}

// InequalityByCountry charts one country's index across years. No country
// means no update.
func InequalityByCountry(gini *engine.InequalityView, country string) models.Update[models.Figure] {
	if country == "" {
		return models.NoUpdate[models.Figure]()
	}
	return models.Replace(inequalityCountryFigure(gini, country))
}

// CombinedInequality drives both inequality charts from one callback. Each
// chart is replaced only when its own input is set.
func CombinedInequality(gini *engine.InequalityView, year, country string) (byYear, byCountry models.Update[models.Figure]) {
	if year == "" && country == "" {
		return models.NoUpdate[models.Figure](), models.NoUpdate[models.Figure]()
	}
	if year != "" {
		byYear = models.Replace(inequalityYearFigure(gini, year))
	}
	if country != "" {
		byCountry = models.Replace(inequalityCountryFigure(gini, country))
	}
	return byYear, byCountry
}

func inequalityYearFigure(gini *engine.InequalityView, year string) models.Figure {
	tr := models.Trace{Type: "bar", Orientation: "h"}
	if y, err := strconv.ParseInt(year, 10, 64); err == nil {
		for _, item := range gini.ByYear(y) {
			tr.Categories = append(tr.Categories, item.Name)
			tr.Values = append(tr.Values, item.Value)
		}
	}
	return models.Figure{
		Data: []models.Trace{tr},
		Layout: models.Layout{
			Title:  models.Title{Text: gini.Indicator() + " " + year},
			Height: 200 + 20*len(tr.Categories),
			XAxis:  &models.Axis{Title: models.Title{Text: gini.Indicator()}},
			YAxis:  &models.Axis{Title: models.Title{Text: engine.ColCountryName}},
		},
	}
}

func inequalityCountryFigure(gini *engine.InequalityView, country string) models.Figure {
	tr := models.Trace{Type: "bar", Orientation: "v"}
	for _, p := range gini.ByCountry(country) {
		tr.Categories = append(tr.Categories, strconv.FormatInt(p.Year, 10))
		tr.Values = append(tr.Values, p.Value)
	}
	return models.Figure{
		Data: []models.Trace{tr},
		Layout: models.Layout{
			Title: models.Title{Text: gini.Indicator() + " - " + country},
			XAxis: &models.Axis{Title: models.Title{Text: engine.ColYear}, Type: "category"},
			YAxis: &models.Axis{Title: models.Title{Text: gini.Indicator()}},
		},
	}
}
