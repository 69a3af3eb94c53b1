package dashboard

import (
	"strconv"

	"povdash/internal/engine"
	"povdash/internal/layout"
)

// Component IDs shared by the layout, the callbacks and the browser.
const (
	IDCountry          = "country"
	IDReport           = "report"
	IDYear             = "year_dropdown"
	IDPopulationChart  = "population_chart"
	IDGiniYear         = "gini_year_dropdown"
	IDGiniYearChart    = "gini_year_barchart"
	IDGiniCountry      = "gini_country_dropdown"
	IDGiniCountryChart = "gini_country_barchart"
)

const (
	CallbackSummary      = "country-summary"
	CallbackPopulation   = "population-by-year"
	CallbackGiniYear     = "gini-by-year"
	CallbackGiniCountry  = "gini-by-country"
	CallbackGiniCombined = "gini-combined"
)

type HeaderPanel struct{}

func (HeaderPanel) Components() []*layout.Component {
	return []*layout.Component{
		layout.Row(layout.Col(
			layout.H1(Title),
			layout.H2("The World Bank"),
		)),
		layout.Br(),
	}
}

func (HeaderPanel) Callbacks() []Callback { return nil }

// SummaryPanel shows the country dropdown and the population sentence.
type SummaryPanel struct {
	Table *engine.IndicatorTable
}

func (p SummaryPanel) Components() []*layout.Component {
	return []*layout.Component{
		layout.Row(layout.Col(
			layout.Dropdown(IDCountry, layout.Options(p.Table.Countries()), ""),
			layout.Br(),
			layout.Div(IDReport),
		)),
	}
}

func (p SummaryPanel) Callbacks() []Callback {
	return []Callback{{
		ID:      CallbackSummary,
		Inputs:  []string{IDCountry},
		Outputs: []string{IDReport},
		Run: func(in Inputs) Outputs {
			return Outputs{IDReport: CountrySummary(p.Table, in.Value(IDCountry))}
		},
	}}
}

// PopulationPanel ranks countries by population for the selected year.
type PopulationPanel struct {
	Population *engine.View
}

func (p PopulationPanel) Components() []*layout.Component {
	years := make([]string, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return []*layout.Component{
		layout.Row(layout.Col(
			layout.Dropdown(IDYear, layout.Options(years), DefaultYear),
			layout.Graph(IDPopulationChart),
		)),
		layout.Br(),
	}
}

func (p PopulationPanel) Callbacks() []Callback {
	return []Callback{{
		ID:      CallbackPopulation,
		Inputs:  []string{IDYear},
		Outputs: []string{IDPopulationChart},
		Run: func(in Inputs) Outputs {
			return Outputs{IDPopulationChart: PopulationChart(p.Population, in.Value(IDYear))}
		},
	}}
}

// InequalityPanel shows the index by year and by country. With Combined
// set both charts hang off one callback, otherwise each has its own.
type InequalityPanel struct {
	Gini     *engine.InequalityView
	Combined bool
}

func (p InequalityPanel) Components() []*layout.Component {
	years := p.Gini.Years()
	yearLabels := make([]string, len(years))
	for i, y := range years {
		yearLabels[i] = strconv.FormatInt(y, 10)
	}
	return []*layout.Component{
		layout.Row(layout.Col(
			layout.H2(p.Gini.Indicator()),
		)),
		layout.Row(
			layout.Col(
				layout.Dropdown(IDGiniYear, layout.Options(yearLabels), ""),
				layout.Br(),
				layout.Graph(IDGiniYearChart),
			),
			layout.Col(
				layout.Dropdown(IDGiniCountry, layout.Options(p.Gini.Countries()), ""),
				layout.Br(),
				layout.Graph(IDGiniCountryChart),
			),
		),
		layout.Br(),
	}
}

func (p InequalityPanel) Callbacks() []Callback {
	if p.Combined {
		return []Callback{{
			ID:      CallbackGiniCombined,
			Inputs:  []string{IDGiniYear, IDGiniCountry},
			Outputs: []string{IDGiniYearChart, IDGiniCountryChart},
			Run: func(in Inputs) Outputs {
				byYear, byCountry := CombinedInequality(p.Gini, in.Value(IDGiniYear), in.Value(IDGiniCountry))
				out := Outputs{}
				setFigure(out, IDGiniYearChart, byYear)
				setFigure(out, IDGiniCountryChart, byCountry)
				return out
			},
		}}
	}
	return []Callback{
		{
			ID:      CallbackGiniYear,
			Inputs:  []string{IDGiniYear},
			Outputs: []string{IDGiniYearChart},
			Run: func(in Inputs) Outputs {
				out := Outputs{}
				setFigure(out, IDGiniYearChart, InequalityByYear(p.Gini, in.Value(IDGiniYear)))
				return out
			},
		},
		{
			ID:      CallbackGiniCountry,
			Inputs:  []string{IDGiniCountry},
			Outputs: []string{IDGiniCountryChart},
			Run: func(in Inputs) Outputs {
				out := Outputs{}
				setFigure(out, IDGiniCountryChart, InequalityByCountry(p.Gini, in.Value(IDGiniCountry)))
				return out
			},
		},
	}
}

// InfoPanel holds the static Key Facts and Project Info tabs.
type InfoPanel struct{}

const (
	sourceURL = "https://datacatalog.worldbank.org/dataset/poverty-and-equity-database"
	repoURL   = "https://github.com/PacktPublishing/Interactive-Dashboards-and-Data-Apps-with-Plotly-and-Dash"
)

func (InfoPanel) Components() []*layout.Component {
	return []*layout.Component{
		layout.Row(layout.Col(
			layout.Tabs(
				layout.Tab("Key Facts", layout.Ul(
					layout.Br(),
					layout.Li("Number of Economies: 170"),
					layout.Li("Temporal Coverage: 1974 - 2019"),
					layout.Li("Update Frequency: Quarterly"),
					layout.Li("Last Updated: March 18, 2020"),
					layout.Li("Source: ", layout.A(sourceURL, sourceURL)),
				)),
				layout.Tab("Project Info", layout.Ul(
					layout.Br(),
					layout.Li("Book title: Interactive Dashboards and Data Apps with Plotly and Dash"),
					layout.Li("GitHub repo: ", layout.A(repoURL, repoURL)),
				)),
			),
		)),
	}
}

func (InfoPanel) Callbacks() []Callback { return nil }
