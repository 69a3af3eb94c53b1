package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"povdash/internal/apperr"
	"povdash/internal/layout"
	"povdash/internal/models"
)

func callbackIDs(app *App) []string {
	var ids []string
	for _, s := range app.Specs() {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestNewAppPresets(t *testing.T) {
	ds := loadDataset(t, indicatorCSV, povertyCSV)

	tests := []struct {
		preset Preset
		want   []string
	}{
		{PresetBasic, []string{CallbackSummary, CallbackPopulation}},
		{PresetCombined, []string{CallbackSummary, CallbackPopulation, CallbackGiniCombined}},
		{PresetFull, []string{CallbackSummary, CallbackPopulation, CallbackGiniYear, CallbackGiniCountry}},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			app, err := NewApp(ds, tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, callbackIDs(app))
			assert.Equal(t, Title, app.Title)

			ids := layout.IDs(app.Root)
			assert.Contains(t, ids, IDCountry)
			assert.Contains(t, ids, IDPopulationChart)
			_, hasGini := ids[IDGiniYearChart]
			assert.Equal(t, tt.preset.NeedsInequality(), hasGini)
		})
	}
}

func TestNewAppNeedsInequalityData(t *testing.T) {
	ds := loadDataset(t, indicatorCSV, "")

	_, err := NewApp(ds, PresetFull)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConfigInvalid, apperr.GetCode(err))

	_, err = NewApp(ds, PresetBasic)
	assert.NoError(t, err)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("combined")
	require.NoError(t, err)
	assert.Equal(t, PresetCombined, p)

	_, err = ParsePreset("v4")
	assert.Equal(t, apperr.CodeConfigInvalid, apperr.GetCode(err))
}

func TestYearDropdownRange(t *testing.T) {
	ds := loadDataset(t, indicatorCSV, "")
	app, err := NewApp(ds, PresetBasic)
	require.NoError(t, err)

	var dropdown *layout.Component
	layout.Walk(app.Root, func(c *layout.Component) {
		if c.ID == IDYear {
			dropdown = c
		}
	})
	require.NotNil(t, dropdown)
	opts := dropdown.Props.Options
	require.Len(t, opts, 45)
	assert.Equal(t, "1974", opts[0].Value)
	assert.Equal(t, "2018", opts[44].Value)
	assert.Equal(t, "2010", dropdown.Props.Value)
}

type stubPanel struct {
	components []*layout.Component
	callbacks  []Callback
}

func (p stubPanel) Components() []*layout.Component { return p.components }
func (p stubPanel) Callbacks() []Callback            { return p.callbacks }

func TestBuildValidation(t *testing.T) {
	noop := func(Inputs) Outputs { return nil }
	comps := []*layout.Component{layout.Dropdown("in", nil, ""), layout.Graph("out")}

	tests := []struct {
		name      string
		callbacks []Callback
	}{
		{"unknown input", []Callback{{ID: "a", Inputs: []string{"missing"}, Outputs: []string{"out"}, Run: noop}}},
		{"unknown output", []Callback{{ID: "a", Inputs: []string{"in"}, Outputs: []string{"missing"}, Run: noop}}},
		{"duplicate id", []Callback{
			{ID: "a", Inputs: []string{"in"}, Outputs: []string{"out"}, Run: noop},
			{ID: "a", Inputs: []string{"in"}, Run: noop},
		}},
		{"shared output", []Callback{
			{ID: "a", Inputs: []string{"in"}, Outputs: []string{"out"}, Run: noop},
			{ID: "b", Inputs: []string{"in"}, Outputs: []string{"out"}, Run: noop},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder("t").Add(stubPanel{components: comps, callbacks: tt.callbacks}).Build()
			require.Error(t, err)
			assert.Equal(t, apperr.CodeConfigInvalid, apperr.GetCode(err))
		})
	}
}

func TestDispatch(t *testing.T) {
	ds := loadDataset(t, indicatorCSV, povertyCSV)
	app, err := NewApp(ds, PresetCombined)
	require.NoError(t, err)

	out, err := app.Dispatch(CallbackSummary, Inputs{IDCountry: "Chad"})
	require.NoError(t, err)
	assert.Equal(t, models.Text{Tag: "h3", Text: "The population of Chad in 2010 was 2,000"}, out[IDReport])

	out, err = app.Dispatch(CallbackGiniCombined, Inputs{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = app.Dispatch(CallbackGiniCombined, Inputs{IDGiniYear: "2010"})
	require.NoError(t, err)
	assert.Contains(t, out, IDGiniYearChart)
	assert.NotContains(t, out, IDGiniCountryChart)

	out, err = app.Dispatch(CallbackGiniCombined, Inputs{IDGiniCountry: "Chad"})
	require.NoError(t, err)
	assert.NotContains(t, out, IDGiniYearChart)
	assert.Contains(t, out, IDGiniCountryChart)

	out, err = app.Dispatch(CallbackGiniCombined, Inputs{IDGiniYear: "2010", IDGiniCountry: "Chad"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = app.Dispatch("nope", Inputs{})
	assert.Equal(t, apperr.CodeNotFound, apperr.GetCode(err))
}
