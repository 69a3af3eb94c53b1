package dashboard

import (
	"fmt"

	"povdash/internal/apperr"
	"povdash/internal/engine"
	"povdash/internal/layout"
	"povdash/internal/models"
)

// Inputs holds the current value of each input control of a callback. A
// missing key and an empty string both mean "no selection".
type Inputs map[string]string

func (in Inputs) Value(id string) string {
	return in[id]
}

// Outputs maps output component IDs to their new values. Outputs that are
// left unchanged are absent.
type Outputs map[string]interface{}

// Callback is a reactive unit: a pure function from the values of Inputs
// to replacements for some of Outputs.
type Callback struct {
	ID      string
	Inputs  []string
	Outputs []string
	Run     func(Inputs) Outputs
}

func (cb Callback) Spec() models.CallbackSpec {
	return models.CallbackSpec{ID: cb.ID, Inputs: cb.Inputs, Outputs: cb.Outputs}
}

// Panel is an optional part of the page with the callbacks that drive it.
type Panel interface {
	Components() []*layout.Component
	Callbacks() []Callback
}

// App is an assembled dashboard: a fixed layout plus its callbacks.
type App struct {
	Title     string
	Root      *layout.Component
	callbacks []Callback
	byID      map[string]Callback
}

// Builder assembles an App from panels.
type Builder struct {
	title  string
	panels []Panel
}

func NewBuilder(title string) *Builder {
	return &Builder{title: title}
}

func (b *Builder) Add(panels ...Panel) *Builder {
	b.panels = append(b.panels, panels...)
	return b
}

// Build wires the panels together. Callback IDs must be unique, every
// input and output must name a component of the layout, and no output may
// be written by two callbacks.
func (b *Builder) Build() (*App, error) {
	var children []*layout.Component
	for _, p := range b.panels {
		children = append(children, p.Components()...)
	}
	root := layout.Container(children...)
	ids := layout.IDs(root)

	app := &App{
		Title: b.title,
		Root:  root,
		byID:  make(map[string]Callback),
	}
	owners := make(map[string]string)
	for _, p := range b.panels {
		for _, cb := range p.Callbacks() {
			if _, dup := app.byID[cb.ID]; dup {
				return nil, apperr.ConfigInvalid(fmt.Sprintf("duplicate callback %q", cb.ID))
			}
			for _, id := range cb.Inputs {
				if _, ok := ids[id]; !ok {
					return nil, apperr.ConfigInvalid(fmt.Sprintf("callback %q: unknown input %q", cb.ID, id))
				}
			}
			for _, id := range cb.Outputs {
				if _, ok := ids[id]; !ok {
					return nil, apperr.ConfigInvalid(fmt.Sprintf("callback %q: unknown output %q", cb.ID, id))
				}
				if owner, taken := owners[id]; taken {
					return nil, apperr.ConfigInvalid(fmt.Sprintf("output %q is written by %q and %q", id, owner, cb.ID))
				}
				owners[id] = cb.ID
			}
			app.byID[cb.ID] = cb
			app.callbacks = append(app.callbacks, cb)
		}
	}
	return app, nil
}

// Specs describes every callback for the browser, in registration order.
func (a *App) Specs() []models.CallbackSpec {
	out := make([]models.CallbackSpec, len(a.callbacks))
	for i, cb := range a.callbacks {
		out[i] = cb.Spec()
	}
	return out
}

func (a *App) Page() layout.Page {
	return layout.Page{Title: a.Title, Root: a.Root, Callbacks: a.Specs()}
}

// Dispatch runs callback id. An empty result means nothing is updated.
func (a *App) Dispatch(id string, in Inputs) (Outputs, error) {
	cb, ok := a.byID[id]
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("callback %q", id))
	}
	out := cb.Run(in)
	if out == nil {
		out = Outputs{}
	}
	return out, nil
}

// setFigure adds u to out when it carries a replacement.
func setFigure(out Outputs, id string, u models.Update[models.Figure]) {
	if fig, ok := u.Get(); ok {
		out[id] = fig
	}
}

// Preset names one of the historical page variants.
type Preset string

const (
	PresetBasic    Preset = "basic"
	PresetCombined Preset = "combined"
	PresetFull     Preset = "full"
)

func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetBasic, PresetCombined, PresetFull:
		return p, nil
	}
	return "", apperr.ConfigInvalid(fmt.Sprintf("unknown preset %q (want basic, combined or full)", s))
}

// NeedsInequality reports whether the preset shows the inequality panel.
func (p Preset) NeedsInequality() bool {
	return p == PresetCombined || p == PresetFull
}

const Title = "Poverty And Equity Database"

// NewApp builds the page for preset from ds.
func NewApp(ds *engine.Dataset, preset Preset) (*App, error) {
	b := NewBuilder(Title).Add(
		HeaderPanel{},
		SummaryPanel{Table: ds.Indicators},
		PopulationPanel{Population: ds.Population},
	)
	if preset.NeedsInequality() {
		if ds.Gini == nil {
			return nil, apperr.ConfigInvalid(fmt.Sprintf("preset %q needs the inequality file", preset))
		}
		b.Add(InequalityPanel{Gini: ds.Gini, Combined: preset == PresetCombined})
	}
	b.Add(InfoPanel{})
	return b.Build()
}
