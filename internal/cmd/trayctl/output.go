package trayctl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dicetrayv1 "github.com/louisbranch/dicetray/api/gen/go/dicetray/v1"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// preset is a tray settings file for configure -file.
type preset struct {
	UnitCount    *int `yaml:"unit_count"`
	DefaultValue *int `yaml:"default_value"`
	Sides        *int `yaml:"sides"`
}

func loadPreset(path string) (preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return preset{}, fmt.Errorf("read preset: %w", err)
	}
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

func (p preset) request() *dicetrayv1.ConfigureRequest {
	return &dicetrayv1.ConfigureRequest{
		UnitCount:    optionalInt32(p.UnitCount),
		DefaultValue: optionalInt32(p.DefaultValue),
		Sides:        optionalInt32(p.Sides),
	}
}

func optionalInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func ints(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

type stateView struct {
	UnitCount    int   `json:"unit_count"    yaml:"unit_count"`
	DefaultValue int   `json:"default_value" yaml:"default_value"`
	Sides        int   `json:"sides"         yaml:"sides"`
	Live         int   `json:"live"          yaml:"live"`
	Outstanding  int   `json:"outstanding"   yaml:"outstanding"`
	Total        int   `json:"total"         yaml:"total"`
	Values       []int `json:"values"        yaml:"values,flow"`
}

type outcomeView struct {
	RollID  string `json:"roll_id" yaml:"roll_id"`
	Total   int    `json:"total"   yaml:"total"`
	Values  []int  `json:"values"  yaml:"values,flow"`
	Changed bool   `json:"changed" yaml:"changed"`
}

type resultView struct {
	Total  int   `json:"total"  yaml:"total"`
	Values []int `json:"values" yaml:"values,flow"`
}

type field struct {
	key   string
	value string
}

// writer renders command results in the selected format.
type writer struct {
	out    io.Writer
	format string
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
}

func newWriter(out io.Writer, format string, color bool) writer {
	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return writer{
		out:    out,
		format: format,
		label:  renderer.NewStyle().Foreground(lipgloss.Color("243")),
		value:  renderer.NewStyle().Bold(true),
		accent: renderer.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
	}
}

func (w writer) state(state *dicetrayv1.TrayState) error {
	view := stateView{
		UnitCount:    int(state.GetSettings().GetUnitCount()),
		DefaultValue: int(state.GetSettings().GetDefaultValue()),
		Sides:        int(state.GetSettings().GetSides()),
		Live:         int(state.GetLive()),
		Outstanding:  int(state.GetOutstanding()),
		Total:        int(state.GetResult().GetTotal()),
		Values:       ints(state.GetResult().GetValues()),
	}
	return w.emit(view, []field{
		{"units", strconv.Itoa(view.UnitCount)},
		{"default", strconv.Itoa(view.DefaultValue)},
		{"sides", strconv.Itoa(view.Sides)},
		{"live", strconv.Itoa(view.Live)},
		{"outstanding", strconv.Itoa(view.Outstanding)},
		{"total", strconv.Itoa(view.Total)},
		{"values", fmt.Sprint(view.Values)},
	})
}

func (w writer) outcome(resp *dicetrayv1.RollResponse) error {
	view := outcomeView{
		RollID:  resp.GetRollId(),
		Total:   int(resp.GetResult().GetTotal()),
		Values:  ints(resp.GetResult().GetValues()),
		Changed: resp.GetChanged(),
	}
	return w.emit(view, []field{
		{"roll", view.RollID},
		{"total", strconv.Itoa(view.Total)},
		{"values", fmt.Sprint(view.Values)},
		{"changed", strconv.FormatBool(view.Changed)},
	})
}

func (w writer) result(result *dicetrayv1.RollResult) error {
	view := resultView{Total: int(result.GetTotal()), Values: ints(result.GetValues())}
	return w.emit(view, []field{
		{"total", strconv.Itoa(view.Total)},
		{"values", fmt.Sprint(view.Values)},
	})
}

func (w writer) emit(view any, fields []field) error {
	switch w.format {
	case outputJSON:
		return json.NewEncoder(w.out).Encode(view)
	case outputYAML:
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = fmt.Fprintf(w.out, "---\n%s", data)
		return err
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		style := w.value
		if f.key == "total" {
			style = w.accent
		}
		parts[i] = w.label.Render(f.key+"=") + style.Render(f.value)
	}
	_, err := fmt.Fprintln(w.out, strings.Join(parts, " "))
	return err
}
