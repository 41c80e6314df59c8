package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-lookup/internal/view"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TerminalPresenter writes weather and suggestions to out and errors and
// progress to errOut.
type TerminalPresenter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	format string
}

func NewTerminalPresenter(out, errOut io.Writer) *TerminalPresenter {
	return &TerminalPresenter{
		out:    out,
		errOut: errOut,
		format: FormatText,
	}
}

// SetFormat selects text, json or yaml output.
func (p *TerminalPresenter) SetFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.format = format
	return nil
}

func (p *TerminalPresenter) Render(snapshot weather.WeatherSnapshot, unit weather.Unit) {
	d := view.Format(snapshot, unit)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format != FormatText {
		p.encode(d)
		return
	}

	fmt.Fprintf(p.out, "LOCATION\t %s\n", d.Location)
	fmt.Fprintf(p.out, "TIME\t\t %s, %s\n", d.LocalTime, d.LocalDate)
	fmt.Fprintf(p.out, "CONDITION\t %s (%s)\n", d.Condition, d.Icon)
	fmt.Fprintf(p.out, "TEMP\t\t %d%s (feels like %d%s)\n", d.Temperature, d.Unit, d.FeelsLike, d.Unit)
	fmt.Fprintf(p.out, "HUMIDITY\t %s\n", d.Humidity)
	fmt.Fprintf(p.out, "WIND\t\t %s\n", d.Wind)
	fmt.Fprintf(p.out, "PRESSURE\t %s\n", d.Pressure)
	fmt.Fprintf(p.out, "SUN\t\t %s - %s\n", d.Sunrise, d.Sunset)
	if d.Background != "" {
		fmt.Fprintf(p.out, "THEME\t\t %s\n", d.Background)
	}
	if d.Sound != "" {
		fmt.Fprintf(p.out, "SOUND\t\t %s\n", d.Sound)
	}
}

func (p *TerminalPresenter) RenderSuggestions(places []weather.Place) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format != FormatText {
		p.encode(places)
		return
	}

	if len(places) == 0 {
		fmt.Fprintln(p.out, "no suggestions")
		return
	}
	for _, place := range places {
		fmt.Fprintln(p.out, suggestionLabel(place))
	}
}

// suggestionLabel reads "Name, Region, Country", skipping a missing region.
func suggestionLabel(p weather.Place) string {
	label := p.Name
	if p.Region != "" {
		label += ", " + p.Region
	}
	if p.Country != "" && p.Country != p.Region {
		label += ", " + p.Country
	}
	return label
}

func (p *TerminalPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.errOut, "error: %s\n", message)
}

func (p *TerminalPresenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loading && p.format == FormatText {
		fmt.Fprintln(p.errOut, "fetching weather...")
	}
}

// encode must be called with p.mu held.
func (p *TerminalPresenter) encode(v interface{}) {
	var (
		data []byte
		err  error
	)
	if p.format == FormatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		fmt.Fprintf(p.errOut, "error: encode output: %v\n", err)
		return
	}
	p.out.Write(data)
}
