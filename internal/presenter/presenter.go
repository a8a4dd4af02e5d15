package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"NextVWAP/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// orange caption under the chart
	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1F2937")).
			Background(lipgloss.Color("#FFD39B")).
			Padding(0, 1).
			MarginTop(1)

	// lavender summary box to the right of the chart
	summaryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#B4A7D6")).
			Foreground(lipgloss.Color("#E6E6FA")).
			Padding(0, 1).
			MarginLeft(2)

	targetStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#3B82F6"))
)

// Presenter renders a forecast for the terminal.
type Presenter struct {
	Width  int
	Height int
}

// New creates a Presenter drawing charts of the given size in characters.
func New(width, height int) *Presenter {
	return &Presenter{Width: width, Height: height}
}

// Show writes the trajectory chart annotated with the close caption and the
// summary box.
func (p *Presenter) Show(w io.Writer, f *model.Forecast) error {
	chart := lipgloss.JoinVertical(lipgloss.Left,
		axisStyle.Render("VWAP change"),
		RenderChart(f.Run, p.Width, p.Height),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, chart, summaryStyle.Render(FormatSummary(f.Summary)))

	parts := []string{titleStyle.Render(FormatTitle(f)), body, captionStyle.Render(FormatCloseCaption(f))}
	if target := FormatTarget(f); target != "" {
		parts = append(parts, targetStyle.Render(target))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Center, parts...))
	return err
}

type jsonForecast struct {
	RunID         string        `json:"run_id"`
	Ticker        string        `json:"ticker"`
	Provider      string        `json:"provider"`
	Simulations   int           `json:"simulations"`
	Days          int           `json:"days"`
	ChangeMean    float64       `json:"change_mean"`
	ChangeStdDev  float64       `json:"change_std_dev"`
	LastSession   string        `json:"last_session"`
	LastVWAP      float64       `json:"last_vwap"`
	TargetSession *time.Time    `json:"target_session,omitempty"`
	Summary       model.Summary `json:"summary"`
	AboveMean     float64       `json:"above_mean_pct"`
	BelowMean     float64       `json:"below_mean_pct"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// ShowJSON writes the forecast summary as indented JSON. Individual
// trial outcomes are omitted.
func (p *Presenter) ShowJSON(w io.Writer, f *model.Forecast) error {
	out := jsonForecast{
		RunID:        f.RunID,
		Ticker:       f.Ticker,
		Provider:     f.Provider,
		Simulations:  f.Simulations,
		Days:         len(f.Records),
		ChangeMean:   f.Stats.Mean,
		ChangeStdDev: f.Stats.StdDev,
		LastSession:  f.LastSession.Format("2006-01-02"),
		LastVWAP:     f.LastVWAP,
		Summary:      f.Summary,
		AboveMean:    f.Summary.AboveMean(),
		BelowMean:    f.Summary.BelowMean(),
		GeneratedAt:  f.GeneratedAt,
	}
	if !f.TargetSession.IsZero() {
		t := f.TargetSession
		out.TargetSession = &t
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal forecast: %w", err)
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}
