package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// tierColors maps measurement tiers to terminal colours.
var tierColors = map[domain.Tier]lipgloss.Color{
	domain.TierBest:    lipgloss.Color("#2E7D32"),
	domain.TierGood:    lipgloss.Color("#7CB342"),
	domain.TierMid:     lipgloss.Color("#FBC02D"),
	domain.TierLow:     lipgloss.Color("#FB8C00"),
	domain.TierBad:     lipgloss.Color("#E53935"),
	domain.TierUnknown: lipgloss.Color("#9E9E9E"),
}

// printer writes records to a command's output, coloured or plain.
type printer struct {
	cmd   *cobra.Command
	name  lipgloss.Style
	dim   lipgloss.Style
	star  lipgloss.Style
	tiers map[domain.Tier]lipgloss.Style
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStderr()
	r := lipgloss.NewRenderer(out)
	if useColor(out, currentSettings().Output.Color) {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	p := &printer{
		cmd:   cmd,
		name:  r.NewStyle().Bold(true),
		dim:   r.NewStyle().Faint(true),
		star:  r.NewStyle().Foreground(lipgloss.Color("#FFB300")),
		tiers: make(map[domain.Tier]lipgloss.Style, len(tierColors)),
	}
	for tier, color := range tierColors {
		p.tiers[tier] = r.NewStyle().Foreground(color)
	}
	return p
}

// useColor decides whether output to w is coloured. In auto mode only
// terminals are coloured, and NO_COLOR disables colour.
func useColor(w io.Writer, mode domain.ColorMode) bool {
	switch mode {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) records(records []domain.Record) {
	for i := range records {
		p.record(i+1, records[i])
	}
}

func (p *printer) record(n int, r domain.Record) {
	title := p.name.Render(r.Name)
	if r.ScientificName != "" {
		title += " " + p.dim.Render("("+r.ScientificName+")")
	}
	p.cmd.Printf("  [%d] %s  %s %.1f\n", n, title, p.star.Render(stars(r.Stars())), r.Rating)
	p.cmd.Printf("      O2: %s  CO2: %s\n", p.measurement(r.O2()), p.measurement(r.CO2()))
	p.cmd.Printf("      %s\n", r.Description)
	p.cmd.Println()
}

func (p *printer) measurement(m domain.Measurement) string {
	if m.Tier == domain.TierUnknown {
		return p.tiers[domain.TierUnknown].Render("-")
	}
	return p.tiers[m.Tier].Render(fmt.Sprintf("%s [%s]", m.Raw, m.Tier))
}

// stars renders a 0-5 star count as filled and empty stars.
func stars(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// recordJSON is the JSON form of a record.
type recordJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	O2Release      string  `json:"o2_release"`
	O2Tier         string  `json:"o2_tier"`
	CO2Absorption  string  `json:"co2_absorption"`
	CO2Tier        string  `json:"co2_tier"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
}

func toRecordJSON(records []domain.Record) []recordJSON {
	out := make([]recordJSON, len(records))
	for i, r := range records {
		out[i] = recordJSON{
			ID:             r.ID,
			Name:           r.Name,
			ScientificName: r.ScientificName,
			O2Release:      r.O2Release,
			O2Tier:         r.O2().Tier.String(),
			CO2Absorption:  r.CO2Absorption,
			CO2Tier:        r.CO2().Tier.String(),
			Description:    r.Description,
			Rating:         r.Rating,
		}
	}
	return out
}

func outputRecordsJSON(cmd *cobra.Command, records []domain.Record) error {
	data, err := json.MarshalIndent(toRecordJSON(records), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecords(cmd *cobra.Command, heading string, records []domain.Record, asJSON bool) error {
	if asJSON {
		return outputRecordsJSON(cmd, records)
	}
	if len(records) == 0 {
		cmd.Println("No plants found.")
		return nil
	}
	cmd.Printf("%s:\n\n", heading)
	newPrinter(cmd).records(records)
	return nil
}
