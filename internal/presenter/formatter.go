package presenter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"NextVWAP/internal/model"
)

// FormatTitle returns the chart title.
func FormatTitle(f *model.Forecast) string {
	return fmt.Sprintf("Simulated %s VWAP with %s simulations", f.Ticker, humanize.Comma(int64(f.Simulations)))
}

// FormatCloseCaption names the last trading day and its closing VWAP,
// rounded to two decimals.
func FormatCloseCaption(f *model.Forecast) string {
	return fmt.Sprintf("%s close VWAP is %s",
		f.LastSession.Weekday(), decimal.NewFromFloat(f.LastVWAP).Round(2).String())
}

// FormatTarget names the session being forecast.
func FormatTarget(f *model.Forecast) string {
	if f.TargetSession.IsZero() {
		return ""
	}
	return fmt.Sprintf("Forecast for the %s close", f.TargetSession.Format("Monday, 02 Jan 2006 15:04 MST"))
}

// FormatSummary renders the band probabilities of the simulated outcomes.
func FormatSummary(s model.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("1 standard deviation is %.2f\n", s.StdDev))
	b.WriteString("\n")
	b.WriteString("Probabilities of tomorrow VWAP in ranges:\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Above %.2f : %.2f%%\n", s.Upper, s.AboveUpper))
	b.WriteString(fmt.Sprintf("%.2f - %.2f : %.2f%%\n", s.Mean, s.Upper, s.MeanToUpper))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Expected (mean) VWAP is %.2f\n", s.Mean))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%.2f - %.2f : %.2f%%\n", s.Lower, s.Mean, s.LowerToMean))
	b.WriteString(fmt.Sprintf("below %.2f : %.2f%%\n", s.Lower, s.BelowLower))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Percentage above mean VWAP: %.2f%%\n", s.AboveMean()))
	b.WriteString(fmt.Sprintf("Percentage below mean VWAP: %.2f%%", s.BelowMean()))

	return b.String()
}
