package report

import (
	"fmt"
	"strings"
)

// RenderMarkdown emits the full report as GitHub-style markdown.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# Equity Grant Working Sheet\n\n")
	fmt.Fprintf(&b, "Run %s, generated %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05"))

	writeParams(&b, r)

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if r.HasCommon {
		writeTable(&b, *r.Common)
		writePivot(&b, *r.CommonSensitivity)
	} else {
		b.WriteString("Common share views are hidden because no common shares are held.\n\n")
	}

	writeTable(&b, r.Vesting)
	writeTable(&b, r.Options)
	writePivot(&b, r.OptionSensitivity)

	if r.HasCommon {
		writeTable(&b, *r.Combined)
		writePivot(&b, *r.CombinedSensitivity)
	}

	if r.CombinedCAGR != nil {
		fmt.Fprintf(&b, "Combined value CAGR %d-%d: %.1f%%\n",
			r.CombinedCAGR.StartYear, r.CombinedCAGR.EndYear, r.CombinedCAGR.CAGR)
	}
	if r.CombinedYoY != nil {
		fmt.Fprintf(&b, "Combined value change %d over %d: %s (%.1f%%)\n",
			r.CombinedYoY.CurrentYear, r.CombinedYoY.PriorYear,
			Pounds(r.CombinedYoY.ChangeAbs), r.CombinedYoY.ChangePct)
	}

	return b.String()
}

func writeParams(b *strings.Builder, r *Report) {
	b.WriteString("## Input Parameters\n\n")
	fmt.Fprintf(b, "- Growth rate: %s\n", Percent(r.Params.GrowthRate))
	fmt.Fprintf(b, "- Common share redemption rate: %s\n", Percent(r.Params.CommonRedemptionRate))
	fmt.Fprintf(b, "- A-Share/Options redemption rate: %s\n", Percent(r.Params.OptionRedemptionRate))
	fmt.Fprintf(b, "- Total common shares: %s (purchase price %s)\n",
		Shares(r.Params.TotalCommonShares), Price(r.Params.CommonPurchasePrice))
	fmt.Fprintf(b, "- Total grant shares: %s (strike price %s)\n",
		Shares(r.Params.TotalGrantShares), Price(r.Params.StrikePrice))
	b.WriteString("\n")
}

func writeTable(b *strings.Builder, t Table) {
	fmt.Fprintf(b, "## %s\n\n", t.Title)

	b.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func writePivot(b *strings.Builder, p Pivot) {
	fmt.Fprintf(b, "### %s\n\n", p.Title)

	headers := []string{p.RateLabel}
	for _, year := range p.Years {
		headers = append(headers, fmt.Sprintf("%d", year))
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range p.Rows {
		cells := append([]string{row.Rate}, row.Values...)
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}
