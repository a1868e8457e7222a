package report

import (
	"fmt"
	"strings"

	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38BDF8"))
	fundedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	shortStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15"))
)

// FormatSummary renders the whole flow as a terminal report.
func FormatSummary(meta model.PageMeta, s *model.FlowSummary, warnings []fund.Warning) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(meta.Title) + "\n")
	b.WriteString(meta.Description + "\n\n")
	b.WriteString(FormatInvestors(s))
	b.WriteString("\n")
	b.WriteString(FormatETF(s))
	b.WriteString("\n")
	b.WriteString(FormatProjects(s))
	if len(warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(warnings))
	}
	return b.String()
}

// FormatInvestors lists each investor's direct and pooled commitments.
func FormatInvestors(s *model.FlowSummary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Investors") + "\n")
	for _, p := range s.Investors {
		line := fmt.Sprintf("  %s %-8s Direct %gM", p.Investor.Emoji, p.Investor.Name, p.DirectTotal)
		if p.Investor.ETF > 0 {
			line += fmt.Sprintf(" · ETF %gM", p.Investor.ETF)
		}
		b.WriteString(fmt.Sprintf("%s  = %.1fM\n", line, p.Total))
	}
	return b.String()
}

// FormatETF renders the pooled fund: collected capital, allocations and distribution.
func FormatETF(s *model.FlowSummary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("ETF Engine") + "\n")
	b.WriteString(fmt.Sprintf("  Capital collected: %.1fM\n", s.ETFInboundTotal))
	b.WriteString(fmt.Sprintf("  Deployed: %.1fM (%.0f%%)\n", s.ETFOutboundTotal, s.ETFDeployedPercent))
	for _, p := range s.Projects {
		b.WriteString(fmt.Sprintf("    %-20s %gM · %.0f%%\n", p.Project.Name, p.ETF, p.ETFShareOfPool))
	}
	b.WriteString(FormatDistribution(s))
	return b.String()
}

// FormatDistribution lists each investor's share of the ETF return.
func FormatDistribution(s *model.FlowSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Distributed back to investors: %.1fM\n", s.TotalETFReturn))
	if len(s.Distribution) == 0 {
		b.WriteString("    (no ETF contributors)\n")
		return b.String()
	}
	for _, sh := range s.Distribution {
		b.WriteString(fmt.Sprintf("    %-8s %.1fM\n", sh.Name, sh.Amount))
	}
	return b.String()
}

// FormatProjects renders target, raised capital and funding status per project.
func FormatProjects(s *model.FlowSummary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Projects") + "\n")
	for _, p := range s.Projects {
		status := shortStyle.Render(p.Status())
		if p.Funded {
			status = fundedStyle.Render(p.Status())
		}
		b.WriteString(fmt.Sprintf("  %s [%s]\n", p.Project.Name, status))
		b.WriteString(fmt.Sprintf("    Target %gM | Direct %.1fM | ETF %.1fM | %.0f%% complete\n",
			p.Project.Target, p.Direct, p.ETF, p.Completion))
		b.WriteString(fmt.Sprintf("    Risk %s | Expected %g%% | Projected distribution %.1fM\n",
			p.Project.Risk, p.Project.ExpectedReturn, p.ProjectedReturn.Total))
	}
	return b.String()
}

// FormatWarnings lists dataset integrity warnings.
func FormatWarnings(warnings []fund.Warning) string {
	var b strings.Builder
	b.WriteString(warnStyle.Render("Warnings") + "\n")
	for _, w := range warnings {
		b.WriteString("  ! " + w.String() + "\n")
	}
	return b.String()
}
