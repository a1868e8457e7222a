package fund

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"WhyInvesting/internal/calculator"
	"WhyInvesting/internal/model"
)

var (
	ErrUnknownProject = errors.New("unknown project")
	ErrInvalidTarget  = errors.New("project target must be positive")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidColor   = errors.New("unsupported project color")
)

// Project colors are rendered into a style attribute, so only plain colors and
// linear gradients of plain colors are accepted.
var (
	plainColor   = `(?:#[0-9a-fA-F]{3,8}|rgba?\(\s*[0-9.]+%?(?:\s*,\s*[0-9.]+%?){2,3}\s*\))`
	colorPattern = regexp.MustCompile(`^(?:` + plainColor + `|linear-gradient\(\s*[0-9]+deg(?:\s*,\s*` + plainColor + `(?:\s+[0-9.]+%)?){2,}\s*\))$`)
)

const returnTolerance = 1e-9

// Warning is a data-integrity finding that does not stop the flow.
type Warning struct {
	Subject string
	Message string
}

func (w Warning) String() string { return w.Subject + ": " + w.Message }

// Validate checks referential integrity of the dataset. Broken references and
// non-positive targets are errors; inconsistent return splits and an
// over-allocated pool are returned as warnings.
func Validate(ds *model.Dataset) ([]Warning, error) {
	projects := make(map[string]bool, len(ds.Projects))
	for _, p := range ds.Projects {
		if projects[p.ID] {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
		projects[p.ID] = true
		if p.Target <= 0 {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrInvalidTarget)
		}
		if p.Color != "" && !colorPattern.MatchString(p.Color) {
			return nil, fmt.Errorf("project %q color %q: %w", p.ID, p.Color, ErrInvalidColor)
		}
	}

	investors := make(map[string]bool, len(ds.Investors))
	for _, inv := range ds.Investors {
		if investors[inv.ID] {
			return nil, fmt.Errorf("investor %q: %w", inv.ID, ErrDuplicateID)
		}
		investors[inv.ID] = true
		if inv.ETF < 0 {
			return nil, fmt.Errorf("investor %q etf %.2f: %w", inv.ID, inv.ETF, ErrNegativeAmount)
		}
		for _, d := range inv.Direct {
			if d.Amount < 0 {
				return nil, fmt.Errorf("investor %q direct allocation to %q: %w", inv.ID, d.ProjectID, ErrNegativeAmount)
			}
			if !projects[d.ProjectID] {
				return nil, fmt.Errorf("investor %q direct allocation to %q: %w", inv.ID, d.ProjectID, ErrUnknownProject)
			}
		}
	}

	for _, id := range sortedKeys(ds.ETFAllocations) {
		if !projects[id] {
			return nil, fmt.Errorf("etf allocation %q: %w", id, ErrUnknownProject)
		}
		if ds.ETFAllocations[id] < 0 {
			return nil, fmt.Errorf("etf allocation %q: %w", id, ErrNegativeAmount)
		}
	}

	var warnings []Warning
	returnIDs := make([]string, 0, len(ds.Returns))
	for id := range ds.Returns {
		returnIDs = append(returnIDs, id)
	}
	sort.Strings(returnIDs)
	for _, id := range returnIDs {
		if !projects[id] {
			return nil, fmt.Errorf("returns %q: %w", id, ErrUnknownProject)
		}
		r := ds.Returns[id]
		if math.Abs(r.ToETF+r.ToDirect-r.Total) > returnTolerance {
			warnings = append(warnings, Warning{
				Subject: "returns " + id,
				Message: fmt.Sprintf("to_etf %.2f + to_direct %.2f != total %.2f", r.ToETF, r.ToDirect, r.Total),
			})
		}
	}

	inbound := calculator.ETFInboundTotal(ds)
	outbound := calculator.ETFOutboundTotal(ds)
	if outbound > inbound+returnTolerance {
		warnings = append(warnings, Warning{
			Subject: "etf",
			Message: fmt.Sprintf("outbound %.2f exceeds inbound %.2f", outbound, inbound),
		})
	}
	if inbound == 0 {
		warnings = append(warnings, Warning{
			Subject: "etf",
			Message: "no investor contributes to the pool, no distribution shares",
		})
	}

	return warnings, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
