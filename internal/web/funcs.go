package web

import (
	"fmt"
	"html/template"
)

// Project colors are checked against a plain color/gradient pattern by fund.Validate
// before any page renders, so css can pass them through.
var templateFuncs = template.FuncMap{
	"f0":  func(v float64) string { return fmt.Sprintf("%.0f", v) },
	"f1":  func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"f2":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"css": func(s string) template.CSS { return template.CSS(s) },
}
