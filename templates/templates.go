// Package templates holds the embedded HTML pages.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"salonpro-web/booking"
	"salonpro-web/utils"
)

//go:embed html/*.tmpl
var files embed.FS

// Load parses every page. now feeds the relative day labels.
func Load(now func() time.Time) (*template.Template, error) {
	if now == nil {
		now = time.Now
	}
	t, err := template.New("pages").Funcs(Funcs(now)).ParseFS(files, "html/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func Funcs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"money":        money,
		"pct":          pct,
		"stars":        stars,
		"str":          str,
		"nextStatuses": booking.StatusOptions,
		"relday":       func(date string) string { return utils.RelativeDay(date, now()) },
	}
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func pct(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }

func stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
