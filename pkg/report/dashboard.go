package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

//go:embed dashboard.html.tmpl
var dashboardTemplate string

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadStats reads a stats JSON object produced by a comparison run (or by the
// immersion tracker) and adds the preformatted time fields the dashboard
// template expects.
func LoadStats(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	var stats map[string]interface{}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}
	addDerived(stats)
	return stats, nil
}

// addDerived attaches display-formatted time strings next to the raw second
// counts.
func addDerived(stats map[string]interface{}) {
	if today, ok := stats["today_immersion"].(map[string]interface{}); ok {
		if secs, ok := asInt(today["total_seconds"]); ok {
			today["total_hms"] = FormatHMS(secs)
		}
	}
	if secs, ok := asInt(stats["avg_immersion_seconds"]); ok {
		stats["avg_immersion_hms"] = FormatHMS(secs)
	}
	if secs, ok := asInt(stats["avg_immersion_delta_seconds"]); ok {
		stats["avg_immersion_delta_hms"] = FormatHMS(secs)
	}
}

var dashboardFuncs = template.FuncMap{
	"formatK": func(v interface{}) string {
		if n, ok := asInt(v); ok {
			return FormatK(n)
		}
		return "?"
	},
	"formatChars": func(v interface{}) string {
		if n, ok := asInt(v); ok {
			return FormatChars(n)
		}
		return "?"
	},
	"formatHMS": func(v interface{}) string {
		if n, ok := asInt(v); ok {
			return FormatHMS(n)
		}
		return "?"
	},
}

// RenderHTML renders the dashboard for one stats object.
func RenderHTML(w io.Writer, stats map[string]interface{}) error {
	tmpl, err := template.New("dashboard").Funcs(dashboardFuncs).Parse(dashboardTemplate)
	if err != nil {
		return fmt.Errorf("parse dashboard template: %w", err)
	}
	if err := tmpl.Execute(w, stats); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// RenderHTMLFile loads a stats JSON and writes the rendered dashboard,
// creating parent directories as needed.
func RenderHTMLFile(statsPath, outPath string) error {
	stats, err := LoadStats(statsPath)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	return RenderHTML(f, stats)
}
