package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muratovnur/constructor-form/internal/config"
	"github.com/muratovnur/constructor-form/internal/form"
	"github.com/muratovnur/constructor-form/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	reg := form.DefaultRegistry()

	draftType, err := cfg.DefaultType(reg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	presets, err := config.ParsePresets(cfg.Form.Presets, reg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	col := form.NewCollection(reg)
	for _, p := range presets {
		if _, err := col.Add(p.Label, p.Type); err != nil {
			log.Fatalf("preset %q: %v", p.Label, err)
		}
	}

	app := tui.New(cfg, reg, col, draftType)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
