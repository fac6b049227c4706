package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// coachConfig holds server configuration: the listen address and the locked
// daily template served by the checklist endpoint. Loaded from a YAML file
// named by COACH_CONFIG; built-in defaults apply when unset.
type coachConfig struct {
	Addr      string           `yaml:"addr"`
	Checklist []checklistEntry `yaml:"checklist"`
}

// defaultCoachConfig returns the built-in configuration, including the
// locked shake-time template.
func defaultCoachConfig() *coachConfig {
	return &coachConfig{
		Addr: ":8080",
		Checklist: []checklistEntry{
			{Time: "05:30", Label: "Wake", Detail: "Water + electrolytes"},
			{Time: "05:30", Label: "Pre-cardio", Detail: "1 banana + water + pinch salt"},
			{Time: "06:00-06:40", Label: "Zone 2 rebounder", Detail: "Steady Zone 2"},
			{Time: "06:45", Label: "Post-cardio shake", Detail: "Oats 120g + Whey 25g + MCT 10g"},
			{Time: "07:00-15:00", Label: "Work", Detail: "Anchor block"},
			{Time: "10:30", Label: "Mid-morning shake", Detail: "Greek yogurt 1 cup + Flax 30g + Whey 15g"},
			{Time: "14:45", Label: "Pre-lift shake", Detail: "Dextrin 80g + Whey 20g"},
			{Time: "15:45-17:00", Label: "Lift", Detail: "Push/Pull"},
			{Time: "17:10", Label: "Post-lift shake", Detail: "Dextrin 40g + Whey 30g"},
			{Time: "20:00", Label: "Evening recovery meal", Detail: "Oats 124g + Flax 30g + MCT 20g + Eggs 2 + Banana 1"},
			{Time: "21:30", Label: "Wind down", Detail: "Evening protein + downshift"},
			{Time: "21:45", Label: "Sleep", Detail: "Lights out"},
		},
	}
}

// loadCoachConfig returns the defaults, overlaid with the YAML file named by
// COACH_CONFIG when set. A set-but-unreadable path is an error rather than a
// silent fallback.
func loadCoachConfig() (*coachConfig, error) {
	cfg := defaultCoachConfig()

	path := os.Getenv("COACH_CONFIG")
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}
