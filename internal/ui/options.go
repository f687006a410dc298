package ui

import (
	"listselect/internal/config"
	"listselect/internal/domain"
)

// Options configures a list widget. The zero value is not the default;
// use DefaultOptions.
type Options struct {
	Items          []domain.Item
	Selected       []int
	Disabled       []int
	Multiple       bool
	Search         bool
	KeyboardEvents bool
	OnChange       func(domain.Selection)

	Title    string
	ShowHelp bool
	Height   int // list rows; 0 fills the terminal
}

// DefaultOptions returns a fresh default configuration on every call
func DefaultOptions() Options {
	return Options{
		Items:          []domain.Item{},
		Selected:       []int{},
		Disabled:       []int{},
		KeyboardEvents: true,
		ShowHelp:       true,
	}
}

// OptionsFromConfig builds options from a loaded config file
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.Items = cfg.DomainItems()
	opts.Selected = append(opts.Selected, cfg.Selected...)
	opts.Disabled = append(opts.Disabled, cfg.Disabled...)
	opts.Multiple = cfg.Multiple
	opts.Search = cfg.Search
	opts.KeyboardEvents = cfg.KeyboardEnabled()
	opts.Title = cfg.UISettings.Title
	opts.ShowHelp = cfg.UISettings.ShowHelp
	opts.Height = cfg.UISettings.Height
	return opts
}
