package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"listselect/internal/config"
	"listselect/internal/domain"
	"listselect/internal/eventbus"
	"listselect/internal/ui"
)

// ErrAborted is returned when the user leaves the picker without accepting
var ErrAborted = errors.New("aborted")

type runOptions struct {
	configPath string
	multiple   bool
	search     bool
	noKeyboard bool
	output     string
	logFile    string
}

// NewCLI builds the root command
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := newRootCmd(&runOptions{})
	rootCmd.AddCommand(newInitCmd(), newValidateCmd())

	return rootCmd
}

func newRootCmd(opts *runOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listselect [items...]",
		Short: "Pick items from a list in the terminal",
		Long: `Pick items from a list in the terminal.

Items come from the arguments, from stdin (one per line) or from the
[[items]] of a .listselect.toml file. The accepted selection is printed
on stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandler(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.FileName+" if present)")
	flags.BoolVarP(&opts.multiple, "multiple", "m", false, "Allow selecting more than one item")
	flags.BoolVarP(&opts.search, "search", "s", false, "Enable the search box")
	flags.BoolVar(&opts.noKeyboard, "no-keyboard", false, "Ignore keyboard navigation (mouse only)")
	flags.StringVarP(&opts.output, "output", "o", "text", "Output format: text or json")
	flags.StringVar(&opts.logFile, "log-file", "listselect.log", "Log file path")

	return rootCmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.NewConfigServiceAt(path, nil).Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := config.NewConfigServiceAt(path, nil).Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items ok\n", path, len(cfg.Items))
			return nil
		},
	}
}

func runHandler(cmd *cobra.Command, args []string, opts *runOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	// Set up logging
	if opts.logFile != "" {
		logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	bus := eventbus.New()

	cfg, err := loadConfig(config.NewConfigServiceWithBus(bus), opts.configPath)
	if err != nil {
		return err
	}
	if err := applyItemSources(cfg, args, cmd.InOrStdin()); err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection changed: %v", event.Selection.Values())
		}
	})

	model, err := ui.NewModel(ui.OptionsFromConfig(cfg), bus)
	if err != nil {
		return err
	}
	defer model.Close()

	// Render on stderr so stdout carries only the result
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(cmd.Context()),
	)
	model.SetProgram(p)

	// Forward errors to the UI; the bus runs inside Update so this must not block
	eventChan := make(chan eventbus.DomainEvent, 16)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	})
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()
	defer close(eventChan)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return ErrAborted
		}
		return fmt.Errorf("running program: %w", err)
	}

	result := model.Result()
	if result == nil {
		return ErrAborted
	}
	return writeResult(cmd.OutOrStdout(), result, opts.output)
}

// loadConfig reads the config file at path, or ./.listselect.toml when it
// exists. Without a file a default config is used.
func loadConfig(svc config.ConfigService, path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.FileName); err != nil {
			log.Printf("No %s in working directory, using defaults", config.FileName)
			return config.DefaultConfig(), nil
		}
		path = config.FileName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := svc.LoadFromPath(abs)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded config from %s", abs)
	return cfg, nil
}

// applyItemSources replaces the configured items with arguments, or with
// stdin lines when stdin is not a terminal
func applyItemSources(cfg *config.Config, args []string, stdin io.Reader) error {
	if len(args) > 0 {
		cfg.Items = config.ItemsFromStrings(args)
		return nil
	}
	if f, ok := stdin.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return nil
		}
	}
	lines, err := readLines(stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(lines) > 0 {
		cfg.Items = config.ItemsFromStrings(lines)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// applyFlags lets explicitly set flags override the file
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *runOptions) {
	flags := cmd.Flags()
	if flags.Changed("multiple") {
		cfg.Multiple = opts.multiple
	}
	if flags.Changed("search") {
		cfg.Search = opts.search
	}
	if flags.Changed("no-keyboard") {
		cfg.SetKeyboardEnabled(!opts.noKeyboard)
	}
}

func writeResult(w io.Writer, result *ui.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, item := range result.Items {
		if _, err := fmt.Fprintln(w, itemOutput(item)); err != nil {
			return err
		}
	}
	return nil
}

// itemOutput is the text form of an accepted item: the value of a Labeled
// item, the string of a Primitive one
func itemOutput(item domain.Item) string {
	return fmt.Sprint(item.Payload())
}

// Execute runs the CLI and maps errors to exit codes
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewCLI().ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrAborted) {
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
