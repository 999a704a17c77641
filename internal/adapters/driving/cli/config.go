package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage leafdex configuration",
	Long: `View and change leafdex settings.

Settings are stored in config.toml under ~/.leafdex (or --config-dir).`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  catalog.location     - CSV path, sqlite://path.db?table=t or postgres:// URL
  catalog.top_n        - number of plants in "top picks" (positive integer)
  catalog.watch        - reload when the source file changes (true/false)
  catalog.debounce_ms  - wait after a change before reloading (milliseconds)
  suggest.limit        - maximum number of suggestions (positive integer)
  output.color         - auto, always or never`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if configPath == "" {
			cmd.Println("(in-memory configuration)")
			return
		}
		cmd.Println(configPath)
	},
}

var configWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the catalog source and output.`,
	RunE:  runConfigWizard,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configWizardCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Location: %s\n", settings.Catalog.Location)
	cmd.Printf("  Resolved: %s\n", settingsService.ResolveLocation())
	cmd.Printf("  Top N: %d\n", settings.Catalog.TopN)
	cmd.Printf("  Watch: %t\n", settings.Catalog.Watch)
	cmd.Printf("  Debounce: %dms\n", settings.Catalog.DebounceMillis)
	cmd.Println()

	cmd.Println("[Suggest]")
	cmd.Printf("  Limit: %d\n", settings.Suggest.Limit)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Color: %s\n", settings.Output.Color.Description())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// applySetting parses value and stores it under key in settings.
func applySetting(settings *domain.AppSettings, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "catalog.location":
		if value == "" {
			return fmt.Errorf("%w: location must not be empty", domain.ErrInvalidInput)
		}
		settings.Catalog.Location = value
	case "catalog.top_n":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		settings.Catalog.TopN = n
	case "catalog.watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Catalog.Watch = b
	case "catalog.debounce_ms":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		settings.Catalog.DebounceMillis = n
	case "suggest.limit":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		settings.Suggest.Limit = n
	case "output.color":
		mode := domain.ColorMode(strings.ToLower(value))
		if !mode.IsValid() {
			return fmt.Errorf("%w: color must be auto, always or never", domain.ErrInvalidInput)
		}
		settings.Output.Color = mode
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrNotFound, key)
	}
	return nil
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func runConfigWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("leafdex Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Catalog Source")
	cmd.Println("----------------------")
	cmd.Printf("Location [%s]: ", settings.Catalog.Location)
	if input := readLine(reader); input != "" {
		settings.Catalog.Location = input
	}
	cmd.Println()

	cmd.Println("Step 2: Top Picks")
	cmd.Println("-----------------")
	cmd.Printf("Number of plants [%d]: ", settings.Catalog.TopN)
	if n, err := strconv.Atoi(readLine(reader)); err == nil && n > 0 {
		settings.Catalog.TopN = n
	}
	cmd.Println()

	cmd.Println("Step 3: Colour Output")
	cmd.Println("---------------------")
	modes := domain.AllColorModes()
	current := 1
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
		if mode == settings.Output.Color {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Output.Color = modes[parseChoice(readLine(reader), len(modes), current)-1]
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Printf("Catalog: %s\n", settings.Catalog.Location)
	cmd.Printf("Colour: %s\n", settings.Output.Color.Description())

	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
