package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists at %s\n", configPath)
		fmt.Println("Use 'tutormatch config show' to view current configuration")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// The written file must load cleanly
	cfg, err := config.Parse([]byte(defaultConfig))
	if err != nil {
		return fmt.Errorf("default config is invalid: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Import tutors: tutormatch tutors import tutors.json")
	fmt.Println("  2. Browse them:   tutormatch search")
	fmt.Println("  3. Rank them:     tutormatch recommend --subject Mathematics --grade \"7th Grade\"")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found; built-in defaults are in use.")
			fmt.Println("Run 'tutormatch config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := config.Parse(data); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# tutormatch configuration

[database]
path = "~/.local/share/tutormatch/tutormatch.db"

[search]
browse_limit = 6  # tutors shown by a search without criteria

[recommend]
limit = 10  # recommendations shown; 0 shows all

# Extra cities for placing addresses, on top of the built-in table
# (bangalore, delhi, mumbai, pune, chennai, hyderabad)
[geocode.cities]
# mysore = { lat = 12.2958, lng = 76.6394 }

[logging]
level = "info"       # debug, info, warn, error
format = "console"   # console, json
output = "stderr"    # stderr, stdout or a file path

[mcp]
enabled = true
transport = "stdio"
`
