package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"oto2mcp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .oto2mcp.toml with defaults",
	RunE:  runConfigInit,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print effective config as TOML (secrets never included)",
	RunE:  runConfigPrint,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPrintCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configPath := globalFlags.ConfigPath
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		configPath = filepath.Join(wd, configPath)
	}

	if !configInitForce {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		}
	}

	data, err := marshalConfigTOML(config.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Println("Wrote", configPath)

	// The API key never goes in the file. Offer to take it now just to
	// confirm the user has one, then point them at the env var.
	if IsTTY() {
		fmt.Fprintln(os.Stderr, "Optional: enter your Forvo API key now (input is hidden). Press Enter to skip and set FORVO_API_KEY later.")
		key, err := ReadSecret("Forvo API key: ")
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if key != "" {
			fmt.Fprintln(os.Stderr, "Key received. Set it in your environment before running 'oto2mcp up':")
			fmt.Fprintln(os.Stderr, "  export FORVO_API_KEY=<your-key>")
		}
	} else {
		fmt.Println("Set FORVO_API_KEY in your environment or a .env file.")
	}
	return nil
}

func runConfigPrint(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{
		ConfigPath:   globalFlags.ConfigPath,
		SkipValidate: true, // print even when partially configured
	})
	if err != nil {
		exitWith(ExitConfigInvalid, "ERROR: "+err.Error())
	}

	data, err := marshalConfigTOML(*cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func marshalConfigTOML(cfg config.Config) ([]byte, error) {
	var buf bytes.Buffer
	// ForvoAPIKey carries toml:"-" so the key never reaches the file.
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
