package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/hfchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the resolved configuration, or change a setting with 'config set'.

Settings live in ~/.hfchat/config.json. The API token is never stored
there; it comes from the HF_API_TOKEN environment variable or a .env
file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value and save it.

Supported keys:
  default_model       Model repository ID
  tui_theme           Chat theme (tokyonight, dracula, light)
  verbose             true or false
  copy_to_clipboard   true or false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfigValue(args[0], args[1])
	},
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(colorText)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	configPath, _ := config.GetConfigPath()

	fmt.Println(keyStyle.Render("Configuration") + dimStyle.Render(" ("+configPath+")"))
	fmt.Printf("  %s %s\n", keyStyle.Render("default_model:"), valStyle.Render(cfg.DefaultModel))
	fmt.Printf("  %s %s\n", keyStyle.Render("tui_theme:"), valStyle.Render(cfg.TUITheme))
	fmt.Printf("  %s %s\n", keyStyle.Render("verbose:"), valStyle.Render(strconv.FormatBool(cfg.Verbose)))
	fmt.Printf("  %s %s\n", keyStyle.Render("copy_to_clipboard:"), valStyle.Render(strconv.FormatBool(cfg.CopyToClipboard)))

	token, err := config.LoadToken()
	if err != nil || token == "" {
		fmt.Printf("  %s %s\n", keyStyle.Render("token:"), dimStyle.Render("not set"))
	} else {
		fmt.Printf("  %s %s\n", keyStyle.Render("token:"), valStyle.Render(maskToken(token)))
	}

	return nil
}

func setConfigValue(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "default_model":
		cfg.DefaultModel = value
	case "tui_theme":
		cfg.TUITheme = value
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for verbose: %q (use true or false)", value)
		}
		cfg.Verbose = b
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for copy_to_clipboard: %q (use true or false)", value)
		}
		cfg.CopyToClipboard = b
	default:
		return fmt.Errorf("unknown configuration key: %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// maskToken keeps only enough of the token to recognize it.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
