// Package commands provides CLI commands for hfchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/hfchat/internal/config"
)

// maxFileSize limits prompts read from a file
const maxFileSize = 1 * 1024 * 1024 // 1MB

var (
	// Global flags
	modelFlag  string
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hfchat [prompt]",
	Short: "Chat with Hugging Face hosted models",
	Long: `hfchat is a terminal client for the Hugging Face Inference API.
It sends single-turn prompts to a hosted text-generation model and shows
the exchange as a chat transcript.

Authentication uses a Hugging Face API token, read from the HF_API_TOKEN
environment variable or a .env file in the working directory.

Examples:
  hfchat chat                       Start interactive chat
  hfchat "What is Go?"              Send a single prompt
  hfchat -f prompt.md               Read prompt from file
  cat prompt.md | hfchat            Read prompt from stdin
  hfchat "Hello" -o response.md     Save response to file
  hfchat config                     Show resolved configuration`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("hfchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Piped stdin counts as prompt input
		hasStdin := !term.IsTerminal(int(os.Stdin.Fd()))

		// Check for file input
		if fileFlag != "" {
			info, err := os.Stat(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if info.Size() > maxFileSize {
				return fmt.Errorf("prompt file too large (%d bytes, max %d)", info.Size(), maxFileSize)
			}
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "",
		"Model repository ID (e.g., mistralai/Mistral-7B-Instruct-v0.3)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print only the raw response text")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getModel returns the model ID to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().DefaultModel
	}

	return cfg.DefaultModel
}
