package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/hfchat/internal/api"
	"github.com/diogo/hfchat/internal/chat"
	"github.com/diogo/hfchat/internal/config"
	"github.com/diogo/hfchat/internal/errors"
	"github.com/diogo/hfchat/internal/models"
	"github.com/diogo/hfchat/internal/render"
)

// runQuery sends a single prompt and prints the assistant's reply.
func runQuery(prompt string, rawOutput bool) error {
	cfg, _ := config.LoadConfig()

	modelID := getModel()

	// Token problems are reported through the exchange itself, same as in
	// the interactive session
	token, _ := config.LoadToken()

	client := api.NewClient(token, api.WithModel(models.ModelFromID(modelID)))
	session := chat.NewSession(client)

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Model: %s\n", modelID)
		fmt.Fprintf(os.Stderr, "Endpoint: %s\n", client.Endpoint())
	}

	sp := newSpinner("Waiting for the model")
	sp.start()

	start := time.Now()
	reply, ok := session.Send(prompt)
	elapsed := time.Since(start)

	if !ok {
		sp.stopWithError()
		return fmt.Errorf("empty prompt")
	}

	if err := session.LastError(); err != nil {
		sp.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err))
		os.Exit(1)
	}

	sp.stopWithSuccess(fmt.Sprintf("Response received in %s", elapsed.Round(10*time.Millisecond)))

	responseText := reply.Content

	// Save to file if requested
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(responseText), 0o644); err != nil {
			return fmt.Errorf("failed to save response: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Response saved to %s\n", outputFlag)
	}

	// Copy to clipboard if configured
	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(responseText); err == nil {
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
	}

	if rawOutput {
		fmt.Println(responseText)
		return nil
	}

	printDecoratedResponse(responseText)
	return nil
}

// printDecoratedResponse renders the reply as a labelled markdown block.
func printDecoratedResponse(text string) {
	label := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("🤗 Assistant")

	opts := render.LoadOptionsFromConfig(80)
	rendered, err := render.Markdown(text, opts)
	if err != nil {
		rendered = text
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTextDim).
		Padding(0, 1).
		Render(strings.TrimRight(rendered, "\n"))

	fmt.Println(label)
	fmt.Println(body)
}

// formatErrorMessage renders a fault with an actionable hint where one exists.
func formatErrorMessage(err error) string {
	danger := lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	dim := lipgloss.NewStyle().Foreground(colorTextDim)

	var b strings.Builder
	b.WriteString(danger.Render("✗ " + err.Error()))

	switch {
	case errors.IsConfigError(err):
		b.WriteString("\n" + dim.Render("  Set HF_API_TOKEN in your environment or in a .env file."))
		b.WriteString("\n" + dim.Render("  Tokens are created at https://huggingface.co/settings/tokens"))
	case errors.IsAuthError(err):
		b.WriteString("\n" + dim.Render("  The API rejected your token. Check that it is valid and has read access."))
	case errors.IsRateLimitError(err):
		b.WriteString("\n" + dim.Render("  Rate limited. Wait a moment and try again."))
	case errors.IsModelLoadingError(err):
		b.WriteString("\n" + dim.Render("  The model is still loading on the inference backend. Retry shortly."))
	case errors.IsTimeoutError(err):
		b.WriteString("\n" + dim.Render("  The request timed out. Large models can be slow on a cold start."))
	case errors.IsNetworkError(err):
		b.WriteString("\n" + dim.Render("  Could not reach the inference API. Check your network connection."))
	}

	return b.String()
}
