package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/hfchat/internal/api"
	"github.com/diogo/hfchat/internal/chat"
	"github.com/diogo/hfchat/internal/config"
	"github.com/diogo/hfchat/internal/models"
	"github.com/diogo/hfchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session against a hosted model.

Each message is sent on its own; the model does not see earlier messages.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, _ := config.LoadConfig()
	tui.ApplyTheme(cfg.TUITheme)

	modelID := getModel()

	// A missing or placeholder token is deliberately not fatal here: the
	// session starts anyway and the first submission surfaces the
	// configuration fault as a transcript entry
	token, _ := config.LoadToken()

	client := api.NewClient(token, api.WithModel(models.ModelFromID(modelID)))
	session := chat.NewSession(client)

	return tui.RunChat(session, modelID)
}
