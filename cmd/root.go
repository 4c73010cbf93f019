package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/chat-cli/internal/bootstrap"
	"github.com/quocvuong92/chat-cli/internal/config"
	"github.com/quocvuong92/chat-cli/internal/constants"
	"github.com/quocvuong92/chat-cli/internal/display"
	"github.com/quocvuong92/chat-cli/internal/llm"
	"github.com/quocvuong92/chat-cli/internal/logging"
	"github.com/quocvuong92/chat-cli/internal/provider"
)

// App holds the application state
type App struct {
	cfg          *config.Store
	providerFlag string
	model        string
	interactive  bool
	render       bool
	verbose      bool
}

// Execute runs the root command
func Execute() {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "chat-cli [query]",
		Short: "A terminal client for LLM chat (OpenAI, Anthropic, Azure, local)",
		Long: `chat-cli is a command-line AI assistant. It resolves your provider and
credentials on first run, remembers them in a config file, and keeps a
persistent input history for interactive sessions.

Examples:
  chat-cli "What is Kubernetes?"
  chat-cli -m gpt-4o "Explain Docker"
  chat-cli --provider anthropic "Summarize this repo"
  chat-cli -i                             # Interactive mode
  chat-cli -ir                            # Interactive with markdown rendering`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, args)
		},
	}

	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&app.interactive, "interactive", "i", false, "Interactive chat mode")
	rootCmd.Flags().BoolVarP(&app.render, "render", "r", false, "Render markdown with colors and formatting")
	rootCmd.Flags().StringVarP(&app.model, "model", "m", "", "Model name (e.g., gpt-4o, claude-sonnet-4.5)")
	rootCmd.Flags().StringVar(&app.providerFlag, "provider", "", "LLM provider: openai, anthropic, azure, or local (default: auto-detect)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (app *App) run(cmd *cobra.Command, args []string) {
	if app.verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}
	app.cfg, err = config.Open(cfgPath)
	if err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}

	var explicit provider.Provider
	if app.providerFlag != "" {
		explicit, err = provider.Parse(app.providerFlag)
		if err != nil {
			display.ShowError(err.Error())
			os.Exit(1)
		}
	}

	boot := bootstrap.New(app.cfg)
	res, err := boot.Init(bootstrap.Options{
		Provider:    explicit,
		Model:       app.model,
		Interactive: app.interactive,
	})
	if err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}

	if app.render {
		if err := display.InitRenderer(); err != nil {
			logging.Warn("failed to initialize renderer", logging.Fields{"error": err})
		}
	}

	if app.interactive {
		app.runInteractive(res)
		return
	}

	// One-shot mode requires a query argument
	if len(args) == 0 {
		_ = cmd.Help()
		os.Exit(1)
	}

	client := llm.NewClient(res.Provider, res.Model)
	messages := []llm.Message{
		{Role: "system", Content: constants.DefaultSystemMessage},
		{Role: "user", Content: args[0]},
	}

	sp := display.NewSpinner("Thinking...")
	sp.Start()
	reply, err := client.Query(context.Background(), messages)
	sp.Stop()

	if err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}

	if app.render {
		display.ShowContentRendered(reply)
	} else {
		display.ShowContent(reply)
	}
}

// providerName returns a human-readable provider name.
func providerName(p provider.Provider) string {
	switch p {
	case provider.OpenAI:
		return "OpenAI"
	case provider.Anthropic:
		return "Anthropic"
	case provider.Azure:
		return "Azure OpenAI"
	case provider.Local:
		return "Local"
	default:
		return string(p)
	}
}
