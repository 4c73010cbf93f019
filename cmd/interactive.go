package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/google/uuid"

	"github.com/quocvuong92/chat-cli/internal/bootstrap"
	"github.com/quocvuong92/chat-cli/internal/constants"
	"github.com/quocvuong92/chat-cli/internal/display"
	"github.com/quocvuong92/chat-cli/internal/history"
	"github.com/quocvuong92/chat-cli/internal/llm"
	"github.com/quocvuong92/chat-cli/internal/logging"
	"github.com/quocvuong92/chat-cli/internal/provider"
)

// InteractiveSession holds the state for an interactive chat session.
type InteractiveSession struct {
	app       *App
	client    *llm.Client
	messages  []llm.Message
	hist      *history.Session
	prov      provider.Provider
	sessionID string
	exitFlag  bool
}

// runInteractive starts the interactive REPL. The history session is
// flushed when this function returns, i.e. on every normal exit path.
func (app *App) runInteractive(res *bootstrap.Result) {
	sess := &InteractiveSession{
		app:    app,
		client: llm.NewClient(res.Provider, res.Model),
		messages: []llm.Message{
			{Role: "system", Content: constants.DefaultSystemMessage},
		},
		hist:      res.History,
		prov:      res.Provider,
		sessionID: uuid.New().String(),
	}

	logging.Debug("interactive session started", logging.Fields{"session": sess.sessionID})

	fmt.Println("chat-cli - Interactive Mode")
	fmt.Printf("Provider: %s\n", providerName(res.Provider))
	fmt.Printf("Model: %s\n", res.Model)
	fmt.Println("Type /help for commands, Ctrl+C or Ctrl+D to quit")
	fmt.Println()

	if sess.hist != nil {
		defer func() {
			if err := sess.hist.Close(); err != nil {
				logging.Warn("could not save history", logging.Fields{"error": err})
			}
		}()
	}

	p := prompt.New(
		sess.execute,
		prompt.WithCompleter(sess.completer),
		prompt.WithPrefix("> "),
		prompt.WithTitle("chat-cli"),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithHistory(sess.historyEntries()),
		prompt.WithMaxSuggestion(10),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return sess.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Println("\nGoodbye!")
				sess.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Println("Goodbye!")
					sess.exitFlag = true
				}
				return false
			},
		}),
	)

	p.Run()
}

func (s *InteractiveSession) historyEntries() []string {
	if s.hist == nil {
		return nil
	}
	return s.hist.Entries()
}

// completer provides auto-completion for slash commands, models and
// providers.
func (s *InteractiveSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	if !strings.HasPrefix(text, "/") {
		return []prompt.Suggest{}, startIndex, endIndex
	}

	if strings.HasPrefix(strings.ToLower(text), "/model ") {
		var suggestions []prompt.Suggest
		for _, p := range provider.All {
			desc := "recommended for " + string(p)
			suggestions = append(suggestions, prompt.Suggest{Text: p.RecommendedModel(), Description: desc})
		}
		return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
	}

	suggestions := []prompt.Suggest{
		{Text: "/model", Description: "Show/switch model (current: " + s.client.Model() + ")"},
		{Text: "/provider", Description: "Show current provider"},
		{Text: "/clear", Description: "Clear conversation"},
		{Text: "/help", Description: "Show all available commands"},
		{Text: "/exit", Description: "Exit interactive mode"},
		{Text: "/q", Description: "Exit (alias)"},
		{Text: "/h", Description: "Help (alias)"},
	}
	return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
}

// execute handles one input line from the REPL.
func (s *InteractiveSession) execute(input string) {
	if s.exitFlag {
		return
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if s.hist != nil {
		s.hist.Add(input)
	}

	if strings.HasPrefix(input, "/") {
		if s.handleCommand(input) {
			s.exitFlag = true
		}
		return
	}

	s.messages = append(s.messages, llm.Message{Role: "user", Content: input})
	fmt.Println()

	sp := display.NewSpinner("Thinking...")
	sp.Start()
	reply, err := s.client.Query(context.Background(), s.messages)
	sp.Stop()

	if err != nil {
		display.ShowError(err.Error())
		s.messages = s.messages[:len(s.messages)-1]
		return
	}

	s.messages = append(s.messages, llm.Message{Role: "assistant", Content: reply})
	if s.app.render {
		display.ShowContentRendered(reply)
	} else {
		display.ShowContent(reply)
	}
	fmt.Println()
}

// handleCommand processes slash commands. Returns true if the session
// should exit.
func (s *InteractiveSession) handleCommand(input string) bool {
	parts := strings.SplitN(input, " ", 2)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "/exit", "/quit", "/q":
		fmt.Println("Goodbye!")
		return true

	case "/clear", "/c":
		s.messages = []llm.Message{
			{Role: "system", Content: constants.DefaultSystemMessage},
		}
		s.sessionID = uuid.New().String()
		fmt.Println("Conversation cleared.")

	case "/help", "/h":
		fmt.Println("\nCommands:")
		fmt.Printf("  %-20s %s\n", "/exit, /quit, /q", "Exit interactive mode")
		fmt.Printf("  %-20s %s\n", "/clear, /c", "Clear conversation")
		fmt.Printf("  %-20s %s\n", "/model <name>", "Switch model")
		fmt.Printf("  %-20s %s\n", "/model", "Show current model")
		fmt.Printf("  %-20s %s\n", "/provider", "Show current provider")
		fmt.Printf("  %-20s %s\n", "/help, /h", "Show this help")
		fmt.Println()

	case "/model":
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			model := strings.TrimSpace(parts[1])
			s.client = llm.NewClient(s.prov, model)
			fmt.Printf("Switched to model: %s\n", model)
		} else {
			fmt.Printf("Current model: %s\n", s.client.Model())
		}

	case "/provider":
		// The provider is fixed once bootstrap resolves it; restart the
		// process (or pass --provider) to use a different one.
		fmt.Printf("Current provider: %s\n", providerName(s.prov))
		fmt.Println("Restart with --provider to switch providers.")

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		fmt.Println("Type /help for available commands")
	}

	return false
}
