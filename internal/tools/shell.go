package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/quocvuong92/chat-cli/internal/constants"
)

// shellTool runs a command through the shell with a timeout and returns
// its combined output.
func shellTool() Tool {
	return Tool{
		Name:        "shell",
		Description: "Execute a shell command and return its combined output",
		Run: func(input string) (string, error) {
			command := strings.TrimSpace(input)
			if command == "" {
				return "", fmt.Errorf("no command given")
			}

			ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultCommandTimeout)
			defer cancel()

			cmd := exec.CommandContext(ctx, "sh", "-c", command)
			out, err := cmd.CombinedOutput()
			output := strings.TrimRight(string(out), "\n")

			if ctx.Err() == context.DeadlineExceeded {
				return output, fmt.Errorf("command timed out after %s", constants.DefaultCommandTimeout)
			}
			if err != nil {
				return output, fmt.Errorf("command failed: %w", err)
			}
			return output, nil
		},
	}
}
