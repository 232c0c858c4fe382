package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

const chatPrompt = "> "

// Run executes the chat command. It reads lines until exit, quit or EOF.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "BookLog assistant. Type 'help' for commands, 'exit' to quit.")

	for {
		if err := deps.Ctx.Err(); err != nil {
			return nil
		}

		line, err := deps.Prompter.Prompt(chatPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit":
			return nil
		}

		deps.Prompter.AppendHistory(input)
		fmt.Fprintln(deps.Stdout, deps.Bot.Reply(deps.Ctx, input))
	}
}
