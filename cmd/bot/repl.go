package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"addressbook/internal/assistant"

	"go.uber.org/zap"
)

const (
	msgWelcome = "Welcome to the assistant bot!"
	prompt     = "Enter a command: "
)

// lineREPL is the line-oriented interface: one prompt, one command, one reply.
type lineREPL struct {
	in     io.Reader
	out    io.Writer
	bot    *assistant.Assistant
	render func(assistant.Reply) string
	logger *zap.Logger
}

// Run prompts until the user exits, input ends or ctx is cancelled.
func (r *lineREPL) Run(ctx context.Context) error {
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.render == nil {
		r.render = func(reply assistant.Reply) string { return reply.Text }
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, r.in)

	fmt.Fprintln(r.out, msgWelcome)
	for {
		fmt.Fprint(r.out, prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			r.logger.Debug("interrupted")
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				if err := <-errc; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				r.logger.Debug("input closed")
				return nil
			}

			reply := r.bot.Execute(line)
			if text := r.render(reply); text != "" {
				fmt.Fprintln(r.out, text)
			}
			if reply.Exit {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine so that a blocked read never holds
// up shutdown. The error channel receives exactly one value before lines is
// closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
