// Package assistant is the command layer of the bot. It turns a line of user
// input into an address book operation and returns the text to print.
package assistant

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"addressbook/internal/contacts"

	"go.uber.org/zap"
)

// Reply is the result of one command.
type Reply struct {
	Text string
	// Markdown marks Text as markdown that the UI may render.
	Markdown bool
	// Exit asks the loop to stop after printing Text.
	Exit bool
}

type command struct {
	name     string
	usage    string
	summary  string
	minArgs  int
	// windowed marks a summary with a %d for the birthday window in days.
	windowed bool
	run      func(a *Assistant, args []string) (string, error)
}

// commandTable is ordered as shown in help.
var commandTable = []command{
	{name: "hello", summary: "Say hello"},
	{name: "add", usage: "<name> <phone>", summary: "Add a contact or another phone to an existing one", minArgs: 2, run: (*Assistant).addContact},
	{name: "change", usage: "<name> <old phone> <new phone>", summary: "Replace a phone", minArgs: 3, run: (*Assistant).changeContact},
	{name: "phone", usage: "<name>", summary: "Show the phones of a contact", minArgs: 1, run: (*Assistant).showPhone},
	{name: "all", summary: "List all contacts", run: (*Assistant).showAll},
	{name: "add-birthday", usage: "<name> <DD.MM.YYYY>", summary: "Set the birthday of a contact", minArgs: 2, run: (*Assistant).addBirthday},
	{name: "show-birthday", usage: "<name>", summary: "Show the birthday of a contact", minArgs: 1, run: (*Assistant).showBirthday},
	{name: "birthdays", summary: "Birthdays in the next %d days, weekends moved to Monday", windowed: true, run: (*Assistant).birthdays},
	{name: "help", summary: "Show this help"},
	{name: "close", summary: "Exit"},
	{name: "exit", summary: "Exit"},
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock sets the source of "today" for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// WithQueryOptions sets the upcoming birthday window and leap day policy.
func WithQueryOptions(opts contacts.Options) Option {
	return func(a *Assistant) { a.opts = opts }
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assistant) { a.logger = logger }
}

// Assistant dispatches commands against one address book. Every command runs
// under a single lock, so one Assistant can serve several goroutines.
type Assistant struct {
	mu       sync.Mutex
	book     *contacts.AddressBook
	now      func() time.Time
	opts     contacts.Options
	logger   *zap.Logger
	commands map[string]*command
}

// New creates an Assistant over book.
func New(book *contacts.AddressBook, opts ...Option) *Assistant {
	a := &Assistant{
		book:     book,
		now:      time.Now,
		opts:     contacts.DefaultOptions(),
		logger:   zap.NewNop(),
		commands: make(map[string]*command, len(commandTable)),
	}
	for i := range commandTable {
		a.commands[commandTable[i].name] = &commandTable[i]
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetOptions swaps the birthday query options, e.g. after a config reload.
func (a *Assistant) SetOptions(opts contacts.Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts = opts
	a.logger.Debug("query options updated",
		zap.Int("window_days", opts.WindowDays),
		zap.String("leap_day", string(opts.LeapDay)))
}

// Execute runs one line of input. Blank input returns an empty reply.
func (a *Assistant) Execute(line string) Reply {
	name, args := ParseInput(line)
	if name == "" {
		return Reply{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cmd, ok := a.commands[name]
	if !ok {
		a.logger.Debug("unknown command", zap.String("command", name))
		return Reply{Text: msgInvalidCommand}
	}

	switch name {
	case "hello":
		return Reply{Text: msgGreeting}
	case "help":
		return Reply{Text: Help(a.opts), Markdown: true}
	case "close", "exit":
		a.logger.Info("session closed by user")
		return Reply{Text: msgGoodbye, Exit: true}
	}

	text, err := a.run(cmd, args)
	if err != nil {
		a.logger.Debug("command failed",
			zap.String("command", name),
			zap.Int("args", len(args)),
			zap.Error(err))
		return Reply{Text: messageFor(err)}
	}
	a.logger.Debug("command ok",
		zap.String("command", name),
		zap.Int("args", len(args)),
		zap.Int("contacts", a.book.Len()))
	return Reply{Text: text}
}

func (a *Assistant) run(cmd *command, args []string) (string, error) {
	if len(args) < cmd.minArgs {
		return "", fmt.Errorf("%w: %s needs %d, got %d", ErrMissingArguments, cmd.name, cmd.minArgs, len(args))
	}
	return cmd.run(a, args)
}

// Help returns the command reference as markdown for the given query options.
func Help(opts contacts.Options) string {
	var sb strings.Builder
	sb.WriteString("# Commands\n\n")
	sb.WriteString("| Command | Description |\n")
	sb.WriteString("|---|---|\n")
	for _, c := range commandTable {
		usage := c.name
		if c.usage != "" {
			usage += " " + c.usage
		}
		summary := c.summary
		if c.windowed {
			summary = fmt.Sprintf(summary, opts.WindowDays)
		}
		fmt.Fprintf(&sb, "| `%s` | %s |\n", usage, summary)
	}
	sb.WriteString("\nPhones are exactly 10 digits. Dates use DD.MM.YYYY.\n")
	return sb.String()
}
