package main

import (
	"context"
	"errors"
	"strings"

	"addressbook/cmd/bot/ui"
	"addressbook/internal/assistant"
	"addressbook/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	headerHeight = 2
	footerHeight = 2
	inputHeight  = 3
)

type exchange struct {
	input string
	reply assistant.Reply
}

// replyMsg carries the result of a command back into Update.
type replyMsg exchange

type tuiModel struct {
	bot       *assistant.Assistant
	styles    ui.Styles
	renderer  *glamour.TermRenderer
	logger    *zap.Logger
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model

	history []exchange
	busy    bool
	ready   bool
	width   int
}

func newTUIModel(bot *assistant.Assistant, styles ui.Styles, renderer *glamour.TermRenderer, logger *zap.Logger) tuiModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a command... (Enter to send, Esc to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 512
	ti.Width = defaultWrap
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Prompt

	return tuiModel{
		bot:       bot,
		styles:    styles,
		renderer:  renderer,
		logger:    logger,
		textinput: ti,
		viewport:  viewport.New(defaultWrap, 20),
		spinner:   sp,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Debug("tui closed by key", zap.String("key", msg.String()))
			return m, tea.Quit

		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textinput.Value())
			m.textinput.Reset()
			if input == "" {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.execute(input), m.spinner.Tick)
		}

		if !m.busy {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - headerHeight - footerHeight - inputHeight
		if height < 1 {
			height = 1
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = height
		m.textinput.Width = msg.Width - 6
		m.ready = true
		m.refresh()

	case replyMsg:
		m.busy = false
		m.history = append(m.history, exchange(msg))
		m.refresh()
		if msg.reply.Exit {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var spCmd tea.Cmd
		m.spinner, spCmd = m.spinner.Update(msg)
		return m, spCmd
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m tuiModel) execute(input string) tea.Cmd {
	bot := m.bot
	return func() tea.Msg {
		return replyMsg{input: input, reply: bot.Execute(input)}
	}
}

func (m *tuiModel) refresh() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m tuiModel) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Muted.Render(msgWelcome))
	sb.WriteString("\n\n")

	for _, ex := range m.history {
		sb.WriteString(m.styles.Prompt.Render("> ") + m.styles.UserInput.Render(ex.input))
		sb.WriteString("\n")
		if ex.reply.Text == "" {
			continue
		}
		if ex.reply.Markdown {
			sb.WriteString(renderMarkdown(m.renderer, ex.reply.Text))
		} else {
			sb.WriteString(m.styles.Reply.Render(ex.reply.Text))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m tuiModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.styles.Header.Render("Assistant bot") + "\n" + m.styles.RenderDivider(m.width)

	body := m.viewport.View()
	if m.busy {
		body += "\n" + m.spinner.View() + " Working..."
	}

	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1).
		Render(m.textinput.View())

	footer := m.styles.Footer.Render("help: commands · Enter: send · Esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, footer)
}

// runTUI runs the full-screen interface until the user quits or ctx ends.
func runTUI(ctx context.Context, s *session) error {
	model := newTUIModel(s.bot, s.styles, s.renderer, s.log(logging.CategoryUI))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
