package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/writ/export"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInteractiveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Pick exports and enter arguments in a terminal UI",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if !stdinIsTerminal() || !stdoutIsTerminal() {
				return fmt.Errorf("interactive mode requires a terminal")
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.close(); err == nil {
					err = cerr
				}
			}()

			m := newInteractiveModel(cmd.Context(), a.registry, a.cfg.Policy, a.cfg.Sample)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	ctx      context.Context
	err      error
	registry *export.Registry
	calling  *export.Export
	header   string
	result   string
	exports  []*export.Export
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type callResultMsg struct {
	err    error
	exp    *export.Export
	result string
}

func newInteractiveModel(ctx context.Context, reg *export.Registry, policy, sample string) *interactiveModel {
	return &interactiveModel{
		ctx:      ctx,
		registry: reg,
		exports:  reg.Exports(),
		header:   fmt.Sprintf("policy=%s sample=%s", policy, sample),
		state:    stateSelectFunc,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.exports)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.exports) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callCmd()
				}
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.callCmd()

			case stateShowResult:
				m.reset()
				return m, nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs, stateShowResult:
				m.reset()
				return m, nil
			}
		}

	case callResultMsg:
		// Results of calls abandoned with esc are dropped.
		if msg.exp != m.calling {
			return m, nil
		}
		m.calling = nil
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectFunc
	m.calling = nil
	m.inputs = nil
	m.result = ""
	m.err = nil
}

func (m *interactiveModel) prepareInputs() {
	exp := m.exports[m.selected]
	m.inputs = make([]textinput.Model, len(exp.Signature.Params))
	for i, p := range exp.Signature.Params {
		ti := textinput.New()
		ti.Placeholder = export.TypeString(p.Type)
		ti.Prompt = p.Name + ": "
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// callCmd snapshots the selected export and the raw input values, so the
// returned command never touches the model.
func (m *interactiveModel) callCmd() tea.Cmd {
	exp := m.exports[m.selected]
	raw := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		raw[i] = input.Value()
	}
	m.calling = exp
	ctx, reg := m.ctx, m.registry
	return func() tea.Msg {
		return callExport(ctx, reg, exp, raw)
	}
}

// callExport decodes each input as JSON and calls exp.
func callExport(ctx context.Context, reg *export.Registry, exp *export.Export, raw []string) callResultMsg {
	msg := callResultMsg{exp: exp}
	args, err := parseArgs(raw)
	if err != nil {
		msg.err = err
		return msg
	}

	result, err := reg.Call(ctx, exp, args...)
	if err != nil {
		msg.err = err
		return msg
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		msg.err = err
		return msg
	}
	msg.result = string(data)
	return msg
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("writ"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(m.header))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select an export to call:\n\n")
		for i, exp := range m.exports {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + exp.Name))
				b.WriteString(" ")
				b.WriteString(m.formatSignature(exp))
			} else {
				b.WriteString("  " + funcStyle.Render(exp.Name) + " " + m.formatSignature(exp))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		exp := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(exp.Name)))
		for _, def := range exp.Signature.RecordDefs() {
			b.WriteString(typeStyle.Render(def))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("arguments are JSON • tab next field • enter call • esc back"))

	case stateShowResult:
		exp := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(exp.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatSignature(exp *export.Export) string {
	var params []string
	for _, p := range exp.Signature.Params {
		params = append(params, p.Name+": "+typeStyle.Render(export.TypeString(p.Type)))
	}
	result := ""
	if exp.Signature.Result != nil {
		result = " -> " + typeStyle.Render(export.TypeString(exp.Signature.Result))
	}
	return "(" + strings.Join(params, ", ") + ")" + result
}
