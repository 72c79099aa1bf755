package main

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/writ/export"
)

func newTestModel(t *testing.T, name string) *interactiveModel {
	t.Helper()
	reg := export.NewRegistry()
	if err := reg.RegisterHost(export.NewRecordHost(nil)); err != nil {
		t.Fatal(err)
	}
	m := newInteractiveModel(context.Background(), reg, "age-by-ten", "populated")
	for i, exp := range m.exports {
		if exp.Name == name {
			m.selected = i
			return m
		}
	}
	t.Fatalf("export %s not registered", name)
	return nil
}

func press(m *interactiveModel, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func TestInteractive_Call(t *testing.T) {
	m := newTestModel(t, "construct-flat")

	press(m, tea.KeyEnter)
	if m.state != stateInputArgs || len(m.inputs) != 2 {
		t.Fatalf("state = %v with %d inputs", m.state, len(m.inputs))
	}
	m.inputs[0].SetValue(`"Alice"`)
	m.inputs[1].SetValue(`30`)

	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should return a call command")
	}
	m.Update(cmd())

	if m.state != stateShowResult || m.err != nil {
		t.Fatalf("state = %v, err = %v", m.state, m.err)
	}
	if !strings.Contains(m.result, `"age": 30`) {
		t.Errorf("result = %s", m.result)
	}
}

func TestInteractive_CallAfterEsc(t *testing.T) {
	m := newTestModel(t, "construct-flat")

	press(m, tea.KeyEnter)
	m.inputs[0].SetValue(`"Bob"`)
	m.inputs[1].SetValue(`5`)
	cmd := press(m, tea.KeyEnter)

	// Leave the form before the command runs; the command must still see
	// the values it was issued with.
	press(m, tea.KeyEsc)
	if m.inputs != nil {
		t.Fatal("esc should clear the inputs")
	}

	msg, ok := cmd().(callResultMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if msg.err != nil || !strings.Contains(msg.result, `"name": "Bob"`) {
		t.Errorf("result = %q, err = %v", msg.result, msg.err)
	}

	m.Update(msg)
	if m.state != stateSelectFunc || m.result != "" {
		t.Errorf("abandoned result was shown: state = %v, result = %q", m.state, m.result)
	}
}

func TestInteractive_NoArgExport(t *testing.T) {
	m := newTestModel(t, "sample-collection")

	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should call an export without parameters")
	}
	m.Update(cmd())

	if m.state != stateShowResult || !strings.Contains(m.result, "star wars 1") {
		t.Errorf("state = %v, result = %q", m.state, m.result)
	}
}
