// Package console is the interactive menu in front of a chainhash.Table.
//
// It owns everything terminal related: reading the menu choice and free-text
// keys and values, the rehash confirmation, colors and table rendering. The
// table itself is only reached through its public methods.
package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chainhash"
)

type state int

const (
	stateMenu state = iota
	stateInsertKey
	stateInsertValue
	stateRemoveKey
	stateLookupKey
	stateTable
	stateRehashConfirm
)

// Menu choices
const (
	choiceExit    = 0
	choiceInsert  = 1
	choiceRemove  = 2
	choiceShow    = 3
	choiceRehash  = 4
	choiceLookup  = 5
	invalidChoice = -1
)

type statusKind int

const (
	statusOK statusKind = iota
	statusError
	statusNotice
)

const rehashConfirmation = "Y"

const menuText = `Menu:
1. Add entry
2. Remove entry
3. Show table
4. Rehash
5. Look up key
0. Exit`

// Model is the bubbletea model of the menu
type Model struct {
	table *chainhash.Table
	log   log.FieldLogger
	input textinput.Model
	help  help.Model
	keys  keyMap

	state      state
	pendingKey string
	status     string
	statusKind statusKind
	quitting   bool
}

// NewModel returns a menu driving t. Every operation is logged to logger.
func NewModel(t *chainhash.Table, logger log.FieldLogger) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	m := Model{
		table: t,
		log:   logger,
		input: ti,
		help:  help.New(),
		keys:  keys,
	}
	m.enter(stateMenu)
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one key press: ctrl+c quits, esc returns to the menu, enter
// submits the prompt for the current screen and anything else is typed into it
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()

		case key.Matches(msg, m.keys.Back):
			if m.state != stateMenu {
				m.setStatus("Cancelled", statusNotice)
				m.enter(stateMenu)
			}
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			value := m.input.Value()
			m.input.Reset()
			return m.submit(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.choose(parseChoice(value))

	case stateInsertKey:
		m.pendingKey = value
		m.enter(stateInsertValue)

	case stateInsertValue:
		m.table.Insert(m.pendingKey, value)
		idx := m.table.IndexOf(m.pendingKey)
		m.log.WithFields(log.Fields{
			"key":    m.pendingKey,
			"bucket": idx,
			"size":   m.table.Len(),
		}).Info("entry inserted")
		m.setStatus(fmt.Sprintf("Key %q added to bucket %d", m.pendingKey, idx), statusOK)
		m.pendingKey = ""
		m.enter(stateMenu)

	case stateRemoveKey:
		if m.table.TryRemove(value) {
			m.log.WithField("key", value).Info("entry removed")
			m.setStatus(fmt.Sprintf("Key %q removed", value), statusOK)
		} else {
			m.log.WithField("key", value).Debug("remove: key not found")
			m.setStatus(fmt.Sprintf("Key %q not found", value), statusError)
		}
		m.enter(stateMenu)

	case stateLookupKey:
		if v, ok := m.table.Get(value); ok {
			m.log.WithField("key", value).Debug("lookup hit")
			m.setStatus(fmt.Sprintf("%s: %s", value, v), statusOK)
		} else {
			m.log.WithField("key", value).Debug("lookup miss")
			m.setStatus(fmt.Sprintf("Key %q not found", value), statusError)
		}
		m.enter(stateMenu)

	case stateRehashConfirm:
		if strings.TrimSpace(value) == rehashConfirmation {
			before := m.table.Capacity()
			m.table.Rehash()
			m.log.WithFields(log.Fields{
				"from": before,
				"to":   m.table.Capacity(),
				"size": m.table.Len(),
			}).Info("table rehashed")
			m.setStatus(fmt.Sprintf("Rehash completed, capacity %d -> %d", before, m.table.Capacity()), statusOK)
		} else {
			m.log.Debug("rehash not confirmed")
			m.setStatus("Invalid input. Rehash was not performed", statusError)
		}
		m.enter(stateMenu)

	case stateTable:
		m.enter(stateMenu)
	}

	return m, nil
}

func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	m.status = ""
	switch choice {
	case choiceInsert:
		m.enter(stateInsertKey)
	case choiceRemove:
		m.enter(stateRemoveKey)
	case choiceShow:
		m.log.WithField("capacity", m.table.Capacity()).Debug("table displayed")
		m.enter(stateTable)
	case choiceRehash:
		m.enter(stateRehashConfirm)
	case choiceLookup:
		m.enter(stateLookupKey)
	case choiceExit:
		return m.quit()
	default:
		m.setStatus("Invalid choice. Try again.", statusError)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.log.WithField("size", m.table.Len()).Info("session ended")
	m.table.Clear()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) enter(s state) {
	m.state = s
	m.input.Reset()
	switch s {
	case stateMenu:
		m.input.Placeholder = "choice"
	case stateInsertKey, stateRemoveKey, stateLookupKey:
		m.input.Placeholder = "key"
	case stateInsertValue:
		m.input.Placeholder = "value"
	case stateRehashConfirm:
		m.input.Placeholder = rehashConfirmation
	case stateTable:
		m.input.Placeholder = ""
	}
}

func (m *Model) setStatus(text string, kind statusKind) {
	m.status = text
	m.statusKind = kind
}

// parseChoice accepts only plain decimal digits; anything else is invalid
func parseChoice(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalidChoice
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return invalidChoice
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return invalidChoice
	}
	return n
}

// View renders the current screen, the last status message and the key help
func (m Model) View() string {
	if m.quitting {
		return "Exiting.\n"
	}

	var sb strings.Builder

	switch m.state {
	case stateMenu:
		sb.WriteString(renderHeader(menuText))
		sb.WriteString(promptStyle.Render("Choose an action: "))
	case stateInsertKey:
		sb.WriteString(renderHeader("Add entry"))
		sb.WriteString("Enter key: ")
	case stateInsertValue:
		sb.WriteString(renderHeader("Add entry"))
		fmt.Fprintf(&sb, "Key: %s\nEnter value: ", m.pendingKey)
	case stateRemoveKey:
		sb.WriteString(renderHeader("Remove entry"))
		sb.WriteString("Enter key to remove: ")
	case stateLookupKey:
		sb.WriteString(renderHeader("Look up key"))
		sb.WriteString("Enter key: ")
	case stateRehashConfirm:
		sb.WriteString(renderHeader("Rehash table"))
		fmt.Fprintf(&sb, "Enter:\n%s - perform rehash\n", rehashConfirmation)
	case stateTable:
		sb.WriteString(renderHeader("Table contents"))
		sb.WriteString(RenderTable(m.table.Enumerate()))
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render(RenderSummary(m.table)))
		sb.WriteString("\n\n")
		sb.WriteString(hintStyle.Render("Press Enter to continue..."))
	}

	if m.state != stateTable {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n\n")

	if m.status != "" {
		switch m.statusKind {
		case statusError:
			sb.WriteString(errorStyle.Render(m.status))
		case statusNotice:
			sb.WriteString(hintStyle.Render(m.status))
		default:
			sb.WriteString(successStyle.Render(m.status))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}
