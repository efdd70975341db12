package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

const (
	importTimeout = 2 * time.Minute

	// maxShownErrors caps the field errors listed after a rejected import.
	maxShownErrors = 15
)

type importState int

const (
	importStateFormatSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	inventoryService *inventory.Service
	importService    *importer.Service

	state          importState
	filePicker     filepicker.Model
	selectedFormat importer.Format
	formatOptions  []importer.Format
	formatCursor   int

	status string
	fields []apperr.FieldError
	err    error
}

func NewImportModel(inventorySvc *inventory.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		inventoryService: inventorySvc,
		importService:    impSvc,
		filePicker:       fp,
		formatOptions:    impSvc.Formats(),
	}
}

func (m ImportModel) Title() string { return "Import Stock Sheet" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateFormatSelect {
			return m.updateFormatSelect(msg)
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.fields = nil

		if msg.err == nil {
			m.status = fmt.Sprintf("Imported %d inventory items.", msg.count)
			return m, nil
		}

		var ve *apperr.ValidationError
		if errors.As(msg.err, &ve) {
			m.status = fmt.Sprintf("Import rejected, %d problem(s) found. Nothing was stored.", len(ve.Fields))
			m.fields = ve.Fields

			return m, nil
		}

		m.status = fmt.Sprintf("Error: %v", msg.err)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateFormatSelect
		return m, nil
	case importStateResult:
		m.state = importStateFormatSelect
		m.err = nil
		m.fields = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateFormatSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.formatCursor > 0 {
			m.formatCursor--
		}
	case tea.KeyDown:
		if m.formatCursor < len(m.formatOptions)-1 {
			m.formatCursor++
		}
	case tea.KeyEnter:
		if len(m.formatOptions) == 0 {
			return m, nil
		}

		m.selectedFormat = m.formatOptions[m.formatCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFormatSelect:
		return m.viewFormatSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select stock sheet to import (%s):\n\n%s", m.selectedFormat, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewFormatSelect() string {
	s := "Select Format:\n\n"

	for i, f := range m.formatOptions {
		cursor := " "
		if i == m.formatCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, strings.ToUpper(string(f)))
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err == nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	var b strings.Builder

	b.WriteString(errorStyle(m.status))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		if i == maxShownErrors {
			fmt.Fprintf(&b, "... and %d more\n", len(m.fields)-maxShownErrors)
			break
		}

		fmt.Fprintf(&b, "%s  %s\n", activeStyle(f.Field), f.Message)
	}

	b.WriteString("\n(Esc to go back)")

	return style.Render(b.String())
}

// Messages

type importResultMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	format := m.selectedFormat

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		rows, err := m.importService.Parse(format, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		items, err := m.inventoryService.Import(ctx, rows)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{count: len(items)}
	}
}
