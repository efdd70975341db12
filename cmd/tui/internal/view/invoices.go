package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

type invoiceState int

const (
	invoiceStateBrowse invoiceState = iota
	invoiceStateStatus
)

var invoiceStatuses = []invoice.Status{
	invoice.StatusDraft,
	invoice.StatusSent,
	invoice.StatusPaid,
	invoice.StatusOverdue,
	invoice.StatusCancelled,
}

type InvoiceModel struct {
	CommonModel
	invoiceService *invoice.Service

	state    invoiceState
	table    table.Model
	invoices []*invoice.Invoice
	shown    []*invoice.Invoice
	form     *huh.Form

	// 0 shows every status, otherwise invoiceStatuses[statusFilterIdx-1].
	statusFilterIdx int
	showItems       bool

	loading bool
	err     error
	status  string

	formStatus *invoice.Status
}

func NewInvoiceModel(invoiceSvc *invoice.Service) InvoiceModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Customer", Width: 9},
		{Title: "Issued", Width: 12},
		{Title: "Due", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Net", Width: 18},
		{Title: "VAT", Width: 16},
		{Title: "Total", Width: 18},
	}

	return InvoiceModel{
		invoiceService: invoiceSvc,
		table:          newTable(columns),
		loading:        true,
	}
}

func (m InvoiceModel) Title() string { return "Invoices" }

func (m InvoiceModel) ShortHelp() string {
	if m.state == invoiceStateStatus {
		return "Select status | Esc: cancel"
	}

	return "Esc: back | s: set status | f: status filter | Enter: items | r: refresh"
}

func (m InvoiceModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case invoiceStatusMsg:
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = invoiceStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoiceStateBrowse:
		return m.updateBrowse(msg)
	case invoiceStateStatus:
		return m.updateStatusForm(msg)
	}

	return m, nil
}

func (m InvoiceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter":
			m.showItems = !m.showItems
			return m, nil
		case "f":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(invoiceStatuses) + 1)
			m.refreshTable()

			return m, nil
		case "s":
			return m.enterStatusMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoiceModel) selected() *invoice.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.shown) {
		return nil
	}

	return m.shown[idx]
}

func (m InvoiceModel) enterStatusMode() (tea.Model, tea.Cmd) {
	inv := m.selected()
	if inv == nil {
		return m, nil
	}

	m.formStatus = new(inv.Status)

	options := make([]huh.Option[invoice.Status], len(invoiceStatuses))
	for i, s := range invoiceStatuses {
		options[i] = huh.NewOption(string(s), s)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[invoice.Status]().
				Key("status").
				Title(fmt.Sprintf("Invoice #%d status", inv.ID)).
				Options(options...).
				Value(m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = invoiceStateStatus
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoiceModel) updateStatusForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = invoiceStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveStatusCmd()
}

func (m InvoiceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	filter := "All"
	if m.statusFilterIdx > 0 {
		filter = string(invoiceStatuses[m.statusFilterIdx-1])
	}

	header := fmt.Sprintf("Filter: [f] Status: %s | %d invoices", activeStyle(filter), len(m.shown))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	panelStyle := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(52)

	switch {
	case m.state == invoiceStateStatus && m.form != nil:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(m.form.View()))
	case m.showItems:
		if inv := m.selected(); inv != nil {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(itemsPanel(inv)))
		}
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func itemsPanel(inv *invoice.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Invoice #%d items\n\n", inv.ID)

	if len(inv.Items) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("No items."))
		b.WriteString("\n")
	}

	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%s\n  %s x %s = %s\n", it.ItemName, it.Quantity, it.UnitPrice.StringFixed(2), FormatMoney(it.LineTotal))
	}

	fmt.Fprintf(&b, "\nNet   %s\nVAT   %s\nTotal %s",
		FormatMoney(inv.TotalAmount),
		FormatMoney(inv.VATAmount),
		FormatMoney(inv.TotalAmountWithVAT),
	)

	return b.String()
}

func (m *InvoiceModel) refreshTable() {
	m.shown = make([]*invoice.Invoice, 0, len(m.invoices))

	for _, inv := range m.invoices {
		if m.statusFilterIdx > 0 && inv.Status != invoiceStatuses[m.statusFilterIdx-1] {
			continue
		}

		m.shown = append(m.shown, inv)
	}

	rows := make([]table.Row, 0, len(m.shown))
	for _, inv := range m.shown {
		rows = append(rows, table.Row{
			fmt.Sprint(inv.ID),
			fmt.Sprint(inv.CustomerID),
			FormatDate(inv.IssueDate),
			FormatDate(inv.DueDate),
			string(inv.Status),
			FormatMoney(inv.TotalAmount),
			FormatMoney(inv.VATAmount),
			FormatMoney(inv.TotalAmountWithVAT),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoiceModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.invoiceService.List(ctx, invoice.ListFilter{}, page.Default())

		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

type invoiceStatusMsg struct {
	err error
}

func (m InvoiceModel) saveStatusCmd() tea.Cmd {
	inv := m.selected()
	if inv == nil {
		return nil
	}

	id := inv.ID
	status := *m.formStatus

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.invoiceService.UpdateStatus(ctx, id, status)

		return invoiceStatusMsg{err: err}
	}
}
