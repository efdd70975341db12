package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	"github.com/MrJamesThe3rd/ledger/internal/page"
)

type inventoryState int

const (
	inventoryStateBrowse inventoryState = iota
	inventoryStateEdit
)

type InventoryModel struct {
	CommonModel
	inventoryService *inventory.Service

	state inventoryState
	table table.Model
	items []*inventory.Item
	shown []*inventory.Item
	form  *huh.Form

	page         page.Page
	lowStockOnly bool
	loading      bool
	err          error
	status       string

	// Form bindings are pointers so every copy of the model sees the form's writes.
	formQuantity *string
	formLocation *string
}

func NewInventoryModel(inventorySvc *inventory.Service) InventoryModel {
	columns := []table.Column{
		{Title: "SKU", Width: 12},
		{Title: "Name", Width: 28},
		{Title: "Category", Width: 14},
		{Title: "Quantity", Width: 12},
		{Title: "Min", Width: 8},
		{Title: "Location", Width: 14},
		{Title: "Value", Width: 18},
	}

	return InventoryModel{
		inventoryService: inventorySvc,
		table:            newTable(columns),
		page:             page.Default(),
		loading:          true,
	}
}

func (m InventoryModel) Title() string { return "Inventory" }

func (m InventoryModel) ShortHelp() string {
	if m.state == inventoryStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit | l: low stock | n/p: page | r: refresh"
}

func (m InventoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInventoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.items = msg.items
		m.refreshTable()

		return m, nil

	case inventorySaveMsg:
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = inventoryStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case inventoryStateBrowse:
		return m.updateBrowse(msg)
	case inventoryStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m InventoryModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		case "l":
			m.lowStockOnly = !m.lowStockOnly
			m.refreshTable()

			return m, nil
		case "n":
			if len(m.items) < m.page.Limit {
				return m, nil
			}

			m.page.Skip += m.page.Limit
			m.loading = true

			return m, m.loadCmd()
		case "p":
			if m.page.Skip == 0 {
				return m, nil
			}

			m.page.Skip = max(0, m.page.Skip-m.page.Limit)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InventoryModel) selected() *inventory.Item {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.shown) {
		return nil
	}

	return m.shown[idx]
}

func (m InventoryModel) enterEditMode() (tea.Model, tea.Cmd) {
	item := m.selected()
	if item == nil {
		return m, nil
	}

	m.formQuantity = new(item.Quantity.String())
	m.formLocation = new(item.Location)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("quantity").
				Title("Quantity (" + item.Unit + ")").
				Value(m.formQuantity).
				Validate(validateQuantity),

			huh.NewInput().
				Key("location").
				Title("Location").
				Value(m.formLocation),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = inventoryStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func validateQuantity(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("quantity must be a number")
	}

	if d.IsNegative() {
		return errors.New("quantity cannot be negative")
	}

	return nil
}

func (m InventoryModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = inventoryStateBrowse
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

	return m, m.saveCmd()
}

func (m InventoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading inventory...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	filter := "All"
	if m.lowStockOnly {
		filter = "Low stock"
	}

	header := fmt.Sprintf("Filter: [l] %s | Rows %d-%d",
		activeStyle(filter), m.page.Skip+1, m.page.Skip+len(m.items))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == inventoryStateEdit && m.form != nil {
		name := ""
		if item := m.selected(); item != nil {
			name = item.Name + " (" + item.SKU + ")"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Edit Item\n\n%s\n\n%s", name, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InventoryModel) refreshTable() {
	m.shown = make([]*inventory.Item, 0, len(m.items))

	for _, item := range m.items {
		if m.lowStockOnly && !item.LowStock() {
			continue
		}

		m.shown = append(m.shown, item)
	}

	rows := make([]table.Row, 0, len(m.shown))
	for _, item := range m.shown {
		qty := item.Quantity.String() + " " + item.Unit
		if item.LowStock() {
			qty = "! " + qty
		}

		rows = append(rows, table.Row{
			item.SKU,
			item.Name,
			item.Category,
			qty,
			item.MinimumStock.String(),
			item.Location,
			FormatMoney(item.Value()),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Messages

type loadInventoryMsg struct {
	items []*inventory.Item
	err   error
}

func (m InventoryModel) loadCmd() tea.Cmd {
	p := m.page

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.inventoryService.List(ctx, p)

		return loadInventoryMsg{items: items, err: err}
	}
}

type inventorySaveMsg struct {
	err error
}

func (m InventoryModel) saveCmd() tea.Cmd {
	item := m.selected()
	if item == nil {
		return nil
	}

	id := item.ID
	qty, err := decimal.NewFromString(strings.TrimSpace(*m.formQuantity))
	if err != nil {
		return func() tea.Msg { return inventorySaveMsg{err: err} }
	}

	location := *m.formLocation

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.inventoryService.Update(ctx, id, inventory.UpdateParams{
			Quantity: &qty,
			Location: &location,
		})

		return inventorySaveMsg{err: err}
	}
}
