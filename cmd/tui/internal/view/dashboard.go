package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledger/internal/page"
	"github.com/MrJamesThe3rd/ledger/internal/report"
)

const lowStockPreview = 10

type DashboardModel struct {
	CommonModel
	reportService *report.Service

	dashboard *report.Dashboard
	lowStock  []*report.LowStockItem
	loading   bool
	err       error
}

func NewDashboardModel(reportSvc *report.Service) DashboardModel {
	return DashboardModel{
		reportService: reportSvc,
		loading:       true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		m.err = msg.err
		m.dashboard = msg.dashboard
		m.lowStock = msg.lowStock

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading dashboard...")
	}

	if m.err != nil {
		return style.Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	box := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63"))

	d := m.dashboard

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render(fmt.Sprintf("Inventory\n\n%d items\n%s", d.Inventory.TotalItems, FormatMoney(d.Inventory.TotalValue))),
		box.Render(fmt.Sprintf("Sales\n\n%d orders", d.Sales.TotalOrders)),
		box.Render(fmt.Sprintf("Purchasing\n\n%d orders", d.Purchasing.TotalOrders)),
		box.Render(fmt.Sprintf("Invoices\n\n%d invoiced\n%s\nOutstanding %s",
			d.Invoices.TotalInvoices,
			FormatMoney(d.Invoices.TotalInvoiced),
			FormatMoney(d.Invoices.Outstanding),
		)),
	)

	var low strings.Builder

	low.WriteString("Low stock\n\n")

	if len(m.lowStock) == 0 {
		low.WriteString(lipgloss.NewStyle().Faint(true).Render("Nothing at or below minimum stock."))
	}

	for _, it := range m.lowStock {
		fmt.Fprintf(&low, "%-12s %-30s %s / %s %s (short %s)\n",
			it.SKU, it.Name, it.Quantity, it.MinimumStock, it.Unit, activeStyle(it.Shortfall().String()))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, cards, "", low.String()))
}

type loadDashboardMsg struct {
	dashboard *report.Dashboard
	lowStock  []*report.LowStockItem
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.reportService.Dashboard(ctx)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		low, err := m.reportService.LowStock(ctx, page.Page{Limit: lowStockPreview})
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		return loadDashboardMsg{dashboard: d, lowStock: low}
	}
}
