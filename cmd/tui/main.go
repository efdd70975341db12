package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledger/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/ledger/internal/config"
	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/ledger/internal/inventory/store"
	"github.com/MrJamesThe3rd/ledger/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/ledger/internal/invoice/store"
	"github.com/MrJamesThe3rd/ledger/internal/report"
	reportStore "github.com/MrJamesThe3rd/ledger/internal/report/store"
)

type model struct {
	reportService    *report.Service
	inventoryService *inventory.Service
	invoiceService   *invoice.Service
	importService    *importer.Service

	currentView View

	dashboardView view.DashboardModel
	inventoryView view.InventoryModel
	invoiceView   view.InvoiceModel
	importView    view.ImportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewInventory View = 2
	ViewInvoices  View = 3
	ViewImport    View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	reportSvc := report.NewService(reportStore.New(db))
	inventorySvc := inventory.NewService(inventoryStore.New(db))
	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	impSvc := importer.NewService()

	return model{
		reportService:    reportSvc,
		inventoryService: inventorySvc,
		invoiceService:   invoiceSvc,
		importService:    impSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(reportSvc),
		inventoryView:    view.NewInventoryModel(inventorySvc),
		invoiceView:      view.NewInvoiceModel(invoiceSvc),
		importView:       view.NewImportModel(inventorySvc, impSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reportService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewInventory
				m.inventoryView = view.NewInventoryModel(m.inventoryService)

				return m, m.inventoryView.Init()
			case "3":
				m.currentView = ViewInvoices
				m.invoiceView = view.NewInvoiceModel(m.invoiceService)

				return m, m.invoiceView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.inventoryService, m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewInventory:
		var newModel tea.Model
		newModel, cmd = m.inventoryView.Update(msg)
		m.inventoryView = newModel.(view.InventoryModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoiceView.Update(msg)
		m.invoiceView = newModel.(view.InvoiceModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ERP TUI\n\n" +
				"1. Dashboard\n" +
				"2. Inventory\n" +
				"3. Invoices\n" +
				"4. Import Stock Sheet\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.withHelp(m.dashboardView)
	case ViewInventory:
		return m.withHelp(m.inventoryView)
	case ViewInvoices:
		return m.withHelp(m.invoiceView)
	case ViewImport:
		return m.withHelp(m.importView)
	}

	return "Unknown View"
}

func (m model) withHelp(v view.View) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(v.Title())
	help := lipgloss.NewStyle().Faint(true).Render(v.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, v.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
