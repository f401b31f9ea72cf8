package tui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ChristianF88/radixsort/output"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App represents the TUI application
type App struct {
	app          *tview.Application
	pages        *tview.Pages
	progressView *tview.TextView
	resultsView  *tview.Flex
	statusBar    *tview.TextView

	// Results panels
	summary        *tview.TextView
	cases          *tview.Table
	details        *tview.TextView
	diagnostics    *tview.TextView
	focusableItems []tview.Primitive
	currentFocus   int

	title string

	// Shared mutable state protected by mu (accessed from the harness goroutine)
	mu       sync.Mutex
	report   *output.JSONOutput
	progress progressState
	rows     []caseRow

	complete atomic.Bool
	failed   atomic.Bool

	// Detail text per table row, built on first selection
	detailCache *textCache
}

// NewApp creates a new TUI application
func NewApp(title string) *App {
	app := &App{
		app:         tview.NewApplication(),
		pages:       tview.NewPages(),
		title:       title,
		detailCache: newTextCache(),
	}
	app.setupUI()
	return app
}

// AddCase records a finished case. It matches the harness progress callback.
func (a *App) AddCase(suite string, done, total int, c output.CaseResult) {
	a.mu.Lock()
	a.progress.record(suite, done, total, c)
	text := progressText(a.title, a.progress)
	a.mu.Unlock()

	a.app.QueueUpdateDraw(func() {
		a.progressView.SetText(text)
	})
}

// SetReport shows the finished report and switches to the results page.
func (a *App) SetReport(report *output.JSONOutput) {
	if report == nil {
		return
	}

	a.mu.Lock()
	a.report = report
	a.rows = flattenCases(report)
	a.mu.Unlock()
	a.detailCache.reset()

	a.complete.Store(true)

	a.app.QueueUpdateDraw(func() {
		a.displayResults()
		a.updateStatusBar()
		a.pages.SwitchToPage("results")
	})
}

// ShowError displays an error message in the TUI
func (a *App) ShowError(message string) {
	a.failed.Store(true)
	a.app.QueueUpdateDraw(func() {
		a.progressView.SetText(fmt.Sprintf("[red]Error:[white] %s\n\n[yellow]Press 'q' to quit[white]", message))
		a.statusBar.SetText("[red]Benchmark failed![white] | Press 'q' to quit")
		a.pages.SwitchToPage("progress")
	})
}

// Run starts the TUI application and blocks until it is stopped
func (a *App) Run() error {
	return a.app.Run()
}

// Stop ends the TUI event loop
func (a *App) Stop() {
	a.app.Stop()
}

// setupUI initializes the user interface
func (a *App) setupUI() {
	a.progressView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false).
		SetWrap(false)
	a.progressView.SetBorder(true).SetTitle(" Benchmark Progress ").SetTitleAlign(tview.AlignCenter)
	a.progressView.SetText(progressText(a.title, a.progress))

	a.resultsView = tview.NewFlex().SetDirection(tview.FlexRow)
	a.setupResultsView()

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]Benchmark running...[white] | Press 'q' to quit")
	a.statusBar.SetBorder(false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.progressView, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	results := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.resultsView, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.pages.AddPage("progress", main, true, true)
	a.pages.AddPage("results", results, true, false)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			a.app.Stop()
			return nil
		case 'r', 'R':
			if a.complete.Load() {
				a.pages.SwitchToPage("results")
				a.updateStatusBar()
			}
			return nil
		case 'p', 'P':
			a.pages.SwitchToPage("progress")
			a.updateStatusBar()
			return nil
		}

		frontPageName, _ := a.pages.GetFrontPage()
		if a.complete.Load() && frontPageName == "results" {
			switch event.Key() {
			case tcell.KeyTab:
				a.nextFocus()
				return nil
			case tcell.KeyBacktab:
				a.prevFocus()
				return nil
			}
		}
		return event
	})

	a.app.SetRoot(a.pages, true)
}

// setupResultsView creates the results display layout
func (a *App) setupResultsView() {
	a.summary = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.summary.SetBorder(true).SetTitle(" Summary ").SetTitleAlign(tview.AlignLeft)

	a.cases = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.cases.SetBorder(true).SetTitle(" Cases ").SetTitleAlign(tview.AlignLeft)
	a.cases.SetSelectionChangedFunc(func(row, _ int) {
		a.showDetails(row - 1)
	})

	a.details = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	a.details.SetBorder(true).SetTitle(" Details ").SetTitleAlign(tview.AlignLeft)

	a.diagnostics = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	a.diagnostics.SetBorder(true).SetTitle(" Diagnostics ").SetTitleAlign(tview.AlignLeft)

	a.focusableItems = []tview.Primitive{a.cases, a.details, a.diagnostics}
	a.currentFocus = 0
	a.updateFocusBorders()

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.details, 0, 2, false).
		AddItem(a.diagnostics, 0, 1, false)

	bottomRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(a.cases, 0, 2, true).
		AddItem(side, 0, 1, false)

	a.resultsView.
		AddItem(a.summary, 7, 0, false).
		AddItem(bottomRow, 0, 1, true)
}

// displayResults populates the results view from the report
func (a *App) displayResults() {
	a.mu.Lock()
	report := a.report
	rows := a.rows
	a.mu.Unlock()
	if report == nil {
		return
	}

	a.summary.SetText(summaryText(report))
	a.diagnostics.SetText(diagnosticsText(report))

	a.cases.Clear()
	for col, header := range tableHeaders {
		a.cases.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}
	for i, row := range rows {
		for col, text := range row.cells() {
			cell := tview.NewTableCell(text).SetExpansion(1)
			if !row.c.Verified {
				cell.SetTextColor(tcell.ColorRed)
			}
			a.cases.SetCell(i+1, col, cell)
		}
	}
	if len(rows) > 0 {
		a.cases.Select(1, 0)
		a.showDetails(0)
	}
}

func (a *App) showDetails(index int) {
	a.mu.Lock()
	rows := a.rows
	a.mu.Unlock()
	if index < 0 || index >= len(rows) {
		return
	}
	text := a.detailCache.get(index, func() string {
		return detailText(rows[index])
	})
	a.details.SetText(text).ScrollToBeginning()
}

func (a *App) nextFocus() {
	a.currentFocus = (a.currentFocus + 1) % len(a.focusableItems)
	a.updateFocusBorders()
	a.updateStatusBar()
}

func (a *App) prevFocus() {
	a.currentFocus = (a.currentFocus - 1 + len(a.focusableItems)) % len(a.focusableItems)
	a.updateFocusBorders()
	a.updateStatusBar()
}

var panelNames = []string{"Cases", "Details", "Diagnostics"}

func (a *App) updateFocusBorders() {
	for i, item := range a.focusableItems {
		box, ok := item.(interface {
			SetBorderColor(tcell.Color) *tview.Box
			SetTitle(string) *tview.Box
		})
		if !ok {
			continue
		}
		if i == a.currentFocus {
			box.SetBorderColor(tcell.ColorYellow).SetTitle(fmt.Sprintf(" [::b]%s[FOCUSED] ", panelNames[i]))
			a.app.SetFocus(item)
		} else {
			box.SetBorderColor(tcell.ColorDefault).SetTitle(fmt.Sprintf(" %s ", panelNames[i]))
		}
	}
}

func (a *App) updateStatusBar() {
	if a.failed.Load() {
		a.statusBar.SetText("[red]Benchmark failed![white] | Press 'q' to quit")
		return
	}
	if !a.complete.Load() {
		a.statusBar.SetText("[yellow]Benchmark running...[white] | 'r' for results, 'q' to quit")
		return
	}
	frontPageName, _ := a.pages.GetFrontPage()
	if frontPageName == "progress" {
		a.statusBar.SetText("[green]Benchmark complete![white] | 'r': results, 'q': quit")
		return
	}
	a.statusBar.SetText(fmt.Sprintf("[green]Benchmark complete![white] | [yellow]%s[white] focused | Tab/Shift+Tab: panels, ↑↓: select, 'p': progress, 'q': quit",
		panelNames[a.currentFocus]))
}
