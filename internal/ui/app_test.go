package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tickboard/internal/board"
	"tickboard/internal/settings"
	"tickboard/internal/tickets"
	"tickboard/internal/ui/theme"
)

func TestInitIssuesSingleFetch(t *testing.T) {
	src := tickets.NewMockSource(sampleTickets()...)
	app := newTestApp(t, src, settings.NewMemoryStore())

	var loaded []ticketsLoadedMsg
	for _, msg := range collectMsgs(app.Init()) {
		if m, ok := msg.(ticketsLoadedMsg); ok {
			loaded = append(loaded, m)
		}
	}
	if len(loaded) != 1 {
		t.Fatalf("expected one fetch result, got %d", len(loaded))
	}
	if !app.loading {
		t.Fatal("expected loading before the result is applied")
	}

	// A second Init must not fetch again.
	collectMsgs(app.Init())
	if src.Calls() != 1 {
		t.Fatalf("expected exactly one fetch, got %d", src.Calls())
	}

	app.Update(loaded[0])
	if app.loading {
		t.Fatal("expected loading cleared")
	}
	if got := app.Board().Count(); got != 5 {
		t.Fatalf("expected 5 tickets on the board, got %d", got)
	}
}

func TestBoardStartsEmptyBeforeFetch(t *testing.T) {
	app := newTestApp(t, tickets.NewMockSource(sampleTickets()...), nil)
	if !app.Board().Empty() {
		t.Fatalf("expected zero groups before the fetch completes, got %d", len(app.Board().Groups))
	}
}

func TestFailedFetchRendersEmptyBoard(t *testing.T) {
	src := &tickets.MockSource{
		FetchFn: func(context.Context) ([]tickets.Ticket, error) {
			return nil, errors.New("connection refused")
		},
	}
	app := newTestApp(t, src, nil)
	for _, msg := range collectMsgs(app.Init()) {
		if m, ok := msg.(ticketsLoadedMsg); ok {
			_, cmd := app.Update(m)
			if cmd == nil {
				t.Fatal("expected toast tick command after failure")
			}
		}
	}

	if !app.Board().Empty() {
		t.Fatal("expected zero groups after a failed fetch")
	}
	if app.lastError == "" {
		t.Fatal("expected last error recorded")
	}
	if app.toast == nil || app.toast.kind != toastError {
		t.Fatal("expected an error toast")
	}
	if app.loading {
		t.Fatal("expected loading cleared after failure")
	}
}

func TestStaleFetchAfterCloseIsDropped(t *testing.T) {
	app := newTestApp(t, tickets.NewMockSource(sampleTickets()...), nil)
	msgs := collectMsgs(app.Init())
	app.Close()

	for _, msg := range msgs {
		if m, ok := msg.(ticketsLoadedMsg); ok {
			app.Update(m)
		}
	}
	if !app.Board().Empty() {
		t.Fatal("expected result after teardown to be ignored")
	}
}

func TestFetchFromOtherGenerationIsDropped(t *testing.T) {
	app := newTestApp(t, tickets.NewMockSource(), nil)
	collectMsgs(app.Init())

	app.Update(ticketsLoadedMsg{generation: app.generation + 1, tickets: sampleTickets()})
	if !app.Board().Empty() {
		t.Fatal("expected mismatched generation to be ignored")
	}
}

func TestCloseCancelsFetchContext(t *testing.T) {
	started := make(chan struct{})
	src := &tickets.MockSource{
		FetchFn: func(ctx context.Context) ([]tickets.Ticket, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	app := newTestApp(t, src, nil)
	cmd := app.startFetch()

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()
	<-started
	app.Close()

	msg := (<-result).(ticketsLoadedMsg)
	if !errors.Is(msg.err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", msg.err)
	}
	app.Update(msg)
	if app.lastError != "" {
		t.Fatalf("expected cancelled fetch to be dropped, got error %q", app.lastError)
	}
}

func TestNewAppReadsStoredPreferences(t *testing.T) {
	store := settings.NewMemoryStore(map[string]string{
		settings.KeyGroupBy: "user",
		settings.KeySortBy:  "title",
	})
	app := newTestApp(t, nil, store)

	want := board.Preferences{GroupBy: board.GroupByUser, SortBy: board.SortByTitle}
	if got := app.Preferences(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGroupAndOrderKeysWriteThrough(t *testing.T) {
	store := settings.NewMemoryStore()
	app := loadedApp(t, store, sampleTickets()...)
	ctx := context.Background()

	press(app, keyRune('g'))
	wantGroup := board.GroupByStatus.Next()
	if app.Preferences().GroupBy != wantGroup {
		t.Fatalf("expected groupBy %s, got %s", wantGroup, app.Preferences().GroupBy)
	}
	if v, ok, _ := store.Get(ctx, settings.KeyGroupBy); !ok || v != string(wantGroup) {
		t.Fatalf("expected stored groupBy %q, got %q (present=%v)", wantGroup, v, ok)
	}
	if app.Board().GroupBy != wantGroup {
		t.Fatalf("expected board re-derived by %s", wantGroup)
	}

	press(app, keyRune('o'))
	wantSort := board.SortByPriority.Next()
	if v, ok, _ := store.Get(ctx, settings.KeySortBy); !ok || v != string(wantSort) {
		t.Fatalf("expected stored sortBy %q, got %q", wantSort, v)
	}
	if store.Writes() != 2 {
		t.Fatalf("expected one write per change, got %d", store.Writes())
	}
}

func TestStoreFailureKeepsInMemoryChange(t *testing.T) {
	store := settings.NewMemoryStore()
	store.SetErr = errors.New("disk full")
	app := loadedApp(t, store, sampleTickets()...)

	cmd := press(app, keyRune('g'))
	if cmd == nil {
		t.Fatal("expected toast command")
	}
	if app.Preferences().GroupBy != board.GroupByStatus.Next() {
		t.Fatal("expected in-memory change to stand")
	}
	if app.toast == nil || app.toast.kind != toastError {
		t.Fatal("expected error toast for failed write")
	}
}

func TestDisplayOverlayChangesPreferences(t *testing.T) {
	store := settings.NewMemoryStore()
	app := loadedApp(t, store, sampleTickets()...)

	press(app, keyRune('d'))
	if app.displayOverlay == nil {
		t.Fatal("expected display overlay open")
	}

	// Second row is Ordering.
	press(app, tea.KeyMsg{Type: tea.KeyDown})
	for _, msg := range collectMsgs(press(app, tea.KeyMsg{Type: tea.KeyRight})) {
		app.Update(msg)
	}
	if app.Preferences().SortBy != board.SortByTitle {
		t.Fatalf("expected sortBy title, got %s", app.Preferences().SortBy)
	}
	if v, _, _ := store.Get(context.Background(), settings.KeySortBy); v != "title" {
		t.Fatalf("expected stored sortBy title, got %q", v)
	}

	// g inside the overlay is not the global shortcut.
	press(app, keyRune('g'))
	if app.Preferences().GroupBy != board.GroupByStatus {
		t.Fatal("expected overlay to capture keys")
	}

	for _, msg := range collectMsgs(press(app, tea.KeyMsg{Type: tea.KeyEsc})) {
		app.Update(msg)
	}
	if app.displayOverlay != nil {
		t.Fatal("expected overlay closed")
	}
}

func TestHelpOverlayCapturesKeys(t *testing.T) {
	app := loadedApp(t, settings.NewMemoryStore(), sampleTickets()...)

	press(app, keyRune('?'))
	if !app.showHelp {
		t.Fatal("expected help shown")
	}
	press(app, keyRune('g'))
	if app.Preferences().GroupBy != board.GroupByStatus {
		t.Fatal("expected grouping unchanged while help is open")
	}
	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Fatal("expected help closed")
	}
}

func TestNavigationClampsCursor(t *testing.T) {
	app := loadedApp(t, nil, sampleTickets()...)

	for i := 0; i < 5; i++ {
		press(app, tea.KeyMsg{Type: tea.KeyDown})
	}
	if app.row != 2 {
		t.Fatalf("expected row clamped to 2, got %d", app.row)
	}
	for i := 0; i < 5; i++ {
		press(app, keyRune('l'))
	}
	if app.col != 2 {
		t.Fatalf("expected col clamped to 2, got %d", app.col)
	}
	if app.row != 0 {
		t.Fatalf("expected row clamped to 0 in single-card column, got %d", app.row)
	}
	sel, ok := app.selectedTicket()
	if !ok || sel.ID != "CAM-5" {
		t.Fatalf("expected CAM-5 selected, got %+v", sel)
	}
}

func TestRederiveKeepsSelectedTicket(t *testing.T) {
	app := loadedApp(t, nil, sampleTickets()...)
	press(app, tea.KeyMsg{Type: tea.KeyDown}) // CAM-4 in To Do

	press(app, keyRune('o')) // title order: CAM-4 moves
	sel, ok := app.selectedTicket()
	if !ok || sel.ID != "CAM-4" {
		t.Fatalf("expected CAM-4 still selected, got %+v", sel)
	}
}

func TestCopyWritesSelectedID(t *testing.T) {
	var copied string
	app, err := NewApp(Config{
		Source:    tickets.NewMockSource(sampleTickets()...),
		Clipboard: func(s string) error { copied = s; return nil },
		Now:       func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Close)
	for _, msg := range collectMsgs(app.Init()) {
		app.Update(msg)
	}

	press(app, keyRune('c'))
	if copied != "CAM-1" {
		t.Fatalf("expected CAM-1 copied, got %q", copied)
	}
	if app.toast == nil || app.toast.kind != toastInfo {
		t.Fatal("expected confirmation toast")
	}
}

func TestThemeKeyCyclesAndSaves(t *testing.T) {
	t.Cleanup(func() { theme.SetTheme(theme.DefaultName) })
	theme.SetTheme(theme.DefaultName)

	var saved string
	app, err := NewApp(Config{
		SaveTheme: func(name string) error { saved = name; return nil },
		Now:       func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Close)

	press(app, keyRune('t'))
	if saved == "" || saved == theme.DefaultName {
		t.Fatalf("expected a new theme saved, got %q", saved)
	}
	if saved != theme.CurrentName() {
		t.Fatalf("expected saved theme %q to be current %q", saved, theme.CurrentName())
	}
}

func TestQuitClosesApp(t *testing.T) {
	app := loadedApp(t, nil, sampleTickets()...)
	cmd := press(app, keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if app.active {
		t.Fatal("expected app inactive after quit")
	}
	if app.ctx.Err() == nil {
		t.Fatal("expected fetch context cancelled")
	}
}

func TestDetailToggle(t *testing.T) {
	app := loadedApp(t, nil, sampleTickets()...)
	app.outputFormat = "plain"

	press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if !app.showDetail {
		t.Fatal("expected detail pane open")
	}
	if got := stripped(app.viewport.View()); !containsAll(got, "CAM-1", "Urgent", "usr-1") {
		t.Fatalf("expected detail content for CAM-1, got:\n%s", got)
	}
	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.showDetail {
		t.Fatal("expected esc to close the detail pane")
	}
}
