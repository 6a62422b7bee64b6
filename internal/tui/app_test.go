package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/muratovnur/constructor-form/internal/config"
	"github.com/muratovnur/constructor-form/internal/form"
)

func newTestApp(t *testing.T) (*App, *form.Collection) {
	t.Helper()
	reg := form.DefaultRegistry()
	col := form.NewCollection(reg)
	cfg := config.Config{UI: config.UIConfig{ShowHelp: true}}
	return New(cfg, reg, col, reg.First().Tag), col
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(a *App, keys ...string) {
	for _, k := range keys {
		a.Update(keyMsg(k))
	}
}

func typeText(a *App, text string) {
	for _, r := range text {
		press(a, string(r))
	}
}

func TestBuilderAddFlow(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)

	press(a, "n")
	require.Equal(t, focusBuilder, a.focus)
	typeText(a, "Имя")
	press(a, "enter")

	require.Equal(t, 1, col.Len())
	f := col.Fields()[0]
	require.Equal(t, "Имя", f.Label)
	require.Equal(t, form.TypeText, f.Type)
	require.Empty(t, f.Value)
	require.Empty(t, f.Err)
	require.Empty(t, a.labelInput.Value(), "label draft clears on success")

	// draft type survives an add
	press(a, "tab")
	require.Equal(t, form.TypeNumber, a.draftType)
	typeText(a, "Возраст")
	press(a, "enter")
	require.Equal(t, form.TypeNumber, a.draftType)
	require.Equal(t, 2, col.Len())
	require.Equal(t, form.TypeNumber, col.Fields()[1].Type)
}

func TestBuilderEmptyLabelAlerts(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)

	press(a, "n")
	typeText(a, "   ")
	press(a, "enter")

	require.Equal(t, modalAlert, a.modal)
	require.Equal(t, form.MsgNameRequired, a.alertText)
	require.Equal(t, 0, col.Len())
	require.Contains(t, a.View(), form.MsgNameRequired)

	// any key dismisses
	press(a, "x")
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, 0, col.Len())
}

func TestDraftTypeCyclesRegisteredTagsOnly(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	press(a, "n")
	seen := map[string]bool{a.draftType: true}
	for i := 0; i < 3; i++ {
		press(a, "tab")
		seen[a.draftType] = true
	}
	require.Equal(t, form.TypeText, a.draftType, "full cycle returns to start")
	require.Len(t, seen, 3, "cycle offers exactly the registered tags")
}

func TestRenamePromptPrefilled(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	f, err := col.Add("Имя", form.TypeText)
	require.NoError(t, err)

	press(a, "r")
	require.Equal(t, modalRename, a.modal)
	require.Equal(t, "Имя", a.renameInput.Value())

	typeText(a, " клиента")
	press(a, "enter")
	require.Equal(t, modalNone, a.modal)
	got, _ := col.Get(f.ID)
	require.Equal(t, "Имя клиента", got.Label)
}

func TestRenameCancelAndEmptyAnswer(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	f, err := col.Add("Я", form.TypeText)
	require.NoError(t, err)

	// esc cancels
	press(a, "r")
	typeText(a, "xxx")
	press(a, "esc")
	got, _ := col.Get(f.ID)
	require.Equal(t, "Я", got.Label)

	// empty answer renames nothing
	press(a, "r", "backspace", "enter")
	got, _ = col.Get(f.ID)
	require.Equal(t, "Я", got.Label)
	require.Equal(t, modalNone, a.modal)
}

func TestTypePickerResetsValueAndError(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	f, err := col.Add("Возраст", form.TypeText)
	require.NoError(t, err)
	col.Update(f.ID, form.AttrValue, "")
	got, _ := col.Get(f.ID)
	require.Equal(t, form.ErrRequired, got.Err)

	press(a, "t")
	require.Equal(t, modalTypePicker, a.modal)
	press(a, "down", "enter")

	got, _ = col.Get(f.ID)
	require.Equal(t, form.TypeNumber, got.Type)
	require.Empty(t, got.Value)
	require.Empty(t, got.Err)
}

func TestValueEditingRevalidatesLive(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	f, err := col.Add("Возраст", form.TypeNumber)
	require.NoError(t, err)

	press(a, "enter")
	require.True(t, a.editing)
	typeText(a, "x")
	got, _ := col.Get(f.ID)
	require.Equal(t, form.ErrNotNumber, got.Err)

	press(a, "backspace")
	typeText(a, "42")
	press(a, "enter")
	require.False(t, a.editing)
	got, _ = col.Get(f.ID)
	require.Equal(t, "42", got.Value)
	require.Empty(t, got.Err)
}

func TestSelectEditingCyclesOptions(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	f, err := col.Add("Вариант", form.TypeSelect)
	require.NoError(t, err)

	press(a, "enter", "right", "enter")
	got, _ := col.Get(f.ID)
	require.Equal(t, "Option 2", got.Value)
	require.Empty(t, got.Err)

	// reopening starts from the current value
	press(a, "enter")
	require.Equal(t, 1, a.optionCursor)
	press(a, "left", "esc")
	got, _ = col.Get(f.ID)
	require.Equal(t, "Option 1", got.Value)
}

func TestSaveStatusLine(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	_, err := col.Add("Возраст", form.TypeNumber)
	require.NoError(t, err)

	press(a, "s")
	require.Equal(t, msgFormInvalid, a.status)
	require.True(t, a.statusErr)
	view := a.View()
	require.Contains(t, view, msgFormInvalid)
	require.Contains(t, view, form.ErrRequired)

	press(a, "enter")
	typeText(a, "42")
	press(a, "enter", "s")
	require.Equal(t, msgFormSaved, a.status)
	require.False(t, a.statusErr)
	require.Contains(t, a.View(), msgFormSaved)
}

func TestSaveEmptyCollectionSucceeds(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t)

	press(a, "s")
	require.Equal(t, msgFormSaved, a.status)
	require.False(t, a.statusErr)
}

func TestRemoveClampsCursor(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	_, err := col.Add("Имя", form.TypeText)
	require.NoError(t, err)
	second, err := col.Add("Город", form.TypeText)
	require.NoError(t, err)

	press(a, "down", "d")
	require.Equal(t, 1, col.Len())
	require.Equal(t, 0, a.cursor)
	_, ok := col.Get(second.ID)
	require.False(t, ok)

	press(a, "d", "d")
	require.Equal(t, 0, col.Len())
}

func TestViewListsFieldsInOrder(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)
	_, err := col.Add("Имя", form.TypeText)
	require.NoError(t, err)
	_, err = col.Add("Возраст", form.TypeNumber)
	require.NoError(t, err)

	view := a.View()
	require.Contains(t, view, "Имя")
	require.Contains(t, view, "Возраст")
	require.Less(t, strings.Index(view, "Имя"), strings.Index(view, "Возраст"))
	require.Contains(t, view, "Текст")
	require.Contains(t, view, "Число")
}

func TestEndToEndInvalidNumberFlow(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)

	press(a, "n", "tab") // number
	typeText(a, "Age")
	press(a, "enter", "esc")

	press(a, "enter")
	typeText(a, "x")
	press(a, "enter", "s")

	require.Equal(t, msgFormInvalid, a.status)
	require.True(t, a.statusErr)
	got, _ := col.Get(col.Fields()[0].ID)
	require.Equal(t, form.ErrNotNumber, got.Err)
}

func TestEndToEndValidTextFlow(t *testing.T) {
	t.Parallel()
	a, col := newTestApp(t)

	press(a, "n")
	typeText(a, "City")
	press(a, "enter", "esc")

	press(a, "enter")
	typeText(a, "Paris")
	press(a, "enter", "s")

	require.Equal(t, msgFormSaved, a.status)
	require.False(t, a.statusErr)
	require.Empty(t, col.Fields()[0].Err)
}
