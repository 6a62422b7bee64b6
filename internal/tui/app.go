package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muratovnur/constructor-form/internal/config"
	"github.com/muratovnur/constructor-form/internal/form"
)

// Status messages for the save flow.
const (
	msgFormSaved   = "Форма успешно сохранена"
	msgFormInvalid = "Форма содержит ошибки"
)

type focusZone string

const (
	focusList    focusZone = "list"
	focusBuilder focusZone = "builder"
)

type modalState string

const (
	modalNone       modalState = ""
	modalAlert      modalState = "alert"
	modalRename     modalState = "rename"
	modalTypePicker modalState = "typePicker"
)

// App is the single-page form builder. One session owns one collection;
// every handler runs to completion on the event loop, so state
// transitions never interleave.
type App struct {
	reg *form.Registry
	col *form.Collection

	focus  focusZone
	cursor int

	// builder controls
	labelInput textinput.Model
	draftType  string

	// in-place value editing for the focused field
	editing      bool
	editingID    string
	valueInput   textinput.Model
	optionCursor int

	modal        modalState
	alertText    string
	renameInput  textinput.Model
	renameID     string
	pickerID     string
	pickerCursor int

	status    string
	statusErr bool
	showHelp  bool

	st        styles
	keys      keyMap
	renderers map[string]renderFunc
}

func New(cfg config.Config, reg *form.Registry, col *form.Collection, draftType string) *App {
	label := textinput.New()
	label.Placeholder = "Название поля"
	label.Prompt = ""
	label.CharLimit = 64
	label.Width = 24

	rename := textinput.New()
	rename.Prompt = ""
	rename.CharLimit = 64
	rename.Width = 24

	value := textinput.New()
	value.Prompt = ""
	value.CharLimit = 128
	value.Width = 24

	return &App{
		reg:         reg,
		col:         col,
		focus:       focusList,
		labelInput:  label,
		renameInput: rename,
		valueInput:  value,
		draftType:   draftType,
		showHelp:    cfg.UI.ShowHelp,
		st:          newStyles(lipgloss.Color(cfg.UI.Accent)),
		keys:        newKeyMap(),
		renderers:   defaultRenderers(),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	if a.focus == focusBuilder {
		return a.handleBuilderKey(m)
	}
	if a.editing {
		return a.handleEditKey(m)
	}
	return a.handleListKey(m)
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < a.col.Len()-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.New):
		a.focus = focusBuilder
		a.status = ""
		return a, a.labelInput.Focus()
	case key.Matches(m, a.keys.Edit):
		a.startEditing()
	case key.Matches(m, a.keys.Rename):
		f, ok := a.focusedField()
		if !ok {
			return a, nil
		}
		a.modal = modalRename
		a.renameID = f.ID
		a.renameInput.SetValue(f.Label)
		a.renameInput.CursorEnd()
		return a, a.renameInput.Focus()
	case key.Matches(m, a.keys.Type):
		f, ok := a.focusedField()
		if !ok {
			return a, nil
		}
		a.modal = modalTypePicker
		a.pickerID = f.ID
		a.pickerCursor = a.typeIndex(f.Type)
	case key.Matches(m, a.keys.Remove):
		f, ok := a.focusedField()
		if !ok {
			return a, nil
		}
		a.col.Remove(f.ID)
		if a.cursor >= a.col.Len() && a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Save):
		if a.col.Save() {
			a.status, a.statusErr = msgFormInvalid, true
		} else {
			a.status, a.statusErr = msgFormSaved, false
		}
	}
	return a, nil
}

func (a *App) handleBuilderKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.focus = focusList
		a.labelInput.Blur()
		return a, nil
	case tea.KeyTab:
		a.draftType = a.nextType(a.draftType)
		return a, nil
	case tea.KeyEnter:
		return a, a.addField()
	}
	var cmd tea.Cmd
	a.labelInput, cmd = a.labelInput.Update(m)
	return a, cmd
}

// addField delegates to the collection; a rejected label opens the
// blocking alert. On success only the label draft is cleared, the draft
// type stays for the next field.
func (a *App) addField() tea.Cmd {
	_, err := a.col.Add(a.labelInput.Value(), a.draftType)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			a.modal = modalAlert
			a.alertText = verr.Message
			return nil
		}
		a.status, a.statusErr = err.Error(), true
		return nil
	}
	a.labelInput.SetValue("")
	return nil
}

func (a *App) startEditing() {
	f, ok := a.focusedField()
	if !ok {
		return
	}
	a.editing = true
	a.editingID = f.ID
	typ, _ := a.reg.Lookup(f.Type)
	if len(typ.Options) > 0 {
		a.optionCursor = 0
		for i, opt := range typ.Options {
			if opt == f.Value {
				a.optionCursor = i
				break
			}
		}
		return
	}
	a.valueInput.SetValue(f.Value)
	a.valueInput.CursorEnd()
	a.valueInput.Focus()
}

func (a *App) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f, ok := a.col.Get(a.editingID)
	if !ok {
		a.stopEditing()
		return a, nil
	}
	typ, _ := a.reg.Lookup(f.Type)
	if len(typ.Options) > 0 {
		switch m.String() {
		case "esc":
			a.stopEditing()
		case "enter":
			a.col.Update(f.ID, form.AttrValue, typ.Options[a.optionCursor])
			a.stopEditing()
		case "left", "h", "up", "k":
			if a.optionCursor > 0 {
				a.optionCursor--
				a.col.Update(f.ID, form.AttrValue, typ.Options[a.optionCursor])
			}
		case "right", "l", "down", "j":
			if a.optionCursor < len(typ.Options)-1 {
				a.optionCursor++
				a.col.Update(f.ID, form.AttrValue, typ.Options[a.optionCursor])
			}
		}
		return a, nil
	}

	switch m.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.stopEditing()
		return a, nil
	}
	var cmd tea.Cmd
	a.valueInput, cmd = a.valueInput.Update(m)
	a.col.Update(f.ID, form.AttrValue, a.valueInput.Value())
	return a, cmd
}

func (a *App) stopEditing() {
	a.editing = false
	a.editingID = ""
	a.valueInput.Blur()
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalAlert:
		a.modal = modalNone
		a.alertText = ""
	case modalRename:
		switch m.Type {
		case tea.KeyEsc:
			a.closeRename()
		case tea.KeyEnter:
			// the prompt contract: an empty answer renames nothing
			if text := strings.TrimSpace(a.renameInput.Value()); text != "" {
				a.col.Update(a.renameID, form.AttrLabel, text)
			}
			a.closeRename()
		default:
			var cmd tea.Cmd
			a.renameInput, cmd = a.renameInput.Update(m)
			return a, cmd
		}
	case modalTypePicker:
		types := a.reg.Types()
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.pickerCursor > 0 {
				a.pickerCursor--
			}
		case "down", "j":
			if a.pickerCursor < len(types)-1 {
				a.pickerCursor++
			}
		case "enter":
			a.col.ChangeType(a.pickerID, types[a.pickerCursor].Tag)
			a.modal = modalNone
		}
	}
	return a, nil
}

func (a *App) closeRename() {
	a.modal = modalNone
	a.renameID = ""
	a.renameInput.Blur()
	a.renameInput.SetValue("")
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.st.title.Render("Конструктор формы"))
	b.WriteString("\n\n")
	b.WriteString(a.renderBuilder())
	b.WriteString("\n\n")
	b.WriteString(a.renderFields())
	if a.status != "" {
		style := a.st.statusOK
		if a.statusErr {
			style = a.st.statusErr
		}
		b.WriteString("\n" + style.Render(a.status))
	}
	if a.modal != modalNone {
		b.WriteString("\n\n" + a.renderModal())
	}
	if a.showHelp {
		b.WriteString("\n\n" + a.keys.helpView(a.st))
	}
	return b.String()
}

func (a *App) renderBuilder() string {
	marker := "  "
	if a.focus == focusBuilder {
		marker = a.st.cursor.Render("▶ ")
	}
	typ, _ := a.reg.Lookup(a.draftType)
	row := fmt.Sprintf("%sНовое поле: %s  %s",
		marker, a.labelInput.View(), a.st.typeTag.Render("Тип: "+typ.Label))
	if a.focus == focusBuilder {
		row += "  " + a.st.hint.Render("tab — тип, enter — добавить, esc — к списку")
	}
	return a.st.builder.Render(row)
}

func (a *App) renderFields() string {
	fields := a.col.Fields()
	if len(fields) == 0 {
		return a.st.hint.Render("  Полей пока нет — n, чтобы добавить")
	}
	var rows []string
	for i, f := range fields {
		focused := a.focus == focusList && i == a.cursor
		marker := "  "
		if focused {
			marker = a.st.cursor.Render("▶ ")
		}
		labelStyle := a.st.value
		if focused {
			labelStyle = a.st.focused
		}
		typ, _ := a.reg.Lookup(f.Type)
		rs := renderState{
			focused:      focused,
			editing:      a.editing && f.ID == a.editingID,
			input:        &a.valueInput,
			optionCursor: a.optionCursor,
		}
		control := a.rendererFor(f.Type)(a.st, typ, f, rs)
		row := fmt.Sprintf("%s%s %s: %s",
			marker, labelStyle.Render(f.Label), a.st.typeTag.Render("("+typ.Label+")"), control)
		if f.Err != "" {
			row += "  " + a.st.fieldErr.Render("⚠ "+f.Err)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalAlert:
		return a.st.modal.Render(a.st.title.Render("Внимание") +
			"\n" + a.st.fieldErr.Render(a.alertText) +
			"\n" + a.st.hint.Render("любая клавиша — закрыть"))
	case modalRename:
		return a.st.modal.Render(a.st.title.Render("Переименовать поле") +
			"\n" + a.renameInput.View() +
			"\n" + a.st.hint.Render("enter — сохранить, esc — отмена"))
	case modalTypePicker:
		out := a.st.title.Render("Тип поля") + "\n"
		for i, typ := range a.reg.Types() {
			marker := "  "
			style := a.st.option
			if i == a.pickerCursor {
				marker = a.st.cursor.Render("▶ ")
				style = a.st.optionSel
			}
			out += marker + style.Render(typ.Label) + "\n"
		}
		out += a.st.hint.Render("enter — выбрать, esc — отмена")
		return a.st.modal.Render(out)
	default:
		return ""
	}
}

func (a *App) focusedField() (form.Field, bool) {
	fields := a.col.Fields()
	if len(fields) == 0 || a.cursor >= len(fields) {
		return form.Field{}, false
	}
	return fields[a.cursor], true
}

func (a *App) typeIndex(tag string) int {
	for i, typ := range a.reg.Types() {
		if typ.Tag == tag {
			return i
		}
	}
	return 0
}

func (a *App) nextType(tag string) string {
	types := a.reg.Types()
	return types[(a.typeIndex(tag)+1)%len(types)].Tag
}
