package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/muratovnur/constructor-form/internal/form"
)

// renderState carries what a value renderer needs beyond the record
// itself: whether the row is focused, whether its value is being edited,
// the live text editor and the highlighted option for select types.
type renderState struct {
	focused      bool
	editing      bool
	input        *textinput.Model
	optionCursor int
}

type renderFunc func(st styles, typ form.Type, f form.Field, rs renderState) string

// rendererFor returns the value control for the field's type tag. Text
// is the fallback, so a newly registered type renders usably before it
// gets a dedicated control.
func (a *App) rendererFor(tag string) renderFunc {
	if r, ok := a.renderers[tag]; ok {
		return r
	}
	return renderTextControl
}

func defaultRenderers() map[string]renderFunc {
	return map[string]renderFunc{
		form.TypeText:   renderTextControl,
		form.TypeNumber: renderTextControl,
		form.TypeSelect: renderSelectControl,
	}
}

func renderTextControl(st styles, _ form.Type, f form.Field, rs renderState) string {
	if rs.editing && rs.input != nil {
		return rs.input.View()
	}
	if f.Value == "" {
		return st.hint.Render("(пусто)")
	}
	return st.value.Render(f.Value)
}

func renderSelectControl(st styles, typ form.Type, f form.Field, rs renderState) string {
	if !rs.editing {
		if f.Value == "" {
			return st.hint.Render("(не выбрано)")
		}
		return st.value.Render(f.Value)
	}
	parts := make([]string, 0, len(typ.Options))
	for i, opt := range typ.Options {
		marker := "○ "
		style := st.option
		if i == rs.optionCursor {
			marker = "◉ "
			style = st.optionSel
		}
		parts = append(parts, style.Render(marker+opt))
	}
	return strings.Join(parts, "  ")
}
