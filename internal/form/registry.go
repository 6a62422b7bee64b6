package form

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Built-in type tags.
const (
	TypeText   = "text"
	TypeNumber = "number"
	TypeSelect = "select"
)

// User-facing validation messages. The UI locale is fixed Russian.
const (
	ErrRequired  = "Обязательное поле"
	ErrNotNumber = "Значение должно быть числом"
)

// SelectOptions is the fixed option set offered by select fields.
var SelectOptions = []string{"Option 1", "Option 2", "Option 3"}

// Validator checks a raw value and returns a user-facing error message,
// or "" when the value is acceptable.
type Validator func(value string) string

// Type bundles the behavior registered for one field type tag: the label
// shown in type pickers, the option set (select types only) and the pure
// validator. Rendering lives in the TUI layer, keyed by the same tag, so
// validators stay independently testable.
type Type struct {
	Tag      string
	Label    string
	Options  []string
	Validate Validator
}

// Registry is an ordered, read-only table of field types, populated once
// at startup. Registration order is the order type pickers display.
type Registry struct {
	types []Type
	byTag map[string]int
}

func NewRegistry(types ...Type) *Registry {
	r := &Registry{byTag: make(map[string]int, len(types))}
	for _, t := range types {
		if _, ok := r.byTag[t.Tag]; ok {
			continue
		}
		r.byTag[t.Tag] = len(r.types)
		r.types = append(r.types, t)
	}
	return r
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []Type {
	return r.types
}

func (r *Registry) Lookup(tag string) (Type, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return Type{}, false
	}
	return r.types[i], true
}

// First returns the first registered type, the default for new drafts.
func (r *Registry) First() Type {
	return r.types[0]
}

// Suggest returns the registered tag closest to the given unknown tag,
// or "" when nothing is close enough to be a plausible typo.
func (r *Registry) Suggest(tag string) string {
	tag = strings.ToLower(tag)
	best, bestDist := "", len(tag)/2+1
	for _, t := range r.types {
		dist := levenshtein.ComputeDistance(tag, t.Tag)
		if dist < bestDist {
			best, bestDist = t.Tag, dist
		}
	}
	return best
}

// DefaultRegistry builds the three built-in types.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Type{
			Tag:   TypeText,
			Label: "Текст",
			Validate: func(value string) string {
				if value == "" {
					return ErrRequired
				}
				return ""
			},
		},
		Type{
			Tag:   TypeNumber,
			Label: "Число",
			Validate: func(value string) string {
				if value == "" {
					return ErrRequired
				}
				if _, err := strconv.ParseFloat(value, 64); err != nil {
					return ErrNotNumber
				}
				return ""
			},
		},
		Type{
			Tag:     TypeSelect,
			Label:   "Список",
			Options: SelectOptions,
			Validate: func(value string) string {
				// Out-of-set values are not rejected, only emptiness.
				if value == "" {
					return ErrRequired
				}
				return ""
			},
		},
	)
}
