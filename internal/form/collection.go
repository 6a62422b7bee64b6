package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MsgNameRequired is shown when adding a field without a label.
const MsgNameRequired = "Введите название поля"

// Field is one configured input slot of the form. ID is assigned at
// creation and never changes; Err is "" while the value passes its
// type's validator (or has not been validated yet).
type Field struct {
	ID    string
	Label string
	Type  string
	Value string
	Err   string
}

// Attr names a mutable field attribute accepted by Update.
type Attr string

const (
	AttrLabel Attr = "label"
	AttrValue Attr = "value"
)

// ValidationError reports a rejected builder action. It is surfaced to
// the user as a blocking notice, never propagated further.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Collection owns the ordered field list for one session. All mutation
// happens on the single UI event loop, so there is no locking.
type Collection struct {
	reg    *Registry
	fields []Field
}

func NewCollection(reg *Registry) *Collection {
	return &Collection{reg: reg}
}

// Fields returns the records in insertion order.
func (c *Collection) Fields() []Field {
	return c.fields
}

func (c *Collection) Len() int {
	return len(c.fields)
}

// Get returns a copy of the record with the given id.
func (c *Collection) Get(id string) (Field, bool) {
	if i := c.index(id); i >= 0 {
		return c.fields[i], true
	}
	return Field{}, false
}

// Add appends a new record with an empty value. The label must be
// non-empty after trimming; the empty value is not validated until the
// next edit or save. Returns the created record.
func (c *Collection) Add(label, typeTag string) (Field, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Field{}, &ValidationError{Message: MsgNameRequired}
	}
	if _, ok := c.reg.Lookup(typeTag); !ok {
		return Field{}, &ValidationError{Message: fmt.Sprintf("Неизвестный тип поля: %s", typeTag)}
	}
	f := Field{ID: uuid.NewString(), Label: label, Type: typeTag}
	c.fields = append(c.fields, f)
	return f, nil
}

// Update sets the label or value of the record with the given id.
// Unknown ids are ignored. Setting the value recomputes the record's
// error against its current type; setting the label leaves it alone.
func (c *Collection) Update(id string, attr Attr, value string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	switch attr {
	case AttrLabel:
		c.fields[i].Label = value
	case AttrValue:
		c.fields[i].Value = value
		c.fields[i].Err = c.validate(c.fields[i])
	}
}

// ChangeType reassigns the record's type, clearing its value and error
// so stale validation against the old type is never displayed. The
// empty value is not revalidated until the next edit or save.
func (c *Collection) ChangeType(id, newTag string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if _, ok := c.reg.Lookup(newTag); !ok {
		return
	}
	c.fields[i].Type = newTag
	c.fields[i].Value = ""
	c.fields[i].Err = ""
}

// Remove deletes the record with the given id; unknown ids are ignored.
func (c *Collection) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.fields = append(c.fields[:i:i], c.fields[i+1:]...)
}

// Save revalidates every record and swaps the whole list in at once, so
// a partially revalidated collection is never observable. Reports
// whether any record failed. An empty collection saves cleanly.
func (c *Collection) Save() bool {
	next := make([]Field, len(c.fields))
	anyError := false
	for i, f := range c.fields {
		f.Err = c.validate(f)
		if f.Err != "" {
			anyError = true
		}
		next[i] = f
	}
	c.fields = next
	return anyError
}

func (c *Collection) validate(f Field) string {
	t, ok := c.reg.Lookup(f.Type)
	if !ok {
		return ""
	}
	return t.Validate(f.Value)
}

func (c *Collection) index(id string) int {
	for i := range c.fields {
		if c.fields[i].ID == id {
			return i
		}
	}
	return -1
}
