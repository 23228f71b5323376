package message

// Key names a value held by a Context.
type Key string

// Keys understood by Context and Template.
const (
	KeyItem           Key = "item"
	KeyActual         Key = "actual"
	KeyMinimum        Key = "minimum"
	KeyMaximum        Key = "maximum"
	KeyRequiredLength Key = "required_length"
	KeyAllowed        Key = "allowed"
)

// slot maps a Key to its position in Context.values.
func slot(k Key) (int, bool) {
	switch k {
	case KeyActual:
		return 0, true
	case KeyMinimum:
		return 1, true
	case KeyMaximum:
		return 2, true
	case KeyRequiredLength:
		return 3, true
	case KeyAllowed:
		return 4, true
	default:
		return 0, false
	}
}

const numSlots = 5

// Context holds the item name and the named values a template may refer to.
// It is a value type: every With call returns a modified copy and leaves the
// receiver untouched.
type Context struct {
	item   string
	values [numSlots]any
	set    [numSlots]bool
}

// For starts a Context for the named item.
func For(item string) Context {
	return Context{item: item}
}

// Item returns the item name.
func (c Context) Item() string {
	return c.item
}

// WithActual records the value under test.
func (c Context) WithActual(v any) Context {
	return c.with(KeyActual, v)
}

// WithMinimum records the lower bound.
func (c Context) WithMinimum(v any) Context {
	return c.with(KeyMinimum, v)
}

// WithMaximum records the upper bound.
func (c Context) WithMaximum(v any) Context {
	return c.with(KeyMaximum, v)
}

// WithRequiredLength records the exact length a value must have.
func (c Context) WithRequiredLength(n int) Context {
	return c.with(KeyRequiredLength, n)
}

func (c Context) with(k Key, v any) Context {
	i, _ := slot(k)
	c.values[i] = v
	c.set[i] = true
	return c
}

// WithAllowed records the set of permitted values.
func (c Context) WithAllowed(v any) Context {
	return c.with(KeyAllowed, v)
}

// Value returns the value stored under k and whether it was set.
// KeyItem always reports the item name.
func (c Context) Value(k Key) (any, bool) {
	if k == KeyItem {
		return c.item, true
	}
	i, ok := slot(k)
	if !ok || !c.set[i] {
		return nil, false
	}
	return c.values[i], true
}

// Prepare renders the context through t.
func (c Context) Prepare(t Template) string {
	return t.Render(c)
}
