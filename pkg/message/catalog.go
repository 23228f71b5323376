package message

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kind names a guard and selects its template.
type Kind string

// Guard kinds.
const (
	KindMinimum        Kind = "minimum"
	KindMaximum        Kind = "maximum"
	KindInRange        Kind = "in_range"
	KindPositive       Kind = "positive"
	KindNonNegative    Kind = "non_negative"
	KindIsSet          Kind = "is_set"
	KindRequiredLength Kind = "required_length"
	KindSize           Kind = "size"
	KindMinLength      Kind = "min_length"
	KindMaxLength      Kind = "max_length"
	KindNotNil         Kind = "not_nil"
	KindNotEmpty       Kind = "not_empty"
	KindCount          Kind = "count"
	KindOneOf          Kind = "one_of"
	KindDistinct       Kind = "distinct"
	KindCronSpec       Kind = "cron_spec"
	KindRedisURL       Kind = "redis_url"
	KindUUID           Kind = "uuid"
)

// Built-in templates.
var (
	BelowMinimum = MustCompile(Template{
		Positional: "%v must be at least %v, got %v",
		Keys:       []Key{KeyItem, KeyMinimum, KeyActual},
		Named:      "{item} is below its minimum",
	})
	AboveMaximum = MustCompile(Template{
		Positional: "%v must be at most %v, got %v",
		Keys:       []Key{KeyItem, KeyMaximum, KeyActual},
		Named:      "{item} is above its maximum",
	})
	OutsideRange = MustCompile(Template{
		Positional: "%v must be between %v and %v inclusive, got %v",
		Keys:       []Key{KeyItem, KeyMinimum, KeyMaximum, KeyActual},
		Named:      "{item} is out of range",
	})
	NotPositive = MustCompile(Template{
		Positional: "%v must be greater than 0, got %v",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} must be positive",
	})
	Negative = MustCompile(Template{
		Positional: "%v cannot be negative, got %v",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} cannot be negative",
	})
	NotSet = MustCompile(Template{
		Named: "{item} must be set and not blank",
	})
	WrongLength = MustCompile(Template{
		Positional: "%v must be exactly %v characters long, got %q",
		Keys:       []Key{KeyItem, KeyRequiredLength, KeyActual},
		Named:      "{item} has the wrong length",
	})
	WrongSize = MustCompile(Template{
		Positional: "%v must be between %v and %v characters long, got %q",
		Keys:       []Key{KeyItem, KeyMinimum, KeyMaximum, KeyActual},
		Named:      "{item} has the wrong size",
	})
	TooShort = MustCompile(Template{
		Positional: "%v must be at least %v characters long, got %q",
		Keys:       []Key{KeyItem, KeyMinimum, KeyActual},
		Named:      "{item} is too short",
	})
	TooLong = MustCompile(Template{
		Positional: "%v must be at most %v characters long, got %q",
		Keys:       []Key{KeyItem, KeyMaximum, KeyActual},
		Named:      "{item} is too long",
	})
	IsNil = MustCompile(Template{
		Named: "{item} cannot be nil",
	})
	Empty = MustCompile(Template{
		Named: "{item} cannot be empty",
	})
	WrongCount = MustCompile(Template{
		Positional: "%v must hold between %v and %v elements, got %v",
		Keys:       []Key{KeyItem, KeyMinimum, KeyMaximum, KeyActual},
		Named:      "{item} has the wrong number of elements",
	})
	NotAllowed = MustCompile(Template{
		Positional: "%v must be one of %v, got %v",
		Keys:       []Key{KeyItem, KeyAllowed, KeyActual},
		Named:      "{item} is not an allowed value",
	})
	Duplicated = MustCompile(Template{
		Positional: "%v must not contain duplicates, found %v",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} contains duplicates",
	})
	NotCronSpec = MustCompile(Template{
		Positional: "%v is not a valid cron expression: %q",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} is not a valid cron expression",
	})
	NotRedisURL = MustCompile(Template{
		Positional: "%v is not a valid redis URL: %q",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} is not a valid redis URL",
	})
	NotUUID = MustCompile(Template{
		Positional: "%v is not a valid UUID: %q",
		Keys:       []Key{KeyItem, KeyActual},
		Named:      "{item} is not a valid UUID",
	})
)

var builtin = map[Kind]Template{
	KindMinimum:        BelowMinimum,
	KindMaximum:        AboveMaximum,
	KindInRange:        OutsideRange,
	KindPositive:       NotPositive,
	KindNonNegative:    Negative,
	KindIsSet:          NotSet,
	KindRequiredLength: WrongLength,
	KindSize:           WrongSize,
	KindMinLength:      TooShort,
	KindMaxLength:      TooLong,
	KindNotNil:         IsNil,
	KindNotEmpty:       Empty,
	KindCount:          WrongCount,
	KindOneOf:          NotAllowed,
	KindDistinct:       Duplicated,
	KindCronSpec:       NotCronSpec,
	KindRedisURL:       NotRedisURL,
	KindUUID:           NotUUID,
}

// ErrUnknownKind is returned when a catalog names a kind no guard uses.
var ErrUnknownKind = errors.New("unknown guard kind")

// Default returns the built-in template for kind.
func Default(kind Kind) (Template, bool) {
	t, ok := builtin[kind]
	return t, ok
}

// Catalog maps guard kinds to templates.
type Catalog map[Kind]Template

// DefaultCatalog returns a copy of the built-in templates.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(builtin))
	for k, t := range builtin {
		c[k] = t
	}
	return c
}

// LoadCatalog reads YAML template overrides from r and overlays them on the
// built-in templates. Every entry is compiled; the first bad entry aborts
// the load.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var overrides map[Kind]Template
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode message catalog: %w", err)
	}

	c := DefaultCatalog()
	for kind, t := range overrides {
		if _, ok := builtin[kind]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		compiled, err := Compile(t)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", kind, err)
		}
		c[kind] = compiled
	}
	return c, nil
}

// Template returns the template for kind, falling back to the built-in one.
func (c Catalog) Template(kind Kind) Template {
	if t, ok := c[kind]; ok {
		return t
	}
	t, _ := Default(kind)
	return t
}

// Render renders ctx with the template registered for kind.
func (c Catalog) Render(kind Kind, ctx Context) string {
	return c.Template(kind).Render(ctx)
}
