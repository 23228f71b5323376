package message

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is the token a Named template uses for the item name.
const Placeholder = "{item}"

// Template describes how a guard failure is worded.
type Template struct {
	// Positional is a fmt format string. When non-blank it is used in
	// preference to Named.
	Positional string `yaml:"positional"`

	// Keys lists the context values fed to Positional, in order.
	Keys []Key `yaml:"keys"`

	// Named contains the Placeholder, replaced by the item name.
	Named string `yaml:"named"`
}

// ErrBadTemplate is returned by Compile for templates that cannot render.
var ErrBadTemplate = errors.New("bad message template")

// arityMismatch matches the inline markers fmt writes when a format and its
// operands disagree in number or index. Verb and operand type mismatches
// such as "%!s(int=0)" depend on the rendered values and are not matched.
var arityMismatch = regexp.MustCompile(`%!.?\(MISSING\)|%!\(EXTRA |%!.?\(BADINDEX\)|%!\(NOVERB\)`)

// Compile checks that t can always be rendered and returns it.
func Compile(t Template) (Template, error) {
	positional := strings.TrimSpace(t.Positional) != ""
	named := strings.TrimSpace(t.Named) != ""

	if !positional && !named {
		return Template{}, fmt.Errorf("%w: both positional and named forms are blank", ErrBadTemplate)
	}
	if named && !strings.Contains(t.Named, Placeholder) {
		return Template{}, fmt.Errorf("%w: named form %q lacks %s", ErrBadTemplate, t.Named, Placeholder)
	}
	if positional {
		for _, k := range t.Keys {
			if k == KeyItem {
				continue
			}
			if _, ok := slot(k); !ok {
				return Template{}, fmt.Errorf("%w: unknown key %q", ErrBadTemplate, k)
			}
		}
		sample := make([]any, len(t.Keys))
		for i := range sample {
			sample[i] = 0
		}
		if out := fmt.Sprintf(t.Positional, sample...); arityMismatch.MatchString(out) {
			return Template{}, fmt.Errorf("%w: positional form %q does not match keys %v", ErrBadTemplate, t.Positional, t.Keys)
		}
	}

	t.Keys = append([]Key(nil), t.Keys...)
	return t, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level template definitions.
func MustCompile(t Template) Template {
	compiled, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return compiled
}

// Render produces the message for c. The positional form takes priority
// whenever it is non-blank.
func (t Template) Render(c Context) string {
	if strings.TrimSpace(t.Positional) != "" {
		args := make([]any, len(t.Keys))
		for i, k := range t.Keys {
			if v, ok := c.Value(k); ok {
				args[i] = v
			} else {
				args[i] = ""
			}
		}
		return fmt.Sprintf(t.Positional, args...)
	}
	if t.Named != "" {
		return strings.ReplaceAll(t.Named, Placeholder, c.item)
	}
	return c.item + " is invalid"
}

// Assemble renders ctx with a positional format and a named fallback without
// compiling a Template first. A non-blank positional format wins. Nothing is
// validated, so a format that disagrees with keys renders fmt's "%!" markers
// into the message; prefer a Template built with Compile for fixed wording.
func Assemble(positional, named string, ctx Context, keys ...Key) string {
	return Template{Positional: positional, Keys: keys, Named: named}.Render(ctx)
}
