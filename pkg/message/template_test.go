package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_IsImmutable(t *testing.T) {
	base := For("port")
	withMax := base.WithMaximum(65535)

	_, ok := base.Value(KeyMaximum)
	assert.False(t, ok, "With must not modify the receiver")

	v, ok := withMax.Value(KeyMaximum)
	require.True(t, ok)
	assert.Equal(t, 65535, v)

	item, ok := withMax.Value(KeyItem)
	require.True(t, ok)
	assert.Equal(t, "port", item)
	assert.Equal(t, "port", withMax.Item())
}

func TestContext_UnknownKey(t *testing.T) {
	_, ok := For("x").WithActual(1).Value(Key("nope"))
	assert.False(t, ok)
}

func TestRender_PositionalWinsOverNamed(t *testing.T) {
	tmpl := MustCompile(Template{
		Positional: "%v must be at least %v",
		Keys:       []Key{KeyItem, KeyMinimum},
		Named:      "{item} is too small",
	})
	ctx := For("age").WithMinimum(18)

	assert.Equal(t, "age must be at least 18", tmpl.Render(ctx))
	assert.Equal(t, "age must be at least 18", ctx.Prepare(tmpl))
}

func TestRender_NamedWhenPositionalBlank(t *testing.T) {
	tests := []struct {
		name       string
		positional string
	}{
		{"empty positional", ""},
		{"blank positional", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.positional, "{item} must be set", For("name"))
			assert.Equal(t, "name must be set", got)
		})
	}
}

func TestRender_MissingValuesAreOmitted(t *testing.T) {
	got := OutsideRange.Render(For("level").WithMinimum(1).WithMaximum(5))
	assert.Equal(t, "level must be between 1 and 5 inclusive, got ", got)
}

func TestRender_ZeroTemplate(t *testing.T) {
	assert.Equal(t, "thing is invalid", Template{}.Render(For("thing")))
}

func TestRender_NeverPanicsOnUncompiledTemplates(t *testing.T) {
	assert.NotPanics(t, func() {
		out := Assemble("%d %d %d", "", For("x").WithActual("text"), KeyActual)
		assert.NotEmpty(t, out)
	})
}

func TestAssemble_DoesNotValidate(t *testing.T) {
	got := Assemble("%v must be %d", "{item} is bad", For("n"), KeyItem)
	assert.Equal(t, "n must be %!d(MISSING)", got)

	_, err := Compile(Template{Positional: "%v must be %d", Keys: []Key{KeyItem}, Named: "{item} is bad"})
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    Template
		wantErr bool
	}{
		{
			name: "positional and named",
			tmpl: Template{Positional: "%v got %v", Keys: []Key{KeyItem, KeyActual}, Named: "{item} bad"},
		},
		{
			name: "named only",
			tmpl: Template{Named: "{item} bad"},
		},
		{
			name: "positional only",
			tmpl: Template{Positional: "%v bad", Keys: []Key{KeyItem}},
		},
		{
			name:    "both blank",
			tmpl:    Template{Positional: " ", Named: ""},
			wantErr: true,
		},
		{
			name:    "named without placeholder",
			tmpl:    Template{Named: "value is bad"},
			wantErr: true,
		},
		{
			name:    "too few keys",
			tmpl:    Template{Positional: "%v and %v", Keys: []Key{KeyItem}},
			wantErr: true,
		},
		{
			name:    "too many keys",
			tmpl:    Template{Positional: "%v", Keys: []Key{KeyItem, KeyActual}},
			wantErr: true,
		},
		{
			name: "integer verb",
			tmpl: Template{Positional: "%v must be >= %d", Keys: []Key{KeyItem, KeyMinimum}},
		},
		{
			name: "precision and hex verbs",
			tmpl: Template{Positional: "%v is %.2f, limit %x", Keys: []Key{KeyItem, KeyActual, KeyMaximum}},
		},
		{
			name: "explicit argument index",
			tmpl: Template{Positional: "%[2]v for %[1]v", Keys: []Key{KeyItem, KeyMinimum}},
		},
		{
			name:    "integer verb with too few keys",
			tmpl:    Template{Positional: "%v must be >= %d", Keys: []Key{KeyItem}},
			wantErr: true,
		},
		{
			name:    "bad argument index",
			tmpl:    Template{Positional: "%[3]v", Keys: []Key{KeyItem}},
			wantErr: true,
		},
		{
			name:    "dangling verb",
			tmpl:    Template{Positional: "%v %", Keys: []Key{KeyItem}},
			wantErr: true,
		},
		{
			name:    "unknown key",
			tmpl:    Template{Positional: "%v %v", Keys: []Key{KeyItem, Key("colour")}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.tmpl)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadTemplate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(Template{})
	})
}

func TestCompile_CopiesKeys(t *testing.T) {
	keys := []Key{KeyItem}
	tmpl, err := Compile(Template{Positional: "%v", Keys: keys})
	require.NoError(t, err)

	keys[0] = KeyActual
	assert.Equal(t, "x", tmpl.Render(For("x").WithActual("changed")))
}
