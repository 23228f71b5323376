/*
Package message assembles the human readable text carried by guard errors.

A guard describes the call it is checking with a Context, an immutable value
built with chained With calls:

	ctx := message.For("port").WithActual(port).WithMaximum(65535)

The Context is then resolved against a Template:

	text := ctx.Prepare(message.AboveMaximum)
	// port must be at most 65535, got 70000

Templates:

A Template carries two forms. Positional is a fmt format string fed with the
context values named by Keys, in order. Named is a plain string where the
single {item} placeholder is replaced by the item name. When Positional is
non-blank it always wins; Named is only used when Positional is blank.

Templates are compiled once, usually at package initialisation. Compile
rejects a positional format that does not consume exactly its keys, a named
form without {item}, and a template where both forms are blank, so a bad
template fails when it is defined rather than when a guard fails.

Rendering never panics. Context values that were never set render as an
empty string.

Catalogs:

The built-in templates are collected in a Catalog indexed by Kind. A Catalog
can be overlaid from YAML to change the wording without touching code:

	minimum:
	  positional: "%v needs to be %v or more"
	  keys: [item, minimum]
	is_set:
	  named: "please fill in {item}"

	cat, err := message.LoadCatalog(file)
	text := cat.Render(message.KindMinimum, ctx)

The rendered text can then be passed to any WithMessage guard.
*/
package message
