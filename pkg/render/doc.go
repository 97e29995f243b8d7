// Package render turns a recipe into the ordered directive stream printed on
// a receipt.
//
// # Overview
//
// Rendering is a pure transformation from a recipe.Recipe and a Config to a
// Document. It never fails and never touches a device; printer.Play issues
// the resulting directives to a sink.
//
// # Ingredient Lines
//
// FormatIngredient prints "- <amount> <unit> <food> (<note>)". Amounts whose
// hundredths match 1/8, 1/4, 1/3, 1/2, 2/3 or 3/4 print as fractions with a
// whole-number prefix from one upwards; other amounts print as plain
// decimals. Unit and food names use their plural form when the amount is
// present and not one.
//
// # Text
//
// Every line is transliterated to printable ASCII by Normalize and wrapped to
// the configured column count by Wrap. Titles print at double size and are
// wrapped to half the width. A column count of 0 disables wrapping.
//
// # Layout
//
//	Title (bold, double size)
//	Stats (servings, working/waiting time)           --stats
//	Ingredients (aggregated, sorted by food)         summary | both
//	Step n: <name>
//	                                     (<t> min)
//	- ingredient lines                              step | both
//	Instruction text
//	QR code linking to the recipe                    --qr
//	Cut / pause                                      --cut-mode
package render
