// Package status narrates batch progress to the operator on stderr.
//
// Narration is separate from the printer stream: the receipt only ever
// receives output sink directives, while Reporter writes styled status lines
// and a progress bar across the requested recipes.
package status
