// Package discover walks an indexed class's public mutator methods and
// resolves them into property options.
//
// Discovery order follows the class's own method order (class first, then the
// superclass chain), so output is stable for a given index without any
// re-sorting. Overloaded setters collapse to a single option per derived
// property name; when the class declares a same-named field, the field's
// declared type decides which overload wins.
package discover
