// Package keypath splits composite translation keys into ordered segments
// and joins them back.
//
// A key such as "menu.file.open" becomes the path [menu file open] when the
// separator is ".". Segments never contain the separator and no escaping is
// supported, so Parse and String are exact inverses for any key.
package keypath
