// Package csv splits a single line of delimited text into its fields.
//
// Fields are separated by a delimiter (comma by default). A field starting with
// the quote character (double quote by default) runs until a quote that is followed
// by the delimiter or by the end of the line; inside such a field a doubled quote
// stands for a literal quote. Fields are never trimmed and an empty line has no fields.
package csv
