// Package codec maps jar node trees to and from plain JSON (and YAML)
// documents.
//
// The mapping is lossy by design. Dictionary nodes become objects keyed by
// child name; List nodes become arrays, dropping child names (array order
// is the only positional information retained); Text/Number/Boolean leaves
// become the matching JSON primitive. Expression leaves export their raw
// unevaluated formula string, not the computed result.
//
// Importing infers kinds from the JSON value's runtime type and assigns
// every generated node a fresh id. Strings always import as Text, so an
// exported Expression does not survive a round trip. Object and array
// values nested directly inside an array element both import as Dictionary
// kind; JSON null imports as an empty Dictionary. Key order is preserved
// in both directions.
package codec
