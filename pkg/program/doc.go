// Package program loads a generator tree from YAML. It stands in for
// the out-of-scope textual DSL parser: the same tree shape the textual
// grammar would produce, expressed as a YAML document so a generator
// program is still plain, reviewable data while the grammar and parser
// generator themselves stay out of scope.
//
// Named generators may reference each other via a "call" node,
// including recursively or out of declaration order: resolution happens
// at Eval time against the program's complete definition table rather
// than during the build pass.
package program
