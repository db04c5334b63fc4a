// Package expr expands ${env.KEY} references in flow and configuration documents.
package expr
