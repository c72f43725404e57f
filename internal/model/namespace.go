package model

import "fmt"

// Namespace is one canonical identifier scheme: Prefix, a positive integer, Suffix.
type Namespace struct {
	Prefix string
	Suffix string
}

// Name formats the identifier with the given number.
func (n Namespace) Name(number int) string {
	return fmt.Sprintf("%s%d%s", n.Prefix, number, n.Suffix)
}

// Canonical namespaces produced by testcase standardization.
var (
	VariableNamespace = Namespace{Prefix: "var_", Suffix: "_"}
	FunctionNamespace = Namespace{Prefix: "func_", Suffix: "_"}
	ClassNamespace    = Namespace{Prefix: "cls_", Suffix: "_"}
)

// DefaultNamespaces lists the namespaces renumbered at the end of the full pipeline.
var DefaultNamespaces = []Namespace{VariableNamespace, FunctionNamespace, ClassNamespace}
