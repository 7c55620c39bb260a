// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package extract locates ICU message definitions in Go syntax trees.
package extract

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
)

// Descriptor models a message definition: the ID, DefaultMessage and
// Description fields of a descriptor literal. Fields that are not constant
// strings are left empty.
type Descriptor struct {
	ID             string
	DefaultMessage string
	Description    string
}

// Candidate pairs a descriptor with the expression holding its default message.
type Candidate struct {
	Descriptor Descriptor
	// Node is the DefaultMessage value expression, or nil if the literal has none.
	Node ast.Expr
}

// Options describes how the caller visits the syntax tree.
type Options struct {
	// CallsOnly is set when the caller never visits composite literals on its
	// own. Calls then also yield the component literals in their argument.
	CallsOnly bool
}

// extractor holds the context for extracting messages from a single node.
type extractor struct {
	info     *types.Info
	settings Settings
	opts     Options
}

// Messages returns the message candidates attributable to n.
//
// Calls to a configured function name yield the descriptors found in their
// first argument. Composite literals of a configured component type yield
// their own descriptor. Any other node yields nothing.
//
// info may be nil, in which case only plain string literals in keyed fields
// are understood.
func Messages(n ast.Node, info *types.Info, settings Settings) []Candidate {
	return MessagesWith(n, info, settings, Options{})
}

// MessagesWith is Messages for a caller described by opts.
func MessagesWith(n ast.Node, info *types.Info, settings Settings, opts Options) []Candidate {
	e := &extractor{info: info, settings: settings, opts: opts}

	switch x := n.(type) {
	case *ast.CallExpr:
		return e.handleCallExpr(x)
	case *ast.CompositeLit:
		return e.handleCompositeLit(x)
	}

	return nil
}

// handleCallExpr inspects FormatMessage-style calls.
func (e *extractor) handleCallExpr(x *ast.CallExpr) []Candidate {
	if len(x.Args) == 0 {
		return nil
	}

	name := exprName(x.Fun)
	if name == "" || !e.settings.isFunctionName(name) {
		return nil
	}

	// A call expression whose Fun is a type is a conversion, not a call.
	if e.info != nil {
		if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
			return nil
		}
	}

	var out []Candidate

	e.collectDescriptors(x.Args[0], &out)

	return out
}

// handleCompositeLit inspects declarative FormattedMessage-style literals.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) []Candidate {
	if !e.settings.isComponentName(e.typeName(x)) {
		return nil
	}

	d, node, ok := e.descriptor(x)
	if !ok || (d.DefaultMessage == "" && node == nil) {
		return nil
	}

	return []Candidate{{Descriptor: d, Node: node}}
}

// collectDescriptors appends the descriptor literals found in expr. It looks
// through & and into the elements of map, slice and array literals, so both
// DefineMessage(Descriptor{...}) and DefineMessages(map[string]Descriptor{...})
// are understood.
func (e *extractor) collectDescriptors(expr ast.Expr, out *[]Candidate) {
	switch x := ast.Unparen(expr).(type) {
	case *ast.UnaryExpr:
		if x.Op == token.AND {
			e.collectDescriptors(x.X, out)
		}

	case *ast.CompositeLit:
		// Component literals are visited on their own unless only calls are.
		if !e.opts.CallsOnly && e.settings.isComponentName(e.typeName(x)) {
			return
		}

		if d, node, ok := e.descriptor(x); ok {
			if d.DefaultMessage != "" || node != nil {
				*out = append(*out, Candidate{Descriptor: d, Node: node})
			}

			return
		}

		for _, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				elt = kv.Value
			}

			e.collectDescriptors(elt, out)
		}
	}
}

// descriptor reads the descriptor fields of x. ok is false when x is not a
// struct literal with a DefaultMessage field.
func (e *extractor) descriptor(x *ast.CompositeLit) (Descriptor, ast.Expr, bool) {
	st, typed := e.structType(x)
	if typed && st == nil {
		return Descriptor{}, nil, false
	}

	var (
		d     Descriptor
		node  ast.Expr
		found bool
	)

	for i, elt := range x.Elts {
		var (
			field string
			value ast.Expr
		)

		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			id, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}

			field, value = id.Name, kv.Value
		} else if st != nil && i < st.NumFields() {
			// Positional field: rely on declared field order.
			field, value = st.Field(i).Name(), elt
		} else {
			continue
		}

		switch field {
		case "ID", "Id":
			d.ID, _ = e.constString(value)
		case "DefaultMessage":
			d.DefaultMessage, _ = e.constString(value)
			node = value
			found = true
		case "Description":
			d.Description, _ = e.constString(value)
		}
	}

	// A descriptor type whose DefaultMessage was left out is still a descriptor.
	if !found && st != nil {
		for i := range st.NumFields() {
			if st.Field(i).Name() == "DefaultMessage" {
				found = true

				break
			}
		}
	}

	return d, node, found
}

// structType returns the struct type of x. typed reports whether type
// information was available; st is nil when the literal is not a struct.
func (e *extractor) structType(x *ast.CompositeLit) (st *types.Struct, typed bool) {
	if e.info == nil {
		return nil, false
	}

	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return nil, false
	}

	// Unwrap one level of pointer so &T{...} is treated as T{...}.
	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	st, _ = t.Underlying().(*types.Struct)

	return st, true
}

// typeName returns the name of the type of x, without package qualifier.
// Elided types, as in map[string]T{"k": {...}}, are resolved through type information.
func (e *extractor) typeName(x *ast.CompositeLit) string {
	if x.Type != nil {
		return exprName(x.Type)
	}

	if e.info == nil {
		return ""
	}

	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return ""
	}

	t := types.Unalias(tv.Type)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name()
	}

	return ""
}

// exprName returns the trailing identifier of a name, selector or generic
// instantiation expression.
func exprName(expr ast.Expr) string {
	switch x := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return x.Name
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.IndexExpr:
		return exprName(x.X)
	case *ast.IndexListExpr:
		return exprName(x.X)
	}

	return ""
}

// constString evaluates expr to a constant string if possible using types.Info.
// Handles string literals, const identifiers, and constant expressions like "a" + "b".
// Without type information, only plain string literals are accepted.
func (e *extractor) constString(expr ast.Expr) (string, bool) {
	if e.info != nil {
		if tv, ok := e.info.Types[expr]; ok {
			if tv.Value == nil || tv.Value.Kind() != constant.String {
				return "", false
			}

			return constant.StringVal(tv.Value), true
		}
	}

	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return s, true
}
