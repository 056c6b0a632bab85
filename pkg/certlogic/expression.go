/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certlogic

import (
	"fmt"
	"sort"
)

type opKind int

const (
	opInvalid opKind = iota
	opLiteral
	opArray
	opVar
	opIf
	opStrictEqual
	opEqual
	opStrictNotEqual
	opNotEqual
	opNot
	opNotNot
	opAnd
	opOr
	opLess
	opLessOrEqual
	opGreater
	opGreaterOrEqual
	opIn
	opAdd
	opSubtract
	opMultiply
	opDivide
	opModulo
	opMin
	opMax
	opPlusTime
	opAfter
	opBefore
	opNotAfter
	opNotBefore
	opReduce
	opCount
	opExtractFromUVCI
)

var operators = map[string]opKind{ //nolint:gochecknoglobals
	"var":             opVar,
	"if":              opIf,
	"===":             opStrictEqual,
	"==":              opEqual,
	"!==":             opStrictNotEqual,
	"!=":              opNotEqual,
	"!":               opNot,
	"!!":              opNotNot,
	"and":             opAnd,
	"or":              opOr,
	"<":               opLess,
	"<=":              opLessOrEqual,
	">":               opGreater,
	">=":              opGreaterOrEqual,
	"in":              opIn,
	"+":               opAdd,
	"-":               opSubtract,
	"*":               opMultiply,
	"/":               opDivide,
	"%":               opModulo,
	"min":             opMin,
	"max":             opMax,
	"plusTime":        opPlusTime,
	"after":           opAfter,
	"before":          opBefore,
	"not-after":       opNotAfter,
	"not-before":      opNotBefore,
	"reduce":          opReduce,
	"count":           opCount,
	"extractFromUVCI": opExtractFromUVCI,
}

// node is one operation of a compiled logic expression.
type node struct {
	kind  opKind
	op    string
	value interface{}
	args  []*node
}

// compile turns a decoded JSON logic expression into a node tree. Unknown or malformed operations
// become invalid nodes, which fail only when evaluation reaches them.
func compile(expr interface{}) *node {
	switch e := expr.(type) {
	case map[string]interface{}:
		if len(e) != 1 {
			keys := make([]string, 0, len(e))
			for k := range e {
				keys = append(keys, k)
			}

			sort.Strings(keys)

			return &node{kind: opInvalid, op: fmt.Sprintf("%v", keys)}
		}

		for op, operand := range e {
			kind, ok := operators[op]
			if !ok {
				return &node{kind: opInvalid, op: op}
			}

			return &node{kind: kind, op: op, args: compileOperands(operand)}
		}
	case []interface{}:
		return &node{kind: opArray, op: "array", args: compileOperands(e)}
	}

	return &node{kind: opLiteral, op: "literal", value: expr}
}

func compileOperands(operand interface{}) []*node {
	list, ok := operand.([]interface{})
	if !ok {
		return []*node{compile(operand)}
	}

	args := make([]*node, 0, len(list))

	for _, item := range list {
		args = append(args, compile(item))
	}

	return args
}
