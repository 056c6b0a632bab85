/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certlogic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const uvciPrefix = "URN:UVCI:"

var uvciSeparators = strings.NewReplacer("#", "/", ":", "/") //nolint:gochecknoglobals

type operandCountError struct {
	op   string
	want string
	got  int
}

func (e *operandCountError) Error() string {
	return fmt.Sprintf("operator %q expects %s operands, got %d", e.op, e.want, e.got)
}

// expectOperands checks the operand count of n; a negative upper bound means unbounded.
func expectOperands(n *node, lower, upper int) error {
	got := len(n.args)
	if got >= lower && (upper < 0 || got <= upper) {
		return nil
	}

	want := fmt.Sprintf("%d", lower)

	switch {
	case upper < 0:
		want = fmt.Sprintf("at least %d", lower)
	case upper != lower:
		want = fmt.Sprintf("%d to %d", lower, upper)
	}

	return &operandCountError{op: n.op, want: want, got: got}
}

// eval interprets n against the JSON data document.
func eval(n *node, data []byte) (interface{}, error) { //nolint:gocyclo,cyclop
	switch n.kind {
	case opLiteral:
		return n.value, nil
	case opArray:
		return evalAll(n.args, data)
	case opVar:
		return evalVar(n, data)
	case opIf:
		return evalIf(n, data)
	case opStrictEqual, opEqual, opStrictNotEqual, opNotEqual:
		return evalEquality(n, data)
	case opNot, opNotNot:
		if err := expectOperands(n, 1, 1); err != nil {
			return nil, err
		}

		v, err := eval(n.args[0], data)
		if err != nil {
			return nil, err
		}

		return truthy(v) == (n.kind == opNotNot), nil
	case opAnd, opOr:
		return evalConnective(n, data)
	case opLess, opLessOrEqual, opGreater, opGreaterOrEqual:
		return evalComparison(n, data)
	case opIn:
		return evalIn(n, data)
	case opAdd, opSubtract, opMultiply, opDivide, opModulo, opMin, opMax:
		return evalArithmetic(n, data)
	case opPlusTime:
		return evalPlusTime(n, data)
	case opAfter, opBefore, opNotAfter, opNotBefore:
		return evalDateComparison(n, data)
	case opReduce:
		return evalReduce(n, data)
	case opCount:
		return evalCount(n, data)
	case opExtractFromUVCI:
		return evalExtractFromUVCI(n, data)
	default:
		return nil, fmt.Errorf("unrecognised operation %s", n.op)
	}
}

func evalAll(args []*node, data []byte) ([]interface{}, error) {
	values := make([]interface{}, 0, len(args))

	for _, arg := range args {
		v, err := eval(arg, data)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func evalVar(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 1, 2); err != nil {
		return nil, err
	}

	path, err := eval(n.args[0], data)
	if err != nil {
		return nil, err
	}

	var p string

	switch t := path.(type) {
	case string:
		p = t
	case float64:
		p = fmt.Sprintf("%d", int(t))
	default:
		return nil, fmt.Errorf("var path must be a string, got %s", typeName(path))
	}

	var res gjson.Result
	if p == "" {
		res = gjson.ParseBytes(data)
	} else {
		res = gjson.GetBytes(data, p)
	}

	if !res.Exists() || res.Type == gjson.Null {
		if len(n.args) == 2 {
			return eval(n.args[1], data)
		}

		return nil, nil
	}

	return res.Value(), nil
}

func evalIf(n *node, data []byte) (interface{}, error) {
	if len(n.args) < 3 || len(n.args)%2 == 0 {
		return nil, &operandCountError{op: n.op, want: "an odd number (at least 3) of", got: len(n.args)}
	}

	for i := 0; i+1 < len(n.args); i += 2 {
		guard, err := eval(n.args[i], data)
		if err != nil {
			return nil, err
		}

		if truthy(guard) {
			return eval(n.args[i+1], data)
		}
	}

	return eval(n.args[len(n.args)-1], data)
}

func evalEquality(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 2, 2); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	var equal bool

	if n.kind == opStrictEqual || n.kind == opStrictNotEqual {
		equal, err = strictEqual(values[0], values[1])
	} else {
		equal, err = looseEqual(values[0], values[1])
	}

	if err != nil {
		return nil, err
	}

	if n.kind == opStrictNotEqual || n.kind == opNotEqual {
		return !equal, nil
	}

	return equal, nil
}

// evalConnective returns the deciding operand, evaluating no further than needed.
func evalConnective(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 1, -1); err != nil {
		return nil, err
	}

	var last interface{}

	for _, arg := range n.args {
		v, err := eval(arg, data)
		if err != nil {
			return nil, err
		}

		if truthy(v) == (n.kind == opOr) {
			return v, nil
		}

		last = v
	}

	return last, nil
}

func evalComparison(n *node, data []byte) (interface{}, error) {
	maxOperands := 2
	if n.kind == opLess || n.kind == opLessOrEqual {
		maxOperands = 3
	}

	if err := expectOperands(n, 2, maxOperands); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(values); i++ {
		c, err := compare(values[i], values[i+1])
		if err != nil {
			return nil, fmt.Errorf("operator %q: %w", n.op, err)
		}

		var ok bool

		switch n.kind {
		case opLess:
			ok = c < 0
		case opLessOrEqual:
			ok = c <= 0
		case opGreater:
			ok = c > 0
		default:
			ok = c >= 0
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func evalIn(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 2, 2); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	switch haystack := values[1].(type) {
	case []interface{}:
		for _, item := range haystack {
			eq, err := strictEqual(values[0], item)
			if err == nil && eq {
				return true, nil
			}
		}

		return false, nil
	case string:
		needle, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("operator \"in\": expected string, got %s", typeName(values[0]))
		}

		return strings.Contains(haystack, needle), nil
	default:
		return nil, fmt.Errorf("operator \"in\": expected array, got %s", typeName(values[1]))
	}
}

func evalArithmetic(n *node, data []byte) (interface{}, error) { //nolint:gocyclo,cyclop
	minOperands, maxOperands := 1, -1

	switch n.kind {
	case opAdd:
		minOperands = 0
	case opSubtract:
		maxOperands = 2
	case opDivide, opModulo:
		minOperands, maxOperands = 2, 2
	}

	if err := expectOperands(n, minOperands, maxOperands); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	nums := make([]float64, 0, len(values))

	for _, v := range values {
		num, err := toNumber(v)
		if err != nil {
			return nil, fmt.Errorf("operator %q: %w", n.op, err)
		}

		nums = append(nums, num)
	}

	switch n.kind {
	case opAdd:
		var sum float64
		for _, num := range nums {
			sum += num
		}

		return sum, nil
	case opSubtract:
		if len(nums) == 1 {
			return -nums[0], nil
		}

		return nums[0] - nums[1], nil
	case opMultiply:
		product := 1.0
		for _, num := range nums {
			product *= num
		}

		return product, nil
	case opDivide, opModulo:
		if nums[1] == 0 {
			return nil, fmt.Errorf("operator %q: division by zero", n.op)
		}

		if n.kind == opModulo {
			return math.Mod(nums[0], nums[1]), nil
		}

		return nums[0] / nums[1], nil
	case opMin:
		result := nums[0]
		for _, num := range nums[1:] {
			result = math.Min(result, num)
		}

		return result, nil
	default:
		result := nums[0]
		for _, num := range nums[1:] {
			result = math.Max(result, num)
		}

		return result, nil
	}
}

func evalPlusTime(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 3, 3); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	t, err := toTime(values[0])
	if err != nil {
		return nil, fmt.Errorf("operator \"plusTime\": %w", err)
	}

	amount, err := toInt(values[1])
	if err != nil {
		return nil, fmt.Errorf("operator \"plusTime\": %w", err)
	}

	switch values[2] {
	case "year":
		return t.AddDate(amount, 0, 0), nil
	case "month":
		return t.AddDate(0, amount, 0), nil
	case "day":
		return t.AddDate(0, 0, amount), nil
	case "hour":
		return t.Add(time.Duration(amount) * time.Hour), nil
	default:
		return nil, fmt.Errorf("operator \"plusTime\": unsupported unit %v", values[2])
	}
}

func evalDateComparison(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 2, 3); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(values))

	for _, v := range values {
		t, err := toTime(v)
		if err != nil {
			return nil, fmt.Errorf("operator %q: %w", n.op, err)
		}

		times = append(times, t)
	}

	for i := 0; i+1 < len(times); i++ {
		c := times[i].Compare(times[i+1])

		var ok bool

		switch n.kind {
		case opAfter:
			ok = c > 0
		case opBefore:
			ok = c < 0
		case opNotAfter:
			ok = c <= 0
		default:
			ok = c >= 0
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// evalReduce folds the array operand with the lambda, which sees {"current", "accumulator"} as its data.
func evalReduce(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 3, 3); err != nil {
		return nil, err
	}

	operand, err := eval(n.args[0], data)
	if err != nil {
		return nil, err
	}

	acc, err := eval(n.args[2], data)
	if err != nil {
		return nil, err
	}

	if operand == nil {
		return acc, nil
	}

	items, ok := operand.([]interface{})
	if !ok {
		return nil, fmt.Errorf("operator \"reduce\": expected array, got %s", typeName(operand))
	}

	for _, item := range items {
		scope, err := json.Marshal(map[string]interface{}{"current": item, "accumulator": acc})
		if err != nil {
			return nil, fmt.Errorf("operator \"reduce\": %w", err)
		}

		acc, err = eval(n.args[1], scope)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func evalCount(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 1, 1); err != nil {
		return nil, err
	}

	operand, err := eval(n.args[0], data)
	if err != nil {
		return nil, err
	}

	switch t := operand.(type) {
	case nil:
		return float64(0), nil
	case []interface{}:
		return float64(len(t)), nil
	default:
		return nil, fmt.Errorf("operator \"count\": expected array, got %s", typeName(operand))
	}
}

// evalExtractFromUVCI returns the fragment at the given index of a UVCI split on '/', '#' and ':'.
func evalExtractFromUVCI(n *node, data []byte) (interface{}, error) {
	if err := expectOperands(n, 2, 2); err != nil {
		return nil, err
	}

	values, err := evalAll(n.args, data)
	if err != nil {
		return nil, err
	}

	index, err := toInt(values[1])
	if err != nil {
		return nil, fmt.Errorf("operator \"extractFromUVCI\": %w", err)
	}

	if values[0] == nil {
		return nil, nil
	}

	uvci, ok := values[0].(string)
	if !ok {
		return nil, errors.New("operator \"extractFromUVCI\": expected string or null")
	}

	fragments := strings.Split(uvciSeparators.Replace(strings.TrimPrefix(uvci, uvciPrefix)), "/")

	if index < 0 || index >= len(fragments) {
		return nil, nil
	}

	return fragments[index], nil
}
