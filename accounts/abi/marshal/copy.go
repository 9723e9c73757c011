// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package marshal

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common"
)

// UnpackIntoInterface unpacks the outputs of method, event or error name in
// contract into v. A struct receives the outputs by name, see Copy.
// UnpackIntoInterface 根据 ABI 将输出解包到 v 中。
func UnpackIntoInterface(contract abi.ABI, v interface{}, name string, data []byte) error {
	var args abi.Arguments
	if method, ok := contract.Methods[name]; ok {
		args = method.Outputs
	} else if event, ok := contract.Events[name]; ok {
		args = event.Inputs
	} else if e, ok := contract.Errors[name]; ok {
		args = e.Inputs
	} else {
		return fmt.Errorf("abi: could not locate named method, event or error: %s", name)
	}
	values, err := args.Unpack(data)
	if err != nil {
		return err
	}
	return Copy(args, v, values)
}

// Copy stores the values decoded for args into v. A single output goes into
// v itself, or its first field if v is a struct. Several outputs go into
// the struct fields matching their names, or the elements of a slice or
// array.
// Copy 将为 args 解码的值存储到 v 中。
func Copy(args abi.Arguments, v interface{}, values []abi.Value) error {
	// make sure the passed value is arguments pointer
	if reflect.Ptr != reflect.ValueOf(v).Kind() {
		return fmt.Errorf("abi: Unpack(non-pointer %T)", v)
	}
	nonIndexed := args.NonIndexed()
	if len(values) == 0 {
		if len(nonIndexed) != 0 {
			return errors.New("abi: attempting to copy no values while arguments are expected")
		}
		return nil
	}
	if len(nonIndexed) > 1 {
		return copyTuple(nonIndexed, v, values)
	}
	dst := reflect.ValueOf(v).Elem()
	if dst.Kind() == reflect.Struct && !isValueStruct(dst.Type()) && dst.NumField() > 0 {
		if _, isTuple := values[0].(abi.Tuple); !isTuple {
			return Assign(values[0], dst.Field(0))
		}
	}
	return Assign(values[0], dst)
}

// isValueStruct reports whether rt is one of the struct values of package
// abi, which are never field containers.
func isValueStruct(rt reflect.Type) bool {
	return rt.Implements(valueT) || rt == addressT
}

func copyTuple(args abi.Arguments, v interface{}, values []abi.Value) error {
	value := reflect.ValueOf(v).Elem()

	switch value.Kind() {
	case reflect.Struct:
		argNames := make([]string, len(args))
		for i, arg := range args {
			argNames[i] = arg.Name
		}
		abi2struct, err := mapArgNamesToStructFields(argNames, value)
		if err != nil {
			return err
		}
		for i, arg := range args {
			field := value.FieldByName(abi2struct[arg.Name])
			if !field.IsValid() {
				return fmt.Errorf("abi: field %s can't be found in the given value", arg.Name)
			}
			if err := Assign(values[i], field); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.Len() < len(values) {
			value.Set(reflect.MakeSlice(value.Type(), len(values), len(values)))
		}
		if value.Len() < len(values) {
			return fmt.Errorf("abi: insufficient number of arguments for unpack, want %d, got %d", len(values), value.Len())
		}
		for i := range values {
			if err := Assign(values[i], value.Index(i)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("abi: cannot unmarshal tuple in to %v", value.Type())
	}
	return nil
}

// mapArgNamesToStructFields maps a slice of argument names to struct fields.
//
// first round: for each exported field that carries a name in its `abi:""`
// tag and this name exists in the given argument name list, pair them together.
//
// second round: for each argument name that has not been already linked, find what
// variable is expected to be mapped into, if it exists and has not been used, pair them.
//
// Note this function assumes the given value is a struct value.
// mapArgNamesToStructFields 将参数名称映射到结构体字段。
func mapArgNamesToStructFields(argNames []string, value reflect.Value) (map[string]string, error) {
	abi2struct := make(map[string]string)
	struct2abi := make(map[string]string)

	// first round ~~~
	for _, f := range structFields(value.Type()) {
		if !f.tagged {
			continue
		}
		found := false
		for _, arg := range argNames {
			if arg == f.name {
				if abi2struct[arg] != "" {
					return nil, fmt.Errorf("struct: abi tag in '%s' already mapped", f.goName)
				}
				abi2struct[arg] = f.goName
				struct2abi[f.goName] = arg
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("struct: abi tag '%s' defined but not found in abi", f.name)
		}
	}

	// second round ~~~
	for _, argName := range argNames {
		structFieldName := abi.ToCamelCase(argName)

		if structFieldName == "" {
			return nil, errors.New("abi: purely underscored output cannot unpack to struct")
		}

		// this abi has already been paired, skip it... unless there exists another, yet unassigned
		// struct field with the same field name. If so, raise an error:
		//    abi: [ { "name": "value" } ]
		//    struct { Value  *big.Int , Value1 *big.Int `abi:"value"`}
		if abi2struct[argName] != "" {
			if abi2struct[argName] != structFieldName &&
				struct2abi[structFieldName] == "" &&
				value.FieldByName(structFieldName).IsValid() {
				return nil, fmt.Errorf("abi: multiple variables maps to the same abi field '%s'", argName)
			}
			continue
		}

		// return an error if this struct field has already been paired.
		if struct2abi[structFieldName] != "" {
			return nil, fmt.Errorf("abi: multiple outputs mapping to the same struct field '%s'", structFieldName)
		}

		if value.FieldByName(structFieldName).IsValid() {
			abi2struct[argName] = structFieldName
			struct2abi[structFieldName] = argName
		} else {
			// not paired, but annotate as used, to detect cases like
			//   abi : [ { "name": "value" }, { "name": "_value" } ]
			//   struct { Value *big.Int }
			struct2abi[structFieldName] = argName
		}
	}
	return abi2struct, nil
}

// CopyFields stores values into the fields of the struct v points to,
// matching argument names against field names and `abi:"name"` tags.
func CopyFields(args abi.Arguments, v interface{}, values []abi.Value) error {
	if reflect.Ptr != reflect.ValueOf(v).Kind() {
		return fmt.Errorf("abi: Unpack(non-pointer %T)", v)
	}
	if len(args) != len(values) {
		return fmt.Errorf("%w: %d values for %d arguments", abi.ErrTypeMismatch, len(values), len(args))
	}
	if len(args) == 0 {
		return nil
	}
	return copyTuple(args, v, values)
}

// UnpackLog decodes a log of event into out: the non-indexed fields from
// data and the indexed ones from topics. The first topic of a non-anonymous
// event is its id and is checked against the event.
// UnpackLog 将事件日志解码到 out 中。
func UnpackLog(event abi.Event, out interface{}, topics []common.Hash, data []byte) error {
	if !event.Anonymous {
		if len(topics) == 0 {
			return errors.New("abi: no event signature in log topics")
		}
		if topics[0] != event.ID {
			return fmt.Errorf("abi: event signature mismatch: have %s, want %s", topics[0].Hex(), event.ID.Hex())
		}
		topics = topics[1:]
	}
	nonIndexed := event.Inputs.NonIndexed()
	if len(nonIndexed) > 0 {
		values, err := nonIndexed.Unpack(data)
		if err != nil {
			return err
		}
		if err := CopyFields(nonIndexed, out, values); err != nil {
			return err
		}
	}
	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	values, err := abi.ParseTopics(indexed, topics)
	if err != nil {
		return err
	}
	return CopyFields(indexed, out, values)
}
