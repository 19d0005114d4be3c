// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Dict holds a dictionary of boundary condition data such as
//
//   { "type" : "symmetricTraction", "traction" : [10, 10, 10], "rampEndTime" : 1.0 }
//
// Values are decoded from JSON or YAML; numbers may come as float64 or int.
type Dict map[string]interface{}

// ReadDict decodes a dictionary from JSON (or YAML if isYaml) data
func ReadDict(b []byte, isYaml bool) (o Dict, err error) {
	o = make(Dict)
	if isYaml {
		err = yaml.Unmarshal(b, &o)
	} else {
		err = json.Unmarshal(b, &o)
	}
	if err != nil {
		return nil, chk.Err("cannot decode dictionary:\n%v", err)
	}
	return
}

// Found tells whether key exists or not
func (o Dict) Found(key string) bool {
	_, ok := o[key]
	return ok
}

// Word returns a string entry
func (o Dict) Word(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", chk.Err("cannot find key %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", chk.Err("value of %q must be a string. %v is invalid", key, v)
	}
	return s, nil
}

// Scalar returns a number entry
func (o Dict) Scalar(key string) (float64, error) {
	v, ok := o[key]
	if !ok {
		return 0, chk.Err("cannot find key %q", key)
	}
	x, ok := toFloat(v)
	if !ok {
		return 0, chk.Err("value of %q must be a number. %v is invalid", key, v)
	}
	return x, nil
}

// Vector returns a list of numbers
func (o Dict) Vector(key string) ([]float64, error) {
	v, ok := o[key]
	if !ok {
		return nil, chk.Err("cannot find key %q", key)
	}
	res, ok := toFloats(v)
	if !ok {
		return nil, chk.Err("value of %q must be a list of numbers. %v is invalid", key, v)
	}
	return res, nil
}

// Vectors returns a list of lists of numbers
func (o Dict) Vectors(key string) ([][]float64, error) {
	v, ok := o[key]
	if !ok {
		return nil, chk.Err("cannot find key %q", key)
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, chk.Err("value of %q must be a list of lists of numbers. %v is invalid", key, v)
	}
	res := make([][]float64, len(list))
	for i, item := range list {
		res[i], ok = toFloats(item)
		if !ok {
			return nil, chk.Err("item %d of %q must be a list of numbers. %v is invalid", i, key, item)
		}
	}
	return res, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func toFloats(v interface{}) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		return x, true
	case []interface{}:
		res := make([]float64, len(x))
		for i, item := range x {
			var ok bool
			res[i], ok = toFloat(item)
			if !ok {
				return nil, false
			}
		}
		return res, true
	}
	return nil, false
}
