// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// DictAllocator defines a function that allocates a patch field from a dictionary
type DictAllocator func(p Patch, iF InternalField, dict Dict) (PatchField, error)

// MapAllocator defines a function that allocates a patch field by mapping an existing one onto a new patch
type MapAllocator func(src PatchField, p Patch, iF InternalField, m Mapper) (PatchField, error)

// PatchAllocator defines a function that allocates a patch field with default data
type PatchAllocator func(p Patch, iF InternalField) PatchField

// allocator holds all functions that allocate a given type of patch field
type allocator struct {
	fromDict  DictAllocator
	fromMap   MapAllocator
	fromPatch PatchAllocator
}

// allocators holds all patch field allocators; type tag => allocator
var allocators = make(map[string]*allocator)

// SetAllocator sets the callback functions to allocate a new type of patch field
func SetAllocator(typ string, fromDict DictAllocator, fromMap MapAllocator, fromPatch PatchAllocator) {
	if _, ok := allocators[typ]; ok {
		chk.Panic("cannot set allocator for %q because type exists already", typ)
	}
	if fromDict == nil || fromMap == nil || fromPatch == nil {
		chk.Panic("all allocators for %q must be given", typ)
	}
	allocators[typ] = &allocator{fromDict, fromMap, fromPatch}
}

// Types returns the sorted list of available type tags
func Types() (types []string) {
	for typ := range allocators {
		types = append(types, typ)
	}
	sort.Strings(types)
	return
}

// New returns a new patch field from the factory. The type tag is read from dict["type"]
func New(p Patch, iF InternalField, dict Dict) (ptf PatchField, err error) {
	typ, err := dict.Word("type")
	if err != nil {
		return nil, chk.Err("cannot get type of patch field for patch %q:\n%v", p.Name(), err)
	}
	a, ok := allocators[typ]
	if !ok {
		return nil, chk.Err("cannot get allocator for patch field {type=%q, patch=%q}", typ, p.Name())
	}
	ptf, err = a.fromDict(p, iF, dict)
	if err != nil {
		return nil, chk.Err("cannot allocate patch field {type=%q, patch=%q}:\n%v", typ, p.Name(), err)
	}
	return
}

// NewMapped returns a new patch field of the same type as src, mapped onto patch p
func NewMapped(src PatchField, p Patch, iF InternalField, m Mapper) (ptf PatchField, err error) {
	a, ok := allocators[src.Type()]
	if !ok {
		return nil, chk.Err("cannot get allocator for patch field {type=%q, patch=%q}", src.Type(), p.Name())
	}
	return a.fromMap(src, p, iF, m)
}

// NewDefault returns a new patch field of type typ with default data
func NewDefault(typ string, p Patch, iF InternalField) (ptf PatchField, err error) {
	a, ok := allocators[typ]
	if !ok {
		return nil, chk.Err("cannot get allocator for patch field {type=%q, patch=%q}", typ, p.Name())
	}
	return a.fromPatch(p, iF), nil
}
