// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestResolveBindings(t *testing.T) {
	data := new(table.Builder).
		Add("time", []float64{1, 2}).
		Add("value", []float64{3, 4}).Done()
	out, err := Resolve(map[string]string{"x": "time", "y": "value"}, nil, data)
	if err != nil {
		t.Fatal(err)
	}
	tab := table.Flatten(out)
	if v := tab.MustColumn("x"); !de(v, []float64{1, 2}) {
		t.Fatalf("x should be [1 2]; got %v", v)
	}
	if v := tab.MustColumn("y"); !de(v, []float64{3, 4}) {
		t.Fatalf("y should be [3 4]; got %v", v)
	}
	if tab.Column("time") != nil {
		t.Fatalf("bound columns should be renamed, not duplicated")
	}
	// The input is not modified.
	if data.Column("x") != nil || data.Column("time") == nil {
		t.Fatalf("Resolve should not modify its input")
	}
}

func TestResolveIdentityBinding(t *testing.T) {
	data := new(table.Builder).Add("x", []float64{1}).Done()
	out, err := Resolve(map[string]string{"x": "x"}, nil, data)
	if err != nil {
		t.Fatal(err)
	}
	if v := table.Flatten(out).MustColumn("x"); !de(v, []float64{1}) {
		t.Fatalf("x should be [1]; got %v", v)
	}
}

func TestResolveBindingWinsOverColumn(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{9, 9}).
		Add("t", []float64{1, 2}).Done()
	out, err := Resolve(map[string]string{"x": "t"}, nil, data)
	if err != nil {
		t.Fatal(err)
	}
	if v := table.Flatten(out).MustColumn("x"); !de(v, []float64{1, 2}) {
		t.Fatalf("the binding should replace the column; got %v", v)
	}
}

func TestResolveDefaults(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("stroke", []string{"a", "b"}).Done()
	defaults := map[string]interface{}{
		"stroke": color.Color(color.Black),
		"fill":   color.Color(color.Transparent),
	}
	out, err := Resolve(nil, defaults, data)
	if err != nil {
		t.Fatal(err)
	}
	tab := table.Flatten(out)
	// Defaults fill only what the data omits.
	if v := tab.MustColumn("stroke"); !de(v, []string{"a", "b"}) {
		t.Fatalf("data stroke should win over the default; got %v", v)
	}
	fill := tab.MustColumn("fill")
	if reflect.ValueOf(fill).Len() != 2 {
		t.Fatalf("default fill should be broadcast to every row; got %v", fill)
	}
}

func TestResolveMissingColumn(t *testing.T) {
	data := new(table.Builder).Add("x", []float64{1}).Done()
	_, err := Resolve(map[string]string{"y": "nope"}, nil, data)
	var merr *MissingColumnError
	if !errors.As(err, &merr) {
		t.Fatalf("want *MissingColumnError; got %v", err)
	}
	if merr.Aesthetic != "y" || merr.Column != "nope" {
		t.Fatalf("error should name the aesthetic and column; got %v", merr)
	}
}

func TestResolveGrouped(t *testing.T) {
	data := table.GroupBy(new(table.Builder).
		Add("t", []float64{1, 2, 3}).
		Add("v", []float64{1, 1, 2}).
		Add("group", []int{1, 1, 2}).Done(), "group")
	out, err := Resolve(map[string]string{"x": "t", "y": "v"},
		map[string]interface{}{"size": 0.01}, data)
	if err != nil {
		t.Fatal(err)
	}
	if v, w := len(out.Tables()), 2; v != w {
		t.Fatalf("grouping should be preserved; got %d tables", v)
	}
	for _, gid := range out.Tables() {
		tab := out.Table(gid)
		if tab.Column("x") == nil || tab.Column("size") == nil {
			t.Fatalf("every group should get bound and defaulted columns; got %v", tab.Columns())
		}
	}
}
