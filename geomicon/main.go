// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geomicon renders a contact sheet of geom preview icons.
//
// For every registered geom kind, geomicon constructs the kind with
// no extra parameters, renders its preview glyph, and lays the glyphs
// out in a labeled grid. This is a quick way to eyeball what each
// kind draws and to sanity check a newly registered kind's icon data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/gogram/gram/geom"
	"github.com/gogram/gram/grob"
)

func main() {
	log.SetPrefix("geomicon: ")
	log.SetFlags(0)

	var (
		flagOut  = flag.String("o", "", "write output to `file` (default: stdout)")
		flagSize = flag.Int("size", 96, "icon cell size in `pixels`")
		flagCols = flag.Int("cols", 4, "icons per row")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	out := os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	kinds := geom.Kinds()
	cell, cols := *flagSize, *flagCols
	const label = 16 // room under each icon for the kind name
	rows := (len(kinds) + cols - 1) / cols

	canvas := svg.New(out)
	canvas.Start(cols*cell, rows*(cell+label))
	env := grob.UnitEnv(float64(cell), float64(cell))
	for i, kind := range kinds {
		g, err := geom.Construct(kind, geom.Params{})
		if err != nil {
			log.Fatal(err)
		}
		node, err := geom.Preview(g)
		if err != nil {
			log.Fatal(err)
		}

		x, y := (i%cols)*cell, (i/cols)*(cell+label)
		canvas.Group(fmt.Sprintf(`transform="translate(%d,%d)"`, x, y))
		node.Draw(canvas, env)
		canvas.Text(cell/2, cell+label-4, kind, `text-anchor="middle"`, `font-size="12px"`)
		canvas.Gend()
	}
	canvas.End()
}
