// Command clockgen generates the clock geometry as STL, with optional
// PNG previews and a browser animation server.
//
// Usage:
//
//	clockgen -mode model -step 90 -o clock.stl -png clock.png
//	clockgen -mode print -accessories -o plates.stl
//	clockgen -mode animate -serve :8080
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gearclock/scene"
	"gearclock/typeface"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
)

func main() {
	var (
		mode        = flag.String("mode", "model", "output mode: model, print or animate")
		step        = flag.Float64("step", 0, "drive step for the assembled model, degrees of face wheel = step/2")
		t           = flag.Float64("t", 0, "animation parameter in [0,1], one face revolution")
		quality     = flag.Int("quality", 400, "mesh cells along the longest axis")
		accessories = flag.Bool("accessories", false, "include hand and enclosure")
		out         = flag.String("o", "clock.stl", "output STL path")
		png         = flag.String("png", "", "also render a PNG preview to this path")
		fontPath    = flag.String("font", "", "TTF file for the face numerals (default bundled)")
		serve       = flag.String("serve", "", "with -mode animate, serve the animation on this address instead of writing STL")
	)
	flag.Parse()

	opts := scene.Options{Accessories: *accessories}
	if *fontPath != "" {
		ttf, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatal(err)
		}
		f, err := typeface.New(ttf, 0)
		if err != nil {
			log.Fatalf("parse font %s: %v", *fontPath, err)
		}
		opts.Font = f
	}

	var (
		s   sdf.SDF3
		err error
	)
	switch *mode {
	case "model":
		s, err = scene.Assembled(*step, opts)
	case "print":
		s, err = scene.PrintLayout(opts)
	case "animate":
		if *serve != "" {
			log.Fatal(serveAnimation(*serve, *quality, opts))
		}
		s, err = scene.Animate(*t, opts)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := render.CreateSTL(*out, render.NewOctreeRenderer(s, *quality)); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)

	if *png != "" {
		if err := stlToPNG(*out, *png, defaultView); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *png)
	}
}
