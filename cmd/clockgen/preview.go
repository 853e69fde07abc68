package main

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	previewW, previewH = 1280, 720
	previewFovy        = 30
)

type viewConfig struct {
	lookat r3.Vec
	up     r3.Vec
	eyepos r3.Vec
	near   float64
	far    float64
}

// defaultView looks down on the mechanism from an iso angle.
var defaultView = viewConfig{
	up:     r3.Vec{Z: 1},
	eyepos: r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	near:   1,
	far:    10,
}

// stlToPNG renders an offline preview of an STL with a phong shader.
func stlToPNG(stlName, outputname string, view viewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	var (
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z)
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z)
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)

	// Fit the model in a bi-unit cube so the fixed camera frames it.
	mesh.BiUnitCube()
	const scale = 2 // supersampling
	context := fauxgl.NewContext(previewW*scale, previewH*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(previewW) / float64(previewH)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(previewFovy, aspect, view.near, view.far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#468966")
	context.Shader = shader
	context.DrawMesh(mesh)

	// Downsample for antialiasing.
	image := resize.Resize(previewW, previewH, context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
