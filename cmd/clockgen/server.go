package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gearclock/parts"
	"gearclock/scene"
	"gearclock/typeface"

	"github.com/fogleman/fauxgl"
	"github.com/gorilla/websocket"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
)

// meshMsg carries one part's triangle soup, sent once per connection.
// The browser applies Z rotation ratio*step+phase at the axle position,
// so frames after the first are just a step number.
type meshMsg struct {
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	Vertices [][3]float64 `json:"vertices"`
	Pos      [3]float64   `json:"pos"`
	Ratio    float64      `json:"ratio"`
	Phase    float64      `json:"phase"`
}

type frameMsg struct {
	Type string  `json:"type"`
	Step float64 `json:"step"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type animServer struct {
	meshes []meshMsg

	mu      sync.Mutex
	clients map[*websocket.Conn]*sync.Mutex
	step    float64
	speed   float64 // drive steps per second
}

// serveAnimation meshes the moving parts once and streams the train
// state to every connected browser.
func serveAnimation(addr string, quality int, opts scene.Options) error {
	srv := &animServer{
		clients: make(map[*websocket.Conn]*sync.Mutex),
		speed:   4,
	}
	if err := srv.buildMeshes(quality, opts); err != nil {
		return err
	}
	go srv.frameLoop()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, viewerHTML)
	})
	http.HandleFunc("/ws", srv.handleWS)
	log.Printf("animation server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// buildMeshes renders each part to STL and loads the triangles back.
func (srv *animServer) buildMeshes(quality int, opts scene.Options) error {
	dir, err := os.MkdirTemp("", "clockgen")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	train, err := scene.Train()
	if err != nil {
		return err
	}
	plate, err := parts.BasePlate()
	if err != nil {
		return err
	}
	font := opts.Font
	if font == nil {
		font = typeface.Default()
	}
	dial, err := parts.Face(font)
	if err != nil {
		return err
	}

	type member struct {
		name         string
		solid        sdf.SDF3
		pos          [3]float64
		ratio, phase float64
	}
	members := []member{{name: "plate", solid: plate}}
	for _, pl := range train {
		members = append(members, member{
			name:  pl.Name,
			solid: pl.Solid,
			pos:   [3]float64{pl.Pos.X, pl.Pos.Y, pl.Pos.Z},
			ratio: pl.Ratio,
			phase: pl.Phase,
		})
	}
	face := train[len(train)-1]
	members = append(members, member{
		name:  "dial",
		solid: dial,
		pos:   [3]float64{face.Pos.X, 0, scene.FaceZ},
		ratio: face.Ratio,
		phase: face.Phase,
	})

	for _, m := range members {
		path := filepath.Join(dir, m.name+".stl")
		if err := render.CreateSTL(path, render.NewOctreeRenderer(m.solid, quality)); err != nil {
			return fmt.Errorf("mesh %s: %w", m.name, err)
		}
		mesh, err := fauxgl.LoadSTL(path)
		if err != nil {
			return err
		}
		msg := meshMsg{
			Type: "mesh", Name: m.name,
			Pos: m.pos, Ratio: m.ratio, Phase: m.phase,
			Vertices: make([][3]float64, 0, 3*len(mesh.Triangles)),
		}
		for _, t := range mesh.Triangles {
			for _, v := range []fauxgl.Vertex{t.V1, t.V2, t.V3} {
				msg.Vertices = append(msg.Vertices, [3]float64{v.Position.X, v.Position.Y, v.Position.Z})
			}
		}
		srv.meshes = append(srv.meshes, msg)
		log.Printf("meshed %s: %d triangles", m.name, len(mesh.Triangles))
	}
	return nil
}

func (srv *animServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	for _, m := range srv.meshes {
		if err := conn.WriteJSON(m); err != nil {
			return
		}
	}
	srv.mu.Lock()
	srv.clients[conn] = connMu
	srv.mu.Unlock()
	defer func() {
		srv.mu.Lock()
		delete(srv.clients, conn)
		srv.mu.Unlock()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if speed, ok := msg["speed"].(float64); ok {
			srv.mu.Lock()
			srv.speed = speed
			srv.mu.Unlock()
		}
	}
}

func (srv *animServer) frameLoop() {
	const fps = 30
	ticker := time.NewTicker(time.Second / fps)
	defer ticker.Stop()
	for range ticker.C {
		srv.mu.Lock()
		srv.step += srv.speed / fps
		frame := frameMsg{Type: "frame", Step: srv.step}
		for conn, mu := range srv.clients {
			mu.Lock()
			err := conn.WriteJSON(frame)
			mu.Unlock()
			if err != nil {
				delete(srv.clients, conn)
				conn.Close()
			}
		}
		srv.mu.Unlock()
	}
}
