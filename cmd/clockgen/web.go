package main

// viewerHTML is the whole browser client: it receives one mesh message
// per part, then per-frame step numbers, and rotates each part about
// its own axle on the GPU.
const viewerHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gearclock</title>
<style>body{margin:0;background:#fff8e3}#hud{position:fixed;top:8px;left:8px;font:13px monospace}</style>
</head>
<body>
<div id="hud">speed <input id="speed" type="range" min="0" max="60" value="4"> <span id="step"></span></div>
<script type="module">
import * as THREE from 'https://unpkg.com/three@0.160.0/build/three.module.js';
import {OrbitControls} from 'https://unpkg.com/three@0.160.0/examples/jsm/controls/OrbitControls.js';

const scene = new THREE.Scene();
const camera = new THREE.PerspectiveCamera(45, innerWidth/innerHeight, 1, 2000);
camera.position.set(70, -220, 160);
camera.up.set(0, 0, 1);
const renderer = new THREE.WebGLRenderer({antialias: true});
renderer.setSize(innerWidth, innerHeight);
document.body.appendChild(renderer.domElement);
const controls = new OrbitControls(camera, renderer.domElement);
controls.target.set(70, 0, 10);
scene.add(new THREE.HemisphereLight(0xffffff, 0x404040, 1.1));
const sun = new THREE.DirectionalLight(0xffffff, 1);
sun.position.set(-1, 1, 2);
scene.add(sun);

const parts = [];
let step = 0;

const ws = new WebSocket('ws://' + location.host + '/ws');
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type === 'mesh') {
    const geo = new THREE.BufferGeometry();
    geo.setAttribute('position', new THREE.Float32BufferAttribute(msg.vertices.flat(), 3));
    geo.computeVertexNormals();
    const mat = new THREE.MeshStandardMaterial({color: 0x468966, flatShading: true});
    const mesh = new THREE.Mesh(geo, mat);
    mesh.position.set(...msg.pos);
    scene.add(mesh);
    parts.push({mesh, ratio: msg.ratio, phase: msg.phase});
  } else if (msg.type === 'frame') {
    step = msg.step;
    document.getElementById('step').textContent = step.toFixed(1);
  }
};
document.getElementById('speed').oninput = (e) => ws.send(JSON.stringify({speed: +e.target.value}));

function animate() {
  requestAnimationFrame(animate);
  for (const p of parts) {
    p.mesh.rotation.z = (p.ratio*step + p.phase) * Math.PI/180;
  }
  renderer.render(scene, camera);
}
animate();
</script>
</body>
</html>
`
