package renderer

// Normals are derived per fragment from screen-space derivatives, which gives
// the faceted low-poly look without per-face vertex duplication.
const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	gl_Position = uViewProj * world;
}
`

const fragmentShader = `
#version 410 core

in vec3 vWorldPos;
out vec4 FragColor;

uniform vec3 uColor;

uniform vec3 uSky;
uniform vec3 uGround;
uniform float uAmbient;

uniform vec3 uKeyDir;
uniform vec3 uKeyColor;
uniform float uKeyIntensity;

uniform vec3 uBackDir;
uniform vec3 uBackColor;
uniform float uBackIntensity;

void main() {
	vec3 n = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));

	vec3 light = mix(uGround, uSky, (n.y + 1.0) * 0.5) * uAmbient;
	light += clamp(dot(n, uKeyDir), 0.0, 1.0) * uKeyIntensity * uKeyColor;
	light += clamp(dot(n, uBackDir), 0.0, 1.0) * uBackIntensity * uBackColor;

	FragColor = vec4(uColor * light, 1.0);
}
`
