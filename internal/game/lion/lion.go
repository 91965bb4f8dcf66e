// Package lion builds the lion and fan scene graphs and copies animation
// state from internal/anim into their nodes once per frame.
package lion

import (
	"fmt"
	"math/rand/v2"

	"github.com/Faultbox/lionfan/internal/anim"
	"github.com/Faultbox/lionfan/internal/engine/geometry"
	"github.com/Faultbox/lionfan/internal/engine/scene"
	"github.com/Faultbox/lionfan/pkg/math"
)

// BodyFrontZ is the z the top ring of the body cylinder is pushed to, so the
// chest leans forward under the head.
const BodyFrontZ float32 = 70

// Lion is the lion's scene graph plus the animation state that drives it.
type Lion struct {
	Root *scene.Node

	Pose *anim.Pose
	Wind *anim.Oscillator

	deformer *anim.BodyDeformer
	bodyMesh *geometry.Mesh

	body, head, mane    *scene.Node
	maneParts           []*scene.Node
	leftEar, rightEar   *scene.Node
	leftEye, rightEye   *scene.Node
	leftIris, rightIris *scene.Node
	mouth, smile, lips  *scene.Node
	leftKnee, rightKnee *scene.Node
	mustaches           [anim.MustacheCount]*scene.Node
}

// New builds the lion. rng seeds the mane sway table.
func New(rng *rand.Rand) (*Lion, error) {
	l := &Lion{
		Root: scene.NewGroup("lion"),
		Pose: anim.NewPose(),
	}

	if err := l.buildBody(); err != nil {
		return nil, err
	}
	l.buildHead(anim.NewMane(rng))
	l.buildKnees()
	l.buildFeet()
	return l, nil
}

// Update advances the lion one frame in the given mode: pose, secondary
// motion, then body deformation.
func (l *Lion) Update(mode anim.Mode, pointer math.Vec2) {
	l.Pose.Update(mode, pointer)
	l.applyPose()

	sway := l.Wind.Update(mode, pointer, l.Pose.HeadRotation())
	l.applySway(sway)

	l.deformer.Apply(l.bodyMesh.Positions, l.head.Position.X)
	l.bodyMesh.MarkDirty()
}

// Head returns the head group.
func (l *Lion) Head() *scene.Node {
	return l.head
}

// BodyMesh returns the deformed body mesh.
func (l *Lion) BodyMesh() *geometry.Mesh {
	return l.bodyMesh
}

// Deformer returns the body vertex deformer.
func (l *Lion) Deformer() *anim.BodyDeformer {
	return l.deformer
}

func (l *Lion) buildBody() error {
	mesh, err := geometry.NewCylinder(30, 80, 140, 4)
	if err != nil {
		return fmt.Errorf("build body: %w", err)
	}
	for _, idx := range anim.BodyVertices {
		if idx < len(mesh.Positions) {
			mesh.Positions[idx].Z = BodyFrontZ
		}
	}
	l.deformer, err = anim.NewBodyDeformer(mesh.Positions, anim.BodyVertices)
	if err != nil {
		return fmt.Errorf("build body: %w", err)
	}

	l.bodyMesh = mesh
	l.body = scene.NewMesh("body", mesh, geometry.Yellow)
	l.body.Position = math.Vec3{Y: -30, Z: -60}
	l.Root.Add(l.body)
	return nil
}

func (l *Lion) buildHead(mane []anim.ManeSegment) {
	l.head = scene.NewGroup("head")
	l.head.Position.Y = anim.HeadRestY

	l.buildMane(mane)

	face := scene.NewMesh("face", geometry.NewBox(80, 80, 80), geometry.Yellow)
	face.Position.Z = 135

	ear := geometry.NewBox(20, 20, 20)
	l.rightEar = scene.NewMesh("ear-right", ear, geometry.Yellow)
	l.rightEar.Position = math.Vec3{X: -50, Y: 50, Z: 105}
	l.leftEar = scene.NewMesh("ear-left", ear, geometry.Yellow)
	l.leftEar.Position = math.Vec3{X: 50, Y: 50, Z: 105}

	eye := geometry.NewBox(5, 30, 30)
	l.leftEye = scene.NewMesh("eye-left", eye, geometry.White)
	l.leftEye.Position = math.Vec3{X: 40, Y: anim.IrisRestY, Z: anim.IrisRestZ}
	l.rightEye = scene.NewMesh("eye-right", eye, geometry.White)
	l.rightEye.Position = math.Vec3{X: -40, Y: anim.IrisRestY, Z: anim.IrisRestZ}

	iris := geometry.NewBox(4, 10, 10)
	l.leftIris = scene.NewMesh("iris-left", iris, geometry.Purple)
	l.leftIris.Position = math.Vec3{X: 42, Y: anim.IrisRestY, Z: anim.IrisRestZ}
	l.rightIris = scene.NewMesh("iris-right", iris, geometry.Purple)
	l.rightIris.Position = math.Vec3{X: -42, Y: anim.IrisRestY, Z: anim.IrisRestZ}

	nose := scene.NewMesh("nose", geometry.NewBox(40, 40, 20), geometry.Grey)
	nose.Position = math.Vec3{Y: 25, Z: 170}

	l.mouth = scene.NewMesh("mouth", geometry.NewBox(20, 20, 10), geometry.Black)
	l.mouth.Position = math.Vec3{Y: -30, Z: anim.MouthRestZ}
	l.mouth.Scale = math.Vec3{X: 0.5, Y: 0.5, Z: 1}

	// A half torus with 10 tubular segments cannot fail.
	smile, _ := geometry.NewTorus(12, 4, 2, 10, math.Pi)
	l.smile = scene.NewMesh("smile", smile, geometry.Black)
	l.smile.Position = math.Vec3{Y: anim.SmileRestY, Z: anim.SmileRestZ}
	l.smile.Rotation.Z = anim.SmileRestRot

	l.lips = scene.NewMesh("lips", geometry.NewBox(40, 15, 20), geometry.Yellow)
	l.lips.Position = math.Vec3{Y: anim.LipsRestY, Z: 165}

	l.head.Add(l.mane, face, l.rightEar, l.leftEar, l.rightEye, l.leftEye,
		l.leftIris, l.rightIris, nose, l.mouth, l.smile, l.lips)
	l.head.Add(spots()...)
	l.buildMustaches()
	l.Root.Add(l.head)
}

func (l *Lion) buildMane(mane []anim.ManeSegment) {
	l.mane = scene.NewGroup("mane")
	l.mane.Position = math.Vec3{Y: -10, Z: 80}
	l.mane.Rotation.Z = math.Pi / 4

	block := geometry.NewBox(40, 40, 15)
	l.maneParts = make([]*scene.Node, len(mane))
	for i, seg := range mane {
		n := scene.NewMesh(fmt.Sprintf("mane-%d-%d", seg.Col, seg.Row), block, geometry.Red)
		n.Position = math.Vec3{X: seg.Rest.X, Y: seg.Rest.Y}
		l.maneParts[i] = n
		l.mane.Add(n)
	}
	l.Wind = anim.NewOscillator(mane)
}

// spots are the freckles either side of the muzzle.
func spots() []*scene.Node {
	mesh := geometry.NewBox(4, 4, 4)
	offsets := []struct{ y, z float32 }{{0, 150}, {-10, 160}, {-15, 140}, {-20, 150}}
	var out []*scene.Node
	for _, side := range []float32{39, -39} {
		for _, o := range offsets {
			n := scene.NewMesh(fmt.Sprintf("spot-%d", len(out)), mesh, geometry.Red)
			n.Position = math.Vec3{X: side, Y: o.y, Z: o.z}
			out = append(out, n)
		}
	}
	return out
}

func (l *Lion) buildMustaches() {
	mesh := geometry.NewBox(30, 2, 1).Translate(15, 0, 0)

	rows := []math.Vec2{{X: 30, Y: -5}, {X: 35, Y: -12}, {X: 30, Y: -19}}
	for i := range l.mustaches {
		row := rows[i%len(rows)]
		n := scene.NewMesh(fmt.Sprintf("mustache-%d", i), mesh, geometry.Grey)
		n.Position = math.Vec3{X: row.X, Y: row.Y, Z: 175}
		if i >= len(rows) {
			n.Position.X = -row.X
			n.Rotation.Z = math.Pi
		}
		l.mustaches[i] = n
		l.head.Add(n)
	}
}

func (l *Lion) buildKnees() {
	mesh := geometry.NewBox(25, 80, 80).Translate(0, 50, 0)

	l.rightKnee = scene.NewMesh("knee-right", mesh, geometry.Yellow)
	l.rightKnee.Position = math.Vec3{X: -65, Y: -110, Z: -20}
	l.rightKnee.Rotation.Z = anim.KneeRestRotZ
	l.leftKnee = scene.NewMesh("knee-left", mesh, geometry.Yellow)
	l.leftKnee.Position = math.Vec3{X: 65, Y: -110, Z: -20}
	l.leftKnee.Rotation.Z = -anim.KneeRestRotZ
	l.Root.Add(l.rightKnee, l.leftKnee)
}

func (l *Lion) buildFeet() {
	mesh := geometry.NewBox(40, 20, 20)
	feet := []struct {
		name string
		pos  math.Vec3
	}{
		{"foot-back-left", math.Vec3{X: 75, Y: -90, Z: 30}},
		{"foot-back-right", math.Vec3{X: -75, Y: -90, Z: 30}},
		{"foot-front-right", math.Vec3{X: -22, Y: -90, Z: 40}},
		{"foot-front-left", math.Vec3{X: 22, Y: -90, Z: 40}},
	}
	for _, f := range feet {
		n := scene.NewMesh(f.name, mesh, geometry.Yellow)
		n.Position = f.pos
		l.Root.Add(n)
	}
}

func (l *Lion) applyPose() {
	p := l.Pose

	l.head.Rotation.X = p.HeadRotX.Current
	l.head.Rotation.Y = p.HeadRotY.Current
	l.head.Position = p.HeadPosition()

	l.leftEye.Scale.Y = p.EyeScale.Current
	l.rightEye.Scale.Y = p.EyeScale.Current

	for _, iris := range []*scene.Node{l.leftIris, l.rightIris} {
		iris.Scale.Y = p.IrisScaleY.Current
		iris.Scale.Z = p.IrisScaleZ.Current
		iris.Position.Y = p.IrisPosY.Current
	}
	l.leftIris.Position.Z = p.LeftIrisPosZ.Current
	l.rightIris.Position.Z = p.RightIrisPosZ.Current

	l.rightKnee.Rotation.Z = p.RightKneeRotZ.Current
	l.leftKnee.Rotation.Z = p.LeftKneeRotZ.Current

	l.lips.Position.X = p.LipsPosX.Current
	l.lips.Position.Y = p.LipsPosY.Current

	l.smile.Position.X = p.SmilePosX.Current
	l.smile.Position.Y = p.SmilePosY.Current
	l.smile.Position.Z = p.SmilePosZ.Current
	l.smile.Rotation.Z = p.SmileRotZ.Current

	l.mouth.Position.Z = p.MouthPosZ.Current
}

func (l *Lion) applySway(s anim.Sway) {
	l.leftEar.Rotation.X = s.LeftEarRotX
	l.rightEar.Rotation.X = s.RightEarRotX

	l.mane.Rotation.X = s.ManeRot.X
	l.mane.Rotation.Y = s.ManeRot.Y
	for i, n := range l.maneParts {
		n.Position.Z = s.ManeZ[i]
		n.Rotation.Y = s.ManeRotY[i]
	}
	for i, n := range l.mustaches {
		n.Rotation.Y = s.MustacheRotY[i]
	}
}
