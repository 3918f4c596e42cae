package assimp

import "testing"

func TestMatrix4x4Identity(t *testing.T) {
	id := Identity4x4()
	v := Vector3{X: 1, Y: 2, Z: 3}

	if got := id.TransformPoint(v); got != v {
		t.Errorf("identity transform changed %v to %v", v, got)
	}
	if got := id.Mul(id); got != id {
		t.Errorf("identity * identity = %v", got)
	}
}

func TestMatrix4x4Translation(t *testing.T) {
	m := Identity4x4()
	m.A4, m.B4, m.C4 = 10, 20, 30

	p := m.TransformPoint(Vector3{X: 1, Y: 1, Z: 1})
	if (p != Vector3{X: 11, Y: 21, Z: 31}) {
		t.Errorf("TransformPoint = %v, want {11 21 31}", p)
	}

	// Directions ignore translation.
	d := m.TransformDirection(Vector3{X: 1, Y: 0, Z: 0})
	if (d != Vector3{X: 1}) {
		t.Errorf("TransformDirection = %v, want {1 0 0}", d)
	}
}

func TestMatrix4x4MulOrder(t *testing.T) {
	// translate then scale, composed as scale * translate, applied to
	// the origin: translation happens first.
	translate := Identity4x4()
	translate.A4 = 1

	scale := Identity4x4()
	scale.A1, scale.B2, scale.C3 = 2, 2, 2

	p := scale.Mul(translate).TransformPoint(Vector3{})
	if (p != Vector3{X: 2}) {
		t.Errorf("composed transform of origin = %v, want {2 0 0}", p)
	}
}
