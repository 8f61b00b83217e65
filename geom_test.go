package geom

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.NaN()) || !IsFinite(3) {
		t.Errorf("IsFinite mismatch")
	}
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, 0.0, Clamp(-7, 0, 1))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if r := p + q; !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
}

func TestPlanView(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := PlanView(V(3, 100, -2))
	assert.True(t, p.Equal(P(3, -2)), "plan view of (3,100,-2) is %v", p)
	assert.Equal(t, Origin, PlanView(V(math.NaN(), 0, 1)))
}

func TestPerpendicular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, v := range []vec3.T{V(1, 0, 0), V(0, 1, 0), V(0, 0, 1), V(1, 2, 3), V(-4, 0.5, 0.1)} {
		p := Perpendicular(v)
		assert.InDelta(t, 0, vec3.Dot(&v, &p), 1e-9, "not perpendicular to %v", v)
		assert.InDelta(t, 1, p.Length(), 1e-9)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Translation(V(-1, -1, -1)).Transform(V(1, 1, 1))
	if !EqualV(p, vec3.Zero, Epsilon) {
		t.Errorf("Expected (1,1,1) shifted (-1,-1,-1) to be origin, is %s", VString(p))
	}
}

func TestRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	R := Rotation(vec3.UnitY, V(1, 0, 0))
	p := R.Transform(V(0, 5, 0))
	assert.True(t, EqualV(p, V(5, 0, 0), 1e-9), "rotated y onto x: %s", VString(p))
	R = Rotation(vec3.UnitY, V(0, -2, 0))
	p = R.Transform(V(0, 1, 0))
	assert.True(t, EqualV(p, V(0, -1, 0), 1e-9), "rotated y onto -y: %s", VString(p))
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// first rotate y onto z, then move up by 10
	T := Rotation(vec3.UnitY, vec3.UnitZ).Combine(Translation(V(0, 10, 0)))
	p := T.Transform(V(0, 1, 0))
	assert.True(t, EqualV(p, V(0, 10, 1), 1e-9), "combined transform: %s", VString(p))
	assert.Equal(t, Identity().String(), Identity().Combine(Identity()).String())
}
