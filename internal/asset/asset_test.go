package asset

import "testing"

func TestCatalogShapes(t *testing.T) {
	c := NewCatalog()
	tests := []struct {
		name string
		want Shape
	}{
		{PlayerSprite, ShapeShip},
		{AsteroidSprite, ShapeRing},
		{DepotSprite, ShapeDisc},
		{BulletSprite, ShapeDot},
		{DebrisSprite, ShapeDot},
		{"missing.png", ShapeNone},
	}
	for _, tt := range tests {
		if got := c.Shape(c.Load(tt.name)); got != tt.want {
			t.Errorf("Shape(Load(%q)) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCatalogUnknownName(t *testing.T) {
	c := NewCatalog()
	if h := c.Load("nope.png"); h != NoHandle {
		t.Fatalf("Load(unknown) = %d, want NoHandle", h)
	}
	if s := c.Shape(Handle(999)); s != ShapeNone {
		t.Fatalf("Shape(out of range) = %v, want ShapeNone", s)
	}
}

func TestCatalogHandlesAreDistinct(t *testing.T) {
	c := NewCatalog()
	seen := map[Handle]string{}
	for _, name := range []string{PlayerSprite, AsteroidSprite, DepotSprite, BulletSprite, DebrisSprite} {
		h := c.Load(name)
		if h == NoHandle {
			t.Fatalf("%s resolved to NoHandle", name)
		}
		if other, ok := seen[h]; ok {
			t.Fatalf("%s and %s share handle %d", name, other, h)
		}
		seen[h] = name
	}
}
