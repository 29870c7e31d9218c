// pkg/ship/catalog_test.go
package ship

import "testing"

func TestCatalog_ClampInvariantsHoldOnFreshData(t *testing.T) {
	tests := []struct {
		name string
		make func() *Data
	}{
		{"fighter", func() *Data { return Fighter(0) }},
		{"frigate", func() *Data { return Frigate(0) }},
		{"cruiser", func() *Data { return Cruiser(0) }},
		{"missile", func() *Data { return Missile(0) }},
		{"torpedo", func() *Data { return Torpedo(0) }},
		{"asteroid", func() *Data { return Asteroid(1) }},
		{"target", func() *Data { return Target(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.make()
			if d.Acceleration.X != 0 || d.Acceleration.Y != 0 {
				t.Errorf("fresh template has nonzero pending acceleration: %+v", d.Acceleration)
			}
			if d.AngularAcceleration != 0 {
				t.Errorf("fresh template has nonzero pending angular acceleration: %v", d.AngularAcceleration)
			}
			for i, g := range d.Guns {
				if g.ReloadTimeRemaining != 0 {
					t.Errorf("gun %d starts with nonzero reload remaining: %v", i, g.ReloadTimeRemaining)
				}
			}
			for i, l := range d.MissileLaunchers {
				if l.ReloadTimeRemaining != 0 {
					t.Errorf("launcher %d starts with nonzero reload remaining: %v", i, l.ReloadTimeRemaining)
				}
				if l.Class.Kind != KindMissile && l.Class.Kind != KindTorpedo {
					t.Errorf("launcher %d has non-missile, non-torpedo class %v", i, l.Class)
				}
			}
			if d.Destroyed {
				t.Error("fresh template is already destroyed")
			}
		})
	}
}

func TestCatalog_ReturnsFreshSlicesNotSharedAcrossCalls(t *testing.T) {
	a := Fighter(0)
	b := Fighter(0)

	a.Guns[0].ReloadTimeRemaining = 99

	if b.Guns[0].ReloadTimeRemaining != 0 {
		t.Fatal("Fighter() calls share backing gun slice; mutating one affected the other")
	}
}

func TestCatalog_CruiserGeometryMatchesSpecifiedLayout(t *testing.T) {
	c := Cruiser(0)
	if len(c.MissileLaunchers) != 3 {
		t.Fatalf("expected 3 launchers, got %d", len(c.MissileLaunchers))
	}
	if c.MissileLaunchers[0].Offset.Y != 30 || c.MissileLaunchers[0].Angle != Tau/4 {
		t.Errorf("launcher 0 = %+v, want offset.Y=30 angle=Tau/4", c.MissileLaunchers[0])
	}
	if c.MissileLaunchers[1].Offset.Y != -30 || c.MissileLaunchers[1].Angle != -Tau/4 {
		t.Errorf("launcher 1 = %+v, want offset.Y=-30 angle=-Tau/4", c.MissileLaunchers[1])
	}
	if c.MissileLaunchers[2].Class.Kind != KindTorpedo || c.MissileLaunchers[2].ReloadTime != 3.0 {
		t.Errorf("launcher 2 = %+v, want torpedo reload 3.0", c.MissileLaunchers[2])
	}
	if c.Guns[0].BurstSize != 5 || c.Guns[0].Inaccuracy != 0.035 || c.Guns[0].ReloadTime != 0.2 {
		t.Errorf("cruiser main gun = %+v, want burst 5 inaccuracy 0.035 reload 0.2", c.Guns[0])
	}
}

func TestCatalog_FrigateGeometryMatchesSpecifiedLayout(t *testing.T) {
	f := Frigate(0)
	if f.Guns[0].Damage != 1000 || f.Guns[0].Speed != 4000 || f.Guns[0].ReloadTime != 1.0 {
		t.Errorf("main gun = %+v, want damage 1000 speed 4000 reload 1.0", f.Guns[0])
	}
	if f.Guns[1].Offset.Y != 15 || f.Guns[2].Offset.Y != -15 {
		t.Errorf("turret offsets = %+v, %+v, want Y=+15 and Y=-15", f.Guns[1].Offset, f.Guns[2].Offset)
	}
}
