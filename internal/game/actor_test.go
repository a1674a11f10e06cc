package game

import "testing"

func TestConstructorDefaults(t *testing.T) {
	tests := []struct {
		name   string
		actor  Actor
		kind   Kind
		life   float64
		bbox   float64
		layer  int
		angVel float64
	}{
		{"player", NewPlayer(), KindPlayer, 1.0, 12.0, 500, 0},
		{"wormhole", NewWormhole(), KindWormhole, 1.0, 16.0, 495, 0},
		{"rock", NewRock(), KindRock, 1.0, 12.0, 500, 0},
		{"shot", NewShot(), KindShot, 2.0, 6.0, 500, 0.1},
		{"radar", NewRadarPulse(8), KindRadarPulse, 3.0, 6.0, 8, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.actor
			if a.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", a.Kind, tt.kind)
			}
			if a.Life != tt.life {
				t.Errorf("life = %v, want %v", a.Life, tt.life)
			}
			if a.BBox != tt.bbox {
				t.Errorf("bbox = %v, want %v", a.BBox, tt.bbox)
			}
			if a.Layer != tt.layer {
				t.Errorf("layer = %v, want %v", a.Layer, tt.layer)
			}
			if a.AngVel != tt.angVel {
				t.Errorf("angVel = %v, want %v", a.AngVel, tt.angVel)
			}
			if a.Pos.X != 0 || a.Pos.Y != 0 || a.Vel.X != 0 || a.Vel.Y != 0 {
				t.Errorf("new actor should start at rest at the origin")
			}
		})
	}
}

func TestPlayerStartsOnRadar(t *testing.T) {
	if NewPlayer().Sys != SubsystemRadar {
		t.Error("player should start with the radar subsystem selected")
	}
}
