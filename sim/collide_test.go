package sim

import "testing"

func playerAt(x, y, w, h float64) Player {
	return Player{Pos: Vec{X: x, Y: y}, Size: Vec{X: w, Y: h}, Health: MaxHealth}
}

func TestResolveLandingScenario(t *testing.T) {
	pl := playerAt(100, 100, 64, 64)
	pl.Vel.Y = 5
	platform := Box{X: 80, Y: 160, W: 200, H: 20}

	got := Resolve(pl, []Box{platform})

	if got.Pos.Y != 96 {
		t.Errorf("y = %v, want 96", got.Pos.Y)
	}
	if got.Vel.Y != 0 {
		t.Errorf("vy = %v, want 0", got.Vel.Y)
	}
	if !got.Grounded {
		t.Error("expected grounded after landing")
	}
	if got.Pos.X != 100 {
		t.Errorf("x changed to %v on a vertical resolution", got.Pos.X)
	}
}

func TestResolveAxisSelection(t *testing.T) {
	wall := Box{X: 200, Y: 0, W: 80, H: 80}

	tests := []struct {
		name         string
		player       Player
		wantPos      Vec
		wantVel      Vec
		wantGrounded bool
	}{
		{
			name:    "walking into left face pushes left",
			player:  Player{Pos: Vec{X: 125, Y: 0}, Size: Vec{X: 80, Y: 80}, Vel: Vec{X: 5}},
			wantPos: Vec{X: 120, Y: 0},
			wantVel: Vec{},
		},
		{
			name:    "walking into right face pushes right",
			player:  Player{Pos: Vec{X: 275, Y: 0}, Size: Vec{X: 80, Y: 80}, Vel: Vec{X: -5}},
			wantPos: Vec{X: 280, Y: 0},
			wantVel: Vec{},
		},
		{
			name:    "head bump pushes down without grounding",
			player:  Player{Pos: Vec{X: 210, Y: 75}, Size: Vec{X: 40, Y: 40}, Vel: Vec{Y: -8}},
			wantPos: Vec{X: 210, Y: 80},
			wantVel: Vec{},
		},
		{
			name:         "landing on top grounds",
			player:       Player{Pos: Vec{X: 210, Y: -35}, Size: Vec{X: 40, Y: 40}, Vel: Vec{X: 5, Y: 3}},
			wantPos:      Vec{X: 210, Y: -40},
			wantVel:      Vec{X: 5},
			wantGrounded: true,
		},
		{
			name:         "equal penetration resolves vertically",
			player:       Player{Pos: Vec{X: 190, Y: -10}, Size: Vec{X: 20, Y: 20}},
			wantPos:      Vec{X: 190, Y: -20},
			wantGrounded: true,
		},
		{
			name:    "no overlap leaves player alone",
			player:  Player{Pos: Vec{X: 0, Y: 0}, Size: Vec{X: 80, Y: 80}, Vel: Vec{X: 5, Y: 2}},
			wantPos: Vec{X: 0, Y: 0},
			wantVel: Vec{X: 5, Y: 2},
		},
		{
			name:    "touching edge is not a collision",
			player:  Player{Pos: Vec{X: 120, Y: 0}, Size: Vec{X: 80, Y: 80}, Vel: Vec{X: 5}},
			wantPos: Vec{X: 120, Y: 0},
			wantVel: Vec{X: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.player, []Box{wall})
			if got.Pos != tt.wantPos {
				t.Errorf("pos = %+v, want %+v", got.Pos, tt.wantPos)
			}
			if got.Vel != tt.wantVel {
				t.Errorf("vel = %+v, want %+v", got.Vel, tt.wantVel)
			}
			if got.Grounded != tt.wantGrounded {
				t.Errorf("grounded = %v, want %v", got.Grounded, tt.wantGrounded)
			}
		})
	}
}

func TestResolveResetsGrounded(t *testing.T) {
	pl := playerAt(0, 0, 10, 10)
	pl.Grounded = true

	got := Resolve(pl, []Box{{X: 500, Y: 500, W: 80, H: 80}})
	if got.Grounded {
		t.Error("a frame without landing contact must end airborne")
	}
}

func TestResolveEnclosedPlatform(t *testing.T) {
	// A platform entirely inside the player box still resolves on one axis.
	pl := playerAt(0, 0, 100, 100)
	pl.Vel = Vec{X: 3, Y: 3}
	platform := Box{X: 40, Y: 70, W: 20, H: 20}

	got := Resolve(pl, []Box{platform})
	if got.Box().Overlaps(platform) {
		t.Fatalf("player %+v still overlaps %+v", got.Box(), platform)
	}
	// overlapTop = 30, overlapBottom = 90, overlapLeft = 60, overlapRight = 60.
	if got.Pos.Y != -30 || !got.Grounded || got.Vel.Y != 0 {
		t.Errorf("got pos %+v vel %+v grounded %v", got.Pos, got.Vel, got.Grounded)
	}
	if got.Vel.X != 3 {
		t.Errorf("vx = %v, horizontal velocity must survive a vertical resolution", got.Vel.X)
	}
}

func TestResolveIsIterativeInGeometryOrder(t *testing.T) {
	// Two floor tiles side by side; the player straddles the seam after
	// falling into both. Each tile resolves against the corrected position.
	floor := []Box{
		{X: 0, Y: 160, W: 80, H: 80},
		{X: 80, Y: 160, W: 80, H: 80},
	}
	pl := playerAt(40, 84, 80, 80)
	pl.Vel.Y = 4

	got := Resolve(pl, floor)
	if got.Pos.Y != 80 {
		t.Errorf("y = %v, want 80", got.Pos.Y)
	}
	if !got.Grounded || got.Vel.Y != 0 {
		t.Errorf("grounded = %v vy = %v", got.Grounded, got.Vel.Y)
	}
	for _, p := range floor {
		if got.Box().Overlaps(p) {
			t.Errorf("still overlapping %+v", p)
		}
	}
}

func TestResolveCornerOrderDependence(t *testing.T) {
	// A wall tile stacked on a floor tile. The same overlap resolves
	// differently depending on which tile is visited first; both orders must
	// still leave the player clear of both tiles.
	wall := Box{X: 80, Y: 80, W: 80, H: 80}
	floor := Box{X: 80, Y: 160, W: 80, H: 80}
	pl := playerAt(6, 86, 80, 80)
	pl.Vel = Vec{X: 5, Y: 5}

	for _, order := range [][]Box{{wall, floor}, {floor, wall}} {
		got := Resolve(pl, order)
		for _, b := range order {
			if got.Box().Overlaps(b) {
				t.Errorf("order %+v: player %+v overlaps %+v", order, got.Box(), b)
			}
		}
	}
}
