package physics

import "testing"

func TestSegmentHitsCircle(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Vec2
		center Vec2
		radius float64
		want   bool
	}{
		{
			name: "straight through center",
			p0:   Vec2{X: 0, Y: 50}, p1: Vec2{X: 100, Y: 50},
			center: Vec2{X: 50, Y: 50}, radius: 10,
			want: true,
		},
		{
			name: "clean miss",
			p0:   Vec2{X: 0, Y: 0}, p1: Vec2{X: 100, Y: 0},
			center: Vec2{X: 50, Y: 50}, radius: 10,
			want: false,
		},
		{
			name: "circle behind the segment",
			p0:   Vec2{X: 50, Y: 0}, p1: Vec2{X: 100, Y: 0},
			center: Vec2{X: 0, Y: 0}, radius: 10,
			want: false,
		},
		{
			name: "circle past the segment end",
			p0:   Vec2{X: 0, Y: 0}, p1: Vec2{X: 20, Y: 0},
			center: Vec2{X: 100, Y: 0}, radius: 10,
			want: false,
		},
		{
			name: "ends inside",
			p0:   Vec2{X: 0, Y: 0}, p1: Vec2{X: 45, Y: 50},
			center: Vec2{X: 50, Y: 50}, radius: 10,
			want: true,
		},
		{
			name: "starts and ends inside",
			p0:   Vec2{X: 48, Y: 50}, p1: Vec2{X: 52, Y: 50},
			center: Vec2{X: 50, Y: 50}, radius: 10,
			want: true,
		},
		{
			name: "grazes within radius",
			p0:   Vec2{X: 0, Y: 45}, p1: Vec2{X: 100, Y: 45},
			center: Vec2{X: 50, Y: 50}, radius: 10,
			want: true,
		},
	}

	for _, tt := range tests {
		if got := SegmentHitsCircle(tt.p0, tt.p1, tt.center, tt.radius); got != tt.want {
			t.Errorf("%s: SegmentHitsCircle() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegmentHitsCircleDegeneratePoint(t *testing.T) {
	center := Vec2{X: 10, Y: 10}

	// Zero-length segment inside the circle
	if !SegmentHitsCircle(Vec2{X: 12, Y: 10}, Vec2{X: 12, Y: 10}, center, 5) {
		t.Error("point inside circle should hit")
	}

	// Zero-length segment outside the circle
	if SegmentHitsCircle(Vec2{X: 20, Y: 10}, Vec2{X: 20, Y: 10}, center, 5) {
		t.Error("point outside circle should miss")
	}
}

func TestSegmentHitsCircleTunneling(t *testing.T) {
	// One huge step across a small circle: the endpoints are both far
	// outside, only the sweep can see the crossing.
	p0 := Vec2{X: 0, Y: 300}
	p1 := Vec2{X: 800, Y: 300}
	center := Vec2{X: 400, Y: 302}

	if p0.Distance(center) < 50 || p1.Distance(center) < 50 {
		t.Fatal("test setup broken: endpoints must start far outside")
	}
	if !SegmentHitsCircle(p0, p1, center, 8) {
		t.Error("fast crossing should register as a hit")
	}
}

func TestWrap(t *testing.T) {
	bounds := Vec2{X: 800, Y: 600}

	tests := []struct {
		name        string
		pos         Vec2
		want        Vec2
		wantWrapped bool
	}{
		{"inside", Vec2{X: 400, Y: 300}, Vec2{X: 400, Y: 300}, false},
		{"off left", Vec2{X: -10, Y: 300}, Vec2{X: 790, Y: 300}, true},
		{"off right", Vec2{X: 810, Y: 300}, Vec2{X: 10, Y: 300}, true},
		{"off top", Vec2{X: 400, Y: -5}, Vec2{X: 400, Y: 595}, true},
		{"off bottom", Vec2{X: 400, Y: 605}, Vec2{X: 400, Y: 5}, true},
		{"off corner", Vec2{X: -10, Y: -10}, Vec2{X: 790, Y: 590}, true},
	}

	for _, tt := range tests {
		got, wrapped := Wrap(tt.pos, bounds)
		if got != tt.want {
			t.Errorf("%s: Wrap() = %v, want %v", tt.name, got, tt.want)
		}
		if wrapped != tt.wantWrapped {
			t.Errorf("%s: wrapped = %v, want %v", tt.name, wrapped, tt.wantWrapped)
		}
	}
}
