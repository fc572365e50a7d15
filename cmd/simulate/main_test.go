package main

import "testing"

func TestParseScript(t *testing.T) {
	segs, err := parseScript("right+jump:3, idle ,dash:2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].in.MoveX != 1 || !segs[0].in.Jump || segs[0].frames != 3 {
		t.Fatalf("unexpected first segment %+v", segs[0])
	}
	if segs[1].frames != 1 {
		t.Fatalf("missing count should mean one frame, got %d", segs[1].frames)
	}

	for _, bad := range []string{"fly:2", "right:0", "left:x"} {
		if _, err := parseScript(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}

func TestSamplerEdges(t *testing.T) {
	segs, err := parseScript("jump:3,idle:1,jump:1,dash:2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := &sampler{segs: segs}
	var jumps, dashes, frames int
	for !s.done() {
		in := s.next()
		if in.JumpPressed {
			jumps++
		}
		if in.DashPressed {
			dashes++
		}
		frames++
	}
	if frames != 7 {
		t.Fatalf("expected 7 frames, got %d", frames)
	}
	if jumps != 2 || dashes != 1 {
		t.Fatalf("expected 2 jump presses and 1 dash press, got %d %d", jumps, dashes)
	}
}
