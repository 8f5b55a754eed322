package gen

import "testing"

func TestStampSupersedesOlderTokens(t *testing.T) {
	var g Gate

	first := g.Stamp()
	if !g.Current(first) {
		t.Fatal("fresh token should be current")
	}

	second := g.Stamp()
	if g.Current(first) {
		t.Error("old token still current after a new stamp")
	}
	if !g.Current(second) {
		t.Error("newest token should be current")
	}
}

func TestZeroTokenIsNeverCurrent(t *testing.T) {
	var g Gate
	if g.Current(0) {
		t.Error("zero token must not be current on a fresh gate")
	}
	g.Stamp()
	if g.Current(0) {
		t.Error("zero token must not be current after stamping")
	}
}

func TestInvalidateDropsOutstandingWork(t *testing.T) {
	var g Gate
	token := g.Stamp()
	g.Invalidate()
	if g.Current(token) {
		t.Error("token survived Invalidate")
	}

	next := g.Stamp()
	if !g.Current(next) {
		t.Error("gate must keep working after Invalidate")
	}
}
