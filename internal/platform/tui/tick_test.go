package tui

import "testing"

func TestHoldTracker(t *testing.T) {
	var h holdTracker

	first := h.Press()
	if !h.Held() {
		t.Fatal("press should start a hold")
	}

	second := h.Press()
	if h.Release(first) {
		t.Error("a stale release must not end a repeated hold")
	}
	if !h.Held() {
		t.Fatal("hold should survive the stale release")
	}

	if !h.Release(second) {
		t.Error("release for the latest press should end the hold")
	}
	if h.Held() {
		t.Error("hold should be over")
	}
	if h.Release(second) {
		t.Error("a hold ends only once")
	}
}
