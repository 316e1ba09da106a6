package tilemenu

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "display", "x": 200, "y": 200, "width": 400, "height": 400},
		{"action": "tap", "x": 10, "y": 20},
		{"action": "wait", "frames": 2},
		{"action": "swipe", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "frames": 4},
		{"action": "next"},
		{"action": "resize", "width": 300, "height": 300},
		{"action": "dismiss"}
	]}`)
	r, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 7 {
		t.Fatalf("steps = %d, want 7", len(r.steps))
	}
	if r.steps[1].X != 10 || r.steps[1].Y != 20 {
		t.Errorf("tap step = %+v", r.steps[1])
	}
	if r.steps[3].Frames != 4 || r.steps[3].ToX != 50 {
		t.Errorf("swipe step = %+v", r.steps[3])
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptTapFlow(t *testing.T) {
	m, _ := newTestMenu(t, 13, nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "display", "page": 1, "x": 200, "y": 200, "width": 400, "height": 400},
		{"action": "tap", "x": 200, "y": 200}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	m.SetScript(r)

	r.step(m)
	if !m.IsVisible() || m.CurrentPage() != 1 {
		t.Fatalf("visible=%v page=%d after display step", m.IsVisible(), m.CurrentPage())
	}

	// Tap on the center button queues a press and release.
	r.step(m)
	if m.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", m.PendingInput())
	}
	r.step(m)
	if r.cursor != 2 || r.Done() {
		t.Fatal("runner advanced before its input drained")
	}
	drain(m)
	if m.CurrentPage() != 2 {
		t.Errorf("page = %d, want 2 after center tap", m.CurrentPage())
	}

	r.step(m)
	if !r.Done() {
		t.Error("runner not done after the last step")
	}
}

func TestScriptWait(t *testing.T) {
	m, _ := newTestMenu(t, 6, nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "display", "x": 200, "y": 200, "width": 400, "height": 400}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		r.step(m)
		if m.IsVisible() {
			t.Fatalf("displayed during wait frame %d", i+1)
		}
	}
	r.step(m)
	if !m.IsVisible() {
		t.Error("display step did not run after the wait")
	}
}

func TestScriptPagingAndResize(t *testing.T) {
	m, _ := newTestMenu(t, 13, nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "display", "x": 600, "y": 400, "width": 800, "height": 800},
		{"action": "next"},
		{"action": "resize", "width": 500, "height": 800},
		{"action": "dismiss"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	r.step(m)
	r.step(m)
	if m.CurrentPage() != 1 {
		t.Errorf("page = %d, want 1", m.CurrentPage())
	}
	r.step(m)
	if got := m.CenterPoint(); !approxEqual(got.X, 344, 1e-6) {
		t.Errorf("center after resize = %v, want x 344", got)
	}
	r.step(m)
	if m.IsVisible() {
		t.Error("dismiss step left the menu visible")
	}
}

func TestScriptDisplayOutOfRangeIsLogged(t *testing.T) {
	m, _ := newTestMenu(t, 3, nil)
	r, err := LoadScript([]byte(`{"steps": [{"action": "display", "page": 4, "width": 400, "height": 400}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.step(m)
	if m.IsVisible() {
		t.Error("out of range page was displayed")
	}
}
