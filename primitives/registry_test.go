package primitives

import "testing"

func TestRegistryUnknownTypeYieldsNil(t *testing.T) {
	r := NewRegistry()
	if p := r.Create("no_such_tool", nil, ""); p != nil {
		t.Errorf("Create(unknown) = %v, want nil", p)
	}
	if _, ok := r.Get("no_such_tool"); ok {
		t.Error("Get(unknown) reported ok")
	}
}

func TestRegistryCatalogSize(t *testing.T) {
	r := NewRegistry()
	if got := r.Len(); got != 96 {
		t.Errorf("catalog size = %d, want 96", got)
	}
}

func TestRegistryCreateAppliesPointsAndColor(t *testing.T) {
	r := NewRegistry()
	pts := []Point{{Bar: 1, Price: 10}, {Bar: 5, Price: 20}}
	p := r.Create("trend_line", pts, "#ff0000")
	if p == nil {
		t.Fatal("Create(trend_line) = nil")
	}
	if p.TypeID() != "trend_line" {
		t.Errorf("TypeID = %q", p.TypeID())
	}
	if got := p.Points(); len(got) != 2 || got[1] != pts[1] {
		t.Errorf("points = %v, want %v", got, pts)
	}
	if p.Data().Stroke != "#ff0000" {
		t.Errorf("stroke = %q, want #ff0000", p.Data().Stroke)
	}
}

func TestRegistryDefaultColorApplied(t *testing.T) {
	r := NewRegistry()
	p := r.Create("rectangle", nil, "")
	if p == nil {
		t.Fatal("Create(rectangle) = nil")
	}
	if p.Data().Stroke != DefaultColor {
		t.Errorf("default stroke = %q, want %q", p.Data().Stroke, DefaultColor)
	}
}

func TestRegistryByKind(t *testing.T) {
	r := NewRegistry()
	fibs := r.ByKind(KindFibonacci)
	if len(fibs) != 11 {
		t.Errorf("fibonacci tools = %d, want 11", len(fibs))
	}
	for _, id := range fibs {
		meta, ok := r.Get(id)
		if !ok {
			t.Fatalf("missing metadata for %q", id)
		}
		if meta.Kind != KindFibonacci {
			t.Errorf("%q kind = %v", id, meta.Kind)
		}
	}
}

func TestRegistryMetadataFlags(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		typeID    string
		text      bool
		levels    bool
		pointsCfg bool
	}{
		{"fib_retracement", false, true, false},
		{"text", true, false, false},
		{"polyline", false, false, true},
		{"trend_line", true, false, false},
	}
	for _, c := range cases {
		meta, ok := r.Get(c.typeID)
		if !ok {
			t.Fatalf("missing %q", c.typeID)
		}
		if meta.SupportsText != c.text || meta.HasLevels != c.levels || meta.HasPointsConfig != c.pointsCfg {
			t.Errorf("%q flags = text:%v levels:%v points:%v, want text:%v levels:%v points:%v",
				c.typeID, meta.SupportsText, meta.HasLevels, meta.HasPointsConfig,
				c.text, c.levels, c.pointsCfg)
		}
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	r := NewEmptyRegistry()
	if err := r.Register(Metadata{TypeID: ""}); err == nil {
		t.Error("expected error for empty type ID")
	}
	if err := r.Register(Metadata{TypeID: "x"}); err == nil {
		t.Error("expected error for nil factory")
	}
	if r.Len() != 0 {
		t.Errorf("empty registry gained %d entries", r.Len())
	}
}

func TestEveryBuiltinCreates(t *testing.T) {
	r := NewRegistry()
	pts := []Point{
		{Bar: 2, Price: 100}, {Bar: 8, Price: 120}, {Bar: 14, Price: 95},
		{Bar: 20, Price: 130}, {Bar: 26, Price: 105}, {Bar: 32, Price: 140},
		{Bar: 38, Price: 110},
	}
	for _, id := range r.TypeIDs() {
		p := r.Create(id, pts, "")
		if p == nil {
			t.Errorf("Create(%q) = nil", id)
			continue
		}
		if p.TypeID() != id {
			t.Errorf("Create(%q).TypeID() = %q", id, p.TypeID())
		}
		if len(p.Points()) == 0 {
			t.Errorf("%q has no points after Create", id)
		}
		if _, ok := p.TextAnchor(); !ok {
			t.Errorf("%q has no text anchor despite points", id)
		}
	}
}

func TestDefaultRegistryShared(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() returned distinct instances")
	}
	if a.Len() == 0 {
		t.Error("default registry is empty")
	}
}
