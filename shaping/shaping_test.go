package shaping

import "testing"

func TestParseFeatureSpec(t *testing.T) {
	cases := []struct {
		spec    string
		wantTag string
		wantArg int
		wantOn  bool
		wantErr bool
	}{
		{spec: "liga", wantTag: "liga", wantArg: 1, wantOn: true},
		{spec: "+smcp", wantTag: "smcp", wantArg: 1, wantOn: true},
		{spec: "-kern", wantTag: "kern", wantArg: 0, wantOn: false},
		{spec: "aalt=2", wantTag: "aalt", wantArg: 2, wantOn: true},
		{spec: "ss01=0", wantTag: "ss01", wantArg: 0, wantOn: false},
		{spec: "toolong5", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.spec, func(t *testing.T) {
			fr, err := parseFeatureSpec(c.spec)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if fr.Feature.String() != c.wantTag {
				t.Errorf("tag = %s, want %s", fr.Feature, c.wantTag)
			}
			if fr.Arg != c.wantArg {
				t.Errorf("arg = %d, want %d", fr.Arg, c.wantArg)
			}
			if fr.On != c.wantOn {
				t.Errorf("on = %v, want %v", fr.On, c.wantOn)
			}
		})
	}
}

func TestInputDescribe(t *testing.T) {
	in := Input{Text: "abc", Features: []string{"+liga", "-kern"}, Language: "ar"}
	got := in.Describe()
	want := `"abc" [+liga,-kern] (lang=ar)`
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	simple := NewSimple("xyz")
	if simple.Describe() != `"xyz"` {
		t.Errorf("Describe() = %q, want %q", simple.Describe(), `"xyz"`)
	}
}

func TestBuildSelectionContextEmptyLanguage(t *testing.T) {
	ctx, err := buildSelectionContext("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ctx.Language.String() != "und" && ctx.Language.String() != "" {
		t.Errorf("expected zero-value language tag, got %v", ctx.Language)
	}
}

func TestBuildSelectionContextArabic(t *testing.T) {
	ctx, err := buildSelectionContext("ar")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ctx.Script.String() != "Arab" {
		t.Errorf("expected Arab script, got %v", ctx.Script)
	}
}
