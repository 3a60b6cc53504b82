package checks

import "testing"

func TestNotdefFixes(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		cluster uint32
		want    string
		wantNil bool
	}{
		{name: "ascii", text: "abc", cluster: 1, want: "b"},
		{name: "multibyte", text: "aकb", cluster: 1, want: "क"},
		{name: "out of range", text: "abc", cluster: 10, wantNil: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fixes := notdefFixes(c.text, c.cluster)
			if c.wantNil {
				if fixes != nil {
					t.Fatalf("expected nil fixes, got %v", fixes)
				}
				return
			}
			if len(fixes) != 1 || fixes[0].FixType != "add_codepoint" || fixes[0].FixThing != c.want {
				t.Fatalf("unexpected fixes: %v", fixes)
			}
		})
	}
}
