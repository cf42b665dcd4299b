package country

import "testing"

func TestFlag(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "vietnam", code: "VN", want: "\U0001F1FB\U0001F1F3"},
		{name: "japan lower case", code: "jp", want: "\U0001F1EF\U0001F1F5"},
		{name: "padded", code: " fr ", want: "\U0001F1EB\U0001F1F7"},
		{name: "empty", code: "", want: Globe},
		{name: "too long", code: "VNM", want: Globe},
		{name: "digits", code: "12", want: Globe},
		{name: "non ascii", code: "Ñá", want: Globe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flag(tt.code); got != tt.want {
				t.Fatalf("Flag(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFlag_VietnamIsTwoCodepoints(t *testing.T) {
	runes := []rune(Flag("VN"))
	if len(runes) != 2 {
		t.Fatalf("expected 2 code points, got %d", len(runes))
	}
	if runes[0] != 'V'+regionalIndicatorOffset || runes[1] != 'N'+regionalIndicatorOffset {
		t.Fatalf("unexpected code points %U", runes)
	}
}

func TestFlagOf_NonStringValues(t *testing.T) {
	var nilString *string
	vn := "vn"

	cases := []any{nil, 123, 1.5, true, nilString, []string{"VN"}}
	for _, value := range cases {
		if got := FlagOf(value); got != Globe {
			t.Fatalf("FlagOf(%#v) = %q, want globe", value, got)
		}
	}
	if got := FlagOf(&vn); got != Flag("VN") {
		t.Fatalf("FlagOf(*string) = %q", got)
	}
	if got := FlagOf("VN"); got != Flag("VN") {
		t.Fatalf("FlagOf(string) = %q", got)
	}
}
