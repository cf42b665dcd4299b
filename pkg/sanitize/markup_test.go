package sanitize

import "testing"

func TestMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "   ", want: ""},
		{name: "plain", in: " 1kg / túi ", want: "1kg / túi"},
		{name: "keeps inline tags", in: "Giá <strong>1kg</strong><br/>túi", want: "Giá <strong>1kg</strong><br/>túi"},
		{name: "drops script", in: `ok<script>alert(1)</script>`, want: "ok"},
		{name: "drops handlers", in: `<span class="hl" onclick="x()">hi</span>`, want: `<span class="hl">hi</span>`},
		{name: "drops block elements", in: `<div style="position:fixed">x</div>`, want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Markup(tt.in); got != tt.want {
				t.Fatalf("Markup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text("<b>Táo</b> &amp; Lê"); got != "Táo &amp; Lê" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := Text(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
