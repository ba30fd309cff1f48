package placement

import "testing"

func TestParse(t *testing.T) {
	type tc struct {
		input   string
		want    Placement
		wantErr bool
	}

	tests := map[string]tc{
		"top":        {input: "top", want: Top},
		"upper case": {input: "BOTTOM", want: Bottom},
		"padded":     {input: "  left ", want: Left},
		"right":      {input: "right", want: Right},
		"unknown":    {input: "center", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlacement_String(t *testing.T) {
	for _, p := range ScanOrder() {
		got, err := Parse(p.String())
		if err != nil || got != p {
			t.Errorf("Parse(%q) = %v, %v; want %v", p.String(), got, err, p)
		}
	}
	if got := Placement(9).String(); got != "Placement(9)" {
		t.Errorf("String() of invalid placement = %q", got)
	}
	if Placement(9).Valid() {
		t.Error("Placement(9).Valid() = true")
	}
}

func TestPlacement_TextRoundTrip(t *testing.T) {
	var p Placement
	if err := p.UnmarshalText([]byte("left")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if p != Left {
		t.Errorf("UnmarshalText(left) = %s", p)
	}
	if err := p.UnmarshalText([]byte("nowhere")); err == nil {
		t.Error("UnmarshalText(nowhere) expected error")
	}
	if _, err := Placement(7).MarshalText(); err == nil {
		t.Error("MarshalText() of invalid placement expected error")
	}
}

func TestScanOrder_IsFixed(t *testing.T) {
	order := ScanOrder()
	want := []Placement{Top, Bottom, Left, Right}
	if len(order) != len(want) {
		t.Fatalf("ScanOrder() len = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("ScanOrder()[%d] = %s, want %s", i, order[i], want[i])
		}
	}

	order[0] = Right
	if ScanOrder()[0] != Top {
		t.Error("ScanOrder() returned shared storage")
	}
}
