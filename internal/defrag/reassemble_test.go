package defrag

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		line string
		sep  string
		want []string
	}{
		{"fragments", "ABCDEF;DEFG", ";", []string{"ABCDEF", "DEFG"}},
		{"single fragment", "ABC", ";", []string{"ABC"}},
		{"empty line", "", ";", nil},
		{"empty fragments are dropped", ";A;;B;", ";", []string{"A", "B"}},
		{"custom separator", "AB|BC", "|", []string{"AB", "BC"}},
		{"spaces are kept", " AB ; BC", ";", []string{" AB ", " BC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.line, tt.sep); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReassemble(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"single fragment", "ABCDEF", "ABCDEF"},
		{"empty line", "", ""},
		{"suffix/prefix overlap", "ABCDEF;DEFG", "ABCDEFG"},
		{"prefix/suffix overlap", "ABCDEF;XYZABC", "XYZABCDEF"},
		{"containment", "ABCDEF;BCDE", "ABCDEF"},
		{"identical fragments", "ABC;ABC", "ABC"},
		{"no overlap", "AAA;BBB", "AAABBB"},
		{"no overlap keeps order", "CCC;AAA;BBB", "CCCAAABBB"},
		{"empty fragments", "A;;B;", "AB"},
		{
			"sentence",
			"O draconia;conian devil! Oh la;h lame sa;saint!",
			"O draconian devil! Oh lame saint!",
		},
		{
			"merge then concatenate",
			"ABCDEF;DEFG;XYZ",
			"XYZABCDEFG",
		},
		{
			"ties merge the first pair scanned",
			"ABC;CDE;XYZ;ZQ",
			"ABCDEXYZQ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reassemble(Split(tt.line, ";")); got != tt.want {
				t.Errorf("Reassemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	frags := []string{"ABC", "CDE", "XYZ", "ZQ"}
	in := append([]string(nil), frags...)

	out, steps := Trace(in)

	want := []Step{
		{
			Kind:      merged,
			Overlap:   Overlap{A: "ABC", B: "CDE", I: 0, J: 1, Str: "C"},
			Merged:    "ABCDE",
			Remaining: 3,
		},
		{
			Kind:      merged,
			Overlap:   Overlap{A: "XYZ", B: "ZQ", I: 0, J: 1, Str: "Z"},
			Merged:    "XYZQ",
			Remaining: 2,
		},
		{
			Kind:      concatenated,
			Merged:    "ABCDEXYZQ",
			Remaining: 1,
		},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("Trace() steps mismatch (-want +got):\n%s", diff)
	}
	if out != "ABCDEXYZQ" {
		t.Errorf("Trace() = %q, want %q", out, "ABCDEXYZQ")
	}
	if !reflect.DeepEqual(in, frags) {
		t.Errorf("Trace() modified its input: %v", in)
	}
}

func TestTrace_shrinks(t *testing.T) {
	lines := []string{
		"O draconia;conian devil! Oh la;h lame sa;saint!",
		"m quaerat voluptatem.;pora incidunt ut labore et d;, consectetur, adipisci velit;olore magnam aliqua;idunt ut labore et dolore magn;uptatem.;i dolorem ipsum qu;iquam quaerat vol;psum quia dolor sit amet, consectetur, a;ia dolor sit amet, conse;squam est, qui do;Neque porro quisquam est, qu;aerat voluptatem.;m eius modi tem;Neque porro qui;, sed quia non numquam ei;lorem ipsum quia dolor sit amet;ctetur, adipisci velit, sed quia non numq;unt ut labore et dolore magnam aliquam qu;dipisci velit, sed quia non numqua;us modi tempora incid;Neque porro quisquam est, qui dolorem i;uam eius modi tem;pora inc;am al",
		"AAA;BBB;CCC",
		"ABC;CDE;XYZ;ZQ",
	}

	for _, line := range lines {
		frags := Split(line, ";")
		_, steps := Trace(frags)

		if len(steps) > len(frags)-1 {
			t.Errorf("%d steps for %d fragments", len(steps), len(frags))
		}

		remaining := len(frags)
		for i, s := range steps {
			if s.Kind == merged && s.Remaining != remaining-1 {
				t.Errorf("step %d left %d fragments, want %d", i, s.Remaining, remaining-1)
			}
			remaining = s.Remaining
		}
		if remaining != 1 {
			t.Errorf("%d fragments remain after the last step, want 1", remaining)
		}
	}
}

func TestKind_String(t *testing.T) {
	if merged.String() != "merge" || concatenated.String() != "concat" {
		t.Errorf("unexpected Kind names: %s, %s", merged, concatenated)
	}
	if Kind(9).String() != "unknown" {
		t.Errorf("Kind(9) = %s, want unknown", Kind(9))
	}
}
