package summarize

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical sentences",
			a:    "stocks rallied sharply after earnings",
			b:    "stocks rallied sharply after earnings",
			want: 1.0,
		},
		{
			name: "no shared content words",
			a:    "stocks rallied after earnings",
			b:    "volcano erupted overnight nearby",
			want: 0.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0.0,
		},
		{
			name: "only stop words",
			a:    "the and of to",
			b:    "the and of to",
			want: 0.0,
		},
		{
			name: "one side empty",
			a:    "markets fell today",
			b:    "",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"markets fell today amid uncertainty", "markets fell slightly today"},
		{"new policy announced", "policy reversal announced yesterday"},
		{"a b c", "c b a"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "senate passed the infrastructure bill today"
	b := "the infrastructure bill cleared the senate"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Similarity is not symmetric for %q / %q", a, b)
	}
}

func TestBuildSimilarityMatrix(t *testing.T) {
	sentences := []string{
		"markets rallied after the announcement",
		"markets rallied following the announcement",
		"rain expected across the region tomorrow",
	}

	m := BuildSimilarityMatrix(sentences)

	if len(m) != 3 {
		t.Fatalf("matrix has %d rows, want 3", len(m))
	}
	for i := range m {
		if len(m[i]) != 3 {
			t.Fatalf("row %d has %d columns, want 3", i, len(m[i]))
		}
		if m[i][i] != 0 {
			t.Errorf("diagonal entry [%d][%d] = %v, want 0", i, i, m[i][i])
		}
	}

	if m[0][1] <= m[0][2] {
		t.Errorf("expected near-duplicate pair to score higher: m[0][1]=%v m[0][2]=%v", m[0][1], m[0][2])
	}
	if m[0][1] != m[1][0] {
		t.Errorf("matrix not symmetric: m[0][1]=%v m[1][0]=%v", m[0][1], m[1][0])
	}
}
