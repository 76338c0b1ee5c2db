package scoring

import (
	"strings"
	"testing"
)

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"cat":       1,
		"hello":     2,
		"beautiful": 3,
		"make":      1,
		"a":         1,
		"rhythm":    1,
	}
	for word, want := range cases {
		if got := countSyllables(word); got != want {
			t.Errorf("countSyllables(%q) = %d, want %d", word, got, want)
		}
	}
}

func TestFleschReadingEase(t *testing.T) {
	if got := FleschReadingEase(nil, 1); got != 0 {
		t.Errorf("empty word list = %f, want 0", got)
	}

	simple := strings.Fields("the cat sat on the mat")
	got := FleschReadingEase(simple, 1)
	if got < 90 {
		t.Errorf("monosyllabic sentence should read very easy, got %f", got)
	}

	dense := strings.Fields("notwithstanding extraordinary infrastructural considerations " +
		"multidisciplinary collaboration necessitates comprehensive organizational evaluation")
	if FleschReadingEase(dense, 1) >= got {
		t.Errorf("polysyllabic text must score lower than simple text")
	}
}

func TestGunningFog(t *testing.T) {
	if got := GunningFog(nil, 1); got != 0 {
		t.Errorf("empty word list = %f, want 0", got)
	}

	simple := strings.Fields("the cat sat on the mat")
	dense := strings.Fields("extraordinary deliberations necessitate comprehensive evaluation")
	if GunningFog(simple, 1) >= GunningFog(dense, 1) {
		t.Errorf("complex words must raise the fog index")
	}

	// Sentence count is floored at 1
	if got := GunningFog(simple, 0); got <= 0 {
		t.Errorf("zero sentences should fall back to 1, got %f", got)
	}
}
