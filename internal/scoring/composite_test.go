package scoring

import "testing"

func TestCompositeGuidedLesson(t *testing.T) {
	tests := []struct {
		name                  string
		review, write, revise float64
		want                  int
	}{
		{"all perfect", 100, 100, 100, 100},
		{"all zero", 0, 0, 0, 0},
		{"mixed", 50, 80, 90, 78},          // 10 + 32 + 36
		{"fractional sum", 81, 92, 88, 88}, // 16.2 + 36.8 + 35.2 = 88.2
		{"review weighs least", 0, 100, 100, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.review, tt.write, tt.revise, GuidedLessonWeights)
			if got != tt.want {
				t.Errorf("Composite = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompositeRankedMatch(t *testing.T) {
	got := Composite(90, 70, 80, RankedMatchWeights)
	if got != 81 { // 36 + 21 + 24
		t.Errorf("Composite = %d, want 81", got)
	}

	// Write phase carries the most weight in ranked play.
	highWrite := Composite(100, 50, 50, RankedMatchWeights)
	lowWrite := Composite(50, 100, 50, RankedMatchWeights)
	if highWrite <= lowWrite {
		t.Errorf("write-heavy %d should beat feedback-heavy %d", highWrite, lowWrite)
	}
}

func TestCompositeRounding(t *testing.T) {
	// 0.2*53 + 0.4*53 + 0.4*53 = 53 exactly; 52.5 must round half up.
	if got := Composite(53, 53, 53, GuidedLessonWeights); got != 53 {
		t.Errorf("Composite = %d, want 53", got)
	}
	if got := Composite(52.5, 52.5, 52.5, GuidedLessonWeights); got != 53 {
		t.Errorf("Composite = %d, want 53 (round half away from zero)", got)
	}
}

func TestCompositeMonotonic(t *testing.T) {
	// Raising any one phase while holding the others fixed never lowers
	// the composite. Swept in steps of 5 across the whole percentage
	// range, for both weighting schemes.
	schemes := []struct {
		name string
		w    Weights
	}{
		{"guided lesson", GuidedLessonWeights},
		{"ranked match", RankedMatchWeights},
	}
	fixed := []float64{0, 35, 70, 100}

	for _, s := range schemes {
		t.Run(s.name, func(t *testing.T) {
			for _, a := range fixed {
				for _, b := range fixed {
					for phase := 0; phase < 3; phase++ {
						prev := -1
						for v := 0.0; v <= 100; v += 5 {
							var got int
							switch phase {
							case 0:
								got = Composite(v, a, b, s.w)
							case 1:
								got = Composite(a, v, b, s.w)
							default:
								got = Composite(a, b, v, s.w)
							}
							if got < prev {
								t.Fatalf("phase %d at %v (others %v, %v): composite fell from %d to %d",
									phase+1, v, a, b, prev, got)
							}
							prev = got
						}
					}
				}
			}
		})
	}
}

func TestImprovementBonus(t *testing.T) {
	tests := []struct {
		original, revision float64
		want               float64
	}{
		{60, 75, 15},
		{75, 75, 0},
		{80, 60, 0}, // regressions floor at zero
	}

	for _, tt := range tests {
		got := ImprovementBonus(tt.original, tt.revision)
		if got != tt.want {
			t.Errorf("ImprovementBonus(%v, %v) = %v, want %v", tt.original, tt.revision, got, tt.want)
		}
	}
}
