package tutor

import "testing"

func TestResolveBracket(t *testing.T) {
	tests := []struct {
		grade    string
		def      Bracket
		expected Bracket
	}{
		{"1st Grade", DefaultFilterBracket, Grade1to4},
		{"4th Grade", DefaultFilterBracket, Grade1to4},
		{"5th Grade", DefaultFilterBracket, Grade5to9},
		{"7th Grade", DefaultDisplayBracket, Grade5to9},
		{"9th Grade", DefaultFilterBracket, Grade5to9},
		{"10th Grade", DefaultFilterBracket, Grade10},
		{"11th Grade", DefaultFilterBracket, Grade11to12},
		{"12th Grade", DefaultDisplayBracket, Grade11to12},
		{"Graduation", DefaultDisplayBracket, Graduation},
		{"  7th grade ", DefaultFilterBracket, Grade5to9},
		{"Post Graduation", DefaultDisplayBracket, Graduation},
		{"13th Grade", DefaultDisplayBracket, Graduation},
		{"", DefaultFilterBracket, Graduation},
		{"", DefaultDisplayBracket, Grade5to9},
		{"   ", DefaultDisplayBracket, Grade5to9},
	}

	for _, tt := range tests {
		t.Run(tt.grade+"/"+string(tt.def), func(t *testing.T) {
			if got := ResolveBracket(tt.grade, tt.def); got != tt.expected {
				t.Errorf("ResolveBracket(%q, %s) = %s, want %s", tt.grade, tt.def, got, tt.expected)
			}
		})
	}
}

func TestResolveBracket_EveryCanonicalGrade(t *testing.T) {
	for _, g := range Grades {
		if !IsGrade(g) {
			t.Errorf("IsGrade(%q) = false", g)
		}
		// A canonical grade never falls back to the supplied default
		a := ResolveBracket(g, Grade1to4)
		b := ResolveBracket(g, Graduation)
		if a != b {
			t.Errorf("ResolveBracket(%q) depends on default: %s vs %s", g, a, b)
		}
	}
	if IsGrade("Kindergarten") {
		t.Error("IsGrade(Kindergarten) = true")
	}
}

func TestBracketLabel(t *testing.T) {
	if got := Grade11to12.Label(); got != "Grades 11-12" {
		t.Errorf("Label() = %q", got)
	}
	if got := Bracket("other").Label(); got != "other" {
		t.Errorf("Label() = %q", got)
	}
	if Bracket("other").Valid() {
		t.Error("expected unknown bracket to be invalid")
	}
}

func TestTeachingModeOffers(t *testing.T) {
	tests := []struct {
		tutor    TeachingMode
		want     TeachingMode
		expected bool
	}{
		{ModeBoth, ModeHomeTuition, true},
		{ModeBoth, ModeCenterBased, true},
		{ModeHomeTuition, ModeHomeTuition, true},
		{ModeHomeTuition, ModeCenterBased, false},
		{ModeCenterBased, ModeBoth, false},
	}

	for _, tt := range tests {
		if got := tt.tutor.Offers(tt.want); got != tt.expected {
			t.Errorf("%s.Offers(%s) = %v, want %v", tt.tutor, tt.want, got, tt.expected)
		}
	}
}
