package taxonomy

import "testing"

func TestRegistryIntegrity(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("got %d error types, want 13", len(all))
	}

	seen := map[string]bool{}
	for _, e := range all {
		if e.ID == "" || e.Name == "" || e.Description == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate ID %q", e.ID)
		}
		seen[e.ID] = true
		if !ValidCategory(string(e.Category)) {
			t.Errorf("%s: unknown category %q", e.ID, e.Category)
		}
		if e.Frequency < 0 || e.Frequency > 1 {
			t.Errorf("%s: frequency %v out of range", e.ID, e.Frequency)
		}
		if len(e.Applicability) == 0 {
			t.Errorf("%s: no applicability", e.ID)
		}
		if Get(e.ID) != e {
			t.Errorf("Get(%q) did not return the registry entry", e.ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if Get("no_such_error") != nil {
		t.Fatal("expected nil for unknown ID")
	}
}

func TestByCategory(t *testing.T) {
	alg := ByCategory(CategoryAlgebraic)
	if len(alg) != 3 {
		t.Fatalf("got %d algebraic errors, want 3", len(alg))
	}
	for _, e := range alg {
		if e.Category != CategoryAlgebraic {
			t.Errorf("%s in wrong bucket", e.ID)
		}
	}
}

func TestApplicable(t *testing.T) {
	// "all" entries match any integral type.
	got := Applicable("power_rule", "hard")
	ids := map[string]bool{}
	for _, e := range got {
		ids[e.ID] = true
	}
	if !ids["alg_sign_flip"] || !ids["alg_exp_error"] {
		t.Fatalf("power_rule/hard missing expected entries: %v", ids)
	}
	if ids["trig_identity_confusion"] {
		t.Fatal("trig-only error should not apply to power_rule")
	}

	// Easy questions admit only high-frequency errors.
	easy := Applicable("substitution", "easy")
	for _, e := range easy {
		if e.Frequency < 0.6 {
			t.Errorf("%s (freq %v) should be filtered for easy questions", e.ID, e.Frequency)
		}
	}

	// Hard admits strictly more than easy for the same type.
	hard := Applicable("substitution", "hard")
	if len(hard) < len(easy) {
		t.Fatalf("hard (%d) should admit at least as many as easy (%d)", len(hard), len(easy))
	}
}

func TestPriorityOrder(t *testing.T) {
	if Priority(CategoryAlgebraic) >= Priority(CategoryConceptual) {
		t.Fatal("algebraic must outrank conceptual")
	}
	if Priority("bogus") <= Priority(CategoryConceptual) {
		t.Fatal("unknown categories must sort last")
	}
}
