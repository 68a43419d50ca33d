package interp_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures_TestableScenarios runs the language's testable-property
// scenarios (hello world, arithmetic, stepped FOR loops, recursive
// return-by-name) as go-snaps golden fixtures, snapshotting program
// output against a stored baseline.
func TestFixtures_TestableScenarios(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		input []string
	}{
		{
			name: "hello_world_greek_eoln",
			src: `
ΑΛΓΟΡΙΘΜΟΣ Hi
ΑΡΧΗ
  ΤΥΠΩΣΕ("Γεια", EOLN)
ΤΕΛΟΣ
`,
		},
		{
			name: "div_mod_real_division",
			src: `
ALGORITHM Arith;
BEGIN
  PRINT(7 DIV 2, 7 MOD 2, 7 / 2, EOLN);
END
`,
		},
		{
			name: "for_loop_descending_step",
			src: `
ΑΛΓΟΡΙΘΜΟΣ Countdown
ΜΕΤΑΒΛΗΤΕΣ
  i: ΑΚΕΡΑΙΟΣ;
ΑΡΧΗ
  ΓΙΑ i := 10 ΕΩΣ 4 ΜΕ ΒΗΜΑ -2 ΕΠΑΝΑΛΑΒΕ
    ΤΥΠΩΣΕ(i, " ")
  ΓΙΑ-ΤΕΛΟΣ
  ΤΥΠΩΣΕ(EOLN)
ΤΕΛΟΣ
`,
		},
		{
			name: "recursive_factorial_return_by_name",
			src: `
ΑΛΓΟΡΙΘΜΟΣ Main
ΣΥΝΑΡΤΗΣΗ fact(n): ΑΚΕΡΑΙΟΣ
ΔΙΕΠΑΦΗ
ΕΙΣΟΔΟΣ
  n: ΑΚΕΡΑΙΟΣ;
ΑΡΧΗ
  ΕΑΝ n <= 1 ΤΟΤΕ
    fact := 1
  ΑΛΛΙΩΣ
    fact := n * fact(n-1)
  ΕΑΝ-ΤΕΛΟΣ
ΤΕΛΟΣ-ΣΥΝΑΡΤΗΣΗΣ
ΑΡΧΗ
  ΤΥΠΩΣΕ(fact(5))
ΤΕΛΟΣ
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.src, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, tc.name, out)
		})
	}
}

// TestFixtures_ReadDefensiveRetry covers the "" -> retry -> valid-value
// idiom without feeding a non-numeric line: §4.5 only sentinels empty
// lines and end-of-input to -1, so a READ of non-numeric, non-empty text
// is kept as a raw string rather than -1, and a numeric UNTIL x >= 0
// guard against a string-valued x raises a type-mismatch runtime error
// rather than retrying. That keeps this fixture within what the rule
// actually specifies.
func TestFixtures_ReadDefensiveRetry(t *testing.T) {
	out, err := run(t, `
ALGORITHM ReadRetry;
DATA
  x: INTEGER;
BEGIN
  REPEAT
    READ(x);
  UNTIL x >= 0
  PRINT(x);
END
`, []string{"", "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "read_defensive_retry", out)
}

// TestFixtures_ArrayBoundsError covers the array-bounds scenario: writing
// past a declared dimension must raise a runtime error naming the
// dimension and its declared range, never a value.
func TestFixtures_ArrayBoundsError(t *testing.T) {
	_, err := run(t, `
ALGORITHM Bounds;
DATA
  A: ARRAY[1..3] OF INTEGER;
BEGIN
  A[4] := 0;
END
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error for an out-of-bounds array write")
	}
	snaps.MatchSnapshot(t, "array_bounds_error", err.Error())
}
