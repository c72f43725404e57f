package model

import "testing"

func TestOutcome_String(t *testing.T) {
	tests := map[Outcome]string{
		Success:     "success",
		Timeout:     "timeout",
		Exception:   "exception",
		Crashed:     "crash",
		Outcome(42): "unknown",
	}

	for outcome, want := range tests {
		if got := outcome.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(outcome), got, want)
		}
	}
}

func TestNamespace_Name(t *testing.T) {
	if got := VariableNamespace.Name(3); got != "var_3_" {
		t.Errorf("got %q", got)
	}

	if got := (Namespace{Prefix: "tmp"}).Name(12); got != "tmp12" {
		t.Errorf("got %q", got)
	}
}

func TestReport_Reduction(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   float64
	}{
		{"half", Report{OriginalSize: 200, FinalSize: 100}, 0.5},
		{"unchanged", Report{OriginalSize: 10, FinalSize: 10}, 0},
		{"empty original", Report{}, 0},
		{"grown", Report{OriginalSize: 10, FinalSize: 12}, 0},
		{"everything", Report{OriginalSize: 8}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Reduction(); got != tt.want {
				t.Errorf("Reduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPassStat_Shrunk(t *testing.T) {
	if got := (PassStat{SizeBefore: 30, SizeAfter: 12}).Shrunk(); got != 18 {
		t.Errorf("got %d", got)
	}

	if got := (PassStat{SizeBefore: 10, SizeAfter: 25}).Shrunk(); got != -15 {
		t.Errorf("got %d", got)
	}
}

func TestTestcase_Size(t *testing.T) {
	if got := (Testcase{Source: "a();\n"}).Size(); got != 5 {
		t.Errorf("got %d", got)
	}
}
