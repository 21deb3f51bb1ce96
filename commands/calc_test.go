package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewCalcCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand_Reference(t *testing.T) {
	out, err := runCalc(t,
		"--total", "1000",
		"--cut", "A4 (1/4)",
		"--rate", "500",
		"--rim", "500",
		"--printing", "200",
		"--binding", "100",
	)
	if err != nil {
		t.Fatalf("calc returned error: %v", err)
	}

	for _, want := range []string{
		"Req Paper:    250\n",
		"Total Amount: ₹250.00\n",
		"Final Total:  ₹550.00\n",
		"Five Hundred and Fifty Rupees Only",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalcCommand_DefaultCut(t *testing.T) {
	out, err := runCalc(t, "--total", "8", "--rate", "500", "--rim", "500")
	if err != nil {
		t.Fatalf("calc returned error: %v", err)
	}
	if !strings.Contains(out, "Req Paper:    2\n") {
		t.Errorf("expected A4 default divisor, got:\n%s", out)
	}
}

func TestCalcCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown_cut", []string{"--cut", "A3 (1/3)"}, "Unknown cut size"},
		{"zero_rim", []string{"--rim", "0"}, "Rim size must be at least 1"},
		{"negative_rate", []string{"--rate", "-5"}, "Paper rate cannot be negative"},
		{"positional_args", []string{"extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCalc(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}
