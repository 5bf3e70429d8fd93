package logfile

import (
	"reflect"
	"testing"
)

func TestTokenize_Numbers(t *testing.T) {
	tokens := Tokenize("[METRIC] epoch=3 step=300 ACC=0.5123 L_total=2.3456")

	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}

	checks := map[string]float64{
		"epoch":   3,
		"step":    300,
		"ACC":     0.5123,
		"L_total": 2.3456,
	}
	for key, want := range checks {
		v, ok := tokens[key]
		if !ok {
			t.Errorf("missing token %q", key)
			continue
		}
		if !v.IsNumber {
			t.Errorf("token %q parsed as string %q, want number", key, v.Text)
			continue
		}
		if v.Number != want {
			t.Errorf("token %q = %v, want %v", key, v.Number, want)
		}
	}
}

func TestTokenize_ScientificNotation(t *testing.T) {
	tokens := Tokenize("[METRIC] epoch=1 lr=1.234560e-05 wd=2.5e+03")

	lr, ok := tokens["lr"]
	if !ok || !lr.IsNumber {
		t.Fatalf("lr = %+v, want numeric token", tokens["lr"])
	}
	if lr.Number != 1.234560e-05 {
		t.Errorf("lr = %v, want 1.234560e-05", lr.Number)
	}

	wd, ok := tokens["wd"]
	if !ok || !wd.IsNumber {
		t.Fatalf("wd = %+v, want numeric token", tokens["wd"])
	}
	if wd.Number != 2500 {
		t.Errorf("wd = %v, want 2500", wd.Number)
	}
}

func TestTokenize_StringFallback(t *testing.T) {
	tokens := Tokenize("[METRIC] epoch=1 mode=train phase=eval2")

	mode, ok := tokens["mode"]
	if !ok {
		t.Fatal("missing token mode")
	}
	if mode.IsNumber {
		t.Errorf("mode parsed as number %v, want string", mode.Number)
	}
	if mode.Text != "train" {
		t.Errorf("mode = %q, want %q", mode.Text, "train")
	}

	// A value that looks numeric-ish but does not parse stays a string.
	tokens = Tokenize("x=1.2.3 y=e")
	if tokens["x"].IsNumber {
		t.Errorf("x = %v, want string fallback", tokens["x"].Number)
	}
	if tokens["x"].Text != "1.2.3" {
		t.Errorf("x = %q, want %q", tokens["x"].Text, "1.2.3")
	}
	if tokens["y"].IsNumber {
		t.Errorf("y parsed as number, want string fallback")
	}
}

func TestTokenize_EmptyLine(t *testing.T) {
	tokens := Tokenize("no key value pairs here")
	// "pairs" etc. contain no '=', so nothing should match.
	if len(tokens) != 0 {
		t.Errorf("got %d tokens, want 0: %v", len(tokens), tokens)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	line := "[ROUTE] epoch=7 R_left=0.25 R_right=0.75 note=skip"
	first := Tokenize(line)
	second := Tokenize(line)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated tokenize differs: %v vs %v", first, second)
	}
}
