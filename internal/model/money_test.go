package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in    string
		cents Money
	}{
		{"12.50", 1250},
		{"7", 700},
		{"0.05", 5},
		{"-0.25", -25},
		{"19.75", 1975},
		{"0", 0},
		{".99", 99},
		{"100.1", 10010},
	}

	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		if err != nil {
			t.Errorf("ParseMoney(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.cents {
			t.Errorf("ParseMoney(%q) = %d cents, want %d", tt.in, got, tt.cents)
		}
	}
}

func TestParseMoneyRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.2.3", "12,50"} {
		_, err := ParseMoney(in)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseMoney(%q) = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := Money(1975).String(); got != "19.75" {
		t.Errorf("Money(1975).String() = %q, want %q", got, "19.75")
	}
	if got := Money(-25).String(); got != "-0.25" {
		t.Errorf("Money(-25).String() = %q, want %q", got, "-0.25")
	}
	if got := Money(700).String(); got != "7.00" {
		t.Errorf("Money(700).String() = %q, want %q", got, "7.00")
	}
}

func TestMoneyJSON(t *testing.T) {
	// Marshals as a plain decimal number, never a cent count
	b, err := json.Marshal(Money(1250))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "12.50" {
		t.Errorf("marshal Money(1250) = %s, want 12.50", b)
	}

	// Accepts both a number and a quoted string
	var m Money
	if err := json.Unmarshal([]byte(`7.25`), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if m != 725 {
		t.Errorf("unmarshal 7.25 = %d cents, want 725", m)
	}

	if err := json.Unmarshal([]byte(`"7.25"`), &m); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if m != 725 {
		t.Errorf("unmarshal \"7.25\" = %d cents, want 725", m)
	}

	// Exponent notation is ambiguous for money; reject it
	if err := json.Unmarshal([]byte(`1e2`), &m); err == nil {
		t.Error("unmarshal 1e2 should fail")
	}
}

func TestMoneySumIsExact(t *testing.T) {
	// 12.50 + 7.25 in float64 would already carry drift; cents do not.
	a, _ := ParseMoney("12.50")
	b, _ := ParseMoney("7.25")
	if got := a + b; got.String() != "19.75" {
		t.Errorf("12.50 + 7.25 = %s, want 19.75", got)
	}
}
