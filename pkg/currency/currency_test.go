package currency

import "testing"

func TestPenceFormatting(t *testing.T) {
	tests := []struct {
		amount Pence
		want   string
	}{
		{0, "£0.00"},
		{100, "£1.00"},
		{250, "£2.50"},
		{999, "£9.99"},
		{123456, "£1234.56"},
		{-150, "-£1.50"},
	}

	for _, tt := range tests {
		if got := tt.amount.String(); got != tt.want {
			t.Fatalf("Pence(%d).String() = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestPenceMulAndSum(t *testing.T) {
	// two apples at £1.00 plus one loaf at £2.50
	apples := Pence(100).Mul(2)
	bread := Pence(250).Mul(1)

	if apples != 200 {
		t.Fatalf("expected 200 pence, got %d", apples)
	}
	grand := Sum(apples, bread)
	if grand != 450 {
		t.Fatalf("expected grand total 450 pence, got %d", grand)
	}
	if grand.String() != "£4.50" {
		t.Fatalf("expected £4.50, got %s", grand.String())
	}
}
