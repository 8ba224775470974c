package bignum

import "testing"

func TestQArithmeticReducesToLowestTerms(t *testing.T) {
	a, ok := QFromFrac(ZFromInt64(2), ZFromInt64(4))
	if !ok {
		t.Fatal("expected QFromFrac to succeed")
	}
	if a.Cmp(QFromFrac2(1, 2)) != 0 {
		t.Fatalf("2/4 = %s, want 1/2", a)
	}
	if !a.Num().IsOne() || a.Denom().Cmp(ZFromInt64(2)) != 0 {
		t.Fatalf("2/4 not reduced: num=%s denom=%s", a.Num(), a.Denom())
	}
}

func QFromFrac2(num, den int64) Q {
	q, _ := QFromFrac(ZFromInt64(num), ZFromInt64(den))
	return q
}

func TestQDivByZeroFails(t *testing.T) {
	if _, ok := QOne().Div(QZero()); ok {
		t.Fatal("expected division by zero to fail")
	}
}

func TestQInvAndPow(t *testing.T) {
	half := QFromFrac2(1, 2)
	inv, ok := half.Inv()
	if !ok || inv.Cmp(QFromInt64(2)) != 0 {
		t.Fatalf("inv(1/2) = %s, want 2", inv)
	}
	cubed, ok := QFromInt64(2).Pow(3)
	if !ok || cubed.Cmp(QFromInt64(8)) != 0 {
		t.Fatalf("2^3 = %s, want 8", cubed)
	}
	negPow, ok := QFromInt64(2).Pow(-1)
	if !ok || negPow.Cmp(half) != 0 {
		t.Fatalf("2^-1 = %s, want 1/2", negPow)
	}
	if _, ok := QZero().Pow(-1); ok {
		t.Fatal("expected 0^-1 to fail")
	}
}

func TestQIsIntegerAndToZ(t *testing.T) {
	whole := QFromInt64(4)
	if !whole.IsInteger() {
		t.Fatal("expected an integer-valued Q to report IsInteger")
	}
	z, ok := whole.ToZ()
	if !ok || z.Cmp(ZFromInt64(4)) != 0 {
		t.Fatalf("ToZ() = %s, want 4", z)
	}
	if _, ok := QFromFrac2(1, 2).ToZ(); ok {
		t.Fatal("expected a fractional Q to fail ToZ")
	}
}

func TestQString(t *testing.T) {
	if got := QFromInt64(5).String(); got != "5" {
		t.Fatalf("String() = %q, want \"5\"", got)
	}
	if got := QFromFrac2(1, 3).String(); got != "1/3" {
		t.Fatalf("String() = %q, want \"1/3\"", got)
	}
}
