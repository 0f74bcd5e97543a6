package dragon4

import (
	"math"
	"testing"
)

func TestDigits_String(t *testing.T) {
	tests := []struct {
		d    Digits
		want string
	}{
		{Digits{}, "0.e0"},
		{Digits{exp: -5}, "0.e-5"},
		{Digits{digits: []byte("1"), exp: 0}, "0.1e0"},
		{Digits{digits: []byte("123456"), exp: 3}, "0.123456e3"},
		{Digits{digits: []byte("5"), exp: -323}, "0.5e-323"},
		{Digits{digits: []byte("17976931348623157"), exp: 309}, "0.17976931348623157e309"},
	}
	for _, tt := range tests {
		got := tt.d.String()
		if got != tt.want {
			t.Errorf("%q.String() = %q, want %q", tt.d.digits, got, tt.want)
		}
	}
}

func TestDigits_Float64(t *testing.T) {
	tests := []struct {
		d      Digits
		want   float64
		wantOk bool
	}{
		{Digits{}, 0, false},
		{Digits{exp: 7}, 0, false},
		{Digits{digits: []byte("1"), exp: 0}, 0.1, true},
		{Digits{digits: []byte("123456"), exp: 3}, 123.456, true},
		{Digits{digits: []byte("5"), exp: -323}, math.SmallestNonzeroFloat64, true},
		{Digits{digits: []byte("17976931348623157"), exp: 309}, math.MaxFloat64, true},
		{Digits{digits: []byte("2"), exp: 309}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.d.Float64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.Float64() = %v, %v, want %v, %v", tt.d, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestDigits_Bytes(t *testing.T) {
	d := Shortest(123.456)
	if d.Len() != 6 || d.IsEmpty() {
		t.Errorf("Shortest(123.456).Len() = %v, want 6", d.Len())
	}
	b := d.Bytes()
	b[0] = '9'
	if got := string(d.Bytes()); got != "123456" {
		t.Errorf("Bytes() aliases the digits, got %q after modification", got)
	}

	var e Digits
	if e.Bytes() != nil || !e.IsEmpty() || e.Len() != 0 || e.Exp() != 0 {
		t.Errorf("zero Digits = %v, want empty", e)
	}
}
