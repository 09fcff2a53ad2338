package core

import "testing"

func TestFunctionCodes(t *testing.T) {
	// Datasheet encodings; the ALT codes are not in numeric order.
	testCases := []struct {
		f    PinFunction
		code uint32
	}{
		{FuncInput, 0b000},
		{FuncOutput, 0b001},
		{FuncAlt0, 0b100},
		{FuncAlt1, 0b101},
		{FuncAlt2, 0b110},
		{FuncAlt3, 0b111},
		{FuncAlt4, 0b011},
		{FuncAlt5, 0b010},
	}

	for _, tc := range testCases {
		if got := tc.f.Code(); got != tc.code {
			t.Errorf("%v.Code() = %#b, want %#b", tc.f, got, tc.code)
		}
	}
}

func TestFunctionStrings(t *testing.T) {
	if FuncUnset.String() != "unset" {
		t.Errorf("FuncUnset.String() = %q", FuncUnset.String())
	}
	if FuncAlt5.String() != "alt5" {
		t.Errorf("FuncAlt5.String() = %q", FuncAlt5.String())
	}
	if PinFunction(200).String() != "unknown" {
		t.Errorf("out-of-range String() = %q", PinFunction(200).String())
	}
}
