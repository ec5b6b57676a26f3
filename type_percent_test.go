package portfolio

import "testing"

func TestPercent_String(t *testing.T) {
	testCases := []struct {
		in           Percent
		want, signed string
	}{
		{9.8021, "9.80%", "+9.80%"},
		{-1.5, "-1.50%", "-1.50%"},
		{0, "0.00%", "-"},
		{0.004, "0.00%", "-"},
		{-0.004, "-0.00%", "-"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.in), got, tc.want)
		}
		if got := tc.in.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.in), got, tc.signed)
		}
	}
	if !Percent(9.80211).Equal(9.8021) || Percent(9.8).Equal(9.81) {
		t.Errorf("Equal() does not compare within 0.0001")
	}
}
