package speech

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"school.", "school"},
		{"really?", "really"},
		{"wow!", "wow"},
		{"yes,", "yes"},
		{"don't", "don't"},
		{"don't.", "don't"},
		{"I", "i"},
		{"I.", "i"},
		{"It", "It"},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
