package validation

import "testing"

func TestPositiveInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "simple id", input: "42", expected: 42, ok: true},
		{name: "one is valid", input: "1", expected: 1, ok: true},
		{name: "surrounding whitespace", input: " 7 ", expected: 7, ok: true},
		{name: "zero is not positive", input: "0", ok: false},
		{name: "negative", input: "-3", ok: false},
		{name: "empty string", input: "", ok: false},
		{name: "not a number", input: "abc", ok: false},
		{name: "float is not an id", input: "1.5", ok: false},
		{name: "trailing garbage", input: "12x", ok: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := PositiveInt(tt.input)
			if ok != tt.ok {
				t.Fatalf("PositiveInt(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			}
			if ok && id != tt.expected {
				t.Errorf("PositiveInt(%q) = %d, expected %d", tt.input, id, tt.expected)
			}
		})
	}
}

func TestPositiveID(t *testing.T) {
	testCases := []struct {
		name     string
		input    int
		expected bool
	}{
		{name: "simple id", input: 42, expected: true},
		{name: "one is valid", input: 1, expected: true},
		{name: "zero is not positive", input: 0, expected: false},
		{name: "negative", input: -3, expected: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositiveID(tt.input); got != tt.expected {
				t.Errorf("PositiveID(%d) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNonEmptyString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain name", input: "Mario's", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "only whitespace", input: "   \t", expected: false},
		{name: "padded name", input: "  Margherita  ", expected: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonEmptyString(tt.input); got != tt.expected {
				t.Errorf("NonEmptyString(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRatingInRange(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	testCases := []struct {
		name     string
		input    *float64
		expected bool
	}{
		{name: "nil means default", input: nil, expected: true},
		{name: "lower bound", input: ptr(0), expected: true},
		{name: "upper bound", input: ptr(5), expected: true},
		{name: "middle", input: ptr(3.7), expected: true},
		{name: "below range", input: ptr(-0.1), expected: false},
		{name: "above range", input: ptr(5.1), expected: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatingInRange(tt.input); got != tt.expected {
				t.Errorf("RatingInRange(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPositivePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected bool
	}{
		{name: "normal price", input: 9.5, expected: true},
		{name: "zero", input: 0, expected: false},
		{name: "negative", input: -1, expected: false},
		{name: "tiny but positive", input: 0.01, expected: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositivePrice(tt.input); got != tt.expected {
				t.Errorf("PositivePrice(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
