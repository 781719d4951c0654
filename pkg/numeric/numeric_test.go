package numeric

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"plain integer", "42", true},
		{"decimal", "3.14", true},
		{"negative", "-5", true},
		{"empty in-progress state", "", true},
		{"bare decimal point in-progress", ".", true},
		{"trailing decimal point", "12.", true},
		{"leading decimal point", ".5", true},
		{"bare minus in-progress", "-", true},
		{"second decimal point", "12.5.3", false},
		{"letters", "abc", false},
		{"mixed", "12a", false},
		{"sign in the middle", "1-2", false},
		{"spaces", "1 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Parse(tt.raw); ok != tt.ok {
				t.Errorf("Parse(%q) ok = %v, expected %v", tt.raw, ok, tt.ok)
			}
		})
	}
}

func TestFilterKey(t *testing.T) {
	decimals := Options{AllowDecimal: true}
	negatives := Options{AllowNegative: true}

	tests := []struct {
		name    string
		current string
		key     rune
		opts    Options
		allowed bool
	}{
		{"digit always allowed", "12", '5', Options{}, true},
		{"first decimal point", "0", '.', decimals, true},
		{"second decimal point rejected", "0.5", '.', decimals, false},
		{"decimal point rejected when not allowed", "0", '.', Options{}, false},
		{"letter rejected", "12", 'x', decimals, false},
		{"minus as first char", "", '-', negatives, true},
		{"minus mid-value rejected", "1", '-', negatives, false},
		{"minus rejected when not allowed", "", '-', Options{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterKey(tt.current, tt.key, tt.opts); got != tt.allowed {
				t.Errorf("FilterKey(%q, %q) = %v, expected %v", tt.current, tt.key, got, tt.allowed)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	min := 1.0
	max := 100.0

	tests := []struct {
		name    string
		raw     string
		opts    Options
		wantErr bool
	}{
		{"in range", "50", Options{Min: &min, Max: &max}, false},
		{"below minimum", "0.5", Options{Min: &min}, true},
		{"above maximum", "150", Options{Max: &max}, true},
		{"negative not allowed", "-5", Options{}, true},
		{"negative allowed", "-5", Options{AllowNegative: true}, false},
		{"blank passes", "", Options{Min: &min}, false},
		{"in-progress dot passes", ".", Options{Min: &min}, false},
		{"unparseable passes, parse already filtered", "abc", Options{Min: &min}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.raw, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIsAdvisoryForNegatives(t *testing.T) {
	// A "-5" parses fine; only the sign check complains. The caller still
	// stores the value.
	if _, ok := Parse("-5"); !ok {
		t.Fatal("Parse(-5) rejected, expected accepted")
	}
	if err := Validate("-5", Options{}); err == nil {
		t.Fatal("Validate(-5) with negatives disallowed returned no error")
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"3.14", 3.14},
		{"42", 42},
		{"-5", -5},
		{"abc", 0},
		{"", 0},
		{".", 0},
		{"  7 ", 7},
	}

	for _, tt := range tests {
		if got := ToNumber(tt.raw); got != tt.expected {
			t.Errorf("ToNumber(%q) = %v, expected %v", tt.raw, got, tt.expected)
		}
	}
}
