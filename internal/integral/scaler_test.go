package integral

import (
	"errors"
	"testing"
)

// TestScaleExact verifies the multiply-first, divide-last scaling order and
// its exactness guarantee.
func TestScaleExact(t *testing.T) {
	tests := []struct {
		name        string
		coefficient Word
		divisor     Word
		power       Word
		want        Word
		wantErr     error
	}{
		{"coefficient divides evenly", 10, 5, 1, 2, nil},
		{"remainder is detected", 11, 5, 1, 0, ErrPrecisionLoss},
		{"numerator divides even when coefficient does not", 2, 4, 10, 5, nil},
		{"divisor one is a plain product", 7, 1, 9, 63, nil},
		{"zero coefficient", 0, 3, 1000, 0, nil},
		{"zero power", 42, 2, 0, 0, nil},
		{"numerator exceeds the register before dividing", 3_000_000_000, 4, 4, 3_000_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScaleExact(tt.coefficient, tt.divisor, tt.power)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ScaleExact(%d, %d, %d) error = %v, want %v",
						tt.coefficient, tt.divisor, tt.power, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ScaleExact(%d, %d, %d) returned error: %v",
					tt.coefficient, tt.divisor, tt.power, err)
			}
			if got != tt.want {
				t.Errorf("ScaleExact(%d, %d, %d) = %d, want %d",
					tt.coefficient, tt.divisor, tt.power, got, tt.want)
			}
		})
	}
}

// TestScaleExact_ZeroDivisor rejects the undefined division outright.
func TestScaleExact_ZeroDivisor(t *testing.T) {
	if _, err := ScaleExact(10, 0, 1); err == nil {
		t.Fatal("ScaleExact(10, 0, 1) should return an error")
	}
}

// TestScaleExact_PrecisionLossDetails verifies the diagnostic payload: the
// caller sees the full numerator and the remainder that would be lost.
func TestScaleExact_PrecisionLossDetails(t *testing.T) {
	_, err := ScaleExact(11, 5, 3)
	var loss PrecisionLossError
	if !errors.As(err, &loss) {
		t.Fatalf("ScaleExact(11, 5, 3) error = %v, want PrecisionLossError", err)
	}
	if loss.Product != 33 {
		t.Errorf("PrecisionLossError.Product = %d, want 33", loss.Product)
	}
	if loss.Divisor != 5 {
		t.Errorf("PrecisionLossError.Divisor = %d, want 5", loss.Divisor)
	}
	if loss.Remainder != 3 {
		t.Errorf("PrecisionLossError.Remainder = %d, want 3", loss.Remainder)
	}
}

// TestScaleExact_Overflow reports a quotient outside the register range.
func TestScaleExact_Overflow(t *testing.T) {
	// 4e9 · 4 / 2 = 8e9, well past the 32-bit range.
	_, err := ScaleExact(4_000_000_000, 2, 4)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("error = %v, want ErrOverflow", err)
	}
}

// TestScaleExact_MultiplyFirstOrder pins the operation order: dividing the
// coefficient first would truncate 2/4 to 0 and lose the term entirely, while
// the deferred division recovers the exact value from the full numerator.
func TestScaleExact_MultiplyFirstOrder(t *testing.T) {
	got, err := ScaleExact(2, 4, 6)
	if err != nil {
		t.Fatalf("ScaleExact(2, 4, 6) returned error: %v", err)
	}
	if got != 3 {
		t.Errorf("ScaleExact(2, 4, 6) = %d, want 3 (divide-first would give 0)", got)
	}
}
