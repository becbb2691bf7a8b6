package orchestration

import "github.com/agbru/polyint/internal/integral"

// GetCalculatorsToRun determines which backends should be executed based on
// the algorithm selection. Returns backends in alphabetically sorted key
// order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The backend key, or "all" for a full comparison run.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []integral.Calculator: A slice of backends to execute, or nil when the
//     key is unknown.
func GetCalculatorsToRun(algo string, factory integral.CalculatorFactory) []integral.Calculator {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]integral.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []integral.Calculator{calc}
	}
	return nil
}
