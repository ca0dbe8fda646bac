package order

import (
	"dispatch/internal/pkg/errs"
)

// Grade is the concrete strength class requested by an order.
// It is a fixed enumeration: concrete plants do not mix arbitrary grades.
type Grade string

const (
	GradeB20 Grade = "B20"
	GradeB25 Grade = "B25"
	GradeB30 Grade = "B30"
	GradeB35 Grade = "B35"
	GradeB40 Grade = "B40"
	GradeB50 Grade = "B50"
)

func getValidGrades() map[Grade]struct{} {
	return map[Grade]struct{}{
		GradeB20: {},
		GradeB25: {},
		GradeB30: {},
		GradeB35: {},
		GradeB40: {},
		GradeB50: {},
	}
}

// Validate checks that the grade is one of the supported strength classes.
func (g Grade) Validate() error {
	if _, ok := getValidGrades()[g]; !ok {
		return errs.NewValueIsInvalidError("grade: " + string(g))
	}
	return nil
}

// String returns the grade name, e.g. "B30".
func (g Grade) String() string {
	return string(g)
}

// GradeFromString parses a stored grade string, validating it.
func GradeFromString(raw string) (Grade, error) {
	g := Grade(raw)
	if err := g.Validate(); err != nil {
		return "", err
	}
	return g, nil
}
