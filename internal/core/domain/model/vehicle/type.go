package vehicle

import (
	"dispatch/internal/pkg/errs"
)

// Type distinguishes the two kinds of fleet assets.
type Type string

const (
	// TypeMixer is a truck carrying a fixed volume of concrete per trip.
	TypeMixer Type = "mixer"

	// TypePump provides discharge capability on site. It carries no volume;
	// its capacity is conceptually zero.
	TypePump Type = "pump"
)

// Validate checks that the type is mixer or pump.
func (t Type) Validate() error {
	if t != TypeMixer && t != TypePump {
		return errs.NewValueIsInvalidError("vehicle type: " + string(t))
	}
	return nil
}

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// TypeFromString parses a stored type string, validating it.
func TypeFromString(raw string) (Type, error) {
	t := Type(raw)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}
