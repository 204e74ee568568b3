package shipment

import (
	"errors"
	"fmt"
)

// ErrShippingMethodIsNotAvailable is returned when a shipping method label is
// not part of the fixed set of supported methods.
var ErrShippingMethodIsNotAvailable = errors.New("shipping method is not available")

// Method identifies one of the fixed set of supported shipping methods.
// The set is closed: new methods require a code change, and the pickup
// option is always last in the advertised ordering.
type Method int

const (
	// MethodUnknown represents an invalid or undefined shipping method.
	MethodUnknown Method = iota

	// MethodNovaPoshta ships via the Nova Poshta carrier.
	MethodNovaPoshta

	// MethodUkrPoshta ships via the Ukr Poshta carrier.
	MethodUkrPoshta

	// MethodMeestExpress ships via the Meest Express carrier.
	MethodMeestExpress

	// MethodPickupPoint is customer self-pickup at a pickup point.
	MethodPickupPoint
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "Unknown",
		MethodNovaPoshta:   "Nova Poshta",
		MethodUkrPoshta:    "Ukr Poshta",
		MethodMeestExpress: "Meest Express",
		MethodPickupPoint:  "Pickup Point",
	}
}

// AvailableMethods returns the supported shipping methods in their stable
// advertised order.
func AvailableMethods() []Method {
	return []Method{MethodNovaPoshta, MethodUkrPoshta, MethodMeestExpress, MethodPickupPoint}
}

// MethodFromString resolves a shipping method label to its Method value.
// The match is exact. An unrecognized label fails with
// ErrShippingMethodIsNotAvailable naming the offending value.
func MethodFromString(s string) (Method, error) {
	for _, m := range AvailableMethods() {
		if m.String() == s {
			return m, nil
		}
	}
	return MethodUnknown, fmt.Errorf("%w: %s", ErrShippingMethodIsNotAvailable, s)
}

// Validate checks that the Method is one of the supported methods.
func (m Method) Validate() error {
	for _, valid := range AvailableMethods() {
		if m == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrShippingMethodIsNotAvailable, m)
}

// String returns the human-readable label of the method.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
