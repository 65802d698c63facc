package target

import "fmt"

// Family identifies a target distribution family.
type Family string

const (
	FamilyTruncNorm Family = "truncnorm"
	FamilyBeta      Family = "beta"
)

// AllFamilies returns the supported families.
func AllFamilies() []Family {
	return []Family{FamilyTruncNorm, FamilyBeta}
}

// ParseFamily converts a configuration string into a Family.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case FamilyTruncNorm:
		return FamilyTruncNorm, nil
	case FamilyBeta:
		return FamilyBeta, nil
	default:
		return "", fmt.Errorf("unknown target distribution family %q", s)
	}
}
