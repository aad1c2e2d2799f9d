package state

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// Variant is the game played on the pyramid: each variant has its own rules,
// move space and metadata, but all share the same geometry.
type Variant uint8

const (
	Spline Variant = iota
	Spargo
	Margo
	Spaiji
	Sparks
	Spire
	Sploof
	Spook
	Sandbox

	// NumVariants is the number of variants supported.
	NumVariants
)

var variantNames = [NumVariants]string{
	"Spline", "Spargo", "Margo", "Spaiji", "Sparks", "Spire", "Sploof", "Spook", "Sandbox",
}

// Variants lists all variants, in order.
var Variants = func() (variants []Variant) {
	for v := range NumVariants {
		variants = append(variants, v)
	}
	return
}()

// String returns the name of the variant, as used by VariantFromName.
func (v Variant) String() string {
	if v >= NumVariants {
		return fmt.Sprintf("Variant(%d)", v)
	}
	return variantNames[v]
}

// VariantFromName returns the variant with the given name, case-insensitive.
func VariantFromName(name string) (Variant, error) {
	for v, vName := range variantNames {
		if strings.EqualFold(name, vName) {
			return Variant(v), nil
		}
	}
	return NumVariants, errors.Errorf("unknown game %q, valid values are %s", name, strings.Join(variantNames[:], ", "))
}

// DefaultSize of the pyramid for the variant: Margo is Spargo on a 6 levels pyramid.
func (v Variant) DefaultSize() int {
	if v == Margo {
		return 6
	}
	return DefaultSize
}

// Players of the variant, in the order they move. Spook is played by Red and Black,
// Sandbox has no players, every other variant is played by Black and White.
func (v Variant) Players() []Piece {
	switch v {
	case Spook:
		return []Piece{Red, Black}
	case Sandbox:
		return nil
	case Spaiji, Sparks, Sploof:
		return []Piece{White, Black}
	default:
		return []Piece{Black, White}
	}
}
