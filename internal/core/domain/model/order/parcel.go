package order

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// Category classifies a parcel for handling purposes.
type Category int

const (
	// UnknownCategory is the invalid zero value.
	UnknownCategory Category = iota
	General
	Fragile
	Oversized
	Hazardous
)

type categoryNames struct {
	code  string
	label string
	hint  string
}

func getCategoryNames() map[Category]categoryNames {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]categoryNames{
		General: {
			code:  "general",
			label: "Général",
			hint:  "ex: Conserver au sec, éviter la lumière directe du soleil.",
		},
		Fragile: {
			code:  "fragile",
			label: "Fragile",
			hint:  "ex: Manipuler avec soin, ne pas empiler, protéger des chocs.",
		},
		Oversized: {
			code:  "oversized",
			label: "Hors gabarit",
			hint:  "ex: Nécessite un chariot élévateur, dégager la zone de livraison.",
		},
		Hazardous: {
			code:  "hazardous",
			label: "Dangereux",
			hint:  "ex: Maintenir à la verticale, nécessite une ventilation, équipement de protection requis.",
		},
	}
}

// Categories lists the valid categories in display order.
func Categories() []Category {
	return []Category{General, Fragile, Oversized, Hazardous}
}

// ParseCategory accepts either the wire code ("fragile") or the French label ("Fragile").
func ParseCategory(s string) (Category, error) {
	for category, names := range getCategoryNames() {
		if names.code == s || names.label == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a parcel category", s))
}

// Validate rejects UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if _, ok := getCategoryNames()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a parcel category", c))
	}
	return nil
}

// String returns the wire code.
func (c Category) String() string {
	if names, ok := getCategoryNames()[c]; ok {
		return names.code
	}
	return "unknown"
}

// Label returns the French display label used in customer-facing text.
func (c Category) Label() string {
	return getCategoryNames()[c].label
}

// InstructionsPlaceholder returns the example handling instructions shown for the category.
// Unknown categories fall back to the General hint.
func (c Category) InstructionsPlaceholder() string {
	if names, ok := getCategoryNames()[c]; ok {
		return names.hint
	}
	return getCategoryNames()[General].hint
}

// ParcelField names an editable free-text field of a Parcel.
type ParcelField int

const (
	// UnknownParcelField is the invalid zero value.
	UnknownParcelField ParcelField = iota
	Weight
	Length
	Width
	Height
	Contents
	SpecialInstructions
)

func getParcelFieldStrings() map[ParcelField]string {
	//nolint:exhaustive // UnknownParcelField is intentionally excluded as it's invalid
	return map[ParcelField]string{
		Weight:              "weight",
		Length:              "length",
		Width:               "width",
		Height:              "height",
		Contents:            "contents",
		SpecialInstructions: "specialInstructions",
	}
}

// ParseParcelField maps a wire name to a ParcelField.
func ParseParcelField(s string) (ParcelField, error) {
	for field, name := range getParcelFieldStrings() {
		if name == s {
			return field, nil
		}
	}
	return UnknownParcelField, errs.NewValueIsInvalidErrorWithCause(
		"parcel field", fmt.Errorf("%q is not a parcel field", s))
}

func (f ParcelField) Validate() error {
	if _, ok := getParcelFieldStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("parcel field", fmt.Errorf("%d is not a parcel field", f))
	}
	return nil
}

func (f ParcelField) String() string {
	if s, ok := getParcelFieldStrings()[f]; ok {
		return s
	}
	return "unknown"
}

// Parcel describes the goods to carry. Measurements are kept as typed by the
// customer (kilograms and centimetres); only weight and contents are mandatory.
type Parcel struct {
	weight              string
	length              string
	width               string
	height              string
	contents            string
	category            Category
	specialInstructions string
}

// NewParcel returns an empty parcel in the General category.
func NewParcel() Parcel {
	return Parcel{category: General}
}

func (p Parcel) Weight() string              { return p.weight }
func (p Parcel) Length() string              { return p.length }
func (p Parcel) Width() string               { return p.width }
func (p Parcel) Height() string              { return p.height }
func (p Parcel) Contents() string            { return p.contents }
func (p Parcel) Category() Category          { return p.category }
func (p Parcel) SpecialInstructions() string { return p.specialInstructions }

// Field returns the value of a text field, or "" for an unknown field.
func (p Parcel) Field(field ParcelField) string {
	switch field {
	case Weight:
		return p.weight
	case Length:
		return p.length
	case Width:
		return p.width
	case Height:
		return p.height
	case Contents:
		return p.contents
	case SpecialInstructions:
		return p.specialInstructions
	case UnknownParcelField:
	}
	return ""
}

// WithField returns a copy of the parcel with one text field replaced.
func (p Parcel) WithField(field ParcelField, value string) (Parcel, error) {
	if err := field.Validate(); err != nil {
		return p, err
	}
	switch field {
	case Weight:
		p.weight = value
	case Length:
		p.length = value
	case Width:
		p.width = value
	case Height:
		p.height = value
	case Contents:
		p.contents = value
	case SpecialInstructions:
		p.specialInstructions = value
	case UnknownParcelField:
	}
	return p, nil
}

// WithCategory returns a copy of the parcel in another category.
func (p Parcel) WithCategory(category Category) (Parcel, error) {
	if err := category.Validate(); err != nil {
		return p, err
	}
	p.category = category
	return p, nil
}

// IsDescribed reports whether the mandatory weight and contents are present.
func (p Parcel) IsDescribed() bool {
	return p.weight != "" && p.contents != ""
}
