package order_test

import (
	"testing"

	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	t.Run("labels match the french wording", func(t *testing.T) {
		assert.Equal(t, "Général", order.General.Label())
		assert.Equal(t, "Fragile", order.Fragile.Label())
		assert.Equal(t, "Hors gabarit", order.Oversized.Label())
		assert.Equal(t, "Dangereux", order.Hazardous.Label())
	})

	t.Run("should parse codes and labels", func(t *testing.T) {
		byCode, err := order.ParseCategory("oversized")
		require.NoError(t, err)
		byLabel, err := order.ParseCategory("Hors gabarit")
		require.NoError(t, err)

		assert.Equal(t, order.Oversized, byCode)
		assert.Equal(t, order.Oversized, byLabel)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := order.ParseCategory("liquid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.Error(t, order.UnknownCategory.Validate())
	})

	t.Run("placeholders depend on category", func(t *testing.T) {
		assert.Equal(t, "ex: Manipuler avec soin, ne pas empiler, protéger des chocs.",
			order.Fragile.InstructionsPlaceholder())
		assert.Equal(t, "ex: Maintenir à la verticale, nécessite une ventilation, équipement de protection requis.",
			order.Hazardous.InstructionsPlaceholder())
		assert.Equal(t, "ex: Nécessite un chariot élévateur, dégager la zone de livraison.",
			order.Oversized.InstructionsPlaceholder())
		assert.Equal(t, "ex: Conserver au sec, éviter la lumière directe du soleil.",
			order.General.InstructionsPlaceholder())
		assert.Equal(t, order.General.InstructionsPlaceholder(), order.UnknownCategory.InstructionsPlaceholder())
	})

	t.Run("categories are listed in display order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Category{order.General, order.Fragile, order.Oversized, order.Hazardous},
			order.Categories())
	})
}

func TestParcel(t *testing.T) {
	t.Run("new parcel is general and empty", func(t *testing.T) {
		parcel := order.NewParcel()

		assert.Equal(t, order.General, parcel.Category())
		assert.False(t, parcel.IsDescribed())
	})

	t.Run("should set every text field", func(t *testing.T) {
		parcel := order.NewParcel()
		for _, name := range []string{"weight", "length", "width", "height", "contents", "specialInstructions"} {
			field, err := order.ParseParcelField(name)
			require.NoError(t, err)

			parcel, err = parcel.WithField(field, name+"-value")
			require.NoError(t, err)
			assert.Equal(t, name+"-value", parcel.Field(field))
		}
		assert.True(t, parcel.IsDescribed())
	})

	t.Run("should reject unknown field and category", func(t *testing.T) {
		_, err := order.NewParcel().WithField(order.UnknownParcelField, "1")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewParcel().WithCategory(order.Category(42))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
