package staffing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dguzman/staffing-api/internal/domain/entity"
)

func TestEffectivePayment_ConDescuento(t *testing.T) {
	// 200 con 25% de descuento → 150
	got := EffectivePayment(decimal.NewFromInt(200), true, decimal.NewFromInt(25))
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "esperado 150, obtenido %s", got)
}

func TestEffectivePayment_SinDescuento(t *testing.T) {
	// Sin descuento el porcentaje se ignora por completo.
	got := EffectivePayment(decimal.NewFromInt(200), false, decimal.NewFromInt(25))
	assert.True(t, got.Equal(decimal.NewFromInt(200)), "esperado 200, obtenido %s", got)
}

func TestEffectivePayment_DescuentoCero(t *testing.T) {
	got := EffectivePayment(decimal.NewFromInt(180), true, decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(180)))
}

func TestEffectivePayment_DescuentoTotal(t *testing.T) {
	got := EffectivePayment(decimal.NewFromInt(180), true, decimal.NewFromInt(100))
	assert.True(t, got.IsZero())
}

func TestEffectivePayment_Fraccionario(t *testing.T) {
	// 150.50 con 10% → 135.45
	amount := decimal.RequireFromString("150.50")
	want := decimal.RequireFromString("135.45")
	got := EffectivePayment(amount, true, decimal.NewFromInt(10))
	assert.True(t, got.Equal(want), "esperado %s, obtenido %s", want, got)
}

func TestShiftPayment_UsaLosCamposDelTurno(t *testing.T) {
	shift := entity.WorkShift{
		PaymentAmount:      decimal.NewFromInt(200),
		HasDiscount:        true,
		DiscountPercentage: decimal.NewFromInt(25),
	}
	assert.True(t, ShiftPayment(shift).Equal(decimal.NewFromInt(150)))
}

func TestNormalizeDiscount_FuerzaCeroSinDescuento(t *testing.T) {
	// has_discount=false gana aunque el caller mande un porcentaje.
	got := NormalizeDiscount(false, decimal.NewFromInt(40))
	assert.True(t, got.IsZero())
}

func TestNormalizeDiscount_ConservaPorcentajeConDescuento(t *testing.T) {
	got := NormalizeDiscount(true, decimal.NewFromInt(40))
	assert.True(t, got.Equal(decimal.NewFromInt(40)))
}
