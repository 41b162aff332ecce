package staffing

import (
	"github.com/shopspring/decimal"

	"github.com/dguzman/staffing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// EffectivePayment calcula el valor a pagar de un turno aplicando su descuento.
// Es la única fuente de verdad del cálculo: todo reporte o exportación que
// muestre el valor monetario de un turno debe pasar por aquí.
//
//	con descuento:  payment_amount × (1 − discount_percentage / 100)
//	sin descuento:  payment_amount
func EffectivePayment(amount decimal.Decimal, hasDiscount bool, pct decimal.Decimal) decimal.Decimal {
	if !hasDiscount {
		return amount
	}
	return amount.Mul(hundred.Sub(pct)).Div(hundred)
}

// ShiftPayment aplica EffectivePayment a un turno.
func ShiftPayment(s entity.WorkShift) decimal.Decimal {
	return EffectivePayment(s.PaymentAmount, s.HasDiscount, s.DiscountPercentage)
}

// NormalizeDiscount fuerza el porcentaje a 0 cuando el turno no tiene descuento.
// Es una regla de normalización, no de validación: se aplica aunque el caller
// haya enviado un porcentaje distinto de cero con has_discount=false.
func NormalizeDiscount(hasDiscount bool, pct decimal.Decimal) decimal.Decimal {
	if !hasDiscount {
		return decimal.Zero
	}
	return pct
}
