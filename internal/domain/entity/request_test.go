package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRequestStatus(t *testing.T) {
	for _, s := range []string{RequestStatusPendiente, RequestStatusConfirmada, RequestStatusFinalizada, RequestStatusCancelada} {
		assert.True(t, IsValidRequestStatus(s), s)
	}
	assert.False(t, IsValidRequestStatus("pendiente"), "los estados distinguen mayúsculas")
	assert.False(t, IsValidRequestStatus("APROBADA"))
	assert.False(t, IsValidRequestStatus(""))
}

func TestCanTransitionRequest(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{RequestStatusPendiente, RequestStatusConfirmada, true},
		{RequestStatusPendiente, RequestStatusCancelada, true},
		{RequestStatusPendiente, RequestStatusFinalizada, false},
		{RequestStatusConfirmada, RequestStatusFinalizada, true},
		{RequestStatusConfirmada, RequestStatusCancelada, true},
		{RequestStatusConfirmada, RequestStatusPendiente, false},
		// Terminales: nada sale de FINALIZADA ni de CANCELADA.
		{RequestStatusFinalizada, RequestStatusPendiente, false},
		{RequestStatusFinalizada, RequestStatusCancelada, false},
		{RequestStatusCancelada, RequestStatusConfirmada, false},
		{RequestStatusCancelada, RequestStatusPendiente, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransitionRequest(c.from, c.to), "%s → %s", c.from, c.to)
	}
}

func TestIsValidAssignmentStatus(t *testing.T) {
	for _, s := range []string{AssignmentStatusAsignado, AssignmentStatusPresente, AssignmentStatusFaltou, AssignmentStatusCancelado} {
		assert.True(t, IsValidAssignmentStatus(s), s)
	}
	assert.False(t, IsValidAssignmentStatus("presente"))
	assert.False(t, IsValidAssignmentStatus("AUSENTE"))
}
