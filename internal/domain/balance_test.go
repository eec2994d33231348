package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "canteen/internal/errors"
)

func TestValidateBalance_Equal(t *testing.T) {
	assert.NoError(t, ValidateBalance(5, 5))
	assert.NoError(t, ValidateBalance(0, 0))
}

func TestValidateBalance_Mismatch(t *testing.T) {
	err := ValidateBalance(3, 2)
	require.Error(t, err)

	qm, ok := apperrors.IsQuantityMismatchError(err)
	require.True(t, ok)
	assert.Equal(t, 3, qm.WithdrawalSum)
	assert.Equal(t, 2, qm.DeliverySum)
}

func TestValidateBalance_DeliveryExceedsWithdrawal(t *testing.T) {
	err := ValidateBalance(2, 3)
	require.Error(t, err)

	_, ok := apperrors.IsQuantityMismatchError(err)
	assert.True(t, ok)
}
