package safety

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphafinders/teabot/internal/models"
)

const (
	addrOne   = "0x1111111111111111111111111111111111111111"
	addrTwo   = "0x2222222222222222222222222222222222222222"
	addrThree = "0x3333333333333333333333333333333333333333"
)

type stubCodeReader struct {
	code map[string]string
	err  error
}

func (s *stubCodeReader) Bytecode(_ context.Context, address string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.code[address], nil
}

func cleanToken(address string) models.TokenRecord {
	return models.TokenRecord{
		ContractAddress: address,
		Symbol:          "TEA",
		Liquidity:       models.Liquidity{USD: 5000},
		Volume:          models.VolumeWindows{H24: 2000},
		Txns:            models.TxnWindows{H24: models.TxnCount{Buys: 30, Sells: 20}},
	}
}

func TestFilterSafeLowLiquidityExcluded(t *testing.T) {
	code := &stubCodeReader{code: map[string]string{}}
	f := NewFilter(code, DefaultFilterParams(), nil)

	token := cleanToken(addrOne)
	token.Liquidity.USD = 50

	out := f.FilterSafe(context.Background(), []models.TokenRecord{token})
	assert.Empty(t, out)
}

func TestFilterSafeMissingFieldsExcluded(t *testing.T) {
	code := &stubCodeReader{code: map[string]string{}}
	f := NewFilter(code, DefaultFilterParams(), nil)

	noAddress := cleanToken("")
	noLiquidity := cleanToken(addrTwo)
	noLiquidity.Liquidity.USD = 0

	out := f.FilterSafe(context.Background(), []models.TokenRecord{noAddress, noLiquidity})
	assert.Empty(t, out)
}

func TestFilterSafeHoneypotExcluded(t *testing.T) {
	code := &stubCodeReader{code: map[string]string{
		addrOne: "0x6080selfdestruct6040",
		addrTwo: "0x60806040",
	}}
	f := NewFilter(code, DefaultFilterParams(), nil)

	out := f.FilterSafe(context.Background(), []models.TokenRecord{
		cleanToken(addrOne),
		cleanToken(addrTwo),
	})

	require.Len(t, out, 1)
	assert.Equal(t, addrTwo, out[0].ContractAddress)
}

func TestFilterSafeOutputSubsetWithScores(t *testing.T) {
	code := &stubCodeReader{code: map[string]string{}}
	f := NewFilter(code, DefaultFilterParams(), nil)

	input := []models.TokenRecord{
		cleanToken(addrOne),
		cleanToken(addrTwo),
		cleanToken(addrThree),
	}
	input[1].Liquidity.USD = 10 // excluded

	out := f.FilterSafe(context.Background(), input)

	require.Len(t, out, 2)
	assert.Equal(t, addrOne, out[0].ContractAddress)
	assert.Equal(t, addrThree, out[1].ContractAddress)
	for _, token := range out {
		assert.GreaterOrEqual(t, token.SafetyScore, 0)
		assert.LessOrEqual(t, token.SafetyScore, 100)
	}
}

func TestQuickHoneypotCheckFailsOpen(t *testing.T) {
	code := &stubCodeReader{err: errors.New("rpc down")}

	hp := QuickHoneypotCheck(context.Background(), code, addrOne)

	assert.False(t, hp.IsHoneypot)
	assert.True(t, hp.CanBuy)
	assert.True(t, hp.CanSell)
}

func TestQuickHoneypotCheckPatterns(t *testing.T) {
	for _, pattern := range []string{"selfdestruct", "DELEGATECALL", "suicide"} {
		code := &stubCodeReader{code: map[string]string{addrOne: "0x00" + pattern + "00"}}
		hp := QuickHoneypotCheck(context.Background(), code, addrOne)
		assert.True(t, hp.IsHoneypot, pattern)
		assert.False(t, hp.CanSell, pattern)
	}
}
