package watchlist

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphafinders/teabot/internal/models"
)

func testToken(address, symbol string) *models.TokenRecord {
	return &models.TokenRecord{
		ContractAddress: address,
		Symbol:          symbol,
		Name:            symbol + " Token",
		PriceUSD:        0.5,
	}
}

func TestAddAndList(t *testing.T) {
	s := NewStore(nil)

	res := s.Add("42", testToken("0xaaa", "TEA"))
	assert.True(t, res.Success)
	assert.Equal(t, "TEA added to your watchlist!", res.Message)

	entries := s.List("42")
	require.Len(t, entries, 1)
	assert.Equal(t, "0xaaa", entries[0].ContractAddress)
	assert.Equal(t, "optimism", entries[0].ChainID)
	assert.Equal(t, 0.5, entries[0].PriceAtAdd)
}

func TestAddDuplicateCaseInsensitive(t *testing.T) {
	s := NewStore(nil)

	s.Add("42", testToken("0xAbC", "TEA"))
	res := s.Add("42", testToken("0xabc", "TEA"))

	assert.False(t, res.Success)
	assert.Equal(t, "TEA is already in your watchlist!", res.Message)
	assert.Len(t, s.List("42"), 1)
}

func TestAddInvalidInput(t *testing.T) {
	s := NewStore(nil)

	assert.False(t, s.Add("", testToken("0xaaa", "TEA")).Success)
	assert.False(t, s.Add("42", nil).Success)
	assert.False(t, s.Add("42", testToken("", "TEA")).Success)
}

func TestRemoveCaseInsensitive(t *testing.T) {
	s := NewStore(nil)
	s.Add("42", testToken("0xAbC", "TEA"))

	res := s.Remove("42", "0xABC")
	assert.True(t, res.Success)
	assert.Empty(t, s.List("42"))
}

func TestRemoveMissing(t *testing.T) {
	s := NewStore(nil)

	res := s.Remove("42", "0xaaa")
	assert.False(t, res.Success)

	s.Add("42", testToken("0xbbb", "TEA"))
	res = s.Remove("42", "0xaaa")
	assert.False(t, res.Success)
	assert.Len(t, s.List("42"), 1)
}

func TestContains(t *testing.T) {
	s := NewStore(nil)
	s.Add("42", testToken("0xAbC", "TEA"))

	assert.True(t, s.Contains("42", "0xabc"))
	assert.False(t, s.Contains("42", "0xddd"))
	assert.False(t, s.Contains("7", "0xabc"))
}

func TestListIsolatedPerUser(t *testing.T) {
	s := NewStore(nil)
	s.Add("1", testToken("0xaaa", "ONE"))
	s.Add("2", testToken("0xbbb", "TWO"))

	require.Len(t, s.List("1"), 1)
	assert.Equal(t, "ONE", s.List("1")[0].Symbol)
	require.Len(t, s.List("2"), 1)
	assert.Equal(t, "TWO", s.List("2")[0].Symbol)
}

func TestGetStats(t *testing.T) {
	s := NewStore(nil)
	base := time.Now()
	i := 0
	s.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	for n := 0; n < 3; n++ {
		s.Add("42", testToken(fmt.Sprintf("0x%03d", n), fmt.Sprintf("T%d", n)))
	}

	stats := s.GetStats("42")
	assert.Equal(t, 3, stats.Count)
	require.NotNil(t, stats.OldestToken)
	require.NotNil(t, stats.NewestToken)
	assert.Equal(t, "T0", stats.OldestToken.Symbol)
	assert.Equal(t, "T2", stats.NewestToken.Symbol)
}

func TestGetStatsEmpty(t *testing.T) {
	s := NewStore(nil)

	stats := s.GetStats("42")
	assert.Zero(t, stats.Count)
	assert.Nil(t, stats.OldestToken)
	assert.Nil(t, stats.NewestToken)
}

func TestClear(t *testing.T) {
	s := NewStore(nil)
	s.Add("42", testToken("0xaaa", "TEA"))
	s.Add("42", testToken("0xbbb", "LEAF"))

	assert.Equal(t, 2, s.Clear("42"))
	assert.Empty(t, s.List("42"))
	assert.Zero(t, s.Clear("42"))
}
