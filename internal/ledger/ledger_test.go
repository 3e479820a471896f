package ledger

import (
	"math/big"
	"testing"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	alice = entity.Address("0xa000000000000000000000000000000000000001")
	bob   = entity.Address("0xb000000000000000000000000000000000000001")
	carol = entity.Address("0xc000000000000000000000000000000000000001")
)

func TestTransfer(t *testing.T) {
	token := NewToken()
	token.Credit(alice, big.NewInt(100))

	t.Run("moves funds", func(t *testing.T) {
		require.NoError(t, token.Transfer(alice, bob, big.NewInt(40)))
		require.EqualValues(t, 60, token.BalanceOf(alice).Int64())
		require.EqualValues(t, 40, token.BalanceOf(bob).Int64())
	})

	t.Run("rejects overdraw", func(t *testing.T) {
		require.ErrorIs(t, token.Transfer(alice, bob, big.NewInt(61)), ErrBalanceExceeded)
	})

	t.Run("rejects negative and nil amounts", func(t *testing.T) {
		require.ErrorIs(t, token.Transfer(alice, bob, big.NewInt(-1)), ErrInvalidAmount)
		require.ErrorIs(t, token.Transfer(alice, bob, nil), ErrInvalidAmount)
	})
}

func TestTransferFrom(t *testing.T) {
	token := NewToken()
	token.Credit(alice, big.NewInt(100))

	t.Run("requires an allowance", func(t *testing.T) {
		err := token.TransferFrom(carol, alice, bob, big.NewInt(10))
		require.ErrorIs(t, err, ErrAllowanceExceeded)
	})

	t.Run("spends the allowance", func(t *testing.T) {
		token.Approve(alice, carol, big.NewInt(50))

		require.NoError(t, token.TransferFrom(carol, alice, bob, big.NewInt(30)))
		require.EqualValues(t, 30, token.BalanceOf(bob).Int64())
		require.EqualValues(t, 20, token.Allowance(alice, carol).Int64())

		err := token.TransferFrom(carol, alice, bob, big.NewInt(21))
		require.ErrorIs(t, err, ErrAllowanceExceeded)
	})

	t.Run("requires balance even with allowance", func(t *testing.T) {
		token.Approve(bob, carol, big.NewInt(1000))

		err := token.TransferFrom(carol, bob, alice, big.NewInt(500))
		require.ErrorIs(t, err, ErrBalanceExceeded)
	})
}
