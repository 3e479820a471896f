package market

import (
	"math/big"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// capture pulls amount from the payer into the market's escrow balance and
// verifies the ledger credited exactly that amount. Guards against
// non-standard ledgers that silently short-transfer.
func (m *market) capture(payer entity.Address, amount *big.Int) error {
	before := m.ledger.BalanceOf(m.addr)

	if err := m.ledger.TransferFrom(m.addr, payer, m.addr, amount); err != nil {
		return errors.Wrap(err, "capture payment")
	}

	received := new(big.Int).Sub(m.ledger.BalanceOf(m.addr), before)
	if received.Cmp(amount) != 0 {
		return ErrUnexpectedTransferAmount
	}

	return nil
}

// settle distributes an escrowed sale amount and hands the token over.
//
// The commission comes off the top. When the seller is still the original
// creator (primary sale) the whole remainder is split across the creator
// list; otherwise the creators receive the royalty cut and the seller the
// rest. Integer division truncates; the dust lost to truncation is bounded
// by one unit per creator share and is not redistributed.
func (m *market) settle(tokenId uint64, amount *big.Int, tokenOwner, recipient entity.Address) error {
	fee, err := m.feeRepo.GetFee(tokenId)
	if err != nil {
		return err
	}

	royaltyReceiver, royaltyAmount, err := m.registry.RoyaltyInfo(tokenId, amount)
	if err != nil {
		return errors.Wrap(err, "royalty lookup")
	}

	commission := bpsShare(amount, fee.CommissionBps)
	if commission.Sign() > 0 {
		if err := m.ledger.Transfer(m.addr, m.commissionRecipient, commission); err != nil {
			return errors.Wrap(err, "pay commission")
		}
	}

	if royaltyReceiver.Equals(tokenOwner) {
		// Primary sale: owner and creator are the same party, so there is
		// no separate royalty/owner split.
		remainder := new(big.Int).Sub(amount, commission)
		if err := m.distributeShares(fee, remainder); err != nil {
			return err
		}
	} else {
		if err := m.distributeShares(fee, royaltyAmount); err != nil {
			return err
		}

		payment := new(big.Int).Sub(amount, commission)
		payment.Sub(payment, royaltyAmount)
		if payment.Sign() > 0 {
			if err := m.ledger.Transfer(m.addr, tokenOwner, payment); err != nil {
				return errors.Wrap(err, "pay owner")
			}
		}
	}

	if err := m.registry.MarketTransfer(m.addr, tokenOwner, recipient, tokenId); err != nil {
		return errors.Wrap(err, "market transfer")
	}

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("amount", amount.String()),
		zap.String("commission", commission.String()),
		zap.String("from", tokenOwner.String()),
		zap.String("to", recipient.String()),
	).Info("Market: settled")

	return nil
}

// distributeShares pays amount out across the fee's creators by their
// basis-point shares.
func (m *market) distributeShares(fee *entity.Fee, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return nil
	}

	for i, creator := range fee.Creators {
		share := bpsShare(amount, fee.CreatorShares[i])
		if share.Sign() == 0 {
			continue
		}

		if err := m.ledger.Transfer(m.addr, creator, share); err != nil {
			return errors.Wrapf(err, "pay creator %s", creator)
		}
	}

	return nil
}

func bpsShare(amount *big.Int, bps uint32) *big.Int {
	share := new(big.Int).Mul(amount, big.NewInt(int64(bps)))

	return share.Div(share, big.NewInt(int64(entity.TotalBps)))
}
