package ledger

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"go.uber.org/zap"
)

var (
	ErrBalanceExceeded   = errors.New("transfer amount exceeds balance")
	ErrAllowanceExceeded = errors.New("transfer amount exceeds allowance")
	ErrInvalidAmount     = errors.New("invalid transfer amount")
)

// Ledger is the fungible payment balance the market settles against.
type Ledger interface {
	Transfer(from, to entity.Address, amount *big.Int) error
	TransferFrom(spender, from, to entity.Address, amount *big.Int) error
	BalanceOf(addr entity.Address) *big.Int
	Allowance(owner, spender entity.Address) *big.Int
}

type Token struct {
	mtx        sync.RWMutex
	balances   map[entity.Address]*big.Int
	allowances map[entity.Address]map[entity.Address]*big.Int
}

func NewToken() *Token {
	return &Token{
		balances:   make(map[entity.Address]*big.Int),
		allowances: make(map[entity.Address]map[entity.Address]*big.Int),
	}
}

// Credit funds an account. Reference implementation only; production
// deployments settle against an external token ledger.
func (t *Token) Credit(addr entity.Address, amount *big.Int) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.balances[addr] = new(big.Int).Add(t.balance(addr), amount)
}

func (t *Token) Approve(owner, spender entity.Address, amount *big.Int) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[entity.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *Token) Transfer(from, to entity.Address, amount *big.Int) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.move(from, to, amount)
}

func (t *Token) TransferFrom(spender, from, to entity.Address, amount *big.Int) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	allowance := t.allowance(from, spender)
	if allowance.Cmp(amount) < 0 {
		return ErrAllowanceExceeded
	}

	if err := t.move(from, to, amount); err != nil {
		return err
	}

	t.allowances[from][spender] = new(big.Int).Sub(allowance, amount)

	return nil
}

func (t *Token) BalanceOf(addr entity.Address) *big.Int {
	t.mtx.RLock()
	defer t.mtx.RUnlock()

	return new(big.Int).Set(t.balance(addr))
}

func (t *Token) Allowance(owner, spender entity.Address) *big.Int {
	t.mtx.RLock()
	defer t.mtx.RUnlock()

	return new(big.Int).Set(t.allowance(owner, spender))
}

func (t *Token) move(from, to entity.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidAmount
	}

	fromBalance := t.balance(from)
	if fromBalance.Cmp(amount) < 0 {
		return ErrBalanceExceeded
	}

	t.balances[from] = new(big.Int).Sub(fromBalance, amount)
	t.balances[to] = new(big.Int).Add(t.balance(to), amount)

	zap.L().With(
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("amount", amount.String()),
	).Debug("Ledger: transfer")

	return nil
}

func (t *Token) balance(addr entity.Address) *big.Int {
	if b, ok := t.balances[addr]; ok {
		return b
	}

	return new(big.Int)
}

func (t *Token) allowance(owner, spender entity.Address) *big.Int {
	if owned, ok := t.allowances[owner]; ok {
		if a, ok := owned[spender]; ok {
			return a
		}
	}

	return new(big.Int)
}
