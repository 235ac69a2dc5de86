// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

type BaseOp struct {
	// Magic is the ledger's domain separator and must match the genesis.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce makes otherwise identical submissions distinct so that replays
	// of an executed operation are rejected by op-id lookup.
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseOp) SetMagic(magic uint64) { b.Magic = magic }
func (b *BaseOp) GetMagic() uint64      { return b.Magic }

func (b *BaseOp) SetNonce(nonce uint64) { b.Nonce = nonce }
func (b *BaseOp) GetNonce() uint64      { return b.Nonce }

func (b *BaseOp) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseOp) Copy() *BaseOp {
	return &BaseOp{
		Magic: b.Magic,
		Nonce: b.Nonce,
	}
}
