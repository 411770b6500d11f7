package models

import "testing"

func TestValidTransactionType(t *testing.T) {
	for _, tt := range []TransactionType{TxBuy, TxSell, TxTransfer, TxDeposit, TxWithdrawal} {
		if !ValidTransactionType(tt) {
			t.Errorf("expected %s to be valid", tt)
		}
	}
	if ValidTransactionType("dividend") {
		t.Error("expected 'dividend' to be invalid")
	}
}

func TestTransferSourceInflow(t *testing.T) {
	tests := []struct {
		source TransferSource
		inflow bool
	}{
		{TransferExchange, true},
		{TransferOtherWallet, true},
		{TransferMyWallet, false},
		{TransferAirdrop, false},
		{TransferMining, false},
		{TransferDividendsStaking, false},
	}
	for _, tt := range tests {
		if got := tt.source.IsExternalInflow(); got != tt.inflow {
			t.Errorf("%s: expected inflow=%v, got %v", tt.source, tt.inflow, got)
		}
	}
}

func TestValidTransferSource(t *testing.T) {
	if !ValidTransferSource(TransferFork) {
		t.Error("expected fork to be valid")
	}
	if ValidTransferSource("bank") {
		t.Error("expected 'bank' to be invalid")
	}
}
