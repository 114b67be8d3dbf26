// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package statistics

import (
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/openp2ptrade/dispute-node/agent"
)

// TradeStatistics is a completed trade as seen by every node on the network.
// Arbitrator holds only the address prefix of the arbitrator used and is empty when unknown.
type TradeStatistics struct {
	Currency      string `json:"currency"`
	Price         int64  `json:"price"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Date          int64  `json:"date"`
	Arbitrator    string `json:"arbitrator,omitempty"`
}

func NewTradeStatistics(
	currency string, price, amount int64, paymentMethod string, date time.Time, arbitrator agent.NodeAddress,
) TradeStatistics {
	return TradeStatistics{
		Currency:      currency,
		Price:         price,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Date:          date.UnixMilli(),
		Arbitrator:    arbitrator.Prefix(),
	}
}

func (t TradeStatistics) Time() time.Time {
	return time.UnixMilli(t.Date)
}

func (t TradeStatistics) HasArbitrator() bool {
	return t.Arbitrator != ""
}

// record has the fields of TradeStatistics without its Hash method so
// hashstructure walks the fields instead of calling back into Hash.
type record TradeStatistics

func (t TradeStatistics) Hash() (uint64, error) {
	return hashstructure.Hash(record(t), hashstructure.FormatV2, nil)
}

// Before reports whether t is ordered before o when records are listed newest first.
// Records with the same date are ordered by their remaining fields.
func (t TradeStatistics) Before(o TradeStatistics) bool {
	if t.Date != o.Date {
		return t.Date > o.Date
	}
	if t.Arbitrator != o.Arbitrator {
		return t.Arbitrator < o.Arbitrator
	}
	if t.Currency != o.Currency {
		return t.Currency < o.Currency
	}
	if t.PaymentMethod != o.PaymentMethod {
		return t.PaymentMethod < o.PaymentMethod
	}
	if t.Price != o.Price {
		return t.Price < o.Price
	}
	return t.Amount < o.Amount
}
