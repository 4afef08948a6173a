package model

import "time"

// Score is one play result in the append-only `scores` ledger. Rows are
// never updated or deleted; cumulative totals, ranks and reward tiers are
// all derived from this table by aggregation.
type Score struct {
	ID        uint64    // scores.id
	UserID    uint64    // scores.user_id
	GameID    uint64    // scores.game_id
	Score     int64     // scores.score
	CreatedAt time.Time // scores.created_at
}

// Purchase records that a user bought a game. Append-only.
type Purchase struct {
	ID          uint64    // purchases.id
	UserID      uint64    // purchases.user_id
	GameID      uint64    // purchases.game_id
	PurchasedAt time.Time // purchases.purchased_at
}
