// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Queue names. One durable queue per event kind, declared idempotently
// by both publisher and consumer.
const (
	ScoreRecordedQueue     = "score.recorded"
	PurchaseCompletedQueue = "purchase.completed"
	RolePromotedQueue      = "role.promoted"
)

// ScoreRecordedEvent is published after each play result is appended to
// the score ledger. Downstream consumers can log or feed analytics
// without touching the primary database.
type ScoreRecordedEvent struct {
	ScoreID    uint64 `json:"score_id"`
	UserID     uint64 `json:"user_id"`
	UserEmail  string `json:"user_email"`
	GameID     uint64 `json:"game_id"`
	GameName   string `json:"game_name"`
	Score      int64  `json:"score"`
	RecordedAt string `json:"recorded_at"`
}

// PurchaseCompletedEvent is published after a purchase row is appended.
type PurchaseCompletedEvent struct {
	PurchaseID  uint64 `json:"purchase_id"`
	UserID      uint64 `json:"user_id"`
	UserEmail   string `json:"user_email"`
	GameID      uint64 `json:"game_id"`
	GameName    string `json:"game_name"`
	Price       string `json:"price"`
	PurchasedAt string `json:"purchased_at"`
}

// RolePromotedEvent is the audit record for an explicit role promotion
// (USER to DEVELOPER on first upload, USER to ADMIN via the approved
// catalog-add path). Promotions widen trust, so each one is published
// even though the database update already happened.
type RolePromotedEvent struct {
	UserID     uint64 `json:"user_id"`
	UserEmail  string `json:"user_email"`
	FromRole   string `json:"from_role"`
	ToRole     string `json:"to_role"`
	Reason     string `json:"reason"`
	PromotedAt string `json:"promoted_at"`
}
