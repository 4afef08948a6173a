//go:build integration

// Exercises the reward ledger against a real MySQL loaded with
// scripts/schema.sql. Run with:
//
//	MYSQL_TEST_DSN='user:pass@tcp(localhost:3306)/gamehub_test?parseTime=true&loc=UTC' \
//	go test -tags integration ./internal/repository/
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/zenova/gamehub-backend/internal/reward"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertTestUser(t *testing.T, db *sql.DB) uint64 {
	t.Helper()
	email := fmt.Sprintf("reward-%d@example.com", time.Now().UnixNano())
	res, err := db.Exec(
		"INSERT INTO users (email, password_hash, name) VALUES (?, 'x', 'rewardtest')", email)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	id, _ := res.LastInsertId()
	t.Cleanup(func() {
		db.Exec("DELETE FROM reward_entries WHERE user_id=?", id)
		db.Exec("DELETE FROM users WHERE id=?", id)
	})
	return uint64(id)
}

func TestRewardClaimStateMachine(t *testing.T) {
	db := openTestDB(t)
	repo := NewRewardRepo(db)
	userID := insertTestUser(t, db)
	ctx := context.Background()

	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) // Monday
	wednesday := weekStart.AddDate(0, 0, 2).Add(12 * time.Hour)

	if _, err := repo.Claim(ctx, userID, weekStart, 1, wednesday); err != ErrRewardNotFound {
		t.Fatalf("claim before generation: err = %v, want ErrRewardNotFound", err)
	}

	entries, err := repo.GenerateWeek(ctx, userID, weekStart, 50)
	if err != nil {
		t.Fatalf("GenerateWeek: %v", err)
	}
	if len(entries) != reward.DaysPerWeek {
		t.Fatalf("generated %d entries, want %d", len(entries), reward.DaysPerWeek)
	}

	// Generating again must not error or duplicate.
	again, err := repo.GenerateWeek(ctx, userID, weekStart, 50)
	if err != nil {
		t.Fatalf("repeat GenerateWeek: %v", err)
	}
	if len(again) != reward.DaysPerWeek {
		t.Fatalf("repeat generation produced %d entries, want %d", len(again), reward.DaysPerWeek)
	}

	if _, err := repo.Claim(ctx, userID, weekStart, 5, wednesday); err != ErrRewardNotYetClaimable {
		t.Fatalf("claim of a future day: err = %v, want ErrRewardNotYetClaimable", err)
	}

	e, err := repo.Claim(ctx, userID, weekStart, 2, wednesday)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !e.Claimed || e.Points != 50 {
		t.Fatalf("claimed entry = %+v", e)
	}

	if _, err := repo.Claim(ctx, userID, weekStart, 2, wednesday); err != ErrRewardAlreadyClaimed {
		t.Fatalf("second claim: err = %v, want ErrRewardAlreadyClaimed", err)
	}
}

// Concurrent claims of the same day race on the guarded UPDATE; exactly
// one wins.
func TestRewardClaimConcurrentDoubleClaim(t *testing.T) {
	db := openTestDB(t)
	repo := NewRewardRepo(db)
	userID := insertTestUser(t, db)
	ctx := context.Background()

	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	today := weekStart.Add(6 * time.Hour)

	if _, err := repo.GenerateWeek(ctx, userID, weekStart, 10); err != nil {
		t.Fatalf("GenerateWeek: %v", err)
	}

	const claimers = 8
	errs := make(chan error, claimers)
	for i := 0; i < claimers; i++ {
		go func() {
			_, err := repo.Claim(ctx, userID, weekStart, 1, today)
			errs <- err
		}()
	}

	var wins int
	for i := 0; i < claimers; i++ {
		switch err := <-errs; err {
		case nil:
			wins++
		case ErrRewardAlreadyClaimed:
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("%d claims won the race, want exactly 1", wins)
	}
}
