// Package repository implements plain-SQL persistence for the platform.
// Sentinel errors defined here let handlers map storage outcomes onto
// HTTP codes without string matching.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// taken. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a referenced user row is absent.
var ErrUserNotFound = errors.New("user not found")

// ErrGameNotFound is returned when a referenced game row is absent.
var ErrGameNotFound = errors.New("game not found")

// ErrCategoryNotFound is returned when a referenced category is absent.
var ErrCategoryNotFound = errors.New("category not found")

// Reward claim failures. A claim can fail because the week has no entry
// for the requested day, because the day has not arrived yet, or because
// the entry was already claimed. The handler maps these to 404, 409 and
// 409 respectively.
var (
	ErrRewardNotFound        = errors.New("reward not found")
	ErrRewardNotYetClaimable = errors.New("reward is not claimable yet")
	ErrRewardAlreadyClaimed  = errors.New("reward already claimed")
)
