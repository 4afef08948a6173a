package model

import "time"

// Game represents a catalog entry in the `games` table. Games enter the
// catalog either through an admin add (approved immediately) or through a
// user upload (unapproved until reviewed).
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name.
//  Description – free-text description.
//  CategoryID  – owning category (categories.id).
//  Rules       – how-to-play text shown before a session.
//  Price       – decimal price as a string, "0.00" for free games.
//  Image       – image path or URL used by the storefront.
//  HostedURL   – where the playable build is served from.
//  IsActive    – soft-delete flag; inactive games are hidden from the store.
//  UploadedBy  – user who uploaded the game (users.id), zero for seed data.
//  Approved    – whether the upload passed review.
type Game struct {
	ID          uint64    // games.id
	Name        string    // games.name
	Description string    // games.description
	CategoryID  uint64    // games.category_id
	Rules       string    // games.rules
	Price       string    // games.price
	Image       string    // games.image
	HostedURL   string    // games.hosted_url
	IsActive    bool      // games.is_active
	UploadedBy  uint64    // games.uploaded_by
	Approved    bool      // games.approved
	CreatedAt   time.Time // games.created_at
	UpdatedAt   time.Time // games.updated_at
}

// Category is a row of the `categories` table. Categories are never
// deleted, only deactivated, so games keep a valid owning reference.
type Category struct {
	ID       uint64 // categories.id
	Name     string // categories.name
	IsActive bool   // categories.is_active
}
