package model

// DefaultGroupSlug is used when a group is created without a slug.
const DefaultGroupSlug = "default-group"

// Group is read-only over the API. Rows are seeded through the repository
// layer directly.
type Group struct {
	Id          int64  `db:"id,omitempty" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}
