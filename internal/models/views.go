package models

import (
	"fmt"

	"github.com/google/uuid"
)

const ViewDashboard = "/dashboard"

// AffectedViews lists the client views whose cached data a mutation made stale.
type AffectedViews []string

// AccountView is the path of a single account page.
func AccountView(accountID uuid.UUID) string {
	return fmt.Sprintf("/account/%s", accountID)
}

// NewAffectedViews returns the dashboard plus one entry per distinct account.
func NewAffectedViews(accountIDs ...uuid.UUID) AffectedViews {
	views := AffectedViews{ViewDashboard}
	seen := make(map[uuid.UUID]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		views = append(views, AccountView(id))
	}
	return views
}
