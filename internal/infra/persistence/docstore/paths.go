// Package docstore implements the domain repositories on top of the
// DocumentStore collaborator. All slash-path composition lives here so the
// use-case layer never sees a raw path string.
package docstore

import "strings"

const (
	usersRoot = "users"
	walksRoot = "walks"
)

func join(parts ...string) string {
	return strings.Join(parts, "/")
}

func profilePath(userID string) string {
	return join(usersRoot, userID, "profile")
}

func profileFieldPath(userID, field string) string {
	return join(profilePath(userID), field)
}

func profileWalkFieldPath(userID, field string) string {
	return join(profilePath(userID), "walk", field)
}

func addressesPath(userID string) string {
	return join(profilePath(userID), "addresses")
}

func addressPath(userID, key string) string {
	return join(addressesPath(userID), key)
}

func notificationsPath(userID string) string {
	return join(usersRoot, userID, "notifications")
}

func notificationPath(userID, key string) string {
	return join(notificationsPath(userID), key)
}

func feedbackPath(userID string) string {
	return join(usersRoot, userID, "feedback")
}

func dogsPath(userID string) string {
	return join(usersRoot, userID, "dogs")
}

func dogPath(userID, key string) string {
	return join(dogsPath(userID), key)
}

func userPath(userID string) string {
	return join(usersRoot, userID)
}

func userWalkRefsPath(userID string) string {
	return join(usersRoot, userID, "walks")
}

func walkPath(walkID string) string {
	return join(walksRoot, walkID)
}

func walkFieldPath(walkID, field string) string {
	return join(walkPath(walkID), field)
}
