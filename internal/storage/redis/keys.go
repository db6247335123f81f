package redis

import "fmt"

// Key prefix for all game data
const keyPrefix = "whimword"

// Key names mirror the original client's store layout: one entry per
// concern, username and aiProvider stored as raw strings.

func currentWordKey() string {
	return fmt.Sprintf("%s:currentWord", keyPrefix)
}

func submissionsKey() string {
	return fmt.Sprintf("%s:submissions", keyPrefix)
}

func archiveKey() string {
	return fmt.Sprintf("%s:archive", keyPrefix)
}

func usernameKey() string {
	return fmt.Sprintf("%s:username", keyPrefix)
}

func providerKey() string {
	return fmt.Sprintf("%s:aiProvider", keyPrefix)
}

func apiKeysKey() string {
	return fmt.Sprintf("%s:apiKeys", keyPrefix)
}
