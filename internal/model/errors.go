package model

import "errors"

// Common errors used across the application
var (
	// Word errors
	ErrWordNotFound  = errors.New("no current word")
	ErrNoCurrentWord = errors.New("no word is current today")
	ErrEmptyWord     = errors.New("word must not be empty")

	// Rollover errors
	ErrRolloverInProgress = errors.New("a rollover is already in progress")
	ErrNoSubmissions      = errors.New("no submissions to summarize")

	// Store errors
	ErrUsernameNotFound = errors.New("username not persisted")
	ErrSettingsNotFound = errors.New("settings not persisted")

	// Settings errors
	ErrUnknownProvider = errors.New("unknown AI provider")
)
