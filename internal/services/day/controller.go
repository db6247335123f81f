package day

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/whimword/whimword/internal/ai"
	"github.com/whimword/whimword/internal/dependencies/clock"
	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/services/identity"
	"github.com/whimword/whimword/internal/services/settings"
	"github.com/whimword/whimword/internal/storage"
)

// Fallback values used when an AI call fails. The operation still
// terminates in a valid state; the failure is reduced to a notice.
const (
	// FallbackWord replaces a word the AI failed to generate
	FallbackWord = "Glimmerfang"
	// noSubmissionsArchiveNote is archived when a day ends with no
	// submissions
	noSubmissionsArchiveNote = "No definitions were submitted for this word."
)

var fallbackSummary = []string{"AI summarization failed. Please try again later."}

// User-facing notices for degraded operations
const (
	noticeMissingKey    = "API key is not set. Please configure it in the admin settings."
	noticeWordFailed    = "AI word generation failed; using a fallback word."
	noticeImageFailed   = "AI image generation failed; continuing without an image."
	noticeSummaryFailed = "AI summarization failed. Please try again later."
)

// GatewayFactory builds an AI gateway from the current provider
// configuration. Production wiring passes ai.New; tests substitute a
// mock.
type GatewayFactory func(model.Settings) (ai.Gateway, error)

// Controller is the day-lifecycle state machine. It owns the current
// word, the day's submissions, and the archive, and orchestrates the
// transition between days. All durable state lives in storage; every
// mutation is immediately re-persisted. Readers only ever see
// snapshots.
type Controller struct {
	storage  storage.Storage
	gateway  GatewayFactory
	settings *settings.Service
	identity *identity.Service
	clock    clock.Clock
	logger   *slog.Logger

	mu sync.Mutex
	// rolling is the single-flight latch for rollover-triggering
	// operations; a concurrent invocation fails fast rather than
	// racing the in-flight transition
	rolling            bool
	summarizing        bool
	regenerating       bool
	previousDayResults *model.ArchivedWord
}

// NewController creates the day state machine
func NewController(
	storage storage.Storage,
	gateway GatewayFactory,
	settingsService *settings.Service,
	identityService *identity.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		gateway:  gateway,
		settings: settingsService,
		identity: identityService,
		clock:    clock,
		logger:   logger,
	}
}

// RolloverResult reports the outcome of a day transition. Notice
// carries the one-line user-facing alert for any degraded AI call;
// it is empty when everything succeeded.
type RolloverResult struct {
	Word     *model.DailyWord
	Archived *model.ArchivedWord
	Notice   string
}

// today returns the current calendar date string (client-local, not
// timezone-normalized)
func (c *Controller) today() string {
	return c.clock.Now().Format(model.DateFormat)
}

// Initialize loads persisted state on startup. A stored word dated
// today is resumed along with its submissions; anything else (no word,
// a stale word, or corrupt storage) falls through to RollDay. Parse
// failures never propagate: the store reports them as absence.
func (c *Controller) Initialize(ctx context.Context) error {
	// Ensure a session identity exists, generating one if absent
	if _, err := c.identity.Current(ctx); err != nil {
		return err
	}

	current, err := c.storage.GetCurrentWord(ctx)
	if err == nil && current.Date == c.today() {
		c.logger.Info("resuming stored day",
			slog.String("word", current.Word),
			slog.String("date", current.Date),
		)
		return nil
	}
	if err != nil && !errors.Is(err, model.ErrWordNotFound) {
		// Storage failures degrade to "no data found"
		c.logger.Warn("could not read stored word, starting fresh",
			slog.String("error", err.Error()),
		)
	}

	result, err := c.RollDay(ctx)
	if err != nil {
		return err
	}
	if result.Notice != "" {
		c.logger.Warn("day rollover degraded", slog.String("notice", result.Notice))
	}
	return nil
}

// Snapshot returns a read-only view of the day state. Submissions keep
// their insertion order; ranking by likes happens at render time.
func (c *Controller) Snapshot(ctx context.Context) (*model.DaySnapshot, error) {
	current, err := c.storage.GetCurrentWord(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrWordNotFound) {
			return nil, err
		}
		current = nil
	}

	subs, err := c.storage.GetSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &model.DaySnapshot{
		Phase:       model.PhaseNoWord,
		Word:        current,
		Submissions: subs,
	}
	if current != nil {
		snapshot.Phase = model.PhaseHasWord
	}

	c.mu.Lock()
	snapshot.PreviousDayResults = c.previousDayResults
	snapshot.Summarizing = c.summarizing
	snapshot.RegeneratingImage = c.regenerating
	c.mu.Unlock()

	return snapshot, nil
}

// RollDay performs the central day transition: archive the outgoing
// word (summarizing its submissions when there are any), clear the
// submission list, and generate a new word and image for today. AI
// failures degrade to fallback values and a notice; only storage
// failures and a concurrent rollover produce an error.
func (c *Controller) RollDay(ctx context.Context) (*RolloverResult, error) {
	if !c.beginRollover() {
		return nil, model.ErrRolloverInProgress
	}
	defer c.endRollover()

	return c.rollDay(ctx)
}

// rollDay is RollDay without the single-flight latch; callers must hold
// it
func (c *Controller) rollDay(ctx context.Context) (*RolloverResult, error) {
	result := &RolloverResult{}

	cfg, err := c.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	current := c.loadCurrentWord(ctx)
	subs, err := c.storage.GetSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	// Archive the outgoing day, if there is one
	if current != nil {
		defs := c.summarize(ctx, cfg, current.Word, subs, result)
		archived := &model.ArchivedWord{DailyWord: *current, WinningDefinitions: defs}
		if err := c.prependArchive(ctx, archived); err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.previousDayResults = archived
		c.mu.Unlock()
		result.Archived = archived

		c.logger.Info("day archived",
			slog.String("word", archived.Word),
			slog.String("date", archived.Date),
			slog.Int("submissions", len(subs)),
		)
	}

	// Submissions never outlive their word
	if err := c.storage.SaveSubmissions(ctx, nil); err != nil {
		return nil, err
	}

	// A missing credential blocks word generation entirely; the day
	// ends with no current word
	gw, err := c.gateway(*cfg)
	if err != nil {
		if !errors.Is(err, ai.ErrMissingAPIKey) && !errors.Is(err, model.ErrUnknownProvider) {
			return nil, err
		}
		c.logger.Warn("word generation blocked", slog.String("error", err.Error()))
		if err := c.storage.ClearCurrentWord(ctx); err != nil {
			return nil, err
		}
		result.Notice = noticeMissingKey
		return result, nil
	}

	word, err := gw.GenerateWord(ctx)
	if err != nil {
		c.logger.Error("word generation failed", slog.String("error", err.Error()))
		word = FallbackWord
		result.Notice = noticeWordFailed
	}

	// An image failure keeps the generated word but leaves the image
	// absent; dropping the word too would discard a successful call
	image, err := gw.GenerateImage(ctx, word)
	if err != nil {
		c.logger.Error("image generation failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		image = ""
		if result.Notice == "" {
			result.Notice = noticeImageFailed
		}
	}

	newWord := &model.DailyWord{Word: word, Image: image, Date: c.today()}
	if err := c.storage.SaveCurrentWord(ctx, newWord); err != nil {
		return nil, err
	}
	result.Word = newWord

	c.logger.Info("new day started",
		slog.String("word", newWord.Word),
		slog.String("date", newWord.Date),
		slog.Bool("has_image", newWord.Image != ""),
	)
	return result, nil
}

// TriggerSummarization is the manual early rollover: same transition as
// RollDay, permitted only while at least one submission exists.
func (c *Controller) TriggerSummarization(ctx context.Context) (*RolloverResult, error) {
	if !c.beginRollover() {
		return nil, model.ErrRolloverInProgress
	}
	defer c.endRollover()

	if c.loadCurrentWord(ctx) == nil {
		return nil, model.ErrNoCurrentWord
	}
	subs, err := c.storage.GetSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, model.ErrNoSubmissions
	}

	c.mu.Lock()
	c.summarizing = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.summarizing = false
		c.mu.Unlock()
	}()

	return c.rollDay(ctx)
}

// ManuallySetWord replaces the current word with an admin-chosen one,
// generating only its image. A failed generation leaves the prior state
// untouched and surfaces the error.
func (c *Controller) ManuallySetWord(ctx context.Context, word string) (*model.DailyWord, error) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return nil, model.ErrEmptyWord
	}

	if !c.beginRollover() {
		return nil, model.ErrRolloverInProgress
	}
	defer c.endRollover()

	cfg, err := c.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	gw, err := c.gateway(*cfg)
	if err != nil {
		return nil, err
	}

	image, err := gw.GenerateImage(ctx, trimmed)
	if err != nil {
		c.logger.Error("manual word image generation failed",
			slog.String("word", trimmed),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	newWord := &model.DailyWord{Word: trimmed, Image: image, Date: c.today()}
	if err := c.storage.SaveCurrentWord(ctx, newWord); err != nil {
		return nil, err
	}
	if err := c.storage.SaveSubmissions(ctx, nil); err != nil {
		return nil, err
	}

	c.logger.Info("word set manually", slog.String("word", trimmed))
	return newWord, nil
}

// AddSubmission appends a definition for the current word. Empty text
// is silently ignored (nil, nil): the original treated it as a no-op,
// not an error.
func (c *Controller) AddSubmission(ctx context.Context, text string) (*model.Submission, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	current, err := c.storage.GetCurrentWord(ctx)
	if err != nil {
		return nil, model.ErrNoCurrentWord
	}

	username, err := c.identity.Current(ctx)
	if err != nil {
		return nil, err
	}

	sub := model.Submission{
		ID:       uuid.NewString(),
		Text:     trimmed,
		Username: username,
		Likes:    0,
		WordDate: current.Date,
	}

	subs, err := c.storage.GetSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	subs = append(subs, sub)
	if err := c.storage.SaveSubmissions(ctx, subs); err != nil {
		return nil, err
	}

	c.logger.Info("submission added",
		slog.String("id", sub.ID),
		slog.String("username", sub.Username),
	)
	return &sub, nil
}

// LikeSubmission increments the matching submission's like count by
// exactly one. An unknown id is a no-op.
func (c *Controller) LikeSubmission(ctx context.Context, id string) error {
	subs, err := c.storage.GetSubmissions(ctx)
	if err != nil {
		return err
	}

	for i := range subs {
		if subs[i].ID == id {
			subs[i].Likes++
			return c.storage.SaveSubmissions(ctx, subs)
		}
	}

	c.logger.Debug("like for unknown submission ignored", slog.String("id", id))
	return nil
}

// RegenerateImage replaces only the current word's image. On failure
// the prior image stays in place and the error is surfaced.
func (c *Controller) RegenerateImage(ctx context.Context) (*model.DailyWord, error) {
	current, err := c.storage.GetCurrentWord(ctx)
	if err != nil {
		return nil, model.ErrNoCurrentWord
	}

	cfg, err := c.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	gw, err := c.gateway(*cfg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.regenerating = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.regenerating = false
		c.mu.Unlock()
	}()

	image, err := gw.GenerateImage(ctx, current.Word)
	if err != nil {
		c.logger.Error("image regeneration failed",
			slog.String("word", current.Word),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	current.Image = image
	if err := c.storage.SaveCurrentWord(ctx, current); err != nil {
		return nil, err
	}

	c.logger.Info("image regenerated", slog.String("word", current.Word))
	return current, nil
}

// ClearPreviousDayResults dismisses the one-time results banner
func (c *Controller) ClearPreviousDayResults() {
	c.mu.Lock()
	c.previousDayResults = nil
	c.mu.Unlock()
}

// summarize produces the winning definitions for an outgoing word.
// Zero submissions short-circuit without ever invoking the gateway; AI
// failures degrade to the fixed fallback and set the result notice.
func (c *Controller) summarize(ctx context.Context, cfg *model.Settings, word string, subs []model.Submission, result *RolloverResult) []string {
	if len(subs) == 0 {
		return []string{noSubmissionsArchiveNote}
	}

	gw, err := c.gateway(*cfg)
	if err != nil {
		c.logger.Error("summarization blocked", slog.String("error", err.Error()))
		result.Notice = noticeSummaryFailed
		return fallbackSummary
	}

	defs, err := ai.Summarize(ctx, gw, word, subs)
	if err != nil {
		c.logger.Error("summarization failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		result.Notice = noticeSummaryFailed
		return fallbackSummary
	}
	return defs
}

// loadCurrentWord reads the current word, degrading any failure to
// absence
func (c *Controller) loadCurrentWord(ctx context.Context) *model.DailyWord {
	current, err := c.storage.GetCurrentWord(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrWordNotFound) {
			c.logger.Warn("could not read current word", slog.String("error", err.Error()))
		}
		return nil
	}
	return current
}

// prependArchive adds an entry at the head of the archive (newest
// first) and re-persists the whole list
func (c *Controller) prependArchive(ctx context.Context, entry *model.ArchivedWord) error {
	archive, err := c.storage.GetArchive(ctx)
	if err != nil {
		return err
	}
	archive = append([]model.ArchivedWord{*entry}, archive...)
	return c.storage.SaveArchive(ctx, archive)
}

// Archive returns the full archive, newest first
func (c *Controller) Archive(ctx context.Context) ([]model.ArchivedWord, error) {
	return c.storage.GetArchive(ctx)
}

func (c *Controller) beginRollover() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rolling {
		return false
	}
	c.rolling = true
	return true
}

func (c *Controller) endRollover() {
	c.mu.Lock()
	c.rolling = false
	c.mu.Unlock()
}
