// Package demo runs the scripted item walkthrough against a Store: insert two
// items, move the first one to another site, fetch the second one back and
// delete it. Every step prints a localized progress line.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/itemdata/pkg/i18n"
	"github.com/dmitrymomot/itemdata/pkg/item"
	"github.com/dmitrymomot/itemdata/pkg/logger"
)

// UpdatedSite is the site the first item is moved to.
const UpdatedSite = "MLC"

// UpdateFailedMessage is printed when the update step fails. It is the same
// in every console language.
const UpdateFailedMessage = "Unable to update item"

// Store is the set of item operations the script drives.
type Store interface {
	Insert(ctx context.Context, it item.Item) (item.Item, error)
	GetByID(ctx context.Context, id string) (item.Item, error)
	UpdateByID(ctx context.Context, id string, it item.Item) (item.Item, error)
	DeleteByID(ctx context.Context, id string) error
}

// Option configures a Script.
type Option func(*Script)

// WithOutput sets where console lines go. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Script) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLanguage selects the console language. Defaults to the translator's default.
func WithLanguage(lang string) Option {
	return func(s *Script) { s.lang = lang }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Script) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSamples replaces the embedded sample items. Only the first two are used.
func WithSamples(items []item.Item) Option {
	return func(s *Script) { s.samples = items }
}

// Script is one walkthrough over a Store.
type Script struct {
	store   Store
	tr      *i18n.Translator
	out     io.Writer
	lang    string
	logger  *slog.Logger
	samples []item.Item
}

// NewScript prepares a walkthrough. Without WithSamples it uses the embedded
// sample items.
func NewScript(store Store, tr *i18n.Translator, opts ...Option) (*Script, error) {
	s := &Script{
		store:  store,
		tr:     tr,
		out:    os.Stdout,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.samples == nil {
		items, err := Samples()
		if err != nil {
			return nil, err
		}
		s.samples = items
	}
	if len(s.samples) < 2 {
		return nil, fmt.Errorf("%w: need 2 items, got %d", ErrInvalidSamples, len(s.samples))
	}
	s.lang = tr.Match(s.lang)
	s.logger = s.logger.With(logger.Component("demo"))
	return s, nil
}

// Run executes the walkthrough.
//
// A failed insert or update is reported and the run goes on with the
// in-memory item, as there is still something to show. Fetch and delete
// failures stop the run: the last steps depend on them.
func (s *Script) Run(ctx context.Context) error {
	first, second := s.samples[0], s.samples[1]

	s.say("insert.first")
	first = s.insert(ctx, first)

	s.say("insert.second")
	second = s.insert(ctx, second)

	s.say("update.start", UpdatedSite)
	first.SiteID = UpdatedSite
	if _, err := s.store.UpdateByID(ctx, first.ID, first); err != nil {
		s.logger.WarnContext(ctx, "update failed", logger.ItemID(first.ID), logger.Error(err))
		fmt.Fprintln(s.out, UpdateFailedMessage)
	}
	s.say("update.done", first)

	s.say("get.start")
	fetched, err := s.store.GetByID(ctx, second.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "get failed", logger.ItemID(second.ID), logger.Error(err))
		return errors.Join(ErrFetchFailed, err)
	}
	s.say("get.done", fetched)

	s.say("delete.start")
	if err := s.store.DeleteByID(ctx, fetched.ID); err != nil {
		s.logger.ErrorContext(ctx, "delete failed", logger.ItemID(fetched.ID), logger.Error(err))
		return errors.Join(ErrDeleteFailed, err)
	}
	s.say("delete.done")

	return nil
}

func (s *Script) insert(ctx context.Context, it item.Item) item.Item {
	stored, err := s.store.Insert(ctx, it)
	if err != nil {
		s.logger.WarnContext(ctx, "insert failed", logger.ItemID(it.ID), logger.Error(err))
		s.say("insert.failed", it.ID)
	}
	s.say("insert.done", stored)
	return stored
}

func (s *Script) say(key string, args ...any) {
	fmt.Fprintln(s.out, s.tr.T(s.lang, key, args...))
}
