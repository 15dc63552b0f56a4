package flow

import (
	"time"

	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/cart"
	"github.com/pagimos/discord-bot1/pkg/config"
	"github.com/pagimos/discord-bot1/pkg/market"
)

type transitionKey struct {
	State State
	Kind  EventKind
}

type transitionFunc func(*Session, InteractionEvent) (RenderRequest, error)

// Engine drives every selection flow. One instance serves all users; the
// per-user state lives in the Session and the cart.Store.
type Engine struct {
	store    *cart.Store
	cfg      config.Config
	log      *zap.Logger
	catalogs map[ShapeKind]*market.Catalog
	table    map[transitionKey]transitionFunc
	now      func() time.Time
}

func NewEngine(store *cart.Store, cfg config.Config, log *zap.Logger) *Engine {
	e := &Engine{
		store: store,
		cfg:   cfg,
		log:   log,
		catalogs: map[ShapeKind]*market.Catalog{
			ShapeDropdown: market.BlackMarket(),
			ShapeToggle:   market.GhostShop(),
			ShapeCountry:  market.WorldMarket(),
		},
		now: time.Now,
	}

	e.table = map[transitionKey]transitionFunc{
		{StateStart, EventSelectMenu}:          e.onTopLevelSelect,
		{StateStart, EventButton}:              e.onBrowseButton,
		{StateCategoryChosen, EventSelectMenu}: e.onItemSelect,
		{StateCategoryChosen, EventButton}:     e.onBrowseButton,
		{StateItemsChosen, EventModalSubmit}:   e.onQuantitySubmit,
		{StateCartUpdated, EventButton}:        e.onBrowseButton,
		{StateCartReview, EventButton}:         e.onReviewButton,
	}
	return e
}

// Start opens a fresh flow for the user and returns the first view. The
// toggle shop has a single implicit category, so it skips straight to the
// item board.
func (e *Engine) Start(userID string, shape ShapeKind) (*Session, RenderRequest) {
	s := newSession(userID, shape, e.now())
	if shape == ShapeToggle {
		s.State = StateCategoryChosen
		s.Category = market.GhostShopCategory
	}

	e.log.Info("flow started",
		zap.String("user_id", userID),
		zap.String("session_id", s.ID),
		zap.String("shape", shape.String()))

	if shape == ShapeToggle {
		return s, e.renderToggleBoard(s)
	}
	return s, e.renderTopLevel(s)
}

// StartReview opens a flow directly on the cart review view (the /cart
// command). An empty cart is rejected the same way confirm rejects it.
func (e *Engine) StartReview(userID string) (*Session, RenderRequest, error) {
	if e.store.IsEmpty(userID) {
		return nil, e.notice(e.cfg.Messages.EmptyCart), ErrEmptyCart
	}
	s := newSession(userID, ShapeDropdown, e.now())
	s.State = StateCartReview
	return s, e.renderReview(userID), nil
}

// Handle advances the session with one interaction event. The authorization
// check runs before anything else on every transition; a mismatched actor
// never mutates state. The returned error, when not nil, is one of the
// package's rejection errors and the render carries the matching notice.
func (e *Engine) Handle(s *Session, ev InteractionEvent) (RenderRequest, error) {
	if ev.ActorID != s.UserID {
		e.log.Warn("interaction from non-owner",
			zap.String("session_user", s.UserID),
			zap.String("actor", ev.ActorID))
		return e.notice(e.cfg.Messages.NotYourCart), ErrNotYourCart
	}

	now := e.now()
	if s.State == StateConfirmed || s.Expired(now, e.cfg.SessionTTL) {
		return e.notice(e.cfg.Messages.SessionExpired), ErrSessionExpired
	}

	fn, ok := e.table[transitionKey{s.State, ev.Kind}]
	if !ok {
		e.log.Warn("no transition",
			zap.String("state", s.State.String()),
			zap.String("kind", ev.Kind.String()),
			zap.String("action", ev.Action))
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	s.Touch(now)
	return fn(s, ev)
}

func (e *Engine) catalog(shape ShapeKind) *market.Catalog {
	return e.catalogs[shape]
}

// notice is a private, state-preserving message to the actor.
func (e *Engine) notice(msg string) RenderRequest {
	return RenderRequest{Notice: msg, Private: true}
}
