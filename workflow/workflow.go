package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/paologalligit/moffi-booker/catalog"
	"github.com/paologalligit/moffi-booker/client"
	"github.com/paologalligit/moffi-booker/entities"
	"github.com/paologalligit/moffi-booker/header"
	"github.com/paologalligit/moffi-booker/order"
	"github.com/paologalligit/moffi-booker/selection"
)

// OutcomeKind classifies what came back from an order submission.
type OutcomeKind int

const (
	// OutcomeAccepted: the reservation was accepted, Body is the success body.
	OutcomeAccepted OutcomeKind = iota
	// OutcomeRejected: the server refused the order for a business reason;
	// Body carries its error content verbatim for the caller to render.
	OutcomeRejected
	// OutcomeNoAnswer: no usable answer was obtained (transport-level
	// silence), distinct from a rejection.
	OutcomeNoAnswer
)

type Outcome struct {
	Kind OutcomeKind
	Body json.RawMessage
}

type Options struct {
	Client       client.BookingAPI
	Cookies      *header.CookiesManager
	Workers      int
	RequestDelay int
	ShowProgress bool
	Logger       *zap.Logger
}

// Booker composes the whole booking session: authenticate, resolve the
// catalog, accept a selection, build and submit the order. It never retries
// anything; sign-in and submission failures go straight back to the caller.
type Booker struct {
	opts      *Options
	token     string
	catalog   []entities.Building
	selection *selection.Selection
}

func New(opts *Options) *Booker {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Booker{opts: opts}
}

// SignIn authenticates and keeps the bearer token for the rest of the
// session, persisting it alongside the cookies.
func (b *Booker) SignIn(ctx context.Context, creds entities.Credentials) error {
	if !creds.IsNotBlank() {
		return &client.AuthError{Reason: "email and password are required"}
	}
	token, err := b.opts.Client.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	b.token = token
	if b.opts.Cookies != nil {
		if err := b.opts.Cookies.SetToken(ctx, token); err != nil {
			return err
		}
	}
	b.opts.Logger.Info("signed in", zap.String("email", creds.Email))
	return nil
}

// ResolveCatalog fetches the full building tree and resets the selection to
// point into it.
func (b *Booker) ResolveCatalog(ctx context.Context) ([]entities.Building, error) {
	if b.token == "" {
		return nil, &client.AuthError{Reason: "not signed in"}
	}
	resolver := catalog.NewResolver(b.opts.Workers, &catalog.ResolverWorkingMaterial{
		Client:       b.opts.Client,
		RequestDelay: b.opts.RequestDelay,
		ShowProgress: b.opts.ShowProgress,
		Logger:       b.opts.Logger,
	})
	buildings, err := resolver.Resolve(ctx, b.token)
	if err != nil {
		return nil, err
	}
	b.UseCatalog(buildings)
	return buildings, nil
}

// UseCatalog installs an already-resolved catalog, e.g. one loaded from a
// snapshot file, and resets the selection.
func (b *Booker) UseCatalog(buildings []entities.Building) {
	b.catalog = buildings
	b.selection = selection.New(buildings)
}

func (b *Booker) Catalog() []entities.Building { return b.catalog }

// Selection returns the current selection state; nil until a catalog is in
// place.
func (b *Booker) Selection() *selection.Selection { return b.selection }

// Reserve builds the order for the current selection and submits it. The
// returned outcome distinguishes acceptance, business rejection and
// transport-level silence; the error is non-nil only for the last.
func (b *Booker) Reserve(ctx context.Context, dateRange entities.DateRange) (Outcome, error) {
	if b.token == "" {
		return Outcome{Kind: OutcomeNoAnswer}, &client.AuthError{Reason: "not signed in"}
	}
	if b.selection == nil || !b.selection.CanOrder() {
		return Outcome{Kind: OutcomeNoAnswer}, fmt.Errorf("no workspace and seat selected")
	}
	ord := order.Build(b.selection.Workspace(), b.selection.Seat(), dateRange)
	result, err := b.opts.Client.SubmitOrder(ctx, b.token, ord)
	if err != nil {
		return Outcome{Kind: OutcomeNoAnswer}, err
	}
	if result == nil {
		return Outcome{Kind: OutcomeNoAnswer}, nil
	}
	if result.Accepted() {
		b.opts.Logger.Info("reservation accepted", zap.Int("status", result.StatusCode))
		return Outcome{Kind: OutcomeAccepted, Body: result.Body}, nil
	}
	b.opts.Logger.Warn("reservation rejected",
		zap.Int("status", result.StatusCode), zap.ByteString("body", result.Body))
	return Outcome{Kind: OutcomeRejected, Body: result.Body}, nil
}
