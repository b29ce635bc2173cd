package header

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/paologalligit/moffi-booker/entities"
	"github.com/paologalligit/moffi-booker/persistence"
)

// CookiesManager tracks the session cookies and bearer token, mirroring every
// change into the durable store. Cookie values are opaque strings: each
// Set-Cookie header a response carries is unioned into the set, duplicates
// collapsed, nothing ever expires. The mutex keeps the union-and-save atomic;
// only one session is tracked system-wide.
type CookiesManager struct {
	store   persistence.SessionStore
	mu      sync.Mutex
	token   string
	cookies mapset.Set[string]
}

// New loads the persisted session, starting empty when there is none yet.
func New(ctx context.Context, store persistence.SessionStore) (*CookiesManager, error) {
	session, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	cookies := mapset.NewSet[string]()
	for _, cookie := range session.Cookies {
		cookies.Add(cookie)
	}
	return &CookiesManager{
		store:   store,
		token:   session.Token,
		cookies: cookies,
	}, nil
}

// Apply attaches every stored cookie to the outgoing request, one Cookie
// header per value.
func (c *CookiesManager) Apply(req *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cookie := range c.sortedCookiesLocked() {
		req.Header.Add("Cookie", cookie)
	}
}

// Absorb unions the response's Set-Cookie values into the stored set and
// persists immediately when anything new arrived.
func (c *CookiesManager) Absorb(ctx context.Context, resp *http.Response) error {
	received := resp.Header.Values("Set-Cookie")
	if len(received) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := false
	for _, cookie := range received {
		if c.cookies.Add(cookie) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return c.persistLocked(ctx)
}

// SetToken stores a fresh bearer token and persists the session.
func (c *CookiesManager) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	return c.persistLocked(ctx)
}

func (c *CookiesManager) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Session returns a snapshot of the tracked session.
func (c *CookiesManager) Session() entities.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entities.Session{
		Token:   c.token,
		Cookies: c.sortedCookiesLocked(),
	}
}

func (c *CookiesManager) persistLocked(ctx context.Context) error {
	session := entities.Session{
		Token:   c.token,
		Cookies: c.sortedCookiesLocked(),
	}
	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (c *CookiesManager) sortedCookiesLocked() []string {
	cookies := c.cookies.ToSlice()
	sort.Strings(cookies)
	return cookies
}
