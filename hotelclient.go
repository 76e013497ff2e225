// Package hotelclient assembles the pieces of the hotel booking client:
// configuration, persisted credentials, the session store and authorization
// gate, the API gateway and the notification bus. A UI drives one Client
// from its event goroutine.
package hotelclient

import (
	"context"

	"github.com/lakeside/hotel-client/internal/booking"
	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/internal/gateway"
	"github.com/lakeside/hotel-client/internal/notify"
	"github.com/lakeside/hotel-client/internal/session"
	"github.com/lakeside/hotel-client/internal/store"
	"github.com/lakeside/hotel-client/pkg/config"
)

type Client struct {
	Config        *config.Config
	Session       *session.Store
	Gate          *session.Gate
	API           *gateway.Client
	Notifications *notify.Bus
}

// New builds a client from cfg, restoring any persisted session. A nil cfg
// loads configuration from the environment.
func New(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Load()
	}

	creds := store.NewFileStore(cfg.Credentials.Path)
	sess := session.NewStore(creds)

	bus := notify.NewBus()
	bus.Subscribe(notify.LogNotifier{}.Notify)

	return &Client{
		Config:        cfg,
		Session:       sess,
		Gate:          session.NewGate(sess, cfg.Auth.PendingIntentTTL),
		API:           gateway.New(cfg.API, sess),
		Notifications: bus,
	}
}

// SignIn logs in against the backend and installs the returned token.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	result, err := c.API.Login(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		notify.Error(c.Notifications, err.Error())
		return err
	}
	if err := c.Session.Login(result.Token); err != nil {
		notify.Error(c.Notifications, err.Error())
		return err
	}
	notify.Success(c.Notifications, "Signed in")
	return nil
}

// SignUp registers an account; the backend logs the new user straight in.
func (c *Client) SignUp(ctx context.Context, reg gateway.Registration) error {
	result, err := c.API.Register(ctx, reg)
	if err != nil {
		notify.Error(c.Notifications, err.Error())
		return err
	}
	if err := c.Session.Login(result.Token); err != nil {
		notify.Error(c.Notifications, err.Error())
		return err
	}
	notify.Success(c.Notifications, "Account created")
	return nil
}

// SignOut clears the session and persisted credentials. Safe to call when
// already signed out.
func (c *Client) SignOut() {
	c.Session.Logout()
	notify.Info(c.Notifications, "Signed out")
}

// NewCheckout opens a booking workflow for room, prefilled with the
// signed-in user's email.
func (c *Client) NewCheckout(room domain.Room) *booking.Workflow {
	return booking.NewWorkflow(room, c.Session.Email(), c.API, c.Notifications)
}
