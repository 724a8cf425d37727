package strava

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/session"
	"github.com/2beens/underthebar/internal/telemetry/tracing"
	"github.com/2beens/underthebar/pkg"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const ScopeActivityRead = "activity:read"

// ErrConfigMissing is returned when the strava client id or secret are not set.
var ErrConfigMissing = errors.New("strava api details missing, add them to the .env file")

// TokenManager produces strava access tokens. Without a stored refresh token it
// runs the authorization code flow through the browser and a local callback
// listener, otherwise it refreshes straight away.
type TokenManager struct {
	store        *session.Store
	credentials  func() config.StravaCredentials
	authURL      string
	tokenURL     string
	redirectURL  string
	callbackAddr string
	httpClient   *http.Client
	openBrowser  func(url string) error

	mu          sync.Mutex
	tokenSource oauth2.TokenSource
	sourceCreds config.StravaCredentials
}

type TokenManagerParams struct {
	Store        *session.Store
	Credentials  func() config.StravaCredentials
	AuthURL      string
	TokenURL     string
	RedirectURL  string
	CallbackAddr string
	HTTPClient   *http.Client
	OpenBrowser  func(url string) error
}

func NewTokenManager(params TokenManagerParams) *TokenManager {
	credentials := params.Credentials
	if credentials == nil {
		credentials = config.StravaCredentialsFromEnv
	}
	openBrowser := params.OpenBrowser
	if openBrowser == nil {
		openBrowser = browser.OpenURL
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &TokenManager{
		store:        params.Store,
		credentials:  credentials,
		authURL:      params.AuthURL,
		tokenURL:     params.TokenURL,
		redirectURL:  params.RedirectURL,
		callbackAddr: params.CallbackAddr,
		httpClient:   httpClient,
		openBrowser:  openBrowser,
	}
}

func (m *TokenManager) oauthConfig(creds config.StravaCredentials, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.authURL,
			TokenURL:  m.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: redirectURL,
		Scopes:      []string{ScopeActivityRead},
	}
}

func (m *TokenManager) oauthCtx(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
}

// Token returns a valid access token. Missing credentials fail with
// ErrConfigMissing before any network call.
func (m *TokenManager) Token(ctx context.Context) (token *oauth2.Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.tokenManager.token")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	creds := m.credentials()
	if creds.Missing() {
		log.Warnln("strava: client id / secret missing, add them to the .env file")
		return nil, ErrConfigMissing
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokenSource != nil && m.sourceCreds == creds {
		return m.tokenSource.Token()
	}

	refreshToken, err := m.store.StravaRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("read strava refresh token: %w", err)
	}

	var ts oauth2.TokenSource
	if refreshToken == "" {
		ts, err = m.authorize(ctx, creds)
	} else {
		ts, err = m.refresh(ctx, creds, refreshToken)
	}
	if err != nil {
		return nil, err
	}

	token, err = ts.Token()
	if err != nil {
		return nil, fmt.Errorf("get strava token: %w", err)
	}

	m.tokenSource = ts
	m.sourceCreds = creds
	return token, nil
}

// Reset drops the cached token source, so the next Token call
// goes through the session file again.
func (m *TokenManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenSource = nil
}

func (m *TokenManager) authorize(ctx context.Context, creds config.StravaCredentials) (oauth2.TokenSource, error) {
	state, err := pkg.GenerateRandomString(24)
	if err != nil {
		return nil, fmt.Errorf("generate oauth state: %w", err)
	}

	pending, err := ListenForCallback(m.callbackAddr, DefaultCallbackPath, state, m.store)
	if err != nil {
		return nil, err
	}
	defer pending.Close()

	redirectURL := m.redirectURL
	if redirectURL == "" {
		redirectURL = pending.URL()
	}

	conf := m.oauthConfig(creds, redirectURL)
	authURL := conf.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto"))

	log.Printf("strava: authorize the app at: %s", authURL)
	if err := m.openBrowser(authURL); err != nil {
		log.Errorf("strava: open browser: %s", err)
	}
	log.Println("strava: waiting for web browser response ...")

	code, err := pending.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for strava authorization code: %w", err)
	}

	token, err := conf.Exchange(m.oauthCtx(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchange strava code for token: %w", err)
	}

	if err := m.store.SetString(session.KeyStravaTokenRefresh, token.RefreshToken); err != nil {
		return nil, fmt.Errorf("persist strava refresh token: %w", err)
	}

	return m.persisting(conf.TokenSource(m.oauthCtx(context.WithoutCancel(ctx)), token), token.RefreshToken), nil
}

func (m *TokenManager) refresh(ctx context.Context, creds config.StravaCredentials, refreshToken string) (oauth2.TokenSource, error) {
	conf := m.oauthConfig(creds, m.redirectURL)
	ts := conf.TokenSource(m.oauthCtx(context.WithoutCancel(ctx)), &oauth2.Token{RefreshToken: refreshToken})
	return m.persisting(ts, refreshToken), nil
}

func (m *TokenManager) persisting(ts oauth2.TokenSource, refreshToken string) oauth2.TokenSource {
	return &persistingTokenSource{
		source:       ts,
		store:        m.store,
		refreshToken: refreshToken,
	}
}

// persistingTokenSource writes a rotated refresh token back into the session.
type persistingTokenSource struct {
	source       oauth2.TokenSource
	store        *session.Store
	mu           sync.Mutex
	refreshToken string
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if token.RefreshToken != "" && token.RefreshToken != p.refreshToken {
		if err := p.store.SetString(session.KeyStravaTokenRefresh, token.RefreshToken); err != nil {
			log.Errorf("strava: persist rotated refresh token: %s", err)
		} else {
			log.Debugln("strava: rotated refresh token persisted")
			p.refreshToken = token.RefreshToken
		}
	}

	return token, nil
}
