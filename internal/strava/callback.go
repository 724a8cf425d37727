package strava

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/underthebar/internal/session"
	"github.com/2beens/underthebar/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultCallbackPath = "/authorization"

	callbackOKMessage     = "It worked! Code returned, you can close the browser window."
	callbackFailedMessage = "Failed. Didn't find code."
)

var (
	ErrNoCode        = errors.New("authorization callback without code")
	ErrStateMismatch = errors.New("authorization callback state mismatch")
)

type callbackResult struct {
	code string
	err  error
}

// PendingCallback is a local listener waiting for the single browser redirect
// that carries the strava authorization code.
type PendingCallback struct {
	listener net.Listener
	server   *http.Server
	path     string
	state    string
	store    *session.Store

	once     sync.Once
	result   chan callbackResult
	served   chan struct{}
	shutOnce sync.Once
}

// ListenForCallback starts the callback listener on addr. The received code
// is persisted in the session store before Wait returns it.
func ListenForCallback(addr, path, state string, store *session.Store) (*PendingCallback, error) {
	if path == "" {
		path = DefaultCallbackPath
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen for strava callback on %s: %w", addr, err)
	}

	p := &PendingCallback{
		listener: listener,
		path:     path,
		state:    state,
		store:    store,
		result:   make(chan callbackResult, 1),
		served:   make(chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc(path, p.handleAuthorization).Methods("GET")

	p.server = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	p.server.SetKeepAlivesEnabled(false)

	go func() {
		defer close(p.served)
		if err := p.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("strava callback server: %s", err)
		}
	}()

	log.Debugf("strava callback: listening on %s%s", listener.Addr(), path)
	return p, nil
}

// URL is the redirect URL matching the actual listening port.
func (p *PendingCallback) URL() string {
	port := ""
	if tcpAddr, ok := p.listener.Addr().(*net.TCPAddr); ok {
		port = fmt.Sprintf(":%d", tcpAddr.Port)
	}
	return "http://localhost" + port + p.path
}

func (p *PendingCallback) handleAuthorization(w http.ResponseWriter, r *http.Request) {
	handled := false
	p.once.Do(func() {
		handled = true

		code := r.URL.Query().Get("code")
		if code == "" {
			pkg.WriteTextResponseOK(w, callbackFailedMessage)
			p.result <- callbackResult{err: ErrNoCode}
			return
		}
		if p.state != "" && r.URL.Query().Get("state") != p.state {
			pkg.WriteResponse(w, pkg.ContentType.Text, "Failed. State mismatch.", http.StatusForbidden)
			p.result <- callbackResult{err: ErrStateMismatch}
			return
		}

		pkg.WriteTextResponseOK(w, callbackOKMessage)

		if p.store != nil {
			if err := p.store.SetString(session.KeyStravaTokenCode, code); err != nil {
				log.Errorf("strava callback: persist code: %s", err)
			} else {
				log.Println("strava callback: code written to session")
			}
		}
		p.result <- callbackResult{code: code}
	})

	if !handled {
		http.Error(w, "authorization already handled", http.StatusGone)
	}
}

// Wait blocks until the callback arrives or ctx is done, then stops the listener.
func (p *PendingCallback) Wait(ctx context.Context) (string, error) {
	defer p.Close()

	select {
	case res := <-p.result:
		return res.code, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the listener. Safe to call more than once.
func (p *PendingCallback) Close() {
	p.shutOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("strava callback server shutdown: %s", err)
		}
		<-p.served
	})
}
