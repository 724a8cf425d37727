package strava

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/underthebar/internal/config"
	"github.com/2beens/underthebar/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	CredentialsMissing = "Missing credentials"
	CredentialsInvalid = "Invalid client ID or secret"
	CredentialsOK      = "Credentials OK"
)

// CheckCredentials probes the strava token endpoint with a client_credentials
// grant. Strava does not support that grant, so only a 401 tells that the client
// id or secret are wrong; any other answer means they were accepted.
func CheckCredentials(ctx context.Context, httpClient *http.Client, tokenURL string, creds config.StravaCredentials) (ok bool, message string) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.checkCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if creds.Missing() {
		return false, CredentialsMissing
	}

	conf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}

	_, err = conf.Token(ctx)
	if err == nil {
		return true, CredentialsOK
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode == http.StatusUnauthorized {
			return false, CredentialsInvalid
		}
		log.Debugf("strava: credentials check got: %s", retrieveErr)
		err = nil
		return true, CredentialsOK
	}

	log.Errorf("strava: credentials check: %s", err)
	return false, "Error: " + err.Error()
}
