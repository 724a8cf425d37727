package hevy

import (
	"path/filepath"

	"github.com/2beens/underthebar/internal/session"
)

// SessionLogin answers whether a hevy user is logged in, based on the
// credentials the hevy login flow leaves in the session file.
type SessionLogin struct {
	store   *session.Store
	dataDir string
}

func NewSessionLogin(store *session.Store, dataDir string) *SessionLogin {
	return &SessionLogin{
		store:   store,
		dataDir: dataDir,
	}
}

// IsLoggedIn returns the login state, the local folder of the user and the
// bearer token to call hevy with.
func (l *SessionLogin) IsLoggedIn() (bool, string, string) {
	authToken, err := l.store.GetString(session.KeyHevyAuthToken)
	if err != nil || authToken == "" {
		return false, "", ""
	}
	userID, err := l.store.UserID()
	if err != nil || userID == "" {
		return false, "", ""
	}
	return true, UserFolder(l.dataDir, userID), authToken
}

func UserFolder(dataDir, userID string) string {
	return filepath.Join(dataDir, "user_"+userID)
}
