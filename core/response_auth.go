package core

import (
	"net/http"

	"github.com/reelmark/reelmark/db"
)

// AuthRecord represents the user record in authentication responses.
// The password field never leaves the store layer.
type AuthRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Favorite string `json:"favorite,omitempty"`
}

// AuthData represents the authentication response payload. The session
// itself travels in the cookie, so the record is all the body carries.
type AuthData struct {
	Record AuthRecord `json:"record"`
}

func newAuthData(user *db.User) *AuthData {
	return &AuthData{
		Record: AuthRecord{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Favorite: user.Favorite,
		},
	}
}

// writeAuthResponse writes a standardized authentication response
func writeAuthResponse(w http.ResponseWriter, user *db.User) {
	response := JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkAuthentication,
			Message: "Authentication successful",
		},
		Data: newAuthData(user),
	}
	writeJsonWithData(w, response)
}
